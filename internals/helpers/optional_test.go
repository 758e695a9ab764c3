package helper

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patchBody struct {
	Hours Optional[int]    `json:"hours"`
	Note  Optional[string] `json:"note"`
}

func TestOptional_MissingNullValue(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		hoursSet bool
		hours    *int
		noteSet  bool
	}{
		{name: "missing", body: `{}`},
		{name: "null", body: `{"hours": null}`, hoursSet: true},
		{name: "value", body: `{"hours": 12, "note": "x"}`, hoursSet: true, hours: ptr(12), noteSet: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b patchBody
			require.NoError(t, sonic.Unmarshal([]byte(tt.body), &b))
			assert.Equal(t, tt.hoursSet, b.Hours.Set)
			assert.Equal(t, tt.hours, b.Hours.Value)
			assert.Equal(t, tt.noteSet, b.Note.Set)
		})
	}
}

func TestOptional_BadType(t *testing.T) {
	var b patchBody
	assert.Error(t, sonic.Unmarshal([]byte(`{"hours": "many"}`), &b))
}

func TestSome(t *testing.T) {
	o := Some("a")
	assert.True(t, o.Set)
	assert.Equal(t, "a", *o.Value)
}

func ptr[T any](v T) *T { return &v }
