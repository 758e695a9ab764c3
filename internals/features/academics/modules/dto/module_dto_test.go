package dto

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	am "mali_scheduler_backend/internals/features/academics/model"
)

func TestModulePatchRequest_Apply(t *testing.T) {
	prof := uuid.New()
	order, hours := 2, 10
	status := am.SyllabusHayDocumento
	m := am.ModuleModel{
		ModuleName:           "Luz",
		ModuleOrder:          &order,
		ModuleHours:          &hours,
		ModuleSyllabusStatus: &status,
		ModuleProfessorID:    &prof,
	}

	var req ModulePatchRequest
	require.NoError(t, sonic.Unmarshal([]byte(`{"hours": 12, "syllabus_status": "pendiente", "professor_id": null}`), &req))
	require.NoError(t, req.Apply(&m))

	assert.Equal(t, "Luz", m.ModuleName)
	assert.Equal(t, 2, *m.ModuleOrder)
	assert.Equal(t, 12, *m.ModuleHours)
	assert.Nil(t, m.ModuleSyllabusStatus)
	assert.Nil(t, m.ModuleProfessorID)
}

func TestModulePatchRequest_Invalid(t *testing.T) {
	tests := []struct {
		body string
		err  error
	}{
		{`{"name": "  "}`, ErrBlankName},
		{`{"order": 0}`, ErrInvalidOrder},
		{`{"hours": -1}`, ErrInvalidHours},
		{`{"syllabus_status": "quizás"}`, ErrInvalidSyllabus},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var req ModulePatchRequest
			require.NoError(t, sonic.Unmarshal([]byte(tt.body), &req))
			assert.ErrorIs(t, req.Apply(&am.ModuleModel{ModuleName: "x"}), tt.err)
		})
	}
}

func TestNormalizeSyllabus(t *testing.T) {
	s := func(v string) *string { return &v }

	got, err := NormalizeSyllabus(s(" Hay Documento "))
	require.NoError(t, err)
	assert.Equal(t, am.SyllabusHayDocumento, *got)

	got, err = NormalizeSyllabus(s(""))
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = NormalizeSyllabus(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}
