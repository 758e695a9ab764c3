package dto

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	am "mali_scheduler_backend/internals/features/academics/model"
)

func TestSessionCreateRequest_ToModel(t *testing.T) {
	req := SessionCreateRequest{ModuleID: uuid.New(), SessionNumber: 3, Date: "2024-05-14"}
	row, err := req.ToModel()
	require.NoError(t, err)
	assert.Equal(t, am.SessionProgramada, row.SessionStatus)
	assert.Equal(t, time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC), row.SessionDate)

	bad := "Suspendida"
	req.Status = &bad
	_, err = req.ToModel()
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSessionUpdateRequest_Apply(t *testing.T) {
	note := "traer pinceles"
	s := am.SessionModel{SessionNumber: 1, SessionStatus: am.SessionProgramada, SessionExtraNote: &note}

	var req SessionUpdateRequest
	require.NoError(t, sonic.Unmarshal([]byte(`{"status": "Falta profe", "extra_note": null}`), &req))
	require.NoError(t, req.Apply(&s))
	assert.Equal(t, am.SessionFaltaProfe, s.SessionStatus)
	assert.Nil(t, s.SessionExtraNote)
	assert.Equal(t, 1, s.SessionNumber)

	require.NoError(t, sonic.Unmarshal([]byte(`{"status": "Recuperación", "date": "2024-06-01"}`), &req))
	require.NoError(t, req.Apply(&s))
	assert.Equal(t, am.SessionRecuperacion, s.SessionStatus)
	assert.Equal(t, "2024-06-01", FromModel(s).Date)

	var bad SessionUpdateRequest
	require.NoError(t, sonic.Unmarshal([]byte(`{"status": "nope"}`), &bad))
	assert.ErrorIs(t, bad.Apply(&s), ErrInvalidStatus)
}
