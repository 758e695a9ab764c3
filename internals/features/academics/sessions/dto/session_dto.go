// file: internals/features/academics/sessions/dto/session_dto.go
package dto

import (
	"errors"

	"github.com/google/uuid"

	am "mali_scheduler_backend/internals/features/academics/model"
	helper "mali_scheduler_backend/internals/helpers"
	"mali_scheduler_backend/internals/helpers/dbtime"
)

var ErrInvalidStatus = errors.New("invalid status")

type SessionCreateRequest struct {
	ModuleID      uuid.UUID `json:"module_id"      validate:"required"`
	SessionNumber int       `json:"session_number" validate:"required,min=1"`
	Date          string    `json:"date"           validate:"required,datetime=2006-01-02"`
	Status        *string   `json:"status"`
	ExtraNote     *string   `json:"extra_note"     validate:"omitempty,max=2000"`
}

func (r SessionCreateRequest) ToModel() (am.SessionModel, error) {
	date, err := dbtime.ParseDate(r.Date)
	if err != nil {
		return am.SessionModel{}, err
	}
	status := am.SessionProgramada
	if r.Status != nil && *r.Status != "" {
		if !am.IsValidSessionStatus(*r.Status) {
			return am.SessionModel{}, ErrInvalidStatus
		}
		status = *r.Status
	}
	return am.SessionModel{
		SessionModuleID:  r.ModuleID,
		SessionNumber:    r.SessionNumber,
		SessionDate:      date,
		SessionStatus:    status,
		SessionExtraNote: helper.TrimPtr(r.ExtraNote),
	}, nil
}

// SessionUpdateRequest is partial: only present keys change.
type SessionUpdateRequest struct {
	SessionNumber *int                    `json:"session_number" validate:"omitempty,min=1"`
	Date          *string                 `json:"date"           validate:"omitempty,datetime=2006-01-02"`
	Status        *string                 `json:"status"`
	ExtraNote     helper.Optional[string] `json:"extra_note"`
}

func (r SessionUpdateRequest) Apply(s *am.SessionModel) error {
	if r.SessionNumber != nil {
		s.SessionNumber = *r.SessionNumber
	}
	if r.Date != nil {
		d, err := dbtime.ParseDate(*r.Date)
		if err != nil {
			return err
		}
		s.SessionDate = d
	}
	if r.Status != nil {
		if !am.IsValidSessionStatus(*r.Status) {
			return ErrInvalidStatus
		}
		s.SessionStatus = *r.Status
	}
	if r.ExtraNote.Set {
		s.SessionExtraNote = helper.TrimPtr(r.ExtraNote.Value)
	}
	return nil
}

type SessionResponse struct {
	ID            uuid.UUID      `json:"id"`
	ModuleID      uuid.UUID      `json:"module_id"`
	SessionNumber int            `json:"session_number"`
	Date          string         `json:"date"`
	Status        string         `json:"status"`
	ExtraNote     *string        `json:"extra_note"`
	Snapshot      map[string]any `json:"snapshot,omitempty"`
}

func FromModel(s am.SessionModel) SessionResponse {
	return SessionResponse{
		ID:            s.SessionID,
		ModuleID:      s.SessionModuleID,
		SessionNumber: s.SessionNumber,
		Date:          dbtime.FormatDate(s.SessionDate),
		Status:        s.SessionStatus,
		ExtraNote:     s.SessionExtraNote,
		Snapshot:      s.SessionSnapshot,
	}
}

func FromModels(list []am.SessionModel) []SessionResponse {
	out := make([]SessionResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(list[i]))
	}
	return out
}

type GenerateResponse struct {
	CourseID       uuid.UUID `json:"course_id"`
	Dates          int       `json:"dates"`
	Created        int       `json:"created"`
	Replaced       int       `json:"replaced"`
	SkippedModules []string  `json:"skipped_modules"`
}
