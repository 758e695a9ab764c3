// file: internals/features/academics/model/session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	SessionProgramada   = "Programada"
	SessionCancelada    = "Cancelada"
	SessionRecuperacion = "Recuperación"
	SessionConfirmada   = "Confirmada"
	SessionFaltaProfe   = "Falta profe"
	SessionPendiente    = "Pendiente"
)

var SessionStatuses = []string{
	SessionProgramada, SessionCancelada, SessionRecuperacion,
	SessionConfirmada, SessionFaltaProfe, SessionPendiente,
}

func IsValidSessionStatus(s string) bool {
	for _, v := range SessionStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type SessionModel struct {
	SessionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:session_id" json:"session_id"`

	SessionModuleID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_session_module_date,priority:1;column:session_module_id" json:"session_module_id"`
	SessionNumber    int       `gorm:"not null;check:chk_session_number,session_number >= 1;column:session_number" json:"session_number"`
	SessionDate      time.Time `gorm:"type:date;not null;uniqueIndex:uq_session_module_date,priority:2;index:idx_session_date;column:session_date" json:"session_date"`
	SessionStatus    string    `gorm:"type:varchar(40);not null;default:'Programada';column:session_status" json:"session_status"`
	SessionExtraNote *string   `gorm:"type:text;column:session_extra_note" json:"session_extra_note,omitempty"`

	// course/module/professor names captured at generation time
	SessionSnapshot datatypes.JSONMap `gorm:"type:jsonb;column:session_snapshot" json:"session_snapshot,omitempty"`

	SessionCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:session_created_at" json:"session_created_at"`
	SessionUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:session_updated_at" json:"session_updated_at"`
}

func (SessionModel) TableName() string { return "course_module_sessions" }
