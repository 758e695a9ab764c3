// file: internals/features/academics/model/module_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Syllabus states; NULL in the column means pending.
const (
	SyllabusHayDocumento   = "hay documento"
	SyllabusNoHayDocumento = "no hay documento"
	SyllabusPendiente      = "pendiente"
)

type ModuleModel struct {
	ModuleID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:module_id" json:"module_id"`

	// order is unique per course when set (NULLs never collide)
	ModuleCourseID uuid.UUID `gorm:"type:uuid;not null;index:idx_modules_course;uniqueIndex:uq_modules_course_order,priority:1;column:module_course_id" json:"module_course_id"`

	ModuleName           string     `gorm:"type:varchar(200);not null;column:module_name" json:"module_name"`
	ModuleOrder          *int       `gorm:"uniqueIndex:uq_modules_course_order,priority:2;check:chk_module_order,module_order IS NULL OR module_order >= 1;column:module_order" json:"module_order,omitempty"`
	ModuleHours          *int       `gorm:"check:chk_module_hours,module_hours IS NULL OR module_hours >= 0;column:module_hours" json:"module_hours,omitempty"`
	ModuleSyllabusStatus *string    `gorm:"type:varchar(40);column:module_syllabus_status" json:"module_syllabus_status,omitempty"`
	ModuleObservations   *string    `gorm:"type:text;column:module_observations" json:"module_observations,omitempty"`
	ModuleProfessorID    *uuid.UUID `gorm:"type:uuid;index:idx_modules_professor;column:module_professor_id" json:"module_professor_id,omitempty"`

	ModuleCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:module_created_at" json:"module_created_at"`
	ModuleUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:module_updated_at" json:"module_updated_at"`

	Sessions []SessionModel `gorm:"foreignKey:SessionModuleID;references:ModuleID;constraint:OnDelete:CASCADE" json:"sessions,omitempty"`
}

func (ModuleModel) TableName() string { return "modules" }

// SyllabusKey buckets the status for stats: hay_documento, no_hay_documento or pendiente.
func (m ModuleModel) SyllabusKey() string {
	if m.ModuleSyllabusStatus == nil {
		return "pendiente"
	}
	switch *m.ModuleSyllabusStatus {
	case SyllabusHayDocumento:
		return "hay_documento"
	case SyllabusNoHayDocumento:
		return "no_hay_documento"
	default:
		return "pendiente"
	}
}
