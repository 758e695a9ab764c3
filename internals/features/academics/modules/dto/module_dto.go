// file: internals/features/academics/modules/dto/module_dto.go
package dto

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	am "mali_scheduler_backend/internals/features/academics/model"
	helper "mali_scheduler_backend/internals/helpers"
)

/* =========================
   Bulk load
   ========================= */

type BulkModuleItem struct {
	Name  string `json:"name"  validate:"required,max=200"`
	Order *int   `json:"order" validate:"omitempty,min=1"`
}

type BulkModuleEntry struct {
	CourseName string           `json:"course_name" validate:"required"`
	Modules    []BulkModuleItem `json:"modules"     validate:"dive"`
}

type BulkModuleResponse struct {
	CreatedModules []string `json:"created_modules"`
}

/* =========================
   Patch
   ========================= */

var (
	ErrInvalidOrder    = errors.New("order must be >= 1")
	ErrInvalidHours    = errors.New("hours must be >= 0")
	ErrInvalidSyllabus = errors.New("syllabus_status must be 'hay documento', 'no hay documento' or 'pendiente'")
	ErrBlankName       = errors.New("name cannot be blank")
)

type ModulePatchRequest struct {
	Name           *string                    `json:"name" validate:"omitempty,max=200"`
	Order          helper.Optional[int]       `json:"order"`
	Hours          helper.Optional[int]       `json:"hours"`
	SyllabusStatus helper.Optional[string]    `json:"syllabus_status"`
	Observations   helper.Optional[string]    `json:"observations"`
	ProfessorID    helper.Optional[uuid.UUID] `json:"professor_id"`
}

// Apply patches only the keys present in the body; null clears.
func (r ModulePatchRequest) Apply(m *am.ModuleModel) error {
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			return ErrBlankName
		}
		m.ModuleName = name
	}
	if r.Order.Set {
		if r.Order.Value != nil && *r.Order.Value < 1 {
			return ErrInvalidOrder
		}
		m.ModuleOrder = r.Order.Value
	}
	if r.Hours.Set {
		if r.Hours.Value != nil && *r.Hours.Value < 0 {
			return ErrInvalidHours
		}
		m.ModuleHours = r.Hours.Value
	}
	if r.SyllabusStatus.Set {
		status, err := NormalizeSyllabus(r.SyllabusStatus.Value)
		if err != nil {
			return err
		}
		m.ModuleSyllabusStatus = status
	}
	if r.Observations.Set {
		m.ModuleObservations = helper.TrimPtr(r.Observations.Value)
	}
	if r.ProfessorID.Set {
		if r.ProfessorID.Value != nil && *r.ProfessorID.Value == uuid.Nil {
			m.ModuleProfessorID = nil
		} else {
			m.ModuleProfessorID = r.ProfessorID.Value
		}
	}
	return nil
}

// NormalizeSyllabus maps input onto the stored value; nil, blank and "pendiente" clear it.
func NormalizeSyllabus(p *string) (*string, error) {
	p = helper.TrimPtr(p)
	if p == nil {
		return nil, nil
	}
	v := strings.ToLower(*p)
	switch v {
	case am.SyllabusPendiente:
		return nil, nil
	case am.SyllabusHayDocumento, am.SyllabusNoHayDocumento:
		return &v, nil
	}
	return nil, ErrInvalidSyllabus
}

/* =========================
   Responses
   ========================= */

type ModuleResponse struct {
	ID             uuid.UUID  `json:"id"`
	CourseID       uuid.UUID  `json:"course_id"`
	Name           string     `json:"name"`
	Order          *int       `json:"order"`
	Hours          *int       `json:"hours"`
	SyllabusStatus *string    `json:"syllabus_status"`
	Observations   *string    `json:"observations"`
	ProfessorID    *uuid.UUID `json:"professor_id"`
}

func FromModel(m am.ModuleModel) ModuleResponse {
	return ModuleResponse{
		ID:             m.ModuleID,
		CourseID:       m.ModuleCourseID,
		Name:           m.ModuleName,
		Order:          m.ModuleOrder,
		Hours:          m.ModuleHours,
		SyllabusStatus: m.ModuleSyllabusStatus,
		Observations:   m.ModuleObservations,
		ProfessorID:    m.ModuleProfessorID,
	}
}

// AcademicRow is one line of /coursemodules/academic-view.
type AcademicRow struct {
	ID             uuid.UUID  `json:"id"              gorm:"column:module_id"`
	CourseID       uuid.UUID  `json:"course_id"       gorm:"column:course_id"`
	CourseName     string     `json:"course_name"     gorm:"column:course_name"`
	ModuleName     string     `json:"module_name"     gorm:"column:module_name"`
	ModuleOrder    *int       `json:"module_order"    gorm:"column:module_order"`
	ProfessorID    *uuid.UUID `json:"professor_id"    gorm:"column:professor_id"`
	ProfessorName  *string    `json:"professor_name"  gorm:"column:professor_name"`
	SyllabusStatus *string    `json:"syllabus_status" gorm:"column:syllabus_status"`
	Observations   *string    `json:"observations"    gorm:"column:observations"`
	Hours          *int       `json:"hours"           gorm:"column:hours"`
}
