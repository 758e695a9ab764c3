// file: internals/features/academics/courses/dto/course_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	am "mali_scheduler_backend/internals/features/academics/model"
	helper "mali_scheduler_backend/internals/helpers"
	"mali_scheduler_backend/internals/helpers/dbtime"
)

/* =========================================================
   REQUESTS
   ========================================================= */

type ModuleInput struct {
	ID             *uuid.UUID `json:"id"`
	Name           string     `json:"name"            validate:"required,max=200"`
	Order          *int       `json:"order"           validate:"omitempty,min=1"`
	Hours          *int       `json:"hours"           validate:"omitempty,min=0"`
	SyllabusStatus *string    `json:"syllabus_status" validate:"omitempty,oneof='hay documento' 'no hay documento' pendiente"`
	Observations   *string    `json:"observations"`
	ProfessorID    *uuid.UUID `json:"professor_id"`
}

type CourseCreateRequest struct {
	Name           string        `json:"name"            validate:"required,max=200"`
	DurationMonths int           `json:"duration_months" validate:"required,min=1,max=120"`
	StartDate      *string       `json:"start_date"      validate:"omitempty,datetime=2006-01-02"`
	Schedule       *string       `json:"schedule"        validate:"omitempty,max=500"`
	IsActive       *bool         `json:"is_active"`
	Category       *string       `json:"category"        validate:"omitempty,oneof=interiores escenicas graficas audiovisual modas socialmedia literatura musica"`
	Modules        []ModuleInput `json:"modules"         validate:"omitempty,dive"`
	ProfessorIDs   []uuid.UUID   `json:"professor_ids"`
}

// CourseUpdateRequest replaces every scalar field; Modules nil means "keep modules".
type CourseUpdateRequest struct {
	Name           string         `json:"name"            validate:"required,max=200"`
	DurationMonths int            `json:"duration_months" validate:"required,min=1,max=120"`
	StartDate      *string        `json:"start_date"      validate:"omitempty,datetime=2006-01-02"`
	Schedule       *string        `json:"schedule"        validate:"omitempty,max=500"`
	IsActive       *bool          `json:"is_active"`
	Category       *string        `json:"category"        validate:"omitempty,oneof=interiores escenicas graficas audiovisual modas socialmedia literatura musica"`
	Modules        *[]ModuleInput `json:"modules"         validate:"omitempty,dive"`
	ProfessorIDs   *[]uuid.UUID   `json:"professor_ids"`
}

func normCategory(p *string) *string {
	p = helper.TrimPtr(p)
	if p == nil {
		return nil
	}
	v := strings.ToLower(*p)
	return &v
}

func (r CourseCreateRequest) ToModel() (am.CourseModel, error) {
	start, err := dbtime.ParseDatePtr(r.StartDate)
	if err != nil {
		return am.CourseModel{}, err
	}
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	course := am.CourseModel{
		CourseName:           strings.TrimSpace(r.Name),
		CourseDurationMonths: r.DurationMonths,
		CourseStartDate:      start,
		CourseSchedule:       helper.TrimPtr(r.Schedule),
		CourseIsActive:       isActive,
		CourseCategory:       normCategory(r.Category),
	}
	for _, in := range r.Modules {
		course.Modules = append(course.Modules, in.ToModel(uuid.Nil))
	}
	return course, nil
}

// Apply overwrites the scalar fields of an existing course.
func (r CourseUpdateRequest) Apply(c *am.CourseModel) error {
	start, err := dbtime.ParseDatePtr(r.StartDate)
	if err != nil {
		return err
	}
	c.CourseName = strings.TrimSpace(r.Name)
	c.CourseDurationMonths = r.DurationMonths
	c.CourseStartDate = start
	c.CourseSchedule = helper.TrimPtr(r.Schedule)
	c.CourseCategory = normCategory(r.Category)
	if r.IsActive != nil {
		c.CourseIsActive = *r.IsActive
	} else {
		c.CourseIsActive = true
	}
	return nil
}

func (in ModuleInput) ToModel(courseID uuid.UUID) am.ModuleModel {
	m := am.ModuleModel{
		ModuleCourseID:     courseID,
		ModuleName:         strings.TrimSpace(in.Name),
		ModuleOrder:        in.Order,
		ModuleHours:        in.Hours,
		ModuleObservations: helper.TrimPtr(in.Observations),
		ModuleProfessorID:  in.ProfessorID,
	}
	m.ModuleSyllabusStatus = SyllabusColumn(in.SyllabusStatus)
	return m
}

// SyllabusColumn stores "pendiente" and blanks as NULL.
func SyllabusColumn(p *string) *string {
	p = helper.TrimPtr(p)
	if p == nil || strings.EqualFold(*p, am.SyllabusPendiente) {
		return nil
	}
	v := strings.ToLower(*p)
	return &v
}

/* =========================================================
   RESPONSES
   ========================================================= */

type ProfessorBrief struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

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

type CourseResponse struct {
	ID             uuid.UUID        `json:"id"`
	Name           string           `json:"name"`
	DurationMonths int              `json:"duration_months"`
	StartDate      *string          `json:"start_date"`
	Schedule       *string          `json:"schedule"`
	IsActive       bool             `json:"is_active"`
	Category       *string          `json:"category"`
	Modules        []ModuleResponse `json:"modules"`
	Professors     []ProfessorBrief `json:"professors"`
}

func FromModule(m am.ModuleModel) ModuleResponse {
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

func FromCourse(c am.CourseModel) CourseResponse {
	out := CourseResponse{
		ID:             c.CourseID,
		Name:           c.CourseName,
		DurationMonths: c.CourseDurationMonths,
		StartDate:      dbtime.FormatDatePtr(c.CourseStartDate),
		Schedule:       c.CourseSchedule,
		IsActive:       c.CourseIsActive,
		Category:       c.CourseCategory,
		Modules:        make([]ModuleResponse, 0, len(c.Modules)),
		Professors:     make([]ProfessorBrief, 0, len(c.Professors)),
	}
	for _, m := range c.Modules {
		out.Modules = append(out.Modules, FromModule(m))
	}
	for _, p := range c.Professors {
		out.Professors = append(out.Professors, ProfessorBrief{ID: p.ProfessorID, Name: p.ProfessorName})
	}
	return out
}

func FromCourses(list []am.CourseModel) []CourseResponse {
	out := make([]CourseResponse, 0, len(list))
	for i := range list {
		out = append(out, FromCourse(list[i]))
	}
	return out
}
