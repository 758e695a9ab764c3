// file: internals/features/academics/professors/dto/professor_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	am "mali_scheduler_backend/internals/features/academics/model"
	helper "mali_scheduler_backend/internals/helpers"
)

/* =========================
   Requests
   ========================= */

type ProfessorCreateRequest struct {
	Name        string      `json:"name"        validate:"required,max=200"`
	FirstName   *string     `json:"first_name"  validate:"omitempty,max=120"`
	LastName    *string     `json:"last_name"   validate:"omitempty,max=120"`
	Email       *string     `json:"email"       validate:"omitempty,email,max=200"`
	Phone       *string     `json:"phone"       validate:"omitempty,max=40"`
	Bio         *string     `json:"bio"`
	Specialties *string     `json:"specialties"`
	IsActive    *bool       `json:"is_active"`
	CourseIDs   []uuid.UUID `json:"course_ids"`
}

func (r ProfessorCreateRequest) ToModel() am.ProfessorModel {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return am.ProfessorModel{
		ProfessorName:        strings.TrimSpace(r.Name),
		ProfessorFirstName:   helper.TrimPtr(r.FirstName),
		ProfessorLastName:    helper.TrimPtr(r.LastName),
		ProfessorEmail:       normalizeEmail(r.Email),
		ProfessorPhone:       helper.TrimPtr(r.Phone),
		ProfessorBio:         helper.TrimPtr(r.Bio),
		ProfessorSpecialties: helper.TrimPtr(r.Specialties),
		ProfessorIsActive:    active,
	}
}

// ProfessorDetailsUpdateRequest: nil fields are left as they are; course_ids
// replaces the course links when present.
type ProfessorDetailsUpdateRequest struct {
	Name        *string                 `json:"name"        validate:"omitempty,min=1,max=200"`
	FirstName   helper.Optional[string] `json:"first_name"`
	LastName    helper.Optional[string] `json:"last_name"`
	Email       helper.Optional[string] `json:"email"`
	Phone       helper.Optional[string] `json:"phone"`
	Bio         helper.Optional[string] `json:"bio"`
	Specialties helper.Optional[string] `json:"specialties"`
	IsActive    *bool                   `json:"is_active"`
	CourseIDs   *[]uuid.UUID            `json:"course_ids"`
}

func (r ProfessorDetailsUpdateRequest) Apply(p *am.ProfessorModel) {
	if r.Name != nil {
		p.ProfessorName = strings.TrimSpace(*r.Name)
	}
	if r.FirstName.Set {
		p.ProfessorFirstName = helper.TrimPtr(r.FirstName.Value)
	}
	if r.LastName.Set {
		p.ProfessorLastName = helper.TrimPtr(r.LastName.Value)
	}
	if r.Email.Set {
		p.ProfessorEmail = normalizeEmail(r.Email.Value)
	}
	if r.Phone.Set {
		p.ProfessorPhone = helper.TrimPtr(r.Phone.Value)
	}
	if r.Bio.Set {
		p.ProfessorBio = helper.TrimPtr(r.Bio.Value)
	}
	if r.Specialties.Set {
		p.ProfessorSpecialties = helper.TrimPtr(r.Specialties.Value)
	}
	if r.IsActive != nil {
		p.ProfessorIsActive = *r.IsActive
	}
}

func normalizeEmail(s *string) *string {
	t := helper.TrimPtr(s)
	if t == nil {
		return nil
	}
	v := strings.ToLower(*t)
	return &v
}

type BulkProfessorEntry struct {
	Name        string   `json:"name"         validate:"required,max=200"`
	CourseNames []string `json:"course_names"`
}

type BulkDeleteRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

/* =========================
   Responses
   ========================= */

type CourseBrief struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ProfessorResponse struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	DisplayName string        `json:"display_name"`
	FirstName   *string       `json:"first_name"`
	LastName    *string       `json:"last_name"`
	Email       *string       `json:"email"`
	Phone       *string       `json:"phone"`
	Bio         *string       `json:"bio"`
	Specialties *string       `json:"specialties"`
	IsActive    bool          `json:"is_active"`
	Courses     []CourseBrief `json:"courses"`
}

func FromModel(p am.ProfessorModel) ProfessorResponse {
	out := ProfessorResponse{
		ID:          p.ProfessorID,
		Name:        p.ProfessorName,
		DisplayName: p.DisplayName(),
		FirstName:   p.ProfessorFirstName,
		LastName:    p.ProfessorLastName,
		Email:       p.ProfessorEmail,
		Phone:       p.ProfessorPhone,
		Bio:         p.ProfessorBio,
		Specialties: p.ProfessorSpecialties,
		IsActive:    p.ProfessorIsActive,
		Courses:     FromCourses(p.Courses),
	}
	return out
}

func FromModels(list []am.ProfessorModel) []ProfessorResponse {
	out := make([]ProfessorResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(list[i]))
	}
	return out
}

func FromCourses(list []am.CourseModel) []CourseBrief {
	out := make([]CourseBrief, 0, len(list))
	for _, c := range list {
		out = append(out, CourseBrief{ID: c.CourseID, Name: c.CourseName})
	}
	return out
}

type ProfessorModuleResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	CourseID       uuid.UUID `json:"course_id"`
	CourseName     string    `json:"course_name"`
	Order          *int      `json:"order"`
	Hours          *int      `json:"hours"`
	SyllabusStatus *string   `json:"syllabus_status"`
	Observations   *string   `json:"observations"`
}

type SyllabusStats struct {
	HayDocumento   int `json:"hay_documento"`
	NoHayDocumento int `json:"no_hay_documento"`
	Pendiente      int `json:"pendiente"`
}

type ProfessorDetailsResponse struct {
	ProfessorResponse
	Modules       []ProfessorModuleResponse `json:"modules"`
	TotalHours    int                       `json:"total_hours"`
	SyllabusStats SyllabusStats             `json:"syllabus_stats"`
}

type BulkProfessorResponse struct {
	Created []string `json:"created"`
	Skipped []string `json:"skipped"`
}

type ProfessorSessionResponse struct {
	ID            uuid.UUID `json:"id"`
	ModuleID      uuid.UUID `json:"module_id"`
	ModuleName    string    `json:"module_name"`
	CourseName    string    `json:"course_name"`
	SessionNumber int       `json:"session_number"`
	Date          string    `json:"date"`
	Status        string    `json:"status"`
	ExtraNote     *string   `json:"extra_note"`
}
