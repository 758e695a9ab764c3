// file: internals/features/academics/model/professor_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type ProfessorModel struct {
	ProfessorID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:professor_id" json:"professor_id"`

	ProfessorName        string  `gorm:"type:varchar(200);not null;uniqueIndex:uq_professors_name;column:professor_name" json:"professor_name"`
	ProfessorFirstName   *string `gorm:"type:varchar(120);column:professor_first_name" json:"professor_first_name,omitempty"`
	ProfessorLastName    *string `gorm:"type:varchar(120);column:professor_last_name" json:"professor_last_name,omitempty"`
	ProfessorEmail       *string `gorm:"type:varchar(200);uniqueIndex:uq_professors_email;column:professor_email" json:"professor_email,omitempty"`
	ProfessorPhone       *string `gorm:"type:varchar(40);column:professor_phone" json:"professor_phone,omitempty"`
	ProfessorBio         *string `gorm:"type:text;column:professor_bio" json:"professor_bio,omitempty"`
	ProfessorSpecialties *string `gorm:"type:text;column:professor_specialties" json:"professor_specialties,omitempty"`
	ProfessorIsActive    bool    `gorm:"not null;default:true;column:professor_is_active" json:"professor_is_active"`

	ProfessorCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:professor_created_at" json:"professor_created_at"`
	ProfessorUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:professor_updated_at" json:"professor_updated_at"`

	Courses []CourseModel `gorm:"many2many:professor_courses;foreignKey:ProfessorID;joinForeignKey:ProfessorID;references:CourseID;joinReferences:CourseID" json:"courses,omitempty"`
	Modules []ModuleModel `gorm:"foreignKey:ModuleProfessorID;references:ProfessorID;constraint:OnDelete:SET NULL" json:"modules,omitempty"`
}

func (ProfessorModel) TableName() string { return "professors" }

// DisplayName prefers "first last" when both parts exist.
func (p ProfessorModel) DisplayName() string {
	first := strings.TrimSpace(strOrEmpty(p.ProfessorFirstName))
	last := strings.TrimSpace(strOrEmpty(p.ProfessorLastName))
	if first != "" && last != "" {
		return first + " " + last
	}
	return p.ProfessorName
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
