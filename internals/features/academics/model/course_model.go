// file: internals/features/academics/model/course_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category tags understood by the calendar palette.
const (
	CategoryInteriores  = "interiores"
	CategoryEscenicas   = "escenicas"
	CategoryGraficas    = "graficas"
	CategoryAudiovisual = "audiovisual"
	CategoryModas       = "modas"
	CategorySocialMedia = "socialmedia"
	CategoryLiteratura  = "literatura"
	CategoryMusica      = "musica"
)

var Categories = []string{
	CategoryInteriores, CategoryEscenicas, CategoryGraficas, CategoryAudiovisual,
	CategoryModas, CategorySocialMedia, CategoryLiteratura, CategoryMusica,
}

type CourseModel struct {
	CourseID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_id" json:"course_id"`

	CourseName           string     `gorm:"type:varchar(200);not null;uniqueIndex:uq_courses_name;column:course_name" json:"course_name"`
	CourseDurationMonths int        `gorm:"not null;check:chk_course_duration_months,course_duration_months >= 1;column:course_duration_months" json:"course_duration_months"`
	CourseStartDate      *time.Time `gorm:"type:date;column:course_start_date" json:"course_start_date,omitempty"`
	CourseSchedule       *string    `gorm:"type:text;column:course_schedule" json:"course_schedule,omitempty"`
	CourseIsActive       bool       `gorm:"not null;default:true;column:course_is_active" json:"course_is_active"`
	CourseCategory       *string    `gorm:"type:varchar(40);index:idx_courses_category;column:course_category" json:"course_category,omitempty"`

	CourseCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:course_created_at" json:"course_created_at"`
	CourseUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:course_updated_at" json:"course_updated_at"`

	Modules    []ModuleModel    `gorm:"foreignKey:ModuleCourseID;references:CourseID;constraint:OnDelete:CASCADE" json:"modules,omitempty"`
	Professors []ProfessorModel `gorm:"many2many:professor_courses;foreignKey:CourseID;joinForeignKey:CourseID;references:ProfessorID;joinReferences:ProfessorID" json:"professors,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }

// HasSchedule: both a start date and non-blank schedule text are present.
func (c CourseModel) HasSchedule() bool {
	return c.CourseStartDate != nil && c.CourseSchedule != nil && strings.TrimSpace(*c.CourseSchedule) != ""
}

func (c CourseModel) ProfessorNames() []string {
	out := make([]string, 0, len(c.Professors))
	for _, p := range c.Professors {
		out = append(out, p.ProfessorName)
	}
	return out
}
