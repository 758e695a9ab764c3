// file: internals/features/calendar/schedules/service/course_reader.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	am "mali_scheduler_backend/internals/features/academics/model"
)

var ErrProfessorNotFound = errors.New("professor not found")

// CourseReader loads courses with their professors preloaded.
type CourseReader interface {
	ListCourses(ctx context.Context) ([]am.CourseModel, error)
	ProfessorCourses(ctx context.Context, professorID uuid.UUID) ([]am.CourseModel, error)
}

type GormCourseReader struct {
	DB *gorm.DB
}

func NewGormCourseReader(db *gorm.DB) *GormCourseReader { return &GormCourseReader{DB: db} }

func (r *GormCourseReader) ListCourses(ctx context.Context) ([]am.CourseModel, error) {
	var rows []am.CourseModel
	err := r.DB.WithContext(ctx).
		Preload("Professors", func(tx *gorm.DB) *gorm.DB { return tx.Order("professor_name ASC") }).
		Order("course_start_date ASC NULLS LAST, course_name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *GormCourseReader) ProfessorCourses(ctx context.Context, professorID uuid.UUID) ([]am.CourseModel, error) {
	var prof am.ProfessorModel
	err := r.DB.WithContext(ctx).
		Preload("Courses", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("course_start_date ASC NULLS LAST, course_name ASC")
		}).
		Preload("Courses.Professors").
		Where("professor_id = ?", professorID).
		First(&prof).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfessorNotFound
	}
	if err != nil {
		return nil, err
	}
	return prof.Courses, nil
}

// ToCourseInput maps a stored course onto expander input.
func ToCourseInput(c am.CourseModel) CourseInput {
	in := CourseInput{
		ID:             c.CourseID.String(),
		Name:           c.CourseName,
		DurationMonths: c.CourseDurationMonths,
		StartDate:      c.CourseStartDate,
		Professors:     c.ProfessorNames(),
	}
	if c.CourseSchedule != nil {
		in.Schedule = *c.CourseSchedule
	}
	if c.CourseCategory != nil {
		in.Category = *c.CourseCategory
	}
	return in
}

func ToCourseInputs(list []am.CourseModel) []CourseInput {
	out := make([]CourseInput, 0, len(list))
	for _, c := range list {
		out = append(out, ToCourseInput(c))
	}
	return out
}
