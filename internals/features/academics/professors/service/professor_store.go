// file: internals/features/academics/professors/service/professor_store.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	am "mali_scheduler_backend/internals/features/academics/model"
)

var (
	ErrProfessorNotFound = errors.New("professor not found")
	ErrUnknownCourses    = errors.New("unknown course_ids")
)

// ProfessorStore covers the writes that touch professor_courses.
type ProfessorStore interface {
	// Create links the professor to courseIDs; unique violations come back untouched.
	Create(ctx context.Context, p am.ProfessorModel, courseIDs []uuid.UUID) (am.ProfessorModel, error)
	// Delete clears the professor's course links before removing the row.
	Delete(ctx context.Context, id uuid.UUID) (am.ProfessorModel, error)
	BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// ProfessorWithCourses loads one professor with courses sorted by name.
func ProfessorWithCourses(tx *gorm.DB, id uuid.UUID) (am.ProfessorModel, error) {
	var p am.ProfessorModel
	err := tx.Preload("Courses", func(q *gorm.DB) *gorm.DB {
		return q.Order("course_name ASC")
	}).Where("professor_id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return p, ErrProfessorNotFound
	}
	return p, err
}

// CoursesByID fails with ErrUnknownCourses when any id is missing.
func CoursesByID(tx *gorm.DB, ids []uuid.UUID) ([]am.CourseModel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var courses []am.CourseModel
	if err := tx.Where("course_id IN ?", ids).Find(&courses).Error; err != nil {
		return nil, err
	}
	want := map[uuid.UUID]struct{}{}
	for _, id := range ids {
		want[id] = struct{}{}
	}
	if len(courses) != len(want) {
		return nil, ErrUnknownCourses
	}
	return courses, nil
}

type GormProfessorStore struct {
	DB *gorm.DB
}

func NewGormProfessorStore(db *gorm.DB) *GormProfessorStore { return &GormProfessorStore{DB: db} }

func (s *GormProfessorStore) Create(ctx context.Context, p am.ProfessorModel, courseIDs []uuid.UUID) (am.ProfessorModel, error) {
	var out am.ProfessorModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		courses, err := CoursesByID(tx, courseIDs)
		if err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(&p).Error; err != nil {
			return err
		}
		if len(courses) > 0 {
			if err := tx.Model(&p).Association("Courses").Append(courses); err != nil {
				return err
			}
		}
		out, err = ProfessorWithCourses(tx, p.ProfessorID)
		return err
	})
	return out, err
}

func (s *GormProfessorStore) Delete(ctx context.Context, id uuid.UUID) (am.ProfessorModel, error) {
	var out am.ProfessorModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := ProfessorWithCourses(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Model(&p).Association("Courses").Clear(); err != nil {
			return err
		}
		// modules keep existing; module_professor_id is SET NULL by the FK
		if err := tx.Where("professor_id = ?", id).Delete(&am.ProfessorModel{}).Error; err != nil {
			return err
		}
		out = p
		return nil
	})
	return out, err
}

func (s *GormProfessorStore) BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	var deleted int64
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM professor_courses WHERE professor_id IN ?", ids).Error; err != nil {
			return err
		}
		res := tx.Where("professor_id IN ?", ids).Delete(&am.ProfessorModel{})
		deleted = res.RowsAffected
		return res.Error
	})
	return deleted, err
}
