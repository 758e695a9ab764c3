// file: internals/features/academics/sessions/service/session_store.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	am "mali_scheduler_backend/internals/features/academics/model"
)

// SessionStore is the persistence the generator runs on.
type SessionStore interface {
	// CourseWithModules returns ErrCourseNotFound for unknown ids; modules come ordered.
	CourseWithModules(ctx context.Context, courseID uuid.UUID) (am.CourseModel, error)
	ScheduledCourseIDs(ctx context.Context) ([]uuid.UUID, error)
	Tx(ctx context.Context, fn func(w SessionWriter) error) error
}

// SessionWriter works inside one transaction.
type SessionWriter interface {
	DeleteModuleSessions(moduleIDs []uuid.UUID) (int, error)
	ModulesWithSessions(moduleIDs []uuid.UUID) ([]uuid.UUID, error)
	ProfessorNames(ids []uuid.UUID) (map[uuid.UUID]string, error)
	// InsertSessions ignores rows whose (module, date) already exists.
	InsertSessions(rows []am.SessionModel) (int, error)
}

/* =========================
   GORM
   ========================= */

type GormSessionStore struct {
	DB        *gorm.DB
	BatchSize int
}

func NewGormSessionStore(db *gorm.DB) *GormSessionStore {
	return &GormSessionStore{DB: db, BatchSize: 500}
}

func (s *GormSessionStore) CourseWithModules(ctx context.Context, courseID uuid.UUID) (am.CourseModel, error) {
	var course am.CourseModel
	err := s.DB.WithContext(ctx).
		Preload("Modules", func(q *gorm.DB) *gorm.DB {
			return q.Order("module_order ASC NULLS LAST, module_name ASC")
		}).
		Where("course_id = ?", courseID).
		First(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return course, ErrCourseNotFound
	}
	return course, err
}

func (s *GormSessionStore) ScheduledCourseIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.DB.WithContext(ctx).Model(&am.CourseModel{}).
		Where("course_is_active = ? AND course_start_date IS NOT NULL AND COALESCE(course_schedule, '') <> ''", true).
		Order("course_name ASC").
		Pluck("course_id", &ids).Error
	return ids, err
}

func (s *GormSessionStore) Tx(ctx context.Context, fn func(w SessionWriter) error) error {
	batch := s.BatchSize
	if batch <= 0 {
		batch = 500
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(gormSessionWriter{tx: tx, batch: batch})
	})
}

type gormSessionWriter struct {
	tx    *gorm.DB
	batch int
}

func (w gormSessionWriter) DeleteModuleSessions(moduleIDs []uuid.UUID) (int, error) {
	res := w.tx.Where("session_module_id IN ?", moduleIDs).Delete(&am.SessionModel{})
	return int(res.RowsAffected), res.Error
}

func (w gormSessionWriter) ModulesWithSessions(moduleIDs []uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := w.tx.Model(&am.SessionModel{}).
		Distinct("session_module_id").
		Where("session_module_id IN ?", moduleIDs).
		Pluck("session_module_id", &ids).Error
	return ids, err
}

func (w gormSessionWriter) ProfessorNames(ids []uuid.UUID) (map[uuid.UUID]string, error) {
	out := map[uuid.UUID]string{}
	if len(ids) == 0 {
		return out, nil
	}
	var profs []am.ProfessorModel
	if err := w.tx.Select("professor_id", "professor_name").
		Where("professor_id IN ?", ids).Find(&profs).Error; err != nil {
		return nil, err
	}
	for _, p := range profs {
		out[p.ProfessorID] = p.ProfessorName
	}
	return out, nil
}

func (w gormSessionWriter) InsertSessions(rows []am.SessionModel) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	res := w.tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(&rows, w.batch)
	return int(res.RowsAffected), res.Error
}
