// file: internals/features/academics/courses/service/module_writer.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	d "mali_scheduler_backend/internals/features/academics/courses/dto"
	am "mali_scheduler_backend/internals/features/academics/model"
)

// ModuleWriter is the module table as seen from one course update.
type ModuleWriter interface {
	CourseModules(courseID uuid.UUID) ([]am.ModuleModel, error)
	ReleaseOrders(courseID uuid.UUID) error
	DeleteModules(ids []uuid.UUID) error
	SaveModule(m *am.ModuleModel) error
	CreateModules(ms []am.ModuleModel) error
}

// IsPlanError reports errors caused by the request body rather than storage.
func IsPlanError(err error) bool {
	return errors.Is(err, ErrForeignModule) || errors.Is(err, ErrDuplicateOrder) || errors.Is(err, ErrListedTwice)
}

// ReplaceModules makes the course's modules match incoming. Nothing is
// written when the list is rejected.
func ReplaceModules(w ModuleWriter, courseID uuid.UUID, incoming []d.ModuleInput) error {
	existing, err := w.CourseModules(courseID)
	if err != nil {
		return err
	}
	plan, err := ReconcileModules(courseID, existing, incoming)
	if err != nil {
		return err
	}

	// orders are released first so swaps do not trip the per-course order index
	if err := w.ReleaseOrders(courseID); err != nil {
		return err
	}
	if len(plan.Delete) > 0 {
		if err := w.DeleteModules(plan.Delete); err != nil {
			return err
		}
	}
	for i := range plan.Update {
		if err := w.SaveModule(&plan.Update[i]); err != nil {
			return err
		}
	}
	if len(plan.Create) > 0 {
		return w.CreateModules(plan.Create)
	}
	return nil
}

type GormModuleWriter struct {
	Tx *gorm.DB
}

func (w GormModuleWriter) CourseModules(courseID uuid.UUID) ([]am.ModuleModel, error) {
	var out []am.ModuleModel
	err := w.Tx.Where("module_course_id = ?", courseID).Find(&out).Error
	return out, err
}

func (w GormModuleWriter) ReleaseOrders(courseID uuid.UUID) error {
	return w.Tx.Model(&am.ModuleModel{}).
		Where("module_course_id = ?", courseID).
		Update("module_order", nil).Error
}

func (w GormModuleWriter) DeleteModules(ids []uuid.UUID) error {
	return w.Tx.Where("module_id IN ?", ids).Delete(&am.ModuleModel{}).Error
}

func (w GormModuleWriter) SaveModule(m *am.ModuleModel) error {
	return w.Tx.Omit(clause.Associations).Save(m).Error
}

func (w GormModuleWriter) CreateModules(ms []am.ModuleModel) error {
	return w.Tx.Create(&ms).Error
}
