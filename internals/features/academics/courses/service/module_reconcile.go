// file: internals/features/academics/courses/service/module_reconcile.go
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	d "mali_scheduler_backend/internals/features/academics/courses/dto"
	am "mali_scheduler_backend/internals/features/academics/model"
)

var (
	ErrForeignModule  = errors.New("module does not belong to this course")
	ErrDuplicateOrder = errors.New("module order must be unique within the course")
	ErrListedTwice    = errors.New("module listed twice")
)

// ModulePlan is what a course PUT does to the module table.
type ModulePlan struct {
	Create []am.ModuleModel
	Update []am.ModuleModel
	Delete []uuid.UUID
}

// ReconcileModules matches incoming modules to existing ones by id. Unknown
// ids are rejected, entries without id are created, existing modules left
// out of the list are deleted.
func ReconcileModules(courseID uuid.UUID, existing []am.ModuleModel, incoming []d.ModuleInput) (ModulePlan, error) {
	var plan ModulePlan

	byID := make(map[uuid.UUID]am.ModuleModel, len(existing))
	for _, m := range existing {
		byID[m.ModuleID] = m
	}

	seenOrder := map[int]bool{}
	kept := map[uuid.UUID]bool{}
	for _, in := range incoming {
		if in.Order != nil {
			if seenOrder[*in.Order] {
				return ModulePlan{}, fmt.Errorf("%w: order %d", ErrDuplicateOrder, *in.Order)
			}
			seenOrder[*in.Order] = true
		}

		next := in.ToModel(courseID)
		if in.ID == nil || *in.ID == uuid.Nil {
			plan.Create = append(plan.Create, next)
			continue
		}

		cur, ok := byID[*in.ID]
		if !ok {
			return ModulePlan{}, fmt.Errorf("%w: %s", ErrForeignModule, in.ID)
		}
		if kept[cur.ModuleID] {
			return ModulePlan{}, fmt.Errorf("%w: %s", ErrListedTwice, cur.ModuleID)
		}
		kept[cur.ModuleID] = true

		next.ModuleID = cur.ModuleID
		next.ModuleCreatedAt = cur.ModuleCreatedAt
		plan.Update = append(plan.Update, next)
	}

	for _, m := range existing {
		if !kept[m.ModuleID] {
			plan.Delete = append(plan.Delete, m.ModuleID)
		}
	}
	return plan, nil
}
