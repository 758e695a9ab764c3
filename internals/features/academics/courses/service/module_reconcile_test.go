package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	d "mali_scheduler_backend/internals/features/academics/courses/dto"
	am "mali_scheduler_backend/internals/features/academics/model"
)

func intp(v int) *int { return &v }

func TestReconcileModules(t *testing.T) {
	courseID := uuid.New()
	keep := am.ModuleModel{ModuleID: uuid.New(), ModuleCourseID: courseID, ModuleName: "Color", ModuleOrder: intp(1)}
	drop := am.ModuleModel{ModuleID: uuid.New(), ModuleCourseID: courseID, ModuleName: "Forma", ModuleOrder: intp(2)}

	plan, err := ReconcileModules(courseID, []am.ModuleModel{keep, drop}, []d.ModuleInput{
		{ID: &keep.ModuleID, Name: "Color y luz", Order: intp(2)},
		{Name: "Composición", Order: intp(1)},
	})
	require.NoError(t, err)

	require.Len(t, plan.Update, 1)
	assert.Equal(t, keep.ModuleID, plan.Update[0].ModuleID)
	assert.Equal(t, "Color y luz", plan.Update[0].ModuleName)

	require.Len(t, plan.Create, 1)
	assert.Equal(t, courseID, plan.Create[0].ModuleCourseID)

	assert.Equal(t, []uuid.UUID{drop.ModuleID}, plan.Delete)
}

func TestReconcileModules_Rejects(t *testing.T) {
	courseID := uuid.New()
	own := am.ModuleModel{ModuleID: uuid.New(), ModuleCourseID: courseID, ModuleName: "A"}
	foreign := uuid.New()

	_, err := ReconcileModules(courseID, []am.ModuleModel{own}, []d.ModuleInput{{ID: &foreign, Name: "X"}})
	assert.ErrorIs(t, err, ErrForeignModule)

	_, err = ReconcileModules(courseID, nil, []d.ModuleInput{
		{Name: "A", Order: intp(1)},
		{Name: "B", Order: intp(1)},
	})
	assert.ErrorIs(t, err, ErrDuplicateOrder)

	_, err = ReconcileModules(courseID, []am.ModuleModel{own}, []d.ModuleInput{
		{ID: &own.ModuleID, Name: "A"},
		{ID: &own.ModuleID, Name: "A again"},
	})
	assert.Error(t, err)
}

func TestReconcileModules_EmptyListDeletesAll(t *testing.T) {
	courseID := uuid.New()
	a := am.ModuleModel{ModuleID: uuid.New(), ModuleCourseID: courseID}
	b := am.ModuleModel{ModuleID: uuid.New(), ModuleCourseID: courseID}

	plan, err := ReconcileModules(courseID, []am.ModuleModel{a, b}, nil)
	require.NoError(t, err)
	assert.Empty(t, plan.Create)
	assert.Empty(t, plan.Update)
	assert.ElementsMatch(t, []uuid.UUID{a.ModuleID, b.ModuleID}, plan.Delete)
}
