package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	am "mali_scheduler_backend/internals/features/academics/model"
	d "mali_scheduler_backend/internals/features/academics/modules/dto"
)

func intp(v int) *int { return &v }

func TestPlanBulkModules(t *testing.T) {
	foto := am.CourseModel{
		CourseID:   uuid.New(),
		CourseName: "Fotografía",
		Modules:    []am.ModuleModel{{ModuleName: "Luz", ModuleOrder: intp(1)}},
	}
	courses := map[string]am.CourseModel{foto.CourseName: foto}

	create, labels := PlanBulkModules(courses, []d.BulkModuleEntry{
		{CourseName: "Fotografía", Modules: []d.BulkModuleItem{
			{Name: "Luz", Order: intp(3)},      // exists
			{Name: "Encuadre", Order: intp(1)}, // order taken -> nil
			{Name: "Revelado", Order: intp(2)},
			{Name: "Revelado", Order: intp(4)}, // repeated in payload
			{Name: "  "},
		}},
		{CourseName: "Curso fantasma", Modules: []d.BulkModuleItem{{Name: "X"}}},
	})

	assert.Equal(t, []string{"Fotografía - Encuadre", "Fotografía - Revelado"}, labels)
	require.Len(t, create, 2)
	assert.Nil(t, create[0].ModuleOrder)
	assert.Equal(t, 2, *create[1].ModuleOrder)
	assert.Equal(t, foto.CourseID, create[1].ModuleCourseID)
}

func TestPlanBulkModules_NothingToDo(t *testing.T) {
	create, labels := PlanBulkModules(map[string]am.CourseModel{}, nil)
	assert.Empty(t, create)
	assert.NotNil(t, labels)
}
