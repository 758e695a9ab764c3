package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	am "mali_scheduler_backend/internals/features/academics/model"
	d "mali_scheduler_backend/internals/features/academics/professors/dto"
)

func TestComputeSyllabusStatsAndHours(t *testing.T) {
	hay, no, odd := am.SyllabusHayDocumento, am.SyllabusNoHayDocumento, "otro"
	h := func(v int) *int { return &v }
	modules := []am.ModuleModel{
		{ModuleSyllabusStatus: &hay, ModuleHours: h(12)},
		{ModuleSyllabusStatus: &hay, ModuleHours: h(8)},
		{ModuleSyllabusStatus: &no},
		{ModuleSyllabusStatus: &odd, ModuleHours: h(-3)},
		{},
	}

	assert.Equal(t, d.SyllabusStats{HayDocumento: 2, NoHayDocumento: 1, Pendiente: 2}, ComputeSyllabusStats(modules))
	assert.Equal(t, 20, TotalHours(modules))
	assert.Equal(t, d.SyllabusStats{}, ComputeSyllabusStats(nil))
}

func TestModuleRows(t *testing.T) {
	courseID := uuid.New()
	rows := ModuleRows([]am.ModuleModel{{ModuleID: uuid.New(), ModuleName: "Luz", ModuleCourseID: courseID}},
		map[uuid.UUID]string{courseID: "Fotografía"})
	require.Len(t, rows, 1)
	assert.Equal(t, "Fotografía", rows[0].CourseName)
}

func TestPlanBulkProfessors(t *testing.T) {
	foto := am.CourseModel{CourseID: uuid.New(), CourseName: "Fotografía"}
	plan := PlanBulkProfessors(
		[]d.BulkProfessorEntry{
			{Name: "Ana Rojas", CourseNames: []string{"Fotografía", "Fotografía", "Inexistente"}},
			{Name: "Luis Paredes"},
			{Name: "Ana Rojas"},
			{Name: "Marta Díaz", CourseNames: []string{"Fotografía"}},
		},
		map[string]bool{"Luis Paredes": true},
		map[string]am.CourseModel{foto.CourseName: foto},
	)

	require.Len(t, plan.Create, 2)
	assert.Equal(t, "Ana Rojas", plan.Create[0].ProfessorName)
	assert.Len(t, plan.Create[0].Courses, 1)
	assert.True(t, plan.Create[0].ProfessorIsActive)
	assert.Equal(t, []string{"Luis Paredes", "Ana Rojas"}, plan.Skipped)
}
