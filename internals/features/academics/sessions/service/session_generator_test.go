package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	am "mali_scheduler_backend/internals/features/academics/model"
)

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func TestPlanSessions(t *testing.T) {
	schedule := "Martes 6:00 pm"
	prof := uuid.New()
	course := am.CourseModel{CourseID: uuid.New(), CourseName: "Grabado", CourseSchedule: &schedule}
	one, two := 1, 2
	modules := []am.ModuleModel{
		{ModuleID: uuid.New(), ModuleName: "Xilografía", ModuleOrder: &one, ModuleProfessorID: &prof},
		{ModuleID: uuid.New(), ModuleName: "Litografía", ModuleOrder: &two},
	}
	dates := []time.Time{day(2024, 1, 2), day(2024, 1, 9), time.Date(2024, 1, 16, 18, 0, 0, 0, time.Local)}

	rows := PlanSessions(course, modules, dates, nil, map[uuid.UUID]string{prof: "Ana Rojas"})
	require.Len(t, rows, 6)

	for i, r := range rows[:3] {
		assert.Equal(t, modules[0].ModuleID, r.SessionModuleID)
		assert.Equal(t, i+1, r.SessionNumber)
		assert.Equal(t, am.SessionProgramada, r.SessionStatus)
	}
	assert.Equal(t, 1, rows[3].SessionNumber)
	assert.Equal(t, modules[1].ModuleID, rows[3].SessionModuleID)

	// dates are stored as plain calendar days
	assert.Equal(t, day(2024, 1, 16), rows[2].SessionDate)

	snap := rows[0].SessionSnapshot
	assert.Equal(t, "Grabado", snap["course_name"])
	assert.Equal(t, "Xilografía", snap["module_name"])
	assert.Equal(t, "Ana Rojas", snap["professor_name"])
	assert.Equal(t, schedule, snap["schedule"])
	_, hasProf := rows[3].SessionSnapshot["professor_id"]
	assert.False(t, hasProf)
}

func TestPlanSessions_SkipAndEmpty(t *testing.T) {
	course := am.CourseModel{CourseID: uuid.New(), CourseName: "Canto"}
	a := am.ModuleModel{ModuleID: uuid.New(), ModuleName: "Respiración"}
	b := am.ModuleModel{ModuleID: uuid.New(), ModuleName: "Repertorio"}
	dates := []time.Time{day(2024, 2, 1)}

	rows := PlanSessions(course, []am.ModuleModel{a, b}, dates, map[uuid.UUID]bool{a.ModuleID: true}, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, b.ModuleID, rows[0].SessionModuleID)

	assert.Empty(t, PlanSessions(course, []am.ModuleModel{a}, nil, nil, nil))
}

func scheduledCourse(modules ...am.ModuleModel) am.CourseModel {
	start := day(2024, 3, 4)
	schedule := "Lunes 7:00 pm"
	id := uuid.New()
	for i := range modules {
		modules[i].ModuleCourseID = id
	}
	return am.CourseModel{
		CourseID:             id,
		CourseName:           "Cerámica",
		CourseStartDate:      &start,
		CourseSchedule:       &schedule,
		CourseDurationMonths: 1,
		CourseIsActive:       true,
		Modules:              modules,
	}
}

var marchMondays = fixedDates{day(2024, 3, 4), day(2024, 3, 11), day(2024, 3, 18)}

func TestGenerateForCourse_SkipsModulesWithSessions(t *testing.T) {
	prof := uuid.New()
	a := am.ModuleModel{ModuleID: uuid.New(), ModuleName: "Torno", ModuleProfessorID: &prof}
	b := am.ModuleModel{ModuleID: uuid.New(), ModuleName: "Esmaltes"}
	course := scheduledCourse(a, b)
	store := newMemStore(course)
	store.professors[prof] = "Rosa Quispe"
	gen := &Generator{Store: store, Dates: marchMondays}
	ctx := context.Background()

	res, err := gen.GenerateForCourse(ctx, course.CourseID, false)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Dates)
	assert.Equal(t, 6, res.Created)
	assert.Empty(t, res.SkippedModules)
	assert.Equal(t, "Rosa Quispe", store.sessions[a.ModuleID][day(2024, 3, 4)].SessionSnapshot["professor_name"])

	res, err = gen.GenerateForCourse(ctx, course.CourseID, false)
	require.NoError(t, err)
	assert.Zero(t, res.Created)
	assert.Zero(t, res.Replaced)
	assert.Equal(t, []string{"Torno", "Esmaltes"}, res.SkippedModules)
	assert.Equal(t, 3, store.count(a.ModuleID))
}

func TestGenerateForCourse_SkipsOnlyModulesThatHaveRows(t *testing.T) {
	a := am.ModuleModel{ModuleID: uuid.New(), ModuleName: "Torno"}
	b := am.ModuleModel{ModuleID: uuid.New(), ModuleName: "Esmaltes"}
	course := scheduledCourse(a, b)
	store := newMemStore(course)
	store.sessions[a.ModuleID] = map[time.Time]am.SessionModel{
		day(2024, 3, 4): {SessionModuleID: a.ModuleID, SessionDate: day(2024, 3, 4), SessionStatus: am.SessionConfirmada},
	}
	gen := &Generator{Store: store, Dates: marchMondays}

	res, err := gen.GenerateForCourse(context.Background(), course.CourseID, false)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Created)
	assert.Equal(t, []string{"Torno"}, res.SkippedModules)
	assert.Equal(t, 1, store.count(a.ModuleID))
	assert.Equal(t, am.SessionConfirmada, store.sessions[a.ModuleID][day(2024, 3, 4)].SessionStatus)
}

func TestGenerateForCourse_Replace(t *testing.T) {
	a := am.ModuleModel{ModuleID: uuid.New(), ModuleName: "Torno"}
	course := scheduledCourse(a)
	store := newMemStore(course)
	store.sessions[a.ModuleID] = map[time.Time]am.SessionModel{
		day(2024, 2, 26): {SessionModuleID: a.ModuleID, SessionDate: day(2024, 2, 26), SessionStatus: am.SessionConfirmada},
		day(2024, 3, 4):  {SessionModuleID: a.ModuleID, SessionDate: day(2024, 3, 4), SessionStatus: am.SessionConfirmada},
	}
	gen := &Generator{Store: store, Dates: marchMondays}

	res, err := gen.GenerateForCourse(context.Background(), course.CourseID, true)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Replaced)
	assert.Equal(t, 3, res.Created)
	assert.Empty(t, res.SkippedModules)

	// old rows are gone, new ones start fresh
	_, stale := store.sessions[a.ModuleID][day(2024, 2, 26)]
	assert.False(t, stale)
	assert.Equal(t, am.SessionProgramada, store.sessions[a.ModuleID][day(2024, 3, 4)].SessionStatus)
}

func TestGenerateForCourse_FailedInsertKeepsOldRows(t *testing.T) {
	a := am.ModuleModel{ModuleID: uuid.New(), ModuleName: "Torno"}
	course := scheduledCourse(a)
	store := newMemStore(course)
	store.sessions[a.ModuleID] = map[time.Time]am.SessionModel{
		day(2024, 3, 4): {SessionModuleID: a.ModuleID, SessionDate: day(2024, 3, 4)},
	}
	store.failInsert = errors.New("connection reset")
	gen := &Generator{Store: store, Dates: marchMondays}

	res, err := gen.GenerateForCourse(context.Background(), course.CourseID, true)
	require.Error(t, err)
	assert.Zero(t, res.Replaced)
	assert.Equal(t, 1, store.count(a.ModuleID))
}

func TestGenerateForCourse_UnknownCourse(t *testing.T) {
	gen := &Generator{Store: newMemStore(), Dates: marchMondays}

	_, err := gen.GenerateForCourse(context.Background(), uuid.New(), false)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestGenerateForCourse_NoScheduleIsNoop(t *testing.T) {
	a := am.ModuleModel{ModuleID: uuid.New(), ModuleName: "Torno"}
	course := scheduledCourse(a)
	course.CourseSchedule = nil
	store := newMemStore(course)
	gen := &Generator{Store: store, Dates: marchMondays}

	res, err := gen.GenerateForCourse(context.Background(), course.CourseID, false)
	require.NoError(t, err)
	assert.Equal(t, GenerateResult{}, res)
	assert.Zero(t, store.count(a.ModuleID))
}

func TestGenerateMissing(t *testing.T) {
	a := am.ModuleModel{ModuleID: uuid.New(), ModuleName: "Torno"}
	b := am.ModuleModel{ModuleID: uuid.New(), ModuleName: "Acuarela"}
	active := scheduledCourse(a)
	inactive := scheduledCourse(b)
	inactive.CourseIsActive = false
	store := newMemStore(active, inactive)
	gen := &Generator{Store: store, Dates: marchMondays}

	courses, created, err := gen.GenerateMissing(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, courses)
	assert.Equal(t, 3, created)
	assert.Zero(t, store.count(b.ModuleID))

	_, created, err = gen.GenerateMissing(context.Background())
	require.NoError(t, err)
	assert.Zero(t, created)
}
