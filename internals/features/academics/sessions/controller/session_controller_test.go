package controller

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	am "mali_scheduler_backend/internals/features/academics/model"
	d "mali_scheduler_backend/internals/features/academics/sessions/dto"
	svc "mali_scheduler_backend/internals/features/academics/sessions/service"
)

// oneCourseStore serves a single course and accepts every insert.
type oneCourseStore struct {
	course   am.CourseModel
	existing map[uuid.UUID]bool
}

func (s oneCourseStore) CourseWithModules(_ context.Context, id uuid.UUID) (am.CourseModel, error) {
	if id != s.course.CourseID {
		return am.CourseModel{}, svc.ErrCourseNotFound
	}
	return s.course, nil
}

func (s oneCourseStore) ScheduledCourseIDs(context.Context) ([]uuid.UUID, error) {
	return []uuid.UUID{s.course.CourseID}, nil
}

func (s oneCourseStore) Tx(_ context.Context, fn func(svc.SessionWriter) error) error {
	return fn(s)
}

func (s oneCourseStore) DeleteModuleSessions(ids []uuid.UUID) (int, error) {
	n := 0
	for _, id := range ids {
		if s.existing[id] {
			n++
		}
	}
	return n, nil
}

func (s oneCourseStore) ModulesWithSessions(ids []uuid.UUID) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, id := range ids {
		if s.existing[id] {
			out = append(out, id)
		}
	}
	return out, nil
}

func (oneCourseStore) ProfessorNames([]uuid.UUID) (map[uuid.UUID]string, error) {
	return map[uuid.UUID]string{}, nil
}

func (oneCourseStore) InsertSessions(rows []am.SessionModel) (int, error) { return len(rows), nil }

type twoDates struct{}

func (twoDates) SessionDates(context.Context, am.CourseModel) ([]time.Time, error) {
	return []time.Time{
		time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC),
	}, nil
}

type generateBody struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    d.GenerateResponse `json:"data"`
}

func newGenerateApp(t *testing.T) (*fiber.App, am.CourseModel) {
	t.Helper()
	start := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	schedule := "Lunes 6:00 pm"
	course := am.CourseModel{
		CourseID:        uuid.New(),
		CourseName:      "Fotografía",
		CourseStartDate: &start,
		CourseSchedule:  &schedule,
		Modules: []am.ModuleModel{
			{ModuleID: uuid.New(), ModuleName: "Encuadre"},
			{ModuleID: uuid.New(), ModuleName: "Revelado"},
		},
	}
	store := oneCourseStore{course: course, existing: map[uuid.UUID]bool{course.Modules[1].ModuleID: true}}
	ctl := NewSessionController(nil, nil, &svc.Generator{Store: store, Dates: twoDates{}})

	app := fiber.New(fiber.Config{JSONEncoder: sonic.Marshal, JSONDecoder: sonic.Unmarshal})
	app.Post("/courses/:id/sessions/generate", ctl.Generate)
	return app, course
}

func postGenerate(t *testing.T, app *fiber.App, target string) (int, generateBody) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("POST", target, nil))
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body generateBody
	require.NoError(t, sonic.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestGenerate_SkipsExisting(t *testing.T) {
	app, course := newGenerateApp(t)

	status, body := postGenerate(t, app, "/courses/"+course.CourseID.String()+"/sessions/generate")
	assert.Equal(t, fiber.StatusCreated, status)
	assert.True(t, body.Success)
	assert.Equal(t, course.CourseID, body.Data.CourseID)
	assert.Equal(t, 2, body.Data.Dates)
	assert.Equal(t, 2, body.Data.Created)
	assert.Zero(t, body.Data.Replaced)
	assert.Equal(t, []string{"Revelado"}, body.Data.SkippedModules)
}

func TestGenerate_Replace(t *testing.T) {
	app, course := newGenerateApp(t)

	status, body := postGenerate(t, app, "/courses/"+course.CourseID.String()+"/sessions/generate?replace=true")
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, 4, body.Data.Created)
	assert.Equal(t, 1, body.Data.Replaced)
	assert.NotNil(t, body.Data.SkippedModules)
	assert.Empty(t, body.Data.SkippedModules)
}

func TestGenerate_UnknownCourse(t *testing.T) {
	app, _ := newGenerateApp(t)

	status, body := postGenerate(t, app, "/courses/"+uuid.NewString()+"/sessions/generate")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.False(t, body.Success)
	assert.Equal(t, "Course not found", body.Message)
}

func TestGenerate_BadID(t *testing.T) {
	app, _ := newGenerateApp(t)

	status, _ := postGenerate(t, app, "/courses/not-a-uuid/sessions/generate")
	assert.Equal(t, fiber.StatusBadRequest, status)
}
