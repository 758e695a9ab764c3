package controller

import (
	"context"
	"errors"
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
	hsvc "mali_scheduler_backend/internals/features/calendar/holidays/service"
	svc "mali_scheduler_backend/internals/features/calendar/schedules/service"
)

type stubCourses struct {
	courses []am.CourseModel
	prof    uuid.UUID
}

func (s stubCourses) ListCourses(context.Context) ([]am.CourseModel, error) { return s.courses, nil }

func (s stubCourses) ProfessorCourses(_ context.Context, id uuid.UUID) ([]am.CourseModel, error) {
	if id != s.prof {
		return nil, svc.ErrProfessorNotFound
	}
	return s.courses, nil
}

type stubHolidays struct{}

func (stubHolidays) Snapshot(context.Context) (hsvc.Calendar, error) { return hsvc.PeruCalendar{}, nil }

type listBody struct {
	Success bool                `json:"success"`
	Data    []svc.CalendarEvent `json:"data"`
}

func newApp(t *testing.T) (*fiber.App, uuid.UUID) {
	t.Helper()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	schedule := "Lunes y Miércoles 8:00 pm - 10:00 pm"
	category := "graficas"
	prof := uuid.New()

	courses := stubCourses{prof: prof, courses: []am.CourseModel{{
		CourseID:             uuid.New(),
		CourseName:           "Pintura",
		CourseStartDate:      &start,
		CourseSchedule:       &schedule,
		CourseCategory:       &category,
		CourseDurationMonths: 1,
	}}}
	h := NewCalendarController(svc.NewCalendarService(courses, stubHolidays{}, nil))

	app := fiber.New(fiber.Config{JSONEncoder: sonic.Marshal, JSONDecoder: sonic.Unmarshal})
	app.Get("/calendar/events", h.Events)
	app.Get("/courses/schedule-preview", h.Preview)
	app.Get("/courses/schedule-preview/export", h.ExportPreview)
	app.Get("/professors/:id/schedule", h.ProfessorSchedule)
	return app, prof
}

func decode(t *testing.T, body io.Reader, v any) {
	t.Helper()
	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	require.NoError(t, sonic.Unmarshal(raw, v))
}

func TestEvents(t *testing.T) {
	app, _ := newApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/calendar/events", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body listBody
	decode(t, resp.Body, &body)
	assert.True(t, body.Success)
	require.Len(t, body.Data, 10) // 9 sessions + New Year marker

	assert.Equal(t, "holiday-2024-01-01", body.Data[0].ID)
	assert.Equal(t, "2024-01-03T20:00", body.Data[1].Start)
}

func TestEvents_UnknownCategoryKeepsHolidays(t *testing.T) {
	app, _ := newApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/calendar/events?category=musica", nil))
	require.NoError(t, err)

	var body listBody
	decode(t, resp.Body, &body)
	require.Len(t, body.Data, 1)
	assert.Equal(t, svc.KindHoliday, body.Data[0].Kind)
}

func TestProfessorSchedule(t *testing.T) {
	app, prof := newApp(t)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"known", "/professors/" + prof.String() + "/schedule", fiber.StatusOK},
		{"unknown", "/professors/" + uuid.NewString() + "/schedule", fiber.StatusNotFound},
		{"bad id", "/professors/abc/schedule", fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestPreviewAndExport(t *testing.T) {
	app, _ := newApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/courses/schedule-preview", nil))
	require.NoError(t, err)
	var body struct {
		Data []svc.PreviewRow `json:"data"`
	}
	decode(t, resp.Body, &body)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "20:00", body.Data[0].StartTime)
	assert.Len(t, body.Data[0].SessionDates, 9)

	resp, err = app.Test(httptest.NewRequest("GET", "/courses/schedule-preview/export", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "cronograma_")
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "PK", string(raw[:2])) // xlsx is a zip
}

func TestExport_HidesWorkbookErrors(t *testing.T) {
	courses := stubCourses{}
	h := NewCalendarController(svc.NewCalendarService(courses, stubHolidays{}, nil))
	h.Export = func([]svc.PreviewRow) ([]byte, error) {
		return nil, errors.New("zip: write /tmp/excelize-123: no space left on device")
	}
	app := fiber.New(fiber.Config{JSONEncoder: sonic.Marshal, JSONDecoder: sonic.Unmarshal})
	app.Get("/courses/schedule-preview/export", h.ExportPreview)

	resp, err := app.Test(httptest.NewRequest("GET", "/courses/schedule-preview/export", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
	}
	decode(t, resp.Body, &body)
	assert.Equal(t, "failed to build export", body.Message)
	assert.NotContains(t, body.Message, "tmp")
}
