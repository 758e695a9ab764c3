// file: internals/features/calendar/schedules/route/calendar_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"

	ctrl "mali_scheduler_backend/internals/features/calendar/schedules/controller"
	svc "mali_scheduler_backend/internals/features/calendar/schedules/service"
)

// CalendarRoutes must be mounted before /courses/:id and /professors/:id handlers.
func CalendarRoutes(r fiber.Router, s *svc.CalendarService) {
	h := ctrl.NewCalendarController(s)

	r.Get("/calendar/events", h.Events)

	r.Get("/courses/schedule-preview", h.Preview)
	r.Get("/courses/schedule-preview/export", h.ExportPreview)

	r.Get("/professors/:id/schedule", h.ProfessorSchedule)
}
