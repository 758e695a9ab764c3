package details

import (
	"github.com/gofiber/fiber/v2"

	HolidayRoutes "mali_scheduler_backend/internals/features/calendar/holidays/route"
	ScheduleRoutes "mali_scheduler_backend/internals/features/calendar/schedules/route"
)

// CalendarRoutes: /holidays, /calendar/events, /courses/schedule-preview,
// /professors/:id/schedule. Mount before AcademicRoutes so the preview paths
// win over /courses/:id.
func CalendarRoutes(api fiber.Router, d Deps) {
	HolidayRoutes.HolidayRoutes(api, d.Validate, d.Holidays, d.Cache)
	ScheduleRoutes.CalendarRoutes(api, d.Calendar)
}
