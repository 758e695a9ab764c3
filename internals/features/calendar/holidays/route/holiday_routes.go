// file: internals/features/calendar/holidays/route/holiday_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	ctrl "mali_scheduler_backend/internals/features/calendar/holidays/controller"
	hsvc "mali_scheduler_backend/internals/features/calendar/holidays/service"
	ssvc "mali_scheduler_backend/internals/features/calendar/schedules/service"
)

func HolidayRoutes(r fiber.Router, v *validator.Validate, s *hsvc.Service, cache ssvc.Invalidator) {
	h := ctrl.NewNationalHolidayController(v, s, cache)

	g := r.Group("/holidays")
	g.Get("/", h.List)
	g.Get("/calendar", h.Calendar)
	g.Get("/:id", h.GetByID)
	g.Post("/", h.Create)
	g.Patch("/:id", h.Patch)
	g.Delete("/:id", h.Delete)
}
