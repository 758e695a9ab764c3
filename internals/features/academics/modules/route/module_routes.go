// file: internals/features/academics/modules/route/module_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctrl "mali_scheduler_backend/internals/features/academics/modules/controller"
	ssvc "mali_scheduler_backend/internals/features/calendar/schedules/service"
)

func ModuleRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, cache ssvc.Invalidator, bulkLimiter fiber.Handler) {
	h := ctrl.NewModuleController(db, v, cache)

	g := r.Group("/modules")
	g.Post("/bulk-load", bulkLimiter, h.BulkLoad)
	g.Patch("/:id", h.Patch)

	// the frontend calls both spellings
	r.Get("/coursemodules/academic-view", h.AcademicView)
	r.Get("/coursemodule/academic-view", h.AcademicView)
}
