// file: internals/features/academics/professors/route/professor_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctrl "mali_scheduler_backend/internals/features/academics/professors/controller"
	ssvc "mali_scheduler_backend/internals/features/calendar/schedules/service"
)

func ProfessorRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, cache ssvc.Invalidator, bulkLimiter fiber.Handler) {
	h := ctrl.NewProfessorController(db, v, cache)

	g := r.Group("/professors")

	// static paths first, then :id
	g.Get("/", h.List)
	g.Get("/available-courses", h.AvailableCourses)
	g.Post("/", h.Create)
	g.Post("/bulk-load", bulkLimiter, h.BulkLoad)
	g.Delete("/bulk-delete-professors", bulkLimiter, h.BulkDelete)

	g.Get("/:id/details", h.Details)
	g.Put("/:id/details", h.UpdateDetails)
	g.Get("/:id/sessions", h.Sessions)
	g.Put("/:id/module/:module_id/syllabus-status", h.UpdateSyllabusStatus)
	g.Delete("/:id", h.Delete)
}
