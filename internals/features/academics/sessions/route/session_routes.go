// file: internals/features/academics/sessions/route/session_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctrl "mali_scheduler_backend/internals/features/academics/sessions/controller"
	svc "mali_scheduler_backend/internals/features/academics/sessions/service"
)

func SessionRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, gen *svc.Generator, bulkLimiter fiber.Handler) {
	h := ctrl.NewSessionController(db, v, gen)

	g := r.Group("/sessions")
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/by-module/:module_id", h.ByModule)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)

	r.Post("/courses/:id/sessions/generate", bulkLimiter, h.Generate)
}
