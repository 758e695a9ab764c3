// file: internals/features/academics/courses/route/course_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctrl "mali_scheduler_backend/internals/features/academics/courses/controller"
	ssvc "mali_scheduler_backend/internals/features/calendar/schedules/service"
)

// CourseRoutes mounts /courses; schedule-preview routes must already be registered.
func CourseRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, cache ssvc.Invalidator) {
	h := ctrl.NewCourseController(db, v, cache)

	g := r.Group("/courses")
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
