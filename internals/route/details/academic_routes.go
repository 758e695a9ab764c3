package details

import (
	"github.com/gofiber/fiber/v2"

	CourseRoutes "mali_scheduler_backend/internals/features/academics/courses/route"
	ModuleRoutes "mali_scheduler_backend/internals/features/academics/modules/route"
	ProfessorRoutes "mali_scheduler_backend/internals/features/academics/professors/route"
	SessionRoutes "mali_scheduler_backend/internals/features/academics/sessions/route"
)

// AcademicRoutes: /courses, /modules, /professors, /sessions.
func AcademicRoutes(api fiber.Router, d Deps) {
	CourseRoutes.CourseRoutes(api, d.DB, d.Validate, d.Cache)
	ModuleRoutes.ModuleRoutes(api, d.DB, d.Validate, d.Cache, d.BulkLimiter)
	ProfessorRoutes.ProfessorRoutes(api, d.DB, d.Validate, d.Cache, d.BulkLimiter)
	SessionRoutes.SessionRoutes(api, d.DB, d.Validate, d.Generator, d.BulkLimiter)
}
