package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionsvc "mali_scheduler_backend/internals/features/academics/sessions/service"
	hsvc "mali_scheduler_backend/internals/features/calendar/holidays/service"
	ssvc "mali_scheduler_backend/internals/features/calendar/schedules/service"
)

// Deps is what every feature route needs; built once in SetupRoutes.
type Deps struct {
	DB          *gorm.DB
	Validate    *validator.Validate
	Holidays    *hsvc.Service
	Calendar    *ssvc.CalendarService
	Cache       ssvc.EventCache
	Generator   *sessionsvc.Generator
	BulkLimiter fiber.Handler
}
