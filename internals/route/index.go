// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"mali_scheduler_backend/internals/configs"
	sessionsvc "mali_scheduler_backend/internals/features/academics/sessions/service"
	hsvc "mali_scheduler_backend/internals/features/calendar/holidays/service"
	ssvc "mali_scheduler_backend/internals/features/calendar/schedules/service"
	helper "mali_scheduler_backend/internals/helpers"
	"mali_scheduler_backend/internals/middlewares"
	routeDetails "mali_scheduler_backend/internals/route/details"
)

var startTime time.Time

// Services are the long-lived pieces the scheduler shares with the routes.
type Services struct {
	Calendar  *ssvc.CalendarService
	Generator *sessionsvc.Generator
}

func SetupRoutes(app *fiber.App, db *gorm.DB, rdb *redis.Client) Services {
	startTime = time.Now()

	BaseRoutes(app)

	cache := ssvc.NewEventCache(rdb, configs.GetEnvDuration("CALENDAR_CACHE_TTL", 10*time.Minute))
	holidays := hsvc.New(db, configs.HolidayCountry)
	calendar := ssvc.NewCalendarService(ssvc.NewGormCourseReader(db), holidays, cache)
	generator := sessionsvc.NewGenerator(db, calendar)

	deps := routeDetails.Deps{
		DB:          db,
		Validate:    helper.NewValidator(),
		Holidays:    holidays,
		Calendar:    calendar,
		Cache:       cache,
		Generator:   generator,
		BulkLimiter: middlewares.BulkRateLimiter(),
	}

	// ===================== MOUNT ROUTES =====================
	// the frontend calls the API without a prefix
	log.Println("[INFO] Mounting Calendar routes...")
	routeDetails.CalendarRoutes(app, deps)

	log.Println("[INFO] Mounting Academic routes...")
	routeDetails.AcademicRoutes(app, deps)

	return Services{Calendar: calendar, Generator: generator}
}
