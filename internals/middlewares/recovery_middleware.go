package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"mali_scheduler_backend/internals/configs"
)

// RecoveryMiddleware turns panics into 500 through the app error handler.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: configs.GetEnvBool("PANIC_STACK_TRACE", true),
	})
}
