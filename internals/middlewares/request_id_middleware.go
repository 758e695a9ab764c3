package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"

	"mali_scheduler_backend/internals/configs"
)

const LocalRequestID = "reqid"

// RequestContext sets X-Request-ID and bounds the handler's user context.
func RequestContext() fiber.Handler {
	timeout := configs.GetEnvDuration("HTTP_HANDLER_TIMEOUT", 15*time.Second)
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = utils.UUID()
		}
		c.Set(fiber.HeaderXRequestID, id)
		c.Locals(LocalRequestID, id)

		ctx, cancel := context.WithTimeout(c.Context(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
