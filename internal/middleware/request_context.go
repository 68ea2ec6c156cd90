package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// RequestContext gives each request its own cancellable user context, derived
// from the server context, and cancels it once the handler chain returns.
// Work started from c.UserContext() stops on server shutdown or when the
// request is done.
func RequestContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithCancel(c.Context())
		defer cancel()

		c.SetUserContext(ctx)
		return c.Next()
	}
}
