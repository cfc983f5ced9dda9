package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/rms/internal/metrics"
)

// Metrics records request counts and latency per matched route. Handler
// errors are resolved through the app's error handler first so the recorded
// status is the one the client receives.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		done := metrics.RequestStarted()

		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		route := ""
		if r := c.Route(); r != nil {
			route = r.Path
		}
		done(c.Method(), route, c.Response().StatusCode())
		return nil
	}
}
