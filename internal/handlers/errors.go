package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/example/rms/internal/middleware"
	"github.com/example/rms/internal/store"
)

// NewErrorHandler converts handler errors into JSON responses. Unexpected
// errors are logged; their text is only returned to the client in debug mode.
func NewErrorHandler(log *logrus.Logger, debug bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var validationErr *ValidationError
		var fiberErr *fiber.Error

		switch {
		case errors.As(err, &validationErr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "validation failed",
				"errors":  validationErr.Fields,
			})
		case errors.Is(err, store.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "not found"})
		case errors.Is(err, store.ErrDuplicateEmail):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": store.ErrDuplicateEmail.Error()})
		case errors.Is(err, store.ErrUnknownCustomer):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": store.ErrUnknownCustomer.Error()})
		case errors.As(err, &fiberErr):
			return c.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
		}

		log.WithFields(logrus.Fields{
			"request_id": middleware.GetRequestID(c),
			"method":     c.Method(),
			"path":       c.Path(),
		}).WithError(err).Error("request failed")

		body := fiber.Map{"message": "internal server error"}
		if debug {
			body["detail"] = err.Error()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(body)
	}
}
