package serverutils

import (
	"errors"

	"github.com/LionGx2004/cannatracker/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors returned by handlers into the JSON
// error shape callers branch on: {"error": "<message>"} with a mapped status.
// Unknown errors are logged with full detail and surfaced as a 500 with the
// error message (or a fallback literal when empty).
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var apiErr *ApiError
		if errors.As(err, &apiErr) {
			return ctx.Status(apiErr.Status).JSON(fiber.Map{"error": apiErr.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":   ctx.Path(),
			"method": ctx.Method(),
			"error":  err.Error(),
		})

		msg := err.Error()
		if msg == "" {
			msg = FallbackErrorMessage
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msg})
	}
}
