package lib

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/theleywin/talentnest/src/apperr"
)

// ErrorHandler renders errors returned by handlers. Application errors keep
// their status and code; anything else becomes an opaque 500.
func ErrorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if appErr, ok := apperr.From(err); ok {
			return c.Status(appErr.Code.HTTPStatus()).JSON(fiber.Map{
				"message": appErr.Message,
				"code":    appErr.Code,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(MessageResponse(fiberErr.Message))
		}

		log.ErrorContext(c.UserContext(), "request failed",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Any("error", err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(MessageResponse("Server error"))
	}
}
