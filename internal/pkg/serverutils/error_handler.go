package serverutils

import (
	"errors"

	"noteboard-be/internal/pkg/apperror"
	"noteboard-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// kindForStatus labels errors raised by Fiber itself (unknown route, wrong
// method, oversized body, rate limit).
func kindForStatus(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return string(apperror.KindNotFound)
	case fiber.StatusUnauthorized:
		return string(apperror.KindUnauthenticated)
	case fiber.StatusForbidden:
		return string(apperror.KindForbidden)
	case fiber.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	}
	if status >= 500 {
		return string(apperror.KindInternal)
	}
	return string(apperror.KindInvalidInput)
}

// ErrorHandler turns handler errors into the JSON error body. Domain errors
// keep their message; anything unexpected is logged and masked.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var (
			appErr   *apperror.Error
			fiberErr *fiber.Error
		)

		switch {
		case errors.As(err, &appErr) && appErr.Kind != apperror.KindInternal:
			status := appErr.HTTPStatus()
			return ctx.Status(status).JSON(ErrorResponse(status, string(appErr.Kind), appErr.Message))

		case errors.As(err, &fiberErr):
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, kindForStatus(fiberErr.Code), fiberErr.Message))
		}

		log.Error("HTTP", "Unhandled error", map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"error":  err,
		})
		status := fiber.StatusInternalServerError
		return ctx.Status(status).JSON(ErrorResponse(status, string(apperror.KindInternal), apperror.ErrInternal.Message))
	}
}
