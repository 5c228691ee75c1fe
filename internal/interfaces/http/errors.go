package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain"
)

// respondError traduce un error de dominio a su estado HTTP. Lo que no es de dominio
// se registra y se responde 500 con un mensaje opaco.
func respondError(c *fiber.Ctx, err error) error {
	if ve, ok := domain.AsValidation(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: ve.Message,
			Field:   ve.Field,
		})
	}
	status, code := statusFor(err)
	if status == fiber.StatusInternalServerError {
		requestLogger(c).Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error de persistencia")
		return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: "error interno, intente más tarde"})
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrInvalidTransition):
		return fiber.StatusConflict, "INVALID_TRANSITION"
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusConflict, "INSUFFICIENT_STOCK"
	case errors.Is(err, domain.ErrReferenced):
		return fiber.StatusConflict, "REFERENCED"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

func notFound(c *fiber.Ctx, what string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: what + " no encontrado"})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func unknownAction(c *fiber.Ctx, action string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_ACTION", Message: "acción desconocida: " + action})
}

func done(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(dto.MutationResponse{Success: true, Message: msg})
}

// requestLogger devuelve el logger del request (ver RequestLogger) o el global.
func requestLogger(c *fiber.Ctx) *zerolog.Logger {
	if l, ok := c.Locals(localLogger).(*zerolog.Logger); ok && l != nil {
		return l
	}
	return &log.Logger
}
