package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gastrosmart/gastrosmart-api/internal/application/dto"
	"github.com/gastrosmart/gastrosmart-api/internal/domain"
)

// respondError traduce errores de dominio a códigos HTTP estables.
// Los handlers delegan aquí para mantener una sola tabla de mapeo.
func respondError(c *fiber.Ctx, err error) error {
	var closed *domain.BusinessClosedError
	if errors.As(err, &closed) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BUSINESS_CLOSED", Message: closed.Error()})
	}
	var mismatch *domain.TotalMismatchError
	if errors.As(err, &mismatch) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TOTAL_MISMATCH", Message: mismatch.Error()})
	}
	var shortage *domain.InsufficientStockError
	if errors.As(err, &shortage) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: shortage.Error()})
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrEmptySale):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_SALE", Message: err.Error()})
	case errors.Is(err, domain.ErrPriceBelowCost):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PRICE_BELOW_COST", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrNoOpenRegister):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_OPEN_REGISTER", Message: err.Error()})
	case errors.Is(err, domain.ErrRegisterOpen):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "REGISTER_OPEN", Message: err.Error()})
	case errors.Is(err, domain.ErrRegisterClosed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "REGISTER_CLOSED", Message: err.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
