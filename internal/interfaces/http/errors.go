package http

import (
	"errors"
	"mime"

	"github.com/gofiber/fiber/v2"

	"github.com/MUNTAZIR1234/Invoice/internal/application/dto"
	"github.com/MUNTAZIR1234/Invoice/internal/application/usecase"
	"github.com/MUNTAZIR1234/Invoice/internal/domain"
)

// respondError maps a use-case error to a status code and ErrorResponse.
func respondError(c *fiber.Ctx, err error) error {
	var inUse *usecase.PropertyInUseError
	switch {
	case errors.As(err, &inUse):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PROPERTY_IN_USE", Message: inUse.Error()})
	case errors.Is(err, domain.ErrPropertyInUse):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PROPERTY_IN_USE", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrEmptyFile), errors.Is(err, domain.ErrMissingHeader):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func badRequest(c *fiber.Ctx, resp *dto.ErrorResponse) error {
	return c.Status(fiber.StatusBadRequest).JSON(resp)
}

// sendFile answers with a download. Quotes in filename are escaped and
// non-ASCII names are sent in the RFC 2231 filename* form.
func sendFile(c *fiber.Ctx, contentType, filename string, data []byte) error {
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": filename})
	if disposition == "" {
		disposition = "attachment"
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, disposition)
	return c.Send(data)
}
