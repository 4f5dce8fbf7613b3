package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/MUNTAZIR1234/Invoice/internal/application/dto"
	"github.com/MUNTAZIR1234/Invoice/internal/application/usecase"
)

// CompanyHandler serves the landlord profile and invoice settings.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
	v  *validator.Validate
}

// NewCompanyHandler builds the handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase, v *validator.Validate) *CompanyHandler {
	return &CompanyHandler{uc: uc, v: v}
}

// Get GET /api/company
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	resp, err := h.uc.Get()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Update changes only the fields present in the body.
// PUT /api/company
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if e := bindJSON(c, h.v, &in); e != nil {
		return badRequest(c, e)
	}
	resp, err := h.uc.Update(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
