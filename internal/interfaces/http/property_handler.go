package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/MUNTAZIR1234/Invoice/internal/application/dto"
	"github.com/MUNTAZIR1234/Invoice/internal/application/importer"
	"github.com/MUNTAZIR1234/Invoice/internal/application/usecase"
)

// PropertyHandler serves /api/properties.
type PropertyHandler struct {
	uc       *usecase.PropertyUseCase
	importer *importer.ImportUseCase
	v        *validator.Validate
}

// NewPropertyHandler builds the handler.
func NewPropertyHandler(uc *usecase.PropertyUseCase, imp *importer.ImportUseCase, v *validator.Validate) *PropertyHandler {
	return &PropertyHandler{uc: uc, importer: imp, v: v}
}

// List returns every property with its occupancy.
// GET /api/properties
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(list))
}

// Get GET /api/properties/:id
func (h *PropertyHandler) Get(c *fiber.Ctx) error {
	p, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(p)
}

// Create POST /api/properties
func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	var in dto.PropertyRequest
	if e := bindJSON(c, h.v, &in); e != nil {
		return badRequest(c, e)
	}
	p, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// Update PUT /api/properties/:id
func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	var in dto.PropertyRequest
	if e := bindJSON(c, h.v, &in); e != nil {
		return badRequest(c, e)
	}
	p, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(p)
}

// Delete refuses while any tenant is assigned to the property.
// DELETE /api/properties/:id
func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Import loads properties from a CSV upload (multipart field "file" or the raw body).
// POST /api/properties/import
func (h *PropertyHandler) Import(c *fiber.Ctx) error {
	r, closeFn, err := uploadReader(c)
	if err != nil {
		return badRequest(c, &dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}
	defer closeFn()
	summary, err := h.importer.ImportProperties(r)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
