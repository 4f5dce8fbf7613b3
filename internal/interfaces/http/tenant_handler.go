package http

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/MUNTAZIR1234/Invoice/internal/application/dto"
	"github.com/MUNTAZIR1234/Invoice/internal/application/importer"
	"github.com/MUNTAZIR1234/Invoice/internal/application/usecase"
)

// TenantHandler serves /api/tenants.
type TenantHandler struct {
	uc       *usecase.TenantUseCase
	importer *importer.ImportUseCase
	v        *validator.Validate
}

// NewTenantHandler builds the handler.
func NewTenantHandler(uc *usecase.TenantUseCase, imp *importer.ImportUseCase, v *validator.Validate) *TenantHandler {
	return &TenantHandler{uc: uc, importer: imp, v: v}
}

// List searches tenants.
// GET /api/tenants?q=&propertyId=&status=
func (h *TenantHandler) List(c *fiber.Ctx) error {
	var f dto.TenantFilter
	if err := c.QueryParser(&f); err != nil {
		return badRequest(c, &dto.ErrorResponse{Code: "VALIDATION", Message: "invalid query"})
	}
	list, err := h.uc.List(f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(list))
}

// Get GET /api/tenants/:id
func (h *TenantHandler) Get(c *fiber.Ctx) error {
	t, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(t)
}

// Create POST /api/tenants
func (h *TenantHandler) Create(c *fiber.Ctx) error {
	var in dto.TenantRequest
	if e := bindJSON(c, h.v, &in); e != nil {
		return badRequest(c, e)
	}
	t, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(t)
}

// Update PUT /api/tenants/:id
func (h *TenantHandler) Update(c *fiber.Ctx) error {
	var in dto.TenantRequest
	if e := bindJSON(c, h.v, &in); e != nil {
		return badRequest(c, e)
	}
	t, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(t)
}

// Delete DELETE /api/tenants/:id
func (h *TenantHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Import loads tenants from a CSV upload (multipart field "file" or the raw body).
// POST /api/tenants/import
func (h *TenantHandler) Import(c *fiber.Ctx) error {
	r, closeFn, err := uploadReader(c)
	if err != nil {
		return badRequest(c, &dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}
	defer closeFn()
	summary, err := h.importer.ImportTenants(r)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// uploadReader returns the multipart "file" part when present, otherwise the raw body.
func uploadReader(c *fiber.Ctx) (io.Reader, func(), error) {
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return nil, nil, fmt.Errorf("open upload: %w", err)
		}
		return f, func() { _ = f.Close() }, nil
	}
	return bytes.NewReader(c.Body()), func() {}, nil
}
