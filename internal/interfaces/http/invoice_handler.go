package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/MUNTAZIR1234/Invoice/internal/application/billing"
	"github.com/MUNTAZIR1234/Invoice/internal/application/dto"
)

// InvoiceHandler serves /api/invoices.
type InvoiceHandler struct {
	uc  *billing.InvoiceUseCase
	pdf *billing.PDFUseCase
	v   *validator.Validate
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, pdf *billing.PDFUseCase, v *validator.Validate) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdf: pdf, v: v}
}

// List returns invoices in creation order.
// GET /api/invoices?tenantId=&status=
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var f dto.InvoiceFilter
	if err := c.QueryParser(&f); err != nil {
		return badRequest(c, &dto.ErrorResponse{Code: "VALIDATION", Message: "invalid query"})
	}
	list, err := h.uc.List(c.UserContext(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(list))
}

// Get GET /api/invoices/:id
func (h *InvoiceHandler) Get(c *fiber.Ctx) error {
	inv, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inv)
}

// Create allocates the next INV-NNN id.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.InvoiceRequest
	if e := bindJSON(c, h.v, &in); e != nil {
		return badRequest(c, e)
	}
	inv, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(inv)
}

// Update PUT /api/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.InvoiceRequest
	if e := bindJSON(c, h.v, &in); e != nil {
		return badRequest(c, e)
	}
	inv, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inv)
}

// UpdateStatus PATCH /api/invoices/:id/status
func (h *InvoiceHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.InvoiceStatusRequest
	if e := bindJSON(c, h.v, &in); e != nil {
		return badRequest(c, e)
	}
	inv, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inv)
}

// Delete DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// NextID reports the id the next invoice would get.
// GET /api/invoices/next-id
func (h *InvoiceHandler) NextID(c *fiber.Ctx) error {
	id, err := h.uc.NextID(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NextIDResponse{ID: id})
}

// Preview computes total, words and period for the invoice form.
// POST /api/invoices/preview
func (h *InvoiceHandler) Preview(c *fiber.Ctx) error {
	var in dto.PreviewRequest
	if e := bindJSON(c, h.v, &in); e != nil {
		return badRequest(c, e)
	}
	resp, err := h.uc.Preview(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// PDF downloads the printable invoice.
// GET /api/invoices/:id/pdf
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	data, filename, err := h.pdf.DownloadInvoicePDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, "application/pdf", filename, data)
}
