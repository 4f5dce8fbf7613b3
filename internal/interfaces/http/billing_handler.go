package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	appbilling "github.com/MUNTAZIR1234/Invoice/internal/application/billing"
	"github.com/MUNTAZIR1234/Invoice/internal/application/dto"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/billing"
)

// BillingHandler exposes the billing-cycle and amount-in-words helpers.
type BillingHandler struct {
	invoices *appbilling.InvoiceUseCase
}

// NewBillingHandler builds the handler.
func NewBillingHandler(invoices *appbilling.InvoiceUseCase) *BillingHandler {
	return &BillingHandler{invoices: invoices}
}

// Cycle GET /api/billing/cycle
func (h *BillingHandler) Cycle(c *fiber.Ctx) error {
	return c.JSON(h.invoices.Cycle(c.UserContext()))
}

// Words spells an amount in Indian-English words.
// GET /api/billing/words?amount=123.45
func (h *BillingHandler) Words(c *fiber.Ctx) error {
	raw := c.Query("amount")
	if raw == "" {
		return badRequest(c, &dto.ErrorResponse{Code: "VALIDATION", Message: "amount is required"})
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return badRequest(c, &dto.ErrorResponse{Code: "VALIDATION", Message: "amount must be a number"})
	}
	if !billing.AmountInRange(amount) {
		return badRequest(c, &dto.ErrorResponse{Code: "VALIDATION", Message: "amount must not exceed " + billing.MaxAmount.String()})
	}
	return c.JSON(dto.WordsResponse{
		Amount:    amount,
		Formatted: billing.FormatINR(amount),
		Words:     billing.AmountInWords(amount),
	})
}
