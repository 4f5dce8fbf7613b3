package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/MUNTAZIR1234/Invoice/internal/application/dto"
	"github.com/MUNTAZIR1234/Invoice/internal/application/usecase"
)

// ExpenseHandler serves /api/expenses.
type ExpenseHandler struct {
	uc *usecase.ExpenseUseCase
	v  *validator.Validate
}

// NewExpenseHandler builds the handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase, v *validator.Validate) *ExpenseHandler {
	return &ExpenseHandler{uc: uc, v: v}
}

// List GET /api/expenses?propertyId=
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Query("propertyId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(list))
}

// Create POST /api/expenses
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.ExpenseRequest
	if e := bindJSON(c, h.v, &in); e != nil {
		return badRequest(c, e)
	}
	exp, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(exp)
}

// Delete DELETE /api/expenses/:id
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
