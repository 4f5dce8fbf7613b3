package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MUNTAZIR1234/Invoice/internal/application/dto"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/billing"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/repository"
)

// DashboardUseCase summarises the portfolio.
type DashboardUseCase struct {
	tenants    repository.TenantRepository
	properties repository.PropertyRepository
	invoices   repository.InvoiceRepository
	expenses   repository.ExpenseRepository
	now        func() time.Time
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(
	tenants repository.TenantRepository,
	properties repository.PropertyRepository,
	invoices repository.InvoiceRepository,
	expenses repository.ExpenseRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		tenants:    tenants,
		properties: properties,
		invoices:   invoices,
		expenses:   expenses,
		now:        time.Now,
	}
}

// WithClock replaces the clock used for the current cycle.
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetSummary loads the four collections in parallel and aggregates them.
// Occupancy is occupied properties over all properties, as a percentage with
// one decimal.
func (uc *DashboardUseCase) GetSummary(_ context.Context) (*dto.DashboardSummaryDTO, error) {
	// ── Parallel loads ────────────────────────────────────────────────────────
	type tenantsResult struct {
		rows []*entity.Tenant
		err  error
	}
	type propertiesResult struct {
		rows []*entity.Property
		err  error
	}
	type invoicesResult struct {
		rows []*entity.Invoice
		err  error
	}
	type expensesResult struct {
		rows []*entity.Expense
		err  error
	}

	tenantsCh := make(chan tenantsResult, 1)
	propertiesCh := make(chan propertiesResult, 1)
	invoicesCh := make(chan invoicesResult, 1)
	expensesCh := make(chan expensesResult, 1)

	go func() {
		rows, err := uc.tenants.List()
		tenantsCh <- tenantsResult{rows, err}
	}()
	go func() {
		rows, err := uc.properties.List()
		propertiesCh <- propertiesResult{rows, err}
	}()
	go func() {
		rows, err := uc.invoices.List(repository.InvoiceFilter{})
		invoicesCh <- invoicesResult{rows, err}
	}()
	go func() {
		rows, err := uc.expenses.List("")
		expensesCh <- expensesResult{rows, err}
	}()

	tenants := <-tenantsCh
	properties := <-propertiesCh
	invoices := <-invoicesCh
	expenses := <-expensesCh

	if tenants.err != nil {
		return nil, fmt.Errorf("dashboard: tenants: %w", tenants.err)
	}
	if properties.err != nil {
		return nil, fmt.Errorf("dashboard: properties: %w", properties.err)
	}
	if invoices.err != nil {
		return nil, fmt.Errorf("dashboard: invoices: %w", invoices.err)
	}
	if expenses.err != nil {
		return nil, fmt.Errorf("dashboard: expenses: %w", expenses.err)
	}

	// ── Invoices ──────────────────────────────────────────────────────────────
	out := &dto.DashboardSummaryDTO{
		TotalInvoiced:    decimal.Zero,
		TotalPaid:        decimal.Zero,
		TotalExpenses:    decimal.Zero,
		InvoiceCount:     len(invoices.rows),
		InvoicesByState:  map[string]int{},
		TenantCount:      len(tenants.rows),
		PropertyCount:    len(properties.rows),
		PropertiesByType: map[string]int{},
		OccupancyRate:    decimal.Zero,
		CurrentCycle:     billing.CycleFor(uc.now()).Label(),
	}
	for _, s := range []entity.InvoiceStatus{entity.InvoiceStatusDraft, entity.InvoiceStatusSent, entity.InvoiceStatusPaid, entity.InvoiceStatusOverdue} {
		out.InvoicesByState[string(s)] = 0
	}
	for _, inv := range invoices.rows {
		out.TotalInvoiced = out.TotalInvoiced.Add(inv.TotalAmount())
		if inv.Status == entity.InvoiceStatusPaid {
			out.TotalPaid = out.TotalPaid.Add(inv.TotalAmount())
		}
		out.InvoicesByState[string(inv.Status)]++
	}
	out.TotalOutstanding = out.TotalInvoiced.Sub(out.TotalPaid)

	// ── Expenses ──────────────────────────────────────────────────────────────
	for _, e := range expenses.rows {
		out.TotalExpenses = out.TotalExpenses.Add(e.Amount)
	}
	out.NetIncome = out.TotalPaid.Sub(out.TotalExpenses)

	// ── Occupancy ─────────────────────────────────────────────────────────────
	occupied := make(map[string]bool)
	for _, t := range tenants.rows {
		if t.Status == entity.TenantActive {
			out.ActiveTenantCount++
		}
		if t.PropertyID != "" {
			occupied[t.PropertyID] = true
		}
	}
	for _, p := range properties.rows {
		out.PropertiesByType[string(p.Type)]++
		if occupied[p.ID] {
			out.OccupiedCount++
		}
	}
	if out.PropertyCount > 0 {
		out.OccupancyRate = decimal.NewFromInt(int64(out.OccupiedCount)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(out.PropertyCount))).
			Round(1)
	}
	return out, nil
}
