package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/MUNTAZIR1234/Invoice/internal/application/dto"
	"github.com/MUNTAZIR1234/Invoice/internal/domain"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/billing"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/repository"
)

// DefaultItems are billed when a new invoice arrives without any items.
func DefaultItems() []entity.LineItem {
	return []entity.LineItem{
		{Description: "Rent Charges", Amount: decimal.Zero},
		{Description: "Repair & Municipal Tax", Amount: decimal.Zero},
		{Description: "Service charges for common area", Amount: decimal.Zero},
	}
}

// InvoiceUseCase creates, edits and numbers invoices.
type InvoiceUseCase struct {
	invoices  repository.InvoiceRepository
	allocator repository.InvoiceAllocator
	tenants   repository.TenantRepository
	company   CompanySource
	policy    billing.DueDatePolicy
	now       func() time.Time
	log       zerolog.Logger
}

// NewInvoiceUseCase builds the use case. A nil policy means end of the
// cycle's first month.
func NewInvoiceUseCase(
	invoices repository.InvoiceRepository,
	allocator repository.InvoiceAllocator,
	tenants repository.TenantRepository,
	company CompanySource,
	policy billing.DueDatePolicy,
	log zerolog.Logger,
) *InvoiceUseCase {
	if policy == nil {
		policy = billing.EndOfFirstMonth{}
	}
	return &InvoiceUseCase{
		invoices:  invoices,
		allocator: allocator,
		tenants:   tenants,
		company:   company,
		policy:    policy,
		now:       time.Now,
		log:       log,
	}
}

// WithClock replaces the clock used for "today". Tests only.
func (uc *InvoiceUseCase) WithClock(now func() time.Time) *InvoiceUseCase {
	uc.now = now
	return uc
}

func (uc *InvoiceUseCase) today() time.Time {
	t := uc.now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Create allocates the next INV-NNN id and stores the invoice.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.InvoiceRequest) (*dto.InvoiceResponse, error) {
	tenant, err := uc.requireTenant(in.TenantID)
	if err != nil {
		return nil, err
	}
	company, err := uc.company.Current()
	if err != nil {
		return nil, fmt.Errorf("invoice: load company: %w", err)
	}

	today := uc.today()
	inv := &entity.Invoice{
		TenantID:     tenant.ID,
		CreatedDate:  today,
		Status:       entity.InvoiceStatusDraft,
		DocumentType: entity.DocumentRentInvoice,
		Notes:        orDefault(company.DefaultNotes, entity.DefaultNotes),
		BankDetails:  orDefault(company.DefaultBankDetails, entity.DefaultBankDetails),
	}
	if in.Items == nil {
		inv.SetItems(DefaultItems())
	} else {
		items, err := toLineItems(in.Items)
		if err != nil {
			return nil, err
		}
		inv.SetItems(items)
	}
	if err := uc.applyRequest(inv, in, today); err != nil {
		return nil, err
	}

	err = uc.allocator.RunAllocation(ctx, func(invoices repository.InvoiceRepository) error {
		ids, err := invoices.ListIDs()
		if err != nil {
			return fmt.Errorf("invoice: list ids: %w", err)
		}
		inv.ID = billing.NextInvoiceID(ids)
		return invoices.Create(inv)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("invoice_id", inv.ID).
		Str("tenant_id", inv.TenantID).
		Str("total", inv.TotalAmount().String()).
		Msg("invoice created")
	return toInvoiceResponse(inv, tenant.Name), nil
}

// Update replaces the editable fields of an invoice. The id never changes.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.InvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.requireInvoice(id)
	if err != nil {
		return nil, err
	}
	tenant, err := uc.requireTenant(in.TenantID)
	if err != nil {
		return nil, err
	}
	inv.TenantID = tenant.ID

	if in.Items != nil {
		items, err := toLineItems(in.Items)
		if err != nil {
			return nil, err
		}
		inv.SetItems(items)
	}
	if err := uc.applyRequest(inv, in, inv.CreatedDate); err != nil {
		return nil, err
	}
	if err := uc.invoices.Update(inv); err != nil {
		return nil, fmt.Errorf("invoice: update: %w", err)
	}
	return toInvoiceResponse(inv, tenant.Name), nil
}

// applyRequest copies the optional request fields onto inv. today anchors
// the billing cycle when no period label is given.
func (uc *InvoiceUseCase) applyRequest(inv *entity.Invoice, in dto.InvoiceRequest, today time.Time) error {
	if in.CreatedDate != "" {
		d, err := billing.ParseWireDate(in.CreatedDate)
		if err != nil {
			return fmt.Errorf("%w: createdDate must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
		inv.CreatedDate = d
		today = d
	}

	label := in.BillingPeriod
	if label == "" && inv.BillingPeriod != "" {
		label = inv.BillingPeriod
	}
	period := billing.Derive(label, today, uc.policy)
	inv.BillingPeriod = period.Label

	switch {
	case in.DueDate != "":
		d, err := billing.ParseWireDate(in.DueDate)
		if err != nil {
			return fmt.Errorf("%w: dueDate must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
		inv.DueDate = d
	case inv.DueDate.IsZero() || in.BillingPeriod != "":
		inv.DueDate = period.DueDate
	}

	if in.ReceivedDate != "" {
		d, err := billing.ParseWireDate(in.ReceivedDate)
		if err != nil {
			return fmt.Errorf("%w: receivedDate must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
		inv.ReceivedDate = &d
	}
	if in.Status != "" {
		st, ok := entity.ParseInvoiceStatus(in.Status)
		if !ok {
			return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, in.Status)
		}
		inv.Status = st
	}
	if in.DocumentType != "" {
		dt, ok := entity.ParseDocumentType(in.DocumentType)
		if !ok {
			return fmt.Errorf("%w: unknown document type %q", domain.ErrInvalidInput, in.DocumentType)
		}
		inv.DocumentType = dt
	}
	if in.Notes != nil {
		inv.Notes = *in.Notes
	}
	if in.BankDetails != nil {
		inv.BankDetails = *in.BankDetails
	}
	return nil
}

// UpdateStatus sets the status and, when given, the date payment was received.
func (uc *InvoiceUseCase) UpdateStatus(_ context.Context, id string, in dto.InvoiceStatusRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.requireInvoice(id)
	if err != nil {
		return nil, err
	}
	st, ok := entity.ParseInvoiceStatus(in.Status)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, in.Status)
	}
	inv.Status = st
	if in.ReceivedDate != "" {
		d, err := billing.ParseWireDate(in.ReceivedDate)
		if err != nil {
			return nil, fmt.Errorf("%w: receivedDate must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
		inv.ReceivedDate = &d
	}
	if err := uc.invoices.Update(inv); err != nil {
		return nil, fmt.Errorf("invoice: update status: %w", err)
	}
	return toInvoiceResponse(inv, uc.tenantName(inv.TenantID)), nil
}

// Delete removes an invoice. Its number is not handed out again unless it
// was the highest one.
func (uc *InvoiceUseCase) Delete(_ context.Context, id string) error {
	if _, err := uc.requireInvoice(id); err != nil {
		return err
	}
	if err := uc.invoices.Delete(id); err != nil {
		return fmt.Errorf("invoice: delete: %w", err)
	}
	uc.log.Info().Str("invoice_id", id).Msg("invoice deleted")
	return nil
}

// Get returns one invoice.
func (uc *InvoiceUseCase) Get(_ context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.requireInvoice(id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, uc.tenantName(inv.TenantID)), nil
}

// List returns invoices in creation order, optionally filtered.
func (uc *InvoiceUseCase) List(_ context.Context, in dto.InvoiceFilter) ([]*dto.InvoiceResponse, error) {
	filter := repository.InvoiceFilter{TenantID: in.TenantID}
	if in.Status != "" {
		st, ok := entity.ParseInvoiceStatus(in.Status)
		if !ok {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, in.Status)
		}
		filter.Status = st
	}
	list, err := uc.invoices.List(filter)
	if err != nil {
		return nil, fmt.Errorf("invoice: list: %w", err)
	}
	names := map[string]string{}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		name, ok := names[inv.TenantID]
		if !ok {
			name = uc.tenantName(inv.TenantID)
			names[inv.TenantID] = name
		}
		out = append(out, toInvoiceResponse(inv, name))
	}
	return out, nil
}

// NextID reports the id the next created invoice would get. Another writer
// may take it first; Create always allocates afresh.
func (uc *InvoiceUseCase) NextID(_ context.Context) (string, error) {
	ids, err := uc.invoices.ListIDs()
	if err != nil {
		return "", fmt.Errorf("invoice: list ids: %w", err)
	}
	return billing.NextInvoiceID(ids), nil
}

// Preview computes what the invoice form shows for the given items.
func (uc *InvoiceUseCase) Preview(ctx context.Context, in dto.PreviewRequest) (*dto.PreviewResponse, error) {
	items, err := toLineItems(in.Items)
	if err != nil {
		return nil, err
	}
	next, err := uc.NextID(ctx)
	if err != nil {
		return nil, err
	}
	total := entity.SumItems(items)
	period := billing.Derive(in.BillingPeriod, uc.today(), uc.policy)
	return &dto.PreviewResponse{
		NextID:        next,
		TotalAmount:   total,
		AmountInWords: billing.AmountInWords(total),
		BillingPeriod: period.Label,
		DueDate:       billing.WireDate(period.DueDate),
		KnownPeriod:   period.Known,
	}, nil
}

// Cycle describes the current billing cycle and the choices offered for a
// new invoice.
func (uc *InvoiceUseCase) Cycle(_ context.Context) *dto.CycleResponse {
	today := uc.today()
	opts := billing.CycleOptions(today)
	resp := &dto.CycleResponse{
		Today:   billing.WireDate(today),
		Current: uc.cycleDTO(opts[0], today),
		Options: make([]dto.CycleDTO, 0, len(opts)),
	}
	for _, c := range opts {
		resp.Options = append(resp.Options, uc.cycleDTO(c, today))
	}
	return resp
}

func (uc *InvoiceUseCase) cycleDTO(c billing.Cycle, today time.Time) dto.CycleDTO {
	return dto.CycleDTO{
		Label:     c.Label(),
		Half:      c.Half.String(),
		StartDate: billing.WireDate(c.Start()),
		EndDate:   billing.WireDate(c.End()),
		DueDate:   billing.WireDate(uc.policy.DueDate(c, today)),
	}
}

func (uc *InvoiceUseCase) requireInvoice(id string) (*entity.Invoice, error) {
	inv, err := uc.invoices.GetByID(strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("invoice: get: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

func (uc *InvoiceUseCase) requireTenant(id string) (*entity.Tenant, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: tenantId is required", domain.ErrInvalidInput)
	}
	tenant, err := uc.tenants.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("invoice: get tenant: %w", err)
	}
	if tenant == nil {
		return nil, fmt.Errorf("%w: tenant %s", domain.ErrNotFound, id)
	}
	return tenant, nil
}

func (uc *InvoiceUseCase) tenantName(id string) string {
	t, err := uc.tenants.GetByID(id)
	if err != nil || t == nil {
		return ""
	}
	return t.Name
}

func toLineItems(in []dto.LineItemDTO) ([]entity.LineItem, error) {
	items := make([]entity.LineItem, 0, len(in))
	for i, it := range in {
		if it.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: item %d has a negative amount", domain.ErrInvalidInput, i+1)
		}
		if !billing.AmountInRange(it.Amount) {
			return nil, fmt.Errorf("%w: item %d exceeds %s", domain.ErrInvalidInput, i+1, billing.MaxAmount)
		}
		items = append(items, entity.LineItem{Description: strings.TrimSpace(it.Description), Amount: it.Amount})
	}
	return items, nil
}

func toInvoiceResponse(inv *entity.Invoice, tenantName string) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:            inv.ID,
		TenantID:      inv.TenantID,
		TenantName:    tenantName,
		TotalAmount:   inv.TotalAmount(),
		AmountInWords: billing.AmountInWords(inv.TotalAmount()),
		CreatedDate:   billing.WireDate(inv.CreatedDate),
		DueDate:       billing.WireDate(inv.DueDate),
		Status:        string(inv.Status),
		BillingPeriod: inv.BillingPeriod,
		Notes:         inv.Notes,
		BankDetails:   inv.BankDetails,
		DocumentType:  string(inv.DocumentType),
	}
	if inv.ReceivedDate != nil {
		resp.ReceivedDate = billing.WireDate(*inv.ReceivedDate)
	}
	items := inv.Items()
	resp.Items = make([]dto.LineItemDTO, 0, len(items))
	for _, it := range items {
		resp.Items = append(resp.Items, dto.LineItemDTO{Description: it.Description, Amount: it.Amount})
	}
	return resp
}
