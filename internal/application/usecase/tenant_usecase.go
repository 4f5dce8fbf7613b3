package usecase

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MUNTAZIR1234/Invoice/internal/application/dto"
	"github.com/MUNTAZIR1234/Invoice/internal/domain"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/billing"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/repository"
)

// TenantUseCase manages tenants.
type TenantUseCase struct {
	repo       repository.TenantRepository
	properties repository.PropertyRepository
}

// NewTenantUseCase builds the use case.
func NewTenantUseCase(repo repository.TenantRepository, properties repository.PropertyRepository) *TenantUseCase {
	return &TenantUseCase{repo: repo, properties: properties}
}

// Create stores a new tenant.
func (uc *TenantUseCase) Create(in dto.TenantRequest) (*dto.TenantResponse, error) {
	now := time.Now()
	t := &entity.Tenant{ID: uuid.New().String(), CreatedAt: now}
	if err := uc.apply(t, in); err != nil {
		return nil, err
	}
	t.UpdatedAt = now
	if err := uc.repo.Create(t); err != nil {
		return nil, fmt.Errorf("tenant: create: %w", err)
	}
	return uc.toResponse(t, nil)
}

// Update replaces a tenant's fields.
func (uc *TenantUseCase) Update(id string, in dto.TenantRequest) (*dto.TenantResponse, error) {
	t, err := uc.require(id)
	if err != nil {
		return nil, err
	}
	if err := uc.apply(t, in); err != nil {
		return nil, err
	}
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(t); err != nil {
		return nil, fmt.Errorf("tenant: update: %w", err)
	}
	return uc.toResponse(t, nil)
}

func (uc *TenantUseCase) apply(t *entity.Tenant, in dto.TenantRequest) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	propertyID := strings.TrimSpace(in.PropertyID)
	if propertyID != "" {
		p, err := uc.properties.GetByID(propertyID)
		if err != nil {
			return fmt.Errorf("tenant: get property: %w", err)
		}
		if p == nil {
			return fmt.Errorf("%w: property %s does not exist", domain.ErrInvalidInput, propertyID)
		}
	}
	t.Name = name
	t.Email = strings.TrimSpace(in.Email)
	t.Phone = strings.TrimSpace(in.Phone)
	t.Address = strings.TrimSpace(in.Address)
	t.PropertyID = propertyID
	t.Status = entity.ParseTenantStatus(in.Status)
	t.MoveInDate = nil
	if in.MoveInDate != "" {
		d, err := billing.ParseWireDate(in.MoveInDate)
		if err != nil {
			return fmt.Errorf("%w: moveInDate must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
		t.MoveInDate = &d
	}
	return nil
}

// Delete removes a tenant. Their invoices are kept.
func (uc *TenantUseCase) Delete(id string) error {
	if _, err := uc.require(id); err != nil {
		return err
	}
	if err := uc.repo.Delete(id); err != nil {
		return fmt.Errorf("tenant: delete: %w", err)
	}
	return nil
}

// Get returns one tenant.
func (uc *TenantUseCase) Get(id string) (*dto.TenantResponse, error) {
	t, err := uc.require(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(t, nil)
}

// List returns tenants matching the filter, sorted by the name of the
// property they rent and then by tenant name. Unassigned tenants come last.
// Query matches name, email or phone, ignoring case.
func (uc *TenantUseCase) List(filter dto.TenantFilter) ([]*dto.TenantResponse, error) {
	tenants, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("tenant: list: %w", err)
	}
	props, err := uc.propertyIndex()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(filter.Query))
	var status entity.TenantStatus
	if filter.Status != "" {
		status = entity.ParseTenantStatus(filter.Status)
	}
	matched := make([]*entity.Tenant, 0, len(tenants))
	for _, t := range tenants {
		if filter.PropertyID != "" && t.PropertyID != filter.PropertyID {
			continue
		}
		if status != "" && t.Status != status {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(t.Name), q) &&
			!strings.Contains(strings.ToLower(t.Email), q) &&
			!strings.Contains(strings.ToLower(t.Phone), q) {
			continue
		}
		matched = append(matched, t)
	}

	sortKey := func(t *entity.Tenant) string {
		if p, ok := props[t.PropertyID]; ok {
			return strings.ToLower(p.DisplayName())
		}
		return "\uffff"
	}
	sort.SliceStable(matched, func(i, j int) bool {
		ki, kj := sortKey(matched[i]), sortKey(matched[j])
		if ki != kj {
			return ki < kj
		}
		return strings.ToLower(matched[i].Name) < strings.ToLower(matched[j].Name)
	})

	out := make([]*dto.TenantResponse, 0, len(matched))
	for _, t := range matched {
		resp, err := uc.toResponse(t, props)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func (uc *TenantUseCase) require(id string) (*entity.Tenant, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("tenant: get: %w", err)
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func (uc *TenantUseCase) propertyIndex() (map[string]*entity.Property, error) {
	list, err := uc.properties.List()
	if err != nil {
		return nil, fmt.Errorf("tenant: list properties: %w", err)
	}
	idx := make(map[string]*entity.Property, len(list))
	for _, p := range list {
		idx[p.ID] = p
	}
	return idx, nil
}

// toResponse resolves the property name; props may be nil to look it up.
func (uc *TenantUseCase) toResponse(t *entity.Tenant, props map[string]*entity.Property) (*dto.TenantResponse, error) {
	propertyName := "Unassigned"
	if t.PropertyID != "" {
		var p *entity.Property
		if props != nil {
			p = props[t.PropertyID]
		} else {
			var err error
			if p, err = uc.properties.GetByID(t.PropertyID); err != nil {
				return nil, fmt.Errorf("tenant: get property: %w", err)
			}
		}
		if p != nil {
			propertyName = p.DisplayName()
		}
	}
	resp := &dto.TenantResponse{
		ID:           t.ID,
		Name:         t.Name,
		Email:        t.Email,
		Phone:        t.Phone,
		Address:      t.Address,
		PropertyID:   t.PropertyID,
		PropertyName: propertyName,
		Status:       string(t.Status),
	}
	if t.MoveInDate != nil {
		resp.MoveInDate = billing.WireDate(*t.MoveInDate)
	}
	return resp, nil
}
