package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MUNTAZIR1234/Invoice/internal/application/dto"
	"github.com/MUNTAZIR1234/Invoice/internal/domain"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/repository"
)

// PropertyInUseError says which property is still rented and by how many tenants.
type PropertyInUseError struct {
	Property string
	Tenants  int
}

func (e *PropertyInUseError) Error() string {
	noun := "tenant"
	if e.Tenants != 1 {
		noun = "tenants"
	}
	return fmt.Sprintf("cannot delete %s: it is assigned to %d %s; reassign or remove them first", e.Property, e.Tenants, noun)
}

func (e *PropertyInUseError) Unwrap() error { return domain.ErrPropertyInUse }

// PropertyUseCase manages rentable units.
type PropertyUseCase struct {
	repo    repository.PropertyRepository
	tenants repository.TenantRepository
}

// NewPropertyUseCase builds the use case.
func NewPropertyUseCase(repo repository.PropertyRepository, tenants repository.TenantRepository) *PropertyUseCase {
	return &PropertyUseCase{repo: repo, tenants: tenants}
}

// Create stores a new property.
func (uc *PropertyUseCase) Create(in dto.PropertyRequest) (*dto.PropertyResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	now := time.Now()
	p := &entity.Property{
		ID:         uuid.New().String(),
		Name:       strings.TrimSpace(in.Name),
		Type:       entity.ParsePropertyType(in.Type),
		Address:    strings.TrimSpace(in.Address),
		UnitNumber: strings.TrimSpace(in.UnitNumber),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, fmt.Errorf("property: create: %w", err)
	}
	return toPropertyResponse(p, false), nil
}

// Update replaces a property's fields.
func (uc *PropertyUseCase) Update(id string, in dto.PropertyRequest) (*dto.PropertyResponse, error) {
	p, err := uc.require(id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	p.Name = strings.TrimSpace(in.Name)
	p.Type = entity.ParsePropertyType(in.Type)
	p.Address = strings.TrimSpace(in.Address)
	p.UnitNumber = strings.TrimSpace(in.UnitNumber)
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, fmt.Errorf("property: update: %w", err)
	}
	n, err := uc.tenants.CountByProperty(p.ID)
	if err != nil {
		return nil, fmt.Errorf("property: count tenants: %w", err)
	}
	return toPropertyResponse(p, n > 0), nil
}

// Delete removes a property no tenant points at. Otherwise it fails with a
// *PropertyInUseError and nothing changes.
func (uc *PropertyUseCase) Delete(id string) error {
	p, err := uc.require(id)
	if err != nil {
		return err
	}
	n, err := uc.tenants.CountByProperty(p.ID)
	if err != nil {
		return fmt.Errorf("property: count tenants: %w", err)
	}
	if n > 0 {
		return &PropertyInUseError{Property: p.DisplayName(), Tenants: n}
	}
	if err := uc.repo.Delete(p.ID); err != nil {
		// A tenant was assigned between the count and the delete.
		if errors.Is(err, domain.ErrPropertyInUse) {
			n, _ = uc.tenants.CountByProperty(p.ID)
			return &PropertyInUseError{Property: p.DisplayName(), Tenants: max(n, 1)}
		}
		return fmt.Errorf("property: delete: %w", err)
	}
	return nil
}

// Get returns one property.
func (uc *PropertyUseCase) Get(id string) (*dto.PropertyResponse, error) {
	p, err := uc.require(id)
	if err != nil {
		return nil, err
	}
	n, err := uc.tenants.CountByProperty(p.ID)
	if err != nil {
		return nil, fmt.Errorf("property: count tenants: %w", err)
	}
	return toPropertyResponse(p, n > 0), nil
}

// List returns properties sorted by display name, each marked Occupied or
// Vacant.
func (uc *PropertyUseCase) List() ([]*dto.PropertyResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("property: list: %w", err)
	}
	tenants, err := uc.tenants.List()
	if err != nil {
		return nil, fmt.Errorf("property: list tenants: %w", err)
	}
	occupied := make(map[string]bool, len(tenants))
	for _, t := range tenants {
		if t.PropertyID != "" {
			occupied[t.PropertyID] = true
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return strings.ToLower(list[i].DisplayName()) < strings.ToLower(list[j].DisplayName())
	})
	out := make([]*dto.PropertyResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPropertyResponse(p, occupied[p.ID]))
	}
	return out, nil
}

func (uc *PropertyUseCase) require(id string) (*entity.Property, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("property: get: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// OccupancyStatus is "Occupied" or "Vacant".
func OccupancyStatus(occupied bool) string {
	if occupied {
		return "Occupied"
	}
	return "Vacant"
}

func toPropertyResponse(p *entity.Property, occupied bool) *dto.PropertyResponse {
	return &dto.PropertyResponse{
		ID:          p.ID,
		Name:        p.Name,
		Type:        string(p.Type),
		DisplayName: p.DisplayName(),
		Address:     p.Address,
		UnitNumber:  p.UnitNumber,
		Occupied:    occupied,
		Status:      OccupancyStatus(occupied),
	}
}
