// Package importer loads tenants and properties from spreadsheet CSV files.
package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MUNTAZIR1234/Invoice/internal/application/dto"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/repository"
	"github.com/MUNTAZIR1234/Invoice/internal/infrastructure/csvio"
)

// Column aliases, matched after csvio.NormalizeHeader.
var (
	colName       = []string{"name"}
	colEmail      = []string{"email", "e mail"}
	colPhone      = []string{"phone", "mobile", "contact"}
	colAddress    = []string{"address", "billing address"}
	colPropertyID = []string{"propertyid", "property id", "unit id"}
	colProperty   = []string{"property"}
	colStatus     = []string{"status"}

	colUnitName   = []string{"name", "unit"}
	colType       = []string{"type"}
	colUnitNumber = []string{"unit number", "unitnumber"}
)

// ImportUseCase imports CSV rows as tenants or properties.
type ImportUseCase struct {
	tenants    repository.TenantRepository
	properties repository.PropertyRepository
	log        zerolog.Logger
	now        func() time.Time
}

// NewImportUseCase builds the use case.
func NewImportUseCase(tenants repository.TenantRepository, properties repository.PropertyRepository, log zerolog.Logger) *ImportUseCase {
	return &ImportUseCase{tenants: tenants, properties: properties, log: log, now: time.Now}
}

// ImportTenants reads tenant rows. A property is resolved from the property id
// column first, then by property name or display name; an unmatched reference
// leaves the tenant unassigned.
func (uc *ImportUseCase) ImportTenants(r io.Reader) (*dto.ImportSummary, error) {
	props, err := uc.properties.List()
	if err != nil {
		return nil, fmt.Errorf("import tenants: list properties: %w", err)
	}
	resolve := propertyResolver(props)

	summary := &dto.ImportSummary{}
	err = eachRow(r, summary, func(row *csvio.Row) error {
		propertyID, ok := resolve(row.Get(colPropertyID...), row.Get(colProperty...))
		if !ok {
			summary.Messages = append(summary.Messages,
				fmt.Sprintf("row %d: property not found, tenant left unassigned", row.LineNumber))
		}
		now := uc.now()
		t := &entity.Tenant{
			ID:         uuid.New().String(),
			Name:       row.GetOrDefault("Unknown", colName...),
			Email:      row.Get(colEmail...),
			Phone:      row.Get(colPhone...),
			Address:    row.Get(colAddress...),
			PropertyID: propertyID,
			Status:     entity.ParseTenantStatus(row.Get(colStatus...)),
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		return uc.tenants.Create(t)
	})
	if err != nil {
		return nil, fmt.Errorf("import tenants: %w", err)
	}
	uc.log.Info().Int("imported", summary.Imported).Int("skipped", summary.Skipped).Msg("tenants imported")
	return summary, nil
}

// ImportProperties reads property rows.
func (uc *ImportUseCase) ImportProperties(r io.Reader) (*dto.ImportSummary, error) {
	summary := &dto.ImportSummary{}
	err := eachRow(r, summary, func(row *csvio.Row) error {
		now := uc.now()
		p := &entity.Property{
			ID:         uuid.New().String(),
			Name:       row.GetOrDefault("Unknown Unit", colUnitName...),
			Type:       entity.ParsePropertyType(row.Get(colType...)),
			Address:    row.Get(colAddress...),
			UnitNumber: row.Get(colUnitNumber...),
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		return uc.properties.Create(p)
	})
	if err != nil {
		return nil, fmt.Errorf("import properties: %w", err)
	}
	uc.log.Info().Int("imported", summary.Imported).Int("skipped", summary.Skipped).Msg("properties imported")
	return summary, nil
}

// eachRow drives the parser. Blank rows are ignored; malformed rows and rows
// the store rejects are counted as skipped.
func eachRow(r io.Reader, summary *dto.ImportSummary, store func(*csvio.Row) error) error {
	p, err := csvio.NewParser(r)
	if err != nil {
		return err
	}
	if err := p.ParseHeader(); err != nil {
		return err
	}
	for {
		row, err := p.ReadRow()
		if errors.Is(err, io.EOF) {
			return nil
		}
		var rowErr *csvio.RowError
		if errors.As(err, &rowErr) {
			summary.Skipped++
			summary.Messages = append(summary.Messages, rowErr.Error())
			continue
		}
		if err != nil {
			return err
		}
		if row.IsEmpty() {
			continue
		}
		if err := store(row); err != nil {
			summary.Skipped++
			summary.Messages = append(summary.Messages, fmt.Sprintf("row %d: %v", row.LineNumber, err))
			continue
		}
		summary.Imported++
	}
}

// propertyResolver returns a lookup by id, then by name or display name
// (case-insensitive). ok is false only when a reference was given but matched
// nothing.
func propertyResolver(props []*entity.Property) func(id, name string) (string, bool) {
	byID := make(map[string]string, len(props))
	byName := make(map[string]string, len(props)*2)
	for _, p := range props {
		byID[p.ID] = p.ID
		for _, key := range []string{p.Name, p.DisplayName()} {
			k := strings.ToLower(strings.TrimSpace(key))
			if _, taken := byName[k]; !taken {
				byName[k] = p.ID
			}
		}
	}
	return func(id, name string) (string, bool) {
		if id == "" && name == "" {
			return "", true
		}
		if found, ok := byID[id]; ok {
			return found, true
		}
		for _, ref := range []string{name, id} {
			if found, ok := byName[strings.ToLower(strings.TrimSpace(ref))]; ok && ref != "" {
				return found, true
			}
		}
		return "", false
	}
}
