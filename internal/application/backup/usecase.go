package backup

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/MUNTAZIR1234/Invoice/internal/application/dto"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/billing"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/repository"
)

// UseCase exports, restores and wipes the whole data set.
type UseCase struct {
	system repository.SystemRepository
	log    zerolog.Logger
	now    func() time.Time
}

// NewUseCase builds the use case.
func NewUseCase(system repository.SystemRepository, log zerolog.Logger) *UseCase {
	return &UseCase{system: system, log: log, now: time.Now}
}

// WithClock replaces the clock used for timestamps and restore defaults.
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// Export returns the snapshot JSON and "backup_<YYYY-MM-DD>.json".
func (uc *UseCase) Export() (data []byte, filename string, err error) {
	ds, err := uc.system.Export()
	if err != nil {
		return nil, "", fmt.Errorf("backup: export: %w", err)
	}
	now := uc.now()
	data, err = Encode(ds, now)
	if err != nil {
		return nil, "", fmt.Errorf("backup: encode: %w", err)
	}
	return data, fmt.Sprintf("backup_%s.json", billing.WireDate(now)), nil
}

// Restore replaces every record with the snapshot in data. Nothing is
// changed when the snapshot does not parse.
func (uc *UseCase) Restore(data []byte) (*dto.RestoreSummary, error) {
	ds, err := Decode(data, uc.now())
	if err != nil {
		return nil, fmt.Errorf("backup: restore: %w", err)
	}
	if err := uc.system.Replace(ds); err != nil {
		return nil, fmt.Errorf("backup: restore: %w", err)
	}
	summary := &dto.RestoreSummary{
		Properties: len(ds.Properties),
		Tenants:    len(ds.Tenants),
		Invoices:   len(ds.Invoices),
		Expenses:   len(ds.Expenses),
	}
	uc.log.Info().
		Int("properties", summary.Properties).
		Int("tenants", summary.Tenants).
		Int("invoices", summary.Invoices).
		Int("expenses", summary.Expenses).
		Msg("backup restored")
	return summary, nil
}

// Reset deletes every record, including the company profile.
func (uc *UseCase) Reset() error {
	if err := uc.system.Reset(); err != nil {
		return fmt.Errorf("backup: reset: %w", err)
	}
	uc.log.Warn().Msg("all records deleted")
	return nil
}
