// Package memory keeps every record in process memory and, when a data file
// is configured, rewrites that file as a JSON snapshot after each change.
package memory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/MUNTAZIR1234/Invoice/internal/application/backup"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/entity"
	"github.com/MUNTAZIR1234/Invoice/internal/domain/repository"
)

// Store holds all collections in insertion order.
type Store struct {
	// allocMu serialises invoice numbering; mu guards the data.
	allocMu sync.Mutex
	mu      sync.RWMutex

	company    *entity.CompanyInfo
	properties []*entity.Property
	tenants    []*entity.Tenant
	invoices   []*entity.Invoice
	expenses   []*entity.Expense

	path string
	log  zerolog.Logger
}

// New returns an empty store that lives only in memory.
func New() *Store {
	return &Store{log: zerolog.Nop()}
}

// Open loads path when it exists and keeps it up to date afterwards.
func Open(path string, log zerolog.Logger) (*Store, error) {
	s := &Store{path: path, log: log}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Info().Str("file", path).Msg("data file not found, starting empty")
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("read data file: %w", err)
	}

	ds, err := backup.Decode(data, time.Now())
	if err != nil {
		return nil, fmt.Errorf("load data file %s: %w", path, err)
	}
	s.load(ds)
	log.Info().
		Str("file", path).
		Int("tenants", len(s.tenants)).
		Int("properties", len(s.properties)).
		Int("invoices", len(s.invoices)).
		Msg("data file loaded")
	return s, nil
}

// Repositories bound to this store.
func (s *Store) Tenants() *TenantRepo         { return &TenantRepo{s: s} }
func (s *Store) Properties() *PropertyRepo    { return &PropertyRepo{s: s} }
func (s *Store) Invoices() *InvoiceRepo       { return &InvoiceRepo{s: s} }
func (s *Store) Expenses() *ExpenseRepo       { return &ExpenseRepo{s: s} }
func (s *Store) Company() *CompanyRepo        { return &CompanyRepo{s: s} }
func (s *Store) System() *SystemRepo          { return &SystemRepo{s: s} }
func (s *Store) Allocator() *InvoiceAllocator { return &InvoiceAllocator{s: s} }

// load replaces the data; caller holds mu or owns s exclusively.
func (s *Store) load(ds *repository.Dataset) {
	s.company = nil
	if ds.Company != nil {
		c := *ds.Company
		s.company = &c
	}
	s.properties = make([]*entity.Property, 0, len(ds.Properties))
	for _, p := range ds.Properties {
		c := *p
		s.properties = append(s.properties, &c)
	}
	s.tenants = make([]*entity.Tenant, 0, len(ds.Tenants))
	for _, t := range ds.Tenants {
		s.tenants = append(s.tenants, cloneTenant(t))
	}
	s.invoices = make([]*entity.Invoice, 0, len(ds.Invoices))
	for _, inv := range ds.Invoices {
		s.invoices = append(s.invoices, inv.Clone())
	}
	s.expenses = make([]*entity.Expense, 0, len(ds.Expenses))
	for _, e := range ds.Expenses {
		c := *e
		s.expenses = append(s.expenses, &c)
	}
}

// dataset copies the data; caller holds mu.
func (s *Store) dataset() *repository.Dataset {
	ds := &repository.Dataset{}
	if s.company != nil {
		c := *s.company
		ds.Company = &c
	}
	for _, p := range s.properties {
		c := *p
		ds.Properties = append(ds.Properties, &c)
	}
	for _, t := range s.tenants {
		ds.Tenants = append(ds.Tenants, cloneTenant(t))
	}
	for _, inv := range s.invoices {
		ds.Invoices = append(ds.Invoices, inv.Clone())
	}
	for _, e := range s.expenses {
		c := *e
		ds.Expenses = append(ds.Expenses, &c)
	}
	return ds
}

// state is the set of collections as seen by one write. Records are never
// mutated in place, so copying the slices is enough to undo a change.
type state struct {
	company    *entity.CompanyInfo
	properties []*entity.Property
	tenants    []*entity.Tenant
	invoices   []*entity.Invoice
	expenses   []*entity.Expense
}

// state copies the collections; caller holds mu for writing.
func (s *Store) state() state {
	return state{
		company:    s.company,
		properties: slices.Clone(s.properties),
		tenants:    slices.Clone(s.tenants),
		invoices:   slices.Clone(s.invoices),
		expenses:   slices.Clone(s.expenses),
	}
}

// commit persists the change made since prev was taken. When the data file
// cannot be written the change is undone, so memory never holds records the
// file does not.
func (s *Store) commit(prev state) error {
	if err := s.persist(); err != nil {
		s.company = prev.company
		s.properties = prev.properties
		s.tenants = prev.tenants
		s.invoices = prev.invoices
		s.expenses = prev.expenses
		s.log.Error().Err(err).Str("file", s.path).Msg("data file not written, change rolled back")
		return err
	}
	return nil
}

// persist rewrites the data file; caller holds mu for writing.
// The snapshot goes to a temp file first so a crash never leaves half a file.
func (s *Store) persist() error {
	if s.path == "" {
		return nil
	}
	data, err := backup.Encode(s.dataset(), time.Time{})
	if err != nil {
		return fmt.Errorf("encode data file: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".rent-invoicing-*.json")
	if err != nil {
		return fmt.Errorf("create temp data file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close data file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}
	s.log.Debug().Str("file", s.path).Msg("data file written")
	return nil
}

func cloneTenant(t *entity.Tenant) *entity.Tenant {
	c := *t
	if t.MoveInDate != nil {
		d := *t.MoveInDate
		c.MoveInDate = &d
	}
	return &c
}
