package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MUNTAZIR1234/Invoice/internal/domain/billing"
)

func TestNextInvoiceID_EmptyCollection(t *testing.T) {
	assert.Equal(t, "INV-001", billing.NextInvoiceID(nil))
}

func TestNextInvoiceID_Sequence(t *testing.T) {
	var ids []string
	for i := 1; i <= 12; i++ {
		next := billing.NextInvoiceID(ids)
		assert.Equal(t, billing.FormatInvoiceID(i), next)
		ids = append(ids, next)
	}
	assert.Equal(t, "INV-012", ids[11])
}

func TestNextInvoiceID_IgnoresDeletedNonMaximal(t *testing.T) {
	ids := []string{"INV-001", "INV-002", "INV-003", "INV-004"}
	// Drop INV-002 and INV-003: the freed numbers are never reused.
	remaining := []string{ids[0], ids[3]}
	assert.Equal(t, "INV-005", billing.NextInvoiceID(remaining))
}

func TestNextInvoiceID_MalformedIDsCountAsZero(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want string
	}{
		{"no digits", []string{"DRAFT", "abc"}, "INV-001"},
		{"mixed", []string{"legacy", "INV-007", "x"}, "INV-008"},
		{"first run only", []string{"INV-002-99"}, "INV-003"},
		{"unordered", []string{"INV-010", "INV-003", "INV-009"}, "INV-011"},
		{"grows past three digits", []string{"INV-999"}, "INV-1000"},
		{"overflowing run", []string{"INV-99999999999999999999999"}, "INV-001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, billing.NextInvoiceID(tt.ids))
		})
	}
}
