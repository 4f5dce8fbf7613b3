package billing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MUNTAZIR1234/Invoice/internal/domain/billing"
)

func TestFormatINR(t *testing.T) {
	tests := map[string]string{
		"0":         "0",
		"999":       "999",
		"1000":      "1,000",
		"25000":     "25,000",
		"123456":    "1,23,456",
		"1234567":   "12,34,567",
		"100000000": "10,00,00,000",
		"1234.5":    "1,234.50",
		"-4500":     "-4,500",
	}
	for in, want := range tests {
		assert.Equal(t, want, billing.FormatINR(decimal.RequireFromString(in)), "FormatINR(%s)", in)
	}
}

func TestDates(t *testing.T) {
	d, err := billing.ParseWireDate("2026-10-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.October, 31, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "31-10-2026", billing.DisplayDate(d))
	assert.Equal(t, "2026-10-31", billing.WireDate(d))
	assert.Equal(t, "", billing.DisplayDate(time.Time{}))

	_, err = billing.ParseWireDate("31-10-2026")
	assert.Error(t, err)
}
