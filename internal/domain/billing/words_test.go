package billing_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MUNTAZIR1234/Invoice/internal/domain/billing"
)

func TestWordsOf_KnownValues(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "Zero"},
		{7, "Seven Only"},
		{19, "Nineteen Only"},
		{20, "Twenty Only"},
		{45, "Forty Five Only"},
		{100, "One Hundred Only"},
		{105, "One Hundred and Five Only"},
		{1_000, "One Thousand Only"},
		{25_000, "Twenty Five Thousand Only"},
		{100_000, "One Lakh Only"},
		{10_000_000, "One Crore Only"},
		{1_234_567, "Twelve Lakh Thirty Four Thousand Five Hundred and Sixty Seven Only"},
		{12_34_56_789, "Twelve Crore Thirty Four Lakh Fifty Six Thousand Seven Hundred and Eighty Nine Only"},
		{1_23_00_00_000, "One Hundred Twenty Three Crore Only"},
		{-250, "Minus Two Hundred and Fifty Only"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, billing.WordsOf(tt.in), "WordsOf(%d)", tt.in)
	}
}

func TestWordsOf_ScaleWordsAppearOnce(t *testing.T) {
	got := billing.WordsOf(1_234_567)
	words := strings.Fields(got)
	for _, w := range []string{"Lakh", "Thousand", "Hundred", "and"} {
		count := 0
		for _, x := range words {
			if x == w {
				count++
			}
		}
		assert.Equal(t, 1, count, "%q should appear exactly once in %q", w, got)
	}
	assert.True(t, strings.HasSuffix(got, " Only"))
	assert.NotContains(t, got, "  ")
}

func TestAmountInWords_DropsPaise(t *testing.T) {
	assert.Equal(t, "Twenty Five Thousand Only", billing.AmountInWords(decimal.RequireFromString("25000.99")))
	assert.Equal(t, "Zero", billing.AmountInWords(decimal.RequireFromString("0.75")))
	assert.Equal(t, "Minus Ten Only", billing.AmountInWords(decimal.RequireFromString("-10.40")))
}

func TestAmountInWords_BeyondInt64(t *testing.T) {
	// 2^63 is one past the largest int64.
	assert.Equal(t,
		"Ninety Two Thousand Two Hundred Thirty Three Crore Seventy Two Lakh Three Thousand Six Hundred Eighty Five Crore "+
			"Forty Seven Lakh Seventy Five Thousand Eight Hundred and Eight Only",
		billing.AmountInWords(decimal.RequireFromString("9223372036854775808")))

	// 10^20 no longer fits in uint64 either.
	assert.Equal(t, "Ten Lakh Crore Crore Only", billing.AmountInWords(decimal.RequireFromString("100000000000000000000")))
	assert.Equal(t, "Ten Lakh Crore Crore and Five Only", billing.AmountInWords(decimal.RequireFromString("100000000000000000005")))
	assert.Equal(t, "Minus Ten Lakh Crore Crore Only", billing.AmountInWords(decimal.RequireFromString("-100000000000000000000.9")))
}

func TestAmountInWords_MaxAmount(t *testing.T) {
	assert.Equal(t, "One Lakh Crore Only", billing.AmountInWords(billing.MaxAmount))
}

func TestAmountInWords_NegativeBelowOneRupee(t *testing.T) {
	assert.Equal(t, "Zero", billing.AmountInWords(decimal.RequireFromString("-0.5")))
	assert.Equal(t, "Zero", billing.AmountInWords(decimal.RequireFromString("-0.99")))
}

func TestAmountInRange(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"25000.50", true},
		{"1000000000000", true},
		{"-1000000000000", true},
		{"1000000000000.01", false},
		{"1e20", false},
		{"1e2000000", false},
		{"-1e2000000", false},
		{"1e-40", false},
		{"0.0000000000000000000000000001", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, billing.AmountInRange(decimal.RequireFromString(tt.in)), tt.in)
	}
}
