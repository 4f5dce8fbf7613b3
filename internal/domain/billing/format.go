package billing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	wireLayout    = "2006-01-02"
	displayLayout = "02-01-2006"
)

// WireDate formats t as YYYY-MM-DD.
func WireDate(t time.Time) string { return t.Format(wireLayout) }

// ParseWireDate parses YYYY-MM-DD into a UTC date.
func ParseWireDate(s string) (time.Time, error) {
	return time.ParseInLocation(wireLayout, strings.TrimSpace(s), time.UTC)
}

// DisplayDate formats t as DD-MM-YYYY for documents and exports.
func DisplayDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(displayLayout)
}

// FormatINR groups the rupee part the Indian way (12,34,567) and keeps two
// decimals only when there are paise.
func FormatINR(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	amount = amount.Abs().Round(2)

	whole := amount.Truncate(0)
	out := groupIndian(whole.String())
	if frac := amount.Sub(whole); !frac.IsZero() {
		out += "." + frac.StringFixed(2)[2:]
	}
	if neg {
		return "-" + out
	}
	return out
}

// groupIndian puts a comma before the last three digits, then every two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}
