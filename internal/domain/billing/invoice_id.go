// Package billing holds the pure invoicing rules: invoice numbering, billing
// cycles and due dates, and amounts in Indian-English words.
package billing

import (
	"fmt"
	"regexp"
	"strconv"
)

// InvoiceIDPrefix starts every allocated invoice id.
const InvoiceIDPrefix = "INV-"

var digitRun = regexp.MustCompile(`[0-9]+`)

// InvoiceSequence extracts the first run of digits in id.
// Ids without digits, or with a run too large for an int, count as 0.
func InvoiceSequence(id string) int {
	m := digitRun.FindString(id)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// NextInvoiceID returns the id following the highest sequence among ids.
// The result depends only on ids, so a deleted invoice never frees its
// number unless it was the highest one.
func NextInvoiceID(ids []string) string {
	highest := 0
	for _, id := range ids {
		if n := InvoiceSequence(id); n > highest {
			highest = n
		}
	}
	return FormatInvoiceID(highest + 1)
}

// FormatInvoiceID renders n as INV-001, INV-042, INV-1000.
func FormatInvoiceID(n int) string {
	return fmt.Sprintf("%s%03d", InvoiceIDPrefix, n)
}
