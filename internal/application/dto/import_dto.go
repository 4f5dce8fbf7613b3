package dto

// ImportSummary result of a CSV import.
type ImportSummary struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Messages []string `json:"messages,omitempty"` // one line per skipped row
}

// RestoreSummary result of restoring a backup.
type RestoreSummary struct {
	Properties int `json:"properties"`
	Tenants    int `json:"tenants"`
	Invoices   int `json:"invoices"`
	Expenses   int `json:"expenses"`
}
