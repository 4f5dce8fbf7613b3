// Package csvio reads spreadsheet CSV exports and writes fully quoted CSV.
package csvio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/MUNTAZIR1234/Invoice/internal/domain"
)

// MaxFileSize caps how much of an upload is read.
const MaxFileSize = 10 << 20

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parser reads a CSV with a header row. Header names are normalised with
// NormalizeHeader so lookups ignore case, spacing and underscores.
type Parser struct {
	reader     *csv.Reader
	headers    []string
	headerMap  map[string]int
	currentRow int
	decoded    bool
}

// ParserOption configures a Parser.
type ParserOption func(*csv.Reader)

// WithDelimiter sets the field delimiter (default comma).
func WithDelimiter(d rune) ParserOption {
	return func(r *csv.Reader) { r.Comma = d }
}

// NewParser strips a UTF-8 BOM and, when the content is not valid UTF-8,
// decodes it as Windows-1252 (what Excel writes on Windows).
func NewParser(r io.Reader, opts ...ParserOption) (*Parser, error) {
	content, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(content) > MaxFileSize {
		return nil, fmt.Errorf("%w: csv larger than %d bytes", domain.ErrInvalidInput, MaxFileSize)
	}
	content = bytes.TrimPrefix(content, utf8BOM)
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, domain.ErrEmptyFile
	}

	p := &Parser{headerMap: make(map[string]int)}
	var src io.Reader = bytes.NewReader(content)
	if !utf8.Valid(content) {
		src = transform.NewReader(src, charmap.Windows1252.NewDecoder())
		p.decoded = true
	}

	p.reader = csv.NewReader(src)
	p.reader.LazyQuotes = true
	p.reader.TrimLeadingSpace = true
	p.reader.FieldsPerRecord = -1
	for _, opt := range opts {
		opt(p.reader)
	}
	return p, nil
}

// Decoded reports whether the input was converted from Windows-1252.
func (p *Parser) Decoded() bool { return p.decoded }

// ParseHeader reads the header row.
func (p *Parser) ParseHeader() error {
	record, err := p.reader.Read()
	if errors.Is(err, io.EOF) {
		return domain.ErrMissingHeader
	}
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	p.currentRow = 1
	p.headers = make([]string, len(record))
	named := 0
	for i, h := range record {
		key := NormalizeHeader(h)
		p.headers[i] = key
		if key == "" {
			continue
		}
		named++
		if _, dup := p.headerMap[key]; !dup {
			p.headerMap[key] = i
		}
	}
	if named == 0 {
		return domain.ErrMissingHeader
	}
	return nil
}

// Headers returns the normalised header names in column order.
func (p *Parser) Headers() []string { return p.headers }

// HasHeader reports whether any of names is a column.
func (p *Parser) HasHeader(names ...string) bool {
	for _, n := range names {
		if _, ok := p.headerMap[NormalizeHeader(n)]; ok {
			return true
		}
	}
	return false
}

// Row is one data row keyed by normalised header.
type Row struct {
	LineNumber int
	Data       map[string]string
}

// Get returns the first non-empty value among the given column names.
func (r *Row) Get(names ...string) string {
	for _, n := range names {
		if v := r.Data[NormalizeHeader(n)]; v != "" {
			return v
		}
	}
	return ""
}

// GetOrDefault is Get with a fallback.
func (r *Row) GetOrDefault(def string, names ...string) string {
	if v := r.Get(names...); v != "" {
		return v
	}
	return def
}

// IsEmpty reports whether every value is blank.
func (r *Row) IsEmpty() bool {
	for _, v := range r.Data {
		if v != "" {
			return false
		}
	}
	return true
}

// RowError is a row the CSV reader could not parse. Reading can continue.
type RowError struct {
	LineNumber int
	Err        error
}

func (e *RowError) Error() string { return fmt.Sprintf("row %d: %v", e.LineNumber, e.Err) }
func (e *RowError) Unwrap() error { return e.Err }

// ReadRow returns the next row, io.EOF at the end, or a *RowError for a
// malformed row.
func (p *Parser) ReadRow() (*Row, error) {
	record, err := p.reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	p.currentRow++
	if err != nil {
		return nil, &RowError{LineNumber: p.currentRow, Err: err}
	}
	row := &Row{LineNumber: p.currentRow, Data: make(map[string]string, len(p.headers))}
	for i, v := range record {
		if i >= len(p.headers) || p.headers[i] == "" {
			continue
		}
		if _, seen := row.Data[p.headers[i]]; seen {
			continue
		}
		row.Data[p.headers[i]] = strings.TrimSpace(v)
	}
	return row, nil
}

// NormalizeHeader lowercases h and folds runs of spaces, underscores and
// hyphens into one space: "Billing_Address" -> "billing address".
func NormalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.Map(func(r rune) rune {
		if r == '_' || r == '-' {
			return ' '
		}
		return r
	}, h)
	return strings.Join(strings.Fields(h), " ")
}
