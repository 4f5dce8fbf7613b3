package csvio

import (
	"bufio"
	"io"
	"strings"
)

// Writer writes CSV with every field double-quoted and inner quotes doubled.
// encoding/csv only quotes when it has to, which spreadsheets then read as
// numbers or dates.
type Writer struct {
	w   *bufio.Writer
	err error
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write writes one record followed by CRLF.
func (cw *Writer) Write(record []string) error {
	if cw.err != nil {
		return cw.err
	}
	for i, field := range record {
		if i > 0 {
			cw.writeString(",")
		}
		cw.writeString(`"`)
		cw.writeString(strings.ReplaceAll(field, `"`, `""`))
		cw.writeString(`"`)
	}
	cw.writeString("\r\n")
	return cw.err
}

// WriteAll writes records and flushes.
func (cw *Writer) WriteAll(records [][]string) error {
	for _, r := range records {
		if err := cw.Write(r); err != nil {
			return err
		}
	}
	return cw.Flush()
}

// Flush writes buffered data to the underlying writer.
func (cw *Writer) Flush() error {
	if cw.err != nil {
		return cw.err
	}
	cw.err = cw.w.Flush()
	return cw.err
}

func (cw *Writer) writeString(s string) {
	if cw.err != nil {
		return
	}
	_, cw.err = cw.w.WriteString(s)
}
