package lsetcsv

import (
	"bufio"
	"io"
)

// Writer encodes rows in canonical column order, one CRLF-terminated record
// per row. It always emits every column: defaulted fields are written as
// their codes (so a fresh row carries its zeroes and item counts of 1), and
// absent optionals are written as empty columns. Output produced this way
// re-reads byte for byte.
type Writer struct {
	w     *bufio.Writer
	coder *coder
	err   error
}

// NewWriter returns a Writer on w. It fails only when opts carries an
// invalid date format or an unrecognized locale.
func NewWriter(w io.Writer, opts Options) (*Writer, error) {
	c, err := newCoder(opts)
	if err != nil {
		return nil, err
	}
	return &Writer{w: bufio.NewWriter(w), coder: c}, nil
}

// WriteHeader writes the canonical header line. Callers that want a header
// call it once before the first Write; nothing enforces the order.
func (w *Writer) WriteHeader() error {
	return w.writeLine(Header())
}

// Write encodes row as one record.
func (w *Writer) Write(row Row) error {
	if w.err != nil {
		return w.err
	}
	fields := make([]string, len(columns))
	for i := range columns {
		fields[i] = columns[i].encode(w.coder, &row)
	}
	return w.writeLine(fields)
}

// Flush writes any buffered output to the underlying writer. Call it after
// the last Write; Writer never flushes on its own.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if err := w.w.Flush(); err != nil {
		w.err = err
	}
	return w.err
}

func (w *Writer) writeLine(fields []string) error {
	if w.err != nil {
		return w.err
	}
	if _, err := w.w.WriteString(joinFields(fields) + LineTerminator); err != nil {
		w.err = err
	}
	return w.err
}
