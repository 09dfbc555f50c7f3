package lsetcsv

import (
	"bufio"
	"fmt"
	"io"
)

// Reader decodes export lines one row at a time. It is forward-only and
// lazy: lines are read and coerced on demand in Next, nothing is buffered
// beyond the current row, and an error on one line surfaces before any later
// line is touched.
//
// The first non-blank line is sniffed for a header. If every field is a
// distinct known column name the line is consumed as a header and its order
// governs the rest of the input, so exports with reordered or omitted
// columns still decode; otherwise the canonical column order applies and the
// line is decoded as data.
type Reader struct {
	scanner *bufio.Scanner
	coder   *coder

	// order maps input column positions to schema columns. Set after the
	// header sniff; nil until the first Next call.
	order []int

	line int
	row  Row
	err  error
}

// NewReader returns a Reader over r. It fails only when opts carries an
// invalid date format or an unrecognized locale.
func NewReader(r io.Reader, opts Options) (*Reader, error) {
	c, err := newCoder(opts)
	if err != nil {
		return nil, err
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Reader{scanner: scanner, coder: c}, nil
}

// Next advances to the next data row. It returns false at end of input or on
// the first error; after a false return, Err distinguishes the two.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}
	for {
		line, ok := r.scanLine()
		if !ok {
			return false
		}
		if line == "" {
			continue
		}
		fields := splitFields(line)
		if r.order == nil {
			r.order = headerOrder(fields)
			if r.order != nil {
				continue
			}
			r.order = canonicalOrder()
		}
		return r.decode(fields)
	}
}

// Row returns the row decoded by the last successful Next call. The returned
// value is a copy; callers may keep or modify it freely.
func (r *Reader) Row() Row {
	return r.row
}

// Err returns the first error encountered. It is nil after the input is
// exhausted cleanly.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) scanLine() (string, bool) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			r.err = fmt.Errorf("read line %d: %w", r.line+1, err)
		}
		return "", false
	}
	r.line++
	line := r.scanner.Text()
	// bufio strips the trailing LF; drop the CR of a CRLF terminator.
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line, true
}

func (r *Reader) decode(fields []string) bool {
	if len(fields) != len(r.order) {
		r.err = &GrammarError{Line: r.line, Got: len(fields), Want: len(r.order)}
		return false
	}
	row := defaultRow()
	seen := make([]bool, len(columns))
	for pos, raw := range fields {
		col := &columns[r.order[pos]]
		if raw == "" {
			continue
		}
		if err := col.decode(r.coder, raw, &row); err != nil {
			r.err = &CoercionError{Line: r.line, Column: col.name, Raw: raw, Err: err}
			return false
		}
		seen[r.order[pos]] = true
	}
	for i := range columns {
		if columns[i].required && !seen[i] {
			r.err = &CoercionError{Line: r.line, Column: columns[i].name, Raw: "", Err: errValueRequired}
			return false
		}
	}
	r.row = row
	return true
}

// headerOrder reports whether fields form a header line, and if so returns
// the schema index for each input position. A header is a line whose fields
// are all distinct known column names.
func headerOrder(fields []string) []int {
	order := make([]int, len(fields))
	seen := make([]bool, len(columns))
	for pos, name := range fields {
		idx, ok := columnIndex[name]
		if !ok || seen[idx] {
			return nil
		}
		seen[idx] = true
		order[pos] = idx
	}
	return order
}

func canonicalOrder() []int {
	order := make([]int, len(columns))
	for i := range order {
		order[i] = i
	}
	return order
}
