package lsetcsv

import (
	"strconv"
	"strings"
)

// Options configures one Reader or Writer instance. Both values are explicit
// per instance; nothing is read from the process environment, so instances
// with different settings can run concurrently.
type Options struct {
	// DateFormat is the strftime-style pattern for the three date columns,
	// e.g. "%d.%m.%Y". Empty means DefaultDateFormat.
	DateFormat string
	// Locale identifies the number formatting convention for decimal
	// columns, e.g. "de_DE.utf8" or "en-NZ". It only governs the decimal
	// separator. Empty means a period separator.
	Locale string
}

// Validate reports whether the date format and locale are usable without
// constructing a Reader or Writer.
func (o Options) Validate() error {
	_, err := newCoder(o)
	return err
}

// coder holds the resolved per-instance coercion state shared by every
// column's decode and encode functions.
type coder struct {
	dates      dateFormat
	decimalSep byte
}

func newCoder(opts Options) (*coder, error) {
	dates, err := newDateFormat(opts.DateFormat)
	if err != nil {
		return nil, err
	}
	sep, err := decimalSeparator(opts.Locale)
	if err != nil {
		return nil, err
	}
	return &coder{dates: dates, decimalSep: sep}, nil
}

func (c *coder) parseFloat(raw string) (float64, error) {
	if c.decimalSep != '.' {
		raw = strings.ReplaceAll(raw, string(c.decimalSep), ".")
	}
	return strconv.ParseFloat(raw, 64)
}

func (c *coder) formatFloat(value float64) string {
	s := strconv.FormatFloat(value, 'f', -1, 64)
	if c.decimalSep != '.' {
		s = strings.Replace(s, ".", string(c.decimalSep), 1)
	}
	return s
}
