package lsetcsv

import (
	"fmt"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// DefaultDateFormat is the day/month/year pattern Lsetwatch ships with.
const DefaultDateFormat = "%d/%m/%Y"

// dateFormat wraps a validated strftime pattern for the three date columns.
// Patterns use the strftime notation the Lsetwatch documentation uses, not
// Go reference layouts.
type dateFormat struct {
	pattern string
}

func newDateFormat(pattern string) (dateFormat, error) {
	if strings.TrimSpace(pattern) == "" {
		pattern = DefaultDateFormat
	}
	if _, err := strftime.Layout(pattern); err != nil {
		return dateFormat{}, fmt.Errorf("date format %q: %w", pattern, err)
	}
	return dateFormat{pattern: pattern}, nil
}

func (f dateFormat) parse(raw string) (time.Time, error) {
	return strftime.Parse(f.pattern, raw)
}

func (f dateFormat) format(t time.Time) string {
	return strftime.Format(f.pattern, t)
}
