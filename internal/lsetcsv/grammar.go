package lsetcsv

import "strings"

// Row grammar of the export format: columns split on ';', records end with
// CRLF, and there is no quoting and no escape character at this level. The
// split and join below are deliberately naive; keeping reserved characters
// out of field values is the schema layer's job (via Escape), and a field
// reaching the grammar with a raw delimiter is a bug there, not a condition
// this layer can recover from.

const (
	// Delimiter separates columns within a record.
	Delimiter = ";"
	// LineTerminator ends every record, the last one included.
	LineTerminator = "\r\n"
)

func splitFields(line string) []string {
	return strings.Split(line, Delimiter)
}

func joinFields(fields []string) string {
	return strings.Join(fields, Delimiter)
}
