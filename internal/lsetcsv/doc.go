// Package lsetcsv reads and writes the semicolon-delimited export format of
// the Lsetwatch collection tracker.
//
// The format has no quoting and no escape character at the row level: lines
// are split literally on ';' and terminated with CRLF. Reserved characters
// inside free-text fields are protected by a BEL-sentinel escape encoding
// (Escape/Unescape), and the two list-valued columns are pipe-joined
// (EncodeList/DecodeList). A static 42-column schema maps raw column text to
// typed Row fields and back; Reader and Writer stream rows over the schema
// one line at a time.
//
// Locale (decimal separator) and date pattern are explicit per Reader/Writer
// options rather than ambient process state, so instances with different
// configurations can run side by side. Several quirks of the source
// application are reproduced deliberately rather than fixed; see the notes on
// DecodeList and on the schema defaults.
package lsetcsv
