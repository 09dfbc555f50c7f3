package lsetcsv

import "strings"

// ListSeparator joins the items of the two list-valued columns (mytags,
// documents).
const ListSeparator = "|"

// EncodeList joins items into a single pipe-separated token. An empty or nil
// slice encodes to the empty string, which makes it indistinguishable on the
// wire from a single-element list holding the empty string; DecodeList
// resolves that collision in favor of the single-element reading.
//
// Items are joined as-is. An item that itself contains a pipe is not escaped
// first, so such lists do not survive a round trip. Lsetwatch itself has the
// same defect and files in the wild depend on it, so it is preserved here
// rather than repaired.
func EncodeList(items []string) string {
	return strings.Join(items, ListSeparator)
}

// DecodeList splits a pipe-separated token into its items. The empty string
// decodes to a one-element list containing the empty string, never to an
// empty list; only a column that is absent from the row altogether decodes
// to an empty list (handled by the schema layer, not here).
func DecodeList(s string) []string {
	return strings.Split(s, ListSeparator)
}
