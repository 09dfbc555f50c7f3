package lsetcsv

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// commaDecimalBases lists the base languages whose number convention uses a
// comma as the decimal separator. Everything else gets a period. Only the
// separator matters here; Lsetwatch never writes grouping separators into
// numeric columns.
var commaDecimalBases = map[string]struct{}{
	"bg": {}, "ca": {}, "cs": {}, "da": {}, "de": {}, "el": {}, "es": {},
	"et": {}, "fi": {}, "fr": {}, "hr": {}, "hu": {}, "id": {}, "it": {},
	"lt": {}, "lv": {}, "nb": {}, "nl": {}, "nn": {}, "no": {}, "pl": {},
	"pt": {}, "ro": {}, "ru": {}, "sk": {}, "sl": {}, "sr": {}, "sv": {},
	"tr": {}, "uk": {}, "vi": {},
}

// decimalSeparator resolves a locale identifier to its decimal separator.
// Identifiers are accepted in both BCP 47 ("de-DE") and POSIX ("de_DE.utf8")
// shape; the codeset suffix is ignored. An empty identifier means the
// period-decimal default.
func decimalSeparator(locale string) (byte, error) {
	trimmed := strings.TrimSpace(locale)
	if trimmed == "" {
		return '.', nil
	}
	if i := strings.IndexByte(trimmed, '.'); i >= 0 {
		trimmed = trimmed[:i]
	}
	trimmed = strings.ReplaceAll(trimmed, "_", "-")

	tag, err := language.Parse(trimmed)
	if err != nil {
		return 0, fmt.Errorf("locale %q: %w", locale, err)
	}
	base, _ := tag.Base()
	if _, ok := commaDecimalBases[base.String()]; ok {
		return ',', nil
	}
	return '.', nil
}
