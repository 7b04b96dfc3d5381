package text

import "strings"

// NoMatchSentinel is returned when extraction yields no non-empty segment.
// It is a deliberate textual marker so callers can tell "no match" apart
// from an empty segment.
const NoMatchSentinel = "(No matching text found)"

// languageSlots maps a language code to its positional slot in the packed
// text field. The order is fixed by the dataset.
var languageSlots = map[string]int{
	"en": 0,
	"ta": 1,
	"hi": 2,
	"te": 3,
	"kn": 4,
	"ml": 5,
}

// KnownLanguage reports whether code has a slot in the packed field.
func KnownLanguage(code string) bool {
	_, ok := languageSlots[code]
	return ok
}

// ExtractLanguages selects the requested language segments from a packed
// text field. The field is split on newline into positional segments; each
// requested code resolves to its fixed slot, tolerating missing slots as
// empty. Empty results are discarded and the survivors rejoined with
// newlines. Returns NoMatchSentinel when nothing survives.
func ExtractLanguages(packed string, codes []string) string {
	segments := strings.Split(packed, "\n")
	var out []string
	for _, code := range codes {
		slot, ok := languageSlots[code]
		if !ok || slot >= len(segments) {
			continue
		}
		if seg := segments[slot]; seg != "" {
			out = append(out, seg)
		}
	}
	if len(out) == 0 {
		return NoMatchSentinel
	}
	return strings.Join(out, "\n")
}
