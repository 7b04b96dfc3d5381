package text

import "strings"

// NormalizeKey maps a string to the comparison key used for substring
// matching: ASCII letters lowercased, ASCII digits and spaces kept,
// everything else removed. Applied identically to needle and haystack.
func NormalizeKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}

// ContainsNormalized reports whether needle occurs in haystack after both
// are normalized. An empty needle matches everything.
func ContainsNormalized(haystack, needle string) bool {
	return strings.Contains(NormalizeKey(haystack), NormalizeKey(needle))
}
