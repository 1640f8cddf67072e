package identity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Gender codes.
const (
	GenderMale        = "M"
	GenderFemale      = "F"
	GenderUnspecified = "N"
)

// padding fills tokens shorter than their segment width.
const padding = 'X'

// stripAccents removes combining marks after canonical decomposition ("Fès" -> "Fes").
func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

func isASCIILetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// NormalizeToken turns a city or production name into a fixed-width upper-case
// token: accents stripped, only [A-Za-z0-9] kept, truncated to width and
// right-padded with X.
func NormalizeToken(name string, width int) string {
	var b strings.Builder
	b.Grow(width)
	for _, r := range stripAccents(name) {
		if b.Len() == width {
			break
		}
		if isASCIIAlnum(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	for b.Len() < width {
		b.WriteRune(padding)
	}
	return b.String()
}

// NormalizeGender maps free-form input to M, F or N.
func NormalizeGender(s string) string {
	switch strings.ToLower(strings.TrimSpace(stripAccents(s))) {
	case "m", "h", "male", "homme", "masculin":
		return GenderMale
	case "f", "female", "femme", "feminin":
		return GenderFemale
	default:
		return GenderUnspecified
	}
}
