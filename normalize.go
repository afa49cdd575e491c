package brfunds

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NameMode selects how separators are handled by NormalizeName.
type NameMode int

const (
	// PathMode produces a token usable in a URL path: spaces become hyphens.
	PathMode NameMode = iota
	// SearchMode produces a search query: '+' become spaces.
	SearchMode
)

// stripSet are removed from names. In PathMode the hyphen is a separator instead.
var (
	stripSet     = strings.NewReplacer(".", "", "-", "", "/", "")
	pathStripSet = strings.NewReplacer(".", "", "/", "")
)

// NormalizeName canonicalizes a free-text fund name, or a formatted CNPJ, into
// the token expected by the remote lookup endpoints.
//
// The name is lower-cased, diacritics are removed (ç becomes c, ã becomes a and
// so on), and the characters '.', '-' and '/' are dropped. Separators are then
// handled according to mode.
//
// In PathMode a run of spaces and hyphens becomes a single hyphen. A name made
// only of digits and separators, like a formatted CNPJ, loses its separators
// instead. NormalizeName is idempotent in both modes.
func NormalizeName(name string, mode NameMode) string {
	name = strings.ToLower(name)
	name = stripMarks(name)
	switch mode {
	case SearchMode:
		name = stripSet.Replace(name)
		return strings.ReplaceAll(name, "+", " ")
	default:
		return pathToken(pathStripSet.Replace(name))
	}
}

// pathToken joins words with single hyphens.
func pathToken(s string) string {
	if isNumeric(s) {
		return strings.Map(func(r rune) rune {
			if r == ' ' || r == '-' {
				return -1
			}
			return r
		}, s)
	}
	var b strings.Builder
	pending := false
	for _, r := range s {
		if r == ' ' || r == '-' {
			pending = true
			continue
		}
		if pending && b.Len() > 0 {
			b.WriteByte('-')
		}
		pending = false
		b.WriteRune(r)
	}
	return b.String()
}

// isNumeric reports whether s holds digits separated by spaces and hyphens only.
func isNumeric(s string) bool {
	digits := false
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digits = true
		case r == ' ' || r == '-':
		default:
			return false
		}
	}
	return digits
}

// stripMarks removes combining marks after canonical decomposition.
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		// the chain never fails on valid utf8, keep the input otherwise.
		return s
	}
	return out
}

// SimplifyName shortens a fund display name for charts: it is upper-cased and
// cut before the first "FUNDO" word.
func SimplifyName(name string) string {
	name = strings.ToUpper(name)
	name, _, _ = strings.Cut(name, "FUNDO")
	return strings.TrimSpace(name)
}
