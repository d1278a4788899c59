package conv

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize folds a question into its cache key form: lowercase, without
// diacritics or punctuation, words separated by a single space.
// Normalize("Qual é o prazo?") == "qual e o prazo".
func Normalize(text string) string {
	folded, _, err := transform.String(stripMarks, strings.ToLower(text))
	if err != nil {
		folded = strings.ToLower(text)
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// StripBold removes markdown bold markers from model output.
func StripBold(text string) string {
	text = strings.ReplaceAll(text, "***", "")
	return strings.ReplaceAll(text, "**", "")
}
