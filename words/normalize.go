package words

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NFD, drop combining marks, recompose.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeWord prepares a raw word-list line for classification: it
// trims trailing punctuation and whitespace, strips diacritics (so
// itwêwina and itwewina compare equal), and lowercases the rest.
func NormalizeWord(line string) string {
	word := strings.TrimRight(line, "!? \n")
	if stripped, _, err := transform.String(stripMarks, word); err == nil {
		word = stripped
	}
	return strings.ToLower(word)
}
