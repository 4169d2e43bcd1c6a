package words

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortFolded returns lines ordered by a locale-independent Unicode
// case-fold comparison (und collation with case ignored). The sort is
// stable: entries that compare equal under the fold keep their relative
// input order, so duplicate casings stay in whatever order the shuffle
// left them. The input slice is not modified.
func SortFolded(lines []string) []string {
	out := make([]string, len(lines))
	copy(out, lines)
	c := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		return c.CompareString(out[i], out[j]) < 0
	})
	return out
}
