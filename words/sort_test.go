package words

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortFolded(t *testing.T) {
	input := []string{"Wolf", "ant", "Bee", "cat"}

	require.Equal(t, []string{"ant", "Bee", "cat", "Wolf"}, SortFolded(input))
}

// Entries that compare equal under the fold keep their relative input
// order.
func TestSortFoldedStableTiebreak(t *testing.T) {
	require.Equal(t, []string{"ant", "bee", "Bee"}, SortFolded([]string{"bee", "Bee", "ant"}))
	require.Equal(t, []string{"ant", "Bee", "bee"}, SortFolded([]string{"Bee", "bee", "ant"}))
}

func TestSortFoldedEmpty(t *testing.T) {
	require.Empty(t, SortFolded(nil))
}

func TestSortFoldedDoesNotModifyInput(t *testing.T) {
	input := []string{"cat", "ant", "Bee"}
	original := append([]string(nil), input...)

	SortFolded(input)
	require.Equal(t, original, input)
}

func TestSortFoldedAdjacentOrdering(t *testing.T) {
	input := []string{"zebu", "Yak", "wasp", "TURKEY", "swan", "Raven", "quail", "puma", "Owl", "newt"}

	sorted := SortFolded(input)
	require.ElementsMatch(t, input, sorted)
	for i := 1; i < len(sorted); i++ {
		a, b := strings.ToLower(sorted[i-1]), strings.ToLower(sorted[i])
		require.LessOrEqual(t, a, b, "adjacent pair %q, %q out of fold order", sorted[i-1], sorted[i])
	}
}
