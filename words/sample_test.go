package words

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSampleFullIsPermutation(t *testing.T) {
	input := []string{"Wolf", "ant", "Bee", "cat", "dog", "Emu"}
	rng := rand.New(rand.NewSource(42))

	sampled, err := Sample(rng, input, len(input))
	require.NoError(t, err)
	require.Len(t, sampled, len(input))
	require.ElementsMatch(t, input, sampled)
}

func TestSamplePartial(t *testing.T) {
	input := []string{"Wolf", "ant", "Bee", "cat", "dog", "Emu"}
	rng := rand.New(rand.NewSource(42))

	sampled, err := Sample(rng, input, 3)
	require.NoError(t, err)
	require.Len(t, sampled, 3)
	require.Subset(t, input, sampled)

	// Without replacement: no entry may repeat.
	seen := make(map[string]bool)
	for _, line := range sampled {
		require.False(t, seen[line], "line %q sampled twice", line)
		seen[line] = true
	}
}

func TestSampleZero(t *testing.T) {
	sampled, err := Sample(nil, []string{"ant", "Bee"}, 0)
	require.NoError(t, err)
	require.Empty(t, sampled)
}

func TestSampleOutOfRange(t *testing.T) {
	input := []string{"ant", "Bee"}

	_, err := Sample(nil, input, 3)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Sample(nil, input, -1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestShuffleDoesNotModifyInput(t *testing.T) {
	input := []string{"ant", "Bee", "cat", "dog"}
	original := append([]string(nil), input...)

	Shuffle(rand.New(rand.NewSource(1)), input)
	require.Equal(t, original, input)
}

// A time-seeded shuffle of 20 entries repeats a given ordering with
// probability 1/20!, so ten runs producing identical orderings means
// the source is broken.
func TestShuffleNonDeterministic(t *testing.T) {
	input := make([]string, 20)
	for i := range input {
		input[i] = string(rune('a' + i))
	}

	first := Shuffle(nil, input)
	for i := 0; i < 10; i++ {
		next := Shuffle(nil, input)
		for j := range next {
			if next[j] != first[j] {
				return
			}
		}
	}
	t.Error("ten shuffles produced identical orderings")
}
