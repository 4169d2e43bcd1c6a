package words

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrInvalidArgument reports a requested sample size outside the range
// [0, len(input)].
var ErrInvalidArgument = errors.New("invalid argument")

// source returns r, or a time-seeded source when r is nil. The default
// is intentionally non-reproducible run-to-run; tests inject a fixed
// seed to get deterministic sample content.
func source(r *rand.Rand) *rand.Rand {
	if r != nil {
		return r
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Shuffle returns a uniformly random permutation of lines. The input
// slice is not modified.
func Shuffle(r *rand.Rand, lines []string) []string {
	out := make([]string, len(lines))
	copy(out, lines)
	source(r).Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Sample draws n lines uniformly at random without replacement. When n
// equals len(lines) the result is a full random permutation of the
// input.
func Sample(r *rand.Rand, lines []string, n int) ([]string, error) {
	if n < 0 || n > len(lines) {
		return nil, fmt.Errorf("%w: sample size %d out of range [0, %d]", ErrInvalidArgument, n, len(lines))
	}
	return Shuffle(r, lines)[:n], nil
}
