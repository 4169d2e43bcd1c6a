package commands

import (
	"errors"
	"math/rand"

	"github.com/urfave/cli"

	"github.com/quizgen/wordquiz/words"
)

// randSource maps the --seed flag to a random source. Zero means no
// fixed seed, so the pipeline falls back to system entropy.
func randSource(seed int64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(seed))
}

// RunPipeline samples pick lines from the input word list (all of them
// when pick is 0) and writes them case-insensitively sorted to the
// output path.
func RunPipeline(inputPath, outputPath string, pick int, rng *rand.Rand) error {
	lines, err := words.ReadLines(inputPath)
	if err != nil {
		return err
	}
	if pick == 0 {
		pick = len(lines)
	}

	sampled, err := words.Sample(rng, lines, pick)
	if err != nil {
		return err
	}

	return words.WriteLines(outputPath, words.SortFolded(sampled))
}

// ShuffleWordList is the cli action for the shuffle pipeline. It also
// serves as the app default action, so `wordquiz <input> <output>`
// works without a subcommand.
func ShuffleWordList(c *cli.Context) error {
	if c.NArg() != 2 {
		return errors.New("expected <input> and <output> arguments")
	}
	return RunPipeline(c.Args().Get(0), c.Args().Get(1), c.Int("pick"), randSource(c.Int64("seed")))
}
