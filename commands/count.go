package commands

import (
	"errors"
	"fmt"

	"github.com/urfave/cli"

	"github.com/quizgen/wordquiz/words"
)

// CountWordList prints the line count of a word list.
func CountWordList(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("expected an <input> argument")
	}

	count, err := words.CountLines(c.Args().Get(0))
	if err != nil {
		return err
	}

	fmt.Println(count)
	return nil
}
