package commands

import (
	"bufio"
	"fmt"
	"math"
	"os"

	"github.com/urfave/cli"

	"github.com/quizgen/wordquiz/classifier"
	"github.com/quizgen/wordquiz/words"
)

func classifyWords(c *cli.Context) error {
	model := classifier.New()
	if err := model.TrainFile(c.String("crk"), classifier.Crk); err != nil {
		return err
	}
	if err := model.TrainFile(c.String("eng"), classifier.Eng); err != nil {
		return err
	}
	model.Prune()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		word := words.NormalizeWord(scanner.Text())
		guess, logProbCrk, logProbEng := model.Classify(word)
		fmt.Printf("  P(crk|%s) = %v\n", word, math.Exp(logProbCrk))
		fmt.Printf("  P(eng|%s) = %v\n", word, math.Exp(logProbEng))
		fmt.Printf("%s: %v\n", word, guess)
	}
	return scanner.Err()
}
