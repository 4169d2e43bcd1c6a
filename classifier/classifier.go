// Package classifier guesses whether a word is nêhiyawêwin (Plains
// Cree) or English, using digraph features counted over two training
// word lists.
package classifier

import (
	"bufio"
	"fmt"
	"math"
	"os"

	"github.com/quizgen/wordquiz/words"
)

// Language identifies one of the two training corpora.
type Language int

const (
	Crk Language = iota // nêhiyawêwin / Plains Cree
	Eng                 // English
)

func (l Language) String() string {
	if l == Crk {
		return "crk"
	}
	return "eng"
}

// A token is more than a single character: word starts and ends are
// encoded explicitly, so common prefixes and suffixes become features.
type token rune

const (
	tokenStart token = -1
	tokenEnd   token = -2
)

// digraph is two adjacent tokens.
type digraph struct {
	first, second token
}

// occurrence counts how many training words contained a digraph in each
// language.
type occurrence struct {
	crk, eng int
}

func (o occurrence) total() int { return o.crk + o.eng }

func (o occurrence) of(lang Language) int {
	if lang == Crk {
		return o.crk
	}
	return o.eng
}

// Classifier holds digraph occurrence counts for both languages.
type Classifier struct {
	features map[digraph]*occurrence
}

// New returns an empty, untrained Classifier.
func New() *Classifier {
	return &Classifier{features: make(map[digraph]*occurrence)}
}

// digraphsOf returns the set of digraphs present in a normalized word.
// Each digraph counts once per word, however often it repeats inside.
func digraphsOf(word string) map[digraph]struct{} {
	set := make(map[digraph]struct{})
	if word == "" {
		return set
	}
	last := tokenStart
	for _, ch := range word {
		this := token(ch)
		set[digraph{last, this}] = struct{}{}
		last = this
	}
	set[digraph{last, tokenEnd}] = struct{}{}
	return set
}

// Train counts the digraphs of a single normalized word toward lang.
func (c *Classifier) Train(word string, lang Language) {
	for d := range digraphsOf(word) {
		occ, ok := c.features[d]
		if !ok {
			occ = &occurrence{}
			c.features[d] = occ
		}
		if lang == Crk {
			occ.crk++
		} else {
			occ.eng++
		}
	}
}

// TrainFile normalizes every line of a word list and counts its
// digraphs toward lang.
func (c *Classifier) TrainFile(path string, lang Language) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening training list %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		c.Train(words.NormalizeWord(scanner.Text()), lang)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading training list %s: %w", path, err)
	}
	return nil
}

// Prune drops digraphs witnessed only once across both corpora; they
// add nothing when classifying.
func (c *Classifier) Prune() {
	for d, occ := range c.features {
		if occ.total() <= 1 {
			delete(c.features, d)
		}
	}
}

// NumFeatures reports the number of distinct digraphs currently held.
func (c *Classifier) NumFeatures() int { return len(c.features) }

// logProb is the Laplace-smoothed log-probability of a known digraph
// under a language.
func (c *Classifier) logProb(d digraph, lang Language) float64 {
	occ := c.features[d]
	numerator := float64(occ.of(lang) + 1)
	denominator := float64(occ.total() + c.NumFeatures())
	return math.Log(numerator) - math.Log(denominator)
}

// Classify sums the log-probabilities of the word's known digraphs
// under each language and returns the more probable one, along with
// both log-probabilities. Digraphs never seen in training are skipped.
// Ties go to English, matching the behavior the model was built with.
func (c *Classifier) Classify(word string) (Language, float64, float64) {
	var logProbCrk, logProbEng float64
	for d := range digraphsOf(word) {
		if _, ok := c.features[d]; !ok {
			continue
		}
		logProbCrk += c.logProb(d, Crk)
		logProbEng += c.logProb(d, Eng)
	}
	if logProbCrk > logProbEng {
		return Crk, logProbCrk, logProbEng
	}
	return Eng, logProbCrk, logProbEng
}
