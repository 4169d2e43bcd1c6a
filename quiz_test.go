package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quizgen/wordquiz/words"
)

func Test_ShufflePipeline(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "itwêwina")
	output := filepath.Join(dir, "quiz")
	require.NoError(t, os.WriteFile(input, []byte("Wolf\nant\nBee\ncat\n"), 0644))

	require.NoError(t, newApp().Run([]string{"wordquiz", input, output}))

	lines, err := words.ReadLines(output)
	require.NoError(t, err)
	require.Equal(t, []string{"ant", "Bee", "cat", "Wolf"}, lines)
}

func Test_ShuffleSubcommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "wordlist")
	output := filepath.Join(dir, "quiz")
	require.NoError(t, os.WriteFile(input, []byte("dog\nEmu\nant\n"), 0644))

	require.NoError(t, newApp().Run([]string{"wordquiz", "shuffle", "--seed", "42", input, output}))

	lines, err := words.ReadLines(output)
	require.NoError(t, err)
	require.Equal(t, []string{"ant", "dog", "Emu"}, lines)
}

func Test_MissingInput(t *testing.T) {
	dir := t.TempDir()
	err := newApp().Run([]string{"wordquiz", filepath.Join(dir, "missing"), filepath.Join(dir, "out")})
	require.Error(t, err)
}

func Test_MissingArguments(t *testing.T) {
	err := newApp().Run([]string{"wordquiz", "only-one-argument"})
	require.Error(t, err)
}
