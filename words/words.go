// Package words implements the word-list pipeline: reading and counting
// line-oriented word files, sampling without replacement, case-insensitive
// sorting, and writing results back out.
package words

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadLines reads a newline-delimited word list. A trailing final newline
// does not produce an empty entry, so an empty file yields no entries.
func ReadLines(path string) ([]string, error) {
	bytesRead, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading word list %s: %w", path, err)
	}
	fileContent := strings.TrimSuffix(string(bytesRead), "\n")
	if fileContent == "" {
		return nil, nil
	}
	return strings.Split(fileContent, "\n"), nil
}

// CountLines reports the number of lines in a word list.
func CountLines(path string) (int, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return 0, err
	}
	return len(lines), nil
}

// WriteLines writes entries to path, one per line, overwriting any
// existing content.
func WriteLines(path string, lines []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, werr := w.WriteString(line); werr != nil {
			return fmt.Errorf("writing output %s: %w", path, werr)
		}
		if werr := w.WriteByte('\n'); werr != nil {
			return fmt.Errorf("writing output %s: %w", path, werr)
		}
	}
	if werr := w.Flush(); werr != nil {
		return fmt.Errorf("writing output %s: %w", path, werr)
	}
	return nil
}
