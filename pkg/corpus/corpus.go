// Package corpus reads plain-text input and turns it into the token
// stream the model is built from.
//
// Tokenization is deliberately simple: the whole text is lowercased and
// split on runs of whitespace. Punctuation stays attached to its word,
// so "end." and "end" are distinct tokens.
package corpus

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Tokenize lowercases text and splits it on runs of whitespace.
// Empty or all-whitespace input yields no tokens.
func Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// Load reads the file at path in full and tokenizes it.
// The file is read once at startup; a failure here is fatal to the caller.
func Load(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("corpus file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("corpus path %s is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus %s: %w", path, err)
	}
	if bytes.IndexByte(data, 0) >= 0 {
		log.Warnf("corpus %s contains NUL bytes; is this a text file?", path)
	}
	return Tokenize(string(data)), nil
}

// CountWords counts occurrences of each distinct token.
func CountWords(tokens []string) map[string]int64 {
	counts := make(map[string]int64)
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}
