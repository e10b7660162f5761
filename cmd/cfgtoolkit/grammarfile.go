package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dekarrin/cfgtoolkit/grammar"
)

// loadGrammar reads path (one rule per line, see the grammar package doc
// for the rule-line format) and parses it into a Grammar.
func loadGrammar(path string) (grammar.Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return grammar.Grammar{}, fmt.Errorf("%q: reading from disk: %w", path, err)
	}
	lines := strings.Split(string(data), "\n")
	// grammar.New treats a blank line as malformed input; trim only the
	// trailing ones a text editor's final newline leaves behind, so a
	// well-formed file on disk isn't rejected for it.
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return grammar.New(lines)
}
