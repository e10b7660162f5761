/*
Cfgtoolkit parses, analyzes, and drives predictive or shift-reduce parsers
for small context-free grammars written as plain text rule files.

Usage:

	cfgtoolkit <subcommand> [flags] <grammar-file> [sentence]

The subcommands are:

	grammar <file>
		Parse the grammar and print its productions plus every
		non-terminal's First and Follow sets.

	ll1 <file> [sentence]
		Build the LL(1) predictive parsing table for the grammar and print
		it. If a sentence is given (a space-separated list of tokens,
		quoted as one shell argument), parse it and print the resulting
		tree and its leftmost derivation trace.

	slr <file> [sentence]
		Build the SLR(1) action/goto table for the grammar and print it.
		If a sentence is given, parse it and print the resulting tree and
		its rightmost derivation trace.

Flags common to grammar, ll1, and slr:

	-c, --color
		Colorize diagnostic output (default taken from the config file,
		or on if there is none).

Flags common to ll1 and slr:

	-t, --trace
		Print a step-by-step trace of the parse to stderr.

	--cache
		Reuse a .cfgtoolkit-cache.toml sidecar file for the table
		rendering when the grammar file's modification time has not
		changed, and write one if absent (default taken from the config
		file, or off if there is none).

	--repl
		After building the table, start an interactive prompt that
		parses one sentence per line until "QUIT" or EOF.

slr additionally accepts --ambig, which tolerates shift/reduce conflicts by
preferring shift instead of failing, printing a warning for each one
resolved this way.

Top-level flags (given before the subcommand):

	--config <file>
		Read CLI defaults from the given TOML file instead of looking
		for .cfgtoolkitrc.toml in the current directory. See package
		internal/config for the file's shape: a default grammar file to
		use when none is given on the command line, a table-rendering
		wrap width, a color default, and a cache default.

	-v, --version
		Print the current version and exit.
*/
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dekarrin/cfgtoolkit/internal/config"
	"github.com/dekarrin/cfgtoolkit/internal/version"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitUsageError indicates the command line was malformed.
	ExitUsageError

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue reading or parsing the grammar file, or starting the REPL.
	ExitInitError

	// ExitGrammarError indicates the grammar was not LL(1) or SLR(1), as
	// applicable to the subcommand invoked.
	ExitGrammarError

	// ExitParseError indicates a given sentence was not in the grammar's
	// language.
	ExitParseError
)

var (
	stderr     = os.Stderr
	traceLog   = log.New(os.Stderr, "[cfgtoolkit] ", log.LstdFlags)
	returnCode = ExitSuccess
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	args := os.Args[1:]

	// Top-level flags (--config, --version/-v) must come before the
	// subcommand, since each subcommand owns its own pflag.FlagSet for its
	// own flags.
	configPath, args := extractConfigFlag(args)

	if len(args) < 1 {
		fmt.Fprintln(stderr, "ERROR: a subcommand is required: grammar, ll1, or slr")
		returnCode = ExitUsageError
		return
	}

	if args[0] == "-v" || args[0] == "--version" {
		fmt.Println(version.Current)
		return
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "grammar":
		returnCode = runGrammar(cfg, rest)
	case "ll1":
		returnCode = runLL1(cfg, rest)
	case "slr":
		returnCode = runSLR(cfg, rest)
	default:
		fmt.Fprintf(stderr, "ERROR: unknown subcommand %q\n", sub)
		returnCode = ExitUsageError
	}
}

// loadConfig reads CLI defaults from configPath if non-empty, or from
// config.DefaultFileName in the current directory (falling back to
// built-in defaults if that file does not exist).
func loadConfig(configPath string) (config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	return config.LoadDefaultOrFallback()
}

// extractConfigFlag pulls a "--config <path>" or "--config=<path>" pair out
// of args, given before the subcommand, returning the path (empty if not
// given) and the remaining args with that pair removed.
func extractConfigFlag(args []string) (configPath string, rest []string) {
	for i, a := range args {
		switch {
		case a == "--config":
			if i+1 < len(args) {
				configPath = args[i+1]
				rest = append(append([]string{}, args[:i]...), args[i+2:]...)
			} else {
				rest = append([]string{}, args[:i]...)
			}
			return configPath, rest
		case strings.HasPrefix(a, "--config="):
			rest = append(append([]string{}, args[:i]...), args[i+1:]...)
			return strings.TrimPrefix(a, "--config="), rest
		case a == "-v" || a == "--version" || (len(a) > 0 && a[0] != '-'):
			// Stop scanning once we reach the subcommand or -v/--version;
			// --config only applies before it.
			return "", args
		}
	}
	return "", args
}
