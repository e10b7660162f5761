package main

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"

	"github.com/dekarrin/cfgtoolkit/internal/cache"
	"github.com/dekarrin/cfgtoolkit/internal/config"
	"github.com/dekarrin/cfgtoolkit/slr"
)

// runSLR implements the "slr" subcommand: build the SLR(1) action/goto
// table for a grammar file, print it, and, if a sentence is given, parse it
// and print the resulting tree and rightmost derivation trace. With --cache,
// the printed rendering is taken from the sidecar cache when it is current;
// the table is still built on every run.
func runSLR(cfg config.Config, args []string) int {
	fs := pflag.NewFlagSet("slr", pflag.ContinueOnError)
	color := fs.BoolP("color", "c", cfg.Color, "Colorize diagnostic output")
	trace := fs.BoolP("trace", "t", false, "Print a step trace of the parse")
	allowAmbig := fs.Bool("ambig", false, "Tolerate shift/reduce conflicts by preferring shift, warning instead of failing")
	useCache := fs.Bool("cache", cfg.Cache, "Reuse/update a .cfgtoolkit-cache.toml sidecar for the table rendering")
	repl := fs.Bool("repl", false, "Start an interactive REPL that parses one sentence per line")
	if err := fs.Parse(args); err != nil {
		return ExitUsageError
	}

	if !*color {
		pterm.DisableColor()
	}

	grammarFile := cfg.DefaultGrammarFile
	sentenceArg := 1
	if fs.NArg() >= 1 {
		grammarFile = fs.Arg(0)
	} else {
		sentenceArg = 0
	}
	if grammarFile == "" {
		fmt.Fprintln(stderr, "ERROR: slr requires a grammar file argument (or a default_grammar_file in the config)")
		return ExitUsageError
	}

	g, err := loadGrammar(grammarFile)
	if err != nil {
		pterm.Error.Println(err.Error())
		return ExitInitError
	}

	table, warnings, err := slr.BuildTolerant(g, *allowAmbig)
	if err != nil {
		pterm.Error.Println(err.Error())
		return ExitGrammarError
	}
	for _, w := range warnings {
		pterm.Warning.Println(w)
	}

	rendering := table.String()
	if cfg.TableWidth > 0 {
		rendering = rosed.Edit(rendering).Wrap(cfg.TableWidth).String()
	}
	if *useCache {
		if cached, ok := cache.Lookup(grammarFile, "slr"); ok {
			rendering = cached
		} else if storeErr := cache.Store(grammarFile, "slr", rendering); storeErr != nil {
			traceLog.Printf("could not write table cache: %v", storeErr)
		}
	}
	fmt.Println(rendering)

	p := slr.NewParserFromTable(g, table)
	if *trace {
		p.Trace = func(line string) { traceLog.Println(line) }
	}

	if *repl {
		return runREPL(p.Parse)
	}

	if fs.NArg() <= sentenceArg {
		return ExitSuccess
	}

	sentence := strings.Fields(fs.Arg(sentenceArg))
	result, err := p.Parse(sentence)
	if err != nil {
		reportParseError(err)
		return ExitParseError
	}

	renderTree(result)
	fmt.Println("\nrightmost derivation:")
	for _, step := range result.Rightmost() {
		fmt.Println("  " + step)
	}

	return ExitSuccess
}
