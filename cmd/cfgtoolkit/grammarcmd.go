package main

import (
	"fmt"
	"sort"

	"github.com/pterm/pterm"
	"github.com/spf13/pflag"

	"github.com/dekarrin/cfgtoolkit/grammar"
	"github.com/dekarrin/cfgtoolkit/internal/config"
	"github.com/dekarrin/cfgtoolkit/internal/setutil"
)

// runGrammar implements the "grammar" subcommand: parse a grammar file and
// print its start symbol, its productions, and every non-terminal's First
// and Follow sets.
func runGrammar(cfg config.Config, args []string) int {
	fs := pflag.NewFlagSet("grammar", pflag.ContinueOnError)
	color := fs.BoolP("color", "c", cfg.Color, "Colorize diagnostic output")
	if err := fs.Parse(args); err != nil {
		return ExitUsageError
	}

	grammarFile := cfg.DefaultGrammarFile
	if fs.NArg() >= 1 {
		grammarFile = fs.Arg(0)
	}
	if grammarFile == "" {
		fmt.Fprintln(stderr, "ERROR: grammar requires a grammar file argument (or a default_grammar_file in the config)")
		return ExitUsageError
	}

	if !*color {
		pterm.DisableColor()
	}

	g, err := loadGrammar(grammarFile)
	if err != nil {
		pterm.Error.Println(err.Error())
		return ExitInitError
	}

	pterm.Info.Printfln("start symbol: %s", g.StartSymbol().String())

	fmt.Println("\nproductions:")
	for i, p := range g.Productions() {
		fmt.Printf("  %d: %s\n", i, p.String())
	}

	nonTerms := g.NonTerminals()
	sort.Slice(nonTerms, func(i, j int) bool { return nonTerms[i].String() < nonTerms[j].String() })

	fmt.Println("\nFirst/Follow:")
	for _, nt := range nonTerms {
		fmt.Printf("  First(%s)  = %s\n", nt.String(), renderSet(g.First(nt)))
		fmt.Printf("  Follow(%s) = %s\n", nt.String(), renderSet(g.Follow(nt)))
	}

	return ExitSuccess
}

func renderSet(set setutil.Set[grammar.Symbol]) string {
	syms := set.Elements()
	strs := make([]string, len(syms))
	for i, s := range syms {
		strs[i] = s.String()
	}
	sort.Strings(strs)
	out := "{ "
	for i, s := range strs {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out + " }"
}
