package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/dekarrin/cfgtoolkit/tree"
)

// runREPL reads sentences one per line via GNU-readline-backed input and
// feeds each to parseFn, printing the resulting tree or the rejection
// reason. Typing "QUIT" or sending EOF (Ctrl-D) ends the session.
func runREPL(parseFn func(tokens []string) (*tree.Node, error)) int {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "cfgtoolkit> ",
	})
	if err != nil {
		pterm.Error.Printfln("could not start REPL: %s", err.Error())
		return ExitInitError
	}
	defer rl.Close()

	pterm.Info.Println(`enter a space-separated sentence, or "QUIT" to exit`)

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				return ExitSuccess
			}
			pterm.Error.Println(err.Error())
			return ExitInitError
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "QUIT") {
			return ExitSuccess
		}

		result, err := parseFn(strings.Fields(line))
		if err != nil {
			reportParseError(err)
			continue
		}
		renderTree(result)
		fmt.Println()
	}
}
