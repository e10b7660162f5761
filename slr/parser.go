package slr

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/dekarrin/cfgtoolkit/cfgerr"
	"github.com/dekarrin/cfgtoolkit/grammar"
	"github.com/dekarrin/cfgtoolkit/tree"
)

// TraceFunc, if set on a Parser, is called with a human-readable line for
// every step the driver takes (state peek/push/pop, lookahead advance, the
// chosen action).
type TraceFunc func(line string)

// Parser drives a shift-reduce parse against a built SLR(1) Table,
// producing a tree.Node.
type Parser struct {
	table *Table
	g     grammar.Grammar
	Trace TraceFunc
}

// NewParser returns a parser that uses SLR(1) bottom-up parsing to
// recognize sentences of g. It fails with cfgerr.NotSLR1 if g is not an
// SLR(1) grammar.
func NewParser(g grammar.Grammar) (*Parser, error) {
	table, err := Build(g)
	if err != nil {
		return nil, err
	}
	return NewParserFromTable(g, table), nil
}

// NewParserFromTable returns a parser driving t, a table already built for
// g (e.g. via BuildTolerant). Useful for callers that built the table once
// to both print it and parse with it, avoiding a redundant reconstruction
// that would lose an allowAmbig resolution already chosen.
func NewParserFromTable(g grammar.Grammar, t *Table) *Parser {
	return &Parser{table: t, g: g.Copy()}
}

type stackFrame struct {
	state int
	node  *tree.Node
}

// Parse recognizes the given sequence of terminal tokens (as symbol text;
// never supply grammar.End yourself, it is synthesized internally after
// the sequence is exhausted) and returns the resulting parse tree. The
// explicit state stack is an emirpasic/gods arraystack.
func (p *Parser) Parse(tokens []string) (*tree.Node, error) {
	stack := arraystack.New()
	stack.Push(stackFrame{state: 0})
	pos := 0

	next := func() grammar.Symbol {
		if pos >= len(tokens) {
			return grammar.End
		}
		return grammar.Term(tokens[pos])
	}

	lookahead := next()

	for {
		v, _ := stack.Peek()
		top := v.(stackFrame)
		p.trace("state %d, lookahead %q", top.state, lookahead.String())

		act := p.table.Action(top.state, lookahead)

		switch act.Kind {
		case Shift:
			leaf := tree.NewLeaf(lookahead)
			stack.Push(stackFrame{state: act.State, node: leaf})
			p.trace("shift -> state %d", act.State)
			pos++
			lookahead = next()

		case Reduce:
			prod := p.g.Production(act.Prod)
			n := len(prod.RHS)

			var children []*tree.Node
			if n == 0 {
				children = []*tree.Node{tree.NewLeaf(grammar.Eps)}
			} else {
				children = make([]*tree.Node, n)
				for i := n - 1; i >= 0; i-- {
					fv, _ := stack.Pop()
					children[i] = fv.(stackFrame).node
				}
			}

			tv, _ := stack.Peek()
			top = tv.(stackFrame)
			gotoState, ok := p.table.Goto(top.state, prod.LHS)
			if !ok {
				return nil, cfgerr.NotInLanguageAt(symbolState(top.state), lookahead.String())
			}

			node := tree.NewInternal(prod.LHS, children...)
			stack.Push(stackFrame{state: gotoState, node: node})
			p.trace("reduce by %s -> goto state %d", prod.String(), gotoState)

		case Accept:
			p.trace("accept")
			av, _ := stack.Peek()
			return av.(stackFrame).node, nil

		default:
			return nil, cfgerr.NotInLanguageAt(symbolState(top.state), lookahead.String())
		}
	}
}

func (p *Parser) trace(format string, args ...interface{}) {
	if p.Trace == nil {
		return
	}
	p.Trace(fmt.Sprintf(format, args...))
}

// symbolState renders an SLR state index as the "state" half of a
// cfgerr.NotInLanguageAt report.
func symbolState(state int) string {
	return fmt.Sprintf("%d", state)
}
