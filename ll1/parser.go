package ll1

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/dekarrin/cfgtoolkit/cfgerr"
	"github.com/dekarrin/cfgtoolkit/grammar"
	"github.com/dekarrin/cfgtoolkit/tree"
)

// TraceFunc, if set on a Parser, is called with a human-readable line for
// every step of the driver (stack top, lookahead, production applied).
type TraceFunc func(line string)

// Parser drives a stack-based top-down parse against a built Table,
// producing a tree.Node.
type Parser struct {
	table *Table
	g     grammar.Grammar
	Trace TraceFunc
}

// NewParser builds the LL(1) table for g and returns a parser for it. It
// fails with cfgerr.NotLL1 if g is not LL(1).
func NewParser(g grammar.Grammar) (*Parser, error) {
	table, err := Build(g)
	if err != nil {
		return nil, err
	}
	return &Parser{table: table, g: g.Copy()}, nil
}

type stackEntry struct {
	sym  grammar.Symbol
	node *tree.Node
}

// Parse recognizes the given sequence of terminal tokens (as symbol text;
// never supply grammar.End yourself) and returns the resulting parse tree.
//
// The explicit stack (an emirpasic/gods arraystack) is initialized to
// [End, start]; each stack entry carries the tree node it stands for.
// Expanding a non-terminal creates its child nodes in left-to-right order,
// attaches them to its node at once, and pushes them in reverse, so the
// tree is filled in place as the stack is consumed.
func (p *Parser) Parse(tokens []string) (*tree.Node, error) {
	pos := 0
	next := func() grammar.Symbol {
		if pos >= len(tokens) {
			return grammar.End
		}
		return grammar.Term(tokens[pos])
	}
	lookahead := next()

	root := &tree.Node{Symbol: p.g.StartSymbol()}
	stack := arraystack.New()
	stack.Push(stackEntry{sym: grammar.End, node: nil})
	stack.Push(stackEntry{sym: p.g.StartSymbol(), node: root})

	for {
		v, _ := stack.Peek()
		top := v.(stackEntry)
		p.trace("stack top %s, lookahead %q", top.sym.String(), lookahead.String())

		if top.sym.IsEnd() {
			if lookahead.IsEnd() {
				return root, nil
			}
			return nil, cfgerr.NotInLanguageAt("$", lookahead.String())
		}

		if top.sym.IsTerminal() {
			if top.sym != lookahead {
				return nil, cfgerr.Mismatch(top.sym.String(), lookahead.String())
			}
			top.node.Terminal = true
			stack.Pop()
			pos++
			lookahead = next()
			continue
		}

		prodIdx, ok := p.table.Get(top.sym, lookahead)
		if !ok {
			return nil, cfgerr.NotInLanguageAt(top.sym.String(), lookahead.String())
		}
		stack.Pop()

		prod := p.g.Production(prodIdx)
		p.trace("apply %s", prod.String())

		if len(prod.RHS) == 0 {
			top.node.Children = []*tree.Node{tree.NewLeaf(grammar.Eps)}
			continue
		}

		children := make([]*tree.Node, len(prod.RHS))
		for i, sym := range prod.RHS {
			children[i] = &tree.Node{Symbol: sym}
		}
		top.node.Children = children

		for i := len(prod.RHS) - 1; i >= 0; i-- {
			stack.Push(stackEntry{sym: prod.RHS[i], node: children[i]})
		}
	}
}

func (p *Parser) trace(format string, args ...interface{}) {
	if p.Trace == nil {
		return
	}
	p.Trace(fmt.Sprintf(format, args...))
}
