// Package tree implements the concrete parse tree shared by the ll1 and
// slr drivers: a simple n-ary tree holding a grammar symbol per node, with
// support for in-order leaf collection (Unparse), an indented textual
// dump (Lines), and leftmost/rightmost derivation traces.
package tree

import (
	"fmt"
	"strings"

	"github.com/dekarrin/cfgtoolkit/grammar"
)

// Node is one node of a parse tree. A leaf (Terminal true) carries either a
// terminal symbol or grammar.Eps (an epsilon-derivation placeholder). An
// internal node owns its ordered child list; after the parser driver that
// built it returns, the tree belongs exclusively to the caller.
type Node struct {
	Symbol   grammar.Symbol
	Terminal bool
	Children []*Node
}

// NewLeaf returns a terminal leaf node for sym (which may be grammar.Eps).
func NewLeaf(sym grammar.Symbol) *Node {
	return &Node{Symbol: sym, Terminal: true}
}

// NewInternal returns a non-terminal node with the given children.
func NewInternal(sym grammar.Symbol, children ...*Node) *Node {
	return &Node{Symbol: sym, Children: children}
}

// Copy returns a deep copy of the subtree rooted at n.
func (n *Node) Copy() *Node {
	if n == nil {
		return nil
	}
	cp := &Node{Symbol: n.Symbol, Terminal: n.Terminal}
	cp.Children = make([]*Node, len(n.Children))
	for i, c := range n.Children {
		cp.Children[i] = c.Copy()
	}
	return cp
}

const (
	levelEmpty      = "        "
	levelOngoing    = "  |     "
	levelPrefix     = "  |--%s: "
	levelPrefixLast = `  \--%s: `
)

// Lines returns an indented textual rendering of the tree, one line per
// node, with an empty symbol rendered as "ε".
func (n *Node) Lines() []string {
	return strings.Split(n.leveledString("", ""), "\n")
}

// String renders the whole tree via Lines, newline-joined.
func (n *Node) String() string {
	return n.leveledString("", "")
}

func (n *Node) leveledString(firstPrefix, contPrefix string) string {
	var sb strings.Builder
	sb.WriteString(firstPrefix)
	if n.Terminal {
		sb.WriteString(fmt.Sprintf("(TERM %s)", n.Symbol.String()))
	} else {
		sb.WriteString(fmt.Sprintf("( %s )", n.Symbol.String()))
	}

	for i, child := range n.Children {
		sb.WriteRune('\n')
		var childFirst, childCont string
		if i+1 < len(n.Children) {
			childFirst = contPrefix + fmt.Sprintf(levelPrefix, "")
			childCont = contPrefix + levelOngoing
		} else {
			childFirst = contPrefix + fmt.Sprintf(levelPrefixLast, "")
			childCont = contPrefix + levelEmpty
		}
		sb.WriteString(child.leveledString(childFirst, childCont))
	}

	return sb.String()
}

// Unparse returns the in-order concatenation of leaf terminal symbols,
// space-separated, with epsilon leaves elided. Tokenising the result on
// whitespace reproduces the sentence this tree was parsed from.
func (n *Node) Unparse() string {
	var toks []string
	n.collectLeaves(&toks)
	return strings.Join(toks, " ")
}

func (n *Node) collectLeaves(out *[]string) {
	if n.Terminal {
		if !n.Symbol.IsEps() {
			*out = append(*out, n.Symbol.String())
		}
		return
	}
	for _, c := range n.Children {
		c.collectLeaves(out)
	}
}

// Equal returns whether n and o have identical structure: same Terminal
// flag, same Symbol, and recursively equal children.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Terminal != o.Terminal || n.Symbol != o.Symbol {
		return false
	}
	if len(n.Children) != len(o.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}
