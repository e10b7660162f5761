package tree

import (
	"testing"

	"github.com/dekarrin/cfgtoolkit/grammar"
	"github.com/stretchr/testify/assert"
)

// buildParenExprTree builds the parse tree for "( id + id ) * id" under
// E -> id T | ( E ) T ; T -> + id | * id, matching the concrete
// end-to-end scenario 3.
func buildParenExprTree() *Node {
	term := grammar.Term
	nonTerm := grammar.NonTerm

	innerE := NewInternal(nonTerm("E"),
		NewLeaf(term("id")),
		NewInternal(nonTerm("T"),
			NewLeaf(term("+")),
			NewLeaf(term("id")),
		),
	)

	return NewInternal(nonTerm("E"),
		NewLeaf(term("(")),
		innerE,
		NewLeaf(term(")")),
		NewInternal(nonTerm("T"),
			NewLeaf(term("*")),
			NewLeaf(term("id")),
		),
	)
}

func Test_Unparse(t *testing.T) {
	root := buildParenExprTree()
	assert.Equal(t, "( id + id ) * id", root.Unparse())
}

func Test_Leftmost_stepCount(t *testing.T) {
	root := buildParenExprTree()
	steps := root.Leftmost()

	assert.Len(t, steps, 5)
	assert.Equal(t, "E", steps[0])
	assert.Equal(t, root.Unparse(), steps[len(steps)-1])
}

func Test_Rightmost_differsInExpansionOrder(t *testing.T) {
	root := buildParenExprTree()
	steps := root.Rightmost()

	assert.Equal(t, "E", steps[0])
	assert.Equal(t, root.Unparse(), steps[len(steps)-1])
	// rightmost expands the trailing T before the parenthesized E, so its
	// third snapshot ("( E ) * id") still shows the inner E unexpanded but
	// the outer T already expanded.
	assert.Contains(t, steps[2], "E")
	assert.NotContains(t, steps[2], "+")
}

func Test_EpsilonLeafElidedFromUnparseAndDerivation(t *testing.T) {
	term := grammar.Term
	nonTerm := grammar.NonTerm

	root := NewInternal(nonTerm("S"),
		NewLeaf(term("a")),
		NewInternal(nonTerm("A"), NewLeaf(grammar.Eps)),
	)

	assert.Equal(t, "a", root.Unparse())
	steps := root.Leftmost()
	assert.Equal(t, "a", steps[len(steps)-1])
}

func Test_Lines_rendersEpsilonMarker(t *testing.T) {
	nonTerm := grammar.NonTerm
	root := NewInternal(nonTerm("A"), NewLeaf(grammar.Eps))
	lines := root.Lines()
	assert.Contains(t, lines[len(lines)-1], "ε")
}
