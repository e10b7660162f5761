package lr0

import (
	"testing"

	"github.com/dekarrin/cfgtoolkit/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classicExprGrammar(t *testing.T) grammar.Grammar {
	t.Helper()
	g, err := grammar.New([]string{
		"E -> E + T | T",
		"T -> T * F | F",
		"F -> ( E ) | id",
	})
	require.NoError(t, err)
	return g
}

func Test_Build_canonicalCollectionSize(t *testing.T) {
	g := classicExprGrammar(t)
	c := Build(g)

	assert.Equal(t, 12, c.NumStates())
}

func Test_Build_isDeterministicAcrossRuns(t *testing.T) {
	g := classicExprGrammar(t)

	first := Build(g)
	second := Build(g)

	require.Equal(t, first.NumStates(), second.NumStates())
	for i := range first.States {
		assert.Equal(t, first.States[i].hashKey(), second.States[i].hashKey())
	}
}

func Test_Closure_includesStartItem(t *testing.T) {
	g := classicExprGrammar(t)

	closure := Closure(g, []Item{{Prod: AugProd, Cursor: 0}})

	found := false
	for _, it := range closure.Items {
		if it.Prod == AugProd && it.Cursor == 0 {
			found = true
		}
	}
	assert.True(t, found)
	// closure of the initial item must also pull in every production whose
	// LHS is the start symbol, since the item after the dot is E.
	startProds := g.ProductionsFor(g.StartSymbol())
	for _, p := range startProds {
		has := false
		for _, it := range closure.Items {
			if it.Prod == p && it.Cursor == 0 {
				has = true
			}
		}
		assert.Truef(t, has, "closure missing initial item for production %d", p)
	}
}

func Test_Goto_emptyWhenNoTransition(t *testing.T) {
	g := classicExprGrammar(t)
	c := Build(g)

	missing := Goto(g, c.States[0], grammar.Term("nonexistent"))
	assert.Equal(t, 0, len(missing.Items))
}
