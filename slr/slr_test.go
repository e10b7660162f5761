package slr

import (
	"testing"

	"github.com/dekarrin/cfgtoolkit/cfgerr"
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

func Test_Build_acceptsClassicExprGrammar(t *testing.T) {
	g := classicExprGrammar(t)
	table, err := Build(g)
	require.NoError(t, err)
	assert.Equal(t, 12, table.Collection.NumStates())
}

func Test_Build_acceptsLeftRecursiveGrammar(t *testing.T) {
	// Left recursion defeats LL(1) but is unproblematic for SLR.
	g, err := grammar.New([]string{"S -> S a | a"})
	require.NoError(t, err)

	_, err = Build(g)
	require.NoError(t, err)
}

func Test_Build_actionTableHasShiftReduceAccept(t *testing.T) {
	g := classicExprGrammar(t)
	table, err := Build(g)
	require.NoError(t, err)

	var sawShift, sawReduce, sawAccept bool
	for i := 0; i < table.Collection.NumStates(); i++ {
		for _, term := range append(g.Terminals(), grammar.End) {
			act := table.Action(i, term)
			switch act.Kind {
			case Shift:
				sawShift = true
			case Reduce:
				sawReduce = true
			case Accept:
				sawAccept = true
			}
		}
	}
	assert.True(t, sawShift, "expected at least one shift action somewhere in the table")
	assert.True(t, sawReduce, "expected at least one reduce action somewhere in the table")
	assert.True(t, sawAccept, "expected an accept action on $ somewhere in the table")
}

func Test_Parser_Parse_acceptsAndUnparses(t *testing.T) {
	g := classicExprGrammar(t)
	p, err := NewParser(g)
	require.NoError(t, err)

	tree, err := p.Parse([]string{"id", "+", "id", "*", "id"})
	require.NoError(t, err)

	assert.Equal(t, "id + id * id", tree.Unparse())
	assert.Equal(t, grammar.NonTerm("E"), tree.Symbol)
}

func Test_Parser_Parse_rightmostDerivationTrace(t *testing.T) {
	g := classicExprGrammar(t)
	p, err := NewParser(g)
	require.NoError(t, err)

	result, err := p.Parse([]string{"id", "+", "id", "*", "id"})
	require.NoError(t, err)

	steps := result.Rightmost()
	require.NotEmpty(t, steps)
	assert.Equal(t, "E", steps[0])
	assert.Equal(t, result.Unparse(), steps[len(steps)-1])
}

func Test_Parser_Parse_rejectsUnbalancedParens(t *testing.T) {
	g := classicExprGrammar(t)
	p, err := NewParser(g)
	require.NoError(t, err)

	_, err = p.Parse([]string{"(", "id", "+", "id"})
	require.Error(t, err)
}

func Test_Parser_Parse_rejectsDanglingOperator(t *testing.T) {
	g := classicExprGrammar(t)
	p, err := NewParser(g)
	require.NoError(t, err)

	_, err = p.Parse([]string{"id", "*"})
	require.Error(t, err)
}

func Test_Parser_Trace_invokedOnEachStep(t *testing.T) {
	g := classicExprGrammar(t)
	p, err := NewParser(g)
	require.NoError(t, err)

	var lines []string
	p.Trace = func(line string) { lines = append(lines, line) }

	_, err = p.Parse([]string{"id"})
	require.NoError(t, err)
	assert.NotEmpty(t, lines)
}

func Test_BuildTolerant_shiftReduceConflictResolvedAndParses(t *testing.T) {
	// The dangling-else-shaped ambiguity: S -> if S | if S else S | x.
	// Strict Build must reject it; BuildTolerant(g, true) resolves every
	// shift/reduce conflict in favor of the shift and still produces a
	// usable parser.
	g, err := grammar.New([]string{
		"S -> if S else S | if S | x",
	})
	require.NoError(t, err)

	_, err = Build(g)
	require.Error(t, err)

	table, warnings, err := BuildTolerant(g, true)
	require.NoError(t, err)
	assert.NotEmpty(t, warnings)

	p := NewParserFromTable(g, table)
	result, err := p.Parse([]string{"if", "x", "else", "x"})
	require.NoError(t, err)
	assert.Equal(t, "if x else x", result.Unparse())
}

func Test_Build_reduceReduceConflictReported(t *testing.T) {
	// A -> x and B -> x both reducible to the same state under the same
	// lookahead with no distinguishing context is not SLR(1): the grammar
	// is ambiguous between S -> A and S -> B.
	g, err := grammar.New([]string{
		"S -> A | B",
		"A -> x",
		"B -> x",
	})
	require.NoError(t, err)

	_, err = Build(g)
	require.Error(t, err)
	kind, ok := cfgerr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, cfgerr.NotSLR1, kind)
}
