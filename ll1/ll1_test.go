package ll1

import (
	"testing"

	"github.com/dekarrin/cfgtoolkit/cfgerr"
	"github.com/dekarrin/cfgtoolkit/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exprGrammarLines() []string {
	return []string{
		"E -> T E'",
		"E' -> + T E' | ",
		"T -> F T'",
		"T' -> * F T' | ",
		"F -> ( E ) | id",
	}
}

func Test_Build_exprTableCells(t *testing.T) {
	g, err := grammar.New(exprGrammarLines())
	require.NoError(t, err)

	table, err := Build(g)
	require.NoError(t, err)

	cases := []struct {
		nt, term string
		wantProd string
	}{
		{"E", "id", "E -> T E'"},
		{"E", "(", "E -> T E'"},
		{"E'", "+", "E' -> + T E'"},
		{"E'", ")", "E' -> ε"},
		{"E'", "$", "E' -> ε"},
		{"T", "id", "T -> F T'"},
		{"T'", "+", "T' -> ε"},
		{"T'", "*", "T' -> * F T'"},
		{"T'", ")", "T' -> ε"},
		{"F", "id", "F -> id"},
		{"F", "(", "F -> ( E )"},
	}

	for _, c := range cases {
		t.Run(c.nt+"/"+c.term, func(t *testing.T) {
			term := grammar.Term(c.term)
			if c.term == "$" {
				term = grammar.End
			}
			idx, ok := table.Get(grammar.NonTerm(c.nt), term)
			require.True(t, ok, "expected a cell for (%s, %s)", c.nt, c.term)
			assert.Equal(t, c.wantProd, g.Production(idx).String())
		})
	}
}

func Test_Build_notLL1LeftRecursive(t *testing.T) {
	g, err := grammar.New([]string{"S -> S a | a"})
	require.NoError(t, err)

	_, err = Build(g)
	require.Error(t, err)
	kind, ok := cfgerr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, cfgerr.NotLL1, kind)
}

func Test_Build_notLL1Ambiguous(t *testing.T) {
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
	assert.Equal(t, cfgerr.NotLL1, kind)
}

func Test_Parser_Parse_acceptsAndUnparses(t *testing.T) {
	g, err := grammar.New(exprGrammarLines())
	require.NoError(t, err)

	p, err := NewParser(g)
	require.NoError(t, err)

	tree, err := p.Parse([]string{"id", "+", "id", "*", "id"})
	require.NoError(t, err)

	assert.Equal(t, "id + id * id", tree.Unparse())
	assert.Equal(t, grammar.NonTerm("E"), tree.Symbol)
}

func Test_Parser_Parse_leftmostDerivationStepCount(t *testing.T) {
	g, err := grammar.New(exprGrammarLines())
	require.NoError(t, err)

	p, err := NewParser(g)
	require.NoError(t, err)

	result, err := p.Parse([]string{"id"})
	require.NoError(t, err)

	steps := result.Leftmost()
	assert.Len(t, steps, 6)
	assert.Equal(t, "E", steps[0])
	assert.Equal(t, "id", steps[len(steps)-1])
}

func Test_Parser_Parse_rejectsMismatch(t *testing.T) {
	g, err := grammar.New(exprGrammarLines())
	require.NoError(t, err)

	p, err := NewParser(g)
	require.NoError(t, err)

	_, err = p.Parse([]string{"+", "id"})
	require.Error(t, err)
}

func Test_Parser_Parse_rejectsTrailingJunk(t *testing.T) {
	g, err := grammar.New(exprGrammarLines())
	require.NoError(t, err)

	p, err := NewParser(g)
	require.NoError(t, err)

	_, err = p.Parse([]string{"id", "+"})
	require.Error(t, err)
}

func Test_Parser_Parse_rejectsDoubleOperator(t *testing.T) {
	g, err := grammar.New(exprGrammarLines())
	require.NoError(t, err)

	p, err := NewParser(g)
	require.NoError(t, err)

	_, err = p.Parse([]string{"id", "+", "+", "id"})
	require.Error(t, err)
}

func Test_Parser_Trace_invokedOnEachStep(t *testing.T) {
	g, err := grammar.New(exprGrammarLines())
	require.NoError(t, err)

	p, err := NewParser(g)
	require.NoError(t, err)

	var lines []string
	p.Trace = func(line string) { lines = append(lines, line) }

	_, err = p.Parse([]string{"id"})
	require.NoError(t, err)
	assert.NotEmpty(t, lines)
}
