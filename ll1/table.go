// Package ll1 builds an LL(1) predictive parsing table from a grammar and
// drives a stack-based top-down parse against it.
package ll1

import (
	"fmt"
	"sort"

	"github.com/dekarrin/rosed"

	"github.com/dekarrin/cfgtoolkit/cfgerr"
	"github.com/dekarrin/cfgtoolkit/grammar"
)

// Table is a built LL(1) predictive parsing table: for every non-terminal
// and lookahead terminal (or End), it names the production index to apply,
// if any.
type Table struct {
	g     grammar.Grammar
	cells map[grammar.Symbol]map[grammar.Symbol]int
}

// Get returns the production index for cell (nt, term), and whether one is
// defined.
func (t *Table) Get(nt, term grammar.Symbol) (int, bool) {
	row, ok := t.cells[nt]
	if !ok {
		return 0, false
	}
	idx, ok := row[term]
	return idx, ok
}

// NonTerminals returns the grammar's non-terminals, in the same order used
// to build this table's rows.
func (t *Table) NonTerminals() []grammar.Symbol {
	return t.g.NonTerminals()
}

// Build constructs the LL(1) table for g: for
// every production A -> alpha (index i), every terminal in
// First(alpha) \ {Eps} gets T[A, terminal] = i; if Eps is in First(alpha),
// every terminal in Follow(A) (including End as needed) also gets
// T[A, terminal] = i. It returns cfgerr.NotLL1 if any cell would need two
// distinct productions.
func Build(g grammar.Grammar) (*Table, error) {
	t := &Table{g: g, cells: make(map[grammar.Symbol]map[grammar.Symbol]int)}
	for _, nt := range g.NonTerminals() {
		t.cells[nt] = make(map[grammar.Symbol]int)
	}

	for i, p := range g.Productions() {
		first := g.FirstOfSequence(p.RHS)

		for _, a := range first.Elements() {
			if a.IsEps() {
				continue
			}
			if err := t.set(p.LHS, a, i); err != nil {
				return nil, err
			}
		}

		if first.Has(grammar.Eps) {
			for _, b := range g.Follow(p.LHS).Elements() {
				if err := t.set(p.LHS, b, i); err != nil {
					return nil, err
				}
			}
		}
	}

	return t, nil
}

// String renders the table as a fixed-width grid: one row per non-terminal,
// one column per terminal (plus "$"), each cell holding the chosen
// production or blank if none is defined.
func (t *Table) String() string {
	nonTerms := t.g.NonTerminals()
	sort.Slice(nonTerms, func(i, j int) bool { return nonTerms[i].String() < nonTerms[j].String() })

	terms := t.g.Terminals()
	sort.Slice(terms, func(i, j int) bool { return terms[i].String() < terms[j].String() })
	terms = append(terms, grammar.End)

	headers := []string{"NT", "|"}
	for _, term := range terms {
		headers = append(headers, term.String())
	}

	data := [][]string{headers}

	for _, nt := range nonTerms {
		row := []string{nt.String(), "|"}
		for _, term := range terms {
			cell := ""
			if idx, ok := t.Get(nt, term); ok {
				cell = fmt.Sprintf("%d: %s", idx, t.g.Production(idx).String())
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

func (t *Table) set(nt, term grammar.Symbol, prodIdx int) error {
	row := t.cells[nt]
	if existing, ok := row[term]; ok && existing != prodIdx {
		return cfgerr.NotLL1Conflict(
			nt.String(), term.String(),
			existing, t.g.Production(existing).String(),
			prodIdx, t.g.Production(prodIdx).String(),
		)
	}
	row[term] = prodIdx
	return nil
}
