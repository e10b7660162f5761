// Package slr builds an SLR(1) action/goto table from the canonical
// collection of LR(0) item sets of a grammar (see package lr0), and drives
// a shift-reduce parse against it.
package slr

import (
	"fmt"
	"sort"

	"github.com/dekarrin/rosed"

	"github.com/dekarrin/cfgtoolkit/cfgerr"
	"github.com/dekarrin/cfgtoolkit/grammar"
	"github.com/dekarrin/cfgtoolkit/lr0"
)

// ActionKind classifies a single Action cell.
type ActionKind int

const (
	// Error is the zero value: no action is defined for this cell.
	Error ActionKind = iota
	Shift
	Reduce
	Accept
)

func (k ActionKind) String() string {
	switch k {
	case Shift:
		return "shift"
	case Reduce:
		return "reduce"
	case Accept:
		return "accept"
	default:
		return "error"
	}
}

// Action is a single ACTION-table cell.
type Action struct {
	Kind ActionKind

	// State is the target state for a Shift action.
	State int

	// Prod is the production index to reduce by for a Reduce action.
	Prod int
}

// Equal returns whether a and o are the same action. Two Reduce or Shift
// actions with different payloads are not equal, even if same Kind.
func (a Action) Equal(o Action) bool {
	return a.Kind == o.Kind && a.State == o.State && a.Prod == o.Prod
}

func (a Action) render(g grammar.Grammar) string {
	switch a.Kind {
	case Shift:
		return fmt.Sprintf("shift %d", a.State)
	case Reduce:
		return fmt.Sprintf("reduce %s", g.Production(a.Prod).String())
	case Accept:
		return "accept"
	default:
		return "error"
	}
}

// Table is a built SLR(1) action/goto table: it knows, for every state and
// lookahead terminal (or End), what to do, and for every state and
// non-terminal, which state to goto after a reduction.
type Table struct {
	g          grammar.Grammar
	Collection *lr0.Collection

	action []map[grammar.Symbol]Action
	goTo   []map[grammar.Symbol]int
}

// Action returns the action table entry for (state, sym). A zero Action
// (Kind == Error) means no action is defined.
func (t *Table) Action(state int, sym grammar.Symbol) Action {
	return t.action[state][sym]
}

// Goto returns the goto-table entry for (state, nt), and whether it is
// defined.
func (t *Table) Goto(state int, nt grammar.Symbol) (int, bool) {
	j, ok := t.goTo[state][nt]
	return j, ok
}

// Build constructs the SLR(1) action/goto table for g. It returns
// cfgerr.NotSLR1 if any action-table cell would need to hold two distinct,
// non-idempotent actions. Equivalent to BuildTolerant(g, false) with
// warnings discarded.
func Build(g grammar.Grammar) (*Table, error) {
	t, _, err := BuildTolerant(g, false)
	return t, err
}

// BuildTolerant constructs the SLR(1) action/goto table for g, same as
// Build, but when allowAmbig is true a shift/reduce conflict is resolved in
// favor of the shift (the conventional disambiguation operator-precedence
// parsers rely on) instead of failing, and a human-readable warning is
// appended to the returned slice rather than raised as an error. A
// reduce/reduce conflict still keeps whichever reduction was recorded
// first and also warns. Default CLI behavior keeps allowAmbig false.
func BuildTolerant(g grammar.Grammar, allowAmbig bool) (*Table, []string, error) {
	coll := lr0.Build(g)

	t := &Table{
		g:          g,
		Collection: coll,
		action:     make([]map[grammar.Symbol]Action, coll.NumStates()),
		goTo:       make([]map[grammar.Symbol]int, coll.NumStates()),
	}

	for i := range t.action {
		t.action[i] = make(map[grammar.Symbol]Action)
		t.goTo[i] = make(map[grammar.Symbol]int)
	}

	var warnings []string

	for i, state := range coll.States {
		for _, it := range state.Items {
			sym, ok := lr0.SymbolAtDot(g, it)

			if ok && sym.IsTerminal() {
				j, _ := coll.Goto(i, sym)
				w, err := t.setAction(i, sym, Action{Kind: Shift, State: j}, allowAmbig)
				if err != nil {
					return nil, warnings, err
				}
				if w != "" {
					warnings = append(warnings, w)
				}
				continue
			}

			if ok && sym.IsNonTerminal() {
				j, _ := coll.Goto(i, sym)
				t.goTo[i][sym] = j
				continue
			}

			// cursor at end: reduce or accept
			if it.Prod == lr0.AugProd {
				w, err := t.setAction(i, grammar.End, Action{Kind: Accept}, allowAmbig)
				if err != nil {
					return nil, warnings, err
				}
				if w != "" {
					warnings = append(warnings, w)
				}
				continue
			}

			lhs := g.Production(it.Prod).LHS
			for _, f := range followOrdered(g, lhs) {
				w, err := t.setAction(i, f, Action{Kind: Reduce, Prod: it.Prod}, allowAmbig)
				if err != nil {
					return nil, warnings, err
				}
				if w != "" {
					warnings = append(warnings, w)
				}
			}
		}
	}

	return t, warnings, nil
}

// setAction writes act into cell (state, sym), raising cfgerr.NotSLR1 if
// that cell already holds a different action. Writing the identical action
// twice is idempotent and silent. When allowAmbig is true, conflicts are
// resolved instead of raised: shift/reduce resolves to the shift,
// reduce/reduce keeps the first reduction recorded; either case returns a
// non-empty warning describing the conflict it papered over.
func (t *Table) setAction(state int, sym grammar.Symbol, act Action, allowAmbig bool) (string, error) {
	existing, has := t.action[state][sym]
	if !has || existing.Equal(act) {
		t.action[state][sym] = act
		return "", nil
	}

	kind := "reduce/reduce"
	if existing.Kind != Reduce || act.Kind != Reduce {
		kind = "shift/reduce"
	}

	if !allowAmbig {
		return "", cfgerr.NotSLR1Conflict(kind, state, sym.String(), existing.render(t.g), act.render(t.g))
	}

	warning := fmt.Sprintf(
		"state %d, %q: %s conflict (%s vs %s), resolved in favor of %s",
		state, sym.String(), kind, existing.render(t.g), act.render(t.g), existing.render(t.g),
	)
	if kind == "shift/reduce" {
		// Favor the shift regardless of which action was recorded first.
		if act.Kind == Shift {
			t.action[state][sym] = act
			warning = fmt.Sprintf(
				"state %d, %q: shift/reduce conflict (%s vs %s), resolved in favor of %s",
				state, sym.String(), existing.render(t.g), act.render(t.g), act.render(t.g),
			)
		}
	}
	return warning, nil
}

// String renders the full action/goto grid as a fixed-width table, state 0
// first and every other state in ascending order, one column per terminal
// (plus "$") and one per non-terminal.
func (t *Table) String() string {
	terms := t.g.Terminals()
	sort.Slice(terms, func(i, j int) bool { return terms[i].String() < terms[j].String() })
	terms = append(terms, grammar.End)

	nonTerms := t.g.NonTerminals()
	sort.Slice(nonTerms, func(i, j int) bool { return nonTerms[i].String() < nonTerms[j].String() })

	headers := []string{"S", "|"}
	for _, term := range terms {
		headers = append(headers, "A:"+term.String())
	}
	headers = append(headers, "|")
	for _, nt := range nonTerms {
		headers = append(headers, "G:"+nt.String())
	}

	data := [][]string{headers}

	for i := 0; i < t.Collection.NumStates(); i++ {
		row := []string{fmt.Sprintf("%d", i), "|"}

		for _, term := range terms {
			act := t.Action(i, term)
			cell := ""
			switch act.Kind {
			case Accept:
				cell = "acc"
			case Shift:
				cell = fmt.Sprintf("s%d", act.State)
			case Reduce:
				cell = fmt.Sprintf("r%s", t.g.Production(act.Prod).String())
			}
			row = append(row, cell)
		}

		row = append(row, "|")

		for _, nt := range nonTerms {
			cell := ""
			if j, ok := t.Goto(i, nt); ok {
				cell = fmt.Sprintf("%d", j)
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

// followOrdered returns Follow(nt) sorted by symbol text, so that reduce
// actions are assigned to action-table cells in a deterministic order
// (useful for reproducible conflict-error reporting; the resulting table
// itself does not depend on this order).
func followOrdered(g grammar.Grammar, nt grammar.Symbol) []grammar.Symbol {
	set := g.Follow(nt)
	syms := set.Elements()
	sort.Slice(syms, func(i, j int) bool { return syms[i].String() < syms[j].String() })
	return syms
}
