// Package grammar parses context-free grammar rule text into an immutable
// Grammar: a stable, indexed list of Productions plus the terminal,
// non-terminal, First, and Follow sets implied by them. All derived sets
// are computed eagerly at construction time; nothing in this package
// mutates afterward.
//
// Grammar text is one rule per line, shaped "LHS -> ALT1 | ALT2 | ...".
// The LHS is a single token; each alternative is a whitespace-separated,
// possibly empty list of symbols, an empty alternative meaning epsilon.
// Blank lines and lines without "->" are malformed.
package grammar

import (
	"github.com/dekarrin/cfgtoolkit/internal/setutil"
)

// Grammar is an immutable context-free grammar: an ordered list of
// Productions together with its eagerly computed First and Follow sets.
//
// The start symbol is the LHS of production 0. Non-terminals are exactly
// the set of symbols that appear as some production's LHS; terminals are
// every other symbol appearing on some production's RHS.
type Grammar struct {
	productions []Production
	start       Symbol

	terminals    []Symbol
	nonTerminals []Symbol

	first  map[Symbol]setutil.Set[Symbol]
	follow map[Symbol]setutil.Set[Symbol]
}

// New parses ruleLines (one rule per line, see the package doc for the
// grammar text format) and builds a Grammar from them, computing First and
// Follow eagerly. The start symbol is the LHS of the first rule in source
// order.
func New(ruleLines []string) (Grammar, error) {
	rawRules, err := parseRuleLines(ruleLines)
	if err != nil {
		return Grammar{}, err
	}
	return fromRawRules(rawRules)
}

func fromRawRules(rawRules []rawRule) (Grammar, error) {
	nonTermNames := setutil.New[string]()
	for _, r := range rawRules {
		nonTermNames.Add(r.lhs)
	}

	g := Grammar{}
	termNames := setutil.New[string]()

	classify := func(tok string) Symbol {
		if nonTermNames.Has(tok) {
			return NonTerm(tok)
		}
		termNames.Add(tok)
		return Term(tok)
	}

	for i, r := range rawRules {
		lhs := NonTerm(r.lhs)
		if i == 0 {
			g.start = lhs
		}
		for _, alt := range r.alts {
			rhs := make([]Symbol, 0, len(alt))
			for _, tok := range alt {
				rhs = append(rhs, classify(tok))
			}
			g.productions = append(g.productions, Production{LHS: lhs, RHS: rhs})
		}
	}

	// Sorting here (rather than ranging the backing maps directly) keeps
	// symbol ordering deterministic across runs, which lr0 canonical
	// collection construction and table dumps both depend on for
	// reproducible output.
	for _, name := range setutil.SortedElements(nonTermNames, func(a, b string) bool { return a < b }) {
		g.nonTerminals = append(g.nonTerminals, NonTerm(name))
	}
	for _, name := range setutil.SortedElements(termNames, func(a, b string) bool { return a < b }) {
		g.terminals = append(g.terminals, Term(name))
	}

	g.computeFirst()
	g.computeFollow()

	return g, nil
}

// StartSymbol returns the grammar's start symbol: the LHS of production 0.
func (g Grammar) StartSymbol() Symbol {
	return g.start
}

// Productions returns the grammar's productions in stable, index-preserving
// order. The slice returned is owned by the caller; mutating it does not
// affect the Grammar.
func (g Grammar) Productions() []Production {
	out := make([]Production, len(g.productions))
	copy(out, g.productions)
	return out
}

// Production returns the production at index i. It panics if i is out of
// range; callers needing a bounds check should first compare against
// NumProductions.
func (g Grammar) Production(i int) Production {
	return g.productions[i]
}

// NumProductions returns the number of productions in the grammar.
func (g Grammar) NumProductions() int {
	return len(g.productions)
}

// Terminals returns every terminal symbol of the grammar, in unspecified
// order.
func (g Grammar) Terminals() []Symbol {
	out := make([]Symbol, len(g.terminals))
	copy(out, g.terminals)
	return out
}

// NonTerminals returns every non-terminal symbol of the grammar, in
// unspecified order.
func (g Grammar) NonTerminals() []Symbol {
	out := make([]Symbol, len(g.nonTerminals))
	copy(out, g.nonTerminals)
	return out
}

// ProductionsFor returns the indices of the productions whose LHS is nt, in
// source order.
func (g Grammar) ProductionsFor(nt Symbol) []int {
	var idxs []int
	for i, p := range g.productions {
		if p.LHS == nt {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

// Copy returns a deep-ish copy of g; since Grammar is immutable after
// construction this is mostly useful so that callers holding a Grammar by
// value can be confident a constructor they pass it to will not alias their
// derived sets.
func (g Grammar) Copy() Grammar {
	cp := Grammar{
		start: g.start,
	}
	cp.productions = append(cp.productions, g.productions...)
	cp.terminals = append(cp.terminals, g.terminals...)
	cp.nonTerminals = append(cp.nonTerminals, g.nonTerminals...)

	cp.first = make(map[Symbol]setutil.Set[Symbol], len(g.first))
	for k, v := range g.first {
		cp.first[k] = v.Copy()
	}
	cp.follow = make(map[Symbol]setutil.Set[Symbol], len(g.follow))
	for k, v := range g.follow {
		cp.follow[k] = v.Copy()
	}

	return cp
}
