package lr0

import (
	"sort"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/dekarrin/cfgtoolkit/grammar"
)

// State is a canonicalized LR(0) item set: its Items are always sorted by
// descending cursor position, then by ascending production index (a
// presentational convention, not a correctness requirement).
type State struct {
	Items []Item
}

func newState(items *hashset.Set) State {
	sorted := make([]Item, 0, items.Size())
	for _, v := range items.Values() {
		sorted = append(sorted, v.(Item))
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Cursor != sorted[j].Cursor {
			return sorted[i].Cursor > sorted[j].Cursor
		}
		return sorted[i].Prod < sorted[j].Prod
	})
	return State{Items: sorted}
}

// hashKey gives a content-addressed identity for s, used to recognize when
// Goto produces an item set already present in the canonical collection.
// Two States with the same Items (in the same canonical order) always hash
// identically, and the reference ordering above keeps that hash stable
// across runs.
func (s State) hashKey() string {
	h, err := structhash.Hash(s.Items, 1)
	if err != nil {
		// structhash.Hash only errors on unhashable input; Items is a plain
		// slice of two-int structs, so this cannot happen.
		panic("lr0: unhashable item set: " + err.Error())
	}
	return h
}

// Closure computes Closure(I) against g: the smallest item set containing I
// such that whenever (p, c) is in the set and the symbol after the cursor
// is a non-terminal B, every item (q, 0) for a production q of B is also in
// the set. It is computed by worklist over distinct items, using an
// emirpasic/gods hashset for membership and an arraystack for the worklist
// itself.
func Closure(g grammar.Grammar, items []Item) State {
	set := hashset.New()
	worklist := arraystack.New()
	for _, it := range items {
		if !set.Contains(it) {
			set.Add(it)
			worklist.Push(it)
		}
	}

	for !worklist.Empty() {
		v, _ := worklist.Pop()
		it := v.(Item)

		sym, ok := SymbolAtDot(g, it)
		if !ok || !sym.IsNonTerminal() {
			continue
		}

		for _, prodIdx := range g.ProductionsFor(sym) {
			newItem := Item{Prod: prodIdx, Cursor: 0}
			if !set.Contains(newItem) {
				set.Add(newItem)
				worklist.Push(newItem)
			}
		}
	}

	return newState(set)
}

// Goto computes Goto(I, X) against g: the closure of every item in I whose
// cursor can advance over X. An empty State (no Items) means there is no
// transition on X from I.
func Goto(g grammar.Grammar, state State, x grammar.Symbol) State {
	advanced := hashset.New()
	for _, it := range state.Items {
		sym, ok := SymbolAtDot(g, it)
		if ok && sym == x {
			advanced.Add(Item{Prod: it.Prod, Cursor: it.Cursor + 1})
		}
	}
	if advanced.Size() == 0 {
		return State{}
	}

	asItems := make([]Item, 0, advanced.Size())
	for _, v := range advanced.Values() {
		asItems = append(asItems, v.(Item))
	}
	return Closure(g, asItems)
}

// Collection is the canonical collection of LR(0) item sets of g, numbered
// by their position in the deterministic construction order.
type Collection struct {
	States []State

	byHash map[string]int
	goTo   []map[grammar.Symbol]int
}

// NumStates returns the number of states in the collection.
func (c *Collection) NumStates() int {
	return len(c.States)
}

// Goto returns the state index reached from state i on symbol x, and
// whether such a transition exists.
func (c *Collection) Goto(i int, x grammar.Symbol) (int, bool) {
	j, ok := c.goTo[i][x]
	return j, ok
}

// Build enumerates the canonical collection of LR(0) item sets of g:
// starting from Closure({(AugProd, 0)}), it repeatedly computes Goto(s, X)
// for every already-discovered state s and every grammar symbol X, adding
// any not-yet-seen result, until no new states appear. State 0 is always
// the initial state.
func Build(g grammar.Grammar) *Collection {
	c := &Collection{byHash: make(map[string]int)}

	symbols := allSymbols(g)

	start := Closure(g, []Item{{Prod: AugProd, Cursor: 0}})
	c.addState(start)

	for i := 0; i < len(c.States); i++ {
		trans := make(map[grammar.Symbol]int)
		for _, x := range symbols {
			next := Goto(g, c.States[i], x)
			if len(next.Items) == 0 {
				continue
			}
			j := c.addState(next)
			trans[x] = j
		}
		c.goTo = append(c.goTo, trans)
	}

	return c
}

// addState adds s to the collection if it is not already present (by
// content hash) and returns its index either way.
func (c *Collection) addState(s State) int {
	key := s.hashKey()
	if idx, ok := c.byHash[key]; ok {
		return idx
	}
	idx := len(c.States)
	c.States = append(c.States, s)
	c.byHash[key] = idx
	return idx
}

// allSymbols returns every terminal then every non-terminal of g, in the
// grammar's own (already-deterministic) order. The exact order only
// affects the order in which new states are discovered, not which states
// exist or what their Items are.
func allSymbols(g grammar.Grammar) []grammar.Symbol {
	syms := g.Terminals()
	syms = append(syms, g.NonTerminals()...)
	return syms
}
