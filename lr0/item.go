// Package lr0 enumerates the LR(0) item sets of a grammar: closure, goto,
// and the canonical collection they produce. It is the shared foundation
// under the slr package's action/goto table construction.
package lr0

import (
	"fmt"

	"github.com/dekarrin/cfgtoolkit/grammar"
)

// AugProd is the sentinel production index standing for the augmented
// production S' -> S, disjoint from every real production index (which
// are always >= 0).
const AugProd = -1

// Item is an LR(0) item: a production index (or AugProd) paired with a
// cursor position. Two synthetic items, {AugProd, 0} and {AugProd, 1},
// represent the augmented production's "initial" and "accept" items.
type Item struct {
	Prod   int
	Cursor int
}

// AtAccept returns whether it is the augmented grammar's accept item
// (AugProd, 1).
func (it Item) AtAccept() bool {
	return it.Prod == AugProd && it.Cursor == 1
}

// SymbolAtDot returns the grammar symbol immediately after it's cursor, and
// whether one exists (false if the cursor is already at the end, i.e. it
// is a reduce or accept item).
func SymbolAtDot(g grammar.Grammar, it Item) (grammar.Symbol, bool) {
	if it.Prod == AugProd {
		if it.Cursor == 0 {
			return g.StartSymbol(), true
		}
		return grammar.Symbol{}, false
	}
	rhs := g.Production(it.Prod).RHS
	if it.Cursor < len(rhs) {
		return rhs[it.Cursor], true
	}
	return grammar.Symbol{}, false
}

// String renders it against g as "LHS -> alpha . beta".
func (it Item) String(g grammar.Grammar) string {
	if it.Prod == AugProd {
		if it.Cursor == 0 {
			return fmt.Sprintf("S' -> . %s", g.StartSymbol().String())
		}
		return fmt.Sprintf("S' -> %s .", g.StartSymbol().String())
	}

	p := g.Production(it.Prod)
	alpha, beta := "", ""
	for i, sym := range p.RHS {
		if i < it.Cursor {
			if alpha != "" {
				alpha += " "
			}
			alpha += sym.String()
		} else {
			if beta != "" {
				beta += " "
			}
			beta += sym.String()
		}
	}
	return fmt.Sprintf("%s -> %s . %s", p.LHS.String(), alpha, beta)
}
