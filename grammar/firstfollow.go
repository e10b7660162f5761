package grammar

import "github.com/dekarrin/cfgtoolkit/internal/setutil"

// computeFirst fills in g.first for every terminal and non-terminal by
// fixed-point iteration over all productions: First of a production's RHS
// sequence is the set of terminals that may begin some derivation of it,
// plus Eps if the whole sequence can derive the empty string.
func (g *Grammar) computeFirst() {
	g.first = make(map[Symbol]setutil.Set[Symbol])

	for _, t := range g.terminals {
		g.first[t] = setutil.Of(t)
	}
	for _, nt := range g.nonTerminals {
		g.first[nt] = setutil.New[Symbol]()
	}

	for {
		grew := false

		for _, p := range g.productions {
			seqFirst := g.firstOfSequenceUsing(p.RHS, g.first)
			cur := g.first[p.LHS]
			before := cur.Len()
			cur.AddAll(seqFirst)
			if cur.Len() != before {
				grew = true
			}
		}

		if !grew {
			break
		}
	}
}

// firstOfSequenceUsing computes First(Y1...Yn) against a (possibly still
// converging) table of per-symbol First sets: start with the empty set;
// for each Yi in turn, add First(Yi) minus Eps; stop unless Eps is in
// First(Yi); if the loop runs out, add Eps. An empty sequence yields {Eps}.
func (g *Grammar) firstOfSequenceUsing(seq []Symbol, first map[Symbol]setutil.Set[Symbol]) setutil.Set[Symbol] {
	result := setutil.New[Symbol]()

	if len(seq) == 0 {
		result.Add(Eps)
		return result
	}

	for _, sym := range seq {
		symFirst := first[sym]
		for e := range symFirst {
			if e != Eps {
				result.Add(e)
			}
		}
		if !symFirst.Has(Eps) {
			return result
		}
	}

	// every symbol in the sequence was nullable
	result.Add(Eps)
	return result
}

// First returns the First set of a single symbol: {X} if X is a terminal,
// or the computed First set if X is a non-terminal.
func (g Grammar) First(sym Symbol) setutil.Set[Symbol] {
	if set, ok := g.first[sym]; ok {
		return set.Copy()
	}
	return setutil.New[Symbol]()
}

// FirstOfSequence returns First(seq): see firstOfSequenceUsing.
func (g Grammar) FirstOfSequence(seq []Symbol) setutil.Set[Symbol] {
	return g.firstOfSequenceUsing(seq, g.first)
}

// computeFollow fills in g.follow for every non-terminal by fixed-point
// iteration: Follow(start) always contains End; for every production
// A -> alpha B beta with B a non-terminal, First(beta) minus Eps is added
// to Follow(B), and if beta is nullable (including empty), Follow(A) is
// added to Follow(B) as well.
func (g *Grammar) computeFollow() {
	g.follow = make(map[Symbol]setutil.Set[Symbol])
	for _, nt := range g.nonTerminals {
		g.follow[nt] = setutil.New[Symbol]()
	}
	g.follow[g.start].Add(End)

	for {
		grew := false

		for _, p := range g.productions {
			for i, sym := range p.RHS {
				if !sym.IsNonTerminal() {
					continue
				}

				beta := p.RHS[i+1:]
				betaFirst := g.firstOfSequenceUsing(beta, g.first)

				followB := g.follow[sym]
				before := followB.Len()

				for e := range betaFirst {
					if e != Eps {
						followB.Add(e)
					}
				}
				if betaFirst.Has(Eps) {
					followB.AddAll(g.follow[p.LHS])
				}

				if followB.Len() != before {
					grew = true
				}
			}
		}

		if !grew {
			break
		}
	}
}

// Follow returns the Follow set of non-terminal nt. It is empty for symbols
// that are not non-terminals of this grammar.
func (g Grammar) Follow(nt Symbol) setutil.Set[Symbol] {
	if set, ok := g.follow[nt]; ok {
		return set.Copy()
	}
	return setutil.New[Symbol]()
}
