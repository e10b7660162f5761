package tree

import "strings"

// Leftmost returns the leftmost-derivation trace from n down to its
// terminal frontier: one sentential-form snapshot before any expansion,
// then one more snapshot after each step that expands the leftmost
// remaining non-terminal node into its already-built children. The final
// snapshot is the all-terminal sentence n unparses to.
func (n *Node) Leftmost() []string {
	return n.derive(true)
}

// Rightmost returns the same trace as Leftmost, but expanding the
// rightmost remaining non-terminal node at each step instead of the
// leftmost one.
func (n *Node) Rightmost() []string {
	return n.derive(false)
}

// derive walks an explicit frontier (a slice standing in for a derivation
// stack), repeatedly picking the next non-terminal to expand according
// to leftToRight, and emitting the sentential form at each step.
func (n *Node) derive(leftToRight bool) []string {
	frontier := []*Node{n}
	snapshots := []string{renderFrontier(frontier)}

	for {
		idx := nextToExpand(frontier, leftToRight)
		if idx < 0 {
			break
		}

		node := frontier[idx]
		next := make([]*Node, 0, len(frontier)-1+len(node.Children))
		next = append(next, frontier[:idx]...)
		next = append(next, node.Children...)
		next = append(next, frontier[idx+1:]...)
		frontier = next

		snapshots = append(snapshots, renderFrontier(frontier))
	}

	return snapshots
}

func nextToExpand(frontier []*Node, leftToRight bool) int {
	if leftToRight {
		for i, node := range frontier {
			if !node.Terminal {
				return i
			}
		}
		return -1
	}
	for i := len(frontier) - 1; i >= 0; i-- {
		if !frontier[i].Terminal {
			return i
		}
	}
	return -1
}

func renderFrontier(frontier []*Node) string {
	var toks []string
	for _, node := range frontier {
		if node.Terminal && node.Symbol.IsEps() {
			continue
		}
		toks = append(toks, node.Symbol.String())
	}
	return strings.Join(toks, " ")
}
