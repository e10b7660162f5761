package main

import (
	"github.com/pterm/pterm"

	"github.com/dekarrin/cfgtoolkit/tree"
)

// leveledListFrom flattens a parse tree into the level/text pairs
// pterm.NewTreeFromLeveledList expects.
func leveledListFrom(n *tree.Node, ll pterm.LeveledList, level int) pterm.LeveledList {
	text := n.Symbol.String()
	if n.Terminal {
		text = "TERM " + text
	}
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: text})
	for _, child := range n.Children {
		ll = leveledListFrom(child, ll, level+1)
	}
	return ll
}

// renderTree prints n as a colored tree via pterm.DefaultTree.
func renderTree(n *tree.Node) {
	ll := leveledListFrom(n, pterm.LeveledList{}, 0)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}
