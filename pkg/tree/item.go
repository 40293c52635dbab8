// Package tree renders arbitrarily nested note structures.
package tree

import (
	ltree "github.com/charmbracelet/lipgloss/tree"
)

// Item is a single node in a note tree: anything with a display label and an
// ordered list of children. Leaves return no children.
type Item interface {
	Label() string
	Children() []Item
}

// Render draws the whole tree rooted at item, one label per node with
// children indented beneath it. The structure is a strict tree (children are
// owned values, never back references), so recursion cannot cycle.
func Render(item Item) string {
	return build(item).String()
}

func build(item Item) *ltree.Tree {
	t := ltree.Root(item.Label())
	for _, child := range item.Children() {
		t.Child(build(child))
	}
	return t
}
