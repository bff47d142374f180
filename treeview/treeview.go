// SPDX-License-Identifier: MIT

// Package treeview draws menu trees with github.com/shivamMg/ppds, as an
// alternative to the indented listing produced by menu.Menu.Render.
//
// Vertical puts the root on top with children spread below it; Horizontal puts
// the root on the left. Node labels match the lines of menu rendering:
// "{route}" for menus and "{route}: {data}" for items.
package treeview

import (
	"github.com/samber/lo"
	"github.com/shivamMg/ppds/tree"

	"github.com/katalvlaran/menutree/menu"
)

// node adapts a menu.Node to tree.Node.
type node[T any] struct {
	n menu.Node[T]
}

// Adapt wraps n so that ppds can walk it. The adapter reads the live tree on
// every call; it holds no copy.
func Adapt[T any](n menu.Node[T]) tree.Node {
	return node[T]{n: n}
}

// Data returns the node's label.
func (v node[T]) Data() interface{} {
	return Label(v.n)
}

// Children returns adapters for the node's children; items have none.
func (v node[T]) Children() []tree.Node {
	m, ok := v.n.(*menu.Menu[T])
	if !ok {
		return nil
	}

	return lo.Map(m.Children(), func(c menu.Node[T], _ int) tree.Node {
		return node[T]{n: c}
	})
}

// Label returns the single-line label of n without any connector prefix.
func Label[T any](n menu.Node[T]) string {
	switch n := n.(type) {
	case *menu.Item[T]:
		return n.String()
	default:
		return n.Route()
	}
}

// Vertical draws the subtree rooted at n top-down.
func Vertical[T any](n menu.Node[T]) string {
	return tree.Sprint(Adapt(n))
}

// Horizontal draws the subtree rooted at n left to right.
func Horizontal[T any](n menu.Node[T]) string {
	return tree.SprintHr(Adapt(n))
}

// HorizontalNoOverlap draws left to right, giving each node its own row.
func HorizontalNoOverlap[T any](n menu.Node[T]) string {
	return tree.SprintHrn(Adapt(n))
}
