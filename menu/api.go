// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructor and read-only accessors for Menu and Item.
// Policy:
//   - No traversal or mutation here beyond walking parent links.
//   - Accessors never expose the live children slice.

package menu

import (
	"fmt"
	"slices"
)

// New creates a root Menu configured by opts, applied left to right on top of DefaultOptions.
//
// Complexity: O(len(opts)).
func New[T any](opts ...Option) *Menu[T] {
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	return &Menu[T]{route: o.Route, opts: o}
}

// Route returns the menu's label.
func (m *Menu[T]) Route() string { return m.route }

// Parent returns the enclosing menu, or nil if m is a root.
func (m *Menu[T]) Parent() *Menu[T] { return m.parent }

// IsRoot reports whether m has no parent.
func (m *Menu[T]) IsRoot() bool { return m.parent == nil }

// Options returns a copy of the menu's configuration.
func (m *Menu[T]) Options() Options { return m.opts }

// Len returns the number of direct children.
func (m *Menu[T]) Len() int { return len(m.children) }

// Children returns a copy of the direct children in insertion order.
// Mutating the returned slice does not affect m; the nodes themselves are live.
func (m *Menu[T]) Children() []Node[T] { return slices.Clone(m.children) }

// Root returns the outermost menu above m, or m itself.
//
// Complexity: O(depth).
func (m *Menu[T]) Root() Node[T] { return m.top() }

// Depth returns the number of parent links above m.
func (m *Menu[T]) Depth() int { return depthOf[T](m) }

// Path returns the routes from the root down to m.
func (m *Menu[T]) Path() []string { return pathOf[T](m) }

func (m *Menu[T]) setParent(p *Menu[T]) { m.parent = p }
func (m *Menu[T]) sealed()              {}

// Data returns the item's payload.
func (i *Item[T]) Data() T { return i.data }

// Route returns the item's label.
func (i *Item[T]) Route() string { return i.route }

// Parent returns the enclosing menu, or nil for a detached item.
func (i *Item[T]) Parent() *Menu[T] { return i.parent }

// Root returns the outermost menu above i, or i itself when it has no parent.
func (i *Item[T]) Root() Node[T] {
	if i.parent == nil {
		return i
	}

	return i.parent.top()
}

// Depth returns the number of parent links above i.
func (i *Item[T]) Depth() int { return depthOf[T](i) }

// Path returns the routes from the root down to i.
func (i *Item[T]) Path() []string { return pathOf[T](i) }

// String renders the item as "{route}: {data}".
func (i *Item[T]) String() string { return i.line("") }

func (i *Item[T]) line(prefix string) string {
	return fmt.Sprintf("%s%s: %v", prefix, i.route, i.data)
}

func (i *Item[T]) setParent(p *Menu[T]) { i.parent = p }
func (i *Item[T]) sealed()              {}

// depthOf counts parent links from n up to its root.
func depthOf[T any](n Node[T]) int {
	d := 0
	for p := n.Parent(); p != nil; p = p.parent {
		d++
	}

	return d
}

// pathOf collects routes from n's root down to n.
func pathOf[T any](n Node[T]) []string {
	routes := []string{n.Route()}
	for p := n.Parent(); p != nil; p = p.parent {
		routes = append(routes, p.route)
	}
	slices.Reverse(routes)

	return routes
}

// routeOr returns route, or fallback when route is empty.
func routeOr(route, fallback string) string {
	if route == "" {
		return fallback
	}

	return route
}
