// SPDX-License-Identifier: MIT
//
// File: methods_attach.go
// Role: Structural mutation: attaching items and menus, detaching nodes.
// Invariant:
//   - The parent link and the parent's children entry are written in the same call;
//     no caller ever observes one without the other.

package menu

import (
	"fmt"
	"slices"
)

// Add appends an item carrying data under DefaultItemRoute and returns it.
//
// Complexity: O(1) amortized.
func (m *Menu[T]) Add(data T) *Item[T] {
	return m.AddWithRoute(DefaultItemRoute, data)
}

// AddWithRoute appends an item carrying data under route and returns it.
// An empty route falls back to DefaultItemRoute.
//
// Complexity: O(1) amortized.
func (m *Menu[T]) AddWithRoute(route string, data T) *Item[T] {
	it := &Item[T]{data: data, route: routeOr(route, DefaultItemRoute), parent: m}
	m.children = append(m.children, it)

	return it
}

// NewMenu creates a submenu labelled route, appends it to m and returns it.
// The submenu inherits m's options; an empty route falls back to DefaultMenuRoute.
func (m *Menu[T]) NewMenu(route string) *Menu[T] {
	sub := &Menu[T]{route: routeOr(route, DefaultMenuRoute), parent: m, opts: m.opts}
	sub.opts.Route = sub.route
	m.children = append(m.children, sub)

	return sub
}

// AddMenu re-parents child to m and appends it. The child's own subtree is
// untouched; only its parent link changes.
//
// Behavior:
//   - nil child: ErrNilMenu.
//   - child is m or an ancestor of m: ErrCycle.
//   - child already has a parent: under AttachMove (default) it is removed from
//     that parent first; under AttachReject ErrAlreadyAttached is returned.
//   - child's parent link is stale (the parent no longer holds it): the link is
//     ignored and child is attached as a root.
//
// Complexity: O(depth(m)) for the cycle check plus O(k) to detach from a parent with k children.
func (m *Menu[T]) AddMenu(child *Menu[T]) error {
	if child == nil {
		return ErrNilMenu
	}
	for a := m; a != nil; a = a.parent {
		if a == child {
			return fmt.Errorf("%w: %q under %q", ErrCycle, child.route, m.route)
		}
	}

	if old := child.parent; old != nil && old.holds(child) {
		if m.opts.Policy == AttachReject {
			return fmt.Errorf("%w: %q is a child of %q", ErrAlreadyAttached, child.route, old.route)
		}
		if old.removeChild(child) {
			m.logger().Debug("menu: moved submenu", "route", child.route, "from", old.route, "to", m.route)
		}
	}

	child.parent = m
	m.children = append(m.children, child)

	return nil
}

// RemoveChild removes n from m's direct children and clears its parent link.
// It reports whether n was a direct child of m.
//
// Complexity: O(k) for k direct children.
func (m *Menu[T]) RemoveChild(n Node[T]) bool {
	if n == nil || !m.removeChild(n) {
		return false
	}
	n.setParent(nil)

	return true
}

// Detach removes m from its parent and makes it a root. No-op for a root.
// A stale parent link left by RemoveItem is cleared as well.
func (m *Menu[T]) Detach() {
	if m.parent != nil {
		m.parent.removeChild(m)
		m.parent = nil
	}
}

// Detach removes i from its parent. No-op for a detached item.
// A stale parent link left by RemoveItem is cleared as well.
func (i *Item[T]) Detach() {
	if i.parent != nil {
		i.parent.removeChild(i)
		i.parent = nil
	}
}

// holds reports whether n is a direct child of m.
func (m *Menu[T]) holds(n Node[T]) bool {
	return slices.Contains(m.children, n)
}

// removeChild excises n by identity, keeping the order of the survivors.
func (m *Menu[T]) removeChild(n Node[T]) bool {
	for idx, c := range m.children {
		if c == n {
			m.children = slices.Delete(m.children, idx, idx+1)

			return true
		}
	}

	return false
}
