// SPDX-License-Identifier: MIT
//
// File: methods_walk.go
// Role: Pre-order traversal and predicate search.
// Determinism:
//   - Order depends only on tree shape and insertion order of children.

package menu

import "iter"

// Walk visits m and its descendants in pre-order, passing each node and its
// depth relative to m. Returning false from fn stops the walk.
//
// Complexity: O(n) over the subtree.
func (m *Menu[T]) Walk(fn func(n Node[T], depth int) bool) {
	m.walk(fn, 0)
}

func (m *Menu[T]) walk(fn func(n Node[T], depth int) bool, depth int) bool {
	if !fn(m, depth) {
		return false
	}
	for _, c := range m.children {
		switch c := c.(type) {
		case *Item[T]:
			if !fn(c, depth+1) {
				return false
			}
		case *Menu[T]:
			if !c.walk(fn, depth+1) {
				return false
			}
		}
	}

	return true
}

// All returns a lazy pre-order iterator over (depth, node) pairs of the subtree,
// starting with m at depth 0.
func (m *Menu[T]) All() iter.Seq2[int, Node[T]] {
	return func(yield func(int, Node[T]) bool) {
		m.walk(func(n Node[T], depth int) bool { return yield(depth, n) }, 0)
	}
}

// Find returns the first node in pre-order, m first, for which pred holds.
// It returns nil when nothing matches.
func (m *Menu[T]) Find(pred func(Node[T]) bool) Node[T] {
	var found Node[T]
	m.walk(func(n Node[T], _ int) bool {
		if pred(n) {
			found = n
			return false
		}
		return true
	}, 0)

	return found
}

// Find returns i if pred holds for it, nil otherwise.
func (i *Item[T]) Find(pred func(Node[T]) bool) Node[T] {
	if pred(i) {
		return i
	}

	return nil
}

// FindItem returns the first item in pre-order whose payload satisfies pred, or nil.
func (m *Menu[T]) FindItem(pred func(T) bool) *Item[T] {
	n := m.Find(func(n Node[T]) bool {
		it, ok := n.(*Item[T])
		return ok && pred(it.data)
	})
	if n == nil {
		return nil
	}

	return n.(*Item[T])
}

// FindMenu returns the first menu in pre-order, m included, labelled route, or nil.
func (m *Menu[T]) FindMenu(route string) *Menu[T] {
	n := m.Find(func(n Node[T]) bool {
		sub, ok := n.(*Menu[T])
		return ok && sub.route == route
	})
	if n == nil {
		return nil
	}

	return n.(*Menu[T])
}

// Items returns every item of the subtree in pre-order.
func (m *Menu[T]) Items() []*Item[T] {
	var items []*Item[T]
	for _, n := range m.All() {
		if it, ok := n.(*Item[T]); ok {
			items = append(items, it)
		}
	}

	return items
}
