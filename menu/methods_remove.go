// SPDX-License-Identifier: MIT
//
// File: methods_remove.go
// Role: Predicate-driven removal over a whole subtree.
// Policy:
//   - Only items are removed by payload predicates; menus are always descended into.
//   - Removed nodes keep their parent link; they are unreachable from the tree.

package menu

// RemoveItem removes every item in the subtree whose payload satisfies pred and
// reports whether at least one was removed. The scan never stops early, so
// matches at different depths all go in one call. Survivors keep their order.
//
// Complexity: O(n) over the subtree.
func (m *Menu[T]) RemoveItem(pred func(T) bool) bool {
	return m.RemoveItemCount(pred) > 0
}

// RemoveItemCount is RemoveItem returning the number of removed items.
func (m *Menu[T]) RemoveItemCount(pred func(T) bool) int {
	n := m.removeItems(pred)
	if n > 0 {
		m.logger().Debug("menu: removed items", "route", m.route, "count", n)
	}

	return n
}

func (m *Menu[T]) removeItems(pred func(T) bool) int {
	removed := 0
	kept := m.children[:0]
	for _, c := range m.children {
		switch c := c.(type) {
		case *Item[T]:
			if pred(c.data) {
				removed++
				continue
			}
		case *Menu[T]:
			removed += c.removeItems(pred)
		}
		kept = append(kept, c)
	}
	clear(m.children[len(kept):])
	m.children = kept

	return removed
}

// Prune removes, bottom-up, every submenu of m left without children and
// returns how many were removed. m itself is never removed; pruned submenus
// become roots.
func (m *Menu[T]) Prune() int {
	pruned := 0
	kept := m.children[:0]
	for _, c := range m.children {
		if sub, ok := c.(*Menu[T]); ok {
			pruned += sub.Prune()
			if len(sub.children) == 0 {
				sub.parent = nil
				pruned++
				continue
			}
		}
		kept = append(kept, c)
	}
	clear(m.children[len(kept):])
	m.children = kept

	return pruned
}
