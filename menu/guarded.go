// SPDX-License-Identifier: MIT
//
// File: guarded.go
// Role: A Menu shared between goroutines behind a single sync.RWMutex.
// Concurrency:
//   - Mutations (Add, AddWithRoute, AddMenu, RemoveItem, Restore, Do) hold the write lock.
//   - Queries (FindItem, Len, String, CreateMemento, DeepCopy, View) hold the read lock.
//   - One lock covers the whole subtree: parent links and children slices change as a pair.

package menu

import (
	"fmt"
	"sync"
)

// Guarded wraps a Menu for concurrent callers. The wrapped menu must not be
// used directly while it is shared through Guarded.
type Guarded[T any] struct {
	mu   sync.RWMutex
	menu *Menu[T]
}

// NewGuarded wraps m. A nil m is replaced by New[T]().
func NewGuarded[T any](m *Menu[T]) *Guarded[T] {
	if m == nil {
		m = New[T]()
	}

	return &Guarded[T]{menu: m}
}

// Add appends an item under DefaultItemRoute.
func (g *Guarded[T]) Add(data T) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.menu.Add(data)
}

// AddWithRoute appends an item under route.
func (g *Guarded[T]) AddWithRoute(route string, data T) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.menu.AddWithRoute(route, data)
}

// AddMenu attaches child; see Menu.AddMenu. child must be a root or already
// belong to the guarded tree: a child held by another tree is refused with
// ErrAlreadyAttached, since that tree is not covered by g's lock.
func (g *Guarded[T]) AddMenu(child *Menu[T]) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if child != nil {
		if old := child.parent; old != nil && old.holds(child) && old.top() != g.menu.top() {
			return fmt.Errorf("%w: %q belongs to another tree", ErrAlreadyAttached, child.route)
		}
	}

	return g.menu.AddMenu(child)
}

// RemoveItem removes every matching item; see Menu.RemoveItem.
func (g *Guarded[T]) RemoveItem(pred func(T) bool) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.menu.RemoveItem(pred)
}

// Restore overwrites the children from s; see Menu.Restore.
func (g *Guarded[T]) Restore(s *Memento[T]) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.menu.Restore(s)
}

// Do runs fn with exclusive access to the menu, for compound mutations.
// fn must not retain m after returning.
func (g *Guarded[T]) Do(fn func(m *Menu[T])) {
	g.mu.Lock()
	defer g.mu.Unlock()

	fn(g.menu)
}

// View runs fn with shared access to the menu. fn must not mutate m.
func (g *Guarded[T]) View(fn func(m *Menu[T])) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	fn(g.menu)
}

// FindItem returns a detached copy of the first item whose payload satisfies pred, or nil.
func (g *Guarded[T]) FindItem(pred func(T) bool) *Item[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	it := g.menu.FindItem(pred)
	if it == nil {
		return nil
	}

	return it.Copy()
}

// Len returns the number of direct children.
func (g *Guarded[T]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.menu.Len()
}

// CreateMemento snapshots the children; see Menu.CreateMemento.
func (g *Guarded[T]) CreateMemento() *Memento[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.menu.CreateMemento()
}

// DeepCopy returns an independent clone of the whole menu.
func (g *Guarded[T]) DeepCopy() *Menu[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.menu.DeepCopy()
}

// String renders the menu.
func (g *Guarded[T]) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.menu.String()
}
