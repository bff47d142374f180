// SPDX-License-Identifier: MIT
//
// File: memento.go
// Role: Point-in-time snapshots of a menu's children and their restoration.
// Policy:
//   - A Memento owns detached deep copies; it never holds a live node.
//   - Restore installs fresh copies, so one Memento can be restored any number of times.

package menu

import (
	"iter"
	"time"

	"github.com/google/uuid"
)

// Memento is an immutable snapshot of a menu's children.
// The zero value is invalid; obtain one from Menu.CreateMemento.
type Memento[T any] struct {
	id        uuid.UUID
	route     string
	createdAt time.Time
	glyphs    Glyphs
	children  []Node[T]
}

// ID returns the snapshot's identifier (UUIDv7, time-ordered).
func (s *Memento[T]) ID() uuid.UUID { return s.id }

// Route returns the route of the menu the snapshot was taken from.
func (s *Memento[T]) Route() string { return s.route }

// CreatedAt returns the capture time.
func (s *Memento[T]) CreatedAt() time.Time { return s.createdAt }

// Len returns the number of top-level children captured.
func (s *Memento[T]) Len() int { return len(s.children) }

// Lines renders the snapshot as a root menu labelled Route().
func (s *Memento[T]) Lines() iter.Seq[string] {
	view := &Menu[T]{route: s.route, children: s.children, opts: Options{Glyphs: s.glyphs}}

	return view.Lines("")
}

// CreateMemento captures a deep copy of m's current children. Later changes to
// m are not visible through the memento and vice versa.
//
// Complexity: O(n) over the subtree.
func (m *Menu[T]) CreateMemento() *Memento[T] {
	log := m.logger()
	snap := make([]Node[T], 0, len(m.children))
	for _, c := range m.children {
		snap = append(snap, cloneNode(c, log))
	}

	s := &Memento[T]{
		id:        newSnapshotID(),
		route:     m.route,
		createdAt: time.Now(),
		glyphs:    m.top().opts.Glyphs,
		children:  snap,
	}
	log.Debug("menu: memento created", "route", m.route, "memento", s.id, "children", len(snap))

	return s
}

// Restore replaces all of m's children with copies of those captured in s,
// re-parenting the top-level copies to m. Children added after the capture are
// discarded; the displaced children become roots. Restoring the same memento
// repeatedly yields the same tree.
//
// Errors:
//   - ErrInvalidMemento if s is nil or was not produced by CreateMemento.
//
// Complexity: O(n) over the snapshot.
func (m *Menu[T]) Restore(s *Memento[T]) error {
	if s == nil || s.id == uuid.Nil {
		return ErrInvalidMemento
	}

	log := m.logger()
	restored := make([]Node[T], 0, len(s.children))
	for _, c := range s.children {
		cp := cloneNode(c, log)
		cp.setParent(m)
		restored = append(restored, cp)
	}
	for _, c := range m.children {
		c.setParent(nil)
	}
	m.children = restored
	log.Info("menu: restored", "route", m.route, "memento", s.id, "children", len(restored))

	return nil
}

// newSnapshotID returns a UUIDv7, falling back to a random UUIDv4.
func newSnapshotID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return id
}
