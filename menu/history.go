// SPDX-License-Identifier: MIT

package menu

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// DefaultHistoryLimit is the number of checkpoints a History keeps unless WithLimit says otherwise.
const DefaultHistoryLimit = 32

// History records checkpoints of one menu and rolls it back on demand.
// Like Menu, it is not safe for concurrent use.
type History[T any] struct {
	target  *Menu[T]
	limit   int
	entries []*Memento[T]
}

// HistoryOption configures a History.
type HistoryOption func(*historyOptions)

type historyOptions struct {
	limit int
}

// WithLimit caps the number of retained checkpoints; the oldest are dropped first.
// Non-positive values keep DefaultHistoryLimit.
func WithLimit(n int) HistoryOption {
	return func(o *historyOptions) {
		if n > 0 {
			o.limit = n
		}
	}
}

// NewHistory creates an empty History for m. m must not be nil.
func NewHistory[T any](m *Menu[T], opts ...HistoryOption) *History[T] {
	o := historyOptions{limit: DefaultHistoryLimit}
	for _, fn := range opts {
		fn(&o)
	}

	return &History[T]{target: m, limit: o.limit}
}

// Checkpoint captures the menu's current children and returns the checkpoint ID.
func (h *History[T]) Checkpoint() uuid.UUID {
	s := h.target.CreateMemento()
	h.entries = append(h.entries, s)
	if over := len(h.entries) - h.limit; over > 0 {
		clear(h.entries[:over])
		h.entries = h.entries[over:]
	}

	return s.ID()
}

// Undo restores the most recent checkpoint and discards it.
func (h *History[T]) Undo() error {
	if len(h.entries) == 0 {
		return ErrNoCheckpoint
	}

	last := len(h.entries) - 1
	if err := h.target.Restore(h.entries[last]); err != nil {
		return fmt.Errorf("menu: undo: %w", err)
	}
	h.entries[last] = nil
	h.entries = h.entries[:last]

	return nil
}

// RestoreID restores the checkpoint with the given ID. Checkpoints are kept,
// so the same ID can be restored again.
func (h *History[T]) RestoreID(id uuid.UUID) error {
	idx := slices.IndexFunc(h.entries, func(s *Memento[T]) bool { return s.ID() == id })
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrCheckpointNotFound, id)
	}

	return h.target.Restore(h.entries[idx])
}

// Len returns the number of retained checkpoints.
func (h *History[T]) Len() int { return len(h.entries) }

// IDs returns the retained checkpoint IDs, oldest first.
func (h *History[T]) IDs() []uuid.UUID {
	return lo.Map(h.entries, func(s *Memento[T], _ int) uuid.UUID { return s.ID() })
}
