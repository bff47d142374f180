// SPDX-License-Identifier: MIT
//
// File: methods_render.go
// Role: Lazy box-drawing rendering of a subtree.
// Format:
//   - Item line: "{prefix}{route}: {data}" with data formatted by %v.
//   - Menu line: "{prefix}{route}", followed by its children.
//   - Last child gets Glyphs.Elbow, others Glyphs.Tee; grandchildren are indented
//     with Glyphs.Blank below a last child and Glyphs.Pipe otherwise.

package menu

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Lines lazily renders the subtree rooted at m, one line per node.
// A root menu ignores indent and starts flush left; a nested menu uses indent
// as both its own prefix and the base indentation of its children, so a subtree
// can be rendered under a caller-chosen margin. The sequence is restartable and
// reflects the tree at iteration time.
func (m *Menu[T]) Lines(indent string) iter.Seq[string] {
	return func(yield func(string) bool) {
		prefix := indent
		if m.parent == nil {
			prefix, indent = "", ""
		}
		m.lines(prefix, indent, m.top().opts.Glyphs, yield)
	}
}

func (m *Menu[T]) lines(prefix, indent string, g Glyphs, yield func(string) bool) bool {
	if !yield(prefix + m.route) {
		return false
	}

	last := len(m.children) - 1
	for idx, c := range m.children {
		connector, next := g.Tee, g.Pipe
		if idx == last {
			connector, next = g.Elbow, g.Blank
		}
		switch c := c.(type) {
		case *Item[T]:
			if !yield(c.line(indent + connector)) {
				return false
			}
		case *Menu[T]:
			if !c.lines(indent+connector, indent+next, g, yield) {
				return false
			}
		}
	}

	return true
}

// Lines renders i as a single line prefixed by indent.
func (i *Item[T]) Lines(indent string) iter.Seq[string] {
	return func(yield func(string) bool) {
		yield(i.line(indent))
	}
}

// Render writes the rendering of m to w, one line per node, each terminated by '\n'.
func (m *Menu[T]) Render(w io.Writer) error {
	for line := range m.Lines("") {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			m.logger().Error("menu: render failed", "route", m.route, "error", err)
			return fmt.Errorf("menu: render %q: %w", m.route, err)
		}
	}

	return nil
}

// String returns the rendering of m as produced by Render.
func (m *Menu[T]) String() string {
	var sb strings.Builder
	_ = m.Render(&sb) // strings.Builder never fails

	return sb.String()
}
