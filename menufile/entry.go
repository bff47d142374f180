// SPDX-License-Identifier: MIT

package menufile

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/menutree/menu"
)

var (
	// ErrUnknownFormat indicates an unsupported document format.
	ErrUnknownFormat = errors.New("menufile: unknown format")

	// ErrBadEntry indicates a document entry that cannot become a menu node.
	ErrBadEntry = errors.New("menufile: bad entry")
)

// Kind tells menu entries from item entries.
type Kind string

const (
	KindMenu Kind = "menu"
	KindItem Kind = "item"
)

// Entry is the document form of a menu node.
type Entry[T any] struct {
	Kind     Kind       `json:"kind,omitempty" yaml:"kind,omitempty" toml:"kind,omitempty"`
	Route    string     `json:"route,omitempty" yaml:"route,omitempty" toml:"route,omitempty"`
	Data     *T         `json:"data,omitempty" yaml:"data,omitempty" toml:"data,omitempty"`
	Children []Entry[T] `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// resolve returns the entry's kind, inferring it when empty.
func (e Entry[T]) resolve() (Kind, error) {
	switch e.Kind {
	case KindMenu, KindItem:
		return e.Kind, nil
	case "":
		if e.Data != nil {
			return KindItem, nil
		}
		return KindMenu, nil
	default:
		return "", fmt.Errorf("%w: unknown kind %q", ErrBadEntry, e.Kind)
	}
}

// FromMenu converts the subtree rooted at m into an Entry. Routes are always
// written out, defaults included, so ToMenu reproduces the same rendering.
func FromMenu[T any](m *menu.Menu[T]) Entry[T] {
	e := Entry[T]{Kind: KindMenu, Route: m.Route()}
	for _, c := range m.Children() {
		switch c := c.(type) {
		case *menu.Item[T]:
			data := c.Data()
			e.Children = append(e.Children, Entry[T]{Kind: KindItem, Route: c.Route(), Data: &data})
		case *menu.Menu[T]:
			e.Children = append(e.Children, FromMenu(c))
		}
	}

	return e
}

// ToMenu builds a root menu from e. opts configure the root and, through
// NewMenu, every submenu; the document's root route overrides WithRoute.
func ToMenu[T any](e Entry[T], opts ...menu.Option) (*menu.Menu[T], error) {
	kind, err := e.resolve()
	if err != nil {
		return nil, err
	}
	if kind != KindMenu {
		return nil, fmt.Errorf("%w: root must be a menu", ErrBadEntry)
	}
	if e.Data != nil {
		return nil, fmt.Errorf("%w: root menu with data", ErrBadEntry)
	}

	root := menu.New[T](append(slices.Clip(opts), menu.WithRoute(e.Route))...)
	if err = build(root, e, e.Route); err != nil {
		return nil, err
	}

	return root, nil
}

func build[T any](dst *menu.Menu[T], e Entry[T], path string) error {
	for i, c := range e.Children {
		where := fmt.Sprintf("%s/%d", path, i)
		kind, err := c.resolve()
		if err != nil {
			return fmt.Errorf("%s: %w", where, err)
		}

		switch kind {
		case KindItem:
			if c.Data == nil {
				return fmt.Errorf("%w: %s: item without data", ErrBadEntry, where)
			}
			if len(c.Children) > 0 {
				return fmt.Errorf("%w: %s: item with children", ErrBadEntry, where)
			}
			dst.AddWithRoute(c.Route, *c.Data)
		case KindMenu:
			if c.Data != nil {
				return fmt.Errorf("%w: %s: menu with data", ErrBadEntry, where)
			}
			if err = build(dst.NewMenu(c.Route), c, where); err != nil {
				return err
			}
		}
	}

	return nil
}
