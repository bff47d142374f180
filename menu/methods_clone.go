// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copies of items, menus and payloads.
// Policy:
//   - A copy shares no node, slice backing array or payload state with its source.
//   - Payloads implementing Cloner[T] copy themselves; anything else goes through
//     copier with DeepCopy. Values copier rejects are shared and reported at Warn.

package menu

import (
	"fmt"
	"reflect"

	"github.com/jinzhu/copier"
)

// DeepCopy returns an independent clone of the subtree rooted at m.
// The clone is a root; its internal parent links mirror the source subtree and
// it carries m's options.
//
// Complexity: O(n) over the subtree.
func (m *Menu[T]) DeepCopy() *Menu[T] {
	return m.deepCopy(m.logger())
}

func (m *Menu[T]) deepCopy(log Logger) *Menu[T] {
	cp := &Menu[T]{route: m.route, opts: m.opts, children: make([]Node[T], 0, len(m.children))}
	for _, c := range m.children {
		cc := cloneNode(c, log)
		cc.setParent(cp)
		cp.children = append(cp.children, cc)
	}

	return cp
}

// Copy returns a detached copy of i with a deep-copied payload.
func (i *Item[T]) Copy() *Item[T] {
	var log Logger = nopLogger{}
	if i.parent != nil {
		log = i.parent.logger()
	}

	return i.copyWith(log)
}

func (i *Item[T]) copyWith(log Logger) *Item[T] {
	return &Item[T]{data: clonePayload(i.data, log), route: i.route}
}

// cloneNode deep-copies n into a parentless node.
func cloneNode[T any](n Node[T], log Logger) Node[T] {
	switch n := n.(type) {
	case *Item[T]:
		return n.copyWith(log)
	case *Menu[T]:
		return n.deepCopy(log)
	default:
		panic(fmt.Sprintf("menu: unexpected node type %T", n))
	}
}

// clonePayload returns a deep copy of v.
func clonePayload[T any](v T, log Logger) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}

	src := reflect.ValueOf(any(v))
	if !src.IsValid() || (src.Kind() == reflect.Pointer && src.IsNil()) {
		return v
	}

	// dst points at a fresh value of the payload's dynamic type.
	ptr := src.Kind() == reflect.Pointer
	var dst reflect.Value
	if ptr {
		dst = reflect.New(src.Type().Elem())
	} else {
		dst = reflect.New(src.Type())
	}
	if err := copier.CopyWithOption(dst.Interface(), src.Interface(), copier.Option{DeepCopy: true}); err != nil {
		log.Warn("menu: payload not deep-copied, sharing value", "type", src.Type().String(), "error", err)
		return v
	}

	if ptr {
		return dst.Interface().(T)
	}

	return dst.Elem().Interface().(T)
}
