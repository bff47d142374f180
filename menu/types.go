// SPDX-License-Identifier: MIT

// Package menu declares Node, Item, Menu, Options, Option, Glyphs and the
// sentinel errors used across the package.
package menu

import (
	"errors"
	"iter"
)

// Default route labels used when none is supplied.
const (
	DefaultItemRoute = "<Item>"
	DefaultMenuRoute = "<Menu>"
)

// Sentinel errors for menu operations.
var (
	// ErrNilMenu indicates a nil *Menu was passed to AddMenu.
	ErrNilMenu = errors.New("menu: menu is nil")

	// ErrCycle indicates AddMenu would attach a menu under itself or one of its descendants.
	ErrCycle = errors.New("menu: attaching would create a cycle")

	// ErrAlreadyAttached indicates AddMenu received a menu that already has a parent
	// while the receiver uses AttachReject.
	ErrAlreadyAttached = errors.New("menu: menu already has a parent")

	// ErrInvalidMemento indicates Restore received a nil memento or one not produced by CreateMemento.
	ErrInvalidMemento = errors.New("menu: invalid memento")

	// ErrNoCheckpoint indicates History.Undo was called with no recorded checkpoint.
	ErrNoCheckpoint = errors.New("menu: no checkpoint to restore")

	// ErrCheckpointNotFound indicates History.RestoreID received an unknown checkpoint ID.
	ErrCheckpointNotFound = errors.New("menu: checkpoint not found")
)

// Node is a member of a menu tree: either an *Item[T] or a *Menu[T].
// The set of implementations is closed; callers switch on the concrete type.
type Node[T any] interface {
	// Route returns the node's label.
	Route() string

	// Parent returns the enclosing menu, or nil for a root.
	Parent() *Menu[T]

	// Root follows parent links up to the node that has none.
	Root() Node[T]

	// Depth returns the number of parent links between the node and its root.
	Depth() int

	// Path returns the routes from the root down to and including the node.
	Path() []string

	// Find returns the first node in pre-order, starting with the receiver,
	// for which pred holds, or nil.
	Find(pred func(Node[T]) bool) Node[T]

	// Lines lazily renders the subtree rooted at the node, one line per node.
	Lines(indent string) iter.Seq[string]

	setParent(p *Menu[T])
	sealed()
}

// Cloner is implemented by payload types that know how to deep-copy themselves.
// DeepCopy, CreateMemento and Restore prefer it over reflection-based copying.
type Cloner[T any] interface {
	Clone() T
}

// Item is a terminal node holding a payload.
type Item[T any] struct {
	data   T
	route  string
	parent *Menu[T]
}

// Menu is a composite node owning an ordered sequence of children.
// Children keep insertion order; nothing is ever sorted.
type Menu[T any] struct {
	route    string
	parent   *Menu[T]
	children []Node[T]
	opts     Options
}

// AttachPolicy decides what AddMenu does with a menu that already has a parent.
type AttachPolicy int

const (
	// AttachMove detaches the menu from its current parent before attaching it.
	AttachMove AttachPolicy = iota

	// AttachReject refuses the attach with ErrAlreadyAttached.
	AttachReject
)

// String implements fmt.Stringer.
func (p AttachPolicy) String() string {
	switch p {
	case AttachMove:
		return "move"
	case AttachReject:
		return "reject"
	default:
		return "unknown"
	}
}

// Glyphs are the connector strings used by rendering.
// Tee prefixes every child but the last, Elbow prefixes the last child;
// Pipe and Blank extend the indentation below a non-last and a last child.
type Glyphs struct {
	Tee   string
	Elbow string
	Pipe  string
	Blank string
}

// UnicodeGlyphs draws with box-drawing characters. It is the default.
var UnicodeGlyphs = Glyphs{Tee: "├─ ", Elbow: "└─ ", Pipe: "│  ", Blank: "   "}

// ASCIIGlyphs draws with plain ASCII for terminals without box-drawing support.
var ASCIIGlyphs = Glyphs{Tee: "|- ", Elbow: "`- ", Pipe: "|  ", Blank: "   "}

// Options holds the configuration of a Menu.
type Options struct {
	// Route is the menu's label; empty means DefaultMenuRoute.
	Route string

	// Glyphs selects the connectors used by Lines, Render and String.
	Glyphs Glyphs

	// Policy governs AddMenu on an already-parented menu.
	Policy AttachPolicy

	// Logger receives structural events. Never nil after DefaultOptions.
	Logger Logger
}

// Option configures a Menu at construction time.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - Route DefaultMenuRoute
//   - UnicodeGlyphs
//   - AttachMove
//   - a Logger that discards everything
func DefaultOptions() Options {
	return Options{
		Route:  DefaultMenuRoute,
		Glyphs: UnicodeGlyphs,
		Policy: AttachMove,
		Logger: nopLogger{},
	}
}

// WithRoute sets the menu's label. An empty route keeps the default.
func WithRoute(route string) Option {
	return func(o *Options) {
		if route != "" {
			o.Route = route
		}
	}
}

// WithGlyphs sets the rendering connectors.
func WithGlyphs(g Glyphs) Option {
	return func(o *Options) { o.Glyphs = g }
}

// WithAttachPolicy sets how AddMenu treats menus that already have a parent.
func WithAttachPolicy(p AttachPolicy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithLogger installs a Logger. Passing nil has no effect.
func WithLogger(l Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
