// SPDX-License-Identifier: MIT

// Package menu provides a generic, in-memory composite tree of menus and items
// with predicate search, predicate removal, box-drawing rendering and
// point-in-time snapshots (mementos) that never alias live tree state.
//
// What:
//
//   - Item[T]: a terminal node carrying a payload of type T and a route label.
//   - Menu[T]: a composite node owning an ordered sequence of children
//     (items or further menus).
//   - Node[T]: the sealed interface both variants satisfy; traversals switch
//     on *Item[T] / *Menu[T].
//   - Memento[T]: a detached deep copy of a menu's children, later used by
//     Restore to overwrite the live children.
//   - History[T]: a bounded stack of mementos with Undo.
//   - Guarded[T]: a Menu behind a single sync.RWMutex for concurrent callers.
//
// Why:
//
//   - Navigation menus, settings trees, nested catalogs: anything edited in place
//     that needs checkpoint/rollback without hand-written copy code.
//
// Invariants:
//
//   - Every node with a parent p appears exactly once in p.Children().
//     Add, AddWithRoute, AddMenu, NewMenu, Restore and DeepCopy maintain this.
//   - The structure is acyclic: AddMenu rejects attaching a menu under itself
//     or one of its descendants with ErrCycle.
//   - Root() walks parent links and terminates in Depth() steps.
//   - Nothing reachable from a Memento is reachable from a live tree, before
//     or after Restore.
//
// Default routes:
//
//	DefaultItemRoute = "<Item>"
//	DefaultMenuRoute = "<Menu>"
//
// Rendering:
//
//	Main Menu
//	├─ homeroute: Home
//	├─ <Item>: About
//	└─ Products
//	   ├─ <Item>: Product A
//	   └─ Services
//	      └─ <Item>: Service A
//
// Complexity:
//
//   - Add/AddWithRoute: O(1) amortized.
//   - AddMenu: O(depth) cycle check, plus O(k) detach from a previous parent with k children.
//   - Find/Walk/RemoveItem/DeepCopy/CreateMemento/Restore/Render: O(n) over the subtree.
//   - Root/Depth/Path: O(depth).
//
// Errors:
//
//   - ErrNilMenu            AddMenu with a nil menu.
//   - ErrCycle              AddMenu would make a menu its own ancestor.
//   - ErrAlreadyAttached    AddMenu of a parented menu under AttachReject.
//   - ErrInvalidMemento     Restore with a nil or zero Memento.
//   - ErrNoCheckpoint       History.Undo with nothing recorded.
//   - ErrCheckpointNotFound History.RestoreID with an unknown ID.
//
// A Menu is not safe for concurrent use; wrap it in Guarded when it is shared.
package menu
