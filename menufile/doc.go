// SPDX-License-Identifier: MIT

// Package menufile converts menu trees to and from declarative documents in
// JSON, YAML or TOML.
//
// A document is a tree of Entry values. Every entry is either a menu (kind
// "menu", optional children) or an item (kind "item", required data). The kind
// may be omitted: an entry with data is an item, anything else is a menu.
//
//	route: Main Menu
//	children:
//	  - route: homeroute
//	    data: Home
//	  - data: About
//	  - route: Products
//	    children:
//	      - data: Product A
//
// Decoding builds the tree in memory; nothing is ever written to disk.
//
// Errors:
//
//   - ErrUnknownFormat  format name or file extension not recognised.
//   - ErrBadEntry       malformed entry (unknown kind, item without data,
//     item with children, menu with data, root that is not a menu).
package menufile
