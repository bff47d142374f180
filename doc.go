// Package menutree is a small library of restorable menu trees: ordered,
// parent-aware hierarchies of items and submenus that can be searched, pruned,
// drawn and rolled back to earlier snapshots.
//
// What is inside?
//
//	menu/     - Menu, Item and the Node interface; attach, find, remove,
//	            render, deep copy, Memento, History and Guarded
//	menufile/ - JSON, YAML and TOML documents to and from menu trees
//	treeview/ - vertical and horizontal drawings through shivamMg/ppds
//	examples/ - a runnable walk-through
//
// Quick example:
//
//	root := menu.New[string](menu.WithRoute("Main Menu"))
//	root.AddWithRoute("homeroute", "Home")
//	products := root.NewMenu("Products")
//	products.Add("Product A")
//
//	snap := root.CreateMemento()
//	root.RemoveItem(func(s string) bool { return s == "Product A" })
//	_ = root.Restore(snap)
//
//	fmt.Print(root)
//	// Main Menu
//	// ├─ homeroute: Home
//	// └─ Products
//	//    └─ <Item>: Product A
//
// Trees are single-owner values; wrap one in menu.Guarded to share it between
// goroutines.
//
//	go get github.com/katalvlaran/menutree
package menutree
