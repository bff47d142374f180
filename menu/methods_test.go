// SPDX-License-Identifier: MIT
// Package menu_test verifies attach, search, traversal and removal contracts.

package menu_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/menutree/menu"
)

func TestNew_Defaults(t *testing.T) {
	m := menu.New[int]()
	assert.Equal(t, menu.DefaultMenuRoute, m.Route())
	assert.True(t, m.IsRoot())
	assert.Nil(t, m.Parent())
	assert.Zero(t, m.Len())
	assert.Equal(t, menu.UnicodeGlyphs, m.Options().Glyphs)
	assert.Equal(t, menu.AttachMove, m.Options().Policy)

	named := menu.New[int](menu.WithRoute(""), menu.WithRoute("Settings"), menu.WithLogger(nil))
	assert.Equal(t, "Settings", named.Route())
	assert.NotNil(t, named.Options().Logger)
}

func TestAdd_DefaultRoutesAndOrder(t *testing.T) {
	m := menu.New[string]()
	a := m.Add("a")
	b := m.AddWithRoute("", "b")
	c := m.AddWithRoute("custom", "c")

	assert.Equal(t, menu.DefaultItemRoute, a.Route())
	assert.Equal(t, menu.DefaultItemRoute, b.Route())
	assert.Equal(t, "custom", c.Route())
	assert.Equal(t, []string{"a", "b", "c"}, Payloads(m), "children keep insertion order")
	for _, it := range []*menu.Item[string]{a, b, c} {
		assert.Same(t, m, it.Parent())
	}
}

func TestNewMenu_InheritsOptions(t *testing.T) {
	root := menu.New[string](menu.WithGlyphs(menu.ASCIIGlyphs), menu.WithAttachPolicy(menu.AttachReject))
	sub := root.NewMenu("")

	assert.Equal(t, menu.DefaultMenuRoute, sub.Route())
	assert.Same(t, root, sub.Parent())
	assert.Equal(t, menu.ASCIIGlyphs, sub.Options().Glyphs)
	assert.Equal(t, menu.AttachReject, sub.Options().Policy)
	assert.Equal(t, menu.DefaultMenuRoute, sub.Options().Route)
}

func TestAddMenu_Errors(t *testing.T) {
	root := NewSampleMenu(t)
	products := root.FindMenu(RouteProducts)
	services := root.FindMenu(RouteServices)
	require.NotNil(t, products)
	require.NotNil(t, services)

	assert.ErrorIs(t, root.AddMenu(nil), menu.ErrNilMenu)
	assert.ErrorIs(t, root.AddMenu(root), menu.ErrCycle)
	assert.ErrorIs(t, services.AddMenu(products), menu.ErrCycle)
	assert.ErrorIs(t, services.AddMenu(root), menu.ErrCycle)

	assert.Equal(t, SampleRendering, root.String(), "failed attaches must not change the tree")
	RequireParentConsistent(t, root)
}

func TestAddMenu_MoveDetachesFromOldParent(t *testing.T) {
	root := NewSampleMenu(t)
	products := root.FindMenu(RouteProducts)
	services := root.FindMenu(RouteServices)

	require.NoError(t, root.AddMenu(services))

	assert.Same(t, root, services.Parent())
	assert.Equal(t, 2, products.Len(), "Products keeps its items only")
	assert.Equal(t, 4, root.Len())
	assert.Nil(t, products.FindMenu(RouteServices))
	RequireParentConsistent(t, root)
}

func TestAddMenu_RejectPolicy(t *testing.T) {
	root := NewSampleMenu(t, menu.WithAttachPolicy(menu.AttachReject))
	services := root.FindMenu(RouteServices)

	err := root.AddMenu(services)
	require.Error(t, err)
	assert.True(t, errors.Is(err, menu.ErrAlreadyAttached))
	assert.Equal(t, RouteProducts, services.Parent().Route())
	assert.Equal(t, SampleRendering, root.String())
}

func TestDetachAndRemoveChild(t *testing.T) {
	root := NewSampleMenu(t)
	products := root.FindMenu(RouteProducts)
	about := root.FindItem(IsPayload(About))
	require.NotNil(t, about)

	about.Detach()
	assert.Nil(t, about.Parent())
	assert.Nil(t, root.FindItem(IsPayload(About)))

	products.Detach()
	assert.True(t, products.IsRoot())
	assert.Equal(t, 1, root.Len())

	assert.False(t, root.RemoveChild(products), "already detached")
	assert.False(t, root.RemoveChild(nil))

	home := root.FindItem(IsPayload(Home))
	assert.True(t, root.RemoveChild(home))
	assert.Zero(t, root.Len())

	// Detaching roots is a no-op.
	products.Detach()
	about.Detach()
	assert.True(t, products.IsRoot())
}

func TestFind_SearchScenario(t *testing.T) {
	root := NewSampleMenu(t)

	found := root.Find(func(n menu.Node[string]) bool {
		it, ok := n.(*menu.Item[string])
		return ok && it.Data() == ServiceA
	})
	require.NotNil(t, found)

	item, ok := found.(*menu.Item[string])
	require.True(t, ok)
	assert.Equal(t, menu.DefaultItemRoute, item.Route())
	assert.Equal(t, RouteServices, item.Parent().Route())
	assert.Equal(t, RouteProducts, item.Parent().Parent().Route())
	assert.Same(t, root, item.Parent().Parent().Parent())
	assert.Same(t, root, item.Root())
	assert.Equal(t, 3, item.Depth())
	assert.Equal(t, []string{RouteMain, RouteProducts, RouteServices, menu.DefaultItemRoute}, item.Path())
}

func TestFind_PreOrderAndReceiverFirst(t *testing.T) {
	root := NewSampleMenu(t)

	assert.Same(t, root, root.Find(func(menu.Node[string]) bool { return true }))

	var seen []string
	root.Find(func(n menu.Node[string]) bool {
		seen = append(seen, n.Route())
		return false
	})
	assert.Equal(t, []string{
		RouteMain, RouteHome, menu.DefaultItemRoute, RouteProducts,
		menu.DefaultItemRoute, RouteB, RouteServices, menu.DefaultItemRoute, menu.DefaultItemRoute,
	}, seen)

	first := root.FindItem(func(s string) bool { return len(s) > 5 })
	require.NotNil(t, first)
	assert.Equal(t, ProductA, first.Data(), "first match in pre-order wins")

	assert.Nil(t, root.Find(func(menu.Node[string]) bool { return false }))
	assert.Nil(t, root.FindItem(IsPayload("missing")))
	assert.Nil(t, root.FindMenu("missing"))
	assert.Nil(t, menu.New[string]().FindItem(IsPayload(Home)))
}

func TestItemFind(t *testing.T) {
	it := menu.New[int]().Add(7)
	assert.Same(t, it, it.Find(func(menu.Node[int]) bool { return true }))
	assert.Nil(t, it.Find(func(menu.Node[int]) bool { return false }))
}

func TestRootAndDepth(t *testing.T) {
	root := NewSampleMenu(t)
	for depth, n := range root.All() {
		assert.Equal(t, depth, n.Depth(), "depth of %q", n.Route())
		r := n.Root()
		assert.Nil(t, r.Parent())
		assert.Same(t, root, r)
	}

	lone := menu.New[string]()
	assert.Same(t, lone, lone.Root())
	assert.Zero(t, lone.Depth())
	assert.Equal(t, []string{menu.DefaultMenuRoute}, lone.Path())
}

func TestWalk_StopsEarly(t *testing.T) {
	root := NewSampleMenu(t)

	visited := 0
	root.Walk(func(n menu.Node[string], depth int) bool {
		visited++
		return n.Route() != RouteProducts
	})
	assert.Equal(t, 4, visited)

	total := 0
	for range root.All() {
		total++
	}
	assert.Equal(t, 9, total)

	for _, n := range root.All() {
		if n.Route() == RouteServices {
			break
		}
	}
}

func TestRemoveItem_Completeness(t *testing.T) {
	root := NewSampleMenu(t)
	root.FindMenu(RouteServices).Add(ProductA)

	removed := root.RemoveItem(IsPayload(ProductA))
	assert.True(t, removed)
	assert.Nil(t, root.FindItem(IsPayload(ProductA)), "matches at every depth are removed")
	assert.Equal(t, []string{Home, About, ProductB, ServiceA, ServiceB}, Payloads(root))
	RequireParentConsistent(t, root)

	assert.False(t, root.RemoveItem(IsPayload(ProductA)), "nothing left to remove")
}

func TestRemoveItem_NeverRemovesMenus(t *testing.T) {
	root := NewSampleMenu(t)

	n := root.RemoveItemCount(func(string) bool { return true })
	assert.Equal(t, 6, n)
	assert.Equal(t, "Main Menu\n└─ Products\n   └─ Services\n", root.String())

	assert.False(t, menu.New[string]().RemoveItem(func(string) bool { return true }))
}

func TestRemoveItem_PropertyAcrossPredicates(t *testing.T) {
	preds := map[string]func(string) bool{
		"none":     func(string) bool { return false },
		"home":     IsPayload(Home),
		"services": func(s string) bool { return len(s) > 7 && s[:7] == "Service" },
		"products": func(s string) bool { return len(s) > 7 && s[:7] == "Product" },
		"all":      func(string) bool { return true },
	}
	for name, pred := range preds {
		t.Run(name, func(t *testing.T) {
			root := NewSampleMenu(t)
			want := false
			for _, p := range Payloads(root) {
				want = want || pred(p)
			}

			assert.Equal(t, want, root.RemoveItem(pred))
			for _, p := range Payloads(root) {
				assert.False(t, pred(p), "survivor %q still matches", p)
			}
			RequireParentConsistent(t, root)
		})
	}
}

func TestRemovedItemKeepsDanglingParent(t *testing.T) {
	root := NewSampleMenu(t)
	home := root.FindItem(IsPayload(Home))

	require.True(t, root.RemoveItem(IsPayload(Home)))
	assert.Same(t, root, home.Parent(), "removal only excises the item")
}

func TestPrune(t *testing.T) {
	root := NewSampleMenu(t)
	root.NewMenu("Empty").NewMenu("Nested")

	assert.Equal(t, 2, root.Prune())
	assert.Equal(t, SampleRendering, root.String())

	root.RemoveItem(func(string) bool { return true })
	assert.Equal(t, 2, root.Prune())
	assert.Equal(t, "Main Menu\n", root.String())
}

func TestPrune_PrunedMenusBecomeRoots(t *testing.T) {
	root := NewSampleMenu(t)
	empty := root.NewMenu("Empty")
	require.Equal(t, 1, root.Prune())

	assert.True(t, empty.IsRoot())
	assert.Same(t, empty, empty.Root())

	other := menu.New[string](menu.WithAttachPolicy(menu.AttachReject))
	require.NoError(t, other.AddMenu(empty))
	assert.Same(t, other, empty.Parent())
	RequireParentConsistent(t, other)
	assert.Equal(t, SampleRendering, root.String())
}

func TestDetach_ClearsDanglingParent(t *testing.T) {
	root := NewSampleMenu(t)
	home := root.FindItem(IsPayload(Home))
	require.True(t, root.RemoveItem(IsPayload(Home)))

	home.Detach()
	assert.Nil(t, home.Parent())
	assert.Same(t, home, home.Root())
	assert.Equal(t, 2, root.Len(), "detaching an excised item leaves the tree alone")
}

func TestChildren_ReturnsCopy(t *testing.T) {
	root := NewSampleMenu(t)
	kids := root.Children()
	kids[0] = nil

	assert.NotNil(t, root.Children()[0])
	assert.Len(t, root.Children(), 3)
}

func TestAttachPolicy_String(t *testing.T) {
	assert.Equal(t, "move", menu.AttachMove.String())
	assert.Equal(t, "reject", menu.AttachReject.String())
	assert.Equal(t, "unknown", menu.AttachPolicy(9).String())
}
