// SPDX-License-Identifier: MIT
// Package menu_test contains fixtures and assertion helpers shared by the menu tests.

package menu_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/menutree/menu"
)

// Routes and payloads of the sample tree.
const (
	RouteMain     = "Main Menu"
	RouteProducts = "Products"
	RouteServices = "Services"
	RouteHome     = "homeroute"
	RouteB        = "routeB"

	Home     = "Home"
	About    = "About"
	ProductA = "Product A"
	ProductB = "Product B"
	ServiceA = "Service A"
	ServiceB = "Service B"
)

// SampleRendering is the Unicode rendering of NewSampleMenu.
const SampleRendering = `Main Menu
├─ homeroute: Home
├─ <Item>: About
└─ Products
   ├─ <Item>: Product A
   ├─ routeB: Product B
   └─ Services
      ├─ <Item>: Service A
      └─ <Item>: Service B
`

// NewSampleMenu builds:
//
//	Main Menu
//	├─ homeroute: Home
//	├─ <Item>: About
//	└─ Products
//	   ├─ <Item>: Product A
//	   ├─ routeB: Product B
//	   └─ Services
//	      ├─ <Item>: Service A
//	      └─ <Item>: Service B
//
// Submenus are built detached and attached with AddMenu, the way callers
// usually assemble trees bottom-up.
func NewSampleMenu(t testing.TB, opts ...menu.Option) *menu.Menu[string] {
	t.Helper()

	root := menu.New[string](append([]menu.Option{menu.WithRoute(RouteMain)}, opts...)...)
	root.AddWithRoute(RouteHome, Home)
	root.Add(About)

	products := menu.New[string](menu.WithRoute(RouteProducts))
	products.Add(ProductA)
	products.AddWithRoute(RouteB, ProductB)

	services := menu.New[string](menu.WithRoute(RouteServices))
	services.Add(ServiceA)
	services.Add(ServiceB)

	require.NoError(t, products.AddMenu(services))
	require.NoError(t, root.AddMenu(products))

	return root
}

// RequireParentConsistent asserts that every node below m appears exactly once
// in its parent's children.
func RequireParentConsistent[T any](t testing.TB, m *menu.Menu[T]) {
	t.Helper()

	for _, n := range m.All() {
		p := n.Parent()
		if p == nil {
			continue
		}
		count := 0
		for _, c := range p.Children() {
			if c == n {
				count++
			}
		}
		require.Equalf(t, 1, count, "node %q must appear once under %q", n.Route(), p.Route())
	}
}

// IsPayload returns a payload predicate matching v.
func IsPayload(v string) func(string) bool {
	return func(s string) bool { return s == v }
}

// Payloads returns the payloads of every item under m in pre-order.
func Payloads[T any](m *menu.Menu[T]) []T {
	var out []T
	for _, it := range m.Items() {
		out = append(out, it.Data())
	}

	return out
}
