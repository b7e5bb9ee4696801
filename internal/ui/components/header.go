package components

import (
	"fmt"

	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/catalog"
	"github.com/goodmentalhealthplace-ship-it/goodplace/internal/ui/widgets"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Header renders the fixed site header: logo, primary navigation with
// dropdowns, and the collapsible mobile menu. Menu state lives in two
// datastar signals: $menu holds the id of the open dropdown ("" when all
// are closed, so at most one dropdown is open at a time) and $mobile holds
// whether the mobile panel is expanded. Navigating or clicking outside the
// header resets both.
func Header(v View) g.Node {
	var initial widgets.MenuState
	return h.Header(
		h.Class("site-header"),
		g.Attr("data-signals", fmt.Sprintf(`{"menu":"%s","mobile":%t}`, initial.OpenMenu(), initial.MobileOpen())),
		g.Attr("data-on-click__outside", "$menu = ''; $mobile = false"),
		h.Div(
			h.Class("header-inner"),
			h.A(
				h.Href("/"),
				h.Class("logo"),
				g.Attr("data-on-click", "$menu = ''; $mobile = false"),
				h.Img(h.Src(v.Site.LogoPath), h.Alt(v.Site.Name)),
			),
			h.Nav(
				h.Class("primary-nav"),
				g.Attr("aria-label", "Primary"),
				g.Map(v.Nav, func(item catalog.NavigationItem) g.Node {
					return navItem(v, item)
				}),
			),
			mobileToggle(),
		),
		mobilePanel(v),
	)
}

func navItem(v View, item catalog.NavigationItem) g.Node {
	if !item.IsDropdown() {
		return navLink(v, item.Name, item.Route)
	}
	id := item.MenuID()
	return h.Div(
		h.Class("nav-dropdown"),
		h.Button(
			h.Class("nav-link dropdown-toggle"),
			g.Attr("aria-haspopup", "true"),
			// Reopening a different dropdown closes the current one
			// because both read the same signal.
			g.Attr("data-on-click__stop", toggleExpr(id)),
			g.Attr("data-attr-aria-expanded", openExpr(id)),
			g.Text(item.Name),
			h.Span(h.Class("caret"), g.Attr("aria-hidden", "true"), g.Text("▾")),
		),
		h.Div(
			h.Class("dropdown-panel"),
			g.Attr("data-show", openExpr(id)),
			g.Map(item.SubItems, func(sub catalog.NavigationItem) g.Node {
				return navLink(v, sub.Name, sub.Route)
			}),
		),
	)
}

func navLink(v View, name, route string) g.Node {
	return h.A(
		h.Href(route),
		g.If(route == v.Path, h.Class("nav-link active")),
		g.If(route != v.Path, h.Class("nav-link")),
		g.Attr("data-on-click", "$menu = ''; $mobile = false"),
		g.Text(name),
	)
}

func mobileToggle() g.Node {
	return h.Button(
		h.Class("mobile-toggle"),
		g.Attr("aria-label", "Toggle menu"),
		g.Attr("data-on-click__stop", "$mobile = !$mobile; $menu = ''"),
		g.Attr("data-attr-aria-expanded", "$mobile"),
		h.Span(h.Class("hamburger"), g.Attr("aria-hidden", "true")),
	)
}

// mobilePanel mirrors the primary nav as a stacked list. Dropdown groups
// expand in place, driven by the same $menu signal as the desktop header.
func mobilePanel(v View) g.Node {
	return h.Div(
		h.Class("mobile-panel"),
		g.Attr("data-show", "$mobile"),
		g.Map(v.Nav, func(item catalog.NavigationItem) g.Node {
			if !item.IsDropdown() {
				return navLink(v, item.Name, item.Route)
			}
			id := item.MenuID()
			return h.Div(
				h.Class("mobile-group"),
				h.Button(
					h.Class("nav-link dropdown-toggle"),
					g.Attr("data-on-click__stop", toggleExpr(id)),
					g.Text(item.Name),
				),
				h.Div(
					h.Class("mobile-sublist"),
					g.Attr("data-show", openExpr(id)),
					g.Map(item.SubItems, func(sub catalog.NavigationItem) g.Node {
						return navLink(v, sub.Name, sub.Route)
					}),
				),
			)
		}),
	)
}

func toggleExpr(id string) string {
	return fmt.Sprintf("$menu = $menu === '%s' ? '' : '%s'", id, id)
}

func openExpr(id string) string {
	return fmt.Sprintf("$menu === '%s'", id)
}
