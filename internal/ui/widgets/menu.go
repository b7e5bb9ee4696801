// Package widgets models the client-side UI state machines (header menu,
// accordion, modal) as plain Go types. Components use them to compute the
// initial signal state they render, and tests exercise their invariants
// directly.
package widgets

// MenuState tracks header navigation state: at most one open dropdown plus
// the mobile menu flag. The zero value is the initial state, all menus
// closed.
type MenuState struct {
	openMenu   string
	mobileOpen bool
}

// Toggle opens the dropdown with the given id, closing any other open
// dropdown. Toggling the already-open dropdown closes it.
func (m *MenuState) Toggle(menuID string) {
	if m.openMenu == menuID {
		m.openMenu = ""
		return
	}
	m.openMenu = menuID
}

// ToggleMobile flips the mobile slide-over menu.
func (m *MenuState) ToggleMobile() {
	m.mobileOpen = !m.mobileOpen
}

// Navigate records a route change request. All menus close as a side
// effect, so no stale open-menu state survives navigation. The route is
// returned for the caller to act on.
func (m *MenuState) Navigate(route string) string {
	m.CloseAll()
	return route
}

// CloseAll returns the state machine to allMenusClosed. Outside clicks map
// here.
func (m *MenuState) CloseAll() {
	m.openMenu = ""
	m.mobileOpen = false
}

// OpenMenu returns the id of the open dropdown, or "" when all are closed.
func (m *MenuState) OpenMenu() string { return m.openMenu }

// MobileOpen reports whether the mobile menu is visible.
func (m *MenuState) MobileOpen() bool { return m.mobileOpen }

// AllClosed reports whether no dropdown and no mobile menu is open.
func (m *MenuState) AllClosed() bool { return m.openMenu == "" && !m.mobileOpen }
