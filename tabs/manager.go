// Package tabs keeps the set of pages open as tabs and keeps navigation
// consistent as tabs are opened and closed.
package tabs

import (
	"slices"

	"github.com/deevus/erp-tui/internal/state"
	"github.com/deevus/erp-tui/nav"
)

// Tab is an open page. Label is captured when the tab is opened.
type Tab struct {
	Path  string
	Label string
}

// Manager owns the ordered open-tab list. The active tab is never stored:
// it is whatever the Navigator reports as the current path.
type Manager struct {
	nav  nav.Navigator
	open *state.Cell[[]Tab]
}

// NewManager creates a Manager with no open tabs.
func NewManager(n nav.Navigator) *Manager {
	return &Manager{
		nav:  n,
		open: state.NewCell[[]Tab](nil),
	}
}

// OpenTab appends tab unless a tab with the same path is already open, then
// navigates to tab.Path. An existing tab keeps its original label. Paths are
// stored cleaned, as the navigator reports them.
func (m *Manager) OpenTab(tab Tab) {
	tab.Path = nav.Clean(tab.Path)
	m.open.Update(func(cur []Tab) ([]Tab, bool) {
		if indexOf(cur, tab.Path) >= 0 {
			return cur, false
		}
		next := make([]Tab, len(cur), len(cur)+1)
		copy(next, cur)
		return append(next, tab), true
	})
	m.nav.Navigate(tab.Path)
}

// CloseTab removes the tab with the given path. Closing an unknown path does
// nothing. When the closed tab was active, navigation moves to the tab on its
// left (or the new first tab), or Home once no tabs remain.
func (m *Manager) CloseTab(path string) {
	path = nav.Clean(path)
	active := m.nav.CurrentPath()

	removed := -1
	var remaining []Tab
	m.open.Update(func(cur []Tab) ([]Tab, bool) {
		removed = indexOf(cur, path)
		if removed < 0 {
			return cur, false
		}
		next := make([]Tab, 0, len(cur)-1)
		next = append(next, cur[:removed]...)
		next = append(next, cur[removed+1:]...)
		remaining = next
		return next, true
	})

	if removed < 0 || path != active {
		return
	}
	if len(remaining) == 0 {
		m.nav.Navigate(nav.Home)
		return
	}
	m.nav.Navigate(remaining[max(0, removed-1)].Path)
}

// OpenTabs returns a copy of the open tabs in insertion order.
func (m *Manager) OpenTabs() []Tab {
	return slices.Clone(m.open.Get())
}

// ActiveTab returns the Navigator's current path. It need not be an open tab.
func (m *Manager) ActiveTab() string {
	return m.nav.CurrentPath()
}

// ActiveIndex returns the index of the active tab in OpenTabs, or -1.
func (m *Manager) ActiveIndex() int {
	return indexOf(m.open.Get(), m.nav.CurrentPath())
}

// Subscribe registers fn to receive the open tabs after every change.
func (m *Manager) Subscribe(fn func([]Tab)) (cancel func()) {
	return m.open.Subscribe(func(tabs []Tab) {
		fn(slices.Clone(tabs))
	})
}

func indexOf(tabs []Tab, path string) int {
	return slices.IndexFunc(tabs, func(t Tab) bool { return t.Path == path })
}
