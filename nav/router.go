// Package nav tracks the current location of the UI and lets widgets move it.
package nav

import (
	"strings"

	"github.com/deevus/erp-tui/internal/state"
)

// Home is the root path, rendered as the main menu.
const Home = "/"

// Navigator is the location collaborator consumed by the tab manager and views.
type Navigator interface {
	CurrentPath() string
	Navigate(path string)
}

// Router is the in-process Navigator. Navigation always succeeds.
type Router struct {
	path *state.Cell[string]
}

// NewRouter creates a Router positioned at Home.
func NewRouter() *Router {
	return &Router{path: state.NewCell(Home)}
}

// CurrentPath returns the current location.
func (r *Router) CurrentPath() string {
	return r.path.Get()
}

// Navigate moves to path. Subscribers are notified only if the location changes.
func (r *Router) Navigate(path string) {
	path = Clean(path)
	r.path.Update(func(cur string) (string, bool) {
		return path, cur != path
	})
}

// Subscribe registers fn to be called with each new location.
func (r *Router) Subscribe(fn func(path string)) (cancel func()) {
	return r.path.Subscribe(fn)
}

// Clean normalises a path: leading slash, no trailing slash except for Home.
func Clean(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return Home
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return Home
		}
	}
	return path
}
