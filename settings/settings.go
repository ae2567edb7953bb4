// Package settings holds the user's display preferences.
package settings

import (
	"fmt"
	"slices"
	"strings"

	"github.com/deevus/erp-tui/i18n"
	"github.com/deevus/erp-tui/internal/state"
)

// Theme names a colour scheme.
type Theme string

const (
	Modern      Theme = "modern"
	Fluent      Theme = "fluent"
	GlassyDark  Theme = "glassy-dark"
	NordicLight Theme = "nordic-light"
)

// DefaultTheme is used when no theme is configured.
const DefaultTheme = Modern

// Themes lists the available themes in display order.
var Themes = []Theme{Modern, Fluent, GlassyDark, NordicLight}

// ParseTheme validates s as a known theme.
func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Themes, t) {
		return "", fmt.Errorf("unknown theme %q", s)
	}
	return t, nil
}

// Preferences is an immutable snapshot of the display preferences.
type Preferences struct {
	Theme    Theme
	Locale   i18n.Locale
	Currency string
}

// Defaults returns the preferences used before anything is configured.
func Defaults() Preferences {
	return Preferences{
		Theme:    DefaultTheme,
		Locale:   i18n.DefaultLocale,
		Currency: i18n.DefaultCurrency,
	}
}

// WithTheme returns a copy of p using theme t.
func (p Preferences) WithTheme(t Theme) Preferences {
	p.Theme = t
	return p
}

// WithLocale returns a copy of p using locale l.
func (p Preferences) WithLocale(l i18n.Locale) Preferences {
	p.Locale = l
	return p
}

// Persister saves preferences somewhere durable.
type Persister interface {
	SavePreferences(Preferences) error
}

// Store holds the current preferences for one application instance.
// Changes are persisted and then broadcast to subscribers.
type Store struct {
	cell      *state.Cell[Preferences]
	persister Persister
}

// NewStore creates a store starting at initial. persister may be nil.
func NewStore(initial Preferences, persister Persister) *Store {
	return &Store{
		cell:      state.NewCell(initial),
		persister: persister,
	}
}

// Get returns the current preferences.
func (s *Store) Get() Preferences {
	return s.cell.Get()
}

// Update applies fn to the current preferences. When the result differs it is
// stored, persisted and broadcast. A persistence error is returned but the
// in-memory change is kept.
func (s *Store) Update(fn func(Preferences) Preferences) error {
	var changed bool
	next := s.cell.Update(func(cur Preferences) (Preferences, bool) {
		n := fn(cur)
		changed = n != cur
		return n, changed
	})
	if !changed || s.persister == nil {
		return nil
	}
	if err := s.persister.SavePreferences(next); err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	return nil
}

// SetTheme switches to theme t.
func (s *Store) SetTheme(t Theme) error {
	return s.Update(func(p Preferences) Preferences { return p.WithTheme(t) })
}

// SetLocale switches to locale l.
func (s *Store) SetLocale(l i18n.Locale) error {
	return s.Update(func(p Preferences) Preferences { return p.WithLocale(l) })
}

// Subscribe registers fn for preference changes.
func (s *Store) Subscribe(fn func(Preferences)) (cancel func()) {
	return s.cell.Subscribe(fn)
}

// Next returns the element after cur in list, wrapping around.
func Next[T comparable](list []T, cur T) T {
	if len(list) == 0 {
		return cur
	}
	i := slices.Index(list, cur)
	return list[(i+1)%len(list)]
}
