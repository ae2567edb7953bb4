package views

import (
	"context"
	"sync"
	"time"

	"git.sr.ht/~rockorager/vaxis/vxfw"
	"github.com/charmbracelet/log"
	"github.com/deevus/erp-tui/i18n"
	"github.com/deevus/erp-tui/settings"
	"github.com/deevus/erp-tui/widgets"
)

// Page is a routable screen.
type Page interface {
	vxfw.Widget
	Load(ctx context.Context) error
	Loaded() bool
	Stale() bool
}

// Editor is implemented by pages that capture free text, such as a search
// box. Global key bindings stand down while Editing reports true.
type Editor interface {
	Editing() bool
}

// Env carries what every page needs besides its data source.
type Env struct {
	Settings *settings.Store
	Logger   *log.Logger
	StaleTTL time.Duration
}

func (e Env) prefs() settings.Preferences {
	if e.Settings == nil {
		return settings.Defaults()
	}
	return e.Settings.Get()
}

func (e Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.Default()
	}
	return e.Logger
}

// format renders values for the current preferences.
type format struct {
	locale   i18n.Locale
	currency string
	palette  widgets.Palette
}

func (e Env) format() format {
	p := e.prefs()
	return format{
		locale:   p.Locale,
		currency: p.Currency,
		palette:  widgets.PaletteFor(p.Theme),
	}
}

func (f format) t(key string) string {
	return f.locale.T(key)
}

func (f format) money(v float64) string {
	return f.locale.FormatCurrency(f.currency, v)
}

func (f format) number(n int) string {
	return f.locale.FormatNumber(int64(n))
}

// loadState tracks whether a page holds a usable snapshot. The embedding
// page guards its own data with mu as well.
type loadState struct {
	mu       sync.Mutex
	loaded   bool
	loadedAt time.Time
	err      error
	staleTTL time.Duration
}

// Loaded reports whether data has been successfully fetched.
func (s *loadState) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Stale reports whether the cached data is older than the configured TTL or
// the last fetch failed.
func (s *loadState) Stale() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded || s.err != nil {
		return true
	}
	return time.Since(s.loadedAt) > s.staleTTL
}

// Err returns the error of the last fetch.
func (s *loadState) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// finish records the outcome of a fetch. Callers must hold mu.
func (s *loadState) finish(err error) {
	s.err = err
	if err != nil {
		return
	}
	s.loaded = true
	s.loadedAt = time.Now()
}

// staticPage is embedded by pages that have nothing to fetch.
type staticPage struct{}

func (staticPage) Load(context.Context) error { return nil }
func (staticPage) Loaded() bool               { return true }
func (staticPage) Stale() bool                { return false }
