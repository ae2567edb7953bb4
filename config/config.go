package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/deevus/erp-tui/i18n"
	"github.com/deevus/erp-tui/settings"
)

// Config is the top-level configuration.
type Config struct {
	UI      UIConfig      `toml:"ui"`
	Data    DataConfig    `toml:"data"`
	Logging LoggingConfig `toml:"logging"`
}

// UIConfig holds display preferences.
type UIConfig struct {
	Theme    string   `toml:"theme"`
	Locale   string   `toml:"locale"`
	Currency string   `toml:"currency"`
	StaleTTL Duration `toml:"stale_ttl"`
}

// DataConfig controls the demo data source.
type DataConfig struct {
	FixturesPath string  `toml:"fixtures_path"`
	LatencyScale float64 `toml:"latency_scale"`
}

// LoggingConfig controls the log file.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Duration is a time.Duration written as a string such as "30s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme:    string(settings.DefaultTheme),
			Locale:   string(i18n.DefaultLocale),
			Currency: i18n.DefaultCurrency,
			StaleTTL: Duration{30 * time.Second},
		},
		Data: DataConfig{
			LatencyScale: 1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the default config file path using XDG conventions.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "erp-tui", "config.toml")
}

// DefaultLogPath returns the log file used when none is configured.
func DefaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".cache")
	}
	return filepath.Join(dir, "erp-tui", "erp-tui.log")
}

// LoadFrom reads and parses the config file at the given path. Keys missing
// from the file keep their defaults, and a missing file yields Default().
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("loading config from %s: unknown keys %v", path, undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	cfg.Data.FixturesPath = expandPath(cfg.Data.FixturesPath)
	cfg.Logging.File = expandPath(cfg.Logging.File)
	return cfg, nil
}

// Validate checks enumerated and numeric fields.
func (c *Config) Validate() error {
	if _, err := settings.ParseTheme(c.UI.Theme); err != nil {
		return err
	}
	if _, err := i18n.ParseLocale(c.UI.Locale); err != nil {
		return err
	}
	if c.Data.LatencyScale < 0 {
		return fmt.Errorf("latency_scale must not be negative, got %v", c.Data.LatencyScale)
	}
	if c.UI.StaleTTL.Duration < 0 {
		return fmt.Errorf("stale_ttl must not be negative, got %s", c.UI.StaleTTL)
	}
	return nil
}

// Preferences converts the [ui] section. Call Validate first.
func (c *Config) Preferences() settings.Preferences {
	p := settings.Defaults()
	if t, err := settings.ParseTheme(c.UI.Theme); err == nil {
		p.Theme = t
	}
	if l, err := i18n.ParseLocale(c.UI.Locale); err == nil {
		p.Locale = l
	}
	if c.UI.Currency != "" {
		p.Currency = strings.ToUpper(c.UI.Currency)
	}
	return p
}

// Save writes c to path, creating parent directories as needed.
func (c *Config) Save(path string) error {
	return writeTOML(path, c)
}

func writeTOML(path string, v any) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("saving config to %s: %w", path, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("saving config to %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("saving config to %s: %w", path, err)
	}
	return nil
}

// FilePersister stores preference changes in the config file. Only the [ui]
// keys whose value changed since the last save are rewritten; the rest of the
// file is kept as written, so values that came from flags or defaults never
// reach it.
type FilePersister struct {
	mu   sync.Mutex
	path string
	last settings.Preferences
}

// NewFilePersister creates a FilePersister for the config file at path.
// initial is the preferences value the program started with.
func NewFilePersister(path string, initial settings.Preferences) *FilePersister {
	return &FilePersister{path: path, last: initial}
}

func (f *FilePersister) SavePreferences(p settings.Preferences) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc := map[string]any{}
	if _, err := toml.DecodeFile(f.path, &doc); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading config from %s: %w", f.path, err)
	}
	ui, ok := doc["ui"].(map[string]any)
	if !ok {
		ui = map[string]any{}
	}
	changed := false
	if p.Theme != f.last.Theme {
		ui["theme"] = string(p.Theme)
		changed = true
	}
	if p.Locale != f.last.Locale {
		ui["locale"] = string(p.Locale)
		changed = true
	}
	if p.Currency != f.last.Currency {
		ui["currency"] = p.Currency
		changed = true
	}
	if !changed {
		return nil
	}
	doc["ui"] = ui
	if err := writeTOML(f.path, doc); err != nil {
		return err
	}
	f.last = p
	return nil
}

// expandPath expands ~ to $HOME and then expands all environment variables.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		path = "$HOME" + path[1:]
	}
	return os.ExpandEnv(path)
}
