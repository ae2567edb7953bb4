package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/deevus/erp-tui/config"
	"github.com/deevus/erp-tui/i18n"
	"github.com/deevus/erp-tui/settings"
)

func TestLoad_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	err := os.WriteFile(path, []byte(`
[ui]
theme = "nordic-light"
locale = "en"
currency = "usd"
stale_ttl = "2m"

[data]
fixtures_path = "/srv/erp/fixtures.toml"
latency_scale = 0.5

[logging]
level = "debug"
file = "/tmp/erp.log"
`), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.UI.Theme != "nordic-light" {
		t.Errorf("expected theme nordic-light, got %s", cfg.UI.Theme)
	}
	if cfg.UI.StaleTTL.Duration != 2*time.Minute {
		t.Errorf("expected stale_ttl 2m, got %s", cfg.UI.StaleTTL)
	}
	if cfg.Data.LatencyScale != 0.5 {
		t.Errorf("expected latency_scale 0.5, got %v", cfg.Data.LatencyScale)
	}
	if cfg.Data.FixturesPath != "/srv/erp/fixtures.toml" {
		t.Errorf("expected fixtures path, got %s", cfg.Data.FixturesPath)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level debug, got %s", cfg.Logging.Level)
	}

	p := cfg.Preferences()
	if p.Theme != settings.NordicLight || p.Locale != i18n.English || p.Currency != "USD" {
		t.Errorf("unexpected preferences: %+v", p)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	err := os.WriteFile(path, []byte(`
[ui]
locale = "en"
`), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UI.Theme != "modern" {
		t.Errorf("expected default theme modern, got %s", cfg.UI.Theme)
	}
	if cfg.Data.LatencyScale != 1 {
		t.Errorf("expected default latency_scale 1, got %v", cfg.Data.LatencyScale)
	}
	if cfg.UI.StaleTTL.Duration != 30*time.Second {
		t.Errorf("expected default stale_ttl 30s, got %s", cfg.UI.StaleTTL)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UI.Locale != "ar" {
		t.Errorf("expected default locale ar, got %s", cfg.UI.Locale)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`not valid toml [[[`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := config.LoadFrom(path); err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown theme", "[ui]\ntheme = \"solarized\"\n", "unknown theme"},
		{"unknown locale", "[ui]\nlocale = \"fr\"\n", "unsupported locale"},
		{"negative scale", "[data]\nlatency_scale = -1.0\n", "latency_scale"},
		{"bad duration", "[ui]\nstale_ttl = \"soon\"\n", "invalid duration"},
		{"unknown key", "[ui]\ncolour = \"red\"\n", "unknown keys"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := config.LoadFrom(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoad_ExpandsPaths(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	err := os.WriteFile(path, []byte(`
[data]
fixtures_path = "~/erp/data.toml"

[logging]
file = "$HOME/logs/erp.log"
`), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Data.FixturesPath != "/home/tester/erp/data.toml" {
		t.Errorf("expected expanded fixtures path, got %s", cfg.Data.FixturesPath)
	}
	if cfg.Logging.File != "/home/tester/logs/erp.log" {
		t.Errorf("expected expanded log path, got %s", cfg.Logging.File)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := config.Default()
	cfg.UI.Theme = "fluent"
	cfg.UI.StaleTTL = config.Duration{Duration: 45 * time.Second}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.UI.Theme != "fluent" {
		t.Errorf("expected theme fluent, got %s", got.UI.Theme)
	}
	if got.UI.StaleTTL.Duration != 45*time.Second {
		t.Errorf("expected stale_ttl 45s, got %s", got.UI.StaleTTL)
	}
}

func TestFilePersister(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	err := os.WriteFile(path, []byte(`
[ui]
theme = "modern"
locale = "ar"

[logging]
level = "warn"
`), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}

	store := settings.NewStore(cfg.Preferences(), config.NewFilePersister(path, cfg.Preferences()))
	if err := store.SetTheme(settings.GlassyDark); err != nil {
		t.Fatalf("set theme: %v", err)
	}

	got, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.UI.Theme != "glassy-dark" {
		t.Errorf("expected persisted theme glassy-dark, got %s", got.UI.Theme)
	}
	if got.UI.Locale != "ar" {
		t.Errorf("expected locale ar, got %s", got.UI.Locale)
	}
	if got.Logging.Level != "warn" {
		t.Errorf("expected other sections preserved, got level %s", got.Logging.Level)
	}
}

func TestFilePersister_KeepsOverridesOutOfFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	err := os.WriteFile(path, []byte(`
[data]
fixtures_path = "~/erp/data.toml"

[logging]
level = "info"
`), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	// Command-line overrides applied for this run only.
	cfg.UI.Theme = "glassy-dark"
	cfg.Data.FixturesPath = "/tmp/one-run-fixtures.toml"
	cfg.Logging.Level = "debug"

	initial := cfg.Preferences()
	p := config.NewFilePersister(path, initial)
	if err := p.SavePreferences(initial.WithLocale(i18n.English)); err != nil {
		t.Fatalf("save preferences: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	body := string(raw)
	for _, unwanted := range []string{"glassy-dark", "one-run-fixtures", "debug", "stale_ttl", "latency_scale"} {
		if strings.Contains(body, unwanted) {
			t.Errorf("expected %q not to be written, got:\n%s", unwanted, body)
		}
	}
	if !strings.Contains(body, "~/erp/data.toml") {
		t.Errorf("expected fixtures_path kept unexpanded, got:\n%s", body)
	}

	got, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.UI.Locale != "en" {
		t.Errorf("expected locale en, got %s", got.UI.Locale)
	}
	if got.UI.Theme != "modern" {
		t.Errorf("expected default theme modern, got %s", got.UI.Theme)
	}
	if got.Logging.Level != "info" {
		t.Errorf("expected level info, got %s", got.Logging.Level)
	}
}

func TestFilePersister_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	p := config.NewFilePersister(path, settings.Defaults())
	if err := p.SavePreferences(settings.Defaults().WithTheme(settings.NordicLight)); err != nil {
		t.Fatalf("save preferences: %v", err)
	}
	got, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.UI.Theme != "nordic-light" {
		t.Errorf("expected theme nordic-light, got %s", got.UI.Theme)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := config.DefaultPath(); got != filepath.Join("/xdg", "erp-tui", "config.toml") {
		t.Errorf("unexpected default path %s", got)
	}
}
