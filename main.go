package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"github.com/charmbracelet/log"
	"github.com/deevus/erp-tui/app"
	"github.com/deevus/erp-tui/config"
	"github.com/deevus/erp-tui/erp"
	"github.com/deevus/erp-tui/internal"
	"github.com/deevus/erp-tui/settings"
)

const appName = "erp-tui"

func main() {
	configFlag := flag.String("config", config.DefaultPath(), "path to config file")
	localeFlag := flag.String("locale", "", "interface language (ar, en)")
	themeFlag := flag.String("theme", "", "colour theme (modern, fluent, glassy-dark, nordic-light)")
	fixturesFlag := flag.String("fixtures", "", "path to a TOML fixtures file")
	levelFlag := flag.String("log-level", "", "log level (debug, info, warn, error)")
	flag.Parse()

	cfg, err := config.LoadFrom(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *localeFlag != "" {
		cfg.UI.Locale = *localeFlag
	}
	if *themeFlag != "" {
		cfg.UI.Theme = *themeFlag
	}
	if *fixturesFlag != "" {
		cfg.Data.FixturesPath = *fixturesFlag
	}
	if *levelFlag != "" {
		cfg.Logging.Level = *levelFlag
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run starts the UI and blocks until it exits. Deferred cleanup has run by
// the time it returns.
func run(cfg *config.Config, configPath string) error {
	logger, closeLog, err := openLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer closeLog()
	log.SetDefault(logger)

	data, err := erp.LoadFixtures(cfg.Data.FixturesPath)
	if err != nil {
		logger.Error("loading fixtures", "err", err)
		return err
	}
	store := erp.NewMemoryStore(data, erp.DefaultLatency().Scale(cfg.Data.LatencyScale))

	initial := cfg.Preferences()
	prefs := settings.NewStore(initial, config.NewFilePersister(configPath, initial))

	root := app.New(app.Params{
		Services: internal.NewServices(store),
		Settings: prefs,
		Logger:   logger,
		StaleTTL: cfg.UI.StaleTTL.Duration,
	})
	defer root.Close()

	vxApp, err := vxfw.NewApp(vaxis.Options{})
	if err != nil {
		logger.Error("starting terminal", "err", err)
		return fmt.Errorf("starting terminal: %w", err)
	}
	root.SetPostEvent(vxApp.PostEvent)
	root.LoadAll()

	logger.Info("started", "locale", cfg.UI.Locale, "theme", cfg.UI.Theme, "fixtures", cfg.Data.FixturesPath)
	if err := vxApp.Run(root); err != nil {
		logger.Error("running app", "err", err)
		return err
	}
	return nil
}

// openLogger writes logfmt records to the configured file. The terminal is
// owned by the UI, so nothing is logged to stderr.
func openLogger(c config.LoggingConfig) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}

	path := c.File
	if path == "" {
		path = config.DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           level,
		Prefix:          appName,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       log.LogfmtFormatter,
	})
	return logger, func() { _ = f.Close() }, nil
}
