package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"safeairway/internal/casestore"
	"safeairway/internal/config"
	"safeairway/internal/logging"
	"safeairway/internal/settings"
	"safeairway/internal/tubesize"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the process logger on first use. A logger that cannot
// open its file falls back to a no-op logger so lookups still work on a
// read-only install.
func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logging.PruneFromConfig(logger, cfg)
		c.logger = logger
	})
	return c.logger
}

// caseEnv bundles the stores a case command works against.
type caseEnv struct {
	cfg      *config.Config
	logger   *slog.Logger
	settings *settings.Store
	store    *casestore.Store
	catalog  *tubesize.Catalog
}

func (e *caseEnv) Close() error {
	if e.settings == nil {
		return nil
	}
	return e.settings.Close()
}

// withCaseStore opens the settings database and an initialized case store
// for the duration of fn.
func (c *commandContext) withCaseStore(fn func(*caseEnv) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger := c.ensureLogger()

	prefs, err := settings.Open(cfg)
	if err != nil {
		return fmt.Errorf("open settings: %w", err)
	}
	env := &caseEnv{
		cfg:      cfg,
		logger:   logger,
		settings: prefs,
		store:    casestore.New(prefs, logger),
		catalog:  catalog(),
	}
	defer env.Close()

	if err := env.store.Initialize(cfg.Paths.BaseDir); err != nil {
		return err
	}
	return fn(env)
}

func (c *commandContext) withSettings(fn func(*config.Config, *settings.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	prefs, err := settings.Open(cfg)
	if err != nil {
		return fmt.Errorf("open settings: %w", err)
	}
	defer prefs.Close()
	return fn(cfg, prefs)
}

var (
	catalogOnce   sync.Once
	sharedCatalog *tubesize.Catalog
)

func catalog() *tubesize.Catalog {
	catalogOnce.Do(func() {
		sharedCatalog = tubesize.New()
	})
	return sharedCatalog
}

// skipConfig marks commands that work without a configuration file.
var skipConfig = map[string]string{"skipConfigLoad": "true"}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
