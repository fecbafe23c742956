package testsupport

import (
	"path/filepath"
	"testing"

	"safeairway/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a unique temp directory per test.
// Logging goes to the temp tree and autosave keeps its defaults.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.BaseDir = filepath.Join(base, "SafeAirway")
	cfgVal.Paths.SettingsPath = filepath.Join(base, "config", "settings.db")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithAutoSave overrides the autosave settings on the test config.
func WithAutoSave(enabled bool, minutes int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.AutoSave.Enabled = enabled
		b.cfg.AutoSave.IntervalMinutes = minutes
	}
}

// WithLogLevel sets the log level on the test config.
func WithLogLevel(level string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Level = level
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.BaseDir)
}
