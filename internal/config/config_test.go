package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"safeairway/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("XDG_DOCUMENTS_DIR", "")
	t.Setenv("SAFEAIRWAY_BASE_DIR", "")
	// Equivalent of t.Chdir (Go 1.24+) for older toolchains.
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != filepath.Join(tempHome, ".config", "safeairway", "config.toml") {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if want := filepath.Join(tempHome, "Documents", "SafeAirway"); cfg.Paths.BaseDir != want {
		t.Fatalf("unexpected base dir: got %q want %q", cfg.Paths.BaseDir, want)
	}
	if want := filepath.Join(tempHome, ".config", "safeairway", "settings.db"); cfg.Paths.SettingsPath != want {
		t.Fatalf("unexpected settings path: got %q want %q", cfg.Paths.SettingsPath, want)
	}
	if !cfg.AutoSave.Enabled || cfg.AutoSave.IntervalMinutes != 5 {
		t.Fatalf("unexpected autosave defaults: %+v", cfg.AutoSave)
	}
	if cfg.Display.FontSize != 12 {
		t.Fatalf("unexpected font size %d", cfg.Display.FontSize)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadHonoursDocumentsAndBaseDirEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	docs := t.TempDir()
	t.Setenv("XDG_DOCUMENTS_DIR", docs)
	t.Setenv("SAFEAIRWAY_BASE_DIR", "")

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := filepath.Join(docs, "SafeAirway"); cfg.Paths.BaseDir != want {
		t.Fatalf("expected documents-relative base dir %q, got %q", want, cfg.Paths.BaseDir)
	}

	override := t.TempDir()
	t.Setenv("SAFEAIRWAY_BASE_DIR", override)
	cfg, _, _, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.BaseDir != override {
		t.Fatalf("expected env override %q, got %q", override, cfg.Paths.BaseDir)
	}
}

func TestLoadCustomConfigFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("SAFEAIRWAY_BASE_DIR", "")

	custom := config.Default()
	custom.Paths.BaseDir = "~/clinic"
	custom.AutoSave.IntervalMinutes = 2
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "Warning"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "safeairway.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected config %q to be found, got %q exists=%v", path, resolved, exists)
	}
	if cfg.Paths.BaseDir != filepath.Join(tempHome, "clinic") {
		t.Fatalf("unexpected base dir %q", cfg.Paths.BaseDir)
	}
	if cfg.AutoSave.IntervalMinutes != 2 {
		t.Fatalf("unexpected interval %d", cfg.AutoSave.IntervalMinutes)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "warn" {
		t.Fatalf("expected normalized logging, got %+v", cfg.Logging)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[paths]\nstaging_dir = \"/tmp\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"interval", func(c *config.Config) { c.AutoSave.IntervalMinutes = -1 }, "autosave.interval_minutes"},
		{"format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"level", func(c *config.Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"font", func(c *config.Config) { c.Display.FontSize = 200 }, "display.font_size"},
		{"base", func(c *config.Config) { c.Paths.BaseDir = "" }, "paths.base_dir"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestCreateSampleLoads(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("SAFEAIRWAY_BASE_DIR", "")

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config should load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if cfg.Paths.BaseDir != filepath.Join(tempHome, "Documents", "SafeAirway") {
		t.Fatalf("unexpected sample base dir %q", cfg.Paths.BaseDir)
	}
}

func TestEnsureDirectories(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(root, "logs")
	cfg.Paths.SettingsPath = filepath.Join(root, "conf", "settings.db")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, dir := range []string{cfg.Paths.LogDir, filepath.Dir(cfg.Paths.SettingsPath)} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", dir, err)
		}
	}
}
