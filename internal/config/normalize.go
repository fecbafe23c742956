package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeAutoSave()
	c.normalizeLogging()
	if c.Display.FontSize == 0 {
		c.Display.FontSize = defaultFontSize
	}
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv(baseDirEnv); ok && strings.TrimSpace(value) != "" {
		c.Paths.BaseDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.BaseDir) == "" {
		c.Paths.BaseDir = defaultBaseDir()
	}
	if strings.TrimSpace(c.Paths.SettingsPath) == "" {
		c.Paths.SettingsPath = defaultSettingsPath
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}

	var err error
	if c.Paths.BaseDir, err = expandPath(strings.TrimSpace(c.Paths.BaseDir)); err != nil {
		return fmt.Errorf("paths.base_dir: %w", err)
	}
	if c.Paths.SettingsPath, err = expandPath(strings.TrimSpace(c.Paths.SettingsPath)); err != nil {
		return fmt.Errorf("paths.settings_path: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeAutoSave() {
	if c.AutoSave.IntervalMinutes == 0 {
		c.AutoSave.IntervalMinutes = defaultAutoSaveInterval
	}
}

func (c *Config) normalizeLogging() {
	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch format {
	case "", "text":
		format = defaultLogFormat
	}
	c.Logging.Format = format

	level := strings.ToLower(strings.TrimSpace(c.Logging.Level))
	switch level {
	case "":
		level = defaultLogLevel
	case "warning":
		level = "warn"
	}
	c.Logging.Level = level
}
