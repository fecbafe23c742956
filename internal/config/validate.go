package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateAutoSave(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if c.Display.FontSize < 6 || c.Display.FontSize > 72 {
		return fmt.Errorf("display.font_size must be between 6 and 72, got %d", c.Display.FontSize)
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.BaseDir == "" {
		return errors.New("paths.base_dir must be set")
	}
	if c.Paths.SettingsPath == "" {
		return errors.New("paths.settings_path must be set")
	}
	return nil
}

func (c *Config) validateAutoSave() error {
	minutes := c.AutoSave.IntervalMinutes
	if minutes < 1 || minutes > maxAutoSaveIntervalMinutes {
		return fmt.Errorf("autosave.interval_minutes must be between 1 and %d, got %d", maxAutoSaveIntervalMinutes, minutes)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	if c.Logging.RetentionDays < 0 {
		return errors.New("logging.retention_days must be zero or positive")
	}
	return nil
}
