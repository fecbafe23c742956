package config

const (
	defaultSettingsPath        = "~/.config/safeairway/settings.db"
	defaultLogDir              = "~/.local/share/safeairway/logs"
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
	defaultLogRetentionDays    = 30
	defaultAutoSaveEnabled     = true
	defaultAutoSaveInterval    = 5
	defaultFontSize            = 12
	maxAutoSaveIntervalMinutes = 24 * 60

	baseDirEnv = "SAFEAIRWAY_BASE_DIR"
	appDirName = "SafeAirway"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			BaseDir:      defaultBaseDir(),
			SettingsPath: defaultSettingsPath,
			LogDir:       defaultLogDir,
		},
		AutoSave: AutoSave{
			Enabled:         defaultAutoSaveEnabled,
			IntervalMinutes: defaultAutoSaveInterval,
		},
		Display: Display{
			FontSize: defaultFontSize,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
