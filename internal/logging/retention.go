package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"safeairway/internal/config"
)

const logDayLayout = "2006-01-02"

// LogFilePath returns the dated log file for the given day.
func LogFilePath(dir string, day time.Time) string {
	return filepath.Join(dir, logFilePrefix+day.Format(logDayLayout)+logFileSuffix)
}

// logDay extracts the day encoded in a log file name.
func logDay(name string) (time.Time, bool) {
	if !strings.HasPrefix(name, logFilePrefix) || !strings.HasSuffix(name, logFileSuffix) {
		return time.Time{}, false
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, logFilePrefix), logFileSuffix)
	day, err := time.ParseInLocation(logDayLayout, stamp, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

// PruneFromConfig applies the configured retention to the log directory.
// Age comes from the date in the file name, so today's file is never removed
// and unrelated files are left alone.
func PruneFromConfig(logger *slog.Logger, cfg *config.Config) {
	if cfg == nil || cfg.Paths.LogDir == "" {
		return
	}
	pruneDatedLogs(logger, cfg.Paths.LogDir, cfg.Logging.RetentionDays, time.Now())
}

// pruneDatedLogs removes log files dated more than retentionDays before now.
// A retentionDays value of 0 keeps everything.
func pruneDatedLogs(logger *slog.Logger, dir string, retentionDays int, now time.Time) int {
	if retentionDays <= 0 {
		return 0
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	y, m, d := now.AddDate(0, 0, -retentionDays).Date()
	cutoff := time.Date(y, m, d, 0, 0, 0, 0, time.Local)

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		day, ok := logDay(entry.Name())
		if !ok || !day.Before(cutoff) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil {
			WarnWithContext(logger, "log retention remove failed; file remains", "log_retention_failed",
				Path(path),
				Error(err),
				String(FieldErrorHint, "check file permissions and paths.log_dir ownership"),
				String(FieldImpact, "old log file remains on disk"),
			)
			continue
		}
		removed++
		if logger != nil {
			logger.Debug("log pruned", Path(path), String(FieldEventType, "log_pruned"))
		}
	}
	return removed
}
