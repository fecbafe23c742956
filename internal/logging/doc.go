// Package logging builds the slog loggers used by the safeairway command and
// its stores.
//
// Two handlers are available: a compact console format for terminals and a
// JSON format for machine consumption. NewFromConfig mirrors output into a
// dated file under the configured log directory, and PruneFromConfig prunes
// those files once they pass the retention window.
package logging
