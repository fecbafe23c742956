// Package config loads, normalizes, and validates safeairway configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the SAFEAIRWAY_BASE_DIR environment fallback. Always
// obtain settings through this package so the case store, settings database,
// and logger agree on where files live.
package config
