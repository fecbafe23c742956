// Package settings persists user preferences and the recent-case list in a
// small SQLite key/value database.
//
// Values are stored as text. Typed accessors fall back to the configured
// defaults when a key has never been written, so a fresh database behaves
// exactly like the shipped configuration.
package settings
