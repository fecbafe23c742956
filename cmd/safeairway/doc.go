// Package main implements the safeairway command line tool.
//
// The CLI manages airway case records on disk: creating, editing, listing,
// exporting and importing cases, printing the bedside card for a case, and
// answering tube catalog lookups (outer diameter, suction catheter size and
// insertion depths). A long-running `session` command keeps one case open,
// auto-saving it on the configured interval while reporting changes made to
// the case directories by other programs.
//
// Commands share a lazily loaded configuration through commandContext; the
// settings database and case store are opened per command and closed when it
// returns.
package main
