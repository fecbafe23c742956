// Package preflight provides the storage health checks behind the
// "safeairway doctor" command.
//
// Each check returns a Result instead of an error so the command can print
// every finding in one pass rather than stopping at the first failure.
package preflight
