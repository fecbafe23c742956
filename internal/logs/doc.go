// Package logs reads the tail of the daily log files written by the logging
// package and follows them as new lines are appended.
//
// Last reads backwards-in-effect by scanning the file once and keeping a ring
// of the final lines. Follow watches the log directory with fsnotify and
// streams complete lines written after a byte offset; a trailing partial line
// is held back until its newline arrives.
package logs
