package casestore

import "errors"

var (
	// ErrIO marks filesystem failures: unreadable, unwritable, or undeletable files.
	ErrIO = errors.New("case storage I/O failure")
	// ErrParse marks case files whose content is not a valid case record.
	ErrParse = errors.New("case file parse failure")
	// ErrNotInitialized is returned by directory-relative operations before
	// Initialize succeeds.
	ErrNotInitialized = errors.New("case store not initialized")
)
