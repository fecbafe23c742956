// Package airwaycase defines the airway case record and its JSON wire format.
//
// A Case is created with a fresh UUID and a fixed case type; both are
// immutable. Clinical data lives in Details and is changed only through
// Case.Edit, which bumps the updated timestamp. The file path a case was read
// from is storage metadata: it is never serialized and has to be re-applied by
// whoever loads the file.
package airwaycase
