// Package textutil provides the small text helpers shared by the case store
// and the command line: filename sanitization for exports, patient display
// names, and token fingerprints used to rank case search results.
package textutil
