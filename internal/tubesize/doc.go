// Package tubesize holds the reference tables for standard pediatric
// tracheostomy tubes and the arithmetic derived from them.
//
// Tables are keyed by manufacturer family and nominal size (the inner
// diameter in millimetres, e.g. 3.5) and yield outer diameters, shaft lengths,
// recommended suction catheter sizes, and ETT suction depths. Sizes are matched
// exactly: there is no interpolation between adjacent sizes and no nearest-size
// fallback. Every lookup returns an ok flag; a miss means the reference value
// is not available for that tube and must never be rendered as a measurement.
//
// The tables are populated once per process on first use and are read-only
// afterwards, so the package is safe for concurrent callers.
package tubesize
