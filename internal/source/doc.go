// Package source parses foot pressure mat export documents into grids.
//
// The exporter writes one JSON object per capture with a RawPressureByRows
// field: a map from row identifier strings ("row_0", "row_1", ...) to
// comma-separated integer strings, one integer per sensor cell. Row
// identifiers carry their row index after the final underscore and must be
// ordered numerically by that index, never lexicographically ("row_10"
// follows "row_9", not "row_1").
//
// All validation happens here, before the analysis pipeline runs: a
// missing or empty field, a malformed row identifier, a non-numeric or
// negative cell, or rows of differing lengths are reported as errors with
// a descriptive reason.
package source
