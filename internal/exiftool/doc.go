// Package exiftool wraps per-file invocations of the external exiftool
// binary and parses its textual output into a key/value metadata mapping.
package exiftool
