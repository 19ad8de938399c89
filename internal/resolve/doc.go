// Package resolve selects a creation date from extracted file metadata
// using an ordered preference list of field names.
package resolve
