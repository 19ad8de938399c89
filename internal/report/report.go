// Package report accumulates per-run counters for the end-of-run summary.
package report

import (
	"strconv"
	"time"
)

// Summary tallies what happened to the files of one invocation.
type Summary struct {
	Examined          int
	Updated           int
	Moved             int
	DuplicatesSkipped int
	DuplicatesDeleted int
	SkippedNoMetadata int
	SkippedNoDate     int
	Errors            int

	started time.Time
}

// NewSummary starts a summary clock.
func NewSummary() *Summary {
	return &Summary{started: time.Now()}
}

// Elapsed returns the wall time since the summary was created.
func (s *Summary) Elapsed() time.Duration {
	if s.started.IsZero() {
		return 0
	}
	return time.Since(s.started)
}

// Rows renders the counters as label/value pairs for table output.
func (s *Summary) Rows() [][]string {
	return [][]string{
		{"examined", strconv.Itoa(s.Examined)},
		{"timestamps updated", strconv.Itoa(s.Updated)},
		{"moved", strconv.Itoa(s.Moved)},
		{"duplicates skipped", strconv.Itoa(s.DuplicatesSkipped)},
		{"duplicates deleted", strconv.Itoa(s.DuplicatesDeleted)},
		{"skipped (no metadata)", strconv.Itoa(s.SkippedNoMetadata)},
		{"skipped (no date field)", strconv.Itoa(s.SkippedNoDate)},
		{"errors", strconv.Itoa(s.Errors)},
	}
}
