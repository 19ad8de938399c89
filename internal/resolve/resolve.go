package resolve

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"picsync/internal/exiftool"
)

// Layout is the timestamp layout produced by exiftool under the -d format
// the client passes. Values carry no zone and are interpreted locally.
const Layout = "2006:01:02 15:04:05"

// ErrNoDateField indicates that none of the preferred fields were present
// in the metadata mapping (or none carried a parseable value).
var ErrNoDateField = errors.New("no recognized date field")

// Resolver selects a creation date from a metadata mapping using an
// ordered preference list of field names. Matching ignores case: exiftool
// label casing differs between tag families and versions.
type Resolver struct {
	fields   []string
	folded   []string
	location *time.Location
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLocation overrides the zone used to interpret parsed timestamps.
func WithLocation(loc *time.Location) Option {
	return func(r *Resolver) {
		if loc != nil {
			r.location = loc
		}
	}
}

// New constructs a Resolver for the given field preference list.
func New(fields []string, opts ...Option) *Resolver {
	caser := cases.Fold()
	r := &Resolver{location: time.Local}
	for _, field := range fields {
		trimmed := strings.TrimSpace(field)
		if trimmed == "" {
			continue
		}
		r.fields = append(r.fields, trimmed)
		r.folded = append(r.folded, caser.String(trimmed))
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Fields returns the configured preference list.
func (r *Resolver) Fields() []string {
	return append([]string(nil), r.fields...)
}

// Resolve returns the creation date for the metadata mapping along with
// the field name that supplied it. Fields are tried strictly in
// preference order; a present-but-unparseable value falls through to the
// next field.
func (r *Resolver) Resolve(md exiftool.Metadata) (time.Time, string, error) {
	if len(md) == 0 {
		return time.Time{}, "", ErrNoDateField
	}

	caser := cases.Fold()
	byFoldedKey := make(map[string]string, len(md))
	for key, value := range md {
		byFoldedKey[caser.String(strings.TrimSpace(key))] = value
	}

	for i, folded := range r.folded {
		value, ok := byFoldedKey[folded]
		if !ok {
			continue
		}
		ts, err := parseValue(value, r.location)
		if err != nil {
			continue
		}
		return ts, r.fields[i], nil
	}

	return time.Time{}, "", ErrNoDateField
}

func parseValue(value string, loc *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty value")
	}
	ts, err := time.ParseInLocation(Layout, trimmed, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q: %w", value, err)
	}
	return ts, nil
}
