package resolve

import (
	"errors"
	"testing"
	"time"

	"picsync/internal/exiftool"
)

func TestResolvePicksFirstPreferredField(t *testing.T) {
	r := New([]string{"Date/Time Original", "Create Date"}, WithLocation(time.UTC))

	md := exiftool.Metadata{
		"Create Date":        "2020:01:02 03:04:05",
		"Date/Time Original": "2019:12:31 23:59:58",
	}

	ts, field, err := r.Resolve(md)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if field != "Date/Time Original" {
		t.Fatalf("resolved from %q, want Date/Time Original", field)
	}
	want := time.Date(2019, 12, 31, 23, 59, 58, 0, time.UTC)
	if !ts.Equal(want) {
		t.Fatalf("ts = %v, want %v", ts, want)
	}
}

func TestResolveFallsBackInPreferenceOrder(t *testing.T) {
	r := New([]string{"Date/Time Original", "Create Date"}, WithLocation(time.UTC))

	md := exiftool.Metadata{
		"Create Date": "2021:05:09 14:03:22",
		"File Name":   "a.jpg",
	}

	ts, field, err := r.Resolve(md)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if field != "Create Date" {
		t.Fatalf("resolved from %q, want Create Date", field)
	}
	if ts.Month() != time.May || ts.Day() != 9 {
		t.Fatalf("unexpected ts %v", ts)
	}
}

func TestResolveMatchesFieldNamesCaseInsensitively(t *testing.T) {
	r := New([]string{"create date"}, WithLocation(time.UTC))

	md := exiftool.Metadata{"Create Date": "2021:05:09 14:03:22"}

	if _, field, err := r.Resolve(md); err != nil {
		t.Fatalf("resolve: %v", err)
	} else if field != "create date" {
		t.Fatalf("resolved from %q", field)
	}
}

func TestResolveSkipsUnparseableValues(t *testing.T) {
	r := New([]string{"Date/Time Original", "Create Date"}, WithLocation(time.UTC))

	md := exiftool.Metadata{
		"Date/Time Original": "0000:00:00 00:00:00",
		"Create Date":        "2021:05:09 14:03:22",
	}

	_, field, err := r.Resolve(md)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if field != "Create Date" {
		t.Fatalf("resolved from %q, want Create Date", field)
	}
}

func TestResolveNoDateField(t *testing.T) {
	r := New([]string{"Create Date"})

	md := exiftool.Metadata{"File Name": "a.jpg"}
	if _, _, err := r.Resolve(md); !errors.Is(err, ErrNoDateField) {
		t.Fatalf("expected ErrNoDateField, got %v", err)
	}

	if _, _, err := r.Resolve(nil); !errors.Is(err, ErrNoDateField) {
		t.Fatalf("expected ErrNoDateField for empty mapping, got %v", err)
	}
}

func TestResolveUsesConfiguredLocation(t *testing.T) {
	zone := time.FixedZone("plus2", 2*3600)
	r := New([]string{"Create Date"}, WithLocation(zone))

	md := exiftool.Metadata{"Create Date": "2021:05:09 14:03:22"}
	ts, _, err := r.Resolve(md)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	_, offset := ts.Zone()
	if offset != 2*3600 {
		t.Fatalf("zone offset = %d, want %d", offset, 2*3600)
	}
}

func TestNativeCreatedAtMissingFile(t *testing.T) {
	if _, ok := NativeCreatedAt("/does/not/exist.jpg", time.UTC); ok {
		t.Fatal("expected not-found for missing file")
	}
}
