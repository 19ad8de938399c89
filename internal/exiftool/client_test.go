package exiftool

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type fakeExecutor struct {
	output []byte
	err    error

	binary string
	args   []string
}

func (f *fakeExecutor) Run(ctx context.Context, binary string, args []string) ([]byte, error) {
	f.binary = binary
	f.args = append([]string(nil), args...)
	return f.output, f.err
}

const sampleOutput = `ExifTool Version Number         : 12.40
File Name                       : IMG_1234.jpg
Create Date                     : 2021:05:09 14:03:22
Date/Time Original              : 2021:05:09 14:03:20
Aperture                        : 1.8
`

func TestExtractParsesKeyValueLines(t *testing.T) {
	fake := &fakeExecutor{output: []byte(sampleOutput)}
	client, err := New("exiftool", WithExecutor(fake))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	md, err := client.Extract(context.Background(), "/photos/IMG_1234.jpg")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	want := Metadata{
		"ExifTool Version Number": "12.40",
		"File Name":               "IMG_1234.jpg",
		"Create Date":             "2021:05:09 14:03:22",
		"Date/Time Original":      "2021:05:09 14:03:20",
		"Aperture":                "1.8",
	}
	if diff := cmp.Diff(want, md); diff != "" {
		t.Fatalf("metadata mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractPassesDateFormatAndPath(t *testing.T) {
	fake := &fakeExecutor{output: []byte(sampleOutput)}
	client, err := New("exiftool", WithExecutor(fake))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := client.Extract(context.Background(), "/photos/a.jpg"); err != nil {
		t.Fatalf("extract: %v", err)
	}

	want := []string{"-d", DateFormat, "/photos/a.jpg"}
	if diff := cmp.Diff(want, fake.args); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractToolFailureYieldsErrNoMetadata(t *testing.T) {
	fake := &fakeExecutor{err: errors.New("exit status 1")}
	client, err := New("exiftool", WithExecutor(fake))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := client.Extract(context.Background(), "/photos/broken.jpg"); !errors.Is(err, ErrNoMetadata) {
		t.Fatalf("expected ErrNoMetadata, got %v", err)
	}
}

func TestExtractEmptyOutputYieldsErrNoMetadata(t *testing.T) {
	fake := &fakeExecutor{output: nil}
	client, err := New("exiftool", WithExecutor(fake))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := client.Extract(context.Background(), "/photos/empty.jpg"); !errors.Is(err, ErrNoMetadata) {
		t.Fatalf("expected ErrNoMetadata, got %v", err)
	}
}

func TestNewMissingBinaryFails(t *testing.T) {
	if _, err := New("definitely-not-an-installed-binary"); err == nil {
		t.Fatal("expected lookup error for missing binary")
	}
}

func TestParseOutputSkipsNoise(t *testing.T) {
	md := parseOutput([]byte("garbage line without separator\nKey : Value\n\n"))
	if len(md) != 1 || md["Key"] != "Value" {
		t.Fatalf("unexpected metadata: %#v", md)
	}
}

func TestParseOutputKeepsFirstColonSplit(t *testing.T) {
	md := parseOutput([]byte("Create Date : 2021:05:09 14:03:22\n"))
	if md["Create Date"] != "2021:05:09 14:03:22" {
		t.Fatalf("value split incorrectly: %q", md["Create Date"])
	}
}
