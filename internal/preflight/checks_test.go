package preflight

import (
	"os"
	"path/filepath"
	"testing"

	"picsync/internal/config"
)

func TestCheckBinary(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	if err := os.WriteFile(present, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	if res := CheckBinary("present", present); !res.Passed {
		t.Fatalf("expected pass, got %+v", res)
	}
	if res := CheckBinary("missing", "clearly-not-present-binary"); res.Passed {
		t.Fatalf("expected failure, got %+v", res)
	}
	if res := CheckBinary("empty", "  "); res.Passed {
		t.Fatalf("expected failure for empty command, got %+v", res)
	}
}

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()
	if res := CheckDirectoryAccess("dir", dir); !res.Passed {
		t.Fatalf("expected pass, got %+v", res)
	}
	if res := CheckDirectoryAccess("dir", filepath.Join(dir, "absent")); res.Passed {
		t.Fatalf("expected failure for missing dir, got %+v", res)
	}

	file := filepath.Join(dir, "plain")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if res := CheckDirectoryAccess("dir", file); res.Passed {
		t.Fatalf("expected failure for non-directory, got %+v", res)
	}
}

func TestCheckFreeSpace(t *testing.T) {
	res := CheckFreeSpace("space", t.TempDir())
	if !res.Passed {
		t.Fatalf("expected pass, got %+v", res)
	}
}

func TestRunCoversConfiguredChecks(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.OutputDir = t.TempDir()

	results := Run(&cfg, []string{t.TempDir()})
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d: %+v", len(results), results)
	}
	if results[0].Name != "exiftool" {
		t.Fatalf("first check should be exiftool, got %+v", results[0])
	}
}
