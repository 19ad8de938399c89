package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultHasUsableValues(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.Exiftool.Binary != "exiftool" {
		t.Fatalf("unexpected exiftool binary %q", cfg.Exiftool.Binary)
	}
	if len(cfg.Dates.Fields) == 0 {
		t.Fatal("expected default date fields")
	}
	if cfg.Dates.Fields[0] != "Date/Time Original" {
		t.Fatalf("unexpected first date field %q", cfg.Dates.Fields[0])
	}
}

func TestLoadAppliesFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "picsync.toml")
	content := `
[paths]
output_dir = "` + filepath.Join(dir, "sorted") + `"

[dates]
fields = ["Create Date"]
native_fallback = true

[sort]
md5 = true
delete_matching = true

[scan]
extensions = ["JPG", ".png"]

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be read")
	}
	if resolved != path {
		t.Fatalf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.Paths.OutputDir != filepath.Join(dir, "sorted") {
		t.Fatalf("output dir = %q", cfg.Paths.OutputDir)
	}
	if diff := cmp.Diff([]string{"Create Date"}, cfg.Dates.Fields); diff != "" {
		t.Fatalf("date fields mismatch (-want +got):\n%s", diff)
	}
	if !cfg.Dates.NativeFallback {
		t.Fatal("expected native fallback enabled")
	}
	if !cfg.Sort.MD5 || !cfg.Sort.DeleteMatching {
		t.Fatalf("sort settings not applied: %+v", cfg.Sort)
	}
	if diff := cmp.Diff([]string{".jpg", ".png"}, cfg.Scan.Extensions); diff != "" {
		t.Fatalf("extensions mismatch (-want +got):\n%s", diff)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging settings not applied: %+v", cfg.Logging)
	}
}

func TestLoadRejectsDeleteMatchingWithoutMD5(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "picsync.toml")
	content := `
[sort]
delete_matching = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	} else if !strings.Contains(err.Error(), "delete_matching") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadRejectsUnknownLogFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "picsync.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected validation error for log format")
	}
}

func TestLoadMissingExplicitPathUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "absent.toml")

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if exists {
		t.Fatal("expected no config file to be read")
	}
	if resolved != path {
		t.Fatalf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.Exiftool.Binary != "exiftool" {
		t.Fatalf("defaults not applied: %+v", cfg.Exiftool)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	got, err := ExpandPath("~/pictures")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if got != filepath.Join(home, "pictures") {
		t.Fatalf("expanded to %q", got)
	}
}

func TestSampleConfigParses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.toml")
	if err := os.WriteFile(path, []byte(SampleConfig()), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	if _, _, _, err := Load(path); err != nil {
		t.Fatalf("sample config should load cleanly: %v", err)
	}
}
