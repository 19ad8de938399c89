// Package testsupport provides filesystem fixtures shared by package tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// WriteFileString fills the target path with the given contents, creating
// parent directories as needed.
func WriteFileString(t testing.TB, path, contents string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteFileWithModTime writes contents and pins the file's atime/mtime.
func WriteFileWithModTime(t testing.TB, path, contents string, modTime time.Time) {
	t.Helper()

	WriteFileString(t, path, contents)
	if err := os.Chtimes(path, modTime, modTime); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
}

// RequireFileContent fails the test unless path holds exactly contents.
func RequireFileContent(t testing.TB, path, contents string) {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if string(data) != contents {
		t.Fatalf("content of %s = %q, want %q", path, data, contents)
	}
}
