// Package testutil holds helpers shared by tests across packages.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// EventsFile is the backing file name used by test data directories.
const EventsFile = "events.csv"

// CSV joins lines with "\n" and terminates the last one.
//
//	testutil.CSV("date,category,description", "2024-01-01,work,standup")
func CSV(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// SeedDir creates a temp data directory holding an events file with content
// and returns the directory and the file path.
func SeedDir(t *testing.T, content string) (dir, path string) {
	t.Helper()
	dir = t.TempDir()
	path = filepath.Join(dir, EventsFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("seed events file: %v", err)
	}
	return dir, path
}

// ReadFile returns the content of path, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
