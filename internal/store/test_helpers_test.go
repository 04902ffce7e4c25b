package store

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/roach88/days/internal/testutil"
)

const header = "date,category,description"

// createTestStore seeds a temp data dir with content and returns a store
// over it together with the captured log output.
func createTestStore(t *testing.T, content string) (*Store, *bytes.Buffer) {
	t.Helper()
	_, path := testutil.SeedDir(t, content)
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(path, WithLogger(logger)), logs
}
