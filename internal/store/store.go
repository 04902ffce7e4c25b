package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/roach88/days/internal/event"
)

// ErrDirNotFound is returned when the directory holding the backing file
// does not exist. The directory is never created implicitly.
var ErrDirNotFound = errors.New("backing directory not found")

// Row is an event together with the 1-based line it was read from.
type Row struct {
	Line int `json:"line"`
	event.Event
}

// LineError describes a data line that could not be decoded.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Snapshot is the result of one Load.
type Snapshot struct {
	Rows    []Row
	Skipped []*LineError
}

// Empty reports whether the file held no decodable events.
func (s *Snapshot) Empty() bool {
	return len(s.Rows) == 0
}

// Events returns the loaded events in file order.
func (s *Snapshot) Events() []event.Event {
	out := make([]event.Event, len(s.Rows))
	for i, r := range s.Rows {
		out[i] = r.Event
	}
	return out
}

// Store reads and writes a single backing file.
type Store struct {
	path   string
	logger *slog.Logger

	// rename replaces the original during Rewrite (os.Rename outside tests).
	rename func(oldpath, newpath string) error

	// syncDir persists the rename (syncDirectory outside tests).
	syncDir func(dir string) error

	// write performs the single write of Append.
	write func(f *os.File, p []byte) (int, error)

	cached *Snapshot
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load warnings and mutation summaries.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New returns a Store for the file at path. No I/O is performed.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:    path,
		logger:  slog.Default(),
		rename:  os.Rename,
		syncDir: syncDirectory,
		write:   (*os.File).Write,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// invalidate drops the cached snapshot after a mutation.
func (s *Store) invalidate() {
	s.cached = nil
}

func (s *Store) checkDir() error {
	dir := filepath.Dir(s.path)
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s (please create it)", ErrDirNotFound, dir)
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrDirNotFound, dir)
	}
	return nil
}
