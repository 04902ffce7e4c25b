package store

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Load reads every record of the backing file.
//
// Lines that fail to decode are logged, collected in Snapshot.Skipped and
// otherwise ignored. A file with no decodable records yields an empty
// Snapshot, not an error. Errors are returned only when the directory is
// missing or the file cannot be read.
//
// The snapshot is cached until the next Append or Rewrite.
func (s *Store) Load(ctx context.Context) (*Snapshot, error) {
	if s.cached != nil {
		return s.cached, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.checkDir(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open events file: %w", err)
	}
	defer f.Close()

	snap := &Snapshot{}
	err = scanLines(f, func(n int, raw []byte) error {
		e, kind, cerr := classify(n, raw)
		switch kind {
		case lineRecord:
			snap.Rows = append(snap.Rows, Row{Line: n, Event: e})
		case lineInvalid:
			var lerr *LineError
			if errors.As(cerr, &lerr) {
				snap.Skipped = append(snap.Skipped, lerr)
				s.logger.Warn("skipping malformed line",
					"path", s.path, "line", lerr.Line, "text", lerr.Text, "error", lerr.Err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read events file: %w", err)
	}

	s.logger.Debug("events loaded", "path", s.path, "events", len(snap.Rows), "skipped", len(snap.Skipped))
	s.cached = snap
	return snap, nil
}
