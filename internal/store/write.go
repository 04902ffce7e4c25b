package store

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/roach88/days/internal/event"
	"github.com/roach88/days/internal/filter"
)

// Append adds e as the last line of the backing file.
//
// A missing file is created with its header (the directory must exist).
// If the current last line lacks a terminator one is added first, so the
// new record always starts on its own line. Header, separator and record
// go out in one write call, followed by a sync.
func (s *Store) Append(ctx context.Context, e event.Event) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.checkDir(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open events file for append: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close events file: %w", closeErr)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat events file: %w", err)
	}

	line := event.Encode(e)
	payload := make([]byte, 0, len(event.Header)+len(line)+3)
	if info.Size() == 0 {
		payload = append(payload, event.Header+"\n"...)
	} else {
		last := make([]byte, 1)
		if _, err := f.ReadAt(last, info.Size()-1); err != nil {
			return fmt.Errorf("read events file: %w", err)
		}
		if last[0] != '\n' {
			payload = append(payload, '\n')
		}
	}
	payload = append(payload, line+"\n"...)

	if _, err := s.write(f, payload); err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync events file: %w", err)
	}

	s.invalidate()
	s.logger.Debug("event appended", "path", s.path, "line", line)
	return nil
}

// Rewrite removes every record matching p and returns the removed rows in
// file order.
//
// The header, blank lines, undecodable lines and non-matching records are
// copied to a sibling temp file verbatim. The temp file is flushed, synced
// and closed, then renamed over the original. If anything fails before the
// rename the original file is left as it was and the temp file is removed.
//
// When nothing matches the original file is not touched at all.
func (s *Store) Rewrite(ctx context.Context, p filter.Predicate) (removed []Row, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.checkDir(); err != nil {
		return nil, err
	}

	src, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open events file: %w", err)
	}
	defer src.Close()

	srcInfo, err := src.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat events file: %w", err)
	}

	tmpPath := filepath.Join(filepath.Dir(s.path),
		"."+filepath.Base(s.path)+"."+uuid.Must(uuid.NewV7()).String()+".tmp")
	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, srcInfo.Mode().Perm())
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}

	// Ensure we clean up temp file unless it replaced the original.
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	w := bufio.NewWriter(tmp)
	err = scanLines(src, func(n int, raw []byte) error {
		e, kind, _ := classify(n, raw)
		if kind == lineRecord && filter.Match(p, e) {
			removed = append(removed, Row{Line: n, Event: e})
			return nil
		}
		_, werr := w.Write(raw)
		return werr
	})
	if err != nil {
		return nil, fmt.Errorf("copy events: %w", err)
	}

	if len(removed) == 0 {
		s.logger.Debug("rewrite matched nothing", "path", s.path, "filter", filter.Describe(p))
		return nil, nil
	}

	// Flush and close before rename.
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("flush temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return nil, fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}
	src.Close()

	if err := s.rename(tmpPath, s.path); err != nil {
		return nil, fmt.Errorf("replace events file: %w", err)
	}
	committed = true

	// Persist the rename itself. The new content is already in place, so a
	// failure here is only logged.
	if err := s.syncDir(filepath.Dir(s.path)); err != nil {
		s.logger.Warn("failed to sync data directory", "dir", filepath.Dir(s.path), "error", err)
	}

	s.invalidate()
	s.logger.Info("events removed", "path", s.path, "count", len(removed), "filter", filter.Describe(p))
	return removed, nil
}

// syncDirectory fsyncs dir so a rename inside it survives a crash.
func syncDirectory(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.Sync()
}
