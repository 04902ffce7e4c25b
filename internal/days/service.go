package days

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/roach88/days/internal/clock"
	"github.com/roach88/days/internal/event"
	"github.com/roach88/days/internal/filter"
	"github.com/roach88/days/internal/store"
)

// Service executes commands against one store.
type Service struct {
	store  *store.Store
	clock  clock.Clock
	logger *slog.Logger
}

// NewService creates a Service. The clock should be frozen for the run
// (see clock.Freeze) so every operation shares one notion of today.
func NewService(st *store.Store, clk clock.Clock, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: st, clock: clk, logger: logger}
}

// Store returns the service's store.
func (s *Service) Store() *store.Store {
	return s.store
}

// Today returns the run's current date.
func (s *Service) Today() event.Date {
	return s.clock.Today()
}

// Execute runs cmd.
func (s *Service) Execute(ctx context.Context, cmd Command) (*Result, error) {
	switch c := cmd.(type) {
	case List:
		return s.list(ctx, c)
	case Add:
		return s.add(ctx, c)
	case Delete:
		return s.delete(ctx, c)
	default:
		return nil, fmt.Errorf("unsupported command type: %T", cmd)
	}
}

// Select loads the store and returns the rows matching p in file order.
func (s *Service) Select(ctx context.Context, p filter.Predicate) (*Result, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if snap.Empty() {
		return &Result{Empty: true}, nil
	}

	var rows []store.Row
	for _, r := range snap.Rows {
		if filter.Match(p, r.Event) {
			rows = append(rows, r)
		}
	}
	s.logger.Debug("events selected", "filter", filter.Describe(p), "matched", len(rows), "total", len(snap.Rows))
	return &Result{Rows: rows}, nil
}

func (s *Service) list(ctx context.Context, c List) (*Result, error) {
	return s.Select(ctx, c.Filter)
}

func (s *Service) add(ctx context.Context, c Add) (*Result, error) {
	e := event.Event{
		Category:    event.Normalize(c.Category),
		Description: event.Normalize(c.Description),
	}
	if c.Date != nil {
		e.Date = *c.Date
	} else {
		e.Date = s.clock.Today()
	}
	if err := Validate(e); err != nil {
		return nil, err
	}

	if err := s.store.Append(ctx, e); err != nil {
		return nil, fmt.Errorf("add event: %w", err)
	}
	s.logger.Info("event added", "date", e.Date, "category", e.Category, "description", e.Description)
	return &Result{Added: &e}, nil
}

func (s *Service) delete(ctx context.Context, c Delete) (*Result, error) {
	pred := c.Filter
	if pred == nil {
		return nil, usageErrorf("delete requires a filter")
	}

	// Dry-run and real delete both start from a successful load so that an
	// empty or missing store is reported the same way.
	preview, err := s.Select(ctx, pred)
	if err != nil {
		return nil, err
	}
	if c.DryRun || preview.Empty {
		preview.DryRun = c.DryRun
		return preview, nil
	}

	removed, err := s.store.Rewrite(ctx, pred)
	if err != nil {
		return nil, fmt.Errorf("delete events: %w", err)
	}
	return &Result{Rows: removed}, nil
}

// Validate applies the add policy: a date is required, the description
// must not be blank, no field may contain a line break and the category may
// not contain the delimiter.
func Validate(e event.Event) error {
	if e.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidEvent)
	}
	if strings.TrimSpace(e.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidEvent)
	}
	if strings.ContainsAny(e.Category, "\r\n") || strings.ContainsAny(e.Description, "\r\n") {
		return fmt.Errorf("%w: line breaks are not allowed", ErrInvalidEvent)
	}
	if strings.Contains(e.Category, event.Delimiter) {
		return fmt.Errorf("%w: category may not contain %q", ErrInvalidEvent, event.Delimiter)
	}
	return nil
}
