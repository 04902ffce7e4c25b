package days

import (
	"github.com/roach88/days/internal/event"
	"github.com/roach88/days/internal/filter"
	"github.com/roach88/days/internal/store"
)

// Command is one parsed subcommand. It is a sealed interface; the variants
// are List, Add and Delete.
type Command interface {
	commandNode() // Marker method - seals interface to this package
}

// List selects events for display.
type List struct {
	Filter filter.Predicate
}

func (List) commandNode() {}

// Add appends one event. A nil Date means today.
type Add struct {
	Date        *event.Date
	Category    string
	Description string
}

func (Add) commandNode() {}

// Delete removes the events selected by Filter, or only reports them when
// DryRun is set.
type Delete struct {
	Filter filter.Predicate
	DryRun bool
}

func (Delete) commandNode() {}

// Result is the outcome of Execute.
type Result struct {
	// Rows holds the listed, deleted or would-be-deleted events in file order.
	Rows []store.Row

	// Added is the appended event (Add only).
	Added *event.Event

	// Empty is set when the store held no events at all. It is a valid
	// outcome, not an error.
	Empty bool

	// DryRun echoes Delete.DryRun.
	DryRun bool
}
