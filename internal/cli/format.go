package cli

import (
	"fmt"

	"github.com/roach88/days/internal/event"
	"github.com/roach88/days/internal/store"
)

// NoEventsMessage is printed when the events file holds no events.
const NoEventsMessage = "No events found"

// FormatEvent renders e relative to today:
//
//	2024-03-12: dentist (health) - in 2 days
func FormatEvent(e event.Event, today event.Date) string {
	return fmt.Sprintf("%s: %s (%s) - %s", e.Date, e.Description, e.Category, formatDelta(today.DaysUntil(e.Date)))
}

func formatDelta(delta int) string {
	switch {
	case delta < 0:
		return fmt.Sprintf("%d days ago", -delta)
	case delta > 0:
		return fmt.Sprintf("in %d days", delta)
	default:
		return "today"
	}
}

// EventView is the JSON form of one event.
type EventView struct {
	Line        int        `json:"line,omitempty"`
	Date        event.Date `json:"date"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Days        int        `json:"days"` // signed distance from today
}

func newEventView(line int, e event.Event, today event.Date) EventView {
	return EventView{
		Line:        line,
		Date:        e.Date,
		Category:    e.Category,
		Description: e.Description,
		Days:        today.DaysUntil(e.Date),
	}
}

func eventViews(rows []store.Row, today event.Date) []EventView {
	views := make([]EventView, 0, len(rows))
	for _, r := range rows {
		views = append(views, newEventView(r.Line, r.Event, today))
	}
	return views
}

func formatRows(prefix string, rows []store.Row, today event.Date) []string {
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, prefix+FormatEvent(r.Event, today))
	}
	return lines
}
