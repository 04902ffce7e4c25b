package testutil

import (
	"github.com/roach88/days/internal/clock"
	"github.com/roach88/days/internal/event"
)

// DefaultToday is the date tests pretend it is unless they say otherwise.
const DefaultToday = "2024-03-10"

// FixedClock returns a clock stuck on date (YYYY-MM-DD).
// An empty date uses DefaultToday.
func FixedClock(date string) clock.Fixed {
	if date == "" {
		date = DefaultToday
	}
	return clock.Fixed{Date: event.MustParseDate(date)}
}
