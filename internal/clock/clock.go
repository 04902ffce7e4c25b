// Package clock supplies the current date.
//
// A run reads the date exactly once, when the command is set up, and hands
// a Fixed clock holding that date to everything downstream. This keeps every
// "today", "in N days" and default add date within one invocation consistent
// even if the run straddles midnight.
package clock

import (
	"time"

	"github.com/roach88/days/internal/event"
)

// Clock reports the current calendar date.
type Clock interface {
	Today() event.Date
}

// System reads the wall clock in Location (time.Local when nil).
type System struct {
	Location *time.Location
}

// Today returns the wall-clock date in the configured location.
func (s System) Today() event.Date {
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	return event.DateOf(time.Now().In(loc))
}

// Fixed always returns the same date.
type Fixed struct {
	Date event.Date
}

// Today returns the fixed date.
func (f Fixed) Today() event.Date {
	return f.Date
}

// Freeze samples c once and returns a Fixed clock holding the result.
func Freeze(c Clock) Fixed {
	return Fixed{Date: c.Today()}
}
