package export

import (
	"fmt"
	"io"
	"strconv"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/roach88/days/internal/event"
	"github.com/roach88/days/internal/store"
)

// ProductID identifies days as the producer of exported calendars.
const ProductID = "-//roach88//days//EN"

// uidNamespace scopes the name-based UIDs of exported events.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/roach88/days"))

// ICS writes rows as an iCalendar document. stamp is used as DTSTAMP.
//
// UIDs are derived from each event's encoded line, with a counter for
// identical duplicates, so exporting the same data twice yields the same
// UIDs and calendar apps update rather than duplicate.
func ICS(w io.Writer, rows []store.Row, stamp time.Time) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ProductID)

	seen := make(map[string]int, len(rows))
	for _, r := range rows {
		line := event.Encode(r.Event)
		n := seen[line]
		seen[line] = n + 1

		ev := cal.AddEvent(EventUID(line, n))
		ev.SetDtStampTime(stamp)
		ev.SetAllDayStartAt(r.Date.Time())
		ev.SetAllDayEndAt(r.Date.AddDays(1).Time())
		ev.SetSummary(r.Description)
		if r.Category != "" {
			ev.AddProperty(ics.ComponentPropertyCategories, r.Category)
		}
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("write ics: %w", err)
	}
	return nil
}

// EventUID returns the stable UID of the occurrence-th copy of line.
func EventUID(line string, occurrence int) string {
	return uuid.NewSHA1(uidNamespace, []byte(line+"#"+strconv.Itoa(occurrence))).String() + "@days"
}
