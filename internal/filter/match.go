package filter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/days/internal/event"
)

// Match reports whether e satisfies p. A nil predicate matches everything.
func Match(p Predicate, e event.Event) bool {
	if p == nil {
		return true
	}

	switch pred := p.(type) {
	case All:
		return true
	case OnDate:
		return e.Date.Equal(pred.D)
	case Before:
		return e.Date.Before(pred.D)
	case After:
		return e.Date.After(pred.D)
	case Between:
		return !e.Date.Before(pred.From) && !e.Date.After(pred.To)
	case Outside:
		if pred.Before != nil && e.Date.Before(*pred.Before) {
			return true
		}
		return pred.After != nil && e.Date.After(*pred.After)
	case CategoryIn:
		return slices.Contains(pred.Categories, e.Category)
	case CategoryNotIn:
		return !slices.Contains(pred.Categories, e.Category)
	case CategoryEquals:
		return e.Category == pred.Category
	case NoCategory:
		return e.Category == ""
	case DescriptionPrefix:
		return strings.HasPrefix(e.Description, pred.Prefix)
	case And:
		for _, sub := range pred.Predicates {
			if !Match(sub, e) {
				return false
			}
		}
		return true
	default:
		// Impossible - Predicate is sealed
		panic(fmt.Sprintf("filter: unsupported predicate type %T", p))
	}
}

// Select returns the events matching p, in input order.
func Select(events []event.Event, p Predicate) []event.Event {
	var out []event.Event
	for _, e := range events {
		if Match(p, e) {
			out = append(out, e)
		}
	}
	return out
}

// Describe renders p in a compact human-readable form for logs.
func Describe(p Predicate) string {
	if p == nil {
		return "all"
	}

	switch pred := p.(type) {
	case All:
		return "all"
	case OnDate:
		return "date == " + pred.D.String()
	case Before:
		return "date < " + pred.D.String()
	case After:
		return "date > " + pred.D.String()
	case Between:
		return fmt.Sprintf("%s <= date <= %s", pred.From, pred.To)
	case Outside:
		var sides []string
		if pred.Before != nil {
			sides = append(sides, "date < "+pred.Before.String())
		}
		if pred.After != nil {
			sides = append(sides, "date > "+pred.After.String())
		}
		if len(sides) == 0 {
			return "none"
		}
		return "(" + strings.Join(sides, " OR ") + ")"
	case CategoryIn:
		return fmt.Sprintf("category in %q", pred.Categories)
	case CategoryNotIn:
		return fmt.Sprintf("category not in %q", pred.Categories)
	case CategoryEquals:
		return fmt.Sprintf("category == %q", pred.Category)
	case NoCategory:
		return `category == ""`
	case DescriptionPrefix:
		return fmt.Sprintf("description starts with %q", pred.Prefix)
	case And:
		if len(pred.Predicates) == 0 {
			return "all"
		}
		parts := make([]string, len(pred.Predicates))
		for i, sub := range pred.Predicates {
			parts[i] = Describe(sub)
		}
		return strings.Join(parts, " AND ")
	default:
		return fmt.Sprintf("%T", p)
	}
}
