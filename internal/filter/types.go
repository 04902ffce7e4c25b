package filter

import (
	"github.com/roach88/days/internal/clock"
	"github.com/roach88/days/internal/event"
)

// Predicate is a pure boolean test over one event.
type Predicate interface {
	predicateNode() // Marker method - seals interface to this package
}

// All matches every event.
type All struct{}

func (All) predicateNode() {}

// OnDate matches events on exactly D.
type OnDate struct {
	D event.Date
}

func (OnDate) predicateNode() {}

// Today matches events on the clock's current date.
func Today(c clock.Clock) OnDate {
	return OnDate{D: c.Today()}
}

// Before matches events strictly before D.
type Before struct {
	D event.Date
}

func (Before) predicateNode() {}

// After matches events strictly after D.
type After struct {
	D event.Date
}

func (After) predicateNode() {}

// Between matches events in the inclusive range [From, To].
type Between struct {
	From event.Date
	To   event.Date
}

func (Between) predicateNode() {}

// Outside matches events strictly before Before or strictly after After.
// A nil side contributes nothing, so Outside{} matches no event.
type Outside struct {
	Before *event.Date
	After  *event.Date
}

func (Outside) predicateNode() {}

// CategoryIn matches events whose category is one of Categories.
type CategoryIn struct {
	Categories []string
}

func (CategoryIn) predicateNode() {}

// CategoryNotIn matches events whose category is none of Categories.
type CategoryNotIn struct {
	Categories []string
}

func (CategoryNotIn) predicateNode() {}

// CategoryEquals matches events whose category is exactly Category.
type CategoryEquals struct {
	Category string
}

func (CategoryEquals) predicateNode() {}

// NoCategory matches events with an empty category.
type NoCategory struct{}

func (NoCategory) predicateNode() {}

// DescriptionPrefix matches events whose description starts with Prefix.
type DescriptionPrefix struct {
	Prefix string
}

func (DescriptionPrefix) predicateNode() {}

// And matches when every predicate matches. An empty And matches everything.
type And struct {
	Predicates []Predicate
}

func (And) predicateNode() {}

// Conjoin returns the conjunction of ps, collapsing the trivial cases:
// no predicates yields All and a single predicate is returned unchanged.
func Conjoin(ps ...Predicate) Predicate {
	switch len(ps) {
	case 0:
		return All{}
	case 1:
		return ps[0]
	default:
		return And{Predicates: ps}
	}
}
