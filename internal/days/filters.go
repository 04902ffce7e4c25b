package days

import (
	"github.com/roach88/days/internal/clock"
	"github.com/roach88/days/internal/event"
	"github.com/roach88/days/internal/filter"
)

// DateRange is an inclusive [From, To] pair as given on the command line.
type DateRange struct {
	From event.Date
	To   event.Date
}

// ListArgs holds the filter flags of list and export. Nil pointers and
// slices mean "flag not given".
type ListArgs struct {
	Today      bool
	Date       *event.Date
	BeforeDate *event.Date
	AfterDate  *event.Date
	Either     bool // combine BeforeDate/AfterDate as an OR (Outside)
	Between    *DateRange

	Categories []string
	Exclude    []string
	NoCategory bool

	DescriptionPrefix *string
}

// ListFilter builds the predicate for list and export.
//
// At most one date selector (--today, --date, --between, or the
// --before-date/--after-date pair) and at most one category selector
// (--categories, --exclude, --no-category) may be given. The selected
// clauses are ANDed; no flags at all selects every event.
func ListFilter(args ListArgs, c clock.Clock) (filter.Predicate, error) {
	var clauses []filter.Predicate

	dateSelectors := countTrue(args.Today, args.Date != nil, args.Between != nil,
		args.BeforeDate != nil || args.AfterDate != nil)
	if dateSelectors > 1 {
		return nil, usageErrorf("--today, --date, --between and --before-date/--after-date are mutually exclusive")
	}
	if args.Either && args.BeforeDate == nil && args.AfterDate == nil {
		return nil, usageErrorf("--either requires --before-date and/or --after-date")
	}

	switch {
	case args.Today:
		clauses = append(clauses, filter.Today(c))
	case args.Date != nil:
		clauses = append(clauses, filter.OnDate{D: *args.Date})
	case args.Between != nil:
		between, err := betweenFilter(*args.Between)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, between)
	case args.Either:
		clauses = append(clauses, filter.Outside{Before: args.BeforeDate, After: args.AfterDate})
	default:
		if args.BeforeDate != nil {
			clauses = append(clauses, filter.Before{D: *args.BeforeDate})
		}
		if args.AfterDate != nil {
			clauses = append(clauses, filter.After{D: *args.AfterDate})
		}
	}

	categorySelectors := countTrue(args.Categories != nil, args.Exclude != nil, args.NoCategory)
	if categorySelectors > 1 {
		return nil, usageErrorf("--categories, --exclude and --no-category are mutually exclusive")
	}
	switch {
	case args.Categories != nil:
		clauses = append(clauses, filter.CategoryIn{Categories: args.Categories})
	case args.Exclude != nil:
		clauses = append(clauses, filter.CategoryNotIn{Categories: args.Exclude})
	case args.NoCategory:
		clauses = append(clauses, filter.NoCategory{})
	}

	if args.DescriptionPrefix != nil {
		clauses = append(clauses, filter.DescriptionPrefix{Prefix: event.Normalize(*args.DescriptionPrefix)})
	}

	return filter.Conjoin(clauses...), nil
}

// DeleteArgs holds the filter flags of delete. Nil pointers mean "flag not
// given"; an empty Category selects events with no category.
type DeleteArgs struct {
	All               bool
	Between           *DateRange
	Date              *event.Date
	Category          *string
	DescriptionPrefix *string
}

// DeleteFilter builds the predicate for delete. Accepted forms:
//
//	--all
//	--between D1,D2
//	--description P
//	--category C
//	--date D [--category C] [--description P]
//
// Anything else, including no filter at all, is a usage error.
func DeleteFilter(args DeleteArgs) (filter.Predicate, error) {
	given := countTrue(args.All, args.Between != nil, args.Date != nil,
		args.Category != nil, args.DescriptionPrefix != nil)
	if given == 0 {
		return nil, usageErrorf("delete requires a filter: --all, --between, --date, --category or --description")
	}

	switch {
	case args.All:
		if given > 1 {
			return nil, usageErrorf("--all cannot be combined with other filters")
		}
		return filter.All{}, nil
	case args.Between != nil:
		if given > 1 {
			return nil, usageErrorf("--between cannot be combined with other filters")
		}
		return betweenFilter(*args.Between)
	case args.Date == nil && args.Category != nil && args.DescriptionPrefix != nil:
		return nil, usageErrorf("--category with --description also requires --date")
	}

	var clauses []filter.Predicate
	if args.Date != nil {
		clauses = append(clauses, filter.OnDate{D: *args.Date})
	}
	if args.Category != nil {
		clauses = append(clauses, filter.CategoryEquals{Category: event.Normalize(*args.Category)})
	}
	if args.DescriptionPrefix != nil {
		clauses = append(clauses, filter.DescriptionPrefix{Prefix: event.Normalize(*args.DescriptionPrefix)})
	}
	return filter.Conjoin(clauses...), nil
}

// ParseDateArg parses a date given as the value of flag. A bad value is a
// usage error.
func ParseDateArg(flag, value string) (event.Date, error) {
	d, err := event.ParseDate(value)
	if err != nil {
		return event.Date{}, usageErrorf("--%s: %v", flag, err)
	}
	return d, nil
}

// ParseRangeArg parses the two dates of a --between flag.
func ParseRangeArg(flag string, values []string) (DateRange, error) {
	if len(values) != 2 {
		return DateRange{}, usageErrorf("--%s takes two dates, got %d", flag, len(values))
	}
	from, err := ParseDateArg(flag, values[0])
	if err != nil {
		return DateRange{}, err
	}
	to, err := ParseDateArg(flag, values[1])
	if err != nil {
		return DateRange{}, err
	}
	return DateRange{From: from, To: to}, nil
}

func betweenFilter(r DateRange) (filter.Predicate, error) {
	if r.To.Before(r.From) {
		return nil, usageErrorf("--between range ends (%s) before it starts (%s)", r.To, r.From)
	}
	return filter.Between{From: r.From, To: r.To}, nil
}

func countTrue(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
