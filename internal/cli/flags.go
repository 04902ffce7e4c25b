package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/days/internal/days"
	"github.com/roach88/days/internal/event"
	"github.com/roach88/days/internal/filter"
)

// listFlags holds the filter flags shared by list and export.
type listFlags struct {
	today       bool
	date        string
	beforeDate  string
	afterDate   string
	either      bool
	between     []string
	categories  string
	exclude     string
	noCategory  bool
	description string
}

func (f *listFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.BoolVar(&f.today, "today", false, "only events happening today")
	fs.StringVar(&f.date, "date", "", "only events on date (YYYY-MM-DD)")
	fs.StringVar(&f.beforeDate, "before-date", "", "only events before date")
	fs.StringVar(&f.afterDate, "after-date", "", "only events after date")
	fs.BoolVar(&f.either, "either", false, "with --before-date/--after-date: match either side instead of both")
	fs.StringSliceVar(&f.between, "between", nil, "only events in the inclusive range D1,D2")
	fs.StringVar(&f.categories, "categories", "", "only events in these comma-separated categories")
	fs.StringVar(&f.exclude, "exclude", "", "skip events in these comma-separated categories")
	fs.BoolVar(&f.noCategory, "no-category", false, "only events without a category")
	fs.StringVar(&f.description, "description", "", "only events whose description starts with prefix")
}

// args converts the parsed flags. Flags the user did not give stay unset.
func (f *listFlags) args(cmd *cobra.Command) (days.ListArgs, error) {
	fs := cmd.Flags()
	args := days.ListArgs{
		Today:      f.today,
		Either:     f.either,
		NoCategory: f.noCategory,
	}

	var err error
	if args.Date, err = dateFlag(cmd, "date", f.date); err != nil {
		return args, err
	}
	if args.BeforeDate, err = dateFlag(cmd, "before-date", f.beforeDate); err != nil {
		return args, err
	}
	if args.AfterDate, err = dateFlag(cmd, "after-date", f.afterDate); err != nil {
		return args, err
	}
	if args.Between, err = rangeFlag(cmd, "between", f.between); err != nil {
		return args, err
	}

	if fs.Changed("categories") {
		args.Categories = filter.ParseCategorySet(f.categories)
	}
	if fs.Changed("exclude") {
		args.Exclude = filter.ParseCategorySet(f.exclude)
	}
	if fs.Changed("description") {
		args.DescriptionPrefix = &f.description
	}
	return args, nil
}

// dateFlag returns nil when the flag was not given.
func dateFlag(cmd *cobra.Command, name, value string) (*event.Date, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	d, err := days.ParseDateArg(name, value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func rangeFlag(cmd *cobra.Command, name string, values []string) (*days.DateRange, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	r, err := days.ParseRangeArg(name, values)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func stringFlag(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}
