package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/days/internal/days"
)

// ListResult is the JSON payload of list.
type ListResult struct {
	Events []EventView `json:"events"`
	Empty  bool        `json:"empty,omitempty"` // the events file holds no events
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		Long: `List events in file order, each with its distance from today.

Date selectors (pick at most one): --today, --date, --between, or
--before-date and/or --after-date. With both --before-date and --after-date
events must fall between them; add --either to match events outside instead.

Category selectors (pick at most one): --categories, --exclude, --no-category.
--description matches a description prefix and combines with everything.

Example:
  days list --after-date 2024-01-01 --categories work,health
  days list --between 2024-03-01,2024-03-31 --description dentist`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, flags, cmd)
		},
	}

	flags.bind(cmd)
	return cmd
}

func runList(opts *RootOptions, flags *listFlags, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	listArgs, err := flags.args(cmd)
	if err != nil {
		return commandError(err)
	}
	pred, err := days.ListFilter(listArgs, opts.today)
	if err != nil {
		return commandError(err)
	}

	res, err := opts.service.Execute(cmd.Context(), days.List{Filter: pred})
	if err != nil {
		return commandError(err)
	}

	today := opts.today.Date
	if formatter.Format == "json" {
		return formatter.Success(ListResult{Events: eventViews(res.Rows, today), Empty: res.Empty})
	}
	if res.Empty {
		formatter.Lines(NoEventsMessage)
		return nil
	}
	formatter.Lines(formatRows("", res.Rows, today)...)
	return nil
}
