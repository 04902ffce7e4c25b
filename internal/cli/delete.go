package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/days/internal/days"
	"github.com/roach88/days/internal/filter"
)

// DeleteOptions holds flags for the delete command.
type DeleteOptions struct {
	*RootOptions
	All         bool
	Between     []string
	Date        string
	Category    string
	Description string
	DryRun      bool
}

// DeleteResult is the JSON payload of delete.
type DeleteResult struct {
	DryRun bool        `json:"dry_run"`
	Events []EventView `json:"events"` // removed, or would be removed with --dry-run
	Empty  bool        `json:"empty,omitempty"`
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DeleteOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete events",
		Long: `Delete the events matching a filter. Accepted filters:

  --all
  --between D1,D2                  inclusive date range
  --description P                  description starts with P
  --category C                     exact category ("" for none)
  --date D [--category C] [--description P]

--dry-run prints the events that would be deleted without touching the file.
Other lines of the file are kept byte for byte.

Example:
  days delete --date 2024-03-12 --category health --dry-run
  days delete --between 2023-01-01,2023-12-31`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.All, "all", false, "delete every event")
	cmd.Flags().StringSliceVar(&opts.Between, "between", nil, "delete events in the inclusive range D1,D2")
	cmd.Flags().StringVar(&opts.Date, "date", "", "delete events on date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.Category, "category", "", "delete events with exactly this category")
	cmd.Flags().StringVar(&opts.Description, "description", "", "delete events whose description starts with prefix")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "only print what would be deleted")

	return cmd
}

func runDelete(opts *DeleteOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	args := days.DeleteArgs{
		All:               opts.All,
		Category:          stringFlag(cmd, "category", opts.Category),
		DescriptionPrefix: stringFlag(cmd, "description", opts.Description),
	}
	var err error
	if args.Date, err = dateFlag(cmd, "date", opts.Date); err != nil {
		return commandError(err)
	}
	if args.Between, err = rangeFlag(cmd, "between", opts.Between); err != nil {
		return commandError(err)
	}

	pred, err := days.DeleteFilter(args)
	if err != nil {
		return commandError(err)
	}
	formatter.VerboseLog("Filter: %s", filter.Describe(pred))

	res, err := opts.service.Execute(cmd.Context(), days.Delete{Filter: pred, DryRun: opts.DryRun})
	if err != nil {
		return commandError(err)
	}

	today := opts.today.Date
	if formatter.Format == "json" {
		return formatter.Success(DeleteResult{
			DryRun: res.DryRun,
			Events: eventViews(res.Rows, today),
			Empty:  res.Empty,
		})
	}

	switch {
	case res.Empty:
		formatter.Lines(NoEventsMessage)
	case len(res.Rows) == 0:
		formatter.Lines("No matching events")
	case res.DryRun:
		formatter.Lines(formatRows("Would delete: ", res.Rows, today)...)
	default:
		formatter.Lines(formatRows("Deleted: ", res.Rows, today)...)
	}
	return nil
}
