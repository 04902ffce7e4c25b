package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/days/internal/days"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Date        string
	Category    string
	Description string
}

// AddResult is the JSON payload of add.
type AddResult struct {
	Event EventView `json:"event"`
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an event",
		Long: `Append one event to the events file.

The date defaults to today. The category is optional and may not contain
a comma. A missing events file is created with its header line.

Example:
  days add --description "dentist" --category health --date 2024-03-12
  days add --description "started running"`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Date, "date", "", "event date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&opts.Category, "category", "", "event category")
	cmd.Flags().StringVar(&opts.Description, "description", "", "event description (required)")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

func runAdd(opts *AddOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	date, err := dateFlag(cmd, "date", opts.Date)
	if err != nil {
		return commandError(err)
	}

	res, err := opts.service.Execute(cmd.Context(), days.Add{
		Date:        date,
		Category:    opts.Category,
		Description: opts.Description,
	})
	if err != nil {
		return commandError(err)
	}

	today := opts.today.Date
	if formatter.Format == "json" {
		return formatter.Success(AddResult{Event: newEventView(0, *res.Added, today)})
	}
	formatter.Lines("Added: " + FormatEvent(*res.Added, today))
	return nil
}
