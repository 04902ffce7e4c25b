package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/days/internal/days"
	"github.com/roach88/days/internal/export"
	"github.com/roach88/days/internal/store"
)

// ExportResult is the JSON payload of export.
type ExportResult struct {
	Format string `json:"format"`
	Count  int    `json:"count"`
}

type exporter func(ctx context.Context, out string, rows []store.Row) error

// NewExportCommand creates the export command and its ics and sqlite
// subcommands.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export events to another format",
		Long: `Export the events selected by the list filters.

The events file is never modified.

Example:
  days export ics ~/calendar.ics --after-date 2024-01-01
  days export sqlite ~/days.db --categories work`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newExportFormatCommand(rootOpts, "ics", "Export events as an iCalendar file", exportICS))
	cmd.AddCommand(newExportFormatCommand(rootOpts, "sqlite", "Export events into a SQLite database", exportSQLite))
	return cmd
}

func newExportFormatCommand(rootOpts *RootOptions, format, short string, write exporter) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:           format + " <out>",
		Short:         short,
		Args:          usageArgs(cobra.ExactArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(rootOpts, flags, format, args[0], write, cmd)
		},
	}

	flags.bind(cmd)
	return cmd
}

func runExport(opts *RootOptions, flags *listFlags, format, out string, write exporter, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	listArgs, err := flags.args(cmd)
	if err != nil {
		return commandError(err)
	}
	pred, err := days.ListFilter(listArgs, opts.today)
	if err != nil {
		return commandError(err)
	}

	res, err := opts.service.Select(cmd.Context(), pred)
	if err != nil {
		return commandError(err)
	}

	formatter.VerboseLog("Writing %d events to %s", len(res.Rows), out)
	if err := write(cmd.Context(), out, res.Rows); err != nil {
		return commandError(fmt.Errorf("export %s: %w", format, err))
	}
	opts.logger.Info("events exported", "format", format, "out", out, "count", len(res.Rows))

	if formatter.Format == "json" {
		return formatter.Success(ExportResult{Format: format, Count: len(res.Rows)})
	}
	formatter.Lines(fmt.Sprintf("Exported %d events (%s)", len(res.Rows), format))
	return nil
}

func exportICS(ctx context.Context, out string, rows []store.Row) (err error) {
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return export.ICS(f, rows, time.Now().UTC())
}

func exportSQLite(ctx context.Context, out string, rows []store.Row) error {
	db, err := export.OpenSQLite(out)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Replace(ctx, rows)
	return err
}
