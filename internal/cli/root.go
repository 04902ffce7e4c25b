package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/days/internal/clock"
	"github.com/roach88/days/internal/config"
	"github.com/roach88/days/internal/days"
	"github.com/roach88/days/internal/store"
)

// RootOptions holds global flags for all commands, plus the state the root
// command prepares before any subcommand runs.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Dir     string // data directory override

	// Clock overrides the system clock (for testing).
	// If nil, the system clock in the configured timezone is used.
	Clock clock.Clock

	config  *config.Config
	today   clock.Fixed
	service *days.Service
	logger  *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the days CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "days",
		Short: "days - keep track of dated events",
		Long: `Keep a personal list of dated events in a plain CSV file and see how
many days away each one is.

Events live in events.csv inside the data directory ($HOME/.days by
default). The directory must exist; it is never created.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(opts, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Dir, "dir", "", "data directory (default $DAYS_DIR or $HOME/.days)")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError(err)
	})

	// Add subcommands
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))

	return cmd
}

// setup resolves configuration, freezes the clock and builds the service
// shared by every subcommand.
func setup(opts *RootOptions, cmd *cobra.Command) error {
	opts.logger = newLogger(opts.formatter(cmd).GetErrWriter(), opts.Verbose)

	dir, err := config.ResolveDir(opts.Dir)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to resolve data directory", err)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	opts.config = cfg

	if !cmd.Flags().Changed("format") && cfg.Format != "" {
		opts.Format = cfg.Format
	}
	// Validate format flag
	if !isValidFormat(opts.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
	}

	clk := opts.Clock
	if clk == nil {
		loc, err := cfg.Location()
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load config", err)
		}
		clk = clock.System{Location: loc}
	}
	// Today is read once per invocation.
	opts.today = clock.Freeze(clk)

	st := store.New(cfg.EventsPath(), store.WithLogger(opts.logger))
	opts.service = days.NewService(st, opts.today, opts.logger)
	opts.logger.Debug("configured", "dir", cfg.Dir, "file", cfg.File, "today", opts.today.Date, "format", opts.Format)
	return nil
}

// newLogger returns a text logger on w: debug when verbose, info otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   o.Verbose,
	}
}

// commandError assigns an exit code to an error returned by the service.
func commandError(err error) error {
	var exitErr *ExitError
	switch {
	case errors.As(err, &exitErr):
		return err
	case days.IsUsageError(err):
		return &ExitError{Code: ExitCommandError, Err: err}
	case errors.Is(err, store.ErrDirNotFound):
		return &ExitError{Code: ExitCommandError, Err: err}
	default:
		return &ExitError{Code: ExitFailure, Err: err}
	}
}

func usageError(err error) error {
	return &ExitError{Code: ExitCommandError, Err: fmt.Errorf("%w: %v", days.ErrUsage, err)}
}

// usageArgs marks positional argument errors as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

// Run executes the CLI with args and returns the process exit code.
// Errors are reported on stderr in the selected format.
func Run(ctx context.Context, opts *RootOptions, args []string, stdout, stderr io.Writer) int {
	if opts == nil {
		opts = &RootOptions{}
	}
	cmd := newRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	// Commands return *ExitError; anything else comes from cobra's own
	// argument handling (unknown command, missing required flag).
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		err = usageError(err)
	}
	code := GetExitCode(err)

	errCode := ErrCodeCommand
	if code == ExitFailure {
		errCode = ErrCodeFailure
	}
	format := opts.Format
	if !isValidFormat(format) {
		format = "text"
	}
	f := &OutputFormatter{Format: format, Writer: stderr, Verbose: opts.Verbose}
	_ = f.Error(errCode, err.Error(), nil)
	return code
}

// Execute runs the CLI against the process arguments.
func Execute() int {
	return Run(context.Background(), nil, os.Args[1:], os.Stdout, os.Stderr)
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
