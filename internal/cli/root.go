package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"labsched/internal/config"
	"labsched/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Config  string // path of the YAML config file
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the labsched CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "labsched",
		Short: "Lab management console",
		Long:  "Console for tracking lab PC usage sessions, class reports and time-slot reservations.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			setupLogging(opts.Verbose)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "labsched.yaml", "path of the configuration file")

	// Add subcommands
	cmd.AddCommand(NewSlotsCommand(opts))
	cmd.AddCommand(NewBookCommand(opts))
	cmd.AddCommand(NewAttendanceCommand(opts))
	cmd.AddCommand(NewReportCommand(opts))
	cmd.AddCommand(NewPurgeCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))

	return cmd
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

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// openStore loads the configuration and opens the database it names.
// The caller owns closing the returned store.
func openStore(opts *RootOptions) (config.Config, *store.Store, error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return config.Config{}, nil, WrapExitError(ExitCommandError, "failed to load configuration", err)
	}
	slog.Debug("configuration loaded", "path", opts.Config, "db", cfg.DataPath,
		"resources", cfg.ResourceCount, "windows", len(cfg.Windows()))

	st, err := store.Open(cfg.DataPath)
	if err != nil {
		return config.Config{}, nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	return cfg, st, nil
}

// formatterFor builds the output formatter wired to the command's
// writers; verbose logs go to stderr to avoid corrupting JSON output.
func formatterFor(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
