package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"labsched/internal/store"
)

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file.csv>",
		Short: "Export the slot inventory as a flat CSV table",
		Long: `Write the slot inventory to a flat CSV file using the legacy
column layout (pc,horario,professor,status), so the file round-trips
against tables produced by the old system.

Example:
  labsched export agendamentos.csv`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runExport(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := formatterFor(opts, cmd)

	cfg, st, err := openStore(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	inv, err := st.Inventory(cfg.Resources(), cfg.Windows()).Load(cmd.Context())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load inventory", err)
	}

	// Write to a temporary file next to the target and rename, so a
	// reader never sees a partially written table and the rename never
	// crosses a filesystem boundary.
	tmp, err := os.CreateTemp(filepath.Dir(path), "labsched-export-*")
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to create export file", err)
	}
	defer os.Remove(tmp.Name())

	if err := store.ExportInventoryCSV(tmp, inv); err != nil {
		tmp.Close()
		return WrapExitError(ExitCommandError, "failed to write export file", err)
	}
	if err := tmp.Close(); err != nil {
		return WrapExitError(ExitCommandError, "failed to close export file", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return WrapExitError(ExitCommandError, "failed to move export file", err)
	}

	return formatter.Success(Message{Text: fmt.Sprintf("Exported %d slots to %s", inv.Len(), path)})
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Replace the slot inventory from a flat CSV table",
		Long: `Load a legacy flat CSV table and replace the slot inventory with
it. Every row is validated; a malformed file leaves the store untouched.

Example:
  labsched import agendamentos.csv`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runImport(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := formatterFor(opts, cmd)

	f, err := os.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open import file", err)
	}
	defer f.Close()

	inv, err := store.ImportInventoryCSV(f)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to parse import file", err)
	}

	cfg, st, err := openStore(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Inventory(cfg.Resources(), cfg.Windows()).Replace(cmd.Context(), inv); err != nil {
		return WrapExitError(ExitCommandError, "failed to replace inventory", err)
	}

	return formatter.Success(Message{Text: fmt.Sprintf("Imported %d slots from %s", inv.Len(), path)})
}
