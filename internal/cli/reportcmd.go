package cli

import (
	"github.com/spf13/cobra"

	"labsched/internal/report"
)

// ReportOptions holds flags for the report subcommands.
type ReportOptions struct {
	*RootOptions
	Teacher string
	Body    string
}

// NewReportCommand creates the report command tree.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "File and browse class reports",
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "File a class report",
		Long: `Append a free-text class report.

Example:
  labsched report add --teacher "Carla" --body "Turma concluiu o exercício 3."`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReportAdd(opts, cmd)
		},
	}
	add.Flags().StringVar(&opts.Teacher, "teacher", "", "teacher name (required)")
	add.Flags().StringVar(&opts.Body, "body", "", "report text (required)")
	_ = add.MarkFlagRequired("teacher")
	_ = add.MarkFlagRequired("body")

	list := &cobra.Command{
		Use:           "list",
		Short:         "List class reports",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReportList(opts, cmd)
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}

func runReportAdd(opts *ReportOptions, cmd *cobra.Command) error {
	formatter := formatterFor(opts.RootOptions, cmd)

	_, st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	rep, err := report.NewService(st).Append(cmd.Context(), opts.Teacher, opts.Body)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to file report", err)
	}
	return formatter.Success(Message{Text: "Filed report " + rep.ID})
}

func runReportList(opts *ReportOptions, cmd *cobra.Command) error {
	formatter := formatterFor(opts.RootOptions, cmd)

	_, st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	reports, err := report.NewService(st).Reports(cmd.Context())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list reports", err)
	}
	return formatter.Success(ReportListing{Reports: reports})
}
