package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"labsched/internal/roster"
	"labsched/internal/store"
)

// AttendanceOptions holds flags shared by the attendance subcommands.
type AttendanceOptions struct {
	*RootOptions
	Resource string
	Student  string
	Day      string
	TimeIn   string
	TimeOut  string
}

// NewAttendanceCommand creates the attendance command tree.
func NewAttendanceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AttendanceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "attendance",
		Short: "Manage student attendance records",
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Register a new attendance session",
		Long: `Register a student sitting at a PC.

Example:
  labsched attendance add --pc PC07 --student "Ana Souza" --day 12/05/2026 --in 08:15 --out 09:40`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAttendanceAdd(opts, cmd)
		},
	}
	add.Flags().StringVar(&opts.Resource, "pc", "", "PC serial number (required)")
	add.Flags().StringVar(&opts.Student, "student", "", "student name (required)")
	add.Flags().StringVar(&opts.Day, "day", "", "date, DD/MM/YYYY (required)")
	add.Flags().StringVar(&opts.TimeIn, "in", "", "entry time, HH:MM (required)")
	add.Flags().StringVar(&opts.TimeOut, "out", "", "exit time, HH:MM (required)")
	for _, flag := range []string{"pc", "student", "day", "in", "out"} {
		_ = add.MarkFlagRequired(flag)
	}

	list := &cobra.Command{
		Use:           "list",
		Short:         "List attendance records",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAttendanceList(opts, cmd)
		},
	}

	edit := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an attendance record",
		Long: `Edit a record by its id. Omitted flags keep the stored value.

Example:
  labsched attendance edit 6ba7b810-9dad-11d1-80b4-00c04fd430c8 --out 10:00`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAttendanceEdit(opts, args[0], cmd)
		},
	}
	edit.Flags().StringVar(&opts.Resource, "pc", "", "new PC serial")
	edit.Flags().StringVar(&opts.Student, "student", "", "new student name")
	edit.Flags().StringVar(&opts.Day, "day", "", "new date, DD/MM/YYYY")
	edit.Flags().StringVar(&opts.TimeIn, "in", "", "new entry time, HH:MM")
	edit.Flags().StringVar(&opts.TimeOut, "out", "", "new exit time, HH:MM")

	del := &cobra.Command{
		Use:           "del <id>",
		Short:         "Delete an attendance record",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAttendanceDelete(opts, args[0], cmd)
		},
	}

	cmd.AddCommand(add, list, edit, del)
	return cmd
}

func runAttendanceAdd(opts *AttendanceOptions, cmd *cobra.Command) error {
	formatter := formatterFor(opts.RootOptions, cmd)

	_, st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	svc := roster.NewService(st)
	sess, err := svc.Register(cmd.Context(), roster.Input{
		Resource: opts.Resource,
		Student:  opts.Student,
		Day:      opts.Day,
		TimeIn:   opts.TimeIn,
		TimeOut:  opts.TimeOut,
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to register session", err)
	}
	return formatter.Success(Message{Text: "Registered session " + sess.ID})
}

func runAttendanceList(opts *AttendanceOptions, cmd *cobra.Command) error {
	formatter := formatterFor(opts.RootOptions, cmd)

	_, st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	sessions, err := roster.NewService(st).Sessions(cmd.Context())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list sessions", err)
	}
	return formatter.Success(SessionListing{Sessions: sessions})
}

func runAttendanceEdit(opts *AttendanceOptions, id string, cmd *cobra.Command) error {
	formatter := formatterFor(opts.RootOptions, cmd)

	_, st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	svc := roster.NewService(st)
	sess, err := svc.Amend(cmd.Context(), id, roster.Patch{
		Resource: opts.Resource,
		Student:  opts.Student,
		Day:      opts.Day,
		TimeIn:   opts.TimeIn,
		TimeOut:  opts.TimeOut,
	})
	if errors.Is(err, store.ErrSessionNotFound) {
		return WrapExitError(ExitFailure, "no such session", err)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to edit session", err)
	}
	return formatter.Success(Message{Text: "Updated session " + sess.ID})
}

func runAttendanceDelete(opts *AttendanceOptions, id string, cmd *cobra.Command) error {
	formatter := formatterFor(opts.RootOptions, cmd)

	_, st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	err = roster.NewService(st).Remove(cmd.Context(), id)
	if errors.Is(err, store.ErrSessionNotFound) {
		return WrapExitError(ExitFailure, "no such session", err)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to delete session", err)
	}
	return formatter.Success(Message{Text: "Deleted session " + id})
}
