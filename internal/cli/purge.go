package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"labsched/internal/auth"
	"labsched/internal/store"
)

// PurgeOptions holds flags for the purge command.
type PurgeOptions struct {
	*RootOptions
	User     string
	Password string
}

var purgeTargets = []string{"bookings", "attendance", "reports", "all"}

// NewPurgeCommand creates the purge command.
func NewPurgeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PurgeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "purge <bookings|attendance|reports|all>",
		Short: "Clear stored data (admin only)",
		Long: `Clear stored data. Requires the admin role.

Purging bookings drops the whole slot table; the next listing re-seeds a
fully available inventory. This is the only way a reserved slot ever
becomes available again.

Example:
  labsched purge bookings --user admin --password admin123`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPurge(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.User, "user", "", "admin login (required)")
	cmd.Flags().StringVar(&opts.Password, "password", "", "password for the login (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func runPurge(opts *PurgeOptions, target string, cmd *cobra.Command) error {
	formatter := formatterFor(opts.RootOptions, cmd)

	account, err := auth.Authenticate(opts.User, opts.Password)
	if err != nil {
		return WrapExitError(ExitCommandError, "authentication failed", err)
	}
	if account.Role != auth.RoleAdmin {
		return NewExitError(ExitFailure, "only the admin role can purge data")
	}

	_, st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := purge(cmd.Context(), st, target); err != nil {
		return err
	}
	return formatter.Success(Message{Text: "Purged " + target})
}

func purge(ctx context.Context, st *store.Store, target string) error {
	var err error
	switch target {
	case "bookings":
		err = st.PurgeBookings(ctx)
	case "attendance":
		err = st.PurgeSessions(ctx)
	case "reports":
		err = st.PurgeReports(ctx)
	case "all":
		err = st.PurgeAll(ctx)
	default:
		return NewExitError(ExitCommandError, fmt.Sprintf("unknown purge target %q: must be one of %v", target, purgeTargets))
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "purge failed", err)
	}
	return nil
}
