package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"labsched/internal/auth"
	"labsched/internal/schedule"
)

// BookOptions holds flags for the book command.
type BookOptions struct {
	*RootOptions
	User     string
	Password string
}

// NewBookCommand creates the book command.
func NewBookCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BookOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "book <PC@WINDOW>...",
		Short: "Reserve one or more slots",
		Long: `Reserve one or more slots for the authenticated user.

Slots are addressed by their stable identity, PC@WINDOW. A multi-slot
request must name slots of a single time window; each slot gets its own
outcome, so one conflicting slot does not block the others.

Example:
  labsched book PC01@08:00-09:00 --user professor --password prof123
  labsched book PC01@09:00-10:00 PC02@09:00-10:00 --user professor --password prof123`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBook(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.User, "user", "", "login of the person booking (required)")
	cmd.Flags().StringVar(&opts.Password, "password", "", "password for the login (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func runBook(opts *BookOptions, args []string, cmd *cobra.Command) error {
	formatter := formatterFor(opts.RootOptions, cmd)

	account, err := auth.Authenticate(opts.User, opts.Password)
	if err != nil {
		return WrapExitError(ExitCommandError, "authentication failed", err)
	}

	keys := make([]schedule.SlotKey, 0, len(args))
	for _, arg := range args {
		key, err := schedule.ParseSlotKey(arg)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid slot", err)
		}
		keys = append(keys, key)
	}

	cfg, st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	engine := schedule.NewEngine(st.Inventory(cfg.Resources(), cfg.Windows()))
	slog.Debug("booking", "principal", account.Principal, "slots", len(keys))

	outcomes, err := engine.BookMultiple(cmd.Context(), keys, account.Principal)
	if err != nil {
		var be *schedule.BookingError
		if errors.As(err, &be) && !schedule.IsStorageFailure(err) {
			if ferr := formatter.Error(string(be.Code), be.Message, nil); ferr != nil {
				return ferr
			}
			return NewExitError(ExitFailure, be.Message)
		}
		return WrapExitError(ExitCommandError, "booking failed", err)
	}

	listing := OutcomeListing{Principal: string(account.Principal), Outcomes: outcomes}
	if err := formatter.Success(listing); err != nil {
		return err
	}
	if !listing.booked() {
		return NewExitError(ExitFailure, "no slot could be booked")
	}
	return nil
}
