package cli

import (
	"github.com/spf13/cobra"
)

// SlotsOptions holds flags for the slots command.
type SlotsOptions struct {
	*RootOptions
	Reserved bool
	Grouped  bool
}

// NewSlotsCommand creates the slots command.
func NewSlotsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SlotsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "List bookable time slots",
		Long: `List the slot inventory.

By default lists the available slots in store order. The first run seeds
the inventory from the configured resources and daily schedule.

Example:
  labsched slots
  labsched slots --reserved
  labsched slots --grouped`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSlots(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Reserved, "reserved", false, "list reserved slots instead of available ones")
	cmd.Flags().BoolVar(&opts.Grouped, "grouped", false, "group the full inventory by time window")

	return cmd
}

func runSlots(opts *SlotsOptions, cmd *cobra.Command) error {
	formatter := formatterFor(opts.RootOptions, cmd)

	cfg, st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()

	inv, err := st.Inventory(cfg.Resources(), cfg.Windows()).Load(cmd.Context())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load inventory", err)
	}

	if opts.Grouped {
		listing := GroupedListing{}
		for _, g := range inv.GroupedByWindow() {
			listing.Groups = append(listing.Groups, GroupView{
				Window: string(g.Window),
				Slots:  slotViews(g.Slots),
			})
		}
		return formatter.Success(listing)
	}

	var listing SlotListing
	if opts.Reserved {
		listing = SlotListing{Title: "Reserved slots", Slots: slotViews(inv.Reserved())}
	} else {
		listing = SlotListing{Title: "Available slots", Slots: slotViews(inv.Available())}
	}
	return formatter.Success(listing)
}
