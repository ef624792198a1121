package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"labsched/internal/report"
	"labsched/internal/roster"
	"labsched/internal/schedule"
)

// View types returned by commands. The JSON form is the struct encoding;
// the text form is a small tab-aligned table, indices included as a
// display convenience only.

// SlotView is one inventory row as presented to the user.
type SlotView struct {
	Index    int    `json:"index"`
	Resource string `json:"pc"`
	Window   string `json:"window"`
	Holder   string `json:"holder"`
	Status   string `json:"status"`
}

func slotViews(slots []schedule.Slot) []SlotView {
	views := make([]SlotView, 0, len(slots))
	for i, s := range slots {
		views = append(views, SlotView{
			Index:    i,
			Resource: string(s.Resource),
			Window:   string(s.Window),
			Holder:   s.HolderWire(),
			Status:   s.Status.String(),
		})
	}
	return views
}

// SlotListing is the payload of the slots command.
type SlotListing struct {
	Title string     `json:"title"`
	Slots []SlotView `json:"slots"`
}

func (l SlotListing) renderText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", l.Title)
	if len(l.Slots) == 0 {
		b.WriteString("  (none)\n")
		return b.String()
	}
	tw := newTable(&b)
	fmt.Fprintln(tw, "#\tPC\tWINDOW\tHOLDER\tSTATUS")
	for _, s := range l.Slots {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", s.Index, s.Resource, s.Window, s.Holder, s.Status)
	}
	tw.Flush()
	return b.String()
}

// GroupView is one time window with its slots.
type GroupView struct {
	Window string     `json:"window"`
	Slots  []SlotView `json:"slots"`
}

// GroupedListing is the payload of slots --grouped.
type GroupedListing struct {
	Groups []GroupView `json:"groups"`
}

func (l GroupedListing) renderText() string {
	var b strings.Builder
	for _, g := range l.Groups {
		fmt.Fprintf(&b, "%s\n", g.Window)
		tw := newTable(&b)
		for _, s := range g.Slots {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", s.Resource, s.Holder, s.Status)
		}
		tw.Flush()
	}
	return b.String()
}

// OutcomeListing is the payload of the book command: one line per
// distinct requested slot, successes and failures individually.
type OutcomeListing struct {
	Principal string             `json:"principal"`
	Outcomes  []schedule.Outcome `json:"outcomes"`
}

func (l OutcomeListing) renderText() string {
	var b strings.Builder
	for _, o := range l.Outcomes {
		if o.Detail != "" {
			fmt.Fprintf(&b, "%s: %s (%s)\n", o.Key, o.Code, o.Detail)
		} else {
			fmt.Fprintf(&b, "%s: %s\n", o.Key, o.Code)
		}
	}
	return b.String()
}

// booked reports whether at least one slot was booked.
func (l OutcomeListing) booked() bool {
	for _, o := range l.Outcomes {
		if o.Code == schedule.OutcomeBooked {
			return true
		}
	}
	return false
}

// SessionListing is the payload of attendance list.
type SessionListing struct {
	Sessions []roster.Session `json:"sessions"`
}

func (l SessionListing) renderText() string {
	var b strings.Builder
	if len(l.Sessions) == 0 {
		b.WriteString("No attendance records.\n")
		return b.String()
	}
	tw := newTable(&b)
	fmt.Fprintln(tw, "#\tID\tPC\tSTUDENT\tDAY\tIN\tOUT")
	for i, s := range l.Sessions {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", i, s.ID, s.Resource, s.Student, s.Day, s.TimeIn, s.TimeOut)
	}
	tw.Flush()
	return b.String()
}

// ReportListing is the payload of report list.
type ReportListing struct {
	Reports []report.Report `json:"reports"`
}

func (l ReportListing) renderText() string {
	var b strings.Builder
	if len(l.Reports) == 0 {
		b.WriteString("No reports.\n")
		return b.String()
	}
	for _, r := range l.Reports {
		fmt.Fprintf(&b, "[%s] %s: %s\n", r.CreatedAt, r.Teacher, r.Body)
	}
	return b.String()
}

// Message is a plain confirmation payload.
type Message struct {
	Text string `json:"message"`
}

func (m Message) renderText() string {
	return m.Text + "\n"
}

func newTable(w *strings.Builder) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}
