package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/faculty-scheduler/internal/application"
	"github.com/example/faculty-scheduler/internal/schedule"
)

// slotFlags identify one (period, room, weekday) slot on the command line.
type slotFlags struct {
	period string
	room   string
	day    string
}

func (f *slotFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.period, "period", "", "time period label, e.g. \"09:00 - 10:00\"")
	cmd.Flags().StringVar(&f.room, "room", "", "room number")
	cmd.Flags().StringVar(&f.day, "day", "", "weekday, e.g. Monday")
}

func (f *slotFlags) key() (schedule.SlotKey, error) {
	day, err := schedule.ParseWeekday(f.day)
	if err != nil {
		return schedule.SlotKey{}, err
	}
	return schedule.SlotKey{PeriodLabel: f.period, RoomID: f.room, Day: day}, nil
}

func newBookCommand(app *App) *cobra.Command {
	var slot slotFlags
	var facultyID, subjectID string
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a faculty/subject pair into a slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			// An omitted --day falls through to request validation; a
			// present but misspelled one is rejected here by name.
			day := schedule.AnyDay
			if slot.day != "" {
				var err error
				if day, err = schedule.ParseWeekday(slot.day); err != nil {
					return err
				}
			}
			booked, err := app.Timetable.Book(cmd.Context(), application.BookingRequest{
				PeriodLabel: slot.period,
				RoomID:      slot.room,
				Day:         day,
				FacultyID:   facultyID,
				SubjectID:   subjectID,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(app.out(), "booked %s for %s/%s\n", booked.Key(), booked.FacultyID, booked.SubjectID)
			return nil
		},
	}
	slot.register(cmd)
	cmd.Flags().StringVar(&facultyID, "faculty", "", "faculty identifier")
	cmd.Flags().StringVar(&subjectID, "subject", "", "subject code")
	return cmd
}

func newCancelCommand(app *App) *cobra.Command {
	var slot slotFlags
	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel the booking in a slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := slot.key()
			if err != nil {
				return err
			}
			if err := app.Timetable.Cancel(cmd.Context(), key); err != nil {
				return err
			}
			fmt.Fprintf(app.out(), "cancelled %s\n", key)
			return nil
		},
	}
	slot.register(cmd)
	return cmd
}

func newResetCommand(app *App) *cobra.Command {
	var confirmed bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear every booking",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return fmt.Errorf("reset clears the whole schedule; re-run with --yes to confirm")
			}
			if err := app.Timetable.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(app.out(), "schedule cleared")
			return nil
		},
	}
	cmd.Flags().BoolVar(&confirmed, "yes", false, "confirm clearing the schedule")
	return cmd
}

func newScheduleCommand(app *App) *cobra.Command {
	var facultyID, subjectID, roomID string
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show the bookings for one faculty, subject, or room",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, id, err := pickEntity(facultyID, subjectID, roomID)
			if err != nil {
				return err
			}
			bookings, err := app.Timetable.BookingsFor(cmd.Context(), kind, id)
			if err != nil {
				return err
			}
			if len(bookings) == 0 {
				fmt.Fprintf(app.out(), "no bookings for %s %s\n", kind, id)
				return nil
			}
			tw := tabwriter.NewWriter(app.out(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PERIOD\tROOM\tDAY\tFACULTY\tSUBJECT")
			for _, b := range bookings {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", b.PeriodLabel, b.RoomID, b.Day, b.FacultyID, b.SubjectID)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&facultyID, "faculty", "", "faculty identifier")
	cmd.Flags().StringVar(&subjectID, "subject", "", "subject code")
	cmd.Flags().StringVar(&roomID, "room", "", "room number")
	return cmd
}

func pickEntity(facultyID, subjectID, roomID string) (schedule.EntityKind, string, error) {
	set := 0
	var kind schedule.EntityKind
	var id string
	if facultyID != "" {
		set, kind, id = set+1, schedule.EntityFaculty, facultyID
	}
	if subjectID != "" {
		set, kind, id = set+1, schedule.EntitySubject, subjectID
	}
	if roomID != "" {
		set, kind, id = set+1, schedule.EntityRoom, roomID
	}
	if set != 1 {
		return "", "", fmt.Errorf("exactly one of --faculty, --subject, or --room is required")
	}
	return kind, id, nil
}

func newSuggestCommand(app *App) *cobra.Command {
	var facultyID, subjectID string
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest conflict-free slots for a faculty/subject pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			if facultyID == "" || subjectID == "" {
				return fmt.Errorf("both --faculty and --subject are required")
			}
			slots, err := app.Timetable.Suggest(cmd.Context(), facultyID, subjectID)
			if err != nil {
				return err
			}
			if len(slots) == 0 {
				fmt.Fprintln(app.out(), "no free slots")
				return nil
			}
			for _, slot := range slots {
				fmt.Fprintf(app.out(), "%s in room %s\n", slot.PeriodLabel, slot.RoomID)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&facultyID, "faculty", "", "faculty identifier")
	cmd.Flags().StringVar(&subjectID, "subject", "", "subject code")
	return cmd
}

func newCheckCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the schedule for conflicts",
		RunE: func(cmd *cobra.Command, args []string) error {
			issues, err := app.Timetable.CheckIntegrity(cmd.Context())
			if err != nil {
				return err
			}
			if len(issues) == 0 {
				fmt.Fprintln(app.out(), "schedule is consistent")
				return nil
			}
			for _, issue := range issues {
				fmt.Fprintln(app.out(), issue)
			}
			return fmt.Errorf("%d integrity issue(s) found", len(issues))
		},
	}
}
