package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/faculty-scheduler/internal/application"
	"github.com/example/faculty-scheduler/internal/schedule"
)

func newFacultyCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "faculty",
		Short: "Manage the faculty registry",
	}

	var input application.FacultyInput
	var photoPath string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a faculty member",
		RunE: func(cmd *cobra.Command, args []string) error {
			if photoPath != "" {
				photo, err := os.ReadFile(photoPath)
				if err != nil {
					return fmt.Errorf("read photo: %w", err)
				}
				input.Photo = photo
			}
			added, err := app.Faculty.Add(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.out(), "added faculty %s (%s)\n", added.ID, added.Name)
			return nil
		},
	}
	add.Flags().StringVar(&input.ID, "id", "", "unique faculty identifier")
	add.Flags().StringVar(&input.Name, "name", "", "display name")
	add.Flags().StringVar(&input.Department, "department", "", "department")
	add.Flags().StringVar(&input.Email, "email", "", "email address")
	add.Flags().StringVar(&input.Phone, "phone", "", "phone number")
	add.Flags().StringVar(&photoPath, "photo", "", "path to a photo file")

	list := &cobra.Command{
		Use:   "list",
		Short: "List faculty members",
		RunE: func(cmd *cobra.Command, args []string) error {
			faculty, err := app.Faculty.List(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(app.out(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tDEPARTMENT\tEMAIL\tPHONE")
			for _, f := range faculty {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", f.ID, f.Name, f.Department, f.Email, f.Phone)
			}
			return tw.Flush()
		},
	}

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a faculty member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Faculty.Remove(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(add, list, remove)
	return cmd
}

func newRoomCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room",
		Short: "Manage the room registry",
	}

	var input application.RoomInput
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a room",
		RunE: func(cmd *cobra.Command, args []string) error {
			added, err := app.Rooms.Add(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.out(), "added room %s (%s, capacity %d)\n", added.Number, added.Type, added.Capacity)
			return nil
		},
	}
	add.Flags().StringVar(&input.Number, "number", "", "room number")
	add.Flags().IntVar(&input.Capacity, "capacity", 0, "seating capacity")
	add.Flags().StringVar(&input.Type, "type", "", "room type: "+strings.Join(application.RoomTypes(), ", "))
	add.Flags().StringVar(&input.Facilities, "facilities", "", "free-text facilities")

	list := &cobra.Command{
		Use:   "list",
		Short: "List rooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			rooms, err := app.Rooms.List(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(app.out(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NUMBER\tCAPACITY\tTYPE\tFACILITIES")
			for _, r := range rooms {
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", r.Number, r.Capacity, r.Type, r.Facilities)
			}
			return tw.Flush()
		},
	}

	remove := &cobra.Command{
		Use:   "remove <number>",
		Short: "Remove a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Rooms.Remove(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(add, list, remove)
	return cmd
}

func newPeriodCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "period",
		Short: "Manage the time period registry",
	}

	var start, end string
	var days []string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a time period",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := application.PeriodInput{Start: start, End: end}
			for _, raw := range days {
				day, err := schedule.ParseWeekday(raw)
				if err != nil {
					return err
				}
				input.Days = append(input.Days, day)
			}
			added, err := app.Periods.Add(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.out(), "added time period %s on %s\n", added.Label, joinDays(added.Days))
			return nil
		},
	}
	add.Flags().StringVar(&start, "start", "", "start time of day (HH:MM)")
	add.Flags().StringVar(&end, "end", "", "end time of day (HH:MM)")
	add.Flags().StringSliceVar(&days, "days", nil, "weekdays, e.g. Monday,Wednesday")

	list := &cobra.Command{
		Use:   "list",
		Short: "List time periods",
		RunE: func(cmd *cobra.Command, args []string) error {
			periods, err := app.Periods.List(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(app.out(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "LABEL\tDAYS")
			for _, p := range periods {
				fmt.Fprintf(tw, "%s\t%s\n", p.Label, joinDays(p.Days))
			}
			return tw.Flush()
		},
	}

	remove := &cobra.Command{
		Use:   "remove <label>",
		Short: "Remove every time period with the label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Periods.Remove(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(add, list, remove)
	return cmd
}

func newSubjectCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subject",
		Short: "Manage the subject registry",
	}

	var input application.SubjectInput
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			added, err := app.Subjects.Add(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.out(), "added subject %s (%s)\n", added.Code, added.Name)
			return nil
		},
	}
	add.Flags().StringVar(&input.Code, "code", "", "subject code")
	add.Flags().StringVar(&input.Name, "name", "", "display name")
	add.Flags().IntVar(&input.Credits, "credits", 0, "credit count")
	add.Flags().StringVar(&input.Department, "department", "", "department")

	list := &cobra.Command{
		Use:   "list",
		Short: "List subjects",
		RunE: func(cmd *cobra.Command, args []string) error {
			subjects, err := app.Subjects.List(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(app.out(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tNAME\tCREDITS\tDEPARTMENT")
			for _, s := range subjects {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", s.Code, s.Name, s.Credits, s.Department)
			}
			return tw.Flush()
		},
	}

	remove := &cobra.Command{
		Use:   "remove <code>",
		Short: "Remove a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Subjects.Remove(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(add, list, remove)
	return cmd
}

func joinDays(days []schedule.Weekday) string {
	parts := make([]string, len(days))
	for i, day := range days {
		parts[i] = string(day)
	}
	return strings.Join(parts, ",")
}
