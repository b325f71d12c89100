package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/example/faculty-scheduler/internal/schedule"
)

// WriteText renders the document as plain text tables.
func WriteText(w io.Writer, doc Document) error {
	title := "Faculty Schedule Report"
	if doc.DayFilter != schedule.AnyDay {
		title = fmt.Sprintf("%s (%s)", title, doc.DayFilter)
	}
	if _, err := fmt.Fprintf(w, "%s\nGenerated on: %s\n\n", title, doc.GeneratedAt.Format("2006-01-02 15:04:05")); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w,
		"Schedule Summary\n  Total Bookings: %d\n  Faculty Involved: %d\n  Subjects Scheduled: %d\n  Rooms in Use: %d\n\n",
		doc.Summary.TotalBookings,
		doc.Summary.FacultyInvolved,
		doc.Summary.SubjectsScheduled,
		doc.Summary.RoomsInUse,
	); err != nil {
		return err
	}

	if err := writeGrid(w, doc.Grid); err != nil {
		return err
	}
	if err := writeRosters(w, doc); err != nil {
		return err
	}
	return writeWorkloads(w, doc.Workloads)
}

func writeGrid(w io.Writer, grid Grid) error {
	if len(grid.Rows) == 0 || len(grid.Rooms) == 0 {
		_, err := fmt.Fprintln(w, "No schedule data.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Time / Room\t%s\n", strings.Join(grid.Rooms, "\t"))
	for _, row := range grid.Rows {
		cells := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			cells[i] = formatCell(cell)
		}
		fmt.Fprintf(tw, "%s\t%s\n", row.PeriodLabel, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// formatCell joins the bookings occupying a grid position; a vacant position
// renders as "Available".
func formatCell(cell Cell) string {
	if len(cell.Entries) == 0 {
		return "Available"
	}
	parts := make([]string, len(cell.Entries))
	for i, entry := range cell.Entries {
		parts[i] = formatEntry(entry)
	}
	return strings.Join(parts, " / ")
}

func formatEntry(entry CellEntry) string {
	text := strings.TrimSpace(entry.FacultyName + ": " + entry.SubjectName)
	if entry.Day != schedule.AnyDay {
		text = fmt.Sprintf("%s (%s)", text, entry.Day)
	}
	return text
}

func writeRosters(w io.Writer, doc Document) error {
	if len(doc.Faculty) > 0 {
		fmt.Fprintln(w, "Faculty List")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "Faculty ID\tName\tDepartment")
		for _, f := range doc.Faculty {
			department := f.Department
			if department == "" {
				department = "N/A"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", f.ID, f.Name, department)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	if len(doc.Subjects) > 0 {
		fmt.Fprintln(w, "Subject List")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "Subject Code\tSubject Name\tCredits")
		for _, s := range doc.Subjects {
			fmt.Fprintf(tw, "%s\t%s\t%d\n", s.Code, s.Name, s.Credits)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}

func writeWorkloads(w io.Writer, workloads []Workload) error {
	if len(workloads) == 0 {
		return nil
	}
	fmt.Fprintln(w, "Faculty Workload Analysis")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Faculty Name\tTotal Classes\tWorkload Status")
	for _, workload := range workloads {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", workload.FacultyName, workload.Classes, workload.Status)
	}
	return tw.Flush()
}
