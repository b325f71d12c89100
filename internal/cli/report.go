package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/faculty-scheduler/internal/report"
	"github.com/example/faculty-scheduler/internal/schedule"
)

func newGridCommand(app *App) *cobra.Command {
	var dayValue string
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the schedule grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			day := schedule.AnyDay
			if dayValue != "" {
				parsed, err := schedule.ParseWeekday(dayValue)
				if err != nil {
					return err
				}
				day = parsed
			}
			doc, err := buildDocument(app, cmd, day)
			if err != nil {
				return err
			}
			return report.WriteText(app.out(), doc)
		},
	}
	cmd.Flags().StringVar(&dayValue, "day", "", "restrict the grid to one weekday")
	return cmd
}

func newExportCommand(app *App) *cobra.Command {
	var format, outPath string
	var workload bool
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the schedule report as text or PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := buildDocument(app, cmd, schedule.AnyDay)
			if err != nil {
				return err
			}

			var out io.Writer = app.out()
			if outPath != "" {
				file, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer file.Close()
				out = file
			}

			switch format {
			case "text":
				if workload {
					return fmt.Errorf("--workload requires --format pdf")
				}
				return report.WriteText(out, doc)
			case "pdf":
				if outPath == "" {
					return fmt.Errorf("--out is required for PDF export")
				}
				if workload {
					return report.WriteWorkloadPDF(out, doc)
				}
				return report.WritePDF(out, doc)
			default:
				return fmt.Errorf("unknown format %q: use text or pdf", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or pdf")
	cmd.Flags().StringVar(&outPath, "out", "", "output file path")
	cmd.Flags().BoolVar(&workload, "workload", false, "export the faculty workload report instead of the schedule")
	return cmd
}

func buildDocument(app *App, cmd *cobra.Command, day schedule.Weekday) (report.Document, error) {
	snap, err := app.Timetable.Snapshot(cmd.Context())
	if err != nil {
		return report.Document{}, err
	}
	return report.Build(snap.Bookings, snap.Faculty, snap.Rooms, snap.Periods, snap.Subjects, day, time.Now()), nil
}
