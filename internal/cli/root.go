// Package cli is the interactive surface of the timetable tool. Each command
// is a thin adapter: parse flags, call a service, print the result.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/example/faculty-scheduler/internal/application"
)

// App bundles the services and output sinks the commands work against.
type App struct {
	Faculty   *application.FacultyService
	Rooms     *application.RoomService
	Periods   *application.PeriodService
	Subjects  *application.SubjectService
	Timetable *application.TimetableService
	Backups   *application.BackupService
	Logger    *slog.Logger
	Out       io.Writer
}

func (a *App) out() io.Writer {
	if a.Out != nil {
		return a.Out
	}
	return os.Stdout
}

// NewRootCommand assembles the full command tree.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "timetable",
		Short: "timetable manages faculty, rooms, subjects and weekly class bookings",
		Long: `timetable keeps registries of faculty, rooms, time periods and subjects,
books classes into (period, room, weekday) slots with conflict detection,
and renders the resulting schedule as text or PDF reports.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newFacultyCommand(app),
		newRoomCommand(app),
		newPeriodCommand(app),
		newSubjectCommand(app),
		newBookCommand(app),
		newCancelCommand(app),
		newResetCommand(app),
		newGridCommand(app),
		newScheduleCommand(app),
		newSuggestCommand(app),
		newCheckCommand(app),
		newExportCommand(app),
		newBackupCommand(app),
	)
	return root
}

// Execute runs the command tree under ctx and renders failures for the user.
// The ctx reaches every RunE through cmd.Context(), so cancelling it aborts
// in-flight repository calls. Conflict and validation errors print their
// reason; everything exits non-zero on failure.
func Execute(ctx context.Context, app *App) int {
	root := NewRootCommand(app)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		return 1
	}
	return 0
}

func renderError(err error) string {
	var conflict *application.ConflictError
	if errors.As(err, &conflict) {
		return "booking rejected:\n  " + joinReasons(conflict)
	}
	var validation *application.ValidationError
	if errors.As(err, &validation) {
		out := "invalid input:"
		for _, field := range sortedFields(validation) {
			out += fmt.Sprintf("\n  %s: %s", field, validation.FieldErrors[field])
		}
		return out
	}
	if errors.Is(err, application.ErrNotFound) {
		return "not found: " + err.Error()
	}
	if errors.Is(err, application.ErrAlreadyExists) {
		return "already exists: " + err.Error()
	}
	return err.Error()
}

func joinReasons(conflict *application.ConflictError) string {
	reasons := conflict.Reasons()
	if len(reasons) == 0 {
		return conflict.Error()
	}
	out := reasons[0]
	for _, reason := range reasons[1:] {
		out += "\n  " + reason
	}
	return out
}

func sortedFields(validation *application.ValidationError) []string {
	fields := make([]string, 0, len(validation.FieldErrors))
	for field := range validation.FieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
