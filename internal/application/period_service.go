package application

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/example/faculty-scheduler/internal/persistence"
	"github.com/example/faculty-scheduler/internal/schedule"
)

// PeriodService orchestrates validation and persistence for time periods.
type PeriodService struct {
	periods persistence.PeriodRepository
	logger  *slog.Logger
}

// NewPeriodService constructs a period service.
func NewPeriodService(periods persistence.PeriodRepository, logger *slog.Logger) *PeriodService {
	return &PeriodService{periods: periods, logger: defaultLogger(logger)}
}

func (s *PeriodService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "PeriodService", operation, attrs...)
}

// Add validates the time range, derives the display label, and persists the
// period. Start and end accept "H:MM" input but are normalised to the
// zero-padded form so labels sort chronologically.
func (s *PeriodService) Add(ctx context.Context, input PeriodInput) (period persistence.TimePeriod, err error) {
	if s == nil || s.periods == nil {
		err = fmt.Errorf("period repository not configured")
		return
	}

	logger := s.loggerWith(ctx, "Add", "start", input.Start, "end", input.End)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to add time period", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("label", period.Label).InfoContext(ctx, "time period added")
	}()

	vErr := &ValidationError{}

	start, startErr := schedule.ParseClock(input.Start)
	if startErr != nil {
		vErr.add("start", startErr.Error())
	}
	end, endErr := schedule.ParseClock(input.End)
	if endErr != nil {
		vErr.add("end", endErr.Error())
	}
	if startErr == nil && endErr == nil && start >= end {
		vErr.add("time", "end time must be after start time")
	}

	if len(input.Days) == 0 {
		vErr.add("days", "at least one weekday is required")
	}
	for _, day := range input.Days {
		if !day.Valid() {
			vErr.add("days", fmt.Sprintf("unknown weekday %q", day))
			break
		}
	}

	if vErr.HasErrors() {
		err = vErr
		return
	}

	period = persistence.TimePeriod{
		Label: schedule.PeriodLabel(start, end),
		Start: start,
		End:   end,
		Days:  schedule.NormalizeDays(input.Days),
	}

	if err = s.periods.AddPeriod(ctx, period); err != nil {
		err = mapRepoError(err)
		return
	}
	return
}

// List returns all time periods ordered by start time, then label.
func (s *PeriodService) List(ctx context.Context) ([]persistence.TimePeriod, error) {
	if s == nil || s.periods == nil {
		return nil, fmt.Errorf("period repository not configured")
	}

	periods, err := s.periods.ListPeriods(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(periods, func(i, j int) bool {
		if periods[i].Start != periods[j].Start {
			return periods[i].Start < periods[j].Start
		}
		return periods[i].Label < periods[j].Label
	})
	return periods, nil
}

// Remove deletes every period record carrying the label; unknown labels are
// a no-op.
func (s *PeriodService) Remove(ctx context.Context, label string) error {
	if s == nil || s.periods == nil {
		return fmt.Errorf("period repository not configured")
	}

	logger := s.loggerWith(ctx, "Remove", "label", label)
	if err := s.periods.DeletePeriod(ctx, label); err != nil {
		logger.ErrorContext(ctx, "failed to remove time period", "error", err, "error_kind", ErrorKind(err))
		return err
	}
	logger.InfoContext(ctx, "time period removed")
	return nil
}
