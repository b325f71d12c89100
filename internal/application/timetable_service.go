package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/example/faculty-scheduler/internal/persistence"
	"github.com/example/faculty-scheduler/internal/schedule"
)

// TimetableService owns the booking lifecycle: conflict-checked insertion,
// explicit cancellation, bulk reset, and the query operations built on the
// conflict detector.
type TimetableService struct {
	bookings persistence.BookingRepository
	faculty  persistence.FacultyRepository
	rooms    persistence.RoomRepository
	periods  persistence.PeriodRepository
	subjects persistence.SubjectRepository
	logger   *slog.Logger
}

// NewTimetableService wires the repositories needed for booking operations.
func NewTimetableService(
	bookings persistence.BookingRepository,
	faculty persistence.FacultyRepository,
	rooms persistence.RoomRepository,
	periods persistence.PeriodRepository,
	subjects persistence.SubjectRepository,
	logger *slog.Logger,
) *TimetableService {
	return &TimetableService{
		bookings: bookings,
		faculty:  faculty,
		rooms:    rooms,
		periods:  periods,
		subjects: subjects,
		logger:   defaultLogger(logger),
	}
}

func (s *TimetableService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "TimetableService", operation, attrs...)
}

// Book inserts a booking after the conflict check passes. Insertion is
// existence-check-then-insert: the store rejects an occupied key rather than
// overwriting it, so a lost race surfaces as a conflict, never as silent
// replacement.
func (s *TimetableService) Book(ctx context.Context, request BookingRequest) (booking schedule.Booking, err error) {
	if s == nil || s.bookings == nil {
		err = fmt.Errorf("booking repository not configured")
		return
	}

	logger := s.loggerWith(ctx, "Book",
		"period_label", request.PeriodLabel,
		"room_id", request.RoomID,
		"weekday", string(request.Day),
	)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to book slot", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "slot booked")
	}()

	if err = s.validateRequest(ctx, request); err != nil {
		return
	}

	booking = schedule.Booking{
		PeriodLabel: request.PeriodLabel,
		RoomID:      request.RoomID,
		Day:         request.Day,
		FacultyID:   request.FacultyID,
		SubjectID:   request.SubjectID,
	}

	existing, err := s.bookings.ListBookings(ctx)
	if err != nil {
		return
	}

	if reason := schedule.CheckConflicts(booking, existing); reason != "" {
		err = &ConflictError{Reason: reason}
		return
	}

	if err = s.bookings.PutBooking(ctx, booking); err != nil {
		if errors.Is(err, persistence.ErrDuplicate) {
			err = &ConflictError{Reason: fmt.Sprintf("Room %s is already booked at %s (%s)",
				booking.RoomID, booking.PeriodLabel, booking.Day)}
			return
		}
		return
	}
	return
}

// Cancel removes the booking at the key. Cancelling a vacant slot reports
// ErrNotFound; only an existing booking can transition back to available.
func (s *TimetableService) Cancel(ctx context.Context, key schedule.SlotKey) error {
	if s == nil || s.bookings == nil {
		return fmt.Errorf("booking repository not configured")
	}

	logger := s.loggerWith(ctx, "Cancel", "slot_key", key.String())
	if err := s.bookings.DeleteBooking(ctx, key); err != nil {
		err = mapRepoError(err)
		logger.ErrorContext(ctx, "failed to cancel booking", "error", err, "error_kind", ErrorKind(err))
		return err
	}
	logger.InfoContext(ctx, "booking cancelled")
	return nil
}

// Reset clears the entire booking collection unconditionally.
func (s *TimetableService) Reset(ctx context.Context) error {
	if s == nil || s.bookings == nil {
		return fmt.Errorf("booking repository not configured")
	}

	logger := s.loggerWith(ctx, "Reset")
	if err := s.bookings.ResetBookings(ctx); err != nil {
		logger.ErrorContext(ctx, "failed to reset schedule", "error", err, "error_kind", ErrorKind(err))
		return err
	}
	logger.InfoContext(ctx, "schedule reset")
	return nil
}

// List returns every booking keyed by slot.
func (s *TimetableService) List(ctx context.Context) (map[schedule.SlotKey]schedule.Booking, error) {
	if s == nil || s.bookings == nil {
		return nil, fmt.Errorf("booking repository not configured")
	}
	return s.bookings.ListBookings(ctx)
}

// BookingsFor returns the bookings matching one faculty, subject, or room
// identifier, ordered by period label.
func (s *TimetableService) BookingsFor(ctx context.Context, kind schedule.EntityKind, id string) ([]schedule.Booking, error) {
	if s == nil || s.bookings == nil {
		return nil, fmt.Errorf("booking repository not configured")
	}

	bookings, err := s.bookings.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.BookingsFor(kind, id, bookings), nil
}

// Suggest returns the conflict-free (period, room) combinations for the
// faculty/subject pair, probing every known period label and room number.
func (s *TimetableService) Suggest(ctx context.Context, facultyID, subjectID string) ([]schedule.Slot, error) {
	if s == nil || s.bookings == nil {
		return nil, fmt.Errorf("booking repository not configured")
	}

	bookings, err := s.bookings.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	periods, err := s.periods.ListPeriods(ctx)
	if err != nil {
		return nil, err
	}
	labels := make([]string, 0, len(periods))
	seen := make(map[string]struct{}, len(periods))
	for _, period := range periods {
		if _, dup := seen[period.Label]; dup {
			continue
		}
		seen[period.Label] = struct{}{}
		labels = append(labels, period.Label)
	}

	rooms, err := s.rooms.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	numbers := make([]string, len(rooms))
	for i, room := range rooms {
		numbers[i] = room.Number
	}

	return schedule.SuggestAlternatives(facultyID, subjectID, bookings, labels, numbers), nil
}

// CheckIntegrity re-validates the whole booking collection. Collections
// mutated only through Book and Cancel report no issues; non-empty output
// indicates corruption by direct manipulation such as a backup import.
func (s *TimetableService) CheckIntegrity(ctx context.Context) ([]string, error) {
	if s == nil || s.bookings == nil {
		return nil, fmt.Errorf("booking repository not configured")
	}

	bookings, err := s.bookings.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.ValidateIntegrity(bookings), nil
}

// Snapshot loads all five collections for rendering and export.
func (s *TimetableService) Snapshot(ctx context.Context) (Snapshot, error) {
	if s == nil || s.bookings == nil {
		return Snapshot{}, fmt.Errorf("booking repository not configured")
	}

	var snap Snapshot
	var err error
	if snap.Faculty, err = s.faculty.ListFaculty(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Rooms, err = s.rooms.ListRooms(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Periods, err = s.periods.ListPeriods(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Subjects, err = s.subjects.ListSubjects(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Bookings, err = s.bookings.ListBookings(ctx); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// validateRequest checks the request fields and that the referenced records
// exist at booking time. Later deletion of those records still leaves the
// booking dangling; the check only guards initial entry.
func (s *TimetableService) validateRequest(ctx context.Context, request BookingRequest) error {
	vErr := &ValidationError{}

	if strings.TrimSpace(request.PeriodLabel) == "" {
		vErr.add("period", "time period label is required")
	}
	if strings.TrimSpace(request.RoomID) == "" {
		vErr.add("room", "room number is required")
	}
	if !request.Day.Valid() {
		vErr.add("weekday", "a valid weekday is required")
	}
	if strings.TrimSpace(request.FacultyID) == "" {
		vErr.add("faculty", "faculty id is required")
	}
	if strings.TrimSpace(request.SubjectID) == "" {
		vErr.add("subject", "subject code is required")
	}
	if vErr.HasErrors() {
		return vErr
	}

	if s.faculty != nil {
		if _, err := s.faculty.GetFaculty(ctx, request.FacultyID); err != nil {
			if errors.Is(err, persistence.ErrNotFound) {
				vErr.add("faculty", fmt.Sprintf("unknown faculty id %q", request.FacultyID))
			} else {
				return err
			}
		}
	}
	if s.subjects != nil {
		if _, err := s.subjects.GetSubject(ctx, request.SubjectID); err != nil {
			if errors.Is(err, persistence.ErrNotFound) {
				vErr.add("subject", fmt.Sprintf("unknown subject code %q", request.SubjectID))
			} else {
				return err
			}
		}
	}
	if s.rooms != nil {
		if _, err := s.rooms.GetRoom(ctx, request.RoomID); err != nil {
			if errors.Is(err, persistence.ErrNotFound) {
				vErr.add("room", fmt.Sprintf("unknown room number %q", request.RoomID))
			} else {
				return err
			}
		}
	}
	if s.periods != nil {
		known, err := s.periodCoversDay(ctx, request.PeriodLabel, request.Day)
		if err != nil {
			return err
		}
		if !known {
			vErr.add("period", fmt.Sprintf("no time period %q applies on %s", request.PeriodLabel, request.Day))
		}
	}

	if vErr.HasErrors() {
		return vErr
	}
	return nil
}

// periodCoversDay reports whether any period record with the label includes
// the weekday in its set.
func (s *TimetableService) periodCoversDay(ctx context.Context, label string, day schedule.Weekday) (bool, error) {
	periods, err := s.periods.ListPeriods(ctx)
	if err != nil {
		return false, err
	}
	for _, period := range periods {
		if period.Label != label {
			continue
		}
		for _, candidate := range period.Days {
			if candidate == day {
				return true, nil
			}
		}
	}
	return false, nil
}
