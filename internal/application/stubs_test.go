package application

import (
	"context"
	"fmt"

	"github.com/example/faculty-scheduler/internal/persistence"
	"github.com/example/faculty-scheduler/internal/schedule"
)

// storeStub is an in-memory persistence.Store used across the service tests.
// Error fields inject failures per collection.
type storeStub struct {
	faculty  []persistence.Faculty
	rooms    []persistence.Room
	periods  []persistence.TimePeriod
	subjects []persistence.Subject
	bookings map[schedule.SlotKey]schedule.Booking

	facultyErr error
	roomErr    error
	periodErr  error
	subjectErr error
	bookingErr error
}

func newStoreStub() *storeStub {
	return &storeStub{bookings: make(map[schedule.SlotKey]schedule.Booking)}
}

func (s *storeStub) AddFaculty(ctx context.Context, faculty persistence.Faculty) error {
	if s.facultyErr != nil {
		return s.facultyErr
	}
	for _, existing := range s.faculty {
		if existing.ID == faculty.ID {
			return fmt.Errorf("faculty %s: %w", faculty.ID, persistence.ErrDuplicate)
		}
	}
	s.faculty = append(s.faculty, faculty)
	return nil
}

func (s *storeStub) GetFaculty(ctx context.Context, id string) (persistence.Faculty, error) {
	if s.facultyErr != nil {
		return persistence.Faculty{}, s.facultyErr
	}
	for _, existing := range s.faculty {
		if existing.ID == id {
			return existing, nil
		}
	}
	return persistence.Faculty{}, fmt.Errorf("faculty %s: %w", id, persistence.ErrNotFound)
}

func (s *storeStub) ListFaculty(ctx context.Context) ([]persistence.Faculty, error) {
	if s.facultyErr != nil {
		return nil, s.facultyErr
	}
	out := make([]persistence.Faculty, len(s.faculty))
	copy(out, s.faculty)
	return out, nil
}

func (s *storeStub) DeleteFaculty(ctx context.Context, id string) error {
	if s.facultyErr != nil {
		return s.facultyErr
	}
	for i, existing := range s.faculty {
		if existing.ID == id {
			s.faculty = append(s.faculty[:i], s.faculty[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *storeStub) AddRoom(ctx context.Context, room persistence.Room) error {
	if s.roomErr != nil {
		return s.roomErr
	}
	for _, existing := range s.rooms {
		if existing.Number == room.Number {
			return fmt.Errorf("room %s: %w", room.Number, persistence.ErrDuplicate)
		}
	}
	s.rooms = append(s.rooms, room)
	return nil
}

func (s *storeStub) GetRoom(ctx context.Context, number string) (persistence.Room, error) {
	if s.roomErr != nil {
		return persistence.Room{}, s.roomErr
	}
	for _, existing := range s.rooms {
		if existing.Number == number {
			return existing, nil
		}
	}
	return persistence.Room{}, fmt.Errorf("room %s: %w", number, persistence.ErrNotFound)
}

func (s *storeStub) ListRooms(ctx context.Context) ([]persistence.Room, error) {
	if s.roomErr != nil {
		return nil, s.roomErr
	}
	out := make([]persistence.Room, len(s.rooms))
	copy(out, s.rooms)
	return out, nil
}

func (s *storeStub) DeleteRoom(ctx context.Context, number string) error {
	if s.roomErr != nil {
		return s.roomErr
	}
	for i, existing := range s.rooms {
		if existing.Number == number {
			s.rooms = append(s.rooms[:i], s.rooms[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *storeStub) AddPeriod(ctx context.Context, period persistence.TimePeriod) error {
	if s.periodErr != nil {
		return s.periodErr
	}
	for _, existing := range s.periods {
		if existing.Label == period.Label && sameDaySet(existing.Days, period.Days) {
			return fmt.Errorf("period %s: %w", period.Label, persistence.ErrDuplicate)
		}
	}
	s.periods = append(s.periods, period)
	return nil
}

func (s *storeStub) ListPeriods(ctx context.Context) ([]persistence.TimePeriod, error) {
	if s.periodErr != nil {
		return nil, s.periodErr
	}
	out := make([]persistence.TimePeriod, len(s.periods))
	copy(out, s.periods)
	return out, nil
}

func (s *storeStub) DeletePeriod(ctx context.Context, label string) error {
	if s.periodErr != nil {
		return s.periodErr
	}
	kept := s.periods[:0]
	for _, existing := range s.periods {
		if existing.Label != label {
			kept = append(kept, existing)
		}
	}
	s.periods = kept
	return nil
}

func (s *storeStub) AddSubject(ctx context.Context, subject persistence.Subject) error {
	if s.subjectErr != nil {
		return s.subjectErr
	}
	for _, existing := range s.subjects {
		if existing.Code == subject.Code {
			return fmt.Errorf("subject %s: %w", subject.Code, persistence.ErrDuplicate)
		}
	}
	s.subjects = append(s.subjects, subject)
	return nil
}

func (s *storeStub) GetSubject(ctx context.Context, code string) (persistence.Subject, error) {
	if s.subjectErr != nil {
		return persistence.Subject{}, s.subjectErr
	}
	for _, existing := range s.subjects {
		if existing.Code == code {
			return existing, nil
		}
	}
	return persistence.Subject{}, fmt.Errorf("subject %s: %w", code, persistence.ErrNotFound)
}

func (s *storeStub) ListSubjects(ctx context.Context) ([]persistence.Subject, error) {
	if s.subjectErr != nil {
		return nil, s.subjectErr
	}
	out := make([]persistence.Subject, len(s.subjects))
	copy(out, s.subjects)
	return out, nil
}

func (s *storeStub) DeleteSubject(ctx context.Context, code string) error {
	if s.subjectErr != nil {
		return s.subjectErr
	}
	for i, existing := range s.subjects {
		if existing.Code == code {
			s.subjects = append(s.subjects[:i], s.subjects[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *storeStub) PutBooking(ctx context.Context, booking schedule.Booking) error {
	if s.bookingErr != nil {
		return s.bookingErr
	}
	key := booking.Key()
	if _, occupied := s.bookings[key]; occupied {
		return fmt.Errorf("slot %s: %w", key, persistence.ErrDuplicate)
	}
	s.bookings[key] = booking
	return nil
}

func (s *storeStub) GetBooking(ctx context.Context, key schedule.SlotKey) (schedule.Booking, error) {
	if s.bookingErr != nil {
		return schedule.Booking{}, s.bookingErr
	}
	booking, ok := s.bookings[key]
	if !ok {
		return schedule.Booking{}, fmt.Errorf("slot %s: %w", key, persistence.ErrNotFound)
	}
	return booking, nil
}

func (s *storeStub) ListBookings(ctx context.Context) (map[schedule.SlotKey]schedule.Booking, error) {
	if s.bookingErr != nil {
		return nil, s.bookingErr
	}
	out := make(map[schedule.SlotKey]schedule.Booking, len(s.bookings))
	for key, booking := range s.bookings {
		out[key] = booking
	}
	return out, nil
}

func (s *storeStub) DeleteBooking(ctx context.Context, key schedule.SlotKey) error {
	if s.bookingErr != nil {
		return s.bookingErr
	}
	if _, ok := s.bookings[key]; !ok {
		return fmt.Errorf("slot %s: %w", key, persistence.ErrNotFound)
	}
	delete(s.bookings, key)
	return nil
}

func (s *storeStub) ResetBookings(ctx context.Context) error {
	if s.bookingErr != nil {
		return s.bookingErr
	}
	s.bookings = make(map[schedule.SlotKey]schedule.Booking)
	return nil
}

func (s *storeStub) Close() error { return nil }

func sameDaySet(a, b []schedule.Weekday) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[schedule.Weekday]struct{}, len(a))
	for _, day := range a {
		seen[day] = struct{}{}
	}
	for _, day := range b {
		if _, ok := seen[day]; !ok {
			return false
		}
	}
	return true
}
