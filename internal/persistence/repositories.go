package persistence

import (
	"context"

	"github.com/example/faculty-scheduler/internal/schedule"
)

// FacultyRepository exposes CRUD operations for faculty records.
type FacultyRepository interface {
	AddFaculty(ctx context.Context, faculty Faculty) error
	GetFaculty(ctx context.Context, id string) (Faculty, error)
	ListFaculty(ctx context.Context) ([]Faculty, error)
	// DeleteFaculty is a no-op when the identifier is unknown.
	DeleteFaculty(ctx context.Context, id string) error
}

// RoomRepository exposes CRUD operations for room records.
type RoomRepository interface {
	AddRoom(ctx context.Context, room Room) error
	GetRoom(ctx context.Context, number string) (Room, error)
	ListRooms(ctx context.Context) ([]Room, error)
	DeleteRoom(ctx context.Context, number string) error
}

// PeriodRepository exposes CRUD operations for time period records. The
// uniqueness key is the (label, weekday set) pair; deletion removes every
// record carrying the label.
type PeriodRepository interface {
	AddPeriod(ctx context.Context, period TimePeriod) error
	ListPeriods(ctx context.Context) ([]TimePeriod, error)
	DeletePeriod(ctx context.Context, label string) error
}

// SubjectRepository exposes CRUD operations for subject records.
type SubjectRepository interface {
	AddSubject(ctx context.Context, subject Subject) error
	GetSubject(ctx context.Context, code string) (Subject, error)
	ListSubjects(ctx context.Context) ([]Subject, error)
	DeleteSubject(ctx context.Context, code string) error
}

// BookingRepository stores the booking collection keyed by composite slot.
// PutBooking reports ErrDuplicate for an occupied key instead of silently
// overwriting; existence is checked inside the store, not left to callers.
type BookingRepository interface {
	PutBooking(ctx context.Context, booking schedule.Booking) error
	GetBooking(ctx context.Context, key schedule.SlotKey) (schedule.Booking, error)
	ListBookings(ctx context.Context) (map[schedule.SlotKey]schedule.Booking, error)
	// DeleteBooking reports ErrNotFound when the key is vacant; cancelling
	// requires an existing booking.
	DeleteBooking(ctx context.Context, key schedule.SlotKey) error
	// ResetBookings clears the whole collection unconditionally.
	ResetBookings(ctx context.Context) error
}

// Store aggregates the five record collections behind one handle.
type Store interface {
	FacultyRepository
	RoomRepository
	PeriodRepository
	SubjectRepository
	BookingRepository
	Close() error
}
