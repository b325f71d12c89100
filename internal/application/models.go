package application

import (
	"time"

	"github.com/example/faculty-scheduler/internal/persistence"
	"github.com/example/faculty-scheduler/internal/schedule"
)

// FacultyInput captures caller provided faculty fields. Photo is an opaque
// image blob carried through persistence untouched.
type FacultyInput struct {
	ID         string
	Name       string
	Department string
	Email      string
	Phone      string
	Photo      []byte
}

// Room types form a fixed enumeration; input outside it is rejected.
const (
	RoomTypeLectureHall    = "Lecture Hall"
	RoomTypeLaboratory     = "Laboratory"
	RoomTypeSeminarRoom    = "Seminar Room"
	RoomTypeConferenceRoom = "Conference Room"
)

// RoomTypes returns the accepted room type values.
func RoomTypes() []string {
	return []string{RoomTypeLectureHall, RoomTypeLaboratory, RoomTypeSeminarRoom, RoomTypeConferenceRoom}
}

// RoomInput captures caller provided room fields.
type RoomInput struct {
	Number     string
	Capacity   int
	Type       string
	Facilities string
}

// PeriodInput captures caller provided time period fields. Start and End are
// "HH:MM" times of day; the display label is derived, never supplied.
type PeriodInput struct {
	Start string
	End   string
	Days  []schedule.Weekday
}

// SubjectInput captures caller provided subject fields.
type SubjectInput struct {
	Code       string
	Name       string
	Credits    int
	Department string
}

// BookingRequest identifies the slot and the faculty/subject pair to book
// into it.
type BookingRequest struct {
	PeriodLabel string
	RoomID      string
	Day         schedule.Weekday
	FacultyID   string
	SubjectID   string
}

// Snapshot aggregates all five collections for rendering and export.
type Snapshot struct {
	Faculty  []persistence.Faculty
	Rooms    []persistence.Room
	Periods  []persistence.TimePeriod
	Subjects []persistence.Subject
	Bookings map[schedule.SlotKey]schedule.Booking
}

// Backup is the single-document form of a snapshot used for export and
// import. Bookings are keyed by their composite slot key string.
type Backup struct {
	SnapshotID string                      `json:"snapshot_id"`
	CreatedAt  time.Time                   `json:"created_at"`
	Faculty    []persistence.Faculty       `json:"faculty"`
	Rooms      []persistence.Room          `json:"rooms"`
	Periods    []persistence.TimePeriod    `json:"time_periods"`
	Subjects   []persistence.Subject       `json:"subjects"`
	Schedule   map[string]schedule.Booking `json:"schedule"`
}
