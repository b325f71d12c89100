// Package testfixtures provides deterministic record builders shared by the
// persistence and application tests.
package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/example/faculty-scheduler/internal/persistence"
	"github.com/example/faculty-scheduler/internal/schedule"
)

var (
	facultyCounter uint64
	roomCounter    uint64
	subjectCounter uint64
)

var referenceTime = time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)

// ReferenceTime returns the canonical baseline timestamp used by fixtures.
func ReferenceTime() time.Time {
	return referenceTime
}

// FacultyOption configures a generated faculty record.
type FacultyOption func(*persistence.Faculty)

// NewFaculty returns a deterministic faculty record with optional overrides.
func NewFaculty(opts ...FacultyOption) persistence.Faculty {
	idx := atomic.AddUint64(&facultyCounter, 1)
	record := persistence.Faculty{
		ID:         fmt.Sprintf("FAC%03d", idx),
		Name:       fmt.Sprintf("Faculty %03d", idx),
		Department: "General Studies",
		Email:      fmt.Sprintf("fac%03d@example.edu", idx),
	}
	for _, opt := range opts {
		opt(&record)
	}
	return record
}

// WithFacultyID overrides the generated identifier.
func WithFacultyID(id string) FacultyOption {
	return func(f *persistence.Faculty) { f.ID = id }
}

// WithFacultyName overrides the generated display name.
func WithFacultyName(name string) FacultyOption {
	return func(f *persistence.Faculty) { f.Name = name }
}

// WithFacultyPhoto attaches a photo blob.
func WithFacultyPhoto(photo []byte) FacultyOption {
	return func(f *persistence.Faculty) { f.Photo = photo }
}

// RoomOption configures a generated room record.
type RoomOption func(*persistence.Room)

// NewRoom returns a deterministic room record with optional overrides.
func NewRoom(opts ...RoomOption) persistence.Room {
	idx := atomic.AddUint64(&roomCounter, 1)
	record := persistence.Room{
		Number:   fmt.Sprintf("%d", 100+idx),
		Capacity: 30,
		Type:     "Lecture Hall",
	}
	for _, opt := range opts {
		opt(&record)
	}
	return record
}

// WithRoomNumber overrides the generated room number.
func WithRoomNumber(number string) RoomOption {
	return func(r *persistence.Room) { r.Number = number }
}

// WithRoomType overrides the room type.
func WithRoomType(roomType string) RoomOption {
	return func(r *persistence.Room) { r.Type = roomType }
}

// PeriodOption configures a generated time period record.
type PeriodOption func(*persistence.TimePeriod)

// NewPeriod returns a one-hour period starting at the given hour on the
// Monday to Friday teaching week.
func NewPeriod(hour int, opts ...PeriodOption) persistence.TimePeriod {
	start := fmt.Sprintf("%02d:00", hour)
	end := fmt.Sprintf("%02d:00", hour+1)
	record := persistence.TimePeriod{
		Label: schedule.PeriodLabel(start, end),
		Start: start,
		End:   end,
		Days:  schedule.DefaultTeachingDays(),
	}
	for _, opt := range opts {
		opt(&record)
	}
	return record
}

// WithPeriodDays overrides the weekday set.
func WithPeriodDays(days ...schedule.Weekday) PeriodOption {
	return func(p *persistence.TimePeriod) { p.Days = days }
}

// SubjectOption configures a generated subject record.
type SubjectOption func(*persistence.Subject)

// NewSubject returns a deterministic subject record with optional overrides.
func NewSubject(opts ...SubjectOption) persistence.Subject {
	idx := atomic.AddUint64(&subjectCounter, 1)
	record := persistence.Subject{
		Code:    fmt.Sprintf("SUB%03d", idx),
		Name:    fmt.Sprintf("Subject %03d", idx),
		Credits: 3,
	}
	for _, opt := range opts {
		opt(&record)
	}
	return record
}

// WithSubjectCode overrides the generated code.
func WithSubjectCode(code string) SubjectOption {
	return func(s *persistence.Subject) { s.Code = code }
}

// NewBooking assembles a booking for the given records on the weekday.
func NewBooking(period persistence.TimePeriod, room persistence.Room, day schedule.Weekday, faculty persistence.Faculty, subject persistence.Subject) schedule.Booking {
	return schedule.Booking{
		PeriodLabel: period.Label,
		RoomID:      room.Number,
		Day:         day,
		FacultyID:   faculty.ID,
		SubjectID:   subject.Code,
	}
}
