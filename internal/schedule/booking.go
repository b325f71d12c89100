package schedule

import (
	"fmt"
	"strings"
)

// SlotKey identifies a bookable slot: one room during one recurring time
// period on one weekday. It is the storage key of the booking collection, so
// room-slot uniqueness is structural.
type SlotKey struct {
	PeriodLabel string
	RoomID      string
	Day         Weekday
}

// String renders the composite key in its persisted form,
// "<label>_<room>_<weekday>".
func (k SlotKey) String() string {
	return k.PeriodLabel + "_" + k.RoomID + "_" + string(k.Day)
}

// ParseSlotKey parses the persisted composite key form. Period labels are
// "HH:MM - HH:MM" strings and weekday names contain no underscore, so the
// label ends at the first underscore and the weekday starts after the last
// one; room identifiers containing underscores round-trip intact.
func ParseSlotKey(value string) (SlotKey, error) {
	first := strings.Index(value, "_")
	last := strings.LastIndex(value, "_")
	if first < 0 || last <= first {
		return SlotKey{}, fmt.Errorf("malformed slot key %q", value)
	}

	day, err := ParseWeekday(value[last+1:])
	if err != nil {
		return SlotKey{}, fmt.Errorf("malformed slot key %q: %w", value, err)
	}

	return SlotKey{
		PeriodLabel: value[:first],
		RoomID:      value[first+1 : last],
		Day:         day,
	}, nil
}

// Booking is the atomic scheduling unit: a faculty member teaching a subject
// in a room during a recurring weekly slot. Faculty and subject identifiers
// are weak references and may dangle after the referenced record is deleted.
// The JSON field names mirror the flat record layout of the persisted
// schedule document.
type Booking struct {
	PeriodLabel string  `json:"time_slot"`
	RoomID      string  `json:"room_number"`
	Day         Weekday `json:"day"`
	FacultyID   string  `json:"faculty_id"`
	SubjectID   string  `json:"subject_code"`
}

// Key returns the composite storage key for the booking.
func (b Booking) Key() SlotKey {
	return SlotKey{PeriodLabel: b.PeriodLabel, RoomID: b.RoomID, Day: b.Day}
}

// EntityKind selects which identifier field a booking query filters on.
type EntityKind string

const (
	EntityFaculty EntityKind = "faculty"
	EntitySubject EntityKind = "subject"
	EntityRoom    EntityKind = "room"
)

// Slot pairs a time period label with a room identifier; it is the unit
// returned by the alternative-slot suggestion search.
type Slot struct {
	PeriodLabel string
	RoomID      string
}
