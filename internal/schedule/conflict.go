package schedule

import (
	"fmt"
	"sort"
	"strings"
)

// ReasonSeparator joins independent conflict reasons into one composite
// message.
const ReasonSeparator = " | "

// CheckConflicts decides whether the proposed booking is admissible against
// the current collection. The faculty, subject, and room checks all run; their
// reasons are joined with ReasonSeparator. An empty result means no conflict.
//
// A proposal with Day set to AnyDay matches existing bookings on every
// weekday, which is how the suggestion search probes slots without committing
// to a day.
func CheckConflicts(proposed Booking, bookings map[SlotKey]Booking) string {
	keys := sortedKeys(bookings)

	reasons := make([]string, 0, 3)
	if reason := facultyConflict(proposed, keys, bookings); reason != "" {
		reasons = append(reasons, reason)
	}
	if reason := subjectConflict(proposed, keys, bookings); reason != "" {
		reasons = append(reasons, reason)
	}
	if reason := roomConflict(proposed, keys, bookings); reason != "" {
		reasons = append(reasons, reason)
	}

	return strings.Join(reasons, ReasonSeparator)
}

// BookingsFor returns the bookings whose faculty, subject, or room identifier
// matches id, ordered by period label, room, then weekday. The label ordering
// is textual; chronological order relies on zero-padded 24-hour labels.
func BookingsFor(kind EntityKind, id string, bookings map[SlotKey]Booking) []Booking {
	matched := make([]Booking, 0, len(bookings))
	for _, booking := range bookings {
		switch kind {
		case EntityFaculty:
			if booking.FacultyID != id {
				continue
			}
		case EntitySubject:
			if booking.SubjectID != id {
				continue
			}
		case EntityRoom:
			if booking.RoomID != id {
				continue
			}
		default:
			continue
		}
		matched = append(matched, booking)
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].PeriodLabel != matched[j].PeriodLabel {
			return matched[i].PeriodLabel < matched[j].PeriodLabel
		}
		if matched[i].RoomID != matched[j].RoomID {
			return matched[i].RoomID < matched[j].RoomID
		}
		return matched[i].Day.Index() < matched[j].Day.Index()
	})

	return matched
}

// ValidateIntegrity re-checks every booking against the rest of the
// collection. A collection mutated only through conflict-checked inserts
// yields no issues; non-empty output indicates state corrupted by direct
// manipulation such as a bulk import.
func ValidateIntegrity(bookings map[SlotKey]Booking) []string {
	issues := make([]string, 0)

	for _, key := range sortedKeys(bookings) {
		rest := make(map[SlotKey]Booking, len(bookings)-1)
		for k, v := range bookings {
			if k != key {
				rest[k] = v
			}
		}
		if reason := CheckConflicts(bookings[key], rest); reason != "" {
			issues = append(issues, fmt.Sprintf("Conflict in slot %s: %s", key, reason))
		}
	}

	return issues
}

// SuggestAlternatives probes every period label and room combination and
// returns those free of conflicts for the given faculty and subject. The
// probe is day-agnostic and results keep the input iteration order.
func SuggestAlternatives(facultyID, subjectID string, bookings map[SlotKey]Booking, periodLabels, roomIDs []string) []Slot {
	available := make([]Slot, 0, len(periodLabels)*len(roomIDs))

	for _, label := range periodLabels {
		for _, roomID := range roomIDs {
			proposal := Booking{
				PeriodLabel: label,
				RoomID:      roomID,
				Day:         AnyDay,
				FacultyID:   facultyID,
				SubjectID:   subjectID,
			}
			if CheckConflicts(proposal, bookings) == "" {
				available = append(available, Slot{PeriodLabel: label, RoomID: roomID})
			}
		}
	}

	return available
}

func facultyConflict(proposed Booking, keys []SlotKey, bookings map[SlotKey]Booking) string {
	for _, key := range keys {
		booking := bookings[key]
		if booking.FacultyID == proposed.FacultyID &&
			booking.PeriodLabel == proposed.PeriodLabel &&
			daysOverlap(proposed.Day, booking.Day) {
			return fmt.Sprintf("Faculty is already scheduled at %s in room %s",
				slotPhrase(booking.PeriodLabel, proposed.Day, booking.Day), booking.RoomID)
		}
	}
	return ""
}

func subjectConflict(proposed Booking, keys []SlotKey, bookings map[SlotKey]Booking) string {
	for _, key := range keys {
		booking := bookings[key]
		if booking.SubjectID == proposed.SubjectID &&
			booking.PeriodLabel == proposed.PeriodLabel &&
			daysOverlap(proposed.Day, booking.Day) {
			return fmt.Sprintf("Subject is already scheduled at %s in room %s",
				slotPhrase(booking.PeriodLabel, proposed.Day, booking.Day), booking.RoomID)
		}
	}
	return ""
}

func roomConflict(proposed Booking, keys []SlotKey, bookings map[SlotKey]Booking) string {
	if proposed.Day != AnyDay {
		key := SlotKey{PeriodLabel: proposed.PeriodLabel, RoomID: proposed.RoomID, Day: proposed.Day}
		if _, booked := bookings[key]; booked {
			return fmt.Sprintf("Room %s is already booked at %s",
				proposed.RoomID, slotPhrase(proposed.PeriodLabel, proposed.Day, proposed.Day))
		}
		return ""
	}

	for _, key := range keys {
		if key.PeriodLabel == proposed.PeriodLabel && key.RoomID == proposed.RoomID {
			return fmt.Sprintf("Room %s is already booked at %s",
				proposed.RoomID, slotPhrase(key.PeriodLabel, proposed.Day, key.Day))
		}
	}
	return ""
}

// daysOverlap reports whether two weekday values can denote the same day;
// AnyDay on either side matches everything.
func daysOverlap(a, b Weekday) bool {
	return a == AnyDay || b == AnyDay || a == b
}

// slotPhrase renders "label (day)" for weekday-aware checks and the bare
// label for day-agnostic ones.
func slotPhrase(label string, proposedDay, matchedDay Weekday) string {
	if proposedDay == AnyDay {
		return label
	}
	day := matchedDay
	if day == AnyDay {
		day = proposedDay
	}
	return fmt.Sprintf("%s (%s)", label, day)
}

func sortedKeys(bookings map[SlotKey]Booking) []SlotKey {
	keys := make([]SlotKey, 0, len(bookings))
	for key := range bookings {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].PeriodLabel != keys[j].PeriodLabel {
			return keys[i].PeriodLabel < keys[j].PeriodLabel
		}
		if keys[i].RoomID != keys[j].RoomID {
			return keys[i].RoomID < keys[j].RoomID
		}
		return keys[i].Day.Index() < keys[j].Day.Index()
	})
	return keys
}
