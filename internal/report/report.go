// Package report builds a renderable document model from the schedule and
// reference collections, then writes it as plain text or PDF.
package report

import (
	"sort"
	"time"

	"github.com/example/faculty-scheduler/internal/persistence"
	"github.com/example/faculty-scheduler/internal/schedule"
)

// Workload status labels, keyed by booking count buckets.
const (
	StatusNoClasses = "No classes assigned"
	StatusLight     = "Light workload"
	StatusModerate  = "Moderate workload"
	StatusHeavy     = "Heavy workload"
)

// Document is the rendered-agnostic form of a schedule report.
type Document struct {
	GeneratedAt time.Time
	DayFilter   schedule.Weekday
	Summary     Summary
	Grid        Grid
	Faculty     []persistence.Faculty
	Subjects    []persistence.Subject
	Workloads   []Workload
}

// Summary holds the headline booking counts.
type Summary struct {
	TotalBookings     int
	FacultyInvolved   int
	SubjectsScheduled int
	RoomsInUse        int
}

// Grid is the period-by-room schedule table. Rows are ordered by the textual
// period label; zero-padded 24h labels make that order chronological.
type Grid struct {
	Rooms []string
	Rows  []GridRow
}

// GridRow is one time period across all rooms. Cells align with Grid.Rooms.
type GridRow struct {
	PeriodLabel string
	Cells       []Cell
}

// Cell holds the bookings occupying one (period, room) position. An empty
// entry list renders as "Available".
type Cell struct {
	Entries []CellEntry
}

// CellEntry is one booking's display form. Dangling faculty or subject
// references fall back to the raw identifier.
type CellEntry struct {
	FacultyName string
	SubjectName string
	Day         schedule.Weekday
}

// Workload is one faculty member's booking count and bucket.
type Workload struct {
	FacultyName string
	Classes     int
	Status      string
}

// Build assembles the document. A dayFilter other than schedule.AnyDay
// restricts the grid and summary to bookings on that weekday; rosters and
// workloads always cover the full collection.
func Build(
	bookings map[schedule.SlotKey]schedule.Booking,
	faculty []persistence.Faculty,
	rooms []persistence.Room,
	periods []persistence.TimePeriod,
	subjects []persistence.Subject,
	dayFilter schedule.Weekday,
	generatedAt time.Time,
) Document {
	facultyByID := make(map[string]persistence.Faculty, len(faculty))
	for _, f := range faculty {
		facultyByID[f.ID] = f
	}
	subjectByCode := make(map[string]persistence.Subject, len(subjects))
	for _, s := range subjects {
		subjectByCode[s.Code] = s
	}

	visible := make(map[schedule.SlotKey]schedule.Booking, len(bookings))
	for key, booking := range bookings {
		if dayFilter != schedule.AnyDay && booking.Day != dayFilter {
			continue
		}
		visible[key] = booking
	}

	doc := Document{
		GeneratedAt: generatedAt,
		DayFilter:   dayFilter,
		Summary:     summarize(visible),
		Grid:        buildGrid(visible, rooms, periods, facultyByID, subjectByCode),
		Workloads:   buildWorkloads(bookings, faculty),
	}

	doc.Faculty = append(doc.Faculty, faculty...)
	sort.Slice(doc.Faculty, func(i, j int) bool { return doc.Faculty[i].ID < doc.Faculty[j].ID })
	doc.Subjects = append(doc.Subjects, subjects...)
	sort.Slice(doc.Subjects, func(i, j int) bool { return doc.Subjects[i].Code < doc.Subjects[j].Code })

	return doc
}

func summarize(bookings map[schedule.SlotKey]schedule.Booking) Summary {
	facultySeen := make(map[string]struct{})
	subjectSeen := make(map[string]struct{})
	roomSeen := make(map[string]struct{})
	for _, booking := range bookings {
		facultySeen[booking.FacultyID] = struct{}{}
		subjectSeen[booking.SubjectID] = struct{}{}
		roomSeen[booking.RoomID] = struct{}{}
	}
	return Summary{
		TotalBookings:     len(bookings),
		FacultyInvolved:   len(facultySeen),
		SubjectsScheduled: len(subjectSeen),
		RoomsInUse:        len(roomSeen),
	}
}

func buildGrid(
	bookings map[schedule.SlotKey]schedule.Booking,
	rooms []persistence.Room,
	periods []persistence.TimePeriod,
	facultyByID map[string]persistence.Faculty,
	subjectByCode map[string]persistence.Subject,
) Grid {
	roomNumbers := make([]string, 0, len(rooms))
	seenRooms := make(map[string]struct{}, len(rooms))
	for _, room := range rooms {
		if _, dup := seenRooms[room.Number]; dup {
			continue
		}
		seenRooms[room.Number] = struct{}{}
		roomNumbers = append(roomNumbers, room.Number)
	}
	sort.Strings(roomNumbers)

	labels := make([]string, 0, len(periods))
	seenLabels := make(map[string]struct{}, len(periods))
	for _, period := range periods {
		if _, dup := seenLabels[period.Label]; dup {
			continue
		}
		seenLabels[period.Label] = struct{}{}
		labels = append(labels, period.Label)
	}
	sort.Strings(labels)

	grid := Grid{Rooms: roomNumbers, Rows: make([]GridRow, 0, len(labels))}
	for _, label := range labels {
		row := GridRow{PeriodLabel: label, Cells: make([]Cell, len(roomNumbers))}
		for i, room := range roomNumbers {
			row.Cells[i] = buildCell(label, room, bookings, facultyByID, subjectByCode)
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}

func buildCell(
	label, room string,
	bookings map[schedule.SlotKey]schedule.Booking,
	facultyByID map[string]persistence.Faculty,
	subjectByCode map[string]persistence.Subject,
) Cell {
	var cell Cell
	for _, booking := range bookings {
		if booking.PeriodLabel != label || booking.RoomID != room {
			continue
		}
		entry := CellEntry{
			FacultyName: booking.FacultyID,
			SubjectName: booking.SubjectID,
			Day:         booking.Day,
		}
		if faculty, ok := facultyByID[booking.FacultyID]; ok {
			entry.FacultyName = faculty.Name
		}
		if subject, ok := subjectByCode[booking.SubjectID]; ok {
			entry.SubjectName = subject.Name
		}
		cell.Entries = append(cell.Entries, entry)
	}
	sort.Slice(cell.Entries, func(i, j int) bool {
		if cell.Entries[i].Day.Index() != cell.Entries[j].Day.Index() {
			return cell.Entries[i].Day.Index() < cell.Entries[j].Day.Index()
		}
		return cell.Entries[i].FacultyName < cell.Entries[j].FacultyName
	})
	return cell
}

func buildWorkloads(bookings map[schedule.SlotKey]schedule.Booking, faculty []persistence.Faculty) []Workload {
	counts := make(map[string]int)
	for _, booking := range bookings {
		counts[booking.FacultyID]++
	}

	ordered := make([]persistence.Faculty, len(faculty))
	copy(ordered, faculty)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	workloads := make([]Workload, 0, len(ordered))
	for _, f := range ordered {
		classes := counts[f.ID]
		workloads = append(workloads, Workload{
			FacultyName: f.Name,
			Classes:     classes,
			Status:      workloadStatus(classes),
		})
	}
	return workloads
}

func workloadStatus(classes int) string {
	switch {
	case classes == 0:
		return StatusNoClasses
	case classes <= 3:
		return StatusLight
	case classes <= 6:
		return StatusModerate
	default:
		return StatusHeavy
	}
}
