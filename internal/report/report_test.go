package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/example/faculty-scheduler/internal/persistence"
	"github.com/example/faculty-scheduler/internal/schedule"
)

func fixtureData() (map[schedule.SlotKey]schedule.Booking, []persistence.Faculty, []persistence.Room, []persistence.TimePeriod, []persistence.Subject) {
	bookings := map[schedule.SlotKey]schedule.Booking{}
	seed := []schedule.Booking{
		{PeriodLabel: "09:00 - 10:00", RoomID: "101", Day: schedule.Monday, FacultyID: "F001", SubjectID: "CS101"},
		{PeriodLabel: "09:00 - 10:00", RoomID: "101", Day: schedule.Tuesday, FacultyID: "F002", SubjectID: "MA150"},
		{PeriodLabel: "10:00 - 11:00", RoomID: "102", Day: schedule.Monday, FacultyID: "F001", SubjectID: "MA150"},
	}
	for _, booking := range seed {
		bookings[booking.Key()] = booking
	}

	faculty := []persistence.Faculty{
		{ID: "F002", Name: "Dr. Chen", Department: "Mathematics"},
		{ID: "F001", Name: "Dr. Rao"},
	}
	rooms := []persistence.Room{
		{Number: "102", Capacity: 30, Type: "Seminar Room"},
		{Number: "101", Capacity: 40, Type: "Lecture Hall"},
	}
	periods := []persistence.TimePeriod{
		{Label: "10:00 - 11:00", Start: "10:00", End: "11:00", Days: schedule.DefaultTeachingDays()},
		{Label: "09:00 - 10:00", Start: "09:00", End: "10:00", Days: schedule.DefaultTeachingDays()},
	}
	subjects := []persistence.Subject{
		{Code: "MA150", Name: "Calculus", Credits: 3},
		{Code: "CS101", Name: "Programming", Credits: 4},
	}
	return bookings, faculty, rooms, periods, subjects
}

func TestBuild(t *testing.T) {
	t.Parallel()

	bookings, faculty, rooms, periods, subjects := fixtureData()
	generatedAt := time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)

	t.Run("orders rows and columns and fills vacant cells", func(t *testing.T) {
		t.Parallel()

		doc := Build(bookings, faculty, rooms, periods, subjects, schedule.AnyDay, generatedAt)

		if got := doc.Grid.Rooms; len(got) != 2 || got[0] != "101" || got[1] != "102" {
			t.Fatalf("expected sorted room columns, got %v", got)
		}
		if len(doc.Grid.Rows) != 2 || doc.Grid.Rows[0].PeriodLabel != "09:00 - 10:00" {
			t.Fatalf("expected rows ordered by period label, got %+v", doc.Grid.Rows)
		}

		first := doc.Grid.Rows[0]
		if len(first.Cells[0].Entries) != 2 {
			t.Fatalf("expected both weekday bookings in 09:00/101, got %+v", first.Cells[0])
		}
		if first.Cells[0].Entries[0].Day != schedule.Monday {
			t.Fatalf("expected entries ordered Monday first, got %+v", first.Cells[0].Entries)
		}
		if len(first.Cells[1].Entries) != 0 {
			t.Fatalf("expected 09:00/102 to be vacant, got %+v", first.Cells[1])
		}
	})

	t.Run("summarises distinct participants", func(t *testing.T) {
		t.Parallel()

		doc := Build(bookings, faculty, rooms, periods, subjects, schedule.AnyDay, generatedAt)

		want := Summary{TotalBookings: 3, FacultyInvolved: 2, SubjectsScheduled: 2, RoomsInUse: 2}
		if doc.Summary != want {
			t.Fatalf("expected summary %+v, got %+v", want, doc.Summary)
		}
	})

	t.Run("weekday filter narrows the grid and summary", func(t *testing.T) {
		t.Parallel()

		doc := Build(bookings, faculty, rooms, periods, subjects, schedule.Monday, generatedAt)

		if doc.Summary.TotalBookings != 2 {
			t.Fatalf("expected 2 Monday bookings, got %d", doc.Summary.TotalBookings)
		}
		if entries := doc.Grid.Rows[0].Cells[0].Entries; len(entries) != 1 || entries[0].Day != schedule.Monday {
			t.Fatalf("expected only the Monday entry, got %+v", entries)
		}
	})

	t.Run("dangling references fall back to raw identifiers", func(t *testing.T) {
		t.Parallel()

		doc := Build(bookings, nil, rooms, periods, nil, schedule.AnyDay, generatedAt)

		entry := doc.Grid.Rows[0].Cells[0].Entries[0]
		if entry.FacultyName != "F001" || entry.SubjectName != "CS101" {
			t.Fatalf("expected raw identifiers for dangling references, got %+v", entry)
		}
	})

	t.Run("buckets faculty workloads", func(t *testing.T) {
		t.Parallel()

		doc := Build(bookings, faculty, rooms, periods, subjects, schedule.AnyDay, generatedAt)

		if len(doc.Workloads) != 2 {
			t.Fatalf("expected a workload row per faculty, got %+v", doc.Workloads)
		}
		if doc.Workloads[0].FacultyName != "Dr. Rao" || doc.Workloads[0].Classes != 2 || doc.Workloads[0].Status != StatusLight {
			t.Fatalf("unexpected first workload row: %+v", doc.Workloads[0])
		}
	})
}

func TestWorkloadStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		classes int
		want    string
	}{
		{0, StatusNoClasses},
		{1, StatusLight},
		{3, StatusLight},
		{4, StatusModerate},
		{6, StatusModerate},
		{7, StatusHeavy},
		{12, StatusHeavy},
	}
	for _, tc := range cases {
		if got := workloadStatus(tc.classes); got != tc.want {
			t.Fatalf("workloadStatus(%d) = %q, want %q", tc.classes, got, tc.want)
		}
	}
}

func TestWriteText(t *testing.T) {
	t.Parallel()

	bookings, faculty, rooms, periods, subjects := fixtureData()
	doc := Build(bookings, faculty, rooms, periods, subjects, schedule.AnyDay, time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC))

	var buf bytes.Buffer
	if err := WriteText(&buf, doc); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Faculty Schedule Report",
		"Generated on: 2026-03-02 08:00:00",
		"Total Bookings: 3",
		"Time / Room",
		"Available",
		"Dr. Rao: Programming (Monday)",
		"Faculty List",
		"Subject List",
		"Faculty Workload Analysis",
		StatusLight,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}

	// Missing optional departments render as N/A as in the stored rosters.
	if !strings.Contains(out, "N/A") {
		t.Fatalf("expected N/A for a faculty without department, got:\n%s", out)
	}
}

func TestWritePDF(t *testing.T) {
	t.Parallel()

	bookings, faculty, rooms, periods, subjects := fixtureData()
	doc := Build(bookings, faculty, rooms, periods, subjects, schedule.AnyDay, time.Now())

	var buf bytes.Buffer
	if err := WritePDF(&buf, doc); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("expected PDF magic header, got %q", buf.Bytes()[:8])
	}

	var workload bytes.Buffer
	if err := WriteWorkloadPDF(&workload, doc); err != nil {
		t.Fatalf("WriteWorkloadPDF failed: %v", err)
	}
	if workload.Len() == 0 {
		t.Fatalf("expected workload PDF bytes")
	}
}
