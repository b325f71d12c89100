package jsonfile

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/faculty-scheduler/internal/persistence"
	"github.com/example/faculty-scheduler/internal/schedule"
	"github.com/example/faculty-scheduler/internal/testfixtures"
)

func openStore(t *testing.T, dir string) *Store {
	t.Helper()
	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open(%q) failed: %v", dir, err)
	}
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := openStore(t, dir)

	photo := []byte{0x89, 0x50, 0x4e, 0x47, 0x00, 0xff, 0x10}
	faculty := persistence.Faculty{
		ID:         "FAC001",
		Name:       "Dr. Lee",
		Department: "Computer Science",
		Email:      "lee@example.edu",
		Photo:      photo,
	}
	room := persistence.Room{Number: "101", Capacity: 30, Type: "Lecture Hall", Facilities: "Projector, AC"}
	period := persistence.TimePeriod{
		Label: "09:00 - 10:00",
		Start: "09:00",
		End:   "10:00",
		Days:  []schedule.Weekday{schedule.Wednesday, schedule.Monday},
	}
	subject := persistence.Subject{Code: "CS101", Name: "Introduction to Programming", Credits: 3}
	booking := schedule.Booking{
		PeriodLabel: "09:00 - 10:00",
		RoomID:      "101",
		Day:         schedule.Monday,
		FacultyID:   "FAC001",
		SubjectID:   "CS101",
	}

	if err := store.AddFaculty(ctx, faculty); err != nil {
		t.Fatalf("AddFaculty failed: %v", err)
	}
	if err := store.AddRoom(ctx, room); err != nil {
		t.Fatalf("AddRoom failed: %v", err)
	}
	if err := store.AddPeriod(ctx, period); err != nil {
		t.Fatalf("AddPeriod failed: %v", err)
	}
	if err := store.AddSubject(ctx, subject); err != nil {
		t.Fatalf("AddSubject failed: %v", err)
	}
	if err := store.PutBooking(ctx, booking); err != nil {
		t.Fatalf("PutBooking failed: %v", err)
	}

	reopened := openStore(t, dir)

	gotFaculty, err := reopened.GetFaculty(ctx, "FAC001")
	if err != nil {
		t.Fatalf("GetFaculty after reload failed: %v", err)
	}
	if gotFaculty.Name != "Dr. Lee" || gotFaculty.Department != "Computer Science" {
		t.Fatalf("faculty record corrupted: %+v", gotFaculty)
	}
	if !bytes.Equal(gotFaculty.Photo, photo) {
		t.Fatalf("photo bytes corrupted: got %v, want %v", gotFaculty.Photo, photo)
	}

	gotRoom, err := reopened.GetRoom(ctx, "101")
	if err != nil {
		t.Fatalf("GetRoom after reload failed: %v", err)
	}
	if gotRoom != room {
		t.Fatalf("room record corrupted: %+v", gotRoom)
	}

	periods, err := reopened.ListPeriods(ctx)
	if err != nil {
		t.Fatalf("ListPeriods failed: %v", err)
	}
	if len(periods) != 1 {
		t.Fatalf("expected one period, got %d", len(periods))
	}
	// AddPeriod normalises the weekday set to Monday-first order.
	if len(periods[0].Days) != 2 || periods[0].Days[0] != schedule.Monday || periods[0].Days[1] != schedule.Wednesday {
		t.Fatalf("weekday set corrupted: %v", periods[0].Days)
	}

	gotSubject, err := reopened.GetSubject(ctx, "CS101")
	if err != nil {
		t.Fatalf("GetSubject after reload failed: %v", err)
	}
	if gotSubject != subject {
		t.Fatalf("subject record corrupted: %+v", gotSubject)
	}

	bookings, err := reopened.ListBookings(ctx)
	if err != nil {
		t.Fatalf("ListBookings failed: %v", err)
	}
	if got := bookings[booking.Key()]; got != booking {
		t.Fatalf("booking corrupted: got %+v, want %+v", got, booking)
	}
}

func TestStoreDuplicateRejection(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, t.TempDir())

	if err := store.AddFaculty(ctx, persistence.Faculty{ID: "FAC001", Name: "Dr. Lee"}); err != nil {
		t.Fatalf("AddFaculty failed: %v", err)
	}
	if err := store.AddFaculty(ctx, persistence.Faculty{ID: "FAC001", Name: "Dr. Chen"}); !errors.Is(err, persistence.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	period := persistence.TimePeriod{
		Label: "09:00 - 10:00",
		Start: "09:00",
		End:   "10:00",
		Days:  []schedule.Weekday{schedule.Monday},
	}
	if err := store.AddPeriod(ctx, period); err != nil {
		t.Fatalf("AddPeriod failed: %v", err)
	}
	if err := store.AddPeriod(ctx, period); !errors.Is(err, persistence.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for identical period, got %v", err)
	}

	// The same label with a different weekday set is a distinct record.
	tuesday := period
	tuesday.Days = []schedule.Weekday{schedule.Tuesday}
	if err := store.AddPeriod(ctx, tuesday); err != nil {
		t.Fatalf("expected distinct weekday set to be accepted, got %v", err)
	}

	// The same set in another order, even with repeats, is the same record.
	twoDay := persistence.TimePeriod{
		Label: "10:00 - 11:00",
		Start: "10:00",
		End:   "11:00",
		Days:  []schedule.Weekday{schedule.Monday, schedule.Wednesday},
	}
	if err := store.AddPeriod(ctx, twoDay); err != nil {
		t.Fatalf("AddPeriod failed: %v", err)
	}
	reordered := twoDay
	reordered.Days = []schedule.Weekday{schedule.Wednesday, schedule.Monday, schedule.Monday}
	if err := store.AddPeriod(ctx, reordered); !errors.Is(err, persistence.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for reordered weekday set, got %v", err)
	}
}

func TestStoreBookingLifecycle(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, t.TempDir())

	booking := schedule.Booking{
		PeriodLabel: "09:00 - 10:00",
		RoomID:      "101",
		Day:         schedule.Monday,
		FacultyID:   "FAC001",
		SubjectID:   "CS101",
	}

	if err := store.PutBooking(ctx, booking); err != nil {
		t.Fatalf("PutBooking failed: %v", err)
	}
	if err := store.PutBooking(ctx, booking); !errors.Is(err, persistence.ErrDuplicate) {
		t.Fatalf("occupied key must reject insert, got %v", err)
	}

	if err := store.DeleteBooking(ctx, booking.Key()); err != nil {
		t.Fatalf("DeleteBooking failed: %v", err)
	}
	if err := store.DeleteBooking(ctx, booking.Key()); !errors.Is(err, persistence.ErrNotFound) {
		t.Fatalf("vacant key must report ErrNotFound, got %v", err)
	}

	// Re-booking after cancel succeeds.
	if err := store.PutBooking(ctx, booking); err != nil {
		t.Fatalf("re-book after cancel failed: %v", err)
	}

	if err := store.ResetBookings(ctx); err != nil {
		t.Fatalf("ResetBookings failed: %v", err)
	}
	bookings, err := store.ListBookings(ctx)
	if err != nil {
		t.Fatalf("ListBookings failed: %v", err)
	}
	if len(bookings) != 0 {
		t.Fatalf("expected empty collection after reset, got %d entries", len(bookings))
	}
}

func TestStoreDeleteIsNoOpForUnknownIDs(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, t.TempDir())

	if err := store.DeleteFaculty(ctx, "ghost"); err != nil {
		t.Fatalf("DeleteFaculty of unknown id must be a no-op, got %v", err)
	}
	if err := store.DeleteRoom(ctx, "ghost"); err != nil {
		t.Fatalf("DeleteRoom of unknown number must be a no-op, got %v", err)
	}
	if err := store.DeletePeriod(ctx, "ghost"); err != nil {
		t.Fatalf("DeletePeriod of unknown label must be a no-op, got %v", err)
	}
	if err := store.DeleteSubject(ctx, "ghost"); err != nil {
		t.Fatalf("DeleteSubject of unknown code must be a no-op, got %v", err)
	}
}

func TestStoreLegacyPeriodsDefaultToTeachingWeek(t *testing.T) {
	dir := t.TempDir()

	legacy := `[{"slot": "09:00 - 10:00", "start": "09:00", "end": "10:00"}]`
	if err := os.WriteFile(filepath.Join(dir, "time_periods.json"), []byte(legacy), 0o644); err != nil {
		t.Fatalf("write legacy file: %v", err)
	}

	store := openStore(t, dir)

	periods, err := store.ListPeriods(context.Background())
	if err != nil {
		t.Fatalf("ListPeriods failed: %v", err)
	}
	if len(periods) != 1 {
		t.Fatalf("expected one period, got %d", len(periods))
	}

	want := schedule.DefaultTeachingDays()
	if len(periods[0].Days) != len(want) {
		t.Fatalf("expected Monday-Friday default, got %v", periods[0].Days)
	}
	for i, day := range want {
		if periods[0].Days[i] != day {
			t.Fatalf("expected Monday-Friday default, got %v", periods[0].Days)
		}
	}
}

func TestStoreNormalizesHandEditedWeekdaySets(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	edited := `[{"slot": "09:00 - 10:00", "start": "09:00", "end": "10:00", "days": ["Wednesday", "Monday", "Monday"]}]`
	if err := os.WriteFile(filepath.Join(dir, "time_periods.json"), []byte(edited), 0o644); err != nil {
		t.Fatalf("write edited file: %v", err)
	}

	store := openStore(t, dir)

	periods, err := store.ListPeriods(ctx)
	if err != nil {
		t.Fatalf("ListPeriods failed: %v", err)
	}
	if len(periods) != 1 {
		t.Fatalf("expected one period, got %d", len(periods))
	}
	if len(periods[0].Days) != 2 || periods[0].Days[0] != schedule.Monday || periods[0].Days[1] != schedule.Wednesday {
		t.Fatalf("expected loaded weekday set normalized, got %v", periods[0].Days)
	}

	// The loaded record keeps its uniqueness key against a normalized insert
	// of the same set.
	period := persistence.TimePeriod{
		Label: "09:00 - 10:00",
		Start: "09:00",
		End:   "10:00",
		Days:  []schedule.Weekday{schedule.Monday, schedule.Wednesday},
	}
	if err := store.AddPeriod(ctx, period); !errors.Is(err, persistence.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate against loaded record, got %v", err)
	}
}

func TestStoreDanglingReferencesSurvivePersistence(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := openStore(t, dir)

	if err := store.AddFaculty(ctx, persistence.Faculty{ID: "FAC001", Name: "Dr. Lee"}); err != nil {
		t.Fatalf("AddFaculty failed: %v", err)
	}
	booking := schedule.Booking{
		PeriodLabel: "09:00 - 10:00",
		RoomID:      "101",
		Day:         schedule.Monday,
		FacultyID:   "FAC001",
		SubjectID:   "CS101",
	}
	if err := store.PutBooking(ctx, booking); err != nil {
		t.Fatalf("PutBooking failed: %v", err)
	}

	// Deleting the faculty does not cascade to the booking.
	if err := store.DeleteFaculty(ctx, "FAC001"); err != nil {
		t.Fatalf("DeleteFaculty failed: %v", err)
	}

	reopened := openStore(t, dir)
	bookings, err := reopened.ListBookings(ctx)
	if err != nil {
		t.Fatalf("ListBookings failed: %v", err)
	}
	if got := bookings[booking.Key()]; got != booking {
		t.Fatalf("dangling booking lost: got %+v, want %+v", got, booking)
	}
	if _, err := reopened.GetFaculty(ctx, "FAC001"); !errors.Is(err, persistence.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for deleted faculty, got %v", err)
	}
}

func TestStoreAcceptsSeededDataset(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := openStore(t, dir)

	ds, err := testfixtures.SeedDataset(ctx, store)
	if err != nil {
		t.Fatalf("SeedDataset failed: %v", err)
	}

	reopened := openStore(t, dir)
	bookings, err := reopened.ListBookings(ctx)
	if err != nil {
		t.Fatalf("ListBookings failed: %v", err)
	}
	if got := bookings[ds.Booking.Key()]; got != ds.Booking {
		t.Fatalf("seeded booking lost across reload: got %+v, want %+v", got, ds.Booking)
	}
	periods, err := reopened.ListPeriods(ctx)
	if err != nil {
		t.Fatalf("ListPeriods failed: %v", err)
	}
	if len(periods) != len(ds.Periods) {
		t.Fatalf("expected %d periods, got %d", len(ds.Periods), len(periods))
	}
}
