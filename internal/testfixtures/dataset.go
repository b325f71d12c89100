package testfixtures

import (
	"context"

	"github.com/example/faculty-scheduler/internal/persistence"
	"github.com/example/faculty-scheduler/internal/schedule"
)

// Dataset is the small campus seeded into a store by SeedDataset: the records
// plus the one booking placed through the normal insert path.
type Dataset struct {
	Faculty  []persistence.Faculty
	Rooms    []persistence.Room
	Periods  []persistence.TimePeriod
	Subjects []persistence.Subject
	Booking  schedule.Booking
}

// SeedDataset populates the store with a consistent dataset usable against
// any backend: two faculty, two rooms, two periods, two subjects, and one
// Monday booking.
func SeedDataset(ctx context.Context, store persistence.Store) (Dataset, error) {
	ds := Dataset{
		Faculty:  []persistence.Faculty{NewFaculty(), NewFaculty()},
		Rooms:    []persistence.Room{NewRoom(), NewRoom(WithRoomType("Laboratory"))},
		Periods:  []persistence.TimePeriod{NewPeriod(9), NewPeriod(10)},
		Subjects: []persistence.Subject{NewSubject(), NewSubject()},
	}

	for _, record := range ds.Faculty {
		if err := store.AddFaculty(ctx, record); err != nil {
			return Dataset{}, err
		}
	}
	for _, record := range ds.Rooms {
		if err := store.AddRoom(ctx, record); err != nil {
			return Dataset{}, err
		}
	}
	for _, record := range ds.Periods {
		if err := store.AddPeriod(ctx, record); err != nil {
			return Dataset{}, err
		}
	}
	for _, record := range ds.Subjects {
		if err := store.AddSubject(ctx, record); err != nil {
			return Dataset{}, err
		}
	}

	ds.Booking = NewBooking(ds.Periods[0], ds.Rooms[0], schedule.Monday, ds.Faculty[0], ds.Subjects[0])
	if err := store.PutBooking(ctx, ds.Booking); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}
