// Package jsonfile persists the five record collections as JSON documents in
// a data directory, one file per collection. Every mutating call writes the
// affected file before returning, so the on-disk state always reflects the
// last completed operation.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/example/faculty-scheduler/internal/persistence"
	"github.com/example/faculty-scheduler/internal/schedule"
)

const (
	facultyFile  = "faculty.json"
	roomsFile    = "rooms.json"
	periodsFile  = "time_periods.json"
	subjectsFile = "subjects.json"
	scheduleFile = "schedule.json"
)

// Store implements persistence.Store over JSON files.
type Store struct {
	mu       sync.RWMutex
	dir      string
	faculty  []persistence.Faculty
	rooms    []persistence.Room
	periods  []persistence.TimePeriod
	subjects []persistence.Subject
	bookings map[schedule.SlotKey]schedule.Booking
}

// Open creates the data directory if needed and loads all collections.
// Missing files load as empty collections.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	s := &Store{
		dir:      dir,
		bookings: make(map[schedule.SlotKey]schedule.Booking),
	}

	if err := s.loadAll(); err != nil {
		return nil, err
	}

	return s, nil
}

// Close releases resources held by the store. No-op for the file backend.
func (s *Store) Close() error {
	return nil
}

// --- FacultyRepository implementation ---

// AddFaculty appends a faculty record, rejecting duplicate identifiers.
func (s *Store) AddFaculty(ctx context.Context, faculty persistence.Faculty) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.faculty {
		if existing.ID == faculty.ID {
			return persistence.ErrDuplicate
		}
	}

	s.faculty = append(s.faculty, cloneFaculty(faculty))
	return s.saveFacultyLocked()
}

// GetFaculty retrieves a faculty record by identifier.
func (s *Store) GetFaculty(ctx context.Context, id string) (persistence.Faculty, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, faculty := range s.faculty {
		if faculty.ID == id {
			return cloneFaculty(faculty), nil
		}
	}
	return persistence.Faculty{}, persistence.ErrNotFound
}

// ListFaculty returns all faculty records in insertion order.
func (s *Store) ListFaculty(ctx context.Context) ([]persistence.Faculty, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]persistence.Faculty, len(s.faculty))
	for i, faculty := range s.faculty {
		out[i] = cloneFaculty(faculty)
	}
	return out, nil
}

// DeleteFaculty removes a faculty record. Deleting an unknown identifier is a
// no-op; bookings referencing the record are left dangling.
func (s *Store) DeleteFaculty(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.faculty[:0]
	removed := false
	for _, faculty := range s.faculty {
		if faculty.ID == id {
			removed = true
			continue
		}
		kept = append(kept, faculty)
	}
	s.faculty = kept

	if !removed {
		return nil
	}
	return s.saveFacultyLocked()
}

// --- RoomRepository implementation ---

// AddRoom appends a room record, rejecting duplicate room numbers.
func (s *Store) AddRoom(ctx context.Context, room persistence.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.rooms {
		if existing.Number == room.Number {
			return persistence.ErrDuplicate
		}
	}

	s.rooms = append(s.rooms, room)
	return s.saveLocked(roomsFile, s.rooms)
}

// GetRoom retrieves a room record by number.
func (s *Store) GetRoom(ctx context.Context, number string) (persistence.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, room := range s.rooms {
		if room.Number == number {
			return room, nil
		}
	}
	return persistence.Room{}, persistence.ErrNotFound
}

// ListRooms returns all room records in insertion order.
func (s *Store) ListRooms(ctx context.Context) ([]persistence.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]persistence.Room, len(s.rooms))
	copy(out, s.rooms)
	return out, nil
}

// DeleteRoom removes a room record; unknown numbers are a no-op.
func (s *Store) DeleteRoom(ctx context.Context, number string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.rooms[:0]
	removed := false
	for _, room := range s.rooms {
		if room.Number == number {
			removed = true
			continue
		}
		kept = append(kept, room)
	}
	s.rooms = kept

	if !removed {
		return nil
	}
	return s.saveLocked(roomsFile, s.rooms)
}

// --- PeriodRepository implementation ---

// AddPeriod appends a time period record. The uniqueness key is the
// (label, weekday set) pair; the weekday set is stored in canonical
// Monday-first order.
func (s *Store) AddPeriod(ctx context.Context, period persistence.TimePeriod) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	period.Days = schedule.NormalizeDays(period.Days)
	for _, existing := range s.periods {
		if existing.Label == period.Label && sameDays(existing.Days, period.Days) {
			return persistence.ErrDuplicate
		}
	}

	s.periods = append(s.periods, clonePeriod(period))
	return s.saveLocked(periodsFile, s.periods)
}

// ListPeriods returns all time period records in insertion order.
func (s *Store) ListPeriods(ctx context.Context) ([]persistence.TimePeriod, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]persistence.TimePeriod, len(s.periods))
	for i, period := range s.periods {
		out[i] = clonePeriod(period)
	}
	return out, nil
}

// DeletePeriod removes every record carrying the label; unknown labels are a
// no-op.
func (s *Store) DeletePeriod(ctx context.Context, label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.periods[:0]
	removed := false
	for _, period := range s.periods {
		if period.Label == label {
			removed = true
			continue
		}
		kept = append(kept, period)
	}
	s.periods = kept

	if !removed {
		return nil
	}
	return s.saveLocked(periodsFile, s.periods)
}

// --- SubjectRepository implementation ---

// AddSubject appends a subject record, rejecting duplicate codes.
func (s *Store) AddSubject(ctx context.Context, subject persistence.Subject) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.subjects {
		if existing.Code == subject.Code {
			return persistence.ErrDuplicate
		}
	}

	s.subjects = append(s.subjects, subject)
	return s.saveLocked(subjectsFile, s.subjects)
}

// GetSubject retrieves a subject record by code.
func (s *Store) GetSubject(ctx context.Context, code string) (persistence.Subject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, subject := range s.subjects {
		if subject.Code == code {
			return subject, nil
		}
	}
	return persistence.Subject{}, persistence.ErrNotFound
}

// ListSubjects returns all subject records in insertion order.
func (s *Store) ListSubjects(ctx context.Context) ([]persistence.Subject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]persistence.Subject, len(s.subjects))
	copy(out, s.subjects)
	return out, nil
}

// DeleteSubject removes a subject record; unknown codes are a no-op.
func (s *Store) DeleteSubject(ctx context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.subjects[:0]
	removed := false
	for _, subject := range s.subjects {
		if subject.Code == code {
			removed = true
			continue
		}
		kept = append(kept, subject)
	}
	s.subjects = kept

	if !removed {
		return nil
	}
	return s.saveLocked(subjectsFile, s.subjects)
}

// --- BookingRepository implementation ---

// PutBooking inserts a booking at its composite key, rejecting occupied keys.
func (s *Store) PutBooking(ctx context.Context, booking schedule.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := booking.Key()
	if _, occupied := s.bookings[key]; occupied {
		return persistence.ErrDuplicate
	}

	s.bookings[key] = booking
	return s.saveBookingsLocked()
}

// GetBooking retrieves the booking at the composite key.
func (s *Store) GetBooking(ctx context.Context, key schedule.SlotKey) (schedule.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.bookings[key]
	if !ok {
		return schedule.Booking{}, persistence.ErrNotFound
	}
	return booking, nil
}

// ListBookings returns a copy of the booking collection.
func (s *Store) ListBookings(ctx context.Context) (map[schedule.SlotKey]schedule.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[schedule.SlotKey]schedule.Booking, len(s.bookings))
	for key, booking := range s.bookings {
		out[key] = booking
	}
	return out, nil
}

// DeleteBooking removes the booking at the key, reporting ErrNotFound for a
// vacant slot.
func (s *Store) DeleteBooking(ctx context.Context, key schedule.SlotKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[key]; !ok {
		return persistence.ErrNotFound
	}

	delete(s.bookings, key)
	return s.saveBookingsLocked()
}

// ResetBookings clears the booking collection unconditionally.
func (s *Store) ResetBookings(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = make(map[schedule.SlotKey]schedule.Booking)
	return s.saveBookingsLocked()
}

// --- loading and saving ---

func (s *Store) loadAll() error {
	if err := s.loadFile(facultyFile, &s.faculty); err != nil {
		return err
	}
	if err := s.loadFile(roomsFile, &s.rooms); err != nil {
		return err
	}
	if err := s.loadFile(periodsFile, &s.periods); err != nil {
		return err
	}
	// Migration: records written before weekday sets existed default to the
	// Monday-Friday teaching week. Hand-edited files may carry unsorted or
	// duplicated day lists, so the sets are also normalized on the way in.
	for i := range s.periods {
		if len(s.periods[i].Days) == 0 {
			s.periods[i].Days = schedule.DefaultTeachingDays()
			continue
		}
		s.periods[i].Days = schedule.NormalizeDays(s.periods[i].Days)
	}
	if err := s.loadFile(subjectsFile, &s.subjects); err != nil {
		return err
	}
	return s.loadBookings()
}

func (s *Store) loadFile(name string, target any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// loadBookings decodes schedule.json. The record fields are authoritative;
// the composite map key is re-derived from them on load.
func (s *Store) loadBookings() error {
	records := make(map[string]schedule.Booking)
	if err := s.loadFile(scheduleFile, &records); err != nil {
		return err
	}

	for key, booking := range records {
		day, err := schedule.ParseWeekday(string(booking.Day))
		if err != nil {
			return fmt.Errorf("decode %s: entry %q: %w", scheduleFile, key, err)
		}
		booking.Day = day
		s.bookings[booking.Key()] = booking
	}
	return nil
}

func (s *Store) saveFacultyLocked() error {
	return s.saveLocked(facultyFile, s.faculty)
}

func (s *Store) saveBookingsLocked() error {
	records := make(map[string]schedule.Booking, len(s.bookings))
	for key, booking := range s.bookings {
		records[key.String()] = booking
	}
	return s.saveLocked(scheduleFile, records)
}

// saveLocked serialises the value and writes it via a temp file and rename so
// a crash mid-write never truncates an existing collection.
func (s *Store) saveLocked(name string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func cloneFaculty(faculty persistence.Faculty) persistence.Faculty {
	out := faculty
	if faculty.Photo != nil {
		out.Photo = make([]byte, len(faculty.Photo))
		copy(out.Photo, faculty.Photo)
	}
	return out
}

func clonePeriod(period persistence.TimePeriod) persistence.TimePeriod {
	out := period
	out.Days = make([]schedule.Weekday, len(period.Days))
	copy(out.Days, period.Days)
	return out
}

func sameDays(a, b []schedule.Weekday) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
