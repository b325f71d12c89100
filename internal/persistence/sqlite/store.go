// Package sqlite implements the record store on SQLite through the CGO-free
// modernc.org driver. It is the alternative to the JSON file backend for
// installations that want a single database file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/example/faculty-scheduler/internal/persistence"
	"github.com/example/faculty-scheduler/internal/schedule"
)

// Store implements persistence.Store backed by a SQLite database.
type Store struct {
	db *sql.DB
}

// Open connects to the database identified by the DSN and applies the schema.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS faculty (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		department TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		photo BLOB
	)`,
	`CREATE TABLE IF NOT EXISTS rooms (
		number TEXT PRIMARY KEY,
		capacity INTEGER NOT NULL,
		type TEXT NOT NULL,
		facilities TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS time_periods (
		label TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		days TEXT NOT NULL,
		PRIMARY KEY (label, days)
	)`,
	`CREATE TABLE IF NOT EXISTS subjects (
		code TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		credits INTEGER NOT NULL DEFAULT 0,
		department TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		period_label TEXT NOT NULL,
		room_id TEXT NOT NULL,
		weekday TEXT NOT NULL,
		faculty_id TEXT NOT NULL,
		subject_id TEXT NOT NULL,
		PRIMARY KEY (period_label, room_id, weekday)
	)`,
}

// migrate applies the idempotent schema. Bookings have no foreign keys to the
// reference tables: faculty and subject references are weak and may dangle.
func (s *Store) migrate(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// mapError translates driver failures into persistence sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return persistence.ErrDuplicate
	}
	return err
}

// --- FacultyRepository implementation ---

// AddFaculty inserts a faculty record, rejecting duplicate identifiers.
func (s *Store) AddFaculty(ctx context.Context, faculty persistence.Faculty) error {
	query := `
		INSERT INTO faculty (id, name, department, email, phone, photo)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		faculty.ID,
		faculty.Name,
		faculty.Department,
		faculty.Email,
		faculty.Phone,
		faculty.Photo,
	)
	return mapError(err)
}

// GetFaculty retrieves a faculty record by identifier.
func (s *Store) GetFaculty(ctx context.Context, id string) (persistence.Faculty, error) {
	query := `
		SELECT id, name, department, email, phone, photo
		FROM faculty
		WHERE id = ?
	`
	var faculty persistence.Faculty
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&faculty.ID,
		&faculty.Name,
		&faculty.Department,
		&faculty.Email,
		&faculty.Phone,
		&faculty.Photo,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return persistence.Faculty{}, persistence.ErrNotFound
	}
	if err != nil {
		return persistence.Faculty{}, fmt.Errorf("query faculty: %w", err)
	}
	return faculty, nil
}

// ListFaculty returns all faculty records in insertion order.
func (s *Store) ListFaculty(ctx context.Context) ([]persistence.Faculty, error) {
	query := `
		SELECT id, name, department, email, phone, photo
		FROM faculty
		ORDER BY rowid
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query faculty: %w", err)
	}
	defer rows.Close()

	var out []persistence.Faculty
	for rows.Next() {
		var faculty persistence.Faculty
		if err := rows.Scan(
			&faculty.ID,
			&faculty.Name,
			&faculty.Department,
			&faculty.Email,
			&faculty.Phone,
			&faculty.Photo,
		); err != nil {
			return nil, fmt.Errorf("scan faculty: %w", err)
		}
		out = append(out, faculty)
	}
	return out, rows.Err()
}

// DeleteFaculty removes a faculty record; unknown identifiers are a no-op.
func (s *Store) DeleteFaculty(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM faculty WHERE id = ?`, id)
	return err
}

// --- RoomRepository implementation ---

// AddRoom inserts a room record, rejecting duplicate numbers.
func (s *Store) AddRoom(ctx context.Context, room persistence.Room) error {
	query := `
		INSERT INTO rooms (number, capacity, type, facilities)
		VALUES (?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query, room.Number, room.Capacity, room.Type, room.Facilities)
	return mapError(err)
}

// GetRoom retrieves a room record by number.
func (s *Store) GetRoom(ctx context.Context, number string) (persistence.Room, error) {
	query := `
		SELECT number, capacity, type, facilities
		FROM rooms
		WHERE number = ?
	`
	var room persistence.Room
	err := s.db.QueryRowContext(ctx, query, number).Scan(
		&room.Number,
		&room.Capacity,
		&room.Type,
		&room.Facilities,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return persistence.Room{}, persistence.ErrNotFound
	}
	if err != nil {
		return persistence.Room{}, fmt.Errorf("query room: %w", err)
	}
	return room, nil
}

// ListRooms returns all room records in insertion order.
func (s *Store) ListRooms(ctx context.Context) ([]persistence.Room, error) {
	query := `
		SELECT number, capacity, type, facilities
		FROM rooms
		ORDER BY rowid
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query rooms: %w", err)
	}
	defer rows.Close()

	var out []persistence.Room
	for rows.Next() {
		var room persistence.Room
		if err := rows.Scan(&room.Number, &room.Capacity, &room.Type, &room.Facilities); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		out = append(out, room)
	}
	return out, rows.Err()
}

// DeleteRoom removes a room record; unknown numbers are a no-op.
func (s *Store) DeleteRoom(ctx context.Context, number string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM rooms WHERE number = ?`, number)
	return err
}

// --- PeriodRepository implementation ---

// AddPeriod inserts a time period record. The weekday set is stored as a
// comma-separated list in canonical Monday-first order, so the (label, days)
// primary key enforces the (label, weekday set) uniqueness rule.
func (s *Store) AddPeriod(ctx context.Context, period persistence.TimePeriod) error {
	query := `
		INSERT INTO time_periods (label, start_time, end_time, days)
		VALUES (?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query, period.Label, period.Start, period.End, encodeDays(schedule.NormalizeDays(period.Days)))
	return mapError(err)
}

// ListPeriods returns all time period records in insertion order.
func (s *Store) ListPeriods(ctx context.Context) ([]persistence.TimePeriod, error) {
	query := `
		SELECT label, start_time, end_time, days
		FROM time_periods
		ORDER BY rowid
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query time periods: %w", err)
	}
	defer rows.Close()

	var out []persistence.TimePeriod
	for rows.Next() {
		var period persistence.TimePeriod
		var days string
		if err := rows.Scan(&period.Label, &period.Start, &period.End, &days); err != nil {
			return nil, fmt.Errorf("scan time period: %w", err)
		}
		period.Days, err = decodeDays(days)
		if err != nil {
			return nil, fmt.Errorf("scan time period: %w", err)
		}
		out = append(out, period)
	}
	return out, rows.Err()
}

// DeletePeriod removes every record carrying the label; unknown labels are a
// no-op.
func (s *Store) DeletePeriod(ctx context.Context, label string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM time_periods WHERE label = ?`, label)
	return err
}

// --- SubjectRepository implementation ---

// AddSubject inserts a subject record, rejecting duplicate codes.
func (s *Store) AddSubject(ctx context.Context, subject persistence.Subject) error {
	query := `
		INSERT INTO subjects (code, name, credits, department)
		VALUES (?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query, subject.Code, subject.Name, subject.Credits, subject.Department)
	return mapError(err)
}

// GetSubject retrieves a subject record by code.
func (s *Store) GetSubject(ctx context.Context, code string) (persistence.Subject, error) {
	query := `
		SELECT code, name, credits, department
		FROM subjects
		WHERE code = ?
	`
	var subject persistence.Subject
	err := s.db.QueryRowContext(ctx, query, code).Scan(
		&subject.Code,
		&subject.Name,
		&subject.Credits,
		&subject.Department,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return persistence.Subject{}, persistence.ErrNotFound
	}
	if err != nil {
		return persistence.Subject{}, fmt.Errorf("query subject: %w", err)
	}
	return subject, nil
}

// ListSubjects returns all subject records in insertion order.
func (s *Store) ListSubjects(ctx context.Context) ([]persistence.Subject, error) {
	query := `
		SELECT code, name, credits, department
		FROM subjects
		ORDER BY rowid
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query subjects: %w", err)
	}
	defer rows.Close()

	var out []persistence.Subject
	for rows.Next() {
		var subject persistence.Subject
		if err := rows.Scan(&subject.Code, &subject.Name, &subject.Credits, &subject.Department); err != nil {
			return nil, fmt.Errorf("scan subject: %w", err)
		}
		out = append(out, subject)
	}
	return out, rows.Err()
}

// DeleteSubject removes a subject record; unknown codes are a no-op.
func (s *Store) DeleteSubject(ctx context.Context, code string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM subjects WHERE code = ?`, code)
	return err
}

// --- BookingRepository implementation ---

// PutBooking inserts a booking at its composite key, rejecting occupied keys.
func (s *Store) PutBooking(ctx context.Context, booking schedule.Booking) error {
	query := `
		INSERT INTO bookings (period_label, room_id, weekday, faculty_id, subject_id)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		booking.PeriodLabel,
		booking.RoomID,
		string(booking.Day),
		booking.FacultyID,
		booking.SubjectID,
	)
	return mapError(err)
}

// GetBooking retrieves the booking at the composite key.
func (s *Store) GetBooking(ctx context.Context, key schedule.SlotKey) (schedule.Booking, error) {
	query := `
		SELECT period_label, room_id, weekday, faculty_id, subject_id
		FROM bookings
		WHERE period_label = ? AND room_id = ? AND weekday = ?
	`
	booking, err := scanBooking(s.db.QueryRowContext(ctx, query, key.PeriodLabel, key.RoomID, string(key.Day)))
	if errors.Is(err, sql.ErrNoRows) {
		return schedule.Booking{}, persistence.ErrNotFound
	}
	if err != nil {
		return schedule.Booking{}, fmt.Errorf("query booking: %w", err)
	}
	return booking, nil
}

// ListBookings returns the whole booking collection keyed by composite slot.
func (s *Store) ListBookings(ctx context.Context) (map[schedule.SlotKey]schedule.Booking, error) {
	query := `
		SELECT period_label, room_id, weekday, faculty_id, subject_id
		FROM bookings
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	out := make(map[schedule.SlotKey]schedule.Booking)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		out[booking.Key()] = booking
	}
	return out, rows.Err()
}

// DeleteBooking removes the booking at the key, reporting ErrNotFound for a
// vacant slot.
func (s *Store) DeleteBooking(ctx context.Context, key schedule.SlotKey) error {
	query := `DELETE FROM bookings WHERE period_label = ? AND room_id = ? AND weekday = ?`
	result, err := s.db.ExecContext(ctx, query, key.PeriodLabel, key.RoomID, string(key.Day))
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if affected == 0 {
		return persistence.ErrNotFound
	}
	return nil
}

// ResetBookings clears the booking collection unconditionally.
func (s *Store) ResetBookings(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM bookings`)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (schedule.Booking, error) {
	var booking schedule.Booking
	var day string
	if err := row.Scan(&booking.PeriodLabel, &booking.RoomID, &day, &booking.FacultyID, &booking.SubjectID); err != nil {
		return schedule.Booking{}, err
	}
	booking.Day = schedule.Weekday(day)
	return booking, nil
}

func encodeDays(days []schedule.Weekday) string {
	names := make([]string, len(days))
	for i, day := range days {
		names[i] = string(day)
	}
	return strings.Join(names, ",")
}

func decodeDays(value string) ([]schedule.Weekday, error) {
	if value == "" {
		return nil, nil
	}
	parts := strings.Split(value, ",")
	out := make([]schedule.Weekday, 0, len(parts))
	for _, part := range parts {
		day, err := schedule.ParseWeekday(part)
		if err != nil {
			return nil, err
		}
		out = append(out, day)
	}
	return out, nil
}
