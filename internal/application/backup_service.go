package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/example/faculty-scheduler/internal/persistence"
	"github.com/example/faculty-scheduler/internal/schedule"
)

// BackupService exports and imports all five collections as one document.
type BackupService struct {
	store  persistence.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewBackupService builds a BackupService over the aggregate store. A nil
// now falls back to time.Now.
func NewBackupService(store persistence.Store, logger *slog.Logger, now func() time.Time) *BackupService {
	if now == nil {
		now = time.Now
	}
	return &BackupService{
		store:  store,
		logger: defaultLogger(logger),
		now:    now,
	}
}

func (s *BackupService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "BackupService", operation, attrs...)
}

// Export snapshots the full dataset with a fresh snapshot ID and timestamp.
func (s *BackupService) Export(ctx context.Context) (backup Backup, err error) {
	if s == nil || s.store == nil {
		err = fmt.Errorf("store not configured")
		return
	}

	logger := s.loggerWith(ctx, "Export")
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to export backup", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "backup exported", "snapshot_id", backup.SnapshotID)
	}()

	backup.SnapshotID = uuid.NewString()
	backup.CreatedAt = s.now().UTC()

	if backup.Faculty, err = s.store.ListFaculty(ctx); err != nil {
		return
	}
	if backup.Rooms, err = s.store.ListRooms(ctx); err != nil {
		return
	}
	if backup.Periods, err = s.store.ListPeriods(ctx); err != nil {
		return
	}
	if backup.Subjects, err = s.store.ListSubjects(ctx); err != nil {
		return
	}

	bookings, err := s.store.ListBookings(ctx)
	if err != nil {
		return
	}
	backup.Schedule = make(map[string]schedule.Booking, len(bookings))
	for key, booking := range bookings {
		backup.Schedule[key.String()] = booking
	}
	return
}

// Import replays a backup into the store. Registry records already present
// are kept as-is; the schedule is replaced wholesale. The imported bookings
// are then integrity-checked and any issues returned for the caller to
// surface, since a backup can carry conflicts this store never produced.
func (s *BackupService) Import(ctx context.Context, backup Backup) (issues []string, err error) {
	if s == nil || s.store == nil {
		err = fmt.Errorf("store not configured")
		return
	}

	logger := s.loggerWith(ctx, "Import", "snapshot_id", backup.SnapshotID)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to import backup", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "backup imported", "integrity_issues", len(issues))
	}()

	for _, record := range backup.Faculty {
		if err = ignoreDuplicate(s.store.AddFaculty(ctx, record)); err != nil {
			return
		}
	}
	for _, record := range backup.Rooms {
		if err = ignoreDuplicate(s.store.AddRoom(ctx, record)); err != nil {
			return
		}
	}
	for _, record := range backup.Periods {
		if err = ignoreDuplicate(s.store.AddPeriod(ctx, record)); err != nil {
			return
		}
	}
	for _, record := range backup.Subjects {
		if err = ignoreDuplicate(s.store.AddSubject(ctx, record)); err != nil {
			return
		}
	}

	if err = s.store.ResetBookings(ctx); err != nil {
		return
	}
	restored := make(map[schedule.SlotKey]schedule.Booking, len(backup.Schedule))
	for rawKey, booking := range backup.Schedule {
		key, parseErr := schedule.ParseSlotKey(rawKey)
		if parseErr != nil {
			err = fmt.Errorf("schedule entry %q: %w", rawKey, parseErr)
			return
		}
		booking.PeriodLabel = key.PeriodLabel
		booking.RoomID = key.RoomID
		booking.Day = key.Day
		if err = s.store.PutBooking(ctx, booking); err != nil {
			return
		}
		restored[key] = booking
	}

	issues = schedule.ValidateIntegrity(restored)
	return
}

func ignoreDuplicate(err error) error {
	if errors.Is(err, persistence.ErrDuplicate) {
		return nil
	}
	return err
}
