package application

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/example/faculty-scheduler/internal/persistence"
)

// RoomService orchestrates validation and persistence for room records.
type RoomService struct {
	rooms  persistence.RoomRepository
	logger *slog.Logger
}

// NewRoomService constructs a room service.
func NewRoomService(rooms persistence.RoomRepository, logger *slog.Logger) *RoomService {
	return &RoomService{rooms: rooms, logger: defaultLogger(logger)}
}

func (s *RoomService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "RoomService", operation, attrs...)
}

// Add validates and persists a new room record.
func (s *RoomService) Add(ctx context.Context, input RoomInput) (room persistence.Room, err error) {
	if s == nil || s.rooms == nil {
		err = fmt.Errorf("room repository not configured")
		return
	}

	logger := s.loggerWith(ctx, "Add", "room_number", input.Number)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to add room", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "room added")
	}()

	vErr := validateRoomInput(input)
	if vErr.HasErrors() {
		err = vErr
		return
	}

	room = persistence.Room{
		Number:     strings.TrimSpace(input.Number),
		Capacity:   input.Capacity,
		Type:       input.Type,
		Facilities: strings.TrimSpace(input.Facilities),
	}

	if err = s.rooms.AddRoom(ctx, room); err != nil {
		err = mapRepoError(err)
		return
	}
	return
}

// List returns all room records ordered by room number.
func (s *RoomService) List(ctx context.Context) ([]persistence.Room, error) {
	if s == nil || s.rooms == nil {
		return nil, fmt.Errorf("room repository not configured")
	}

	rooms, err := s.rooms.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(rooms, func(i, j int) bool { return rooms[i].Number < rooms[j].Number })
	return rooms, nil
}

// Remove deletes a room record. Removing an unknown number is a no-op and
// existing bookings embedding the number are left in place.
func (s *RoomService) Remove(ctx context.Context, number string) error {
	if s == nil || s.rooms == nil {
		return fmt.Errorf("room repository not configured")
	}

	logger := s.loggerWith(ctx, "Remove", "room_number", number)
	if err := s.rooms.DeleteRoom(ctx, number); err != nil {
		logger.ErrorContext(ctx, "failed to remove room", "error", err, "error_kind", ErrorKind(err))
		return err
	}
	logger.InfoContext(ctx, "room removed")
	return nil
}

func validateRoomInput(input RoomInput) *ValidationError {
	vErr := &ValidationError{}

	if strings.TrimSpace(input.Number) == "" {
		vErr.add("number", "room number is required")
	}
	if input.Capacity <= 0 {
		vErr.add("capacity", "capacity must be positive")
	}
	if !validRoomType(input.Type) {
		vErr.add("type", fmt.Sprintf("room type must be one of: %s", strings.Join(RoomTypes(), ", ")))
	}

	return vErr
}

func validRoomType(value string) bool {
	for _, roomType := range RoomTypes() {
		if value == roomType {
			return true
		}
	}
	return false
}
