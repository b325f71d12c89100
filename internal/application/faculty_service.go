package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/example/faculty-scheduler/internal/persistence"
)

// FacultyService orchestrates validation and persistence for faculty records.
type FacultyService struct {
	faculty persistence.FacultyRepository
	logger  *slog.Logger
}

// NewFacultyService constructs a faculty service.
func NewFacultyService(faculty persistence.FacultyRepository, logger *slog.Logger) *FacultyService {
	return &FacultyService{faculty: faculty, logger: defaultLogger(logger)}
}

func (s *FacultyService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "FacultyService", operation, attrs...)
}

// Add validates and persists a new faculty record.
func (s *FacultyService) Add(ctx context.Context, input FacultyInput) (faculty persistence.Faculty, err error) {
	if s == nil || s.faculty == nil {
		err = fmt.Errorf("faculty repository not configured")
		return
	}

	logger := s.loggerWith(ctx, "Add", "faculty_id", input.ID)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to add faculty", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "faculty added")
	}()

	vErr := &ValidationError{}
	if strings.TrimSpace(input.ID) == "" {
		vErr.add("id", "faculty id is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		vErr.add("name", "name is required")
	}
	if vErr.HasErrors() {
		err = vErr
		return
	}

	faculty = persistence.Faculty{
		ID:         strings.TrimSpace(input.ID),
		Name:       strings.TrimSpace(input.Name),
		Department: strings.TrimSpace(input.Department),
		Email:      strings.TrimSpace(input.Email),
		Phone:      strings.TrimSpace(input.Phone),
		Photo:      input.Photo,
	}

	if err = s.faculty.AddFaculty(ctx, faculty); err != nil {
		err = mapRepoError(err)
		return
	}
	return
}

// List returns all faculty records ordered by identifier.
func (s *FacultyService) List(ctx context.Context) ([]persistence.Faculty, error) {
	if s == nil || s.faculty == nil {
		return nil, fmt.Errorf("faculty repository not configured")
	}

	faculty, err := s.faculty.ListFaculty(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(faculty, func(i, j int) bool { return faculty[i].ID < faculty[j].ID })
	return faculty, nil
}

// Remove deletes a faculty record. Removing an unknown identifier is a no-op
// and existing bookings referencing the record are left dangling.
func (s *FacultyService) Remove(ctx context.Context, id string) error {
	if s == nil || s.faculty == nil {
		return fmt.Errorf("faculty repository not configured")
	}

	logger := s.loggerWith(ctx, "Remove", "faculty_id", id)
	if err := s.faculty.DeleteFaculty(ctx, id); err != nil {
		logger.ErrorContext(ctx, "failed to remove faculty", "error", err, "error_kind", ErrorKind(err))
		return err
	}
	logger.InfoContext(ctx, "faculty removed")
	return nil
}

// mapRepoError translates persistence sentinels into application sentinels.
func mapRepoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, persistence.ErrNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, persistence.ErrDuplicate) {
		return ErrAlreadyExists
	}
	return err
}
