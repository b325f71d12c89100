package application

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/example/faculty-scheduler/internal/persistence"
)

// SubjectService orchestrates validation and persistence for subjects.
type SubjectService struct {
	subjects persistence.SubjectRepository
	logger   *slog.Logger
}

// NewSubjectService constructs a subject service.
func NewSubjectService(subjects persistence.SubjectRepository, logger *slog.Logger) *SubjectService {
	return &SubjectService{subjects: subjects, logger: defaultLogger(logger)}
}

func (s *SubjectService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "SubjectService", operation, attrs...)
}

// Add validates and persists a new subject record.
func (s *SubjectService) Add(ctx context.Context, input SubjectInput) (subject persistence.Subject, err error) {
	if s == nil || s.subjects == nil {
		err = fmt.Errorf("subject repository not configured")
		return
	}

	logger := s.loggerWith(ctx, "Add", "subject_code", input.Code)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to add subject", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "subject added")
	}()

	vErr := &ValidationError{}
	if strings.TrimSpace(input.Code) == "" {
		vErr.add("code", "subject code is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		vErr.add("name", "name is required")
	}
	if input.Credits < 0 {
		vErr.add("credits", "credits cannot be negative")
	}
	if vErr.HasErrors() {
		err = vErr
		return
	}

	subject = persistence.Subject{
		Code:       strings.TrimSpace(input.Code),
		Name:       strings.TrimSpace(input.Name),
		Credits:    input.Credits,
		Department: strings.TrimSpace(input.Department),
	}

	if err = s.subjects.AddSubject(ctx, subject); err != nil {
		err = mapRepoError(err)
		return
	}
	return
}

// List returns all subject records ordered by code.
func (s *SubjectService) List(ctx context.Context) ([]persistence.Subject, error) {
	if s == nil || s.subjects == nil {
		return nil, fmt.Errorf("subject repository not configured")
	}

	subjects, err := s.subjects.ListSubjects(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(subjects, func(i, j int) bool { return subjects[i].Code < subjects[j].Code })
	return subjects, nil
}

// Remove deletes a subject record. Removing an unknown code is a no-op and
// existing bookings referencing the code are left dangling.
func (s *SubjectService) Remove(ctx context.Context, code string) error {
	if s == nil || s.subjects == nil {
		return fmt.Errorf("subject repository not configured")
	}

	logger := s.loggerWith(ctx, "Remove", "subject_code", code)
	if err := s.subjects.DeleteSubject(ctx, code); err != nil {
		logger.ErrorContext(ctx, "failed to remove subject", "error", err, "error_kind", ErrorKind(err))
		return err
	}
	logger.InfoContext(ctx, "subject removed")
	return nil
}
