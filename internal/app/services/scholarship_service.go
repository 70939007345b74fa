package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/praveenraj/scholarhub/internal/app/models"
	"github.com/praveenraj/scholarhub/internal/app/models/dto"
	"github.com/praveenraj/scholarhub/internal/pkg/apperrors"
	"github.com/praveenraj/scholarhub/internal/pkg/helpers"
)

// ScholarshipRepository defines the scholarship persistence operations
type ScholarshipRepository interface {
	Create(ctx context.Context, scholarship *models.Scholarship) error
	ListByTeacher(ctx context.Context, teacherID int64) ([]*models.Scholarship, error)
	ListAvailable(ctx context.Context) ([]*models.Scholarship, error)
}

// ScholarshipService defines the interface for scholarship operations
type ScholarshipService interface {
	Create(ctx context.Context, req *dto.CreateScholarshipRequest) (*models.Scholarship, error)
	ListByTeacher(ctx context.Context, teacherID int64) ([]*models.Scholarship, error)
	ListAvailable(ctx context.Context) ([]*models.Scholarship, error)
}

// scholarshipServiceImpl implements the ScholarshipService interface
type scholarshipServiceImpl struct {
	scholarshipRepo ScholarshipRepository
}

// NewScholarshipService creates a new scholarship service instance
func NewScholarshipService(scholarshipRepo ScholarshipRepository) ScholarshipService {
	return &scholarshipServiceImpl{
		scholarshipRepo: scholarshipRepo,
	}
}

// Create inserts a new scholarship listing. The teacher id is not
// checked against a teacher-role account; any existing user id is
// accepted, matching the behavior the clients rely on.
func (s *scholarshipServiceImpl) Create(ctx context.Context, req *dto.CreateScholarshipRequest) (*models.Scholarship, error) {
	if req.TeacherID <= 0 {
		return nil, fmt.Errorf("%w: invalid teacher ID", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}

	deadline, err := helpers.ParseDate(req.Deadline)
	if err != nil {
		return nil, fmt.Errorf("%w: deadline must be YYYY-MM-DD", apperrors.ErrInvalidDeadline)
	}

	scholarship := &models.Scholarship{
		TeacherID:   req.TeacherID,
		Title:       req.Title,
		Description: req.Description,
		Deadline:    deadline,
	}

	if err := s.scholarshipRepo.Create(ctx, scholarship); err != nil {
		return nil, fmt.Errorf("error creating scholarship: %w", err)
	}

	return scholarship, nil
}

// ListByTeacher retrieves all of a teacher's scholarships, expired ones included
func (s *scholarshipServiceImpl) ListByTeacher(ctx context.Context, teacherID int64) ([]*models.Scholarship, error) {
	if teacherID <= 0 {
		return nil, fmt.Errorf("%w: invalid teacher ID", apperrors.ErrValidationFailed)
	}

	scholarships, err := s.scholarshipRepo.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving scholarships: %w", err)
	}
	return scholarships, nil
}

// ListAvailable retrieves all scholarships still open for applications
func (s *scholarshipServiceImpl) ListAvailable(ctx context.Context) ([]*models.Scholarship, error) {
	scholarships, err := s.scholarshipRepo.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving available scholarships: %w", err)
	}
	return scholarships, nil
}
