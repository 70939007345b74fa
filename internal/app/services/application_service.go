package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/praveenraj/scholarhub/internal/app/models"
	"github.com/praveenraj/scholarhub/internal/app/models/dto"
	"github.com/praveenraj/scholarhub/internal/pkg/apperrors"
)

// ApplicationRepository defines the application persistence operations
type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	ListByScholarship(ctx context.Context, scholarshipID int64) ([]*models.ApplicationWithApplicant, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.StudentApplicationSummary, error)
	UpdateStatus(ctx context.Context, applicationID int64, status models.ApplicationStatus) error
}

// ApplicationService defines the interface for application workflow operations
type ApplicationService interface {
	Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error)
	ListForScholarship(ctx context.Context, scholarshipID int64) ([]*models.ApplicationWithApplicant, error)
	ListForStudent(ctx context.Context, studentID int64) ([]*models.StudentApplicationSummary, error)
	UpdateStatus(ctx context.Context, applicationID int64, status string) error
}

// applicationServiceImpl implements the ApplicationService interface
type applicationServiceImpl struct {
	applicationRepo ApplicationRepository
}

// NewApplicationService creates a new application service instance
func NewApplicationService(applicationRepo ApplicationRepository) ApplicationService {
	return &applicationServiceImpl{
		applicationRepo: applicationRepo,
	}
}

// Apply submits a student's application with status pending. A repeat
// submission for the same scholarship surfaces as ErrAlreadyApplied.
func (s *applicationServiceImpl) Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error) {
	if req.ScholarshipID <= 0 || req.StudentID <= 0 {
		return nil, fmt.Errorf("%w: invalid scholarship or student ID", apperrors.ErrValidationFailed)
	}

	app := &models.Application{
		ScholarshipID: req.ScholarshipID,
		StudentID:     req.StudentID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		CGPA:          req.CGPA,
		TenthMark:     req.TenthMark,
		TwelfthMark:   req.TwelfthMark,
		Address:       req.Address,
		PhoneNo:       req.PhoneNo,
		Email:         req.Email,
		Department:    req.Department,
		CurrentYear:   req.CurrentYear,
	}

	if err := s.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyApplied) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, fmt.Errorf("error submitting application: %w", err)
	}

	return app, nil
}

// ListForScholarship retrieves a scholarship's applications with applicant usernames
func (s *applicationServiceImpl) ListForScholarship(ctx context.Context, scholarshipID int64) ([]*models.ApplicationWithApplicant, error) {
	if scholarshipID <= 0 {
		return nil, fmt.Errorf("%w: invalid scholarship ID", apperrors.ErrValidationFailed)
	}

	applications, err := s.applicationRepo.ListByScholarship(ctx, scholarshipID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving applications: %w", err)
	}
	return applications, nil
}

// ListForStudent retrieves a student's application summaries
func (s *applicationServiceImpl) ListForStudent(ctx context.Context, studentID int64) ([]*models.StudentApplicationSummary, error) {
	if studentID <= 0 {
		return nil, fmt.Errorf("%w: invalid student ID", apperrors.ErrValidationFailed)
	}

	summaries, err := s.applicationRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving applications: %w", err)
	}
	return summaries, nil
}

// UpdateStatus records a teacher's decision. Only approved and rejected
// are accepted; pending is the initial state and cannot be restored.
// A decided application may still be overwritten with the other decision.
func (s *applicationServiceImpl) UpdateStatus(ctx context.Context, applicationID int64, status string) error {
	if applicationID <= 0 {
		return fmt.Errorf("%w: invalid application ID", apperrors.ErrValidationFailed)
	}

	decision := models.ApplicationStatus(strings.ToLower(strings.TrimSpace(status)))
	if !decision.Decided() {
		return fmt.Errorf("%w: status must be approved or rejected", apperrors.ErrInvalidStatus)
	}

	err := s.applicationRepo.UpdateStatus(ctx, applicationID, decision)
	if err != nil {
		if errors.Is(err, apperrors.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return fmt.Errorf("error updating application status: %w", err)
	}

	return nil
}
