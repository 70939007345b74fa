package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/praveenraj/scholarhub/internal/app/models"
	"github.com/praveenraj/scholarhub/internal/pkg/apperrors"
	"github.com/praveenraj/scholarhub/internal/pkg/dberrors"
	"github.com/praveenraj/scholarhub/internal/pkg/logger"
)

// ApplicationRepository handles scholarship application database operations
type ApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new application with status pending and sets the
// generated id. A second application by the same student to the same
// scholarship is reported as apperrors.ErrAlreadyApplied.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	sql, args, err := r.sb.Insert("scholarship_applications").
		Columns("scholarship_id", "student_id", "first_name", "last_name",
			"cgpa", "tenth_mark", "twelfth_mark", "address", "phone_no",
			"email", "department", "current_year").
		Values(app.ScholarshipID, app.StudentID, app.FirstName, app.LastName,
			app.CGPA, app.TenthMark, app.TwelfthMark, app.Address, app.PhoneNo,
			app.Email, app.Department, app.CurrentYear).
		Suffix("RETURNING application_id, status, applied_at").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create application SQL")
		return fmt.Errorf("failed to build create application query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&app.ID, &app.Status, &app.AppliedAt)
	if err != nil {
		if dberrors.IsUniqueViolationOn(err, "uq_application_scholarship_student") {
			return apperrors.ErrAlreadyApplied
		}
		logger.Error().Err(err).
			Int64("scholarshipID", app.ScholarshipID).
			Int64("studentID", app.StudentID).
			Msg("Error executing create application query")
		return fmt.Errorf("error creating application: %w", err)
	}

	return nil
}

// ListByScholarship retrieves all applications for a scholarship joined
// with the applicant's username.
func (r *ApplicationRepository) ListByScholarship(ctx context.Context, scholarshipID int64) ([]*models.ApplicationWithApplicant, error) {
	sql, args, err := r.sb.Select(
		"a.application_id", "a.scholarship_id", "a.student_id",
		"a.first_name", "a.last_name", "a.cgpa", "a.tenth_mark", "a.twelfth_mark",
		"a.address", "a.phone_no", "a.email", "a.department", "a.current_year",
		"a.status", "a.applied_at", "u.username").
		From("scholarship_applications a").
		Join("users u ON a.student_id = u.user_id").
		Where(squirrel.Eq{"a.scholarship_id": scholarshipID}).
		OrderBy("a.applied_at ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list applications by scholarship SQL")
		return nil, fmt.Errorf("failed to build list applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("scholarshipID", scholarshipID).Msg("Error executing list applications query")
		return nil, fmt.Errorf("error querying applications: %w", err)
	}
	defer rows.Close()

	applications := []*models.ApplicationWithApplicant{}
	for rows.Next() {
		a := &models.ApplicationWithApplicant{}
		if err := rows.Scan(&a.ID, &a.ScholarshipID, &a.StudentID,
			&a.FirstName, &a.LastName, &a.CGPA, &a.TenthMark, &a.TwelfthMark,
			&a.Address, &a.PhoneNo, &a.Email, &a.Department, &a.CurrentYear,
			&a.Status, &a.AppliedAt, &a.Username); err != nil {
			logger.Error().Err(err).Msg("Error scanning application row")
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		applications = append(applications, a)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating application rows")
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}

	return applications, nil
}

// ListByStudent retrieves a student's applications projected to the
// summary shape (id, scholarship title, status, applied_at).
func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.StudentApplicationSummary, error) {
	sql, args, err := r.sb.Select("a.application_id", "s.title", "a.status", "a.applied_at").
		From("scholarship_applications a").
		Join("scholarships s ON a.scholarship_id = s.scholarship_id").
		Where(squirrel.Eq{"a.student_id": studentID}).
		OrderBy("a.applied_at DESC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list applications by student SQL")
		return nil, fmt.Errorf("failed to build list applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing list applications query")
		return nil, fmt.Errorf("error querying applications: %w", err)
	}
	defer rows.Close()

	summaries := []*models.StudentApplicationSummary{}
	for rows.Next() {
		s := &models.StudentApplicationSummary{}
		if err := rows.Scan(&s.ApplicationID, &s.Title, &s.Status, &s.AppliedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning application summary row")
			return nil, fmt.Errorf("error scanning application summary row: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating application summary rows")
		return nil, fmt.Errorf("error iterating application summary rows: %w", err)
	}

	return summaries, nil
}

// ListDetailTx retrieves a student's applications joined with full
// scholarship detail, within an existing transaction.
func (r *ApplicationRepository) ListDetailTx(ctx context.Context, tx pgx.Tx, studentID int64) ([]*models.ApplicationDetail, error) {
	sql, args, err := r.sb.Select(
		"a.application_id", "a.scholarship_id", "a.student_id",
		"a.first_name", "a.last_name", "a.cgpa", "a.tenth_mark", "a.twelfth_mark",
		"a.address", "a.phone_no", "a.email", "a.department", "a.current_year",
		"a.status", "a.applied_at",
		"s.title", "s.description", "s.deadline").
		From("scholarship_applications a").
		Join("scholarships s ON a.scholarship_id = s.scholarship_id").
		Where(squirrel.Eq{"a.student_id": studentID}).
		OrderBy("a.applied_at ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building application detail SQL")
		return nil, fmt.Errorf("failed to build application detail query: %w", err)
	}

	rows, err := tx.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing application detail query")
		return nil, fmt.Errorf("error querying application details: %w", err)
	}
	defer rows.Close()

	details := []*models.ApplicationDetail{}
	for rows.Next() {
		d := &models.ApplicationDetail{}
		if err := rows.Scan(&d.ID, &d.ScholarshipID, &d.StudentID,
			&d.FirstName, &d.LastName, &d.CGPA, &d.TenthMark, &d.TwelfthMark,
			&d.Address, &d.PhoneNo, &d.Email, &d.Department, &d.CurrentYear,
			&d.Status, &d.AppliedAt,
			&d.ScholarshipTitle, &d.ScholarshipDescription, &d.ScholarshipDeadline); err != nil {
			logger.Error().Err(err).Msg("Error scanning application detail row")
			return nil, fmt.Errorf("error scanning application detail row: %w", err)
		}
		details = append(details, d)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating application detail rows")
		return nil, fmt.Errorf("error iterating application detail rows: %w", err)
	}

	return details, nil
}

// UpdateStatus sets an application's status. An unknown application id
// is reported as apperrors.ErrApplicationNotFound.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, applicationID int64, status models.ApplicationStatus) error {
	sql, args, err := r.sb.Update("scholarship_applications").
		Set("status", status).
		Where(squirrel.Eq{"application_id": applicationID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update application status SQL")
		return fmt.Errorf("failed to build update status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("applicationID", applicationID).Msg("Error executing update application status query")
		return fmt.Errorf("error updating application status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}
