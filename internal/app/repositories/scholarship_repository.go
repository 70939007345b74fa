package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/praveenraj/scholarhub/internal/app/models"
	"github.com/praveenraj/scholarhub/internal/pkg/logger"
)

// ScholarshipRepository handles scholarship database operations
type ScholarshipRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewScholarshipRepository creates a new ScholarshipRepository
func NewScholarshipRepository(db *pgxpool.Pool) *ScholarshipRepository {
	return &ScholarshipRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new scholarship and sets the generated id on the model
func (r *ScholarshipRepository) Create(ctx context.Context, scholarship *models.Scholarship) error {
	sql, args, err := r.sb.Insert("scholarships").
		Columns("teacher_id", "title", "description", "deadline").
		Values(scholarship.TeacherID, scholarship.Title, scholarship.Description, scholarship.Deadline).
		Suffix("RETURNING scholarship_id, created_at").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create scholarship SQL")
		return fmt.Errorf("failed to build create scholarship query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&scholarship.ID, &scholarship.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Int64("teacherID", scholarship.TeacherID).Msg("Error executing create scholarship query")
		return fmt.Errorf("error creating scholarship: %w", err)
	}

	return nil
}

// ListByTeacher retrieves all scholarships created by a teacher, regardless of deadline
func (r *ScholarshipRepository) ListByTeacher(ctx context.Context, teacherID int64) ([]*models.Scholarship, error) {
	query := r.sb.Select("scholarship_id", "teacher_id", "title", "description", "deadline", "created_at").
		From("scholarships").
		Where(squirrel.Eq{"teacher_id": teacherID}).
		OrderBy("created_at DESC")

	return r.list(ctx, r.db, query)
}

// ListAvailable retrieves all scholarships whose deadline has not passed.
// The deadline day itself counts as available.
func (r *ScholarshipRepository) ListAvailable(ctx context.Context) ([]*models.Scholarship, error) {
	return r.list(ctx, r.db, r.availableQuery())
}

// ListAvailableTx is ListAvailable within an existing transaction
func (r *ScholarshipRepository) ListAvailableTx(ctx context.Context, tx pgx.Tx) ([]*models.Scholarship, error) {
	return r.list(ctx, tx, r.availableQuery())
}

func (r *ScholarshipRepository) availableQuery() squirrel.SelectBuilder {
	return r.sb.Select("scholarship_id", "teacher_id", "title", "description", "deadline", "created_at").
		From("scholarships").
		Where(squirrel.Expr("deadline >= CURRENT_DATE")).
		OrderBy("deadline ASC")
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *ScholarshipRepository) list(ctx context.Context, q querier, query squirrel.SelectBuilder) ([]*models.Scholarship, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list scholarships SQL")
		return nil, fmt.Errorf("failed to build list scholarships query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list scholarships query")
		return nil, fmt.Errorf("error querying scholarships: %w", err)
	}
	defer rows.Close()

	scholarships := []*models.Scholarship{}
	for rows.Next() {
		s := &models.Scholarship{}
		if err := rows.Scan(&s.ID, &s.TeacherID, &s.Title, &s.Description, &s.Deadline, &s.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning scholarship row")
			return nil, fmt.Errorf("error scanning scholarship row: %w", err)
		}
		scholarships = append(scholarships, s)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating scholarship rows")
		return nil, fmt.Errorf("error iterating scholarship rows: %w", err)
	}

	return scholarships, nil
}
