package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/praveenraj/scholarhub/internal/app/models"
	"github.com/praveenraj/scholarhub/internal/db"
)

// ChatRepository assembles the chat assistant's student snapshot.
type ChatRepository struct {
	pool            db.TxBeginner
	userRepo        *UserRepository
	scholarshipRepo *ScholarshipRepository
	applicationRepo *ApplicationRepository
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(pool *pgxpool.Pool, userRepo *UserRepository, scholarshipRepo *ScholarshipRepository, applicationRepo *ApplicationRepository) *ChatRepository {
	return &ChatRepository{
		pool:            pool,
		userRepo:        userRepo,
		scholarshipRepo: scholarshipRepo,
		applicationRepo: applicationRepo,
	}
}

// StudentSnapshot reads the student's user row, their applications with
// scholarship detail, and the available scholarships in one repeatable
// read transaction, so the three reads see the same state.
func (r *ChatRepository) StudentSnapshot(ctx context.Context, studentID int64) (*models.StudentSnapshot, error) {
	snapshot := &models.StudentSnapshot{}

	opts := pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
	err := db.WithTransactionOptions(ctx, r.pool, opts, func(ctx context.Context, tx pgx.Tx) error {
		user, err := r.userRepo.GetByIDTx(ctx, tx, studentID)
		if err != nil {
			return err
		}
		snapshot.User = user

		applications, err := r.applicationRepo.ListDetailTx(ctx, tx, studentID)
		if err != nil {
			return err
		}
		snapshot.Applications = applications

		available, err := r.scholarshipRepo.ListAvailableTx(ctx, tx)
		if err != nil {
			return err
		}
		snapshot.AvailableScholarships = available

		return nil
	})
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}
