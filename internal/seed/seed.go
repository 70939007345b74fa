package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/praveenraj/scholarhub/internal/app/models"
	"github.com/praveenraj/scholarhub/internal/app/repositories"
	"github.com/praveenraj/scholarhub/internal/pkg/apperrors"
	"github.com/praveenraj/scholarhub/internal/pkg/auth"
)

// CreateDefaultData inserts a demo teacher, a demo student and one open
// scholarship so a fresh install has something to click through. Existing
// rows are left alone.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)
	scholarshipRepo := repositories.NewScholarshipRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (demo accounts)...")
	var finalErr error

	teacherID, err := seedUser(ctx, userRepo, "demo_teacher", "teacher123", models.RoleTeacher, lgr)
	if err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	if _, err := seedUser(ctx, userRepo, "demo_student", "student123", models.RoleStudent, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	if teacherID > 0 {
		scholarships, err := scholarshipRepo.ListByTeacher(ctx, teacherID)
		if err != nil {
			lgr.Error().Err(err).Msg("Error checking demo scholarships")
			finalErr = errors.Join(finalErr, err)
		} else if len(scholarships) == 0 {
			scholarship := &models.Scholarship{
				TeacherID:   teacherID,
				Title:       "Merit Scholarship 2026",
				Description: "Awarded to students with outstanding academic performance.",
				Deadline:    time.Now().AddDate(0, 3, 0),
			}
			if err := scholarshipRepo.Create(ctx, scholarship); err != nil {
				lgr.Error().Err(err).Msg("Error creating demo scholarship")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Int64("scholarshipID", scholarship.ID).Msg("Demo scholarship created")
			}
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete")
	}
	return finalErr
}

func seedUser(ctx context.Context, userRepo *repositories.UserRepository, username, password string, role models.RoleType, lgr zerolog.Logger) (int64, error) {
	existing, err := userRepo.GetByUsername(ctx, username)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		lgr.Error().Err(err).Str("username", username).Msg("Error checking demo user")
		return 0, err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return 0, err
	}

	user := &models.User{
		Username: username,
		Password: hashed,
		Role:     role,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrUsernameTaken) {
			return 0, nil
		}
		lgr.Error().Err(err).Str("username", username).Msg("Error creating demo user")
		return 0, err
	}

	lgr.Info().Int64("userID", user.ID).Str("username", username).Msg("Demo user created")
	return user.ID, nil
}
