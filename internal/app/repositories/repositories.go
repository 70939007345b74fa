package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	ScholarshipRepository *ScholarshipRepository
	ApplicationRepository *ApplicationRepository
	ChatRepository        *ChatRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	userRepo := NewUserRepository(db)
	scholarshipRepo := NewScholarshipRepository(db)
	applicationRepo := NewApplicationRepository(db)

	return &Repositories{
		UserRepository:        userRepo,
		ScholarshipRepository: scholarshipRepo,
		ApplicationRepository: applicationRepo,
		ChatRepository:        NewChatRepository(db, userRepo, scholarshipRepo, applicationRepo),
	}
}
