package dto

import "github.com/praveenraj/scholarhub/internal/app/models"

// RegisterRequest represents a registration request for a student or teacher
type RegisterRequest struct {
	Username string          `json:"username" binding:"required"`
	Password string          `json:"password" binding:"required"`
	Role     models.RoleType `json:"role" binding:"required"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned on a successful login; the client stores
// the user id and role in a cookie, there is no session token.
type LoginResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
	Role    string `json:"role"`
}
