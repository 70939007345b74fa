package models

import "time"

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleTeacher RoleType = "teacher"
)

// Valid reports whether the role is one of the known roles.
func (r RoleType) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"user_id" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Role      RoleType  `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
