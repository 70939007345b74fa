package models

import "time"

// Scholarship represents a teacher-authored scholarship listing.
// Listings are immutable once created; a listing is available while
// its deadline has not passed (deadline day itself included).
type Scholarship struct {
	ID          int64     `json:"scholarship_id" db:"scholarship_id"`
	TeacherID   int64     `json:"teacher_id" db:"teacher_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Deadline    time.Time `json:"deadline" db:"deadline"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
