package models

import "time"

// ApplicationStatus is the reviewer's decision on an application
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusApproved ApplicationStatus = "approved"
	StatusRejected ApplicationStatus = "rejected"
)

// Decided reports whether the status is a reviewer decision.
// Only decisions may be written through the status update path;
// pending is the initial state and is never set explicitly.
func (s ApplicationStatus) Decided() bool {
	return s == StatusApproved || s == StatusRejected
}

// Application represents a student's submission for a scholarship,
// based on the 'scholarship_applications' table. At most one application
// exists per (scholarship, student) pair.
type Application struct {
	ID            int64             `json:"application_id" db:"application_id"`
	ScholarshipID int64             `json:"scholarship_id" db:"scholarship_id"`
	StudentID     int64             `json:"student_id" db:"student_id"`
	FirstName     string            `json:"first_name" db:"first_name"`
	LastName      string            `json:"last_name" db:"last_name"`
	CGPA          float64           `json:"cgpa" db:"cgpa"`
	TenthMark     float64           `json:"tenth_mark" db:"tenth_mark"`
	TwelfthMark   float64           `json:"twelfth_mark" db:"twelfth_mark"`
	Address       string            `json:"address" db:"address"`
	PhoneNo       string            `json:"phone_no" db:"phone_no"`
	Email         string            `json:"email" db:"email"`
	Department    string            `json:"department" db:"department"`
	CurrentYear   int               `json:"current_year" db:"current_year"`
	Status        ApplicationStatus `json:"status" db:"status"`
	AppliedAt     time.Time         `json:"applied_at" db:"applied_at"`
}

// ApplicationWithApplicant is an application joined with the applicant's
// username, used by the teacher-facing review list.
type ApplicationWithApplicant struct {
	Application
	Username string `json:"username"`
}

// StudentApplicationSummary is the student-facing projection of an application.
type StudentApplicationSummary struct {
	ApplicationID int64             `json:"application_id"`
	Title         string            `json:"title"`
	Status        ApplicationStatus `json:"status"`
	AppliedAt     time.Time         `json:"applied_at"`
}

// ApplicationDetail is an application joined with its scholarship,
// used to assemble the chat assistant context.
type ApplicationDetail struct {
	Application
	ScholarshipTitle       string    `json:"scholarship_title"`
	ScholarshipDescription string    `json:"scholarship_description"`
	ScholarshipDeadline    time.Time `json:"scholarship_deadline"`
}
