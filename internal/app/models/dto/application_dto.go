package dto

// ApplyRequest carries the scholarship application form fields
type ApplyRequest struct {
	ScholarshipID int64   `json:"scholarship_id" binding:"required"`
	StudentID     int64   `json:"student_id" binding:"required"`
	FirstName     string  `json:"first_name" binding:"required"`
	LastName      string  `json:"last_name" binding:"required"`
	CGPA          float64 `json:"cgpa" binding:"required"`
	TenthMark     float64 `json:"tenth_mark" binding:"required"`
	TwelfthMark   float64 `json:"twelfth_mark" binding:"required"`
	Address       string  `json:"address" binding:"required"`
	PhoneNo       string  `json:"phone_no" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Department    string  `json:"department" binding:"required"`
	CurrentYear   int     `json:"current_year" binding:"required"`
}

// UpdateStatusRequest carries a teacher's decision on an application
type UpdateStatusRequest struct {
	ApplicationID int64  `json:"application_id" binding:"required"`
	Status        string `json:"status" binding:"required"`
}
