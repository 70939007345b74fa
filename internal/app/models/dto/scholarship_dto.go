package dto

import (
	"github.com/praveenraj/scholarhub/internal/app/models"
	"github.com/praveenraj/scholarhub/internal/pkg/helpers"
)

// CreateScholarshipRequest represents a teacher's new listing
type CreateScholarshipRequest struct {
	TeacherID   int64  `json:"teacher_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Deadline    string `json:"deadline" binding:"required"` // YYYY-MM-DD
}

// ScholarshipResponse is the wire representation of a scholarship
type ScholarshipResponse struct {
	ScholarshipID int64  `json:"scholarship_id"`
	TeacherID     int64  `json:"teacher_id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Deadline      string `json:"deadline"`
}

// NewScholarshipResponse maps a scholarship model to its wire form
func NewScholarshipResponse(s *models.Scholarship) ScholarshipResponse {
	return ScholarshipResponse{
		ScholarshipID: s.ID,
		TeacherID:     s.TeacherID,
		Title:         s.Title,
		Description:   s.Description,
		Deadline:      helpers.FormatDate(s.Deadline),
	}
}

// NewScholarshipListResponse maps a slice of scholarship models
func NewScholarshipListResponse(scholarships []*models.Scholarship) []ScholarshipResponse {
	out := make([]ScholarshipResponse, 0, len(scholarships))
	for _, s := range scholarships {
		out = append(out, NewScholarshipResponse(s))
	}
	return out
}
