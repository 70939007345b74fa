package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/praveenraj/scholarhub/internal/app/models/dto"
	"github.com/praveenraj/scholarhub/internal/app/services"
	"github.com/praveenraj/scholarhub/internal/middleware"
)

// ScholarshipController handles scholarship listing operations
type ScholarshipController struct {
	scholarshipService services.ScholarshipService
	logger             zerolog.Logger
}

// NewScholarshipController creates a new ScholarshipController
func NewScholarshipController(scholarshipService services.ScholarshipService, logger zerolog.Logger) *ScholarshipController {
	return &ScholarshipController{
		scholarshipService: scholarshipService,
		logger:             logger,
	}
}

// Create handles scholarship creation by a teacher
func (c *ScholarshipController) Create(ctx *gin.Context) {
	var req dto.CreateScholarshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid scholarship creation payload")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "teacher_id, title, description and deadline are required"})
		return
	}

	scholarship, err := c.scholarshipService.Create(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("teacherID", req.TeacherID).Msg("Scholarship creation failed")
		middleware.HandleAPIError(ctx, err, "Failed to create scholarship")
		return
	}

	c.logger.Info().
		Int64("scholarshipID", scholarship.ID).
		Int64("teacherID", scholarship.TeacherID).
		Str("title", scholarship.Title).
		Msg("Scholarship created")

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Scholarship created successfully"})
}

// ListByTeacher returns every scholarship created by the given teacher
func (c *ScholarshipController) ListByTeacher(ctx *gin.Context) {
	teacherID, err := strconv.ParseInt(ctx.Param("teacher_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "teacher_id must be a number"})
		return
	}

	scholarships, err := c.scholarshipService.ListByTeacher(ctx.Request.Context(), teacherID)
	if err != nil {
		c.logger.Error().Err(err).Int64("teacherID", teacherID).Msg("Failed to list teacher scholarships")
		middleware.HandleAPIError(ctx, err, "Failed to fetch scholarships")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewScholarshipListResponse(scholarships))
}

// ListAvailable returns scholarships whose deadline has not passed
func (c *ScholarshipController) ListAvailable(ctx *gin.Context) {
	scholarships, err := c.scholarshipService.ListAvailable(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list available scholarships")
		middleware.HandleAPIError(ctx, err, "Failed to fetch scholarships")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewScholarshipListResponse(scholarships))
}
