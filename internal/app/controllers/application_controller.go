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

// ApplicationController handles the application workflow
type ApplicationController struct {
	applicationService services.ApplicationService
	logger             zerolog.Logger
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService services.ApplicationService, logger zerolog.Logger) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
		logger:             logger,
	}
}

// Apply handles a student submitting an application form
func (c *ApplicationController) Apply(ctx *gin.Context) {
	var req dto.ApplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid application payload")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "all application form fields are required"})
		return
	}

	application, err := c.applicationService.Apply(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Int64("scholarshipID", req.ScholarshipID).
			Int64("studentID", req.StudentID).
			Msg("Application failed")
		middleware.HandleAPIError(ctx, err, "Failed to apply")
		return
	}

	c.logger.Info().
		Int64("applicationID", application.ID).
		Int64("scholarshipID", application.ScholarshipID).
		Int64("studentID", application.StudentID).
		Msg("Application submitted")

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Applied successfully"})
}

// ListForScholarship returns every application submitted to a scholarship
func (c *ApplicationController) ListForScholarship(ctx *gin.Context) {
	scholarshipID, err := strconv.ParseInt(ctx.Param("scholarship_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "scholarship_id must be a number"})
		return
	}

	applications, err := c.applicationService.ListForScholarship(ctx.Request.Context(), scholarshipID)
	if err != nil {
		c.logger.Error().Err(err).Int64("scholarshipID", scholarshipID).Msg("Failed to list applications")
		middleware.HandleAPIError(ctx, err, "Failed to fetch applications")
		return
	}

	ctx.JSON(http.StatusOK, applications)
}

// ListForStudent returns the student's own applications with their status
func (c *ApplicationController) ListForStudent(ctx *gin.Context) {
	studentID, err := strconv.ParseInt(ctx.Param("student_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "student_id must be a number"})
		return
	}

	applications, err := c.applicationService.ListForStudent(ctx.Request.Context(), studentID)
	if err != nil {
		c.logger.Error().Err(err).Int64("studentID", studentID).Msg("Failed to list student applications")
		middleware.HandleAPIError(ctx, err, "Failed to fetch applications")
		return
	}

	ctx.JSON(http.StatusOK, applications)
}

// UpdateStatus handles a teacher approving or rejecting an application
func (c *ApplicationController) UpdateStatus(ctx *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid status update payload")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "application_id and status are required"})
		return
	}

	if err := c.applicationService.UpdateStatus(ctx.Request.Context(), req.ApplicationID, req.Status); err != nil {
		c.logger.Warn().
			Err(err).
			Int64("applicationID", req.ApplicationID).
			Str("status", req.Status).
			Msg("Status update failed")
		middleware.HandleAPIError(ctx, err, "Failed to update status")
		return
	}

	c.logger.Info().
		Int64("applicationID", req.ApplicationID).
		Str("status", req.Status).
		Msg("Application status updated")

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Status updated successfully"})
}
