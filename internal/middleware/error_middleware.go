package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/praveenraj/scholarhub/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to HTTP responses. The response
// bodies are flat ({"error": ...} / {"message": ...}) because that is
// what the existing frontend parses. fallback, when given, replaces the
// generic 500 message for the route.
func HandleAPIError(c *gin.Context, err error, fallback ...string) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})

	case errors.Is(err, apperrors.ErrAlreadyApplied):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Already applied"})

	case errors.Is(err, apperrors.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})

	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrInvalidRole,
		apperrors.ErrInvalidDeadline,
		apperrors.ErrInvalidStatus,
		apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})

	case errors.Is(err, apperrors.ErrApplicationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})

	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})

	case errors.Is(err, apperrors.ErrChatUnavailable):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Gemini API key not configured. Please set GEMINI_API_KEY in your environment.",
		})

	case errors.Is(err, apperrors.ErrChatUpstream):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to process chatbot request",
			"message": err.Error(),
		})

	default:
		message := "Internal server error"
		if len(fallback) > 0 && fallback[0] != "" {
			message = fallback[0]
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}
