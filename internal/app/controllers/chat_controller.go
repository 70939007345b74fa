package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/praveenraj/scholarhub/internal/app/models/dto"
	"github.com/praveenraj/scholarhub/internal/app/services"
	"github.com/praveenraj/scholarhub/internal/middleware"
)

// ChatController handles the scholarship assistant endpoint
type ChatController struct {
	chatService services.ChatService
	logger      zerolog.Logger
}

// NewChatController creates a new ChatController
func NewChatController(chatService services.ChatService, logger zerolog.Logger) *ChatController {
	return &ChatController{
		chatService: chatService,
		logger:      logger,
	}
}

// Ask answers a student's question using their stored application data
func (c *ChatController) Ask(ctx *gin.Context) {
	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid chatbot payload")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "student_id and question are required"})
		return
	}

	answer, err := c.chatService.Answer(ctx.Request.Context(), req.StudentID, req.Question)
	if err != nil {
		c.logger.Error().Err(err).Int64("studentID", req.StudentID).Msg("Chatbot request failed")
		middleware.HandleAPIError(ctx, err, "Failed to process chatbot request")
		return
	}

	ctx.JSON(http.StatusOK, dto.ChatResponse{
		Answer:    answer,
		StudentID: req.StudentID,
	})
}
