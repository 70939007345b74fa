// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/praveenraj/scholarhub/internal/app/models/dto"
	"github.com/praveenraj/scholarhub/internal/app/services"
	"github.com/praveenraj/scholarhub/internal/middleware"
)

// AuthController handles registration and login
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Register handles user registration
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "username, password and role are required"})
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("username", req.Username).Msg("Registration failed")
		middleware.HandleAPIError(ctx, err, "Registration failed")
		return
	}

	c.logger.Info().
		Int64("userID", user.ID).
		Str("username", user.Username).
		Str("role", string(user.Role)).
		Msg("User registered")

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "User registered successfully"})
}

// Login handles user login
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "username and password are required"})
		return
	}

	user, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("username", req.Username).Msg("Login failed")
		middleware.HandleAPIError(ctx, err, "Login failed")
		return
	}

	c.logger.Info().
		Int64("userID", user.ID).
		Str("username", user.Username).
		Msg("User logged in")

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		UserID:  user.ID,
		Role:    string(user.Role),
	})
}
