package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/praveenraj/scholarhub/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	scholarshipController *controllers.ScholarshipController,
	applicationController *controllers.ApplicationController,
	chatController *controllers.ChatController,
	systemController *controllers.SystemController,
) {
	api := router.Group("/api")

	// --- Public auth routes ---
	api.POST("/register", authController.Register)
	api.POST("/login", authController.Login)

	// --- Teacher routes ---
	teacher := api.Group("/teacher")
	{
		teacher.POST("/createScholarship", scholarshipController.Create)
		teacher.GET("/scholarships/:teacher_id", scholarshipController.ListByTeacher)
		teacher.GET("/applications/:scholarship_id", applicationController.ListForScholarship)
		teacher.PUT("/updateApplicationStatus", applicationController.UpdateStatus)
	}

	// --- Student routes ---
	student := api.Group("/student")
	{
		student.GET("/scholarships", scholarshipController.ListAvailable)
		student.POST("/apply", applicationController.Apply)
		student.GET("/applications/:student_id", applicationController.ListForStudent)
	}

	// --- Assistant and diagnostics ---
	api.POST("/chatbot-student", chatController.Ask)
	api.GET("/test-db", systemController.TestDB)
	api.GET("/health", systemController.Health)
}
