package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/praveenraj/scholarhub/internal/app/models"
	"github.com/praveenraj/scholarhub/internal/app/models/dto"
	"github.com/praveenraj/scholarhub/internal/pkg/apperrors"
)

// MockAuthService is a mock implementation of services.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockScholarshipService is a mock implementation of services.ScholarshipService.
type MockScholarshipService struct {
	mock.Mock
}

func (m *MockScholarshipService) Create(ctx context.Context, req *dto.CreateScholarshipRequest) (*models.Scholarship, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Scholarship), args.Error(1)
}

func (m *MockScholarshipService) ListByTeacher(ctx context.Context, teacherID int64) ([]*models.Scholarship, error) {
	args := m.Called(ctx, teacherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Scholarship), args.Error(1)
}

func (m *MockScholarshipService) ListAvailable(ctx context.Context) ([]*models.Scholarship, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Scholarship), args.Error(1)
}

// MockApplicationService is a mock implementation of services.ApplicationService.
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationService) ListForScholarship(ctx context.Context, scholarshipID int64) ([]*models.ApplicationWithApplicant, error) {
	args := m.Called(ctx, scholarshipID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ApplicationWithApplicant), args.Error(1)
}

func (m *MockApplicationService) ListForStudent(ctx context.Context, studentID int64) ([]*models.StudentApplicationSummary, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.StudentApplicationSummary), args.Error(1)
}

func (m *MockApplicationService) UpdateStatus(ctx context.Context, applicationID int64, status string) error {
	args := m.Called(ctx, applicationID, status)
	return args.Error(0)
}

// MockChatService is a mock implementation of services.ChatService.
type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) Answer(ctx context.Context, studentID int64, question string) (string, error) {
	args := m.Called(ctx, studentID, question)
	return args.String(0), args.Error(1)
}

func performRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthController_Register(t *testing.T) {
	tests := []struct {
		name         string
		body         any
		setupMock    func(*MockAuthService)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "successful registration",
			body: gin.H{"username": "alice", "password": "secret123", "role": "student"},
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, mock.AnythingOfType("*dto.RegisterRequest")).
					Return(&models.User{ID: 1, Username: "alice", Role: models.RoleStudent}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"message": "User registered successfully"},
		},
		{
			name: "duplicate username",
			body: gin.H{"username": "alice", "password": "secret123", "role": "student"},
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, mock.AnythingOfType("*dto.RegisterRequest")).
					Return(nil, apperrors.ErrUsernameTaken)
			},
			expectedCode: http.StatusConflict,
			expectedBody: map[string]any{"error": "Username already taken"},
		},
		{
			name:         "missing fields",
			body:         gin.H{"username": "alice"},
			setupMock:    func(m *MockAuthService) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAuthService)
			tt.setupMock(mockService)

			router := gin.New()
			controller := NewAuthController(mockService, zerolog.Nop())
			router.POST("/api/register", controller.Register)

			rec := performRequest(router, http.MethodPost, "/api/register", tt.body)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody != nil {
				assert.Equal(t, tt.expectedBody, decodeBody(t, rec))
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestAuthController_Login(t *testing.T) {
	tests := []struct {
		name         string
		body         any
		setupMock    func(*MockAuthService)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "successful login",
			body: gin.H{"username": "alice", "password": "secret123"},
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, mock.AnythingOfType("*dto.LoginRequest")).
					Return(&models.User{ID: 7, Username: "alice", Role: models.RoleStudent}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"message": "Login successful", "user_id": float64(7), "role": "student"},
		},
		{
			name: "invalid credentials",
			body: gin.H{"username": "alice", "password": "wrong"},
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, mock.AnythingOfType("*dto.LoginRequest")).
					Return(nil, apperrors.ErrInvalidCredentials)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"message": "Invalid credentials"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAuthService)
			tt.setupMock(mockService)

			router := gin.New()
			controller := NewAuthController(mockService, zerolog.Nop())
			router.POST("/api/login", controller.Login)

			rec := performRequest(router, http.MethodPost, "/api/login", tt.body)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody != nil {
				assert.Equal(t, tt.expectedBody, decodeBody(t, rec))
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestScholarshipController_Create(t *testing.T) {
	mockService := new(MockScholarshipService)
	mockService.On("Create", mock.Anything, mock.AnythingOfType("*dto.CreateScholarshipRequest")).
		Return(&models.Scholarship{ID: 11, TeacherID: 3, Title: "Merit Scholarship"}, nil)

	router := gin.New()
	controller := NewScholarshipController(mockService, zerolog.Nop())
	router.POST("/api/teacher/createScholarship", controller.Create)

	rec := performRequest(router, http.MethodPost, "/api/teacher/createScholarship", gin.H{
		"teacher_id":  3,
		"title":       "Merit Scholarship",
		"description": "For top performers",
		"deadline":    "2026-12-31",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"message": "Scholarship created successfully"}, decodeBody(t, rec))
	mockService.AssertExpectations(t)
}

func TestScholarshipController_ListAvailable(t *testing.T) {
	mockService := new(MockScholarshipService)
	mockService.On("ListAvailable", mock.Anything).Return([]*models.Scholarship{
		{
			ID:          5,
			TeacherID:   3,
			Title:       "Open Scholarship",
			Description: "Still accepting applications",
			Deadline:    time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}, nil)

	router := gin.New()
	controller := NewScholarshipController(mockService, zerolog.Nop())
	router.GET("/api/student/scholarships", controller.ListAvailable)

	rec := performRequest(router, http.MethodGet, "/api/student/scholarships", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var scholarships []map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &scholarships))
	assert.Len(t, scholarships, 1)
	assert.Equal(t, "Open Scholarship", scholarships[0]["title"])
	assert.Equal(t, "2026-12-31", scholarships[0]["deadline"])
	mockService.AssertExpectations(t)
}

func TestScholarshipController_ListByTeacher_BadParam(t *testing.T) {
	router := gin.New()
	controller := NewScholarshipController(new(MockScholarshipService), zerolog.Nop())
	router.GET("/api/teacher/scholarships/:teacher_id", controller.ListByTeacher)

	rec := performRequest(router, http.MethodGet, "/api/teacher/scholarships/abc", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApplicationController_Apply_Duplicate(t *testing.T) {
	mockService := new(MockApplicationService)
	mockService.On("Apply", mock.Anything, mock.AnythingOfType("*dto.ApplyRequest")).
		Return(nil, apperrors.ErrAlreadyApplied)

	router := gin.New()
	controller := NewApplicationController(mockService, zerolog.Nop())
	router.POST("/api/student/apply", controller.Apply)

	rec := performRequest(router, http.MethodPost, "/api/student/apply", gin.H{
		"scholarship_id": 5,
		"student_id":     9,
		"first_name":     "Ravi",
		"last_name":      "Kumar",
		"cgpa":           8.4,
		"tenth_mark":     92.5,
		"twelfth_mark":   88.0,
		"address":        "12 College Road",
		"phone_no":       "9876543210",
		"email":          "ravi@example.com",
		"department":     "CSE",
		"current_year":   3,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"message": "Already applied"}, decodeBody(t, rec))
	mockService.AssertExpectations(t)
}

func TestApplicationController_UpdateStatus(t *testing.T) {
	tests := []struct {
		name         string
		body         any
		setupMock    func(*MockApplicationService)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "approve",
			body: gin.H{"application_id": 42, "status": "approved"},
			setupMock: func(m *MockApplicationService) {
				m.On("UpdateStatus", mock.Anything, int64(42), "approved").Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"message": "Status updated successfully"},
		},
		{
			name: "invalid status",
			body: gin.H{"application_id": 42, "status": "maybe"},
			setupMock: func(m *MockApplicationService) {
				m.On("UpdateStatus", mock.Anything, int64(42), "maybe").Return(apperrors.ErrInvalidStatus)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "unknown application",
			body: gin.H{"application_id": 999, "status": "approved"},
			setupMock: func(m *MockApplicationService) {
				m.On("UpdateStatus", mock.Anything, int64(999), "approved").Return(apperrors.ErrApplicationNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: map[string]any{"error": "Application not found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockApplicationService)
			tt.setupMock(mockService)

			router := gin.New()
			controller := NewApplicationController(mockService, zerolog.Nop())
			router.PUT("/api/teacher/updateApplicationStatus", controller.UpdateStatus)

			rec := performRequest(router, http.MethodPut, "/api/teacher/updateApplicationStatus", tt.body)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody != nil {
				assert.Equal(t, tt.expectedBody, decodeBody(t, rec))
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestApplicationController_ListForStudent(t *testing.T) {
	mockService := new(MockApplicationService)
	mockService.On("ListForStudent", mock.Anything, int64(9)).Return([]*models.StudentApplicationSummary{
		{ApplicationID: 42, Title: "Merit Scholarship", Status: models.StatusPending},
	}, nil)

	router := gin.New()
	controller := NewApplicationController(mockService, zerolog.Nop())
	router.GET("/api/student/applications/:student_id", controller.ListForStudent)

	rec := performRequest(router, http.MethodGet, "/api/student/applications/9", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var summaries []map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	assert.Len(t, summaries, 1)
	assert.Equal(t, "Merit Scholarship", summaries[0]["title"])
	assert.Equal(t, "pending", summaries[0]["status"])
	mockService.AssertExpectations(t)
}

func TestChatController_Ask(t *testing.T) {
	tests := []struct {
		name         string
		body         any
		setupMock    func(*MockChatService)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "successful answer",
			body: gin.H{"student_id": 9, "question": "What is my status?"},
			setupMock: func(m *MockChatService) {
				m.On("Answer", mock.Anything, int64(9), "What is my status?").
					Return("Your application is pending.", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"answer": "Your application is pending.", "student_id": float64(9)},
		},
		{
			name: "assistant not configured",
			body: gin.H{"student_id": 9, "question": "What is my status?"},
			setupMock: func(m *MockChatService) {
				m.On("Answer", mock.Anything, int64(9), "What is my status?").
					Return("", apperrors.ErrChatUnavailable)
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name: "unknown student",
			body: gin.H{"student_id": 404, "question": "What is my status?"},
			setupMock: func(m *MockChatService) {
				m.On("Answer", mock.Anything, int64(404), "What is my status?").
					Return("", apperrors.ErrStudentNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: map[string]any{"error": "Student not found"},
		},
		{
			name:         "missing question",
			body:         gin.H{"student_id": 9},
			setupMock:    func(m *MockChatService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "student_id and question are required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockChatService)
			tt.setupMock(mockService)

			router := gin.New()
			controller := NewChatController(mockService, zerolog.Nop())
			router.POST("/api/chatbot-student", controller.Ask)

			rec := performRequest(router, http.MethodPost, "/api/chatbot-student", tt.body)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody != nil {
				assert.Equal(t, tt.expectedBody, decodeBody(t, rec))
			}
			mockService.AssertExpectations(t)
		})
	}
}
