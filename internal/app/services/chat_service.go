package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/praveenraj/scholarhub/internal/app/models"
	"github.com/praveenraj/scholarhub/internal/pkg/apperrors"
	"github.com/praveenraj/scholarhub/internal/pkg/genai"
	"github.com/praveenraj/scholarhub/internal/pkg/helpers"
)

// ChatRepository provides the consistent student snapshot the assistant answers from
type ChatRepository interface {
	StudentSnapshot(ctx context.Context, studentID int64) (*models.StudentSnapshot, error)
}

// ChatService defines the interface for the chat assistant
type ChatService interface {
	Answer(ctx context.Context, studentID int64, question string) (string, error)
}

// chatServiceImpl implements the ChatService interface
type chatServiceImpl struct {
	chatRepo  ChatRepository
	generator genai.TextGenerator // nil when no API key is configured
	timeout   time.Duration
	logger    zerolog.Logger
}

// NewChatService creates a new chat service instance. A nil generator is
// allowed; the service then reports itself unavailable per request.
func NewChatService(chatRepo ChatRepository, generator genai.TextGenerator, timeout time.Duration, logger zerolog.Logger) ChatService {
	return &chatServiceImpl{
		chatRepo:  chatRepo,
		generator: generator,
		timeout:   timeout,
		logger:    logger,
	}
}

// Context shapes serialized into the prompt. The structure matches what
// the frontend's assistant was tuned against, so field names stay snake_case.
type chatUserInfo struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type chatPersonalInfo struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNo     string `json:"phone_no"`
	Address     string `json:"address"`
	Department  string `json:"department"`
	CurrentYear int    `json:"current_year"`
}

type chatAcademicInfo struct {
	CGPA        float64 `json:"cgpa"`
	TenthMark   float64 `json:"tenth_mark"`
	TwelfthMark float64 `json:"twelfth_mark"`
}

type chatApplication struct {
	ApplicationID          int64            `json:"application_id"`
	ScholarshipTitle       string           `json:"scholarship_title"`
	ScholarshipDescription string           `json:"scholarship_description"`
	ScholarshipDeadline    string           `json:"scholarship_deadline"`
	PersonalInfo           chatPersonalInfo `json:"personal_info"`
	AcademicInfo           chatAcademicInfo `json:"academic_info"`
	ApplicationStatus      string           `json:"application_status"`
	AppliedAt              time.Time        `json:"applied_at"`
}

type chatScholarship struct {
	ScholarshipID int64  `json:"scholarship_id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Deadline      string `json:"deadline"`
}

type chatStudentData struct {
	UserInfo              chatUserInfo      `json:"user_info"`
	Applications          []chatApplication `json:"applications"`
	AvailableScholarships []chatScholarship `json:"available_scholarships"`
}

// Answer gathers the student's stored data, embeds it into the assistant
// prompt together with the question, and returns the model's reply verbatim.
func (s *chatServiceImpl) Answer(ctx context.Context, studentID int64, question string) (string, error) {
	if studentID <= 0 || question == "" {
		return "", fmt.Errorf("%w: student_id and question are required", apperrors.ErrValidationFailed)
	}

	if s.generator == nil {
		return "", apperrors.ErrChatUnavailable
	}

	snapshot, err := s.chatRepo.StudentSnapshot(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return "", apperrors.ErrStudentNotFound
		}
		return "", fmt.Errorf("error loading student snapshot: %w", err)
	}

	prompt, err := buildPrompt(snapshot, question)
	if err != nil {
		return "", fmt.Errorf("error building prompt: %w", err)
	}

	// The upstream call gets its own deadline so a hanging model call
	// cannot hold the request open indefinitely.
	genCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	answer, err := s.generator.GenerateText(genCtx, prompt)
	if err != nil {
		s.logger.Error().Err(err).Int64("studentID", studentID).Msg("Chat assistant upstream call failed")
		return "", apperrors.NewCustomError(apperrors.ErrChatUpstream, err.Error())
	}

	return answer, nil
}

// buildPrompt serializes the snapshot into the assistant context prompt
func buildPrompt(snapshot *models.StudentSnapshot, question string) (string, error) {
	data := chatStudentData{
		UserInfo: chatUserInfo{
			UserID:   snapshot.User.ID,
			Username: snapshot.User.Username,
			Role:     string(snapshot.User.Role),
		},
		Applications:          make([]chatApplication, 0, len(snapshot.Applications)),
		AvailableScholarships: make([]chatScholarship, 0, len(snapshot.AvailableScholarships)),
	}

	for _, app := range snapshot.Applications {
		data.Applications = append(data.Applications, chatApplication{
			ApplicationID:          app.ID,
			ScholarshipTitle:       app.ScholarshipTitle,
			ScholarshipDescription: app.ScholarshipDescription,
			ScholarshipDeadline:    helpers.FormatDate(app.ScholarshipDeadline),
			PersonalInfo: chatPersonalInfo{
				FirstName:   app.FirstName,
				LastName:    app.LastName,
				Email:       app.Email,
				PhoneNo:     app.PhoneNo,
				Address:     app.Address,
				Department:  app.Department,
				CurrentYear: app.CurrentYear,
			},
			AcademicInfo: chatAcademicInfo{
				CGPA:        app.CGPA,
				TenthMark:   app.TenthMark,
				TwelfthMark: app.TwelfthMark,
			},
			ApplicationStatus: string(app.Status),
			AppliedAt:         app.AppliedAt,
		})
	}

	for _, sch := range snapshot.AvailableScholarships {
		data.AvailableScholarships = append(data.AvailableScholarships, chatScholarship{
			ScholarshipID: sch.ID,
			Title:         sch.Title,
			Description:   sch.Description,
			Deadline:      helpers.FormatDate(sch.Deadline),
		})
	}

	serialized, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`You are a helpful Student Scholarship Form Assistant. Your role is to help students with questions about their scholarship applications and the scholarship form process.

STUDENT INFORMATION:
%s

INSTRUCTIONS:
- Answer questions based on the student's data provided above
- Help with questions about filling out scholarship forms
- Explain what information is needed for applications
- Provide guidance on application status
- Help interpret scholarship requirements
- Be friendly, helpful, and concise
- If the student asks about information not in their data, politely let them know you don't have that information
- Focus on scholarship-related queries only

Student's Question: %s

Please provide a helpful response:`, serialized, question)

	return prompt, nil
}
