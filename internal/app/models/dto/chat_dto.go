package dto

// ChatRequest represents a student's question to the chat assistant
type ChatRequest struct {
	StudentID int64  `json:"student_id" binding:"required"`
	Question  string `json:"question" binding:"required"`
}

// ChatResponse carries the assistant's answer verbatim
type ChatResponse struct {
	Answer    string `json:"answer"`
	StudentID int64  `json:"student_id"`
}
