package dto

import "time"

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Error   string   `json:"error,omitempty"`
	Message string   `json:"message,omitempty"`
	Details []string `json:"details,omitempty"`
}

// QuestionResponseDTO is the candidate-safe view of a question: no correct
// answer index, no accepted answer, no reference solution, no expected outputs.
type QuestionResponseDTO struct {
	ID                uint     `json:"id"`
	AssessmentID      uint     `json:"assessment_id"`
	Type              string   `json:"type"`
	Prompt            string   `json:"prompt"`
	Points            int      `json:"points"`
	OrderInAssessment int      `json:"order_in_assessment"`
	Options           []string `json:"options,omitempty"`
	Language          string   `json:"language,omitempty"`
	StarterCode       string   `json:"starter_code,omitempty"`
}

type AssessmentResponseDTO struct {
	ID           uint                  `json:"id"`
	RecruiterID  uint                  `json:"recruiter_id"`
	Title        string                `json:"title"`
	Description  string                `json:"description,omitempty"`
	Type         string                `json:"type"`
	Difficulty   string                `json:"difficulty,omitempty"`
	Duration     int                   `json:"duration,omitempty"`
	PassingScore int                   `json:"passing_score"`
	Instructions string                `json:"instructions,omitempty"`
	Status       string                `json:"status"`
	Questions    []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
}

type AssessmentSummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Type          string    `json:"type"`
	Difficulty    string    `json:"difficulty,omitempty"`
	Status        string    `json:"status"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// TestCaseResultDTO is one test case verdict as shown to the candidate.
type TestCaseResultDTO struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
	ActualOutput   string `json:"actual_output"`
	Passed         bool   `json:"passed"`
	TimedOut       bool   `json:"timed_out"`
	Error          string `json:"error,omitempty"`
}

// ExecutionResultDTO mirrors a full evaluator run for the ad hoc execute
// endpoint and for per-answer feedback.
type ExecutionResultDTO struct {
	Output        string              `json:"output,omitempty"`
	OutputError   string              `json:"output_error,omitempty"`
	CompileError  bool                `json:"compile_error"`
	CompileOutput string              `json:"compile_output,omitempty"`
	Results       []TestCaseResultDTO `json:"results,omitempty"`
	TimedOut      bool                `json:"timed_out"`
	AllErrored    bool                `json:"all_errored"`
	Score         float64             `json:"score"`
}

type AttemptAnswerResponseDTO struct {
	ID            uint                `json:"id"`
	QuestionID    uint                `json:"question_id"`
	Question      QuestionResponseDTO `json:"question,omitempty"`
	Answer        string              `json:"answer"`
	IsCorrect     *bool               `json:"is_correct,omitempty"`
	TestCaseScore *float64            `json:"test_case_score,omitempty"`
}

type AttemptDetailDTO struct {
	ID              uint                       `json:"id"`
	AssessmentID    uint                       `json:"assessment_id"`
	AssessmentTitle string                     `json:"assessment_title,omitempty"`
	CandidateID     uint                       `json:"candidate_id"`
	AttemptNumber   int                        `json:"attempt_number"`
	Status          string                     `json:"status"`
	Score           *float64                   `json:"score,omitempty"`
	Passed          *bool                      `json:"passed,omitempty"`
	StartedAt       time.Time                  `json:"started_at"`
	CompletedAt     *time.Time                 `json:"completed_at,omitempty"`
	TimeSpent       int                        `json:"time_spent"`
	Answers         []AttemptAnswerResponseDTO `json:"answers,omitempty"`
}

type AttemptSummaryDTO struct {
	ID            uint       `json:"id"`
	AssessmentID  uint       `json:"assessment_id"`
	CandidateID   uint       `json:"candidate_id"`
	AttemptNumber int        `json:"attempt_number"`
	Status        string     `json:"status"`
	Score         *float64   `json:"score,omitempty"`
	Passed        *bool      `json:"passed,omitempty"`
	StartedAt     time.Time  `json:"started_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	TimeSpent     int        `json:"time_spent"`
}

// AnswerFeedbackDTO is returned from the answer-upsert endpoint; for coding
// questions it carries the inline evaluation outcome.
type AnswerFeedbackDTO struct {
	QuestionID    uint                `json:"question_id"`
	Saved         bool                `json:"saved"`
	IsCorrect     *bool               `json:"is_correct,omitempty"`
	TestCaseScore *float64            `json:"test_case_score,omitempty"`
	Execution     *ExecutionResultDTO `json:"execution,omitempty"`
}
