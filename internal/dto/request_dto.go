package dto

// TestCaseDTO is one (input, expectedOutput) pair supplied when authoring a
// coding question. List order is the evaluation order.
type TestCaseDTO struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output" binding:"required"`
}

// QuestionForAssessmentRequest is used when creating questions as part of a new assessment.
type QuestionForAssessmentRequest struct {
	Type              string `json:"type" binding:"required,oneof=multiple-choice short-answer essay coding"`
	Prompt            string `json:"prompt" binding:"required"`
	Points            int    `json:"points" binding:"required,min=1"`
	OrderInAssessment int    `json:"order_in_assessment" binding:"required,min=1"`
	Explanation       string `json:"explanation"`

	// For type="multiple-choice"
	Options            []string `json:"options"`
	CorrectAnswerIndex *int     `json:"correct_answer_index"`

	// For type="short-answer"
	Answer string `json:"answer"`

	// For type="coding"
	Language    string        `json:"language"`
	StarterCode string        `json:"starter_code"`
	Solution    string        `json:"solution"`
	TestCases   []TestCaseDTO `json:"test_cases" binding:"omitempty,dive"`
}

type CreateAssessmentRequest struct {
	RecruiterID  uint                           `json:"recruiter_id" binding:"required"`
	Title        string                         `json:"title" binding:"required"`
	Description  string                         `json:"description"`
	Type         string                         `json:"type" binding:"required,oneof=test practice"`
	Difficulty   string                         `json:"difficulty"`
	Duration     int                            `json:"duration"`
	PassingScore int                            `json:"passing_score" binding:"min=0,max=100"`
	Instructions string                         `json:"instructions"`
	Tags         string                         `json:"tags"`
	Status       string                         `json:"status" binding:"omitempty,oneof=draft active archived"`
	Questions    []QuestionForAssessmentRequest `json:"questions" binding:"omitempty,dive"`
}

// StartAttemptRequest opens a new attempt for a candidate.
type StartAttemptRequest struct {
	CandidateID uint `json:"candidate_id" binding:"required"`
}

// SubmitAnswerRequest upserts one answer while an attempt is in progress.
type SubmitAnswerRequest struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

// ExecuteCodeRequest is an ad hoc "run my code" request. With test cases it is
// a graded dry-run; without, a single free-run against the given input.
type ExecuteCodeRequest struct {
	Language  string        `json:"language" binding:"required,oneof=javascript python"`
	Code      string        `json:"code" binding:"required"`
	Input     string        `json:"input"`
	TestCases []TestCaseDTO `json:"test_cases" binding:"omitempty,dive"`
}
