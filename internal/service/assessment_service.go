package service

import (
	"encoding/json"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/vthang/Skillforge/internal/dto"
	"github.com/vthang/Skillforge/internal/model"
	"github.com/vthang/Skillforge/internal/repository"
)

// AssessmentService owns assessment authoring and the candidate-facing views.
type AssessmentService interface {
	CreateAssessment(req *dto.CreateAssessmentRequest) (*dto.AssessmentResponseDTO, error)
	GetAssessment(id uint) (*dto.AssessmentResponseDTO, error)
	ListAssessments() ([]dto.AssessmentSummaryDTO, error)
	ListAttempts(assessmentID uint) ([]dto.AttemptSummaryDTO, error)
}

type assessmentService struct {
	assessmentRepo repository.AssessmentRepository
	attemptRepo    repository.AttemptRepository
	evaluator      CodeEvaluator
}

func NewAssessmentService(
	assessmentRepo repository.AssessmentRepository,
	attemptRepo repository.AttemptRepository,
	evaluator CodeEvaluator,
) AssessmentService {
	return &assessmentService{
		assessmentRepo: assessmentRepo,
		attemptRepo:    attemptRepo,
		evaluator:      evaluator,
	}
}

func (s *assessmentService) CreateAssessment(req *dto.CreateAssessmentRequest) (*dto.AssessmentResponseDTO, error) {
	assessment := &model.Assessment{
		RecruiterID:  req.RecruiterID,
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		Difficulty:   req.Difficulty,
		Duration:     req.Duration,
		PassingScore: req.PassingScore,
		Instructions: req.Instructions,
		Tags:         req.Tags,
		Status:       req.Status,
	}
	if assessment.Status == "" {
		assessment.Status = model.AssessmentStatusDraft
	}

	for i := range req.Questions {
		question, err := s.buildQuestion(&req.Questions[i])
		if err != nil {
			return nil, err
		}
		assessment.Questions = append(assessment.Questions, *question)
	}

	if err := s.assessmentRepo.Create(assessment); err != nil {
		return nil, fmt.Errorf("failed to create assessment: %w", err)
	}

	log.Info().
		Uint("assessmentID", assessment.ID).
		Int("questions", len(assessment.Questions)).
		Msg("Assessment created")
	return assessmentResponse(assessment), nil
}

// buildQuestion validates the per-type payload and encodes the stored JSON columns.
func (s *assessmentService) buildQuestion(req *dto.QuestionForAssessmentRequest) (*model.Question, error) {
	question := &model.Question{
		Type:              req.Type,
		Prompt:            req.Prompt,
		Points:            req.Points,
		OrderInAssessment: req.OrderInAssessment,
		Explanation:       req.Explanation,
	}

	switch req.Type {
	case model.QuestionTypeMultipleChoice:
		if len(req.Options) < 2 {
			return nil, fmt.Errorf("multiple-choice question %q needs at least two options", req.Prompt)
		}
		if req.CorrectAnswerIndex == nil || *req.CorrectAnswerIndex < 0 || *req.CorrectAnswerIndex >= len(req.Options) {
			return nil, fmt.Errorf("multiple-choice question %q has an out-of-range correct answer index", req.Prompt)
		}
		buf, err := json.Marshal(req.Options)
		if err != nil {
			return nil, fmt.Errorf("failed to encode options: %w", err)
		}
		question.OptionsJSON = string(buf)
		question.CorrectAnswerIndex = req.CorrectAnswerIndex

	case model.QuestionTypeShortAnswer:
		if req.Answer == "" {
			return nil, fmt.Errorf("short-answer question %q needs an accepted answer", req.Prompt)
		}
		question.Answer = req.Answer

	case model.QuestionTypeEssay:
		// Prompt and points are all an essay needs.

	case model.QuestionTypeCoding:
		if !s.supportsLanguage(req.Language) {
			return nil, fmt.Errorf("coding question %q uses unsupported language %q", req.Prompt, req.Language)
		}
		if len(req.TestCases) == 0 {
			return nil, fmt.Errorf("coding question %q needs at least one test case", req.Prompt)
		}
		question.Language = req.Language
		question.StarterCode = req.StarterCode
		question.Solution = req.Solution
		stored := make([]model.StoredTestCase, 0, len(req.TestCases))
		for _, tc := range req.TestCases {
			stored = append(stored, model.StoredTestCase{Input: tc.Input, ExpectedOutput: tc.ExpectedOutput})
		}
		buf, err := json.Marshal(stored)
		if err != nil {
			return nil, fmt.Errorf("failed to encode test cases: %w", err)
		}
		question.TestCasesJSON = string(buf)
	}

	return question, nil
}

func (s *assessmentService) supportsLanguage(language string) bool {
	for _, l := range s.evaluator.Languages() {
		if l == language {
			return true
		}
	}
	return false
}

func (s *assessmentService) GetAssessment(id uint) (*dto.AssessmentResponseDTO, error) {
	assessment, err := s.assessmentRepo.FindByIDWithQuestions(id)
	if err != nil {
		return nil, fmt.Errorf("failed to find assessment: %w", err)
	}
	return assessmentResponse(assessment), nil
}

func (s *assessmentService) ListAssessments() ([]dto.AssessmentSummaryDTO, error) {
	rows, err := s.assessmentRepo.FindAllWithQuestionCount()
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	summaries := make([]dto.AssessmentSummaryDTO, 0, len(rows))
	for _, row := range rows {
		var summary dto.AssessmentSummaryDTO
		if err := copier.Copy(&summary, &row.Assessment); err != nil {
			return nil, fmt.Errorf("failed to map assessment: %w", err)
		}
		summary.QuestionCount = row.QuestionCount
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *assessmentService) ListAttempts(assessmentID uint) ([]dto.AttemptSummaryDTO, error) {
	if _, err := s.assessmentRepo.FindByID(assessmentID); err != nil {
		return nil, fmt.Errorf("failed to find assessment: %w", err)
	}
	attempts, err := s.attemptRepo.FindAllByAssessment(assessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	summaries := make([]dto.AttemptSummaryDTO, 0, len(attempts))
	for i := range attempts {
		summaries = append(summaries, *attemptSummary(&attempts[i]))
	}
	return summaries, nil
}

func assessmentResponse(a *model.Assessment) *dto.AssessmentResponseDTO {
	resp := &dto.AssessmentResponseDTO{
		ID:           a.ID,
		RecruiterID:  a.RecruiterID,
		Title:        a.Title,
		Description:  a.Description,
		Type:         a.Type,
		Difficulty:   a.Difficulty,
		Duration:     a.Duration,
		PassingScore: a.PassingScore,
		Instructions: a.Instructions,
		Status:       a.Status,
		CreatedAt:    a.CreatedAt,
	}
	for i := range a.Questions {
		resp.Questions = append(resp.Questions, questionResponse(&a.Questions[i]))
	}
	return resp
}

// questionResponse strips everything a candidate must not see: the correct
// answer index, the accepted answer, the reference solution, the test cases.
func questionResponse(q *model.Question) dto.QuestionResponseDTO {
	resp := dto.QuestionResponseDTO{
		ID:                q.ID,
		AssessmentID:      q.AssessmentID,
		Type:              q.Type,
		Prompt:            q.Prompt,
		Points:            q.Points,
		OrderInAssessment: q.OrderInAssessment,
		Language:          q.Language,
		StarterCode:       q.StarterCode,
	}
	if opts, err := q.Options(); err == nil {
		resp.Options = opts
	} else {
		log.Warn().Err(err).Uint("questionID", q.ID).Msg("Malformed stored options")
	}
	return resp
}
