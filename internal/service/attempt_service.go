package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/vthang/Skillforge/internal/dto"
	"github.com/vthang/Skillforge/internal/model"
	"github.com/vthang/Skillforge/internal/repository"
	"github.com/vthang/Skillforge/internal/sandbox"
	"gorm.io/gorm"
)

// AttemptService owns the attempt lifecycle: start, answer, submit, inspect.
type AttemptService interface {
	StartAttempt(assessmentID uint, req *dto.StartAttemptRequest) (*dto.AttemptSummaryDTO, error)
	SubmitAnswer(ctx context.Context, attemptID uint, req *dto.SubmitAnswerRequest) (*dto.AnswerFeedbackDTO, error)
	SubmitAttempt(attemptID uint) (*dto.AttemptSummaryDTO, error)
	GetAttemptDetails(attemptID uint) (*dto.AttemptDetailDTO, error)
	GetCandidateAttempts(candidateID, assessmentID uint) ([]dto.AttemptSummaryDTO, error)
}

type attemptService struct {
	attemptRepo    repository.AttemptRepository
	answerRepo     repository.AttemptAnswerRepository
	assessmentRepo repository.AssessmentRepository
	questionRepo   repository.QuestionRepository
	scoring        ScoringService
	evaluator      CodeEvaluator
}

func NewAttemptService(
	attemptRepo repository.AttemptRepository,
	answerRepo repository.AttemptAnswerRepository,
	assessmentRepo repository.AssessmentRepository,
	questionRepo repository.QuestionRepository,
	scoring ScoringService,
	evaluator CodeEvaluator,
) AttemptService {
	return &attemptService{
		attemptRepo:    attemptRepo,
		answerRepo:     answerRepo,
		assessmentRepo: assessmentRepo,
		questionRepo:   questionRepo,
		scoring:        scoring,
		evaluator:      evaluator,
	}
}

func (s *attemptService) StartAttempt(assessmentID uint, req *dto.StartAttemptRequest) (*dto.AttemptSummaryDTO, error) {
	assessment, err := s.assessmentRepo.FindByID(assessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find assessment: %w", err)
	}
	if !assessment.OpenForAttempts() {
		return nil, ErrAssessmentClosed
	}

	count, err := s.attemptRepo.CountByCandidateAndAssessment(req.CandidateID, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to count attempts: %w", err)
	}
	if count >= model.MaxAttemptsPerAssessment {
		return nil, ErrAttemptLimitReached
	}

	inFlight, err := s.attemptRepo.FindInProgress(req.CandidateID, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check in-progress attempts: %w", err)
	}
	if inFlight != nil {
		return nil, ErrAttemptInProgress
	}

	attempt := &model.Attempt{
		CandidateID:   req.CandidateID,
		AssessmentID:  assessmentID,
		AttemptNumber: int(count) + 1,
		Status:        model.AttemptStatusInProgress,
		StartedAt:     time.Now(),
	}
	if err := s.attemptRepo.Create(attempt); err != nil {
		// A concurrent start that won the race trips the in-flight unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAttemptInProgress
		}
		return nil, fmt.Errorf("failed to create attempt: %w", err)
	}

	log.Info().
		Uint("candidateID", req.CandidateID).
		Uint("assessmentID", assessmentID).
		Int("attemptNumber", attempt.AttemptNumber).
		Msg("Attempt started")
	return attemptSummary(attempt), nil
}

func (s *attemptService) SubmitAnswer(ctx context.Context, attemptID uint, req *dto.SubmitAnswerRequest) (*dto.AnswerFeedbackDTO, error) {
	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		return nil, fmt.Errorf("failed to find attempt: %w", err)
	}
	if attempt.Status != model.AttemptStatusInProgress {
		return nil, ErrAttemptNotInProgress
	}

	question, err := s.questionRepo.FindByID(req.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find question: %w", err)
	}
	if question.AssessmentID != attempt.AssessmentID {
		return nil, ErrQuestionNotInAssessment
	}

	answer := &model.AttemptAnswer{
		AttemptID:  attemptID,
		QuestionID: question.ID,
		Answer:     req.Answer,
	}
	feedback := &dto.AnswerFeedbackDTO{QuestionID: question.ID}

	switch question.Type {
	case model.QuestionTypeCoding:
		execution, fraction, err := s.evaluateCodingAnswer(ctx, question, req.Answer)
		if err != nil {
			return nil, err
		}
		answer.TestCaseScore = &fraction
		correct := fraction == 1
		answer.IsCorrect = &correct
		feedback.Execution = execution
	case model.QuestionTypeEssay:
		// Graded by a human later; leave IsCorrect nil.
	default:
		answer.IsCorrect = s.scoring.GradeObjective(question, req.Answer)
	}

	if err := s.answerRepo.Upsert(answer); err != nil {
		return nil, fmt.Errorf("failed to save answer: %w", err)
	}

	feedback.Saved = true
	feedback.IsCorrect = answer.IsCorrect
	feedback.TestCaseScore = answer.TestCaseScore
	return feedback, nil
}

// evaluateCodingAnswer runs the candidate's code against the question's stored
// test cases and returns the wire-shaped outcome plus the passed fraction.
func (s *attemptService) evaluateCodingAnswer(ctx context.Context, question *model.Question, code string) (*dto.ExecutionResultDTO, float64, error) {
	stored, err := question.TestCases()
	if err != nil {
		log.Error().Err(err).Uint("questionID", question.ID).Msg("SubmitAnswer: Malformed stored test cases")
		return nil, 0, fmt.Errorf("failed to decode test cases: %w", err)
	}
	cases := make([]sandbox.TestCase, 0, len(stored))
	for _, tc := range stored {
		cases = append(cases, sandbox.TestCase{Input: tc.Input, ExpectedOutput: tc.ExpectedOutput})
	}

	eval, err := s.evaluator.Evaluate(ctx, question.Language, code, "", cases)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to evaluate submission: %w", err)
	}
	return ExecutionResultFromEvaluation(eval), eval.Score, nil
}

func (s *attemptService) SubmitAttempt(attemptID uint) (*dto.AttemptSummaryDTO, error) {
	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		return nil, fmt.Errorf("failed to find attempt: %w", err)
	}
	if attempt.Status != model.AttemptStatusInProgress {
		return nil, ErrAttemptNotInProgress
	}

	assessment, err := s.assessmentRepo.FindByIDWithQuestions(attempt.AssessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find assessment: %w", err)
	}
	answers, err := s.answerRepo.FindByAttemptID(attemptID)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers: %w", err)
	}

	summary := s.scoring.ScoreAttempt(assessment, answers)

	// Duration comes from the server clock, never from the client.
	now := time.Now()
	elapsed := int(now.Sub(attempt.StartedAt).Seconds())
	if elapsed < 0 {
		elapsed = 0
	}
	attempt.Status = model.AttemptStatusCompleted
	attempt.Score = &summary.Score
	attempt.Passed = &summary.Passed
	attempt.CompletedAt = &now
	attempt.TimeSpent = elapsed
	if err := s.attemptRepo.Update(attempt); err != nil {
		return nil, fmt.Errorf("failed to complete attempt: %w", err)
	}

	log.Info().
		Uint("attemptID", attemptID).
		Float64("score", summary.Score).
		Bool("passed", summary.Passed).
		Msg("Attempt submitted")
	return attemptSummary(attempt), nil
}

func (s *attemptService) GetAttemptDetails(attemptID uint) (*dto.AttemptDetailDTO, error) {
	attempt, err := s.attemptRepo.FindByIDWithAnswers(attemptID)
	if err != nil {
		return nil, fmt.Errorf("failed to find attempt: %w", err)
	}

	detail := &dto.AttemptDetailDTO{
		ID:              attempt.ID,
		AssessmentID:    attempt.AssessmentID,
		AssessmentTitle: attempt.Assessment.Title,
		CandidateID:     attempt.CandidateID,
		AttemptNumber:   attempt.AttemptNumber,
		Status:          attempt.Status,
		Score:           attempt.Score,
		Passed:          attempt.Passed,
		StartedAt:       attempt.StartedAt,
		CompletedAt:     attempt.CompletedAt,
		TimeSpent:       attempt.TimeSpent,
	}
	for _, a := range attempt.Answers {
		detail.Answers = append(detail.Answers, dto.AttemptAnswerResponseDTO{
			ID:            a.ID,
			QuestionID:    a.QuestionID,
			Question:      questionResponse(&a.Question),
			Answer:        a.Answer,
			IsCorrect:     a.IsCorrect,
			TestCaseScore: a.TestCaseScore,
		})
	}
	return detail, nil
}

func (s *attemptService) GetCandidateAttempts(candidateID, assessmentID uint) ([]dto.AttemptSummaryDTO, error) {
	attempts, err := s.attemptRepo.FindAllByCandidateAndAssessment(candidateID, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	summaries := make([]dto.AttemptSummaryDTO, 0, len(attempts))
	for i := range attempts {
		summaries = append(summaries, *attemptSummary(&attempts[i]))
	}
	return summaries, nil
}

func attemptSummary(a *model.Attempt) *dto.AttemptSummaryDTO {
	return &dto.AttemptSummaryDTO{
		ID:            a.ID,
		AssessmentID:  a.AssessmentID,
		CandidateID:   a.CandidateID,
		AttemptNumber: a.AttemptNumber,
		Status:        a.Status,
		Score:         a.Score,
		Passed:        a.Passed,
		StartedAt:     a.StartedAt,
		CompletedAt:   a.CompletedAt,
		TimeSpent:     a.TimeSpent,
	}
}
