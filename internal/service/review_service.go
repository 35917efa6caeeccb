package service

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/vthang/Skillforge/internal/dto"
	"github.com/vthang/Skillforge/internal/model"
	"github.com/vthang/Skillforge/internal/repository"
)

// ReviewService drives the recruiter's pass over a completed attempt: open a
// review with an immutable auto-grade snapshot, override per-question scores,
// complete with a recomputed overall score, then release to the candidate.
type ReviewService interface {
	OpenReview(attemptID uint, req *dto.OpenReviewRequest) (*dto.ReviewDetailDTO, error)
	GetReview(reviewID uint) (*dto.ReviewDetailDTO, error)
	EditAnswer(reviewID, questionID uint, req *dto.EditReviewAnswerRequest) (*dto.ReviewAnswerDTO, error)
	CompleteReview(reviewID uint, req *dto.CompleteReviewRequest) (*dto.ReviewDetailDTO, error)
	ReleaseReview(reviewID uint) (*dto.ReviewDetailDTO, error)
}

type reviewService struct {
	reviewRepo     repository.ReviewRepository
	attemptRepo    repository.AttemptRepository
	answerRepo     repository.AttemptAnswerRepository
	assessmentRepo repository.AssessmentRepository
	scoring        ScoringService
	advisor        AdvisorService
	notifier       NotificationService
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	attemptRepo repository.AttemptRepository,
	answerRepo repository.AttemptAnswerRepository,
	assessmentRepo repository.AssessmentRepository,
	scoring ScoringService,
	advisor AdvisorService,
	notifier NotificationService,
) ReviewService {
	return &reviewService{
		reviewRepo:     reviewRepo,
		attemptRepo:    attemptRepo,
		answerRepo:     answerRepo,
		assessmentRepo: assessmentRepo,
		scoring:        scoring,
		advisor:        advisor,
		notifier:       notifier,
	}
}

// OpenReview returns the attempt's review, creating it on first open. The
// created review snapshots the auto-grade of every question; the snapshot never
// changes afterwards, even if the attempt were re-scored.
func (s *reviewService) OpenReview(attemptID uint, req *dto.OpenReviewRequest) (*dto.ReviewDetailDTO, error) {
	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		return nil, fmt.Errorf("failed to find attempt: %w", err)
	}
	if attempt.Status != model.AttemptStatusCompleted {
		return nil, ErrAttemptNotCompleted
	}

	existing, err := s.reviewRepo.FindByAttemptID(attemptID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up review: %w", err)
	}
	if existing != nil {
		return s.reviewDetail(existing)
	}

	assessment, err := s.assessmentRepo.FindByIDWithQuestions(attempt.AssessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find assessment: %w", err)
	}
	answers, err := s.answerRepo.FindByAttemptID(attemptID)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers: %w", err)
	}
	answerByQuestion := make(map[uint]model.AttemptAnswer, len(answers))
	for _, a := range answers {
		answerByQuestion[a.QuestionID] = a
	}

	summary := s.scoring.ScoreAttempt(assessment, answers)

	review := &model.Review{
		AttemptID:  attemptID,
		ReviewerID: req.ReviewerID,
		Status:     model.ReviewStatusPending,
	}
	questionByID := make(map[uint]*model.Question, len(assessment.Questions))
	for i := range assessment.Questions {
		questionByID[assessment.Questions[i].ID] = &assessment.Questions[i]
	}
	for _, qs := range summary.Breakdown {
		ra := model.ReviewAnswer{
			QuestionID:    qs.QuestionID,
			AutoScore:     qs.Earned,
			AutoIsCorrect: qs.IsCorrect,
			MaxPoints:     qs.MaxPoints,
		}
		if qs.NeedsReview {
			if q := questionByID[qs.QuestionID]; q != nil {
				ra.AIFeedback = s.draftFeedback(q, answerByQuestion[qs.QuestionID].Answer)
			}
		}
		review.Answers = append(review.Answers, ra)
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	log.Info().
		Uint("attemptID", attemptID).
		Uint("reviewerID", req.ReviewerID).
		Int("answers", len(review.Answers)).
		Msg("Review opened")

	created, err := s.reviewRepo.FindByIDWithAnswers(review.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload review: %w", err)
	}
	return s.reviewDetail(created)
}

// draftFeedback is best-effort; a failed suggestion never blocks the review.
func (s *reviewService) draftFeedback(question *model.Question, answer string) string {
	if s.advisor == nil {
		return ""
	}
	suggestion, err := s.advisor.SuggestFeedback(question, answer)
	if err != nil {
		log.Warn().Err(err).Uint("questionID", question.ID).Msg("OpenReview: Feedback draft unavailable")
		return ""
	}
	return suggestion
}

func (s *reviewService) GetReview(reviewID uint) (*dto.ReviewDetailDTO, error) {
	review, err := s.reviewRepo.FindByIDWithAnswers(reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to find review: %w", err)
	}
	return s.reviewDetail(review)
}

func (s *reviewService) EditAnswer(reviewID, questionID uint, req *dto.EditReviewAnswerRequest) (*dto.ReviewAnswerDTO, error) {
	review, err := s.reviewRepo.FindByIDWithAnswers(reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to find review: %w", err)
	}
	if review.Status != model.ReviewStatusPending {
		return nil, ErrReviewNotPending
	}

	answer, err := s.reviewRepo.FindAnswer(reviewID, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find review answer: %w", err)
	}

	if req.ManualScore != nil {
		clamped := *req.ManualScore
		if clamped < 0 {
			clamped = 0
		}
		if clamped > answer.MaxPoints {
			clamped = answer.MaxPoints
		}
		answer.ManualScore = &clamped
	}
	if req.IsCorrect != nil {
		answer.IsCorrect = req.IsCorrect
	}
	if req.Feedback != "" {
		answer.Feedback = req.Feedback
	}
	if req.ReviewNotes != "" {
		answer.ReviewNotes = req.ReviewNotes
	}

	if err := s.reviewRepo.UpdateAnswer(answer); err != nil {
		return nil, fmt.Errorf("failed to update review answer: %w", err)
	}

	mapped := reviewAnswerDTO(answer, "")
	return &mapped, nil
}

// CompleteReview locks the review and recomputes the attempt's overall score
// from the per-answer final scores, overwriting the attempt's auto score.
func (s *reviewService) CompleteReview(reviewID uint, req *dto.CompleteReviewRequest) (*dto.ReviewDetailDTO, error) {
	review, err := s.reviewRepo.FindByIDWithAnswers(reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to find review: %w", err)
	}
	if review.Status != model.ReviewStatusPending {
		return nil, ErrReviewNotPending
	}

	earned := 0.0
	total := 0.0
	for i := range review.Answers {
		earned += review.Answers[i].FinalScore().Value
		total += review.Answers[i].MaxPoints
	}
	overall := 0.0
	if total > 0 {
		overall = 100 * earned / total
	}

	now := time.Now()
	review.Status = model.ReviewStatusCompleted
	review.OverallScore = &overall
	review.OverallFeedback = req.OverallFeedback
	review.ReviewedAt = &now
	if err := s.reviewRepo.Update(review); err != nil {
		return nil, fmt.Errorf("failed to complete review: %w", err)
	}

	attempt, err := s.attemptRepo.FindByID(review.AttemptID)
	if err != nil {
		return nil, fmt.Errorf("failed to find attempt: %w", err)
	}
	assessment, err := s.assessmentRepo.FindByID(attempt.AssessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find assessment: %w", err)
	}
	passed := overall >= float64(assessment.PassingScore)
	attempt.Score = &overall
	attempt.Passed = &passed
	if err := s.attemptRepo.Update(attempt); err != nil {
		return nil, fmt.Errorf("failed to update attempt score: %w", err)
	}

	log.Info().
		Uint("reviewID", reviewID).
		Float64("overallScore", overall).
		Bool("passed", passed).
		Msg("Review completed")
	return s.reviewDetail(review)
}

// ReleaseReview is idempotent; every call re-notifies the candidate so a lost
// notification can be resent.
func (s *reviewService) ReleaseReview(reviewID uint) (*dto.ReviewDetailDTO, error) {
	review, err := s.reviewRepo.FindByIDWithAnswers(reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to find review: %w", err)
	}
	if review.Status != model.ReviewStatusCompleted {
		return nil, ErrReviewNotCompleted
	}

	attempt, err := s.attemptRepo.FindByID(review.AttemptID)
	if err != nil {
		return nil, fmt.Errorf("failed to find attempt: %w", err)
	}

	payload := map[string]interface{}{
		"attempt_id": attempt.ID,
		"review_id":  review.ID,
	}
	if review.OverallScore != nil {
		payload["score"] = *review.OverallScore
	}
	if err := s.notifier.Notify(attempt.CandidateID, "Your assessment has been reviewed",
		"Your assessment results are ready.", payload); err != nil {
		return nil, fmt.Errorf("failed to notify candidate: %w", err)
	}

	return s.reviewDetail(review)
}

func (s *reviewService) reviewDetail(review *model.Review) (*dto.ReviewDetailDTO, error) {
	answers, err := s.answerRepo.FindByAttemptID(review.AttemptID)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate answers: %w", err)
	}
	textByQuestion := make(map[uint]string, len(answers))
	for _, a := range answers {
		textByQuestion[a.QuestionID] = a.Answer
	}

	detail := &dto.ReviewDetailDTO{
		ID:              review.ID,
		AttemptID:       review.AttemptID,
		ReviewerID:      review.ReviewerID,
		Status:          review.Status,
		OverallScore:    review.OverallScore,
		OverallFeedback: review.OverallFeedback,
		ReviewedAt:      review.ReviewedAt,
		CreatedAt:       review.CreatedAt,
	}
	for i := range review.Answers {
		detail.Answers = append(detail.Answers,
			reviewAnswerDTO(&review.Answers[i], textByQuestion[review.Answers[i].QuestionID]))
	}
	return detail, nil
}

func reviewAnswerDTO(ra *model.ReviewAnswer, candidateText string) dto.ReviewAnswerDTO {
	final := ra.FinalScore()
	return dto.ReviewAnswerDTO{
		ID:            ra.ID,
		QuestionID:    ra.QuestionID,
		QuestionType:  ra.Question.Type,
		Prompt:        ra.Question.Prompt,
		CandidateText: candidateText,
		AutoScore:     ra.AutoScore,
		AutoIsCorrect: ra.AutoIsCorrect,
		MaxPoints:     ra.MaxPoints,
		ManualScore:   ra.ManualScore,
		IsCorrect:     ra.IsCorrect,
		Feedback:      ra.Feedback,
		ReviewNotes:   ra.ReviewNotes,
		AIFeedback:    ra.AIFeedback,
		FinalScore:    final.Value,
		ManualApplied: final.Manual,
	}
}
