package service

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/vthang/Skillforge/internal/model"
)

// QuestionScore is the auto-grade outcome for a single question.
type QuestionScore struct {
	QuestionID    uint
	Earned        float64
	MaxPoints     float64
	IsCorrect     *bool
	TestCaseScore *float64
	// NeedsReview marks questions that cannot be auto-graded (essays).
	NeedsReview bool
}

// ScoreSummary is the auto-grade outcome for a whole attempt.
type ScoreSummary struct {
	Score     float64 // 0-100
	Passed    bool
	Breakdown []QuestionScore
}

// ScoringService computes the automatic score of an attempt from its stored
// answers. It never fails: malformed stored data yields zero credit for the
// affected question, never an error, so one bad question cannot sink a
// submission.
type ScoringService interface {
	ScoreAttempt(assessment *model.Assessment, answers []model.AttemptAnswer) *ScoreSummary
	// GradeObjective grades a single deterministic answer at answer time.
	// Returns nil for essays and for coding (graded by the evaluator).
	GradeObjective(question *model.Question, answer string) *bool
}

type scoringService struct{}

func NewScoringService() ScoringService {
	return &scoringService{}
}

func (s *scoringService) ScoreAttempt(assessment *model.Assessment, answers []model.AttemptAnswer) *ScoreSummary {
	answerByQuestion := make(map[uint]model.AttemptAnswer, len(answers))
	for _, a := range answers {
		answerByQuestion[a.QuestionID] = a
	}

	summary := &ScoreSummary{}
	totalPoints := 0.0
	earnedPoints := 0.0

	for _, q := range assessment.Questions {
		qs := s.scoreQuestion(&q, answerByQuestion)
		totalPoints += qs.MaxPoints
		earnedPoints += qs.Earned
		summary.Breakdown = append(summary.Breakdown, qs)
	}

	if totalPoints > 0 {
		summary.Score = 100 * earnedPoints / totalPoints
	}
	summary.Passed = summary.Score >= float64(assessment.PassingScore)
	return summary
}

func (s *scoringService) scoreQuestion(q *model.Question, answers map[uint]model.AttemptAnswer) QuestionScore {
	qs := QuestionScore{QuestionID: q.ID, MaxPoints: float64(q.Points)}

	answer, answered := answers[q.ID]

	switch q.Type {
	case model.QuestionTypeEssay:
		// Never auto-scored; contributes zero until a human reviews it.
		qs.NeedsReview = true
		return qs

	case model.QuestionTypeCoding:
		if !answered || answer.TestCaseScore == nil {
			incorrect := false
			qs.IsCorrect = &incorrect
			return qs
		}
		fraction := clampFraction(*answer.TestCaseScore)
		qs.TestCaseScore = &fraction
		qs.Earned = float64(q.Points) * fraction
		correct := fraction == 1
		qs.IsCorrect = &correct
		return qs

	default:
		if !answered {
			incorrect := false
			qs.IsCorrect = &incorrect
			return qs
		}
		correct := s.GradeObjective(q, answer.Answer)
		if correct == nil {
			// Unknown question type in storage; zero credit, keep going.
			log.Warn().Uint("questionID", q.ID).Str("type", q.Type).Msg("ScoreAttempt: Cannot auto-grade question type, awarding zero")
			incorrect := false
			qs.IsCorrect = &incorrect
			return qs
		}
		qs.IsCorrect = correct
		if *correct {
			qs.Earned = float64(q.Points)
		}
		return qs
	}
}

func (s *scoringService) GradeObjective(question *model.Question, answer string) *bool {
	switch question.Type {
	case model.QuestionTypeMultipleChoice:
		if question.CorrectAnswerIndex == nil {
			log.Warn().Uint("questionID", question.ID).Msg("GradeObjective: Multiple-choice question without a correct answer index")
			incorrect := false
			return &incorrect
		}
		idx, err := strconv.Atoi(strings.TrimSpace(answer))
		correct := err == nil && idx == *question.CorrectAnswerIndex
		return &correct

	case model.QuestionTypeShortAnswer:
		correct := strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(question.Answer))
		return &correct

	default:
		return nil
	}
}

func clampFraction(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
