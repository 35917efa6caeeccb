package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vthang/Skillforge/internal/dto"
	"github.com/vthang/Skillforge/internal/model"
	"github.com/vthang/Skillforge/internal/sandbox"
	"gorm.io/gorm"
)

type attemptFixture struct {
	svc            AttemptService
	attemptRepo    *fakeAttemptRepo
	answerRepo     *fakeAnswerRepo
	assessmentRepo *fakeAssessmentRepo
	questionRepo   *fakeQuestionRepo
	evaluator      *fakeCodeEvaluator
	assessmentID   uint
}

func newAttemptFixture(t *testing.T) *attemptFixture {
	t.Helper()

	assessmentRepo := newFakeAssessmentRepo()
	assessment := &model.Assessment{
		Type:         model.AssessmentTypeTest,
		Status:       model.AssessmentStatusActive,
		PassingScore: 50,
		Questions: []model.Question{
			{Type: model.QuestionTypeMultipleChoice, Points: 10, CorrectAnswerIndex: intPtr(0)},
			{Type: model.QuestionTypeCoding, Points: 10, Language: "python",
				TestCasesJSON: `[{"input":"1","expected_output":"2"},{"input":"3","expected_output":"6"}]`},
		},
	}
	if err := assessmentRepo.Create(assessment); err != nil {
		t.Fatalf("seeding assessment: %v", err)
	}

	attemptRepo := newFakeAttemptRepo()
	answerRepo := newFakeAnswerRepo()
	questionRepo := newFakeQuestionRepo()
	for i := range assessment.Questions {
		questionRepo.questions[assessment.Questions[i].ID] = &assessment.Questions[i]
	}
	evaluator := &fakeCodeEvaluator{eval: &sandbox.Evaluation{
		Results:     []sandbox.CaseResult{{Passed: true}, {Passed: false}},
		PassedCount: 1,
		TotalCount:  2,
		Score:       0.5,
	}}

	return &attemptFixture{
		svc:            NewAttemptService(attemptRepo, answerRepo, assessmentRepo, questionRepo, NewScoringService(), evaluator),
		attemptRepo:    attemptRepo,
		answerRepo:     answerRepo,
		assessmentRepo: assessmentRepo,
		questionRepo:   questionRepo,
		evaluator:      evaluator,
		assessmentID:   assessment.ID,
	}
}

func (f *attemptFixture) mcQuestionID() uint {
	return f.assessmentRepo.assessments[f.assessmentID].Questions[0].ID
}

func (f *attemptFixture) codingQuestionID() uint {
	return f.assessmentRepo.assessments[f.assessmentID].Questions[1].ID
}

func TestStartAttemptNumbersSequentially(t *testing.T) {
	f := newAttemptFixture(t)

	for want := 1; want <= 2; want++ {
		started, err := f.svc.StartAttempt(f.assessmentID, &dto.StartAttemptRequest{CandidateID: 7})
		if err != nil {
			t.Fatalf("StartAttempt #%d: %v", want, err)
		}
		if started.AttemptNumber != want {
			t.Errorf("AttemptNumber = %d, want %d", started.AttemptNumber, want)
		}
		if started.Status != model.AttemptStatusInProgress {
			t.Errorf("Status = %q, want in_progress", started.Status)
		}
		if _, err := f.svc.SubmitAttempt(started.ID); err != nil {
			t.Fatalf("SubmitAttempt: %v", err)
		}
	}
}

func TestStartAttemptEnforcesCeiling(t *testing.T) {
	f := newAttemptFixture(t)

	for i := 0; i < model.MaxAttemptsPerAssessment; i++ {
		started, err := f.svc.StartAttempt(f.assessmentID, &dto.StartAttemptRequest{CandidateID: 7})
		if err != nil {
			t.Fatalf("StartAttempt #%d: %v", i+1, err)
		}
		if _, err := f.svc.SubmitAttempt(started.ID); err != nil {
			t.Fatalf("SubmitAttempt: %v", err)
		}
	}

	_, err := f.svc.StartAttempt(f.assessmentID, &dto.StartAttemptRequest{CandidateID: 7})
	if !errors.Is(err, ErrAttemptLimitReached) {
		t.Fatalf("StartAttempt after limit: err = %v, want ErrAttemptLimitReached", err)
	}

	// A different candidate is unaffected by the first candidate's count.
	if _, err := f.svc.StartAttempt(f.assessmentID, &dto.StartAttemptRequest{CandidateID: 8}); err != nil {
		t.Fatalf("StartAttempt for second candidate: %v", err)
	}
}

func TestStartAttemptRejectsSecondInFlight(t *testing.T) {
	f := newAttemptFixture(t)

	if _, err := f.svc.StartAttempt(f.assessmentID, &dto.StartAttemptRequest{CandidateID: 7}); err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}
	_, err := f.svc.StartAttempt(f.assessmentID, &dto.StartAttemptRequest{CandidateID: 7})
	if !errors.Is(err, ErrAttemptInProgress) {
		t.Fatalf("second StartAttempt: err = %v, want ErrAttemptInProgress", err)
	}
}

func TestStartAttemptMapsDuplicateInFlightToConflict(t *testing.T) {
	f := newAttemptFixture(t)

	// A concurrent start can slip past the service checks and hit the partial
	// unique index on (candidate_id, assessment_id) for in_progress rows.
	f.attemptRepo.createErr = gorm.ErrDuplicatedKey
	_, err := f.svc.StartAttempt(f.assessmentID, &dto.StartAttemptRequest{CandidateID: 7})
	if !errors.Is(err, ErrAttemptInProgress) {
		t.Fatalf("err = %v, want ErrAttemptInProgress", err)
	}
}

func TestStartAttemptRejectsClosedAssessment(t *testing.T) {
	f := newAttemptFixture(t)

	tests := []struct {
		name   string
		mutate func(a *model.Assessment)
	}{
		{"draft status", func(a *model.Assessment) { a.Status = model.AssessmentStatusDraft }},
		{"archived status", func(a *model.Assessment) { a.Status = model.AssessmentStatusArchived }},
		{"past deadline", func(a *model.Assessment) {
			past := time.Now().Add(-time.Hour)
			a.Deadline = &past
		}},
		{"practice type", func(a *model.Assessment) { a.Type = "practice" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assessment := *f.assessmentRepo.assessments[f.assessmentID]
			tc.mutate(&assessment)
			f.assessmentRepo.assessments[f.assessmentID] = &assessment

			_, err := f.svc.StartAttempt(f.assessmentID, &dto.StartAttemptRequest{CandidateID: 9})
			if !errors.Is(err, ErrAssessmentClosed) {
				t.Fatalf("err = %v, want ErrAssessmentClosed", err)
			}
		})
	}
}

func TestSubmitAnswerGradesObjectiveInline(t *testing.T) {
	f := newAttemptFixture(t)
	started, err := f.svc.StartAttempt(f.assessmentID, &dto.StartAttemptRequest{CandidateID: 7})
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}

	feedback, err := f.svc.SubmitAnswer(context.Background(), started.ID,
		&dto.SubmitAnswerRequest{QuestionID: f.mcQuestionID(), Answer: "0"})
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if !feedback.Saved {
		t.Errorf("Saved = false")
	}
	if feedback.IsCorrect == nil || !*feedback.IsCorrect {
		t.Errorf("IsCorrect = %v, want true", feedback.IsCorrect)
	}

	// Resubmitting overwrites instead of duplicating.
	if _, err := f.svc.SubmitAnswer(context.Background(), started.ID,
		&dto.SubmitAnswerRequest{QuestionID: f.mcQuestionID(), Answer: "1"}); err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	stored, err := f.answerRepo.FindByAttemptID(started.ID)
	if err != nil {
		t.Fatalf("FindByAttemptID: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("stored %d answers after resubmit, want 1", len(stored))
	}
	if stored[0].Answer != "1" {
		t.Errorf("stored answer = %q, want the resubmitted value", stored[0].Answer)
	}
	if stored[0].IsCorrect == nil || *stored[0].IsCorrect {
		t.Errorf("IsCorrect = %v after wrong resubmit, want false", stored[0].IsCorrect)
	}
}

func TestSubmitAnswerEvaluatesCoding(t *testing.T) {
	f := newAttemptFixture(t)
	started, err := f.svc.StartAttempt(f.assessmentID, &dto.StartAttemptRequest{CandidateID: 7})
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}

	feedback, err := f.svc.SubmitAnswer(context.Background(), started.ID,
		&dto.SubmitAnswerRequest{QuestionID: f.codingQuestionID(), Answer: "def double(x):\n    return x * 2\n"})
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if f.evaluator.calls != 1 {
		t.Fatalf("evaluator called %d times, want 1", f.evaluator.calls)
	}
	if feedback.TestCaseScore == nil || *feedback.TestCaseScore != 0.5 {
		t.Errorf("TestCaseScore = %v, want 0.5", feedback.TestCaseScore)
	}
	if feedback.IsCorrect == nil || *feedback.IsCorrect {
		t.Errorf("IsCorrect = %v at partial credit, want false", feedback.IsCorrect)
	}
	if feedback.Execution == nil || len(feedback.Execution.Results) != 2 {
		t.Fatalf("Execution results missing from feedback: %+v", feedback.Execution)
	}
}

func TestSubmitAnswerRejectsForeignQuestion(t *testing.T) {
	f := newAttemptFixture(t)
	started, err := f.svc.StartAttempt(f.assessmentID, &dto.StartAttemptRequest{CandidateID: 7})
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}

	other := &model.Assessment{Type: model.AssessmentTypeTest, Status: model.AssessmentStatusActive,
		Questions: []model.Question{{Type: model.QuestionTypeShortAnswer, Points: 5, Answer: "x"}}}
	if err := f.assessmentRepo.Create(other); err != nil {
		t.Fatalf("seeding second assessment: %v", err)
	}
	foreign := &other.Questions[0]
	f.questionRepo.questions[foreign.ID] = foreign

	_, err = f.svc.SubmitAnswer(context.Background(), started.ID,
		&dto.SubmitAnswerRequest{QuestionID: foreign.ID, Answer: "x"})
	if !errors.Is(err, ErrQuestionNotInAssessment) {
		t.Fatalf("err = %v, want ErrQuestionNotInAssessment", err)
	}
}

func TestSubmitAnswerRequiresInProgress(t *testing.T) {
	f := newAttemptFixture(t)
	started, err := f.svc.StartAttempt(f.assessmentID, &dto.StartAttemptRequest{CandidateID: 7})
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}
	if _, err := f.svc.SubmitAttempt(started.ID); err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}

	_, err = f.svc.SubmitAnswer(context.Background(), started.ID,
		&dto.SubmitAnswerRequest{QuestionID: f.mcQuestionID(), Answer: "0"})
	if !errors.Is(err, ErrAttemptNotInProgress) {
		t.Fatalf("err = %v, want ErrAttemptNotInProgress", err)
	}
}

func TestSubmitAttemptScoresAndCompletes(t *testing.T) {
	f := newAttemptFixture(t)
	started, err := f.svc.StartAttempt(f.assessmentID, &dto.StartAttemptRequest{CandidateID: 7})
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}

	if _, err := f.svc.SubmitAnswer(context.Background(), started.ID,
		&dto.SubmitAnswerRequest{QuestionID: f.mcQuestionID(), Answer: "0"}); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if _, err := f.svc.SubmitAnswer(context.Background(), started.ID,
		&dto.SubmitAnswerRequest{QuestionID: f.codingQuestionID(), Answer: "code"}); err != nil {
		t.Fatalf("SubmitAnswer coding: %v", err)
	}

	// Backdate the start so the derived duration is observable.
	f.attemptRepo.attempts[started.ID].StartedAt = time.Now().Add(-2 * time.Minute)

	summary, err := f.svc.SubmitAttempt(started.ID)
	if err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}
	if summary.Status != model.AttemptStatusCompleted {
		t.Errorf("Status = %q, want completed", summary.Status)
	}
	// 10 of 10 on multiple choice plus 5 of 10 on coding.
	if summary.Score == nil || *summary.Score != 75 {
		t.Errorf("Score = %v, want 75", summary.Score)
	}
	if summary.Passed == nil || !*summary.Passed {
		t.Errorf("Passed = %v, want true at passing score 50", summary.Passed)
	}
	if summary.TimeSpent < 120 || summary.TimeSpent > 125 {
		t.Errorf("TimeSpent = %d, want roughly 120 seconds since start", summary.TimeSpent)
	}
	if summary.CompletedAt == nil {
		t.Errorf("CompletedAt not set")
	}

	if _, err := f.svc.SubmitAttempt(started.ID); !errors.Is(err, ErrAttemptNotInProgress) {
		t.Errorf("double submit: err = %v, want ErrAttemptNotInProgress", err)
	}
}

func TestSubmitAttemptDerivesTimeSpentServerSide(t *testing.T) {
	f := newAttemptFixture(t)
	started, err := f.svc.StartAttempt(f.assessmentID, &dto.StartAttemptRequest{CandidateID: 7})
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}

	// An immediate submit is near-zero no matter what any client claims.
	summary, err := f.svc.SubmitAttempt(started.ID)
	if err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}
	if summary.TimeSpent > 2 {
		t.Errorf("TimeSpent = %d for an immediate submit, want ~0", summary.TimeSpent)
	}
	if summary.CompletedAt != nil {
		derived := int(summary.CompletedAt.Sub(summary.StartedAt).Seconds())
		if summary.TimeSpent != derived {
			t.Errorf("TimeSpent = %d, want completedAt-startedAt = %d", summary.TimeSpent, derived)
		}
	}
}

func TestSubmitAttemptClampsSkewedClockToZero(t *testing.T) {
	f := newAttemptFixture(t)
	started, err := f.svc.StartAttempt(f.assessmentID, &dto.StartAttemptRequest{CandidateID: 7})
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}
	f.attemptRepo.attempts[started.ID].StartedAt = time.Now().Add(time.Hour)

	summary, err := f.svc.SubmitAttempt(started.ID)
	if err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}
	if summary.TimeSpent != 0 {
		t.Errorf("TimeSpent = %d with a future StartedAt, want 0", summary.TimeSpent)
	}
}
