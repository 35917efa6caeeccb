package service

import (
	"context"
	"errors"

	"github.com/vthang/Skillforge/internal/model"
	"github.com/vthang/Skillforge/internal/sandbox"
)

var errNotFound = errors.New("record not found")

type fakeAssessmentRepo struct {
	assessments map[uint]*model.Assessment
	nextID      uint
}

func newFakeAssessmentRepo() *fakeAssessmentRepo {
	return &fakeAssessmentRepo{assessments: make(map[uint]*model.Assessment), nextID: 1}
}

func (f *fakeAssessmentRepo) Create(a *model.Assessment) error {
	a.ID = f.nextID
	f.nextID++
	for i := range a.Questions {
		a.Questions[i].ID = f.nextID
		a.Questions[i].AssessmentID = a.ID
		f.nextID++
	}
	f.assessments[a.ID] = a
	return nil
}

func (f *fakeAssessmentRepo) FindByID(id uint) (*model.Assessment, error) {
	a, ok := f.assessments[id]
	if !ok {
		return nil, errNotFound
	}
	return a, nil
}

func (f *fakeAssessmentRepo) FindByIDWithQuestions(id uint) (*model.Assessment, error) {
	return f.FindByID(id)
}

func (f *fakeAssessmentRepo) FindAllWithQuestionCount() ([]struct {
	model.Assessment
	QuestionCount int
}, error) {
	var rows []struct {
		model.Assessment
		QuestionCount int
	}
	for _, a := range f.assessments {
		rows = append(rows, struct {
			model.Assessment
			QuestionCount int
		}{Assessment: *a, QuestionCount: len(a.Questions)})
	}
	return rows, nil
}

func (f *fakeAssessmentRepo) Update(a *model.Assessment) error {
	f.assessments[a.ID] = a
	return nil
}

type fakeQuestionRepo struct {
	questions map[uint]*model.Question
}

func newFakeQuestionRepo(questions ...*model.Question) *fakeQuestionRepo {
	f := &fakeQuestionRepo{questions: make(map[uint]*model.Question)}
	for _, q := range questions {
		f.questions[q.ID] = q
	}
	return f
}

func (f *fakeQuestionRepo) Create(q *model.Question) error {
	f.questions[q.ID] = q
	return nil
}

func (f *fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, errNotFound
	}
	return q, nil
}

func (f *fakeQuestionRepo) FindByAssessmentID(assessmentID uint) ([]model.Question, error) {
	var out []model.Question
	for _, q := range f.questions {
		if q.AssessmentID == assessmentID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) Update(q *model.Question) error {
	f.questions[q.ID] = q
	return nil
}

func (f *fakeQuestionRepo) Delete(id uint) error {
	delete(f.questions, id)
	return nil
}

type fakeAttemptRepo struct {
	attempts  map[uint]*model.Attempt
	nextID    uint
	createErr error
}

func newFakeAttemptRepo() *fakeAttemptRepo {
	return &fakeAttemptRepo{attempts: make(map[uint]*model.Attempt), nextID: 1}
}

func (f *fakeAttemptRepo) Create(a *model.Attempt) error {
	if f.createErr != nil {
		return f.createErr
	}
	a.ID = f.nextID
	f.nextID++
	f.attempts[a.ID] = a
	return nil
}

func (f *fakeAttemptRepo) Update(a *model.Attempt) error {
	f.attempts[a.ID] = a
	return nil
}

func (f *fakeAttemptRepo) FindByID(id uint) (*model.Attempt, error) {
	a, ok := f.attempts[id]
	if !ok {
		return nil, errNotFound
	}
	return a, nil
}

func (f *fakeAttemptRepo) FindByIDWithAnswers(id uint) (*model.Attempt, error) {
	return f.FindByID(id)
}

func (f *fakeAttemptRepo) CountByCandidateAndAssessment(candidateID, assessmentID uint) (int64, error) {
	var n int64
	for _, a := range f.attempts {
		if a.CandidateID == candidateID && a.AssessmentID == assessmentID {
			n++
		}
	}
	return n, nil
}

func (f *fakeAttemptRepo) FindInProgress(candidateID, assessmentID uint) (*model.Attempt, error) {
	for _, a := range f.attempts {
		if a.CandidateID == candidateID && a.AssessmentID == assessmentID && a.Status == model.AttemptStatusInProgress {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAttemptRepo) FindAllByAssessment(assessmentID uint) ([]model.Attempt, error) {
	var out []model.Attempt
	for _, a := range f.attempts {
		if a.AssessmentID == assessmentID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAttemptRepo) FindAllByCandidateAndAssessment(candidateID, assessmentID uint) ([]model.Attempt, error) {
	var out []model.Attempt
	for _, a := range f.attempts {
		if a.CandidateID == candidateID && a.AssessmentID == assessmentID {
			out = append(out, *a)
		}
	}
	return out, nil
}

type fakeAnswerRepo struct {
	answers []model.AttemptAnswer
	nextID  uint
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{nextID: 1}
}

func (f *fakeAnswerRepo) Upsert(answer *model.AttemptAnswer) error {
	for i := range f.answers {
		if f.answers[i].AttemptID == answer.AttemptID && f.answers[i].QuestionID == answer.QuestionID {
			answer.ID = f.answers[i].ID
			f.answers[i] = *answer
			return nil
		}
	}
	answer.ID = f.nextID
	f.nextID++
	f.answers = append(f.answers, *answer)
	return nil
}

func (f *fakeAnswerRepo) FindByAttemptAndQuestion(attemptID, questionID uint) (*model.AttemptAnswer, error) {
	for i := range f.answers {
		if f.answers[i].AttemptID == attemptID && f.answers[i].QuestionID == questionID {
			return &f.answers[i], nil
		}
	}
	return nil, errNotFound
}

func (f *fakeAnswerRepo) FindByAttemptID(attemptID uint) ([]model.AttemptAnswer, error) {
	var out []model.AttemptAnswer
	for _, a := range f.answers {
		if a.AttemptID == attemptID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeReviewRepo struct {
	reviews map[uint]*model.Review
	nextID  uint
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[uint]*model.Review), nextID: 1}
}

func (f *fakeReviewRepo) Create(review *model.Review) error {
	review.ID = f.nextID
	f.nextID++
	for i := range review.Answers {
		review.Answers[i].ID = f.nextID
		review.Answers[i].ReviewID = review.ID
		f.nextID++
	}
	f.reviews[review.ID] = review
	return nil
}

func (f *fakeReviewRepo) Update(review *model.Review) error {
	f.reviews[review.ID] = review
	return nil
}

func (f *fakeReviewRepo) FindByAttemptID(attemptID uint) (*model.Review, error) {
	for _, r := range f.reviews {
		if r.AttemptID == attemptID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) FindByIDWithAnswers(id uint) (*model.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, errNotFound
	}
	return r, nil
}

func (f *fakeReviewRepo) FindAnswer(reviewID, questionID uint) (*model.ReviewAnswer, error) {
	r, ok := f.reviews[reviewID]
	if !ok {
		return nil, errNotFound
	}
	for i := range r.Answers {
		if r.Answers[i].QuestionID == questionID {
			answer := r.Answers[i]
			return &answer, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeReviewRepo) UpdateAnswer(answer *model.ReviewAnswer) error {
	r, ok := f.reviews[answer.ReviewID]
	if !ok {
		return errNotFound
	}
	for i := range r.Answers {
		if r.Answers[i].ID == answer.ID {
			r.Answers[i] = *answer
			return nil
		}
	}
	return errNotFound
}

// fakeCodeEvaluator replays a scripted evaluation per language.
type fakeCodeEvaluator struct {
	eval  *sandbox.Evaluation
	err   error
	calls int
	langs []string
}

func (f *fakeCodeEvaluator) Evaluate(_ context.Context, _, _, _ string, _ []sandbox.TestCase) (*sandbox.Evaluation, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.eval, nil
}

func (f *fakeCodeEvaluator) Languages() []string {
	if f.langs != nil {
		return f.langs
	}
	return []string{"python", "javascript"}
}

type fakeNotifier struct {
	calls    int
	userIDs  []uint
	titles   []string
	payloads []map[string]interface{}
	err      error
}

func (f *fakeNotifier) Notify(userID uint, title, _ string, payload map[string]interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.calls++
	f.userIDs = append(f.userIDs, userID)
	f.titles = append(f.titles, title)
	f.payloads = append(f.payloads, payload)
	return nil
}

func (f *fakeNotifier) ListForUser(uint) ([]model.Notification, error) {
	return nil, nil
}

type fakeAdvisor struct {
	suggestion string
	err        error
	calls      int
}

func (f *fakeAdvisor) SuggestFeedback(_ *model.Question, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.suggestion, nil
}
