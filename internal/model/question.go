package model

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

const (
	QuestionTypeMultipleChoice = "multiple-choice"
	QuestionTypeShortAnswer    = "short-answer"
	QuestionTypeEssay          = "essay"
	QuestionTypeCoding         = "coding"
)

type Question struct {
	ID                uint   `gorm:"primarykey" json:"id"`
	AssessmentID      uint   `json:"assessment_id" gorm:"not null;index"`
	Type              string `json:"type" gorm:"not null"`
	Prompt            string `json:"prompt" gorm:"type:text;not null"`
	Points            int    `json:"points" gorm:"not null"` // must be > 0
	OrderInAssessment int    `json:"order_in_assessment" gorm:"not null"`
	Explanation       string `json:"explanation,omitempty" gorm:"type:text"`

	// multiple-choice
	OptionsJSON        string `json:"-" gorm:"column:options;type:text"`
	CorrectAnswerIndex *int   `json:"correct_answer_index,omitempty"`

	// short-answer
	Answer string `json:"answer,omitempty" gorm:"type:text"`

	// coding
	Language      string `json:"language,omitempty"` // "javascript", "python"
	StarterCode   string `json:"starter_code,omitempty" gorm:"type:text"`
	Solution      string `json:"solution,omitempty" gorm:"type:text"`
	TestCasesJSON string `json:"-" gorm:"column:test_cases;type:text"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// StoredTestCase is one (input, expectedOutput) pair of a coding question. The
// stored JSON array order is the evaluation order and is stable across reruns.
type StoredTestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
}

// Options decodes the stored options of a multiple-choice question.
func (q *Question) Options() ([]string, error) {
	if q.OptionsJSON == "" {
		return nil, nil
	}
	var opts []string
	if err := json.Unmarshal([]byte(q.OptionsJSON), &opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// TestCases decodes the stored test cases of a coding question, preserving order.
func (q *Question) TestCases() ([]StoredTestCase, error) {
	if q.TestCasesJSON == "" {
		return nil, nil
	}
	var cases []StoredTestCase
	if err := json.Unmarshal([]byte(q.TestCasesJSON), &cases); err != nil {
		return nil, err
	}
	return cases, nil
}
