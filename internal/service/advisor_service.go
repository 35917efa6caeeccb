package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"github.com/vthang/Skillforge/config"
	"github.com/vthang/Skillforge/internal/model"
	"google.golang.org/api/option"
)

// AdvisorService drafts feedback suggestions for answers that require human
// review. Suggestions are advisory only and never contribute to any score.
type AdvisorService interface {
	SuggestFeedback(question *model.Question, answer string) (string, error)
}

type advisorService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewAdvisorService(cfg *config.Config) (AdvisorService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. AdvisorService will be non-functional.")
		return &advisorService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &advisorService{client: client.GenerativeModel("gemini-1.5-flash"), cfg: cfg}, nil
}

func (s *advisorService) SuggestFeedback(question *model.Question, answer string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("gemini client not initialized")
	}
	if strings.TrimSpace(answer) == "" {
		return "", fmt.Errorf("empty answer, nothing to review")
	}

	prompt := fmt.Sprintf(
		"You are assisting a technical recruiter reviewing a candidate's written answer.\n"+
			"Question (worth %d points):\n%s\n\n"+
			"Candidate's answer:\n%s\n\n"+
			"Write 2-4 sentences of constructive feedback the recruiter could adapt. "+
			"Do NOT assign a score or a grade; the recruiter decides the score.",
		question.Points, question.Prompt, answer,
	)

	ctx := context.Background()
	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Uint("questionID", question.ID).Msg("SuggestFeedback: Gemini request failed")
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no content")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return strings.TrimSpace(b.String()), nil
}
