// Package llm generates optional review notes for talks the matcher
// could not pair with a schedule slot. The notes go into the manual
// review output only; they never alter extracted records or match
// results.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/mlazarov/confminer/internal/model"
)

const (
	defaultModel     = "gpt-4o-mini"
	defaultMaxTokens = 1000
	requestTimeout   = 30 * time.Second
)

// Reviewer wraps the chat completion client used for review notes.
type Reviewer struct {
	client *openai.Client
	model  string
}

// NewReviewer creates a reviewer from configuration. Returns an error
// when the API key is missing.
func NewReviewer(cfg model.LLMConfig) (*Reviewer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required for review notes")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	m := cfg.Model
	if m == "" {
		m = defaultModel
	}

	return &Reviewer{
		client: openai.NewClientWithConfig(clientConfig),
		model:  m,
	}, nil
}

// IsAvailable checks that the configured endpoint answers.
func (r *Reviewer) IsAvailable(ctx context.Context) bool {
	_, err := r.client.ListModels(ctx)
	return err == nil
}

// ReviewUnmatched asks the model to suggest likely pairings for talks
// that scored below the acceptance threshold. The returned text is
// free-form advisory prose.
func (r *Reviewer) ReviewUnmatched(ctx context.Context, talks []model.TalkRecord, events []model.ScheduleEvent) (string, error) {
	if len(talks) == 0 {
		return "", nil
	}

	prompt := buildReviewPrompt(talks, events)

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You help reconcile conference talk lists with schedule pages. Suggest pairings only from the slots provided; say so when none fits.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   defaultMaxTokens,
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// buildReviewPrompt lists the unmatched titles and the available slots.
// Both lists are capped to keep the request small.
func buildReviewPrompt(talks []model.TalkRecord, events []model.ScheduleEvent) string {
	var b strings.Builder

	b.WriteString("These extracted talks could not be matched to a schedule slot by title similarity:\n")
	for i, talk := range talks {
		if i >= 20 {
			fmt.Fprintf(&b, "... and %d more\n", len(talks)-20)
			break
		}
		fmt.Fprintf(&b, "- %s\n", talk.Title)
	}

	b.WriteString("\nAvailable schedule slots:\n")
	for i, ev := range events {
		if i >= 40 {
			fmt.Fprintf(&b, "... and %d more\n", len(events)-40)
			break
		}
		fmt.Fprintf(&b, "- %s (%s %s)\n", ev.Title, ev.Date, ev.StartTime)
	}

	b.WriteString("\nFor each talk, name the most plausible slot or state that none fits. Mention probable title differences (renamed, merged, withdrawn). Keep it brief.")
	return b.String()
}
