package feedback

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const coachSystem = "You are a supportive interview coach helping a secondary school " +
	"student prepare for a retail job interview. Give encouraging, specific and " +
	"constructive feedback in 3-4 sentences. Point out what the answer does well " +
	"before suggesting one concrete improvement. Keep the tone warm and suitable " +
	"for a teenager."

const coachMaxTokens = 300

// Coach turns an answered interview question into short coaching feedback.
// Each request carries its own deadline so a slow provider cannot stall the
// student mid-session.
type Coach struct {
	provider Provider
	timeout  time.Duration
}

// NewCoach creates a Coach around the given provider.
func NewCoach(provider Provider, timeout time.Duration) *Coach {
	if timeout <= 0 {
		timeout = DefaultConfig().Timeout
	}
	return &Coach{provider: provider, timeout: timeout}
}

// Feedback generates coaching feedback for one answered question.
func (c *Coach) Feedback(ctx context.Context, question, answer string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	prompt := fmt.Sprintf("Interview question: %s\n\nStudent's answer: %s", question, answer)

	resp, err := c.provider.Generate(ctx, Request{
		System:      coachSystem,
		Prompt:      prompt,
		MaxTokens:   coachMaxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", &ErrEmptyResponse{}
	}
	return text, nil
}
