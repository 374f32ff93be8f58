package feedback

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCoach_Feedback(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "  Nice use of a concrete example. Try to mention the outcome too.  "},
	)
	c := NewCoach(mock, 5*time.Second)

	fb, err := c.Feedback(context.Background(), "Why do you want this job?", "I enjoy helping customers.")
	if err != nil {
		t.Fatalf("Feedback: %v", err)
	}
	if fb != "Nice use of a concrete example. Try to mention the outcome too." {
		t.Errorf("feedback not trimmed: %q", fb)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.System == "" {
		t.Error("request missing system prompt")
	}
	if !strings.Contains(req.Prompt, "Why do you want this job?") {
		t.Errorf("prompt missing question: %q", req.Prompt)
	}
	if !strings.Contains(req.Prompt, "I enjoy helping customers.") {
		t.Errorf("prompt missing answer: %q", req.Prompt)
	}
	if req.MaxTokens != coachMaxTokens {
		t.Errorf("MaxTokens = %d", req.MaxTokens)
	}
}

func TestCoach_ProviderErrorPropagates(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	c := NewCoach(mock, 5*time.Second)

	_, err := c.Feedback(context.Background(), "q", "a")
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
}

func TestCoach_BlankTextIsError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "   \n "})
	c := NewCoach(mock, 5*time.Second)

	_, err := c.Feedback(context.Background(), "q", "a")
	var empty *ErrEmptyResponse
	if !errors.As(err, &empty) {
		t.Fatalf("err = %v, want ErrEmptyResponse", err)
	}
}

func TestCoach_ZeroTimeoutUsesDefault(t *testing.T) {
	c := NewCoach(NewMockProvider(MockResponse{Text: "ok"}), 0)
	if c.timeout != DefaultConfig().Timeout {
		t.Errorf("timeout = %s", c.timeout)
	}
}
