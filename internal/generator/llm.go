package generator

import (
	"context"
	"errors"
)

// ErrMissingAPIKey indicates no LLM credential is configured. This is the one
// upstream failure surfaced to the caller instead of degrading to fallback
// content; it requires configuration, not a retry.
var ErrMissingAPIKey = errors.New("generator: llm api key missing; configure ANTHROPIC_API_KEY or the settings file")

// LLMClient abstracts the completion API so it can be mocked in tests.
type LLMClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
