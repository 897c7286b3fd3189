package generator

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"socialagent/internal/config"
)

// OpenAIClient implements LLMClient against an OpenAI-compatible chat
// completions endpoint.
type OpenAIClient struct {
	model       string
	maxTokens   int
	temperature float64
	opts        []option.RequestOption
}

// NewOpenAIClient builds a client from config. Returns ErrMissingAPIKey when
// no credential is available.
func NewOpenAIClient(cfg *config.Config) (*OpenAIClient, error) {
	if !cfg.APIKeySet() {
		return nil, ErrMissingAPIKey
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.APIBaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.APIBaseURL))
	}
	return &OpenAIClient{
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		opts:        opts,
	}, nil
}

// Complete sends the prompt as a single user message and returns the reply
// text.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	client := openai.NewClient(c.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(c.model),
		MaxCompletionTokens: openai.Int(int64(c.maxTokens)),
		Temperature:         openai.Float(c.temperature),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("llm: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
