package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/johnquangdev/sales-copilot/pkg/config"
)

// Fixed completion parameters
const (
	GroqModel       = "llama-3.1-8b-instant"
	GroqTemperature = 0.7
	GroqMaxTokens   = 1000
)

// ErrEmptyResponse is returned when the API answers without any choice
var ErrEmptyResponse = errors.New("empty response from groq")

// CallError reports a failed call to the Groq API: transport failure,
// non-2xx answer or an unusable response body.
type CallError struct {
	StatusCode int
	Err        error
}

func (e *CallError) Error() string {
	return e.Err.Error()
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// GroqClient calls Groq's OpenAI-compatible chat completions endpoint
type GroqClient struct {
	client openai.Client
	model  openai.ChatModel
}

// NewGroqClient creates a Groq client from config. Extra request options
// are appended last, so tests can override the HTTP client or base URL.
func NewGroqClient(cfg *config.GroqConfig, opts ...option.RequestOption) *GroqClient {
	base := cfg.BaseURL
	if base == "" {
		base = "https://api.groq.com/openai/v1"
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(base),
		// one blocking call per prompt
		option.WithMaxRetries(0),
	}
	clientOpts = append(clientOpts, opts...)

	return &GroqClient{
		client: openai.NewClient(clientOpts...),
		model:  GroqModel,
	}
}

// Complete sends prompt as a single user message and returns the assistant content
func (g *GroqClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(GroqTemperature),
		MaxTokens:   openai.Int(GroqMaxTokens),
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("groq request aborted: %w", ctxErr)
		}
		callErr := &CallError{Err: err}
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			callErr.StatusCode = apiErr.StatusCode
		}
		return "", callErr
	}

	if len(resp.Choices) == 0 {
		return "", &CallError{Err: ErrEmptyResponse}
	}
	return resp.Choices[0].Message.Content, nil
}
