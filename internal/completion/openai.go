package completion

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Defaults for a local Ollama server exposing the OpenAI-compatible API.
const (
	DefaultOpenAIBaseURL = "http://localhost:11434/v1"
	DefaultOpenAIModel   = "gemma3"
	DefaultOpenAIKey     = "ollama"
)

// OpenAI completes prompts through any OpenAI-compatible chat endpoint.
type OpenAI struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewOpenAI builds a client for baseURL. An empty apiKey falls back to the
// placeholder key Ollama accepts.
func NewOpenAI(baseURL, apiKey, model string, temperature float32) *OpenAI {
	if apiKey == "" {
		apiKey = DefaultOpenAIKey
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = DefaultOpenAIModel
	}

	return &OpenAI{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		temperature: temperature,
	}
}

// Complete sends prompt as a single user message.
func (o *OpenAI) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: o.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
