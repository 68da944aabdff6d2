package completion

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Gemini completes prompts with a Google Gemini model.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGemini connects to the Gemini API with the given key.
func NewGemini(ctx context.Context, apiKey, model string, temperature float32) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create generative client: %w", err)
	}

	m := client.GenerativeModel(model)
	m.SetTemperature(temperature)

	return &Gemini{client: client, model: m}, nil
}

// Complete sends prompt as a single-turn request.
func (g *Gemini) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := getText(resp)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Close releases the underlying client.
func (g *Gemini) Close() error {
	return g.client.Close()
}

// getText concatenates the text parts of the first candidate.
func getText(resp *genai.GenerateContentResponse) string {
	var text string
	if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				text += string(txt)
			}
		}
	}
	return text
}
