// Package gemini structures draft text through the Gemini API.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type Engine struct {
	client *genai.Client
	model  string
}

func New(ctx context.Context, apiKey, model string) (*Engine, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is empty")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Engine{client: client, model: model}, nil
}

// Structure sends the analyst prompt plus the raw draft and returns the
// model's text. Low temperature keeps the labeled format stable.
func (e *Engine) Structure(ctx context.Context, prompt, rawText string) (string, error) {
	m := e.client.GenerativeModel(e.model)
	m.SetTemperature(0.2)
	m.SetTopP(0.9)
	m.SetMaxOutputTokens(512)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(prompt)}}

	resp, err := m.GenerateContent(ctx, genai.Text("Повідомлення:\n"+rawText))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: empty response")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", fmt.Errorf("gemini: no text in response")
	}
	return out, nil
}

func (e *Engine) Close() error { return e.client.Close() }
