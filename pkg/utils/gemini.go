package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiMessageDrafter implements MessageDrafterInterface on the free-tier
// Gemini models.
type GeminiMessageDrafter struct {
	client *genai.Client
	model  string
}

func NewGeminiMessageDrafter(apiKey, model string) (MessageDrafterInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiMessageDrafter{client: client, model: model}, nil
}

func (c *GeminiMessageDrafter) DraftMessage(ctx context.Context, req DraftRequest) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.4)
	m.SetTopP(0.5)

	resp, err := m.GenerateContent(ctx, genai.Text(draftPrompt(req)))
	if err != nil {
		return "", fmt.Errorf("gemini draft failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", fmt.Errorf("gemini returned empty draft")
	}
	return out, nil
}

func (c *GeminiMessageDrafter) Close() error {
	return c.client.Close()
}
