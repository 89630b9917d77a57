package utils

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIMessageDrafter struct {
	client *openai.Client
	model  string
}

func (c *OpenAIMessageDrafter) DraftMessage(ctx context.Context, req DraftRequest) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.4,
		MaxTokens:   200,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You draft short outbound messages for a church membership team.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: draftPrompt(req),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai draft failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
