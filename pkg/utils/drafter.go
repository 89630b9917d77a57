package utils

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// MessageDrafterInterface generates outbound message text (SMS/email body)
// for a member, given a purpose and tone picked by the operator. The draft
// is always reviewed by a human before any gateway call.
type MessageDrafterInterface interface {
	DraftMessage(ctx context.Context, req DraftRequest) (string, error)
}

type DraftRequest struct {
	MemberName string
	Purpose    string // e.g. "invite to Sunday service", "follow up after absence"
	Tone       string // e.g. "warm", "formal"; empty means warm
	Channel    string // "sms" | "email" | "whatsapp"
}

func draftPrompt(d DraftRequest) string {
	tone := d.Tone
	if tone == "" {
		tone = "warm"
	}
	channel := d.Channel
	if channel == "" {
		channel = "sms"
	}
	return fmt.Sprintf(
		"Write a short %s message in a %s tone from a church ministry to %s. Purpose: %s. "+
			"Keep it under 3 sentences, no emojis, no placeholders, plain text only.",
		channel, tone, d.MemberName, d.Purpose)
}

// NewMessageDrafter picks the provider from config; "openai" or "gemini".
func NewMessageDrafter(provider, apiKey, model string) (MessageDrafterInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		if model == "" {
			model = openai.GPT4oMini
		}
		return &OpenAIMessageDrafter{client: openai.NewClient(apiKey), model: model}, nil
	case "gemini":
		return NewGeminiMessageDrafter(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported drafter provider: %s", provider)
	}
}
