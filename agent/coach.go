package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Coach is a chat with a diet-and-training coach grounded in the user's own
// logged history.
type Coach struct {
	Config *genai.GenerateContentConfig
	chat   *genai.Chat
}

// NewCoach creates the coach. history is the user's recent figures rendered
// as markdown (weekly summary, maintenance estimate); it becomes part of the
// system instruction so every answer is grounded in the user's actual data.
func NewCoach(history string) *Coach {
	instruction := `
	You are a measured, practical diet and strength-training coach.
	The user's own logged history follows; ground every answer in those
	figures and say so when a question cannot be answered from them.
	You are not a doctor: anything medical gets a referral, not a guess.
	Prefer small sustainable adjustments over drastic interventions.

	User's history:
	` + history

	return &Coach{
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		},
	}
}

// Start opens the chat session.
func (c *Coach) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, model, c.Config, nil)
	if err != nil {
		return err
	}
	c.chat = chat
	return nil
}

// Ask is a simple wrapper on top of Chat.Send returning the answer text.
func (c *Coach) Ask(ctx context.Context, question string) (string, error) {
	resp, err := c.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the coach")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
