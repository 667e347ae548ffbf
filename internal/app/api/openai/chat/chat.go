package chat

import (
	"context"

	"github.com/sashabaranov/go-openai"

	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/analysis"
	apperrors "github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/errors"
)

// MeetingAnalyzer produces meeting analyses with OpenAI chat completions.
type MeetingAnalyzer struct {
	client *openai.Client
	model  string
}

// NewMeetingAnalyzer creates an analyzer using the given chat model
func NewMeetingAnalyzer(client *openai.Client, model string) *MeetingAnalyzer {
	return &MeetingAnalyzer{client: client, model: model}
}

// Summarize sends the fixed two-message prompt and returns the first
// completion's content.
func (a *MeetingAnalyzer) Summarize(ctx context.Context, transcript string) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, a.request(transcript))
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", apperrors.ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

func (a *MeetingAnalyzer) request(transcript string) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: analysis.SystemInstruction,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: analysis.UserMessage(transcript),
			},
		},
		Temperature:      analysis.Temperature,
		MaxTokens:        analysis.MaxTokens,
		PresencePenalty:  analysis.PresencePenalty,
		FrequencyPenalty: analysis.FrequencyPenalty,
	}
}
