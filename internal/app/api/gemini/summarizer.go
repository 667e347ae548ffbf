// Package gemini implements meeting analysis on Google's Gemini models.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/analysis"
	apperrors "github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/errors"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/config"
)

// Summarizer produces meeting analyses with the Gemini API.
type Summarizer struct {
	client *genai.Client
	model  string
}

// NewSummarizer creates a Gemini client from configuration
func NewSummarizer(ctx context.Context, cfg config.GeminiConfig) (*Summarizer, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Summarizer{client: client, model: cfg.Model}, nil
}

// Summarize sends the shared analysis prompt and returns the response text.
func (s *Summarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	result, err := s.client.Models.GenerateContent(ctx, s.model,
		genai.Text(analysis.UserMessage(transcript)),
		generationConfig(),
	)
	if err != nil {
		return "", err
	}

	text := result.Text()
	if text == "" {
		return "", apperrors.ErrEmptyCompletion
	}
	return text, nil
}

func generationConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(analysis.SystemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(analysis.Temperature),
		MaxOutputTokens:   analysis.MaxTokens,
		PresencePenalty:   genai.Ptr(analysis.PresencePenalty),
		FrequencyPenalty:  genai.Ptr(analysis.FrequencyPenalty),
	}
}
