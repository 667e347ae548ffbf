package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/analysis"
	apperrors "github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/errors"
)

const fiveSectionAnalysis = `## EXECUTIVE SUMMARY
The team agreed to ship v2 by Friday.

## KEY DECISIONS
- Ship v2 by Friday

## ACTION ITEMS
- Team: ship v2 (due Friday)

## FOLLOW-UP POINTS
- None

## NEXT STEPS
- Release on Friday`

func newTestAnalyzer(t *testing.T, handler http.HandlerFunc) *MeetingAnalyzer {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-api-key")
	config.BaseURL = server.URL + "/v1"
	return NewMeetingAnalyzer(openai.NewClientWithConfig(config), "gpt-4.1-nano")
}

func completionBody(contents ...string) string {
	choices := make([]map[string]interface{}, 0, len(contents))
	for i, content := range contents {
		choices = append(choices, map[string]interface{}{
			"index":         i,
			"finish_reason": "stop",
			"message":       map[string]string{"role": "assistant", "content": content},
		})
	}
	body, _ := json.Marshal(map[string]interface{}{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"model":   "gpt-4.1-nano",
		"choices": choices,
	})
	return string(body)
}

func TestMeetingAnalyzer_SendsFixedPrompt(t *testing.T) {
	transcript := "Let's ship v2 by Friday."

	analyzer := newTestAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)

		var req struct {
			Model            string                         `json:"model"`
			Messages         []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
			Temperature      float64                        `json:"temperature"`
			MaxTokens        int                            `json:"max_tokens"`
			PresencePenalty  float64                        `json:"presence_penalty"`
			FrequencyPenalty float64                        `json:"frequency_penalty"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		assert.Equal(t, "gpt-4.1-nano", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
		assert.Equal(t, analysis.SystemInstruction, req.Messages[0].Content)
		assert.Equal(t, openai.ChatMessageRoleUser, req.Messages[1].Role)
		assert.Equal(t, "Please analyze this meeting transcript:\n\n"+transcript, req.Messages[1].Content)
		assert.InDelta(t, 0.7, req.Temperature, 1e-6)
		assert.Equal(t, 1000, req.MaxTokens)
		assert.InDelta(t, 0.1, req.PresencePenalty, 1e-6)
		assert.InDelta(t, 0.1, req.FrequencyPenalty, 1e-6)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody(fiveSectionAnalysis)))
	})

	result, err := analyzer.Summarize(context.Background(), transcript)
	require.NoError(t, err)
	assert.Equal(t, fiveSectionAnalysis, result)
}

func TestMeetingAnalyzer_ReturnsFirstChoice(t *testing.T) {
	analyzer := newTestAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody("first", "second")))
	})

	result, err := analyzer.Summarize(context.Background(), "transcript")
	require.NoError(t, err)
	assert.Equal(t, "first", result)
}

func TestMeetingAnalyzer_NoChoices(t *testing.T) {
	analyzer := newTestAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody()))
	})

	_, err := analyzer.Summarize(context.Background(), "transcript")
	assert.ErrorIs(t, err, apperrors.ErrEmptyCompletion)
}

func TestMeetingAnalyzer_ProviderErrorPropagates(t *testing.T) {
	analyzer := newTestAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "You exceeded your current quota", "type": "insufficient_quota"}}`))
	})

	_, err := analyzer.Summarize(context.Background(), "transcript")
	require.Error(t, err)

	var apiErr *openai.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusTooManyRequests, apiErr.HTTPStatusCode)
	assert.Contains(t, err.Error(), "You exceeded your current quota")
}
