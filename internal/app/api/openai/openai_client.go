package openai

import (
	"github.com/sashabaranov/go-openai"

	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/config"
)

// NewClient creates an OpenAI client from configuration. One client is shared
// by the transcription and analysis adapters.
func NewClient(cfg config.OpenAIConfig) *openai.Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return openai.NewClientWithConfig(clientConfig)
}
