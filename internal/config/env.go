package config

import (
	"fmt"
	"os"
	"strings"

	apperrors "github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/errors"
	"github.com/joho/godotenv"
)

// APIKeys holds all API keys loaded from environment
type APIKeys struct {
	OpenAI string
	Gemini string
}

// LoadEnv loads environment variables from the first .env file found.
// Variables already set in the process environment win over the file.
// Returns the path that was loaded, or "" when no file exists.
func LoadEnv() (string, error) {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			return envPath, nil
		}
	}

	return "", nil
}

// GetAPIKeys retrieves and validates API keys from environment variables
func GetAPIKeys() (*APIKeys, error) {
	apiKeys := &APIKeys{
		OpenAI: strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		Gemini: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
	}

	if apiKeys.OpenAI != "" {
		if err := ValidateAPIKey(apiKeys.OpenAI, "OpenAI"); err != nil {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY: %w", err)
		}
	}

	if apiKeys.Gemini != "" {
		if err := ValidateAPIKey(apiKeys.Gemini, "Gemini"); err != nil {
			return nil, fmt.Errorf("invalid GEMINI_API_KEY: %w", err)
		}
	}

	return apiKeys, nil
}

// RequireAPIKeys fails when a credential needed by the selected providers is
// missing. Transcription always goes through OpenAI.
func RequireAPIKeys(apiKeys *APIKeys, analysisProvider string) error {
	if apiKeys.OpenAI == "" {
		return apperrors.Wrap(apperrors.ErrMissingAPIKey, "OPENAI_API_KEY must be set in environment or .env file")
	}
	if analysisProvider == ProviderGemini && apiKeys.Gemini == "" {
		return apperrors.Wrap(apperrors.ErrMissingAPIKey, "GEMINI_API_KEY must be set when analysis provider is gemini")
	}
	return nil
}
