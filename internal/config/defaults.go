package config

import "time"

// Default configuration constants
const (
	// Server defaults
	DefaultHost         = ""
	DefaultPort         = "3000"
	DefaultEnvironment  = "development"
	DefaultReadTimeout  = 30 * time.Second
	DefaultWriteTimeout = 200 * time.Second
	DefaultIdleTimeout  = 120 * time.Second

	// Upload defaults
	DefaultUploadDir      = "uploads"
	DefaultMaxUploadBytes = 25 << 20 // speech-to-text provider file limit

	// Model defaults
	DefaultTranscriptionModel = "whisper-1"
	DefaultChatModel          = "gpt-4.1-nano"
	DefaultGeminiModel        = "gemini-2.0-flash"
	DefaultAnalysisProvider   = ProviderOpenAI

	// Outbound call defaults
	DefaultTranscriptionTimeout = 120 * time.Second
	DefaultAnalysisTimeout      = 60 * time.Second
)

// Analysis providers
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Default returns a configuration populated with defaults only.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         DefaultHost,
			Port:         DefaultPort,
			Environment:  DefaultEnvironment,
			ReadTimeout:  DefaultReadTimeout,
			WriteTimeout: DefaultWriteTimeout,
			IdleTimeout:  DefaultIdleTimeout,
		},
		Upload: UploadConfig{
			Dir:      DefaultUploadDir,
			MaxBytes: DefaultMaxUploadBytes,
		},
		OpenAI: OpenAIConfig{
			TranscriptionModel: DefaultTranscriptionModel,
			ChatModel:          DefaultChatModel,
		},
		Analysis: AnalysisConfig{
			Provider: DefaultAnalysisProvider,
		},
		Gemini: GeminiConfig{
			Model: DefaultGeminiModel,
		},
		Timeouts: TimeoutConfig{
			Transcription: DefaultTranscriptionTimeout,
			Analysis:      DefaultAnalysisTimeout,
		},
	}
}
