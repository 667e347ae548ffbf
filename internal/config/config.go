package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	apperrors "github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/errors"
)

// Config is the resolved application configuration.
// Precedence: defaults < YAML file < environment.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Upload   UploadConfig   `yaml:"upload"`
	OpenAI   OpenAIConfig   `yaml:"openai"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Gemini   GeminiConfig   `yaml:"gemini"`
	Timeouts TimeoutConfig  `yaml:"timeouts"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         string        `yaml:"port" validate:"required,numeric"`
	Environment  string        `yaml:"environment" validate:"oneof=development production test"`
	ReadTimeout  time.Duration `yaml:"read_timeout" validate:"gte=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" validate:"gte=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" validate:"gte=0"`
}

// UploadConfig controls where and how much audio intake accepts
type UploadConfig struct {
	Dir      string `yaml:"dir" validate:"required"`
	MaxBytes int64  `yaml:"max_bytes" validate:"gt=0"`
}

// OpenAIConfig configures the speech-to-text and chat clients
type OpenAIConfig struct {
	APIKey             string `yaml:"api_key"`
	BaseURL            string `yaml:"base_url" validate:"omitempty,url"`
	TranscriptionModel string `yaml:"transcription_model" validate:"required"`
	ChatModel          string `yaml:"chat_model" validate:"required"`
}

// AnalysisConfig selects the language model used for meeting analysis
type AnalysisConfig struct {
	Provider string `yaml:"provider" validate:"oneof=openai gemini"`
}

// GeminiConfig configures the Gemini analysis provider
type GeminiConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url" validate:"omitempty,url"`
	Model   string `yaml:"model" validate:"required"`
}

// TimeoutConfig bounds each outbound provider call
type TimeoutConfig struct {
	Transcription time.Duration `yaml:"transcription"`
	Analysis      time.Duration `yaml:"analysis"`
}

// LogConfig configures the zap logger
type LogConfig struct {
	Development bool `yaml:"development"`
}

// Load resolves configuration from defaults, the optional YAML file at path
// and the environment, then validates it. A missing provider credential is
// reported here so the process can refuse to start.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

func (c *Config) applyEnv() error {
	apiKeys, err := GetAPIKeys()
	if err != nil {
		return err
	}
	if apiKeys.OpenAI != "" {
		c.OpenAI.APIKey = apiKeys.OpenAI
	}
	if apiKeys.Gemini != "" {
		c.Gemini.APIKey = apiKeys.Gemini
	}

	overrideString(&c.Server.Host, "HOST")
	overrideString(&c.Server.Port, "PORT")
	overrideString(&c.Server.Environment, "APP_ENV")
	overrideString(&c.Upload.Dir, "UPLOAD_DIR")
	overrideString(&c.OpenAI.BaseURL, "OPENAI_BASE_URL")
	overrideString(&c.OpenAI.TranscriptionModel, "TRANSCRIPTION_MODEL")
	overrideString(&c.OpenAI.ChatModel, "OPENAI_MODEL")
	overrideString(&c.Analysis.Provider, "ANALYSIS_PROVIDER")
	overrideString(&c.Gemini.BaseURL, "GEMINI_BASE_URL")
	overrideString(&c.Gemini.Model, "GEMINI_MODEL")

	return errors.Join(
		overrideInt64(&c.Upload.MaxBytes, "UPLOAD_MAX_BYTES"),
		overrideDuration(&c.Timeouts.Transcription, "TRANSCRIPTION_TIMEOUT"),
		overrideDuration(&c.Timeouts.Analysis, "ANALYSIS_TIMEOUT"),
		overrideBool(&c.Log.Development, "LOG_DEVELOPMENT"),
	)
}

// Validate checks struct constraints, timeouts and provider credentials
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			fields := make([]string, 0, len(validationErrs))
			for _, fieldError := range validationErrs {
				fields = append(fields, fmt.Sprintf("%s failed '%s'", fieldError.Namespace(), fieldError.Tag()))
			}
			return apperrors.Wrap(apperrors.ErrInvalidConfig, strings.Join(fields, "; "))
		}
		return apperrors.Wrap(apperrors.ErrInvalidConfig, err.Error())
	}

	if err := ValidatePort(c.Server.Port, "server"); err != nil {
		return apperrors.Wrap(apperrors.ErrInvalidConfig, err.Error())
	}
	if c.OpenAI.BaseURL != "" {
		if err := ValidateURL(c.OpenAI.BaseURL, "OpenAI base"); err != nil {
			return apperrors.Wrap(apperrors.ErrInvalidConfig, err.Error())
		}
	}
	if c.Gemini.BaseURL != "" {
		if err := ValidateURL(c.Gemini.BaseURL, "Gemini base"); err != nil {
			return apperrors.Wrap(apperrors.ErrInvalidConfig, err.Error())
		}
	}
	if err := ValidateTimeout(c.Timeouts.Transcription, "transcription"); err != nil {
		return apperrors.Wrap(apperrors.ErrInvalidConfig, err.Error())
	}
	if err := ValidateTimeout(c.Timeouts.Analysis, "analysis"); err != nil {
		return apperrors.Wrap(apperrors.ErrInvalidConfig, err.Error())
	}

	// The response is written after both provider calls; a shorter write
	// timeout would cut it off.
	if c.Server.WriteTimeout > 0 && c.Server.WriteTimeout <= c.Timeouts.Transcription+c.Timeouts.Analysis {
		return apperrors.Wrap(apperrors.ErrInvalidConfig,
			fmt.Sprintf("server write timeout %s must exceed transcription+analysis timeouts (%s)",
				c.Server.WriteTimeout, c.Timeouts.Transcription+c.Timeouts.Analysis))
	}

	return RequireAPIKeys(&APIKeys{OpenAI: c.OpenAI.APIKey, Gemini: c.Gemini.APIKey}, c.Analysis.Provider)
}

// Address returns the host:port the HTTP server listens on
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

func overrideString(dst *string, key string) {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		*dst = value
	}
}

func overrideInt64(dst *int64, key string) error {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}

func overrideDuration(dst *time.Duration, key string) error {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = d
	return nil
}

func overrideBool(dst *bool, key string) error {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = b
	return nil
}
