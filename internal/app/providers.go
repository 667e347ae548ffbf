package app

import (
	"context"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goopenai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/api"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/api/gemini"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/api/openai"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/api/openai/chat"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/api/openai/whisper"
	apperrors "github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/errors"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/intake"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/pipeline"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/config"
)

// ProviderSet builds the transcription and analysis adapters from config
var ProviderSet = wire.NewSet(
	provideOpenAIClient,
	provideTranscriber,
	provideSummarizer,
)

// PipelineSet builds a pipeline; the Releaser is supplied by the caller
var PipelineSet = wire.NewSet(
	ProviderSet,
	provideRegistry,
	pipeline.NewMetrics,
	provideTimeouts,
	pipeline.New,
	wire.Bind(new(prometheus.Registerer), new(*prometheus.Registry)),
)

func provideOpenAIClient(cfg *config.Config) *goopenai.Client {
	return openai.NewClient(cfg.OpenAI)
}

func provideTranscriber(client *goopenai.Client, cfg *config.Config, opts []whisper.Option) api.Transcriber {
	return whisper.NewRemoteTranscriber(client, cfg.OpenAI.TranscriptionModel, opts...)
}

// provideSummarizer selects the analysis provider named in config
func provideSummarizer(ctx context.Context, client *goopenai.Client, cfg *config.Config, logger *zap.Logger) (api.Summarizer, error) {
	switch cfg.Analysis.Provider {
	case config.ProviderOpenAI:
		logger.Debug("Using OpenAI for analysis", zap.String("model", cfg.OpenAI.ChatModel))
		return chat.NewMeetingAnalyzer(client, cfg.OpenAI.ChatModel), nil
	case config.ProviderGemini:
		logger.Debug("Using Gemini for analysis", zap.String("model", cfg.Gemini.Model))
		return gemini.NewSummarizer(ctx, cfg.Gemini)
	default:
		return nil, apperrors.Wrapf(apperrors.ErrUnknownProvider, "analysis provider %q", cfg.Analysis.Provider)
	}
}

func provideStore(cfg *config.Config, logger *zap.Logger) *intake.Store {
	return intake.NewStore(cfg.Upload.Dir, cfg.Upload.MaxBytes, logger)
}

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideTimeouts(cfg *config.Config) pipeline.Timeouts {
	return pipeline.Timeouts{
		Transcription: cfg.Timeouts.Transcription,
		Analysis:      cfg.Timeouts.Analysis,
	}
}

// provideServerTranscriberOptions installs no reader hooks for the server
func provideServerTranscriberOptions() []whisper.Option {
	return nil
}
