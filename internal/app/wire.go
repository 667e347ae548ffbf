//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/api/server"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/api/v1/services"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/api/openai/whisper"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/intake"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/pipeline"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/config"
)

// InitializeServer builds the HTTP server. Uploads are stored under
// cfg.Upload.Dir and released by the pipeline.
func InitializeServer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*server.Server, error) {
	wire.Build(
		PipelineSet,
		provideStore,
		provideServerTranscriberOptions,
		services.NewMeetingService,
		server.NewServer,
		wire.Bind(new(pipeline.Releaser), new(*intake.Store)),
		wire.Bind(new(services.UploadStore), new(*intake.Store)),
		wire.Bind(new(services.Analyzer), new(*pipeline.Pipeline)),
		wire.Bind(new(prometheus.Gatherer), new(*prometheus.Registry)),
	)
	return nil, nil
}

// InitializePipeline builds a standalone pipeline for the CLI
func InitializePipeline(ctx context.Context, cfg *config.Config, logger *zap.Logger, releaser pipeline.Releaser, opts []whisper.Option) (*pipeline.Pipeline, error) {
	wire.Build(PipelineSet)
	return nil, nil
}
