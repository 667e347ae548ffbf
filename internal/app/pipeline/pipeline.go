// Package pipeline runs a stored upload through transcription and analysis.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/api"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/model"
)

// Stage names a step of the pipeline
type Stage string

const (
	StageTranscription Stage = "transcription"
	StageAnalysis      Stage = "analysis"
)

// StageError reports which stage failed. Err is the provider error unchanged.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Releaser removes an upload once it is no longer needed.
type Releaser interface {
	Release(upload *model.UploadedAudio) error
}

// KeepFiles is a Releaser that leaves files in place. The CLI uses it for
// recordings it does not own.
type KeepFiles struct{}

func (KeepFiles) Release(*model.UploadedAudio) error { return nil }

// Timeouts bounds each provider call
type Timeouts struct {
	Transcription time.Duration
	Analysis      time.Duration
}

// Pipeline wires the providers together. It holds no per-request state and
// is safe for concurrent use.
type Pipeline struct {
	transcriber api.Transcriber
	summarizer  api.Summarizer
	releaser    Releaser
	metrics     *Metrics
	logger      *zap.Logger
	timeouts    Timeouts
}

// New creates a pipeline. A nil metrics disables instrumentation.
func New(transcriber api.Transcriber, summarizer api.Summarizer, releaser Releaser, metrics *Metrics, logger *zap.Logger, timeouts Timeouts) *Pipeline {
	if releaser == nil {
		releaser = KeepFiles{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		transcriber: transcriber,
		summarizer:  summarizer,
		releaser:    releaser,
		metrics:     metrics,
		logger:      logger,
		timeouts:    timeouts,
	}
}

// Run transcribes the upload, releases it, then analyzes the transcript.
// The upload is released on every return path.
func (p *Pipeline) Run(ctx context.Context, upload *model.UploadedAudio) (*model.PipelineResult, error) {
	log := p.logger.With(zap.String("upload", upload.StoragePath))

	released := false
	release := func() {
		if released {
			return
		}
		released = true
		if err := p.releaser.Release(upload); err != nil {
			log.Warn("failed to release upload", zap.Error(err))
		}
	}
	defer release()

	transcript, err := p.transcribe(ctx, upload.StoragePath)
	if err != nil {
		log.Error("transcription failed", zap.Error(err))
		return nil, &StageError{Stage: StageTranscription, Err: err}
	}
	log.Info("transcription completed", zap.Int("transcript_chars", len(transcript)))

	release()

	analysis, err := p.analyze(ctx, transcript)
	if err != nil {
		log.Error("analysis failed", zap.Error(err))
		return nil, &StageError{Stage: StageAnalysis, Err: err}
	}
	log.Info("analysis completed", zap.Int("analysis_chars", len(analysis)))

	return &model.PipelineResult{
		Transcription: transcript,
		Analysis:      analysis,
	}, nil
}

func (p *Pipeline) transcribe(ctx context.Context, path string) (string, error) {
	ctx, cancel := withTimeout(ctx, p.timeouts.Transcription)
	defer cancel()

	start := time.Now()
	text, err := p.transcriber.Transcribe(ctx, path)
	p.metrics.observe(StageTranscription, time.Since(start), err)
	return text, err
}

func (p *Pipeline) analyze(ctx context.Context, transcript string) (string, error) {
	ctx, cancel := withTimeout(ctx, p.timeouts.Analysis)
	defer cancel()

	start := time.Now()
	text, err := p.summarizer.Summarize(ctx, transcript)
	p.metrics.observe(StageAnalysis, time.Since(start), err)
	return text, err
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
