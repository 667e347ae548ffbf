package analyze

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/cmd/meetsum/cmd/options"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/api/openai/whisper"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/intake"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/model"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/pipeline"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/progress"
)

var (
	jsonOutput    bool
	forceProgress bool
)

func init() {
	Cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false,
		"print the result as the same JSON object the HTTP API returns")
	Cmd.Flags().BoolVarP(&forceProgress, "progress", "p", false,
		"show the upload progress bar even when stderr is not a terminal")
}

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze <audio-file>",
	Short: "Transcribe and summarize a local meeting recording",
	Long: `Transcribe and summarize a local meeting recording.

Runs the same pipeline as the HTTP API. The file is read in place and never deleted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), args[0], cmd.OutOrStdout())
	},
}

func run(ctx context.Context, path string, out io.Writer) error {
	cfg, err := options.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := options.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to read recording: %w", err)
	}

	mediaType := intake.MediaTypeFor(path)
	store := intake.NewStore(cfg.Upload.Dir, cfg.Upload.MaxBytes, logger)
	if err := store.Validate(mediaType, info.Size()); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	manager := progress.NewManager(progress.Config{
		Enabled: progress.ShouldShowProgress(forceProgress),
		Writer:  os.Stderr,
	})
	defer manager.Shutdown()

	opts := []whisper.Option{
		whisper.WithReaderHook(manager.ReaderHook("Uploading " + filepath.Base(path))),
	}

	p, err := app.InitializePipeline(ctx, cfg, logger, pipeline.KeepFiles{}, opts)
	if err != nil {
		return err
	}

	result, err := p.Run(ctx, &model.UploadedAudio{
		StoragePath:  path,
		OriginalName: filepath.Base(path),
		MediaType:    mediaType,
		SizeBytes:    info.Size(),
	})
	if err != nil {
		return err
	}

	return render(out, result)
}

func render(out io.Writer, result *model.PipelineResult) error {
	if jsonOutput {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	_, err := fmt.Fprintf(out, "# Transcript\n\n%s\n\n# Analysis\n\n%s\n", result.Transcription, result.Analysis)
	return err
}
