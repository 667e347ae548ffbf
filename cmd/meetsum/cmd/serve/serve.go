package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/cmd/meetsum/cmd/options"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app"
)

const shutdownTimeout = 30 * time.Second

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the meeting insights HTTP API",
	Long: `Start the meeting insights HTTP API.

The server refuses to start when the credentials for the configured
providers are missing. SIGINT or SIGTERM drains in-flight requests before exit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func run(ctx context.Context) error {
	cfg, err := options.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := options.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := app.InitializeServer(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize server", zap.Error(err))
		return err
	}

	if err := srv.Start(); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
	case err := <-srv.Errors():
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
