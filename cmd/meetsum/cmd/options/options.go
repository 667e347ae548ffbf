// Package options holds the global CLI flags shared by subcommands.
package options

import (
	"go.uber.org/zap"

	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/app/logging"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/config"
)

var (
	ConfigPath string
	Verbose    bool
)

// LoadConfig resolves configuration from --config and the environment
func LoadConfig() (*config.Config, error) {
	return config.Load(ConfigPath)
}

// NewLogger builds the process logger. --verbose forces development output.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.NewLogger(cfg.Log.Development || Verbose)
}
