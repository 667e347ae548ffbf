package main

import (
	"fmt"
	"os"

	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/cmd/meetsum/cmd"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/internal/config"
)

// @title AI-Powered Meeting Insights API
// @version 1.0
// @description Upload a meeting recording and receive its transcript and a structured analysis.
// @host localhost:3000
// @BasePath /api
func main() {
	// A missing .env is fine; variables may come from the environment
	if _, err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Configuration Warning: %v\n", err)
	}

	cmd.Execute()
}
