package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/cmd/meetsum/cmd/analyze"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/cmd/meetsum/cmd/options"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/cmd/meetsum/cmd/serve"
	"github.com/AbdallahAhmadd/AI-Powered-Meeting-Insights/cmd/meetsum/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "meetsum",
	Short: "Turn meeting recordings into transcripts and structured summaries",
	Long: `meetsum transcribes meeting audio and summarizes it into an executive summary,
key decisions, action items, follow-up points and next steps.

- serve runs the HTTP API that accepts uploaded recordings
- analyze runs the same pipeline on a local recording`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(analyze.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().StringVarP(&options.ConfigPath, "config", "c", "", "optional YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&options.Verbose, "verbose", "V", false, "verbose output")
}
