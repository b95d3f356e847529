package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"blogship/pkg/config"
)

var version = "0.3.0"

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Logger()

var rootCmd = &cobra.Command{
	Use:   "blogship",
	Short: "Build and publish a personal Hugo blog",
	Long: `blogship manages a Hugo-based personal blog: it lists and scaffolds
markdown articles, builds the site through the hugo binary, serves a local
preview, and publishes the generated site to a remote host over SSH.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		config.Init()
	},
	SilenceUsage: true,
}

// Execute runs the CLI. Exit-code handling lives in main.
func Execute() error {
	return rootCmd.Execute()
}
