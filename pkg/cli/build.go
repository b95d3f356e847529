package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"blogship/pkg/services"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the site into the public directory",
	Args:  cobra.NoArgs,
	RunE:  runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	out, err := services.BuildSite()
	if out != "" {
		cmd.Print(out)
	}
	if err != nil {
		return fmt.Errorf("hugo build: %w", err)
	}
	return nil
}
