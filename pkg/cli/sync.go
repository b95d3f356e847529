package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"blogship/pkg/services"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull the latest content into the site repository",
	Args:  cobra.NoArgs,
	RunE:  runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, _ []string) error {
	out, err := services.SyncRepo()
	if out != "" {
		cmd.Print(out)
	}
	if err != nil {
		return fmt.Errorf("git pull: %w", err)
	}
	return nil
}
