package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"blogship/pkg/services"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List articles, newest first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "show only the n most recent articles")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	articles, err := services.LatestArticles(listLimit)
	if err != nil {
		return fmt.Errorf("list articles: %w", err)
	}

	for _, art := range articles {
		date := "          "
		if !art.Date.IsZero() {
			date = art.Date.Format("2006-01-02")
		}
		line := fmt.Sprintf("%s  %s", date, art.Title)
		if len(art.Tags) > 0 {
			line += "  [" + strings.Join(art.Tags, ", ") + "]"
		}
		if art.Badge != "" {
			line += "  (" + art.Badge + ")"
		}
		cmd.Printf("%s\n    %s\n", line, art.Path)
	}
	return nil
}
