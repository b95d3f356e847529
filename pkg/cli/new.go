package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"blogship/pkg/services"
)

var (
	newTitle  string
	newFormat string
)

var newCmd = &cobra.Command{
	Use:   "new <path>",
	Short: "Create a new article with scaffold front-matter",
	Long: `Creates a markdown document under the content directory with title,
date, and draft front-matter. The path is relative to the content directory,
for example posts/hello-world.md.`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVar(&newTitle, "title", "", "article title (defaults to the file name)")
	newCmd.Flags().StringVar(&newFormat, "format", "yaml", "front-matter format: yaml or toml")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	fullPath, err := services.CreateArticle(args[0], newTitle, newFormat)
	if err != nil {
		if errors.Is(err, services.ErrArticleExists) {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		return fmt.Errorf("create article: %w", err)
	}
	cmd.Printf("Created %s\n", fullPath)
	return nil
}
