package cli

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"blogship/pkg/config"
	"blogship/pkg/handlers"
	"blogship/pkg/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the built site locally with a JSON API",
	Long: `Starts a local preview server. The built site is served under the
preview path and a small API exposes the article index, rendered articles,
media files, and a build trigger. Content changes rebuild the site
automatically.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	r := gin.Default()
	r.Static(config.PreviewURL, config.PublicPath)

	api := r.Group("/api")
	{
		api.GET("/articles", handlers.ListArticles)
		api.GET("/article", handlers.GetArticle)
		api.GET("/media", handlers.ListMedia)
		api.POST("/build", handlers.HandleBuild)
	}

	// Initial build so the preview has something to serve.
	if out, err := services.BuildSite(); err != nil {
		logger.Warn().Err(err).Msg("initial build failed")
		cmd.Print(out)
	}

	go func() {
		err := services.WatchContent(cmd.Context(), config.ContentPath(), logger, func() {
			services.InvalidateCache()
			if _, err := services.BuildSite(); err != nil {
				logger.Warn().Err(err).Msg("rebuild failed")
				return
			}
			logger.Info().Msg("site rebuilt")
		})
		if err != nil {
			logger.Warn().Err(err).Msg("content watcher stopped")
		}
	}()

	logger.Info().Str("addr", config.ServeAddr).Msg("preview server listening")
	return r.Run(config.ServeAddr)
}
