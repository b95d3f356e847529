package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogship/pkg/services"
)

// ListArticles returns the article index, newest first. ?limit=n trims the
// listing to the n most recent.
func ListArticles(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	articles, err := services.LatestArticles(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch articles"})
		return
	}
	c.JSON(http.StatusOK, articles)
}

// GetArticle returns one article with its body and rendered HTML.
func GetArticle(c *gin.Context) {
	targetPath := c.Query("path")
	if targetPath == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path is required"})
		return
	}

	art, err := services.GetArticle(targetPath)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	rendered, err := services.RenderMarkdown([]byte(art.Body))
	if err == nil {
		art.HTML = string(rendered)
	}
	c.JSON(http.StatusOK, art)
}

// HandleBuild triggers a hugo build and returns the tool output.
func HandleBuild(c *gin.Context) {
	log, err := services.BuildSite()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "log": log})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "log": log})
}

// ListMedia returns the files under the media folder.
func ListMedia(c *gin.Context) {
	files, err := services.ListMediaFiles()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list media"})
		return
	}
	c.JSON(http.StatusOK, files)
}
