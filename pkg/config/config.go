package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	// Site repository layout.
	RepoPath   = "./site"
	ContentDir = "content"
	PublicPath = "./site/public"

	// Deploy target. Host must be set before a deploy can run.
	DeployHost       = ""
	DeployPort       = "22"
	DeployUser       = "deploy"
	DeployPath       = "/var/www/blog"
	DeployKeyFile    = ""
	DeployKnownHosts = ""

	// Preview server settings.
	ServeAddr  = ":8080"
	PreviewURL = "/preview/"

	// Media settings.
	MediaDir    = "static/images"
	MediaPublic = "/images"

	// Content settings.
	ShowDrafts = false
)

func Init() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found or error loading it.")
	}

	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	RepoPath = getEnv("BLOG_REPO_PATH", "./site")
	ContentDir = getEnv("BLOG_CONTENT_DIR", "content")
	PublicPath = getEnv("BLOG_PUBLIC_PATH", filepath.Join(RepoPath, "public"))

	DeployHost = getEnv("DEPLOY_HOST", "")
	DeployPort = getEnv("DEPLOY_PORT", "22")
	DeployUser = getEnv("DEPLOY_USER", "deploy")
	DeployPath = getEnv("DEPLOY_PATH", "/var/www/blog")
	DeployKeyFile = getEnv("DEPLOY_KEY_FILE", defaultKeyFile())
	DeployKnownHosts = getEnv("DEPLOY_KNOWN_HOSTS", "")

	ServeAddr = getEnv("SERVE_ADDR", ":8080")

	MediaDir = getEnv("MEDIA_DIR", "static/images")
	MediaPublic = getEnv("MEDIA_PUBLIC", "/images")

	if v := os.Getenv("SHOW_DRAFTS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			ShowDrafts = b
		}
	}
}

// ContentPath returns the path of the content tree inside the site repository.
func ContentPath() string {
	return filepath.Join(RepoPath, ContentDir)
}

func defaultKeyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ssh", "id_ed25519")
}
