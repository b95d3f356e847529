package services

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"blogship/pkg/config"
	"blogship/pkg/models"
)

// ErrArticleExists is returned when creating a document at an occupied path.
var ErrArticleExists = errors.New("article already exists")

var (
	articleCache []models.Article
	cacheMutex   sync.Mutex
	cacheLoaded  bool
)

// ListArticles returns all articles from the content store, metadata only,
// sorted by publish date descending. Drafts are excluded unless SHOW_DRAFTS
// is set. The index is cached until InvalidateCache is called.
func ListArticles() ([]models.Article, error) {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	if !cacheLoaded {
		articles, err := scanContent()
		if err != nil {
			return nil, err
		}
		articleCache = articles
		cacheLoaded = true
	}

	out := make([]models.Article, 0, len(articleCache))
	for _, a := range articleCache {
		if a.Draft && !config.ShowDrafts {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

// LatestArticles returns the n most recent articles. n <= 0 or n larger than
// the store returns everything.
func LatestArticles(n int) ([]models.Article, error) {
	articles, err := ListArticles()
	if err != nil {
		return nil, err
	}
	if n <= 0 || n >= len(articles) {
		return articles, nil
	}
	return articles[:n], nil
}

// GetArticle reads one article, body included. relPath is relative to the
// content directory.
func GetArticle(relPath string) (*models.Article, error) {
	fullPath := SafeJoin(config.RepoPath, config.ContentDir, relPath)
	if fullPath == "" {
		return nil, fmt.Errorf("invalid article path: %s", relPath)
	}
	content, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, err
	}
	art, err := ParseArticle(filepath.ToSlash(relPath), content)
	if err != nil {
		return nil, err
	}
	return &art, nil
}

// CreateArticle writes a fresh markdown document with scaffold front-matter
// (title, date, draft) in the requested format. The path must not exist yet.
func CreateArticle(relPath, title, format string) (string, error) {
	fullPath := SafeJoin(config.RepoPath, config.ContentDir, relPath)
	if fullPath == "" {
		return "", fmt.Errorf("invalid article path: %s", relPath)
	}
	if _, err := os.Stat(fullPath); err == nil {
		return "", ErrArticleExists
	}

	if title == "" {
		title = strings.TrimSuffix(filepath.Base(relPath), filepath.Ext(relPath))
	}
	fm := map[string]interface{}{
		"title": title,
		"date":  time.Now().UTC().Truncate(time.Second),
		"draft": true,
	}
	content, err := ConstructFileContent(fm, "", format)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		return "", err
	}

	InvalidateCache()
	return fullPath, nil
}

// InvalidateCache drops the article index so the next listing rescans the
// content directory.
func InvalidateCache() {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()
	cacheLoaded = false
	articleCache = nil
}

// SafeJoin joins target under root/sub, rejecting traversal outside the tree.
// An empty return means the path was rejected.
func SafeJoin(root, sub, target string) string {
	cleanTarget := filepath.Clean(target)
	if strings.Contains(cleanTarget, "..") || filepath.IsAbs(cleanTarget) {
		return ""
	}
	return filepath.Join(root, sub, cleanTarget)
}

func scanContent() ([]models.Article, error) {
	contentDir := config.ContentPath()

	var articles []models.Article
	err := filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		relPath, _ := filepath.Rel(contentDir, path)
		relPath = filepath.ToSlash(relPath)

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		art, err := ParseArticle(relPath, content)
		if err != nil {
			// Unparsable front-matter still gets indexed, path as title.
			art = models.Article{Path: relPath, Title: relPath}
		}
		// The index carries metadata only.
		art.Body = ""
		art.FrontMatter = nil
		articles = append(articles, art)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Newest first; undated articles sink to the end, ties break on path so
	// the order is deterministic.
	sort.SliceStable(articles, func(i, j int) bool {
		if !articles[i].Date.Equal(articles[j].Date) {
			return articles[i].Date.After(articles[j].Date)
		}
		return articles[i].Path < articles[j].Path
	})
	return articles, nil
}
