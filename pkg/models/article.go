package models

import "time"

// Article represents a markdown document in the content store. Path is
// relative to the content directory and uses forward slashes.
type Article struct {
	Path        string                 `json:"path"`
	Title       string                 `json:"title"`
	Description string                 `json:"description,omitempty"`
	Date        time.Time              `json:"date"`
	Hero        string                 `json:"hero,omitempty"`
	Tags        []string               `json:"tags,omitempty"`
	Badge       string                 `json:"badge,omitempty"`
	Draft       bool                   `json:"draft"`
	Format      string                 `json:"format,omitempty"` // yaml or toml
	FrontMatter map[string]interface{} `json:"frontmatter,omitempty"`
	Body        string                 `json:"body,omitempty"`
	HTML        string                 `json:"html,omitempty"`
}

// MediaFile describes one file under the media folder.
type MediaFile struct {
	Name string `json:"name"`
	Path string `json:"path"` // relative path for usage in markdown
	Size int64  `json:"size"`
	URL  string `json:"url"` // URL for preview
}
