package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"blogship/pkg/models"
)

// frontMatterEnvelope is the typed view of an article's front-matter. Keys the
// envelope does not name are kept in Custom so round-trips do not lose them.
type frontMatterEnvelope struct {
	Title       string         `yaml:"title" toml:"title"`
	Description string         `yaml:"description" toml:"description"`
	Date        time.Time      `yaml:"date" toml:"date"`
	Hero        string         `yaml:"hero" toml:"hero"`
	Tags        []string       `yaml:"tags" toml:"tags"`
	Badge       string         `yaml:"badge" toml:"badge"`
	Draft       bool           `yaml:"draft" toml:"draft"`
	Custom      map[string]any `yaml:",inline" toml:"-"`
}

// ParseArticle reads front-matter and body out of a markdown document.
// YAML (---) and TOML (+++) delimiters are both accepted.
func ParseArticle(relPath string, content []byte) (models.Article, error) {
	var env frontMatterEnvelope
	body, err := frontmatter.Parse(bytes.NewReader(content), &env)
	if err != nil {
		return models.Article{}, fmt.Errorf("parse front-matter of %s: %w", relPath, err)
	}

	art := models.Article{
		Path:        relPath,
		Title:       env.Title,
		Description: env.Description,
		Date:        env.Date,
		Hero:        env.Hero,
		Tags:        env.Tags,
		Badge:       env.Badge,
		Draft:       env.Draft,
		Format:      DetectFormat(content),
		FrontMatter: envelopeToMap(env),
		Body:        strings.TrimSpace(string(body)),
	}
	if art.Title == "" {
		art.Title = relPath
	}
	return art, nil
}

// DetectFormat reports the front-matter flavour of a document by its opening
// delimiter. Documents without front-matter report the empty string.
func DetectFormat(content []byte) string {
	str := string(content)
	if strings.HasPrefix(str, "---\n") || strings.HasPrefix(str, "---\r\n") {
		return "yaml"
	}
	if strings.HasPrefix(str, "+++\n") || strings.HasPrefix(str, "+++\r\n") {
		return "toml"
	}
	return ""
}

// ConstructFileContent assembles a markdown document from front-matter and
// body in the requested format.
func ConstructFileContent(fm map[string]interface{}, body string, format string) ([]byte, error) {
	if fm == nil {
		fm = map[string]interface{}{}
	}

	var buf bytes.Buffer
	switch format {
	case "yaml":
		buf.WriteString("---\n")
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(fm); err != nil {
			return nil, err
		}
		buf.WriteString("---\n")
	case "toml":
		buf.WriteString("+++\n")
		enc := toml.NewEncoder(&buf)
		if err := enc.Encode(fm); err != nil {
			return nil, err
		}
		buf.WriteString("+++\n")
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

func envelopeToMap(env frontMatterEnvelope) map[string]interface{} {
	fm := make(map[string]interface{}, len(env.Custom)+7)
	for k, v := range env.Custom {
		fm[k] = v
	}
	if env.Title != "" {
		fm["title"] = env.Title
	}
	if env.Description != "" {
		fm["description"] = env.Description
	}
	if !env.Date.IsZero() {
		fm["date"] = env.Date
	}
	if env.Hero != "" {
		fm["hero"] = env.Hero
	}
	if len(env.Tags) > 0 {
		fm["tags"] = append([]string(nil), env.Tags...)
	}
	if env.Badge != "" {
		fm["badge"] = env.Badge
	}
	if env.Draft {
		fm["draft"] = true
	}
	return fm
}
