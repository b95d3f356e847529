package services

import (
	"os"
	"path"
	"path/filepath"
	"sort"

	"blogship/pkg/config"
	"blogship/pkg/models"
)

// ListMediaFiles lists the files under the configured media folder, newest
// name last. Hero image references in front-matter point at these paths.
func ListMediaFiles() ([]models.MediaFile, error) {
	fullMediaPath := filepath.Join(config.RepoPath, config.MediaDir)

	entries, err := os.ReadDir(fullMediaPath)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.MediaFile{}, nil
		}
		return nil, err
	}

	files := make([]models.MediaFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, models.MediaFile{
			Name: entry.Name(),
			Path: path.Join(config.MediaPublic, entry.Name()),
			Size: info.Size(),
			URL:  path.Join(config.PreviewURL, config.MediaPublic, entry.Name()),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}
