package services

import (
	"os/exec"

	"blogship/pkg/config"
)

// SyncRepo pulls the latest content into the site repository. Authentication
// is whatever the operator's git setup provides; no credentials are injected.
func SyncRepo() (string, error) {
	cmd := exec.Command("git", "pull", "--ff-only")
	cmd.Dir = config.RepoPath
	output, err := cmd.CombinedOutput()
	if err == nil {
		InvalidateCache()
	}
	return string(output), err
}
