package services

import (
	"os/exec"

	"blogship/pkg/config"
)

// BuildSite runs the hugo binary against the site repository. The public
// directory is fully regenerated on every invocation. The combined hugo
// output is returned for the operator regardless of outcome.
func BuildSite() (string, error) {
	cmd := exec.Command("hugo",
		"--source", config.RepoPath,
		"--destination", "public",
		"--cleanDestinationDir",
	)
	output, err := cmd.CombinedOutput()
	return string(output), err
}
