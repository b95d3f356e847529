package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/crypto/ssh"

	"blogship/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode propagates the underlying tool's exit code where one exists: the
// hugo subprocess or the remote command. Everything else is 1.
func exitCode(err error) int {
	var execErr *exec.ExitError
	if errors.As(err, &execErr) {
		return execErr.ExitCode()
	}
	var sshErr *ssh.ExitError
	if errors.As(err, &sshErr) {
		return sshErr.ExitStatus()
	}
	return 1
}
