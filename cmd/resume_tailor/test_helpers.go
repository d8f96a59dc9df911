package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the resume_tailor binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "resume_tailor"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}

// cliCommand builds an exec.Cmd with RESUME_TAILOR_CONFIG cleared so an
// ambient config file on the developer's machine cannot leak into tests.
func cliCommand(binaryPath string, args ...string) *exec.Cmd {
	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "RESUME_TAILOR_CONFIG=")
	return cmd
}
