//go:build !windows && !darwin

package ui

import (
	"os/exec"
	"path/filepath"
)

// openInFileManager opens the directory containing path with xdg-open
func openInFileManager(path string) error {
	_, err := startAndReap(exec.Command("xdg-open", filepath.Dir(path)))
	return err
}
