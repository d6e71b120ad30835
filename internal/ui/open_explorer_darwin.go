//go:build darwin

package ui

import "os/exec"

// openInFileManager reveals the given path in Finder (opens parent directory with item selected)
func openInFileManager(path string) error {
	_, err := startAndReap(exec.Command("open", "-R", path))
	return err
}
