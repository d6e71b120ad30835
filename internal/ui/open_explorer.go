package ui

import "os/exec"

// startAndReap starts cmd and waits for it in the background so the child
// does not linger as a zombie. The returned channel yields the exit error.
func startAndReap(cmd *exec.Cmd) (<-chan error, error) {
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()
	return done, nil
}
