package ui

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartAndReapWaitsForChild(t *testing.T) {
	exe, err := os.Executable()
	require.NoError(t, err)

	cmd := exec.Command(exe, "-test.run=^$")
	done, err := startAndReap(cmd)
	require.NoError(t, err)

	select {
	case err := <-done:
		assert.NoError(t, err)
		require.NotNil(t, cmd.ProcessState)
		assert.True(t, cmd.ProcessState.Exited())
	case <-time.After(30 * time.Second):
		t.Fatal("child was not reaped")
	}
}

func TestStartAndReapStartFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-binary")

	done, err := startAndReap(exec.Command(missing))
	assert.Error(t, err)
	assert.Nil(t, done)
}
