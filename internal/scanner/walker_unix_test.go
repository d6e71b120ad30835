//go:build !windows

package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lumipallolabs/hashseek/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestClassifyNamedPipe(t *testing.T) {
	fifo := filepath.Join(t.TempDir(), "pipe")
	require.NoError(t, unix.Mkfifo(fifo, 0644))

	entry := Classify(fifo)
	assert.Equal(t, model.SpecialOrDevice, entry.Kind)
	assert.Equal(t, "named pipe", entry.Detail)
}

func TestClassifyCharDevice(t *testing.T) {
	if _, err := os.Stat("/dev/null"); err != nil {
		t.Skip("no /dev/null")
	}
	entry := Classify("/dev/null")
	assert.Equal(t, model.SpecialOrDevice, entry.Kind)
	assert.Contains(t, entry.Detail, "character device")
}

func TestClassifyRegularAndDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	assert.Equal(t, model.Regular, Classify(file).Kind)
	assert.Equal(t, model.Directory, Classify(dir).Kind)
	assert.Equal(t, model.Inaccessible, Classify(filepath.Join(dir, "missing")).Kind)
}

func TestWalkerScanSkipsRealFifo(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "hello")
	require.NoError(t, unix.Mkfifo(filepath.Join(root, "pipe"), 0644))

	res, err := NewWalker(nil).Scan(context.Background(), helloRequest(root), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "a.txt")}, res.Matches)
	assert.Equal(t, 1, res.SkippedByKind[model.SkipDevice])
	assert.Equal(t, 2, res.TotalFilesEstimate)
}

func TestDefaultProtectedPrefixesEndInSeparator(t *testing.T) {
	for _, p := range DefaultProtectedPrefixes() {
		assert.Equal(t, byte('/'), p[len(p)-1], p)
	}
}
