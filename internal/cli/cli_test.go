package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lumipallolabs/hashseek/internal/config"
	"github.com/lumipallolabs/hashseek/internal/digest"
	"github.com/lumipallolabs/hashseek/internal/logging"
	"github.com/lumipallolabs/hashseek/internal/model"
	"github.com/lumipallolabs/hashseek/internal/scanner"
	"github.com/lumipallolabs/hashseek/internal/ui"
	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helloSHA256 = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"

// menuAnswers feeds fixed answers to the interactive menu
type menuAnswers struct {
	selects []int
	inputs  []string
}

func (m *menuAnswers) Select(string, []string) (int, error) {
	if len(m.selects) == 0 {
		return 0, promptui.ErrInterrupt
	}
	i := m.selects[0]
	m.selects = m.selects[1:]
	return i, nil
}

func (m *menuAnswers) Input(string, func(string) error) (string, error) {
	if len(m.inputs) == 0 {
		return "", promptui.ErrEOF
	}
	in := m.inputs[0]
	m.inputs = m.inputs[1:]
	return in, nil
}

func execute(t *testing.T, p ui.Prompter, args ...string) (string, error) {
	t.Helper()
	a := &app{
		cfg:         config.Config{StatsFile: filepath.Join(t.TempDir(), "stats.json")},
		prompter:    p,
		scannerOpts: []scanner.Option{scanner.WithProtectedPrefixes()},
	}
	cmd := newRootCmd("test", a)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--no-color", "--plain"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestHashCommand(t *testing.T) {
	logDir := t.TempDir()
	file := filepath.Join(t.TempDir(), "hello.txt")
	writeFile(t, file, "hello")

	out, err := execute(t, nil, "--log-dir", logDir, "hash", "--algorithm", "md5", file)
	require.NoError(t, err)
	assert.Contains(t, out, "MD5:")
	assert.Contains(t, out, "5d41402abc4b2a76b9719d911017c592")

	events, err := os.ReadFile(filepath.Join(logDir, logging.EventsFile))
	require.NoError(t, err)
	assert.Contains(t, string(events), "File hashed")
}

func TestHashCommandDefaultsToSHA256(t *testing.T) {
	file := filepath.Join(t.TempDir(), "hello.txt")
	writeFile(t, file, "hello")

	out, err := execute(t, nil, "--log-dir", t.TempDir(), "hash", file)
	require.NoError(t, err)
	assert.Contains(t, out, "SHA256:")
	assert.Contains(t, out, helloSHA256)
}

func TestHashCommandInvalidAlgorithm(t *testing.T) {
	file := filepath.Join(t.TempDir(), "hello.txt")
	writeFile(t, file, "hello")

	_, err := execute(t, nil, "--log-dir", t.TempDir(), "hash", "--algorithm", "sha1", file)
	assert.ErrorIs(t, err, digest.ErrInvalidAlgorithm)
}

func TestSearchCommandPlain(t *testing.T) {
	logDir := t.TempDir()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "hello")
	writeFile(t, filepath.Join(root, "sub", "b.txt"), "hello")
	writeFile(t, filepath.Join(root, "c.txt"), "other")

	out, err := execute(t, nil, "--log-dir", logDir, "search", "--root", root, helloSHA256)
	require.NoError(t, err)

	assert.Contains(t, out, "Counting files...")
	assert.Contains(t, out, "==== MATCHING FILES FOUND ====")
	assert.Contains(t, out, filepath.Join(root, "a.txt"))
	assert.Contains(t, out, filepath.Join(root, "sub", "b.txt"))
	assert.NotContains(t, out, filepath.Join(root, "c.txt"))

	events, err := os.ReadFile(filepath.Join(logDir, logging.EventsFile))
	require.NoError(t, err)
	assert.Contains(t, string(events), "Match found")
}

func TestSearchCommandNoMatches(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "c.txt"), "other")

	out, err := execute(t, nil, "--log-dir", t.TempDir(), "search", "-r", root, "5d41402abc4b2a76b9719d911017c592")
	require.NoError(t, err)
	assert.Contains(t, out, "No matching files found.")
}

func TestSearchCommandInvalidDigest(t *testing.T) {
	_, err := execute(t, nil, "--log-dir", t.TempDir(), "search", "-r", t.TempDir(), "abc123")
	assert.ErrorIs(t, err, digest.ErrInvalidDigestLength)
}

func TestSearchCommandAlgorithmMismatch(t *testing.T) {
	_, err := execute(t, nil, "--log-dir", t.TempDir(), "search", "-a", "md5", "-r", t.TempDir(), helloSHA256)
	assert.ErrorIs(t, err, digest.ErrInvalidDigestLength)
}

func TestSearchCommandInvalidRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	_, err := execute(t, nil, "--log-dir", t.TempDir(), "search", "-r", missing, helloSHA256)
	assert.ErrorIs(t, err, scanner.ErrInvalidRoot)
}

func TestSearchCommandCancelled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "hello")

	a := &app{cfg: config.Config{Plain: true, LogDir: t.TempDir(), StatsFile: filepath.Join(t.TempDir(), "stats.json")}}
	require.NoError(t, a.open())
	defer a.close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := a.search(ctx, &out, model.ScanRequest{Root: root, Target: helloSHA256})
	assert.ErrorIs(t, err, ErrInterrupted)
}

func TestMenuSearch(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "hello")

	// search, "Other...", skip restricted "No", then exit
	answers := &menuAnswers{
		selects: []int{1, len(model.Locations()), 1, 2},
		inputs:  []string{helloSHA256, root},
	}

	out, err := execute(t, answers, "--log-dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "==== MATCHING FILES FOUND ====")
	assert.Contains(t, out, filepath.Join(root, "a.txt"))
	assert.Contains(t, out, "Exiting the program.")
}

func TestMenuHash(t *testing.T) {
	file := filepath.Join(t.TempDir(), "hello.txt")
	writeFile(t, file, "hello")

	answers := &menuAnswers{
		selects: []int{0, 0, 2},
		inputs:  []string{file},
	}

	out, err := execute(t, answers, "--log-dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, helloSHA256)
}

func TestMenuInterrupt(t *testing.T) {
	_, err := execute(t, &menuAnswers{}, "--log-dir", t.TempDir())
	assert.NoError(t, err)
}

func TestStatsRecordedAcrossCommands(t *testing.T) {
	logDir := t.TempDir()
	statsFile := filepath.Join(t.TempDir(), "stats.json")
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "hello")

	run := func(args ...string) string {
		a := &app{cfg: config.Config{}}
		cmd := newRootCmd("test", a)
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs(append([]string{"--no-color", "--plain", "--log-dir", logDir, "--stats-file", statsFile}, args...))
		require.NoError(t, cmd.Execute())
		return out.String()
	}

	run("search", "-r", root, helloSHA256)
	out := run("stats")
	assert.Contains(t, out, "Searches: 1")
	assert.Contains(t, out, "Matches found: 1")
	assert.Contains(t, out, "Last searched: "+root)
}

func TestSearchWritesNothingOutsideLogDir(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	logDir := t.TempDir()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "hello")

	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv(config.EnvStatsFile, "")
	t.Setenv(config.EnvLogDir, "")
	t.Setenv(logging.DebugEnv, "")
	chdirForTest(t, work)

	a := &app{cfg: config.FromEnv()}
	cmd := newRootCmd("test", a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--no-color", "--plain", "--log-dir", logDir, "search", "-r", root, helloSHA256})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), filepath.Join(root, "a.txt"))

	for _, dir := range []string{home, work} {
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries, dir)
	}
	rootEntries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, rootEntries, 1)

	logEntries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	var names []string
	for _, e := range logEntries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{logging.EventsFile, logging.SkipsFile}, names)
}

// chdirForTest mirrors testing.T.Chdir (Go 1.24+) for older toolchains:
// it changes the working directory and restores it when the test ends.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
