package digest

import (
	"bytes"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helloSHA256 = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"

func TestEngineFileKnownDigests(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	e := NewEngine(zerolog.Nop())

	sum, err := e.File(path, SHA256)
	require.NoError(t, err)
	assert.Equal(t, helloSHA256, sum)

	sum, err = e.File(path, MD5)
	require.NoError(t, err)
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", sum)
}

func TestEngineFileDeterministic(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "data.bin")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte{0xAB, 0x01}, 10000), 0644))

	e := NewEngine(zerolog.Nop())
	for _, algo := range []Algorithm{MD5, SHA256} {
		first, err := e.File(path, algo)
		require.NoError(t, err)
		second, err := e.File(path, algo)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Len(t, first, algo.HexLen())
	}
}

func TestChunkingDoesNotAffectDigest(t *testing.T) {
	for _, size := range []int{0, 1, 4095, 4096, 4097} {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i * 31)
		}
		shaRef := sha256.Sum256(data)
		md5Ref := md5.Sum(data)

		for _, chunk := range []int{1, 7, 1024, ChunkSize, 3 * ChunkSize} {
			got, err := sumChunked(bytes.NewReader(data), SHA256, chunk)
			require.NoError(t, err)
			assert.Equal(t, hex.EncodeToString(shaRef[:]), got, "size=%d chunk=%d", size, chunk)

			got, err = sumChunked(bytes.NewReader(data), MD5, chunk)
			require.NoError(t, err)
			assert.Equal(t, hex.EncodeToString(md5Ref[:]), got, "size=%d chunk=%d", size, chunk)
		}
	}
}

func TestEngineFileBoundarySizes(t *testing.T) {
	tmp := t.TempDir()
	e := NewEngine(zerolog.Nop())

	for _, size := range []int{0, 1, 4095, 4096, 4097} {
		data := bytes.Repeat([]byte("x"), size)
		path := filepath.Join(tmp, "f")
		require.NoError(t, os.WriteFile(path, data, 0644))

		got, err := e.File(path, SHA256)
		require.NoError(t, err)

		want, err := Sum(bytes.NewReader(data), SHA256)
		require.NoError(t, err)
		assert.Equal(t, want, got, "size=%d", size)
	}
}

func TestEngineFileMissing(t *testing.T) {
	e := NewEngine(zerolog.Nop())
	_, err := e.File(filepath.Join(t.TempDir(), "nope"), SHA256)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEngineFileDirectoryIsIOError(t *testing.T) {
	var logBuf bytes.Buffer
	e := NewEngine(zerolog.New(&logBuf))

	_, err := e.File(t.TempDir(), SHA256)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
	assert.Contains(t, logBuf.String(), "Error hashing file")
}

func TestEngineFilePermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses file permissions")
	}
	path := filepath.Join(t.TempDir(), "secret")
	require.NoError(t, os.WriteFile(path, []byte("s"), 0000))

	var logBuf bytes.Buffer
	e := NewEngine(zerolog.New(&logBuf))

	_, err := e.File(path, SHA256)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.NotErrorIs(t, err, ErrIO)
	assert.Empty(t, logBuf.String())
}

func TestEngineFileInvalidAlgorithm(t *testing.T) {
	e := NewEngine(zerolog.Nop())
	_, err := e.File("whatever", Unspecified)
	assert.ErrorIs(t, err, ErrInvalidAlgorithm)
}
