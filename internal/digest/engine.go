// Package digest computes streaming cryptographic digests of files.
package digest

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
)

// ChunkSize is the number of bytes fed to the hash per read
const ChunkSize = 4096

var (
	// ErrPermissionDenied is returned when the OS rejects opening or reading a file
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIO covers every other failure while reading a file
	ErrIO = errors.New("io error")
)

// Engine hashes files in constant memory
type Engine struct {
	log zerolog.Logger
}

// NewEngine creates an engine that reports IO failures to log
func NewEngine(log zerolog.Logger) *Engine {
	return &Engine{log: log}
}

// File returns the lowercase hex digest of the file at path
func (e *Engine) File(path string, algo Algorithm) (string, error) {
	h, err := algo.New()
	if err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", e.fail(path, err)
	}
	defer f.Close()

	if err := feed(h, f, ChunkSize); err != nil {
		return "", e.fail(path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// fail maps an OS error onto the digest taxonomy. Permission errors are
// expected during system-wide scans and are not logged here.
func (e *Engine) fail(path string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("digest %s: %w: %w", path, ErrPermissionDenied, err)
	}
	e.log.Error().Err(err).Str("path", path).Msg("Error hashing file")
	return fmt.Errorf("digest %s: %w: %w", path, ErrIO, err)
}

// Sum returns the lowercase hex digest of everything read from r
func Sum(r io.Reader, algo Algorithm) (string, error) {
	return sumChunked(r, algo, ChunkSize)
}

func sumChunked(r io.Reader, algo Algorithm, size int) (string, error) {
	h, err := algo.New()
	if err != nil {
		return "", err
	}
	if err := feed(h, r, size); err != nil {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// feed copies r into w through a single buffer of size bytes
func feed(w io.Writer, r io.Reader, size int) error {
	buf := make([]byte, size)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
