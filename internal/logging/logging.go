// Package logging provides the diagnostic sinks used by the scanner and the
// controller. Sinks are explicit handles: open them before the first scan and
// close them at process exit.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// File names inside the log directory
const (
	EventsFile = "hash_search_log.txt"
	SkipsFile  = "skipped_files_log.txt"
	DebugFile  = "debug.log"
)

// DebugEnv enables the debug sink when set to any non-empty value
const DebugEnv = "HASHSEEK_DEBUG"

// Sinks bundles the event log, the skip log and the debug log
type Sinks struct {
	Events zerolog.Logger // hashes, matches, scan completions
	Skips  zerolog.Logger // one warning per skipped entry
	Debug  zerolog.Logger

	closers []io.Closer
}

// Options controls where the sinks write
type Options struct {
	Dir   string // directory for the log files; empty means the working directory
	Debug bool
}

// Open creates (or appends to) the log files under opts.Dir
func Open(opts Options) (*Sinks, error) {
	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}

	s := &Sinks{}

	events, err := s.openFile(filepath.Join(opts.Dir, EventsFile))
	if err != nil {
		return nil, err
	}
	skips, err := s.openFile(filepath.Join(opts.Dir, SkipsFile))
	if err != nil {
		_ = s.Close()
		return nil, err
	}

	debug := io.Discard
	if opts.Debug {
		f, err := s.openFile(filepath.Join(opts.Dir, DebugFile))
		if err != nil {
			// Fall back to stderr if we can't open the file
			debug = os.Stderr
		} else {
			debug = f
		}
	}

	s.Events = newLogger(events, zerolog.InfoLevel)
	s.Skips = newLogger(skips, zerolog.WarnLevel)
	s.Debug = newLogger(debug, zerolog.DebugLevel)
	return s, nil
}

// NewWriters builds sinks over arbitrary writers. A nil writer discards.
func NewWriters(events, skips, debug io.Writer) *Sinks {
	return &Sinks{
		Events: newLogger(orDiscard(events), zerolog.InfoLevel),
		Skips:  newLogger(orDiscard(skips), zerolog.WarnLevel),
		Debug:  newLogger(orDiscard(debug), zerolog.DebugLevel),
	}
}

// Nop returns sinks that discard everything
func Nop() *Sinks {
	return &Sinks{
		Events: zerolog.Nop(),
		Skips:  zerolog.Nop(),
		Debug:  zerolog.Nop(),
	}
}

// With returns a copy of the sinks with key=value attached to every entry
func (s *Sinks) With(key, value string) *Sinks {
	return &Sinks{
		Events: s.Events.With().Str(key, value).Logger(),
		Skips:  s.Skips.With().Str(key, value).Logger(),
		Debug:  s.Debug.With().Str(key, value).Logger(),
	}
}

// Close flushes and closes the underlying files
func (s *Sinks) Close() error {
	var errs []error
	for _, c := range s.closers {
		if f, ok := c.(*os.File); ok {
			if err := f.Sync(); err != nil && !errors.Is(err, os.ErrClosed) {
				errs = append(errs, err)
			}
		}
		if err := c.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}

func (s *Sinks) openFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", path, err)
	}
	s.closers = append(s.closers, f)
	return f, nil
}

// newLogger writes "<timestamp> - <message> key=value" lines
func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	if w == io.Discard {
		return zerolog.Nop()
	}
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.DateTime,
		FormatLevel: func(i any) string {
			return "-"
		},
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
