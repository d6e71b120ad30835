package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/google/uuid"
	"github.com/lumipallolabs/hashseek/internal/digest"
	"github.com/lumipallolabs/hashseek/internal/logging"
	"github.com/lumipallolabs/hashseek/internal/model"
)

// Walker implements a single-threaded hash search over a directory tree
type Walker struct {
	sinks         *logging.Sinks
	protected     []string
	classify      Classifier
	progressEvery int
}

// Option configures a Walker
type Option func(*Walker)

// WithProtectedPrefixes replaces the platform's protected prefix set
func WithProtectedPrefixes(prefixes ...string) Option {
	return func(w *Walker) {
		w.protected = prefixes
	}
}

// WithClassifier replaces the stat-based entry classifier
func WithClassifier(c Classifier) Option {
	return func(w *Walker) {
		w.classify = c
	}
}

// WithProgressEvery sets the number of processed files between progress events
func WithProgressEvery(n int) Option {
	return func(w *Walker) {
		w.progressEvery = n
	}
}

// NewWalker creates a walker that reports to sinks
func NewWalker(sinks *logging.Sinks, opts ...Option) *Walker {
	if sinks == nil {
		sinks = logging.Nop()
	}
	w := &Walker{
		sinks:         sinks,
		protected:     DefaultProtectedPrefixes(),
		classify:      Classify,
		progressEvery: DefaultProgressEvery,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.progressEvery < 1 {
		w.progressEvery = DefaultProgressEvery
	}
	return w
}

// scanState is owned by one Scan call
type scanState struct {
	req    model.ScanRequest
	root   string
	start  time.Time
	obs    Observer
	log    *logging.Sinks
	engine *digest.Engine
	every  int
	result *model.ScanResult
}

// Scan runs the counting pass and then the matching pass over req.Root.
// It blocks until the whole tree has been visited. Per-entry failures are
// recorded as skips; only an unusable root or a cancelled ctx fail the call.
func (w *Walker) Scan(ctx context.Context, req model.ScanRequest, obs Observer) (*model.ScanResult, error) {
	if obs == nil {
		obs = NopObserver{}
	}
	start := time.Now()

	if _, err := req.Algorithm.New(); err != nil {
		return nil, err
	}
	req.Target = digest.NormalizeDigest(req.Target)
	root, err := resolveRoot(req.Root)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	log := w.sinks.With("scan", id)
	st := &scanState{
		req:    req,
		root:   root,
		start:  start,
		obs:    obs,
		log:    log,
		engine: digest.NewEngine(log.Events),
		every:  w.progressEvery,
		result: &model.ScanResult{
			ID:            id,
			Root:          root,
			Matches:       []string{},
			SkippedByKind: make(map[model.SkipKind]int),
		},
	}

	log.Events.Info().
		Str("root", root).
		Str("algorithm", req.Algorithm.String()).
		Str("hash", req.Target).
		Bool("skip_restricted", req.SkipRestricted).
		Msg("Scan started")

	obs.OnPhase(PhaseCounting)
	total, err := w.count(ctx, root, req.SkipRestricted)
	if err != nil {
		return nil, err
	}
	st.result.TotalFilesEstimate = total
	log.Debug.Debug().Int("total", total).Msg("Counting complete")

	obs.OnPhase(PhaseTraversing)
	if err := w.traverse(ctx, st); err != nil {
		return nil, err
	}

	obs.OnPhase(PhaseFinalizing)
	res := st.result
	res.Elapsed = time.Since(start)

	if res.SkippedCount > 0 {
		log.Events.Info().
			Int("skipped", res.SkippedCount).
			Msgf("Skipped %d files due to permission issues or being device files.", res.SkippedCount)
		obs.OnWarning(model.Warning{SkippedCount: res.SkippedCount, Reason: model.SkipReasonClass})
	}

	log.Events.Info().
		Int("matches", len(res.Matches)).
		Int("processed", res.FilesProcessed).
		Int("hashed", res.FilesHashed).
		Int("skipped", res.SkippedCount).
		Str("elapsed", model.FormatElapsed(res.Elapsed)).
		Msg("Scan complete")

	obs.OnPhase(PhaseDone)
	obs.OnComplete(res)
	return res, nil
}

// resolveRoot returns the absolute root, defaulting to the working directory
func resolveRoot(root string) (string, error) {
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidRoot, err)
		}
		root = cwd
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInvalidRoot, root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInvalidRoot, abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, abs)
	}

	f, err := os.Open(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInvalidRoot, abs, err)
	}
	f.Close()

	return abs, nil
}

// count returns the number of non-directory entries below root. It neither
// classifies nor hashes.
func (w *Walker) count(ctx context.Context, root string, skipRestricted bool) (int, error) {
	conf := &fastwalk.Config{
		Follow:     false, // Don't follow symlinks
		NumWorkers: 1,
	}

	total := 0
	err := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			return nil // Skip entries with errors
		}
		if d.IsDir() {
			if skipRestricted && isProtected(path, w.protected) {
				return fs.SkipDir
			}
			return nil
		}
		total++
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidRoot, root, err)
	}
	return total, nil
}

// traverse visits the tree depth-first in lexical order
func (w *Walker) traverse(ctx context.Context, st *scanState) error {
	walkRoot := st.root
	if info, err := os.Lstat(walkRoot); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		// A trailing separator makes WalkDir descend into a linked root
		walkRoot += string(os.PathSeparator)
	}

	return filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if d == nil {
				return fmt.Errorf("%w: %s: %w", ErrInvalidRoot, path, err)
			}
			// Directory could not be listed; keep going with its siblings
			st.skip(path, model.SkipInaccessible, err.Error())
			return nil
		}

		if d.IsDir() {
			if st.req.SkipRestricted && isProtected(path, w.protected) {
				st.log.Debug.Debug().Str("path", path).Msg("Excluding protected directory")
				return fs.SkipDir
			}
			return nil
		}

		w.visitFile(st, path)
		return nil
	})
}

// visitFile classifies one non-directory entry and compares its digest
func (w *Walker) visitFile(st *scanState, path string) {
	entry := w.classify(path)

	switch entry.Kind {
	case model.SpecialOrDevice:
		st.skip(path, model.SkipDevice, entry.Detail)
	case model.Inaccessible:
		st.skip(path, model.SkipInaccessible, entry.Detail)
	case model.Directory:
		// Symlink to a directory; links are not followed
		st.log.Debug.Debug().Str("path", path).Msg("Not following directory link")
	case model.Regular:
		st.compare(path)
	}

	st.processed()
}

func (st *scanState) compare(path string) {
	sum, err := st.engine.File(path, st.req.Algorithm)
	if err != nil {
		kind := model.SkipIO
		if errors.Is(err, digest.ErrPermissionDenied) {
			kind = model.SkipPermission
		}
		st.skip(path, kind, err.Error())
		return
	}

	st.result.FilesHashed++
	st.log.Debug.Debug().Str("path", path).Str("hash", sum).Msg("File hashed")

	if sum == st.req.Target {
		st.result.Matches = append(st.result.Matches, path)
		st.log.Events.Info().
			Str("path", path).
			Str("algorithm", st.req.Algorithm.String()).
			Str("hash", sum).
			Msg("Match found")
	}
}

func (st *scanState) skip(path string, kind model.SkipKind, reason string) {
	rec := model.SkipRecord{Path: path, Kind: kind, Reason: reason}
	st.result.SkippedCount++
	st.result.SkippedByKind[rec.Kind]++

	st.log.Skips.Warn().
		Str("path", rec.Path).
		Str("kind", rec.Kind.String()).
		Str("reason", rec.Reason).
		Msg(rec.Message())
}

// processed counts one file entry and emits a progress event on the cadence
func (st *scanState) processed() {
	st.result.FilesProcessed++
	if st.result.FilesProcessed%st.every != 0 {
		return
	}
	st.obs.OnProgress(model.ProgressEvent{
		Elapsed:            time.Since(st.start),
		FilesProcessed:     st.result.FilesProcessed,
		TotalFilesEstimate: st.result.TotalFilesEstimate,
	})
}

// Ensure Walker implements Scanner
var _ Scanner = (*Walker)(nil)
