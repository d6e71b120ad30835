package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/lumipallolabs/hashseek/internal/digest"
	"github.com/lumipallolabs/hashseek/internal/logging"
	"github.com/lumipallolabs/hashseek/internal/model"
	"github.com/lumipallolabs/hashseek/internal/scanner"
)

// ErrNotAFile is returned by HashFile for missing paths and non-regular files
var ErrNotAFile = errors.New("file does not exist")

// Controller runs the hash-file and hash-search flows without UI dependencies
type Controller struct {
	mu sync.RWMutex

	scan ScanState
	last *model.ScanResult

	sinks   *logging.Sinks
	engine  *digest.Engine
	scanner scanner.Scanner
}

// NewController creates a controller that logs to sinks. Scanner options are
// passed through to the walker.
func NewController(sinks *logging.Sinks, opts ...scanner.Option) *Controller {
	if sinks == nil {
		sinks = logging.Nop()
	}
	return &Controller{
		sinks:   sinks,
		engine:  digest.NewEngine(sinks.Events),
		scanner: scanner.NewWalker(sinks, opts...),
	}
}

// ScanState returns the current scan state
func (c *Controller) ScanState() ScanState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scan
}

// LastResult returns the result of the most recent successful search
func (c *Controller) LastResult() *model.ScanResult {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last
}

// HashFile computes the digest of a single regular file. An empty algorithm
// name selects SHA256.
func (c *Controller) HashFile(path, algorithm string) (string, digest.Algorithm, error) {
	algo, err := digest.ParseAlgorithm(algorithm)
	if err != nil {
		return "", digest.Unspecified, err
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", algo, fmt.Errorf("%w: %s", ErrNotAFile, path)
	}

	sum, err := c.engine.File(path, algo)
	if err != nil {
		return "", algo, err
	}

	c.sinks.Events.Info().
		Str("path", path).
		Str("algorithm", algo.String()).
		Str("hash", sum).
		Msg("File hashed")
	return sum, algo, nil
}

// Prepare validates a search request: it normalizes the target digest,
// infers the algorithm when unspecified and defaults the root to the
// working directory.
func (c *Controller) Prepare(req model.ScanRequest) (model.ScanRequest, error) {
	req, err := req.Normalize()
	if err != nil {
		return req, err
	}
	if req.Root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return req, fmt.Errorf("%w: %w", scanner.ErrInvalidRoot, err)
		}
		req.Root = cwd
	}
	return req, nil
}

// Search validates req and runs the scan synchronously, reporting to obs
func (c *Controller) Search(ctx context.Context, req model.ScanRequest, obs scanner.Observer) (*model.ScanResult, error) {
	req, err := c.Prepare(req)
	if err != nil {
		return nil, err
	}
	return c.search(ctx, req, obs)
}

// StartSearch validates req and runs the scan in a goroutine. Validation
// failures are returned before any work starts; everything after that is
// delivered on the returned channel, which is closed when the scan ends.
func (c *Controller) StartSearch(ctx context.Context, req model.ScanRequest) (<-chan Event, error) {
	req, err := c.Prepare(req)
	if err != nil {
		return nil, err
	}

	eventCh := make(chan Event, 100)
	go c.runSearch(ctx, req, eventCh)
	return eventCh, nil
}

// runSearch executes the scan in a goroutine
func (c *Controller) runSearch(ctx context.Context, req model.ScanRequest, eventCh chan Event) {
	defer close(eventCh)

	eventCh <- ScanStartedEvent{Request: req}

	res, err := c.search(ctx, req, eventObserver{ch: eventCh})
	if err != nil {
		eventCh <- ScanCompletedEvent{Err: err}
		eventCh <- ErrorEvent{Err: err}
		return
	}
	eventCh <- ScanCompletedEvent{Result: res}
}

func (c *Controller) search(ctx context.Context, req model.ScanRequest, obs scanner.Observer) (*model.ScanResult, error) {
	c.mu.Lock()
	c.scan = ScanState{Phase: scanner.PhaseIdle, StartTime: time.Now()}
	c.mu.Unlock()

	if obs == nil {
		obs = scanner.NopObserver{}
	}
	res, err := c.scanner.Scan(ctx, req, stateObserver{ctrl: c, next: obs})
	if err != nil {
		c.setPhase(scanner.PhaseIdle)
		return nil, err
	}

	if len(res.Matches) == 0 {
		c.sinks.Events.Info().
			Str("scan", res.ID).
			Str("algorithm", req.Algorithm.String()).
			Str("hash", req.Target).
			Msg("No matches found")
	}

	c.mu.Lock()
	c.last = res
	c.scan.FilesProcessed = res.FilesProcessed
	c.scan.TotalFilesEstimate = res.TotalFilesEstimate
	c.mu.Unlock()

	return res, nil
}

func (c *Controller) setPhase(p scanner.Phase) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scan.Phase = p
}

func (c *Controller) setProgress(ev model.ProgressEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scan.FilesProcessed = ev.FilesProcessed
	c.scan.TotalFilesEstimate = ev.TotalFilesEstimate
}

// stateObserver keeps ScanState current before handing events on
type stateObserver struct {
	ctrl *Controller
	next scanner.Observer
}

func (o stateObserver) OnPhase(p scanner.Phase) {
	o.ctrl.setPhase(p)
	o.next.OnPhase(p)
}

func (o stateObserver) OnProgress(ev model.ProgressEvent) {
	o.ctrl.setProgress(ev)
	o.next.OnProgress(ev)
}

func (o stateObserver) OnWarning(w model.Warning) {
	o.next.OnWarning(w)
}

func (o stateObserver) OnComplete(res *model.ScanResult) {
	o.next.OnComplete(res)
}
