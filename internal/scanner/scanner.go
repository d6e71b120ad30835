package scanner

import (
	"context"
	"errors"

	"github.com/lumipallolabs/hashseek/internal/model"
)

// ErrInvalidRoot is returned when the scan root does not exist or cannot be traversed
var ErrInvalidRoot = errors.New("invalid root")

// DefaultProgressEvery is the number of processed files between progress events
const DefaultProgressEvery = 100

// Phase is a step of the scanner state machine
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCounting
	PhaseTraversing
	PhaseFinalizing
	PhaseDone
)

// String returns a human-readable phase name
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return ""
	case PhaseCounting:
		return "Counting files"
	case PhaseTraversing:
		return "Searching for matching files"
	case PhaseFinalizing:
		return "Finalizing"
	case PhaseDone:
		return "Complete"
	default:
		return ""
	}
}

// Observer receives scan events inline, on the scanning goroutine
type Observer interface {
	OnPhase(p Phase)
	OnProgress(ev model.ProgressEvent)
	OnWarning(w model.Warning)
	OnComplete(res *model.ScanResult)
}

// NopObserver ignores all events. Embed it to implement only some methods.
type NopObserver struct{}

func (NopObserver) OnPhase(Phase)                  {}
func (NopObserver) OnProgress(model.ProgressEvent) {}
func (NopObserver) OnWarning(model.Warning)        {}
func (NopObserver) OnComplete(*model.ScanResult)   {}

// Scanner defines the interface for hash searches over a directory tree
type Scanner interface {
	// Scan walks req.Root and returns the files whose digest equals req.Target.
	// req.Algorithm must be set.
	Scan(ctx context.Context, req model.ScanRequest, obs Observer) (*model.ScanResult, error)
}
