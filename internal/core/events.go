package core

import (
	"github.com/lumipallolabs/hashseek/internal/model"
	"github.com/lumipallolabs/hashseek/internal/scanner"
)

// Event represents a state change from the controller
type Event interface {
	isEvent()
}

// ScanStartedEvent is emitted when a search begins
type ScanStartedEvent struct {
	Request model.ScanRequest
}

func (ScanStartedEvent) isEvent() {}

// ScanPhaseChangedEvent is emitted when the scanner changes phase
type ScanPhaseChangedEvent struct {
	Phase scanner.Phase
}

func (ScanPhaseChangedEvent) isEvent() {}

// ScanProgressEvent is emitted every 100 processed files
type ScanProgressEvent struct {
	Progress model.ProgressEvent
}

func (ScanProgressEvent) isEvent() {}

// ScanWarningEvent is emitted once at the end of a scan that skipped entries
type ScanWarningEvent struct {
	Warning model.Warning
}

func (ScanWarningEvent) isEvent() {}

// ScanCompletedEvent is emitted when the search finishes, successfully or not
type ScanCompletedEvent struct {
	Result *model.ScanResult
	Err    error
}

func (ScanCompletedEvent) isEvent() {}

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Err error
}

func (ErrorEvent) isEvent() {}

// eventObserver forwards scanner callbacks to an event channel
type eventObserver struct {
	ch chan<- Event
}

func (o eventObserver) OnPhase(p scanner.Phase) {
	o.ch <- ScanPhaseChangedEvent{Phase: p}
}

func (o eventObserver) OnProgress(ev model.ProgressEvent) {
	o.ch <- ScanProgressEvent{Progress: ev}
}

func (o eventObserver) OnWarning(w model.Warning) {
	o.ch <- ScanWarningEvent{Warning: w}
}

// OnComplete is a no-op; runSearch sends the completion event after logging
func (o eventObserver) OnComplete(*model.ScanResult) {}
