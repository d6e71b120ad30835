package core

import (
	"time"

	"github.com/lumipallolabs/hashseek/internal/scanner"
)

// ScanState holds the current scan state
type ScanState struct {
	Phase              scanner.Phase
	StartTime          time.Time
	FilesProcessed     int
	TotalFilesEstimate int
}

// IsScanning returns true while a scan is between start and completion
func (s ScanState) IsScanning() bool {
	switch s.Phase {
	case scanner.PhaseCounting, scanner.PhaseTraversing, scanner.PhaseFinalizing:
		return true
	default:
		return false
	}
}

// Elapsed returns time since scan started
func (s ScanState) Elapsed() time.Duration {
	if s.StartTime.IsZero() {
		return 0
	}
	return time.Since(s.StartTime).Truncate(time.Second)
}
