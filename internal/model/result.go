package model

import (
	"fmt"
	"time"
)

// SkipReasonClass is the reason class surfaced with the skipped-files warning
const SkipReasonClass = "permission errors or device files"

// ScanResult is the outcome of one scan. It is not modified after being returned.
type ScanResult struct {
	ID                 string
	Root               string
	Matches            []string // in traversal discovery order
	SkippedCount       int
	SkippedByKind      map[SkipKind]int
	Elapsed            time.Duration
	FilesProcessed     int
	FilesHashed        int // regular files digested successfully
	TotalFilesEstimate int
}

// ProgressEvent is emitted every N processed files
type ProgressEvent struct {
	Elapsed            time.Duration
	FilesProcessed     int
	TotalFilesEstimate int
}

// Fraction returns processed/estimate clamped to [0, 1]
func (p ProgressEvent) Fraction() float64 {
	if p.TotalFilesEstimate <= 0 {
		return 0
	}
	f := float64(p.FilesProcessed) / float64(p.TotalFilesEstimate)
	if f > 1 {
		return 1
	}
	return f
}

// Warning is the end-of-scan notice raised when entries were skipped
type Warning struct {
	SkippedCount int
	Reason       string
}

// String returns the warning text
func (w Warning) String() string {
	return fmt.Sprintf("%d files were skipped due to %s.", w.SkippedCount, w.Reason)
}

// MatchInfo decorates a matching path for display
type MatchInfo struct {
	Path     string
	Size     int64
	MIMEType string
}

// FormatElapsed formats a duration as HH:MM:SS
func FormatElapsed(d time.Duration) string {
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}
