package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/lumipallolabs/hashseek/internal/digest"
	"github.com/lumipallolabs/hashseek/internal/model"
	"github.com/lumipallolabs/hashseek/internal/scanner"
)

var spinnerChars = []rune{'|', '/', '-', '\\'}

// PlainObserver writes a single updating progress line to w. It is used
// when stdout is not a terminal or the TUI is disabled.
type PlainObserver struct {
	scanner.NopObserver

	mu    sync.Mutex
	w     io.Writer
	frame int
	dirty bool
}

// NewPlainObserver returns an observer writing to w
func NewPlainObserver(w io.Writer) *PlainObserver {
	return &PlainObserver{w: w}
}

// OnPhase prints the phase name on its own line
func (o *PlainObserver) OnPhase(p scanner.Phase) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if p == scanner.PhaseIdle || p == scanner.PhaseDone {
		return
	}
	o.endLine()
	fmt.Fprintf(o.w, "%s...\n", p)
}

// OnProgress rewrites the progress line in place
func (o *PlainObserver) OnProgress(ev model.ProgressEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	c := spinnerChars[o.frame%len(spinnerChars)]
	o.frame++
	fmt.Fprintf(o.w, "\r%c Elapsed Time: %s | Processed: %d/%d    ",
		c, model.FormatElapsed(ev.Elapsed), ev.FilesProcessed, ev.TotalFilesEstimate)
	o.dirty = true
}

// OnComplete terminates the progress line
func (o *PlainObserver) OnComplete(*model.ScanResult) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.endLine()
}

func (o *PlainObserver) endLine() {
	if o.dirty {
		fmt.Fprintln(o.w)
		o.dirty = false
	}
}

// RenderHash writes the result of hashing a single file
func RenderHash(w io.Writer, path string, algo digest.Algorithm, sum string) {
	fmt.Fprintf(w, "%s %s\n", LabelStyle.Render("File:"), PathStyle.Render(path))
	fmt.Fprintf(w, "%s %s\n", LabelStyle.Render(strings.ToUpper(algo.String())+":"), HashStyle.Render(sum))
}

// RenderReport writes the end-of-search report: the skipped-files warning,
// then matches with their size and type, or a no-match notice
func RenderReport(w io.Writer, res *model.ScanResult, infos []model.MatchInfo) {
	if res == nil {
		return
	}

	if res.SkippedCount > 0 {
		warn := model.Warning{SkippedCount: res.SkippedCount, Reason: model.SkipReasonClass}
		fmt.Fprintln(w, WarningStyle.Render("==== WARNING ===="))
		fmt.Fprintf(w, "   %s\n\n", warn)
	}

	fmt.Fprintf(w, "%s %s | %s %d\n",
		LabelStyle.Render("Elapsed Time:"), model.FormatElapsed(res.Elapsed),
		LabelStyle.Render("Processed:"), res.FilesProcessed)

	if len(infos) == 0 {
		fmt.Fprintln(w, DangerStyle.Render("No matching files found."))
		return
	}

	fmt.Fprintln(w, MarkerStyle.Render("==== MATCHING FILES FOUND ===="))
	fmt.Fprintln(w, SuccessStyle.Render("Found the following matching files:"))
	for _, m := range infos {
		fmt.Fprintf(w, " - %s %s\n", PathStyle.Render(m.Path), LabelStyle.Render(describeMatch(m)))
	}
}
