// Package ui renders search progress and results for the terminal.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lumipallolabs/hashseek/internal/core"
	"github.com/lumipallolabs/hashseek/internal/model"
	"github.com/lumipallolabs/hashseek/internal/scanner"
)

const progressBarWidth = 40

// scanEventMsg wraps any scan event for continued listening
type scanEventMsg struct {
	event core.Event
}

// scanClosedMsg is sent once the event channel is drained
type scanClosedMsg struct{}

// SearchApp is the Bubble Tea model shown while a search runs and, when
// there are matches, afterwards to browse them
type SearchApp struct {
	ctrl    *core.Controller
	eventCh <-chan core.Event

	spinner  spinner.Model
	progress progress.Model
	help     help.Model
	keys     KeyMap

	phase   scanner.Phase
	last    model.ProgressEvent
	warning *model.Warning
	result  *model.ScanResult
	matches []model.MatchInfo
	cursor  int
	err     error

	interrupted bool
	status      string
}

// NewSearchApp creates the model for a search already started with
// Controller.StartSearch
func NewSearchApp(ctrl *core.Controller, eventCh <-chan core.Event) SearchApp {
	return SearchApp{
		ctrl:    ctrl,
		eventCh: eventCh,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)),
		),
		progress: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(progressBarWidth),
		),
		help: help.New(),
		keys: DefaultKeyMap(),
	}
}

// Result returns the finished scan, or nil
func (a SearchApp) Result() *model.ScanResult {
	return a.result
}

// Err returns the error that ended the scan, if any
func (a SearchApp) Err() error {
	return a.err
}

// Interrupted reports whether the user quit before the scan finished
func (a SearchApp) Interrupted() bool {
	return a.interrupted
}

// Init implements tea.Model
func (a SearchApp) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.listenForScanEvents())
}

// Update implements tea.Model
func (a SearchApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.help.Width = msg.Width
		if w := msg.Width - 8; w < progressBarWidth {
			a.progress.Width = max(w, 10)
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case spinner.TickMsg:
		if a.result != nil || a.err != nil {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case scanEventMsg:
		return a.handleScanEvent(msg.event)

	case scanClosedMsg:
		return a, nil
	}
	return a, nil
}

// handleScanEvent processes scan events and continues listening
func (a SearchApp) handleScanEvent(event core.Event) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case core.ScanPhaseChangedEvent:
		a.phase = e.Phase
	case core.ScanProgressEvent:
		a.last = e.Progress
	case core.ScanWarningEvent:
		w := e.Warning
		a.warning = &w
	case core.ScanCompletedEvent:
		if e.Err != nil {
			a.err = e.Err
			return a, tea.Quit
		}
		a.result = e.Result
		a.matches = core.Describe(e.Result.Matches)
		if len(a.matches) == 0 {
			return a, tea.Quit
		}
	}
	return a, a.listenForScanEvents()
}

// listenForScanEvents creates a command that listens for scan events
func (a SearchApp) listenForScanEvents() tea.Cmd {
	if a.eventCh == nil {
		return nil
	}
	eventCh := a.eventCh
	return func() tea.Msg {
		event, ok := <-eventCh
		if !ok {
			return scanClosedMsg{}
		}
		return scanEventMsg{event: event}
	}
}

// handleKey handles keyboard input
func (a SearchApp) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		if a.result == nil && a.err == nil {
			a.interrupted = true
		}
		return a, tea.Quit

	case a.result == nil:
		return a, nil

	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(a.matches)-1 {
			a.cursor++
		}
	case key.Matches(msg, a.keys.Open):
		path := a.matches[a.cursor].Path
		if err := openInFileManager(path); err != nil {
			a.status = DangerStyle.Render(fmt.Sprintf("Could not open %s: %v", path, err))
		} else {
			a.status = LabelStyle.Render("Opened " + path)
		}
	}
	return a, nil
}

// View implements tea.Model
func (a SearchApp) View() string {
	if a.err != nil || a.interrupted {
		return ""
	}
	if a.result != nil {
		return a.renderMatches()
	}
	return a.renderScanning()
}

// renderScanning renders the phase, progress bar and counters
func (a SearchApp) renderScanning() string {
	phase := a.phase.String()
	if phase == "" {
		phase = "Starting"
	}

	elapsed := a.last.Elapsed
	if a.ctrl != nil {
		elapsed = a.ctrl.ScanState().Elapsed()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", a.spinner.View(), MarkerStyle.Render(phase+"..."))

	if a.phase == scanner.PhaseTraversing || a.phase == scanner.PhaseFinalizing {
		b.WriteString("  " + a.progress.ViewAs(a.last.Fraction()) + "\n\n")
	}

	fmt.Fprintf(&b, "  %s %s  %s %s\n",
		LabelStyle.Render("Elapsed Time:"),
		model.FormatElapsed(elapsed),
		LabelStyle.Render("Processed:"),
		fmt.Sprintf("%d/%d", a.last.FilesProcessed, a.last.TotalFilesEstimate))

	b.WriteString("\n" + a.help.ShortHelpView([]key.Binding{a.keys.Quit}) + "\n")
	return b.String()
}

// renderMatches renders the navigable match list
func (a SearchApp) renderMatches() string {
	var b strings.Builder

	if a.warning != nil {
		b.WriteString(WarningStyle.Render("==== WARNING ====") + "\n")
		b.WriteString("   " + a.warning.String() + "\n\n")
	}

	b.WriteString(MarkerStyle.Render("==== MATCHING FILES FOUND ====") + "\n")
	for i, m := range a.matches {
		line := fmt.Sprintf(" - %s  %s", m.Path, LabelStyle.Render(describeMatch(m)))
		if i == a.cursor {
			line = MatchSelected.Render(fmt.Sprintf(" - %s", m.Path)) + "  " + LabelStyle.Render(describeMatch(m))
		}
		b.WriteString(line + "\n")
	}

	if a.status != "" {
		b.WriteString("\n" + a.status + "\n")
	}
	b.WriteString("\n" + a.help.View(a.keys) + "\n")
	return b.String()
}

func describeMatch(m model.MatchInfo) string {
	return fmt.Sprintf("(%s, %s)", m.MIMEType, FormatSize(m.Size))
}
