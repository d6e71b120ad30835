package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Colors - cyberpunk/neon palette
var (
	ColorPrimary = lipgloss.Color("#C084FC") // soft violet
	ColorSuccess = lipgloss.Color("#39FF14") // neon green
	ColorDanger  = lipgloss.Color("#FF5555") // red
	ColorWarning = lipgloss.Color("#FBBF24") // amber
	ColorMuted   = lipgloss.Color("#6B7280")
	ColorCyan    = lipgloss.Color("#00FFFF") // neon cyan
	ColorText    = lipgloss.Color("#E4E4E7") // default text
)

// Styles
var (
	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)

	MarkerStyle = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	DangerStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	PathStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	MatchSelected = lipgloss.NewStyle().
			Background(ColorPrimary).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	HashStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)
)

// DisableColor switches every style to plain ASCII output
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// FormatSize formats bytes to human readable string
func FormatSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
		TB = GB * 1024
	)

	switch {
	case bytes >= TB:
		return fmt.Sprintf("%.1fTB", float64(bytes)/TB)
	case bytes >= GB:
		return fmt.Sprintf("%.1fGB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.1fMB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.1fKB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}
