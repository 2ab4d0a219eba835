package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorError = lipgloss.Color("#EF4444")
	colorWarn  = lipgloss.Color("#EAB308")
	colorMuted = lipgloss.Color("#6B7280")
	colorFocus = lipgloss.Color("#3B82F6")
	colorText  = lipgloss.Color("#E5E7EB")
)

var (
	styleBar = lipgloss.NewStyle().
			Padding(0, 1)

	styleSegment = lipgloss.NewStyle().
			Foreground(colorText)

	styleSegmentFocused = lipgloss.NewStyle().
				Foreground(colorFocus).
				Bold(true)

	styleSegmentError = lipgloss.NewStyle().
				Foreground(colorError).
				Bold(true)

	styleSegmentWarn = lipgloss.NewStyle().
				Foreground(colorWarn)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleTooltip = lipgloss.NewStyle().
			Foreground(colorText).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1).
			MarginLeft(1)

	styleToast = lipgloss.NewStyle().
			Foreground(colorError).
			MarginLeft(1)

	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	styleModal = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorFocus).
			Padding(0, 2)

	styleModalTitle = lipgloss.NewStyle().
			Foreground(colorFocus).
			Bold(true)
)

// SetAccent overrides the accent color used for focused segments, the modal
// border, and the modal title. Called once during startup, before Run.
func SetAccent(hex string) {
	if hex == "" {
		return
	}
	colorFocus = lipgloss.Color(hex)
	styleSegmentFocused = styleSegmentFocused.Foreground(colorFocus)
	styleModal = styleModal.BorderForeground(colorFocus)
	styleModalTitle = styleModalTitle.Foreground(colorFocus)
}

// segmentStyle picks the slot segment style from its text: the uniform
// error indicator renders red, the unmeasurable latency indicator renders
// yellow, focus renders accented.
func segmentStyle(text string, focused bool) lipgloss.Style {
	switch {
	case text == "Error":
		return styleSegmentError
	case strings.HasSuffix(text, "?ms"):
		return styleSegmentWarn
	case focused:
		return styleSegmentFocused
	default:
		return styleSegment
	}
}
