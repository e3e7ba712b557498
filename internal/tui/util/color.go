package util

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
	if explicit {
		return true
	}
	return os.Getenv("NO_COLOR") != ""
}

// Palette defines the colors shared by the diff renderers and widgets.
type Palette struct {
	Added   lipgloss.AdaptiveColor
	Removed lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor
	Accent  lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
}

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
	return Palette{
		Added:   lipgloss.AdaptiveColor{Light: "28", Dark: "114"},
		Removed: lipgloss.AdaptiveColor{Light: "160", Dark: "203"},
		Muted:   lipgloss.AdaptiveColor{Light: "245", Dark: "240"},
		Accent:  lipgloss.AdaptiveColor{Light: "205", Dark: "213"},
		Warning: lipgloss.AdaptiveColor{Light: "130", Dark: "214"},
	}
}
