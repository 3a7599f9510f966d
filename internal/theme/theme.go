// Package theme defines the color palettes used when rendering status
// lines.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme holds one color per semantic line category, plus a dim variant
// used for icons when the secondary icon color is enabled.
type Theme struct {
	Path   lipgloss.Color
	Git    lipgloss.Color
	Clock  lipgloss.Color
	System lipgloss.Color
	Dim    lipgloss.Color
	Warn   lipgloss.Color
}

// Theme names.
const (
	DefaultName = "default"
	LightName   = "light"
)

// Default returns the standard dark-terminal palette.
func Default() *Theme {
	return &Theme{
		Path:   lipgloss.Color("#8BE9FD"), // cyan
		Git:    lipgloss.Color("#50FA7B"), // green
		Clock:  lipgloss.Color("#BD93F9"), // purple
		System: lipgloss.Color("#F1FA8C"), // yellow
		Dim:    lipgloss.Color("#6272A4"), // muted blue-grey
		Warn:   lipgloss.Color("#FFB86C"), // orange
	}
}

// Light returns a palette readable on light backgrounds.
func Light() *Theme {
	return &Theme{
		Path:   lipgloss.Color("#0184BC"),
		Git:    lipgloss.Color("#50A14F"),
		Clock:  lipgloss.Color("#A626A4"),
		System: lipgloss.Color("#C18401"),
		Dim:    lipgloss.Color("#A0A1A7"),
		Warn:   lipgloss.Color("#CA1243"),
	}
}

// AvailableThemes lists the selectable theme names.
func AvailableThemes() []string {
	return []string{DefaultName, LightName}
}

// ByName returns the theme for a name, falling back to the default
// palette for unknown names.
func ByName(name string) *Theme {
	switch name {
	case LightName:
		return Light()
	default:
		return Default()
	}
}
