package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for all ANSI 256 colors used in the CLI. Use these named
// constants instead of inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: project names, file paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" artifact status.
	ColorGreen = lipgloss.Color("82")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Styles maps domain concepts to visual presentation.
type Styles struct {
	// Noun styles identifiable nouns (project names, file paths).
	Noun lipgloss.Style

	// Bold styles headings and the tree root.
	Bold lipgloss.Style

	// Muted styles structural chrome (descriptions, separators).
	Muted lipgloss.Style

	// Summary styles completion and summary lines.
	Summary lipgloss.Style
}

// GetStyles returns the shared style set.
func GetStyles() Styles {
	return Styles{
		Noun:    lipgloss.NewStyle().Foreground(ColorCyan),
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Faint(true),
		Summary: lipgloss.NewStyle().Bold(true),
	}
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
