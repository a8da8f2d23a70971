package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	PromptMarker *lipgloss.Style
	Muted        *lipgloss.Style
	Underline    *lipgloss.Style
	Status       *lipgloss.Style
	Error        *lipgloss.Style
	Footer       *lipgloss.Style
}

var defaultStyles = Styles{
	PromptMarker: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	),
	Muted: ptr(
		lipgloss.NewStyle().Faint(true).Italic(true),
	),
	Underline: ptr(
		lipgloss.NewStyle().Underline(true),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
