// Package tui is the interactive calculator: a tool picker, an editable
// form and a results panel driven by a session.Calculator.
package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	ColorHeader    = lipgloss.Color("39")
	ColorBorder    = lipgloss.Color("240")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("252")
	ColorHighlight = lipgloss.Color("212")
	ColorMuted     = lipgloss.Color("241")
	ColorOK        = lipgloss.Color("42")
	ColorError     = lipgloss.Color("196")
)

// Row markers.
const (
	IconFocused = "→"
	IconEditing = ">"
	IconTotal   = "★"
)

//nolint:gochecknoglobals // Shared render styles.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeader).
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
	headerStyle    = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	labelStyle     = lipgloss.NewStyle().Foreground(ColorLabel)
	valueStyle     = lipgloss.NewStyle().Foreground(ColorValue)
	highlightStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	totalStyle     = lipgloss.NewStyle().Foreground(ColorOK).Bold(true)
	errorStyle     = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
)
