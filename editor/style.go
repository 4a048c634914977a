package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Gutter           lipgloss.Style
	GutterActiveLine lipgloss.Style
	LineNum          lipgloss.Style
	LineNumActive    lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	Menu         lipgloss.Style
	MenuItem     lipgloss.Style
	MenuSelected lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:           gutter,
		GutterActiveLine: lipgloss.NewStyle().Background(lipgloss.Color("236")),
		LineNum:          gutter,
		LineNumActive:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:             lipgloss.NewStyle(),
		Selection:        lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:           lipgloss.NewStyle().Reverse(true),
		Menu:             lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
		MenuItem:         lipgloss.NewStyle(),
		MenuSelected:     lipgloss.NewStyle().Reverse(true),
	}
}
