package editor

import "github.com/charmbracelet/lipgloss"

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	// TabWidth defaults to 4.
	TabWidth int

	// LivePreview starts the editor in live-preview display mode.
	LivePreview bool

	KeyMap   KeyMap
	ReadOnly bool

	// Extensions installs view plugins and gutters.
	Extensions []Extension

	// GutterStyleForKey resolves GutterSegment.StyleKey. Keys it does not
	// know fall back to the built-in "line_num" and "line_num_active".
	GutterStyleForKey func(key string) (lipgloss.Style, bool)
	// LineStyleForClass styles whole lines by syntax line class while live
	// preview is on.
	LineStyleForClass func(class string) (lipgloss.Style, bool)

	// OnChange runs after every buffer version change.
	OnChange func(ChangeEvent)

	// Forwarded to buffer.Options.
	HistoryLimit int
}
