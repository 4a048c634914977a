// Package headingmarker adds a gutter that shows the level of every Markdown
// heading ("H1" through "H6") next to its line and lets the user change the
// level from a popup menu.
//
// Markers are only shown in live-preview mode, and a heading's marker hides
// while the selection touches the heading so it does not compete with the
// raw "#" prefix being edited.
package headingmarker
