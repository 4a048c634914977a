package editor

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func stripANSI(s string) string { return ansi.Strip(s) }

func viewLines(m Model) []string {
	lines := strings.Split(m.View(), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(stripANSI(lines[i]), " ")
	}
	return lines
}
