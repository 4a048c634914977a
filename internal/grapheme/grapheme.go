// Package grapheme holds the grapheme-cluster helpers shared by buffer and
// editor.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// CellWidth returns the terminal cell width of one cluster placed at cell
// col. Tabs advance to the next multiple of tabWidth; everything else is at
// least one cell wide so the cursor can always land on it.
func CellWidth(cluster string, col, tabWidth int) int {
	if cluster == "\t" {
		if tabWidth <= 0 {
			tabWidth = 4
		}
		return tabWidth - col%tabWidth
	}
	w := runewidth.StringWidth(cluster)
	if w < 1 {
		return 1
	}
	return w
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
