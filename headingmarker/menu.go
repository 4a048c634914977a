package headingmarker

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/iw2rmb/lapel/editor"
)

var headingPrefixRE = regexp.MustCompile(`^#{1,6} `)

// ReplaceHeading returns line rewritten as a heading of level: an existing
// "#"-prefix and its single space are replaced, everything after is kept
// verbatim. level is clamped to 1..6.
func ReplaceHeading(level int, line string) string {
	level = min(max(level, 1), 6)
	content := headingPrefixRE.ReplaceAllLiteralString(line, "")
	return strings.Repeat("#", level) + " " + content
}

// LevelMenu lists "Heading 1" through "Heading 6" in order, with the
// current level highlighted. choose runs with the picked level.
func LevelMenu(current int, choose func(level int) error) editor.Menu {
	items := make([]editor.MenuItem, 0, 6)
	for level := 1; level <= 6; level++ {
		items = append(items, editor.MenuItem{
			Title: fmt.Sprintf("Heading %d", level),
			Icon:  "hash",
			OnClick: func() error {
				return choose(level)
			},
		})
	}
	return editor.Menu{Items: items, Selected: current - 1}
}
