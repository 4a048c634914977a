package syntax

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// containerPrefix matches blockquote and list item markers opening a line.
const containerPrefix = `(?:[ \t]*(?:>[ \t]?|(?:[-*+]|\d{1,9}[.)])[ \t]+))*`

var (
	// emptyATXRE matches an ATX heading line without content, which
	// goldmark reports with no line segments.
	emptyATXRE = regexp.MustCompile(`^` + containerPrefix + `[ \t]*#{1,6}(?:[ \t]+#*)?[ \t]*$`)
	// skippableRE matches lines holding no block content of their own:
	// blank lines, bare container markers and thematic breaks.
	skippableRE = regexp.MustCompile(`^(?:[ \t]*(?:>|[-*+_]|\d{1,9}[.)]))*[ \t]*$`)
)

type pending struct {
	index  int
	placed bool
}

// Parse parses src as CommonMark with GitHub extensions.
func Parse(src string) *Tree {
	source := []byte(src)
	t := &Tree{length: len(src), lineStarts: lineStarts(src)}
	doc := md.Parser().Parse(text.NewReader(source))

	var (
		stack      []*pending
		searchFrom int
		depth      int
	)
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if n.Type() != ast.TypeBlock || n.Kind() == ast.KindDocument {
			return ast.WalkContinue, nil
		}
		if entering {
			p := &pending{index: len(t.nodes)}
			t.nodes = append(t.nodes, Node{Type: nodeType(n, src), Depth: depth})
			if from, to, ok := ownRange(n, src, searchFrom); ok {
				t.nodes[p.index].From, t.nodes[p.index].To = from, to
				p.placed = true
				searchFrom = min(to+1, len(src))
			}
			stack = append(stack, p)
			depth++
			return ast.WalkContinue, nil
		}

		depth--
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !p.placed {
			p.placed = spanChildren(t.nodes, p.index)
		}
		if !p.placed {
			t.nodes[p.index].From = -1
		}
		return ast.WalkContinue, nil
	})

	placed := t.nodes[:0]
	for _, n := range t.nodes {
		if n.From >= 0 {
			placed = append(placed, n)
		}
	}
	t.nodes = placed
	return t
}

func nodeType(n ast.Node, src string) NodeType {
	switch node := n.(type) {
	case *ast.Heading:
		style := "ATX"
		if first, ok := firstSegment(n); ok && !strings.Contains(src[lineStart(src, first.Start):first.Start], "#") {
			style = "Setext"
		}
		return NodeType{
			Name:      fmt.Sprintf("%sHeading%d", style, node.Level),
			lineClass: fmt.Sprintf("HyperMD-header HyperMD-header-%d", node.Level),
		}
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return NodeType{Name: n.Kind().String(), lineClass: "HyperMD-codeblock"}
	case *ast.Blockquote:
		return NodeType{Name: n.Kind().String(), lineClass: "HyperMD-quote"}
	case *ast.ListItem:
		return NodeType{Name: n.Kind().String(), lineClass: "HyperMD-list-line"}
	}
	return NodeType{Name: n.Kind().String()}
}

// ownRange locates nodes that carry their own line segments. Containers
// are placed from their children on exit.
func ownRange(n ast.Node, src string, searchFrom int) (from, to int, ok bool) {
	switch node := n.(type) {
	case *ast.Heading:
		first, ok := firstSegment(n)
		if !ok {
			return findEmptyATX(src, searchFrom)
		}
		last := n.Lines().At(n.Lines().Len() - 1)
		from = lineStart(src, first.Start)
		to = lineEnd(src, last.Start)
		if !strings.Contains(src[from:first.Start], "#") && to < len(src) {
			// Setext underline.
			to = lineEnd(src, to+1)
		}
		return from, to, true
	case *ast.FencedCodeBlock:
		var fence int
		switch {
		case node.Info != nil:
			fence = lineStart(src, node.Info.Segment.Start)
		case node.Lines().Len() > 0:
			fence = lineStart(src, node.Lines().At(0).Start)
			if fence == 0 {
				return 0, 0, false
			}
			fence = lineStart(src, fence-1)
		default:
			return 0, 0, false
		}
		to = lineEnd(src, fence)
		if node.Lines().Len() > 0 {
			to = lineEnd(src, node.Lines().At(node.Lines().Len()-1).Start)
		}
		if to < len(src) {
			to = lineEnd(src, to+1)
		}
		return fence, to, true
	case *ast.List, *ast.ListItem, *ast.Blockquote:
		return 0, 0, false
	}
	first, ok := firstSegment(n)
	if !ok {
		return 0, 0, false
	}
	last := n.Lines().At(n.Lines().Len() - 1)
	return lineStart(src, first.Start), lineEnd(src, last.Start), true
}

func spanChildren(nodes []Node, parent int) bool {
	depth := nodes[parent].Depth
	placed := false
	for i := parent + 1; i < len(nodes) && nodes[i].Depth > depth; i++ {
		c := nodes[i]
		if c.From < 0 || c.Depth != depth+1 {
			continue
		}
		if !placed {
			nodes[parent].From, nodes[parent].To = c.From, c.To
			placed = true
			continue
		}
		nodes[parent].From = min(nodes[parent].From, c.From)
		nodes[parent].To = max(nodes[parent].To, c.To)
	}
	return placed
}

// findEmptyATX looks for an empty heading on the first content line at or
// after from. Blocks are visited in source order, so a heading that is not
// there is not placed at all.
func findEmptyATX(src string, from int) (int, int, bool) {
	for off := lineStart(src, from); off <= len(src); {
		end := lineEnd(src, off)
		line := src[off:end]
		if emptyATXRE.MatchString(line) {
			return off, end, true
		}
		if !skippableRE.MatchString(line) || end >= len(src) {
			break
		}
		off = end + 1
	}
	return 0, 0, false
}

func firstSegment(n ast.Node) (text.Segment, bool) {
	if n.Lines() == nil || n.Lines().Len() == 0 {
		return text.Segment{}, false
	}
	return n.Lines().At(0), true
}

func lineStart(src string, off int) int {
	off = min(max(off, 0), len(src))
	return strings.LastIndexByte(src[:off], '\n') + 1
}

func lineEnd(src string, off int) int {
	off = min(max(off, 0), len(src))
	if i := strings.IndexByte(src[off:], '\n'); i >= 0 {
		return off + i
	}
	return len(src)
}

func lineStarts(src string) []int {
	out := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			out = append(out, i+1)
		}
	}
	return out
}
