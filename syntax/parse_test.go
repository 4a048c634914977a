package syntax

import (
	"strings"
	"testing"
)

type span struct {
	name      string
	from, to  int
	lineClass string
}

func headingSpans(tr *Tree) []span {
	var out []span
	tr.Iterate(func(n Node) bool {
		if strings.Contains(n.Type.Name, "Heading") {
			out = append(out, span{name: n.Type.Name, from: n.From, to: n.To, lineClass: n.Type.Prop(LineClass)})
		}
		return true
	})
	return out
}

func TestParse_ATXHeadingsSpanFullLines(t *testing.T) {
	src := "# One\ntext\n### Three ###\n"
	got := headingSpans(Parse(src))

	want := []span{
		{name: "ATXHeading1", from: 0, to: 5, lineClass: "HyperMD-header HyperMD-header-1"},
		{name: "ATXHeading3", from: 11, to: 24, lineClass: "HyperMD-header HyperMD-header-3"},
	}
	if len(got) != len(want) {
		t.Fatalf("headings: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("heading %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
	if got, want := src[want[1].from:want[1].to], "### Three ###"; got != want {
		t.Fatalf("heading text: got %q, want %q", got, want)
	}
}

func TestParse_SetextHeadingIncludesUnderline(t *testing.T) {
	src := "Title\n=====\n\nSub\n---"
	got := headingSpans(Parse(src))

	if len(got) != 2 {
		t.Fatalf("headings: got %v, want 2", got)
	}
	if got[0].name != "SetextHeading1" || got[0].from != 0 || got[0].to != 11 {
		t.Fatalf("setext 1: got %+v", got[0])
	}
	if got[1].name != "SetextHeading2" || got[1].from != 13 || got[1].to != len(src) {
		t.Fatalf("setext 2: got %+v", got[1])
	}
}

func TestParse_EmptyATXHeadingsAreLocated(t *testing.T) {
	src := "#\n##\npara"
	got := headingSpans(Parse(src))

	if len(got) != 2 {
		t.Fatalf("headings: got %v, want 2", got)
	}
	if got[0].from != 0 || got[0].to != 1 {
		t.Fatalf("first empty heading: got %+v", got[0])
	}
	if got[1].from != 2 || got[1].to != 4 {
		t.Fatalf("second empty heading: got %+v", got[1])
	}
}

func TestParse_EmptyATXHeadingsInContainers(t *testing.T) {
	cases := []struct {
		src  string
		want []span
	}{
		{
			src: "- #\n\n## \n",
			want: []span{
				{name: "ATXHeading1", from: 0, to: 3, lineClass: "HyperMD-header HyperMD-header-1"},
				{name: "ATXHeading2", from: 5, to: 8, lineClass: "HyperMD-header HyperMD-header-2"},
			},
		},
		{
			src: "- #\n\n#\n",
			want: []span{
				{name: "ATXHeading1", from: 0, to: 3, lineClass: "HyperMD-header HyperMD-header-1"},
				{name: "ATXHeading1", from: 5, to: 6, lineClass: "HyperMD-header HyperMD-header-1"},
			},
		},
		{
			src: "1. ##\n",
			want: []span{
				{name: "ATXHeading2", from: 0, to: 5, lineClass: "HyperMD-header HyperMD-header-2"},
			},
		},
		{
			src: "> ###\n\n---\n\n#\n",
			want: []span{
				{name: "ATXHeading3", from: 0, to: 5, lineClass: "HyperMD-header HyperMD-header-3"},
				{name: "ATXHeading1", from: 12, to: 13, lineClass: "HyperMD-header HyperMD-header-1"},
			},
		},
	}
	for _, tc := range cases {
		got := headingSpans(Parse(tc.src))
		if len(got) != len(tc.want) {
			t.Fatalf("%q: got %v, want %v", tc.src, got, tc.want)
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Fatalf("%q heading %d: got %+v, want %+v", tc.src, i, got[i], tc.want[i])
			}
		}
	}
}

func TestParse_HashInsideCodeIsNotAHeading(t *testing.T) {
	src := "```sh\n# comment\n```\n\n    # indented\n"
	if got := headingSpans(Parse(src)); len(got) != 0 {
		t.Fatalf("headings: got %v, want none", got)
	}
}

func TestParse_NestedHeadingInQuote(t *testing.T) {
	src := "> ## Quoted\n> body"
	got := headingSpans(Parse(src))

	if len(got) != 1 {
		t.Fatalf("headings: got %v, want 1", got)
	}
	if got[0].from != 0 || got[0].to != 11 {
		t.Fatalf("quoted heading: got %+v", got[0])
	}
}

func TestTree_LineClasses(t *testing.T) {
	src := "# H\n\n```\ncode\n```\n> q"
	got := Parse(src).LineClasses()

	want := []string{
		"HyperMD-header HyperMD-header-1",
		"",
		"HyperMD-codeblock",
		"HyperMD-codeblock",
		"HyperMD-codeblock",
		"HyperMD-quote",
	}
	if len(got) != len(want) {
		t.Fatalf("line classes: got %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTree_IterateStopsAndNilTree(t *testing.T) {
	var nilTree *Tree
	nilTree.Iterate(func(Node) bool {
		t.Fatalf("nil tree must not iterate")
		return true
	})
	if nilTree.Len() != 0 || nilTree.Nodes() != nil || nilTree.LineClasses() != nil {
		t.Fatalf("nil tree accessors must be empty")
	}

	calls := 0
	Parse("# a\n\n# b\n\n# c").Iterate(func(Node) bool {
		calls++
		return false
	})
	if calls != 1 {
		t.Fatalf("calls=%d, want 1", calls)
	}
}
