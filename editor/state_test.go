package editor

import (
	"testing"
)

func TestNewState_NormalizesAndSortsSelections(t *testing.T) {
	st := NewState(StateConfig{
		Doc:        "hello\nworld",
		Selections: []SelectionRange{{From: 9, To: 7}, {From: 2, To: 2}, {From: -4, To: 99}},
	})

	got := st.Selections()
	want := []SelectionRange{{From: 0, To: 11}, {From: 2, To: 2}, {From: 7, To: 9}}
	if len(got) != len(want) {
		t.Fatalf("selections: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("selection %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNewState_DefaultsToCursorAtStart(t *testing.T) {
	st := NewState(StateConfig{Doc: "abc"})
	got := st.Selections()
	if len(got) != 1 || got[0] != (SelectionRange{}) {
		t.Fatalf("selections: got %v, want [{0 0}]", got)
	}
	if !got[0].Empty() {
		t.Fatalf("default selection should be empty")
	}
	if st.Tree() == nil {
		t.Fatalf("tree: got nil, want parsed tree")
	}
}

func TestState_LineAndLineAt(t *testing.T) {
	st := NewState(StateConfig{Doc: "# Title\n\nbody\n"})

	if got := st.LineCount(); got != 4 {
		t.Fatalf("line count: got %d, want %d", got, 4)
	}

	tests := []struct {
		off  int
		want Line
	}{
		{off: 0, want: Line{Number: 1, From: 0, To: 7, Text: "# Title"}},
		{off: 7, want: Line{Number: 1, From: 0, To: 7, Text: "# Title"}},
		{off: 8, want: Line{Number: 2, From: 8, To: 8, Text: ""}},
		{off: 11, want: Line{Number: 3, From: 9, To: 13, Text: "body"}},
		{off: 14, want: Line{Number: 4, From: 14, To: 14, Text: ""}},
		{off: 99, want: Line{Number: 4, From: 14, To: 14, Text: ""}},
	}
	for _, tc := range tests {
		if got := st.LineAt(tc.off); got != tc.want {
			t.Fatalf("LineAt(%d): got %+v, want %+v", tc.off, got, tc.want)
		}
	}

	if got := st.Line(0); got.Number != 1 {
		t.Fatalf("Line(0) clamps: got line %d, want %d", got.Number, 1)
	}
	if got := st.Line(3); got.Text != "body" {
		t.Fatalf("Line(3) text: got %q, want %q", got.Text, "body")
	}
}
