package main

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lapel/editor"
	"github.com/iw2rmb/lapel/internal/config"
)

func testModel(t *testing.T, path string) (model, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m := newModel(config.Default(), path, sampleText, logger)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	return next.(model), &logs
}

func TestModel_ErrorMsgIsLoggedAndShown(t *testing.T) {
	m, logs := testModel(t, "")

	next, cmd := m.Update(editor.ErrorMsg{Err: errors.New("boom")})
	if cmd != nil {
		t.Fatalf("cmd: got non-nil, want nil")
	}
	m = next.(model)
	if !strings.Contains(m.View(), "error: boom") {
		t.Fatalf("status should show the error")
	}
	if !strings.Contains(logs.String(), "editor action failed") {
		t.Fatalf("logs: got %q", logs.String())
	}
}

func TestModel_SaveWritesBuffer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	m, _ := testModel(t, path)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(model)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != sampleText {
		t.Fatalf("saved text: got %q, want sample text", string(data))
	}
	if !strings.Contains(m.View(), "saved "+path) {
		t.Fatalf("status should confirm the save")
	}
}

func TestModel_CountsTextChangesOnly(t *testing.T) {
	m, _ := testModel(t, "")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := next.(model).changes; got != 0 {
		t.Fatalf("changes after cursor moves: got %d, want %d", got, 0)
	}

	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := next.(model).changes; got != 2 {
		t.Fatalf("changes after insert and undo: got %d, want %d", got, 2)
	}
	if !strings.Contains(next.View(), "2 changes") {
		t.Fatalf("status should show the text change count")
	}
}

func TestLineStyleForClass(t *testing.T) {
	for _, class := range []string{"HyperMD-header HyperMD-header-2", "HyperMD-codeblock", "HyperMD-quote"} {
		if _, ok := lineStyleForClass(class); !ok {
			t.Fatalf("class %q: want a style", class)
		}
	}
	if _, ok := lineStyleForClass("HyperMD-list-line"); ok {
		t.Fatalf("list lines should keep the text style")
	}
}
