package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/lapel"
	"github.com/iw2rmb/lapel/editor"
	"github.com/iw2rmb/lapel/headingmarker"
	"github.com/iw2rmb/lapel/internal/config"
)

const sampleText = `# lapel

Click a heading marker in the gutter to change its level.

## Keys

Ctrl+P toggles live preview. Ctrl+S saves. Ctrl+Q quits.

Setext heading
--------------

### Notes
Markers hide while the cursor is on their heading.`

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

type model struct {
	editor editor.Model
	path   string
	log    *slog.Logger

	// Text changes only; cursor moves are not counted.
	changes int
	status  string
}

func newModel(cfg *config.Config, path, text string, logger *slog.Logger) model {
	markerStyles := make(map[string]lipgloss.Style, len(cfg.MarkerColors))
	for level, color := range cfg.MarkerColors {
		markerStyles["heading_marker_"+level] = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
	}

	m := model{path: path, log: logger}
	ecfg := editor.Config{
		Text:         text,
		ShowLineNums: cfg.LineNumbers,
		Style:        editor.DefaultStyle(),
		TabWidth:     cfg.TabWidth,
		LivePreview:  cfg.LivePreview,
		HistoryLimit: cfg.HistoryLimit,
		Extensions: []editor.Extension{
			headingmarker.New(headingmarker.App{Logger: logger}, cfg.ShowBeforeLineNumbers),
		},
		GutterStyleForKey: func(key string) (lipgloss.Style, bool) {
			s, ok := markerStyles[key]
			return s, ok
		},
		LineStyleForClass: lineStyleForClass,
	}
	m.editor = editor.New(ecfg)
	return m
}

func lineStyleForClass(class string) (lipgloss.Style, bool) {
	switch {
	case strings.Contains(class, "HyperMD-header"):
		return lipgloss.NewStyle().Bold(true), true
	case strings.Contains(class, "HyperMD-codeblock"):
		return lipgloss.NewStyle().Foreground(lipgloss.Color("246")), true
	case strings.Contains(class, "HyperMD-quote"):
		return lipgloss.NewStyle().Italic(true), true
	}
	return lipgloss.Style{}, false
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-1, 1))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q":
			return m, tea.Quit
		case "ctrl+s":
			m.status = m.save()
			return m, nil
		}
	case editor.ErrorMsg:
		m.log.Error("editor action failed", "err", msg.Err)
		m.status = "error: " + msg.Err.Error()
		return m, nil
	}

	before := m.editor.Buffer().ChangeSeq()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.changes += int(m.editor.Buffer().ChangeSeq() - before)
	return m, cmd
}

func (m model) save() string {
	if m.path == "" {
		return "no file to save to"
	}
	if err := os.WriteFile(m.path, []byte(m.editor.Buffer().Text()), 0o644); err != nil {
		m.log.Error("save failed", "path", m.path, "err", err)
		return "save failed: " + err.Error()
	}
	m.log.Info("saved", "path", m.path)
	return "saved " + m.path
}

func (m model) View() string {
	mode := "source"
	if m.editor.LivePreview() {
		mode = "live preview"
	}
	cur := m.editor.Buffer().Cursor()
	status := fmt.Sprintf("lapel %s | %s | %d:%d | %d changes", lapel.VersionTag(), mode, cur.Row+1, cur.GraphemeCol+1, m.changes)
	if m.status != "" {
		status += " | " + m.status
	}
	return m.editor.View() + "\n" + statusStyle.Render(status)
}

func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}

func run() error {
	configPath := flag.String("config", "", "config file (default: user config dir)")
	logPath := flag.String("log", "", "write debug logs to this file")
	initConfig := flag.Bool("init-config", false, "write the default config file and exit")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(lapel.VersionTag())
		return nil
	}

	path := *configPath
	if path == "" {
		p, err := config.Path()
		if err != nil {
			return err
		}
		path = p
	}
	if *initConfig {
		if err := config.Save(config.Default(), path); err != nil {
			return err
		}
		fmt.Println("wrote", path)
		return nil
	}

	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(*logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	text := sampleText
	file := flag.Arg(0)
	if file != "" {
		data, err := os.ReadFile(file)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			text = ""
		case err != nil:
			return fmt.Errorf("read %s: %w", file, err)
		default:
			text = string(data)
		}
	}
	logger.Info("starting", "file", file, "config", path)

	p := tea.NewProgram(newModel(cfg, file, text, logger), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = p.Run()
	return err
}

func main() {
	if err := run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
