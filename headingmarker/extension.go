package headingmarker

import (
	"log/slog"

	"github.com/iw2rmb/lapel/editor"
)

// GutterClass names the marker gutter.
const GutterClass = "lapel"

const gutterWidth = 3

// App carries the host capabilities the extension uses. Nil members fall
// back to the editor view itself and a discarding logger.
type App struct {
	Dispatcher editor.Dispatcher
	Menus      editor.MenuPresenter
	Logger     *slog.Logger
}

func (a App) dispatcher(v editor.View) editor.Dispatcher {
	if a.Dispatcher != nil {
		return a.Dispatcher
	}
	return v
}

func (a App) menus(v editor.View) editor.MenuPresenter {
	if a.Menus != nil {
		return a.Menus
	}
	return v
}

func (a App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// New returns the heading marker extension. With showBeforeLineNumbers the
// gutter renders left of line numbers, otherwise right of them.
func New(app App, showBeforeLineNumbers bool) editor.Extension {
	spec := editor.DefinePlugin(func(v editor.View) editor.ViewPlugin {
		return newPlugin(app, v)
	})
	pluginOf := func(v editor.View) *Plugin {
		if v == nil {
			return nil
		}
		p, _ := v.Plugin(spec).(*Plugin)
		return p
	}

	prec := editor.PrecLow
	if showBeforeLineNumbers {
		prec = editor.PrecHigh
	}

	g := editor.Gutter{
		Class: GutterClass,
		Prec:  prec,
		Width: func(editor.GutterWidthContext) int { return gutterWidth },
		Cell: func(ctx editor.GutterCellContext) editor.GutterCell {
			p := pluginOf(ctx.View)
			if p == nil {
				return editor.GutterCell{}
			}
			m, ok := p.MarkerFor(ctx.Line)
			if !ok {
				return editor.GutterCell{}
			}
			return editor.GutterCell{Segments: []editor.GutterSegment{m.Segment()}}
		},
		OnMouseDown: func(ev editor.GutterEvent) bool {
			return ev.Target.HasClass(MarkerClass)
		},
		OnClick: func(ev editor.GutterEvent) bool {
			if !ev.Target.HasClass(MarkerClass) {
				return false
			}
			p := pluginOf(ev.View)
			if p == nil {
				return false
			}
			current, _ := levelOf(ev.Target)
			from := ev.Line.From
			app.logger().Debug("open heading menu", "line", ev.Line.Number, "level", current)
			app.menus(ev.View).ShowMenu(LevelMenu(current, func(level int) error {
				return p.SetLevel(from, level)
			}), ev.X, ev.Y)
			return true
		},
	}

	return editor.Extension{
		Plugins:                   []*editor.PluginSpec{spec},
		Gutters:                   []editor.Gutter{g},
		HighlightActiveLineGutter: true,
	}
}
