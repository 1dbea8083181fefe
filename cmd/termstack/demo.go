package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/dshills/termstack/internal/app"
	"github.com/dshills/termstack/internal/command"
	"github.com/dshills/termstack/internal/config"
	"github.com/dshills/termstack/internal/core"
	"github.com/dshills/termstack/internal/driver"
	"github.com/dshills/termstack/internal/input/key"
	"github.com/dshills/termstack/internal/input/keybinding"
	"github.com/dshills/termstack/internal/logging"
	"github.com/dshills/termstack/internal/search"
	"github.com/dshills/termstack/internal/view"
)

const menuText = " F2 Dialog  F3 Window  F4 Search  Ctrl+Tab Next window  Ctrl+Q Close"

type demoOptions struct {
	// Root is the directory searched by F4.
	Root string
	// Pattern is the file name pattern searched by F4.
	Pattern string
}

// runDemo runs the desktop on the terminal until it is closed.
func runDemo(ctx context.Context, cfg *config.Config, logger *logging.Logger, opts demoOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	term, err := driver.NewTerminal()
	if err != nil {
		return fmt.Errorf("create terminal: %w", err)
	}

	a, engine, err := newApplication(cfg, term, logger)
	if a == nil {
		return err
	}
	defer a.Shutdown()
	defer engine.Close()

	if cfg.KeyBindings.Watch && len(cfg.KeyBindings.Files) > 0 {
		w, err := watchBindingFiles(a, cfg.KeyBindings.Files, logger)
		if err != nil {
			logger.Warn("watch bindings: %v", err)
		} else {
			defer w.Close()
		}
	}

	d := newDesktop(ctx, a, cfg, logger, opts)
	defer d.searcher.Stop()

	err = a.Run(ctx, d.top)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// desktop is the demo's MDI container. It owns the menu and status bars,
// the search results area and the background searcher.
type desktop struct {
	view.BaseResponder

	ctx    context.Context
	app    *app.Application
	logger *logging.Logger
	opts   demoOptions

	top     *app.Toplevel
	menu    *view.View
	status  *view.View
	results *view.View

	searcher *search.Searcher
	feedback string
	matches  []search.Match

	windows int
	laidOut core.Size
}

func newDesktop(ctx context.Context, a *app.Application, cfg *config.Config, logger *logging.Logger, opts demoOptions) *desktop {
	d := &desktop{
		ctx:      ctx,
		app:      a,
		logger:   logger.WithComponent("desktop"),
		opts:     opts,
		feedback: "Ready",
	}

	d.top = app.NewToplevel(view.WithTitle("termstack"), view.WithResponder(d))
	d.top.IsMdiContainer = true

	bar := core.DefaultStyle().Reverse()
	d.menu = view.New(view.WithStyle(bar), view.WithResponder(textLine{text: func() string { return menuText }}))
	d.status = view.New(view.WithStyle(bar), view.WithResponder(textLine{text: func() string { return " " + d.feedback }}))
	d.results = view.New(view.WithResponder(resultList{d: d}))
	d.top.Add(d.menu, d.results, d.status)
	d.top.MenuBar = d.menu
	d.top.StatusBar = d.status

	d.searcher = search.New(a, search.Options{
		MaxResults: cfg.Search.MaxResults,
		Ignore:     cfg.Search.Ignore,
		Logger:     logger,
	}, d.showResult)

	a.AddCommand(command.Search, command.Simple(d.startSearch))
	if err := a.KeyBindings().ReplaceCommands(key.NewKey(key.F4), keybinding.Application, command.Search); err != nil {
		d.logger.Warn("bind F4: %v", err)
	}
	return d
}

// DrawContent lays the bars out whenever the desktop size changes. The
// subviews are drawn after this returns, so they use the new frames.
func (d *desktop) DrawContent(v *view.View, _ view.Canvas) {
	b := v.Bounds()
	if b.Size() == d.laidOut {
		return
	}
	d.laidOut = b.Size()
	d.menu.SetFrame(core.NewRect(0, 0, b.Width, 1))
	d.results.SetFrame(core.NewRect(0, 1, b.Width, max(b.Height-2, 0)))
	d.status.SetFrame(core.NewRect(0, max(b.Height-1, 0), b.Width, 1))
}

func (d *desktop) OnKeyDown(ev *key.Event) bool { return d.handleKey(ev) }

// handleKey opens dialogs and windows. Windows share it so the keys work
// whichever toplevel is in front.
func (d *desktop) handleKey(ev *key.Event) bool {
	switch ev.Key {
	case key.NewKey(key.F2):
		d.openDialog()
		return true
	case key.NewKey(key.F3):
		d.openWindow()
		return true
	}
	return false
}

// openDialog runs a modal dialog in a nested loop and returns when it
// closes.
func (d *desktop) openDialog() {
	dlg := app.NewWindow("Dialog", view.WithResponder(view.ResponderFuncs{
		KeyDown: func(ev *key.Event) bool {
			switch ev.Key {
			case key.NewKey(key.Esc), key.NewKey(key.Enter):
				d.app.RequestStop(nil)
				return true
			}
			return false
		},
	}))
	dlg.Modal = true
	dlg.Add(view.New(
		view.WithFrame(core.NewRect(1, 1, 26, 1)),
		view.WithResponder(textLine{text: func() string { return "Esc or Enter closes me" }}),
	))

	const w, h = 30, 5
	size := d.app.Driver().Size()
	x, y, _, _ := d.app.EnsureVisibleBounds(dlg, (size.Width-w)/2, (size.Height-h)/2)
	dlg.SetFrame(core.NewRect(x, y, w, h))

	if err := d.app.Run(d.ctx, dlg); err != nil && !errors.Is(err, context.Canceled) {
		d.logger.Error("dialog: %v", err)
	}
}

// openWindow begins a non-modal child of the desktop. The runtime ends
// it once it is stopped.
func (d *desktop) openWindow() {
	d.windows++
	n := d.windows
	win := app.NewWindow(fmt.Sprintf("Window %d", n), view.WithResponder(view.ResponderFuncs{
		KeyDown: d.handleKey,
	}))
	win.Add(view.New(
		view.WithFrame(core.NewRect(1, 0, 24, 1)),
		view.WithResponder(textLine{text: func() string { return "Drag me by the title" }}),
	))
	x, y, _, _ := d.app.EnsureVisibleBounds(win, 2+2*n, 1+n)
	win.SetFrame(core.NewRect(x, y, 28, 6))

	if _, err := d.app.Begin(win); err != nil {
		d.logger.Error("open window: %v", err)
	}
}

func (d *desktop) startSearch() {
	if err := d.searcher.Start(d.ctx, d.opts.Root, d.opts.Pattern); err != nil {
		d.feedback = "Search failed: " + err.Error()
		d.status.SetNeedsDisplay()
	}
}

// showResult runs on the main loop.
func (d *desktop) showResult(r search.Result) {
	d.feedback = r.Feedback
	d.matches = r.Matches
	d.status.SetNeedsDisplay()
	d.results.SetNeedsDisplay()
}

// textLine draws one line of text.
type textLine struct {
	view.BaseResponder
	text func() string
}

func (t textLine) DrawContent(v *view.View, c view.Canvas) {
	drawText(c, 0, t.text(), v.Style())
}

// resultList draws the latest search matches.
type resultList struct {
	view.BaseResponder
	d *desktop
}

func (r resultList) DrawContent(v *view.View, c view.Canvas) {
	for i, m := range r.d.matches {
		if i >= c.Size().Height {
			break
		}
		drawText(c, i, m.Path, v.Style())
	}
}

func drawText(c view.Canvas, y int, text string, style core.Style) {
	x := 0
	width := c.Size().Width
	for _, r := range core.Truncate(text, width, "…") {
		c.SetCell(x, y, core.NewCell(r, style))
		x += max(core.RuneWidth(r), 1)
	}
}
