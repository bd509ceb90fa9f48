package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/closet/internal/client/client"
	"github.com/dmitrijs2005/closet/internal/client/config"
	"github.com/dmitrijs2005/closet/internal/client/tui"
	"github.com/dmitrijs2005/closet/internal/client/ui"
	"github.com/dmitrijs2005/closet/internal/client/views"
	"github.com/dmitrijs2005/closet/internal/logging"
)

// browseFn runs the full-screen browser; replaced in tests.
type browseFn func(ctx context.Context, c *views.Carousel, in io.Reader, out io.Writer) error

type App struct {
	config   *config.Config
	logger   logging.Logger
	switcher *views.Switcher
	styles   ui.Styles
	in       io.Reader
	reader   *bufio.Reader
	out      io.Writer
	width    func() int
	browse   browseFn
}

// NewApp wires the switcher to api. User input is read from in and all
// user-facing output goes to out.
func NewApp(c *config.Config, api client.Client, logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config:   c,
		logger:   logger,
		switcher: views.NewSwitcher(api, logger, c.NoticeDuration),
		styles:   ui.DefaultStyles(),
		in:       in,
		reader:   bufio.NewReader(in),
		out:      out,
		width:    terminalWidth(out),
		browse:   tui.Run,
	}
}

// Run prints the header, mounts the closet view and blocks in the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.switcher.Close()

	a.println("Type 'help' for commands.")

	_ = a.Select(ctx, views.ViewCloset)
	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) status() string {
	v := a.switcher.Active()
	if c := a.switcher.Carousel(); v == views.ViewCloset && c != nil {
		return fmt.Sprintf("%s/%s", v, c.Mode())
	}
	return v.String()
}

func (a *App) Active() views.View { return a.switcher.Active() }

// Select switches to v and shows it. Reselecting the active view only shows it.
func (a *App) Select(ctx context.Context, v views.View) error {
	err := a.switcher.Select(ctx, v)
	a.println(a.styles.Nav(v))
	a.show()
	return err
}

func (a *App) show() {
	switch a.switcher.Active() {
	case views.ViewCloset:
		if c := a.switcher.Carousel(); c != nil {
			a.println(a.styles.Carousel(c, a.width()))
		}
	case views.ViewAdd:
		if f := a.switcher.Form(); f != nil {
			a.println(a.styles.Form(f))
		}
	case views.ViewOutfits:
		if b := a.switcher.Builder(); b != nil {
			a.println(a.styles.Builder(b, a.width()))
		}
	}
}

// Exec runs a view-specific command.
func (a *App) Exec(ctx context.Context, cmd string, args []string) error {
	if cmd == "show" {
		a.show()
		return nil
	}
	switch a.switcher.Active() {
	case views.ViewCloset:
		return a.closetCmd(ctx, cmd, args)
	case views.ViewAdd:
		return a.addCmd(ctx, cmd, args)
	case views.ViewOutfits:
		return a.outfitsCmd(ctx, cmd, args)
	}
	return errUnknownCommand
}

// Help lists global commands and those of the active view.
func (a *App) Help() string {
	global := "Views: closet, add, outfits. Also: help, show, exit"
	switch a.switcher.Active() {
	case views.ViewCloset:
		return global + "\nCloset: left|h, right|l, toggle, refresh, delete [id], open [id], close, browse"
	case views.ViewAdd:
		return global + "\nAdd: set <field> <value>, fill, submit, dismiss (fields: type, color, style, occasion, image)"
	case views.ViewOutfits:
		return global + "\nOutfits: filter, pick <id>, drop <id>, name <text>, describe, save, dismiss"
	}
	return global
}
