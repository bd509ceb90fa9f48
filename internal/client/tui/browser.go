// Package tui is the full-screen closet browser built on bubbletea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/closet/internal/client/models"
	"github.com/dmitrijs2005/closet/internal/client/ui"
	"github.com/dmitrijs2005/closet/internal/client/views"
)

type loadedMsg struct {
	mode    views.Mode
	entries []models.Entry
	err     error
}

type deletedMsg struct {
	id  int64
	err error
}

// Browser is a bubbletea model over a Carousel. Requests run as commands;
// their results are applied in Update, so the carousel is only touched on
// the update loop.
type Browser struct {
	ctx      context.Context
	carousel *views.Carousel
	styles   ui.Styles
	spinner  spinner.Model
	keys     keyMap
	width    int
	status   string
}

// NewBrowser wraps c. The first fetch starts in Init.
func NewBrowser(ctx context.Context, c *views.Carousel) Browser {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = ui.DefaultStyles().Muted

	return Browser{
		ctx:      ctx,
		carousel: c,
		styles:   ui.DefaultStyles(),
		spinner:  sp,
		keys:     defaultKeys(),
	}
}

func (b Browser) Init() tea.Cmd {
	return tea.Batch(b.spinner.Tick, b.load())
}

func (b Browser) load() tea.Cmd {
	mode := b.carousel.BeginLoad()
	c, ctx := b.carousel, b.ctx
	return func() tea.Msg {
		entries, err := c.Fetch(ctx, mode)
		return loadedMsg{mode: mode, entries: entries, err: err}
	}
}

func (b Browser) remove(id int64) tea.Cmd {
	mode := b.carousel.Mode()
	c, ctx := b.carousel, b.ctx
	return func() tea.Msg {
		return deletedMsg{id: id, err: c.SendDelete(ctx, mode, id)}
	}
}

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		return b, nil

	case loadedMsg:
		b.carousel.Loaded(msg.mode, msg.entries, msg.err)
		b.status = ""
		return b, nil

	case deletedMsg:
		if msg.err == nil {
			b.carousel.Remove(msg.id)
			b.status = fmt.Sprintf("deleted #%d", msg.id)
		}
		return b, nil

	case spinner.TickMsg:
		if !b.carousel.Loading() {
			return b, nil
		}
		var cmd tea.Cmd
		b.spinner, cmd = b.spinner.Update(msg)
		return b, cmd

	case tea.KeyMsg:
		return b.handleKey(msg)
	}
	return b, nil
}

func (b Browser) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, b.keys.Quit) {
		return b, tea.Quit
	}

	if _, open := b.carousel.Selected(); open {
		if key.Matches(msg, b.keys.Close) {
			b.carousel.CloseDetail()
		}
		return b, nil
	}

	switch {
	case key.Matches(msg, b.keys.Left):
		b.carousel.MoveLeft()
	case key.Matches(msg, b.keys.Right):
		b.carousel.MoveRight()
	case key.Matches(msg, b.keys.Toggle):
		b.carousel.SetMode(b.carousel.Mode().Toggle())
		return b, tea.Batch(b.load(), b.spinner.Tick)
	case key.Matches(msg, b.keys.Reload):
		return b, tea.Batch(b.load(), b.spinner.Tick)
	case key.Matches(msg, b.keys.Delete):
		if cur, ok := b.carousel.Current(); ok {
			return b, b.remove(cur.ID())
		}
	case key.Matches(msg, b.keys.Open):
		cur, ok := b.carousel.Current()
		if !ok {
			break
		}
		if err := b.carousel.Open(cur.ID()); errors.Is(err, views.ErrNotOutfit) {
			b.status = "only outfits have a detail view"
		}
	}
	return b, nil
}

func (b Browser) View() string {
	var s strings.Builder
	if b.carousel.Loading() {
		s.WriteString(b.styles.Heading.Render(b.carousel.Title()))
		s.WriteString("\n")
		s.WriteString(b.spinner.View())
		s.WriteString(" Loading...")
		return s.String()
	}

	s.WriteString(b.styles.Carousel(b.carousel, b.width))
	s.WriteString("\n\n")
	if b.status != "" {
		s.WriteString(b.styles.Muted.Render(b.status))
		s.WriteString("\n")
	}
	s.WriteString(b.help())
	return s.String()
}

func (b Browser) help() string {
	bindings := b.keys.browsing()
	if _, open := b.carousel.Selected(); open {
		bindings = b.keys.detail()
	}
	parts := make([]string, 0, len(bindings))
	for _, k := range bindings {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return b.styles.Help.Render(strings.Join(parts, " • "))
}

// Run shows the browser until the user quits or ctx ends.
func Run(ctx context.Context, c *views.Carousel, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(NewBrowser(ctx, c),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
