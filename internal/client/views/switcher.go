package views

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/closet/internal/client/client"
	"github.com/dmitrijs2005/closet/internal/logging"
)

// View is one of the three top-level screens.
type View int

const (
	ViewCloset View = iota
	ViewAdd
	ViewOutfits
)

func (v View) String() string {
	switch v {
	case ViewCloset:
		return "closet"
	case ViewAdd:
		return "add"
	case ViewOutfits:
		return "outfits"
	default:
		return fmt.Sprintf("view(%d)", int(v))
	}
}

// ParseView maps a command name to a View.
func ParseView(s string) (View, bool) {
	switch s {
	case "closet":
		return ViewCloset, true
	case "add":
		return ViewAdd, true
	case "outfits":
		return ViewOutfits, true
	default:
		return 0, false
	}
}

// Switcher mounts exactly one view component at a time. Leaving a view
// discards its component; selecting it again mounts a fresh one.
type Switcher struct {
	client   client.Client
	logger   logging.Logger
	duration time.Duration

	active   View
	mounted  bool
	carousel *Carousel
	form     *ItemForm
	builder  *OutfitBuilder
}

// NewSwitcher returns a switcher with nothing mounted. Call Select to mount
// the first view.
func NewSwitcher(c client.Client, logger logging.Logger, noticeDuration time.Duration) *Switcher {
	return &Switcher{client: c, logger: logger, duration: noticeDuration}
}

func (s *Switcher) Active() View { return s.active }

// Select mounts v. Reselecting the mounted view is a no-op. Mounting the
// closet loads the carousel; a failed load is logged by the carousel and
// returned.
func (s *Switcher) Select(ctx context.Context, v View) error {
	if s.mounted && s.active == v {
		return nil
	}

	s.unmount()
	s.active = v
	s.mounted = true
	s.logger.Debug(ctx, "view mounted", "view", v.String())

	switch v {
	case ViewCloset:
		s.carousel = NewCarousel(s.client, s.logger)
		return s.carousel.Load(ctx)
	case ViewAdd:
		s.form = NewItemForm(s.client, s.logger, s.duration)
	case ViewOutfits:
		s.builder = NewOutfitBuilder(s.client, s.logger, s.duration)
	}
	return nil
}

func (s *Switcher) unmount() {
	if s.form != nil {
		s.form.DismissNotice()
	}
	if s.builder != nil {
		s.builder.DismissNotice()
	}
	s.carousel = nil
	s.form = nil
	s.builder = nil
}

// Carousel returns the mounted carousel, or nil when another view is active.
func (s *Switcher) Carousel() *Carousel { return s.carousel }

// Form returns the mounted item form, or nil.
func (s *Switcher) Form() *ItemForm { return s.form }

// Builder returns the mounted outfit builder, or nil.
func (s *Switcher) Builder() *OutfitBuilder { return s.builder }

// Close releases the mounted component.
func (s *Switcher) Close() {
	s.unmount()
	s.mounted = false
}
