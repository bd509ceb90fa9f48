package views

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/closet/internal/client/client"
	"github.com/dmitrijs2005/closet/internal/client/models"
	"github.com/dmitrijs2005/closet/internal/common"
	"github.com/dmitrijs2005/closet/internal/logging"
)

// Mode selects what the carousel lists.
type Mode int

const (
	ModeItems Mode = iota
	ModeOutfits
)

func (m Mode) String() string {
	if m == ModeOutfits {
		return "outfits"
	}
	return "items"
}

// Title is the carousel heading for the mode.
func (m Mode) Title() string {
	if m == ModeOutfits {
		return "Outfits"
	}
	return "Closet Items"
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeOutfits {
		return ModeItems
	}
	return ModeOutfits
}

// Position classifies an entry by its circular distance from the current index.
type Position int

const (
	PositionFront Position = iota
	PositionSide
	PositionHidden
)

func (p Position) String() string {
	switch p {
	case PositionFront:
		return "front"
	case PositionSide:
		return "side"
	default:
		return "hidden"
	}
}

// ErrUnknownEntry is returned by Open for ids not in the carousel.
var ErrUnknownEntry = fmt.Errorf("entry %w", common.ErrorNotFound)

// ErrNotOutfit is returned by Open for plain item entries.
var ErrNotOutfit = errors.New("entry is not an outfit")

// Slot is an entry together with its carousel position.
type Slot struct {
	Index    int
	Entry    models.Entry
	Position Position
}

// Carousel is the circular closet browser over items or outfits.
type Carousel struct {
	client   client.Client
	logger   logging.Logger
	entries  []models.Entry
	mode     Mode
	current  int
	loading  bool
	selected *models.Outfit
}

// NewCarousel returns an empty carousel in item mode. Call Load to mount it.
func NewCarousel(c client.Client, logger logging.Logger) *Carousel {
	return &Carousel{client: c, logger: logger}
}

func (c *Carousel) Mode() Mode    { return c.mode }
func (c *Carousel) Loading() bool { return c.loading }
func (c *Carousel) Len() int      { return len(c.entries) }
func (c *Carousel) Index() int    { return c.current }
func (c *Carousel) Title() string { return c.mode.Title() }

// ShowNavigation reports whether left/right controls apply.
func (c *Carousel) ShowNavigation() bool { return len(c.entries) > 1 }

// Entries returns a copy of the loaded entries in order.
func (c *Carousel) Entries() []models.Entry {
	out := make([]models.Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Load fetches the list for the active mode and replaces the entries.
// Failures are logged and leave the previous entries in place.
func (c *Carousel) Load(ctx context.Context) error {
	mode := c.BeginLoad()
	entries, err := c.Fetch(ctx, mode)
	c.Loaded(mode, entries, err)
	return err
}

// BeginLoad marks the carousel as loading and returns the mode to fetch.
func (c *Carousel) BeginLoad() Mode {
	c.loading = true
	return c.mode
}

// Fetch requests the list for mode. It does not touch carousel state, so it
// may run off the owning goroutine.
func (c *Carousel) Fetch(ctx context.Context, mode Mode) ([]models.Entry, error) {
	if mode == ModeOutfits {
		outfits, err := c.client.ListOutfits(ctx)
		if err != nil {
			return nil, err
		}
		return models.OutfitEntries(outfits), nil
	}

	items, err := c.client.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	return models.ItemEntries(items), nil
}

// Loaded applies a fetch result. Results are applied in arrival order, even
// when mode has changed since the fetch started.
//
// TODO: drop results whose mode no longer matches c.mode.
func (c *Carousel) Loaded(mode Mode, entries []models.Entry, err error) {
	c.loading = false
	if err != nil {
		c.logger.Error(context.Background(), "carousel fetch failed", "mode", mode.String(), "error", err)
		return
	}
	c.entries = entries
	c.current = c.normalize(c.current)
}

// ToggleMode switches between items and outfits and reloads.
func (c *Carousel) ToggleMode(ctx context.Context) error {
	c.SetMode(c.mode.Toggle())
	return c.Load(ctx)
}

// SetMode changes the mode without fetching.
func (c *Carousel) SetMode(m Mode) {
	c.mode = m
}

func (c *Carousel) normalize(i int) int {
	total := len(c.entries)
	if total == 0 {
		return 0
	}
	return ((i % total) + total) % total
}

// MoveLeft steps to the previous entry, wrapping around.
func (c *Carousel) MoveLeft() {
	c.current = c.normalize(c.current - 1)
}

// MoveRight steps to the next entry, wrapping around.
func (c *Carousel) MoveRight() {
	c.current = c.normalize(c.current + 1)
}

// Position classifies the entry at sequence index i.
func (c *Carousel) Position(i int) Position {
	total := len(c.entries)
	if total == 0 {
		return PositionHidden
	}
	p := c.normalize(i - c.current)
	switch {
	case p == 0:
		return PositionFront
	case p == 1 || p == total-1:
		return PositionSide
	default:
		return PositionHidden
	}
}

// Slots returns every entry with its position. Hidden entries are included.
func (c *Carousel) Slots() []Slot {
	slots := make([]Slot, 0, len(c.entries))
	for i, e := range c.entries {
		slots = append(slots, Slot{Index: i, Entry: e, Position: c.Position(i)})
	}
	return slots
}

// Current returns the front entry.
func (c *Carousel) Current() (models.Entry, bool) {
	if len(c.entries) == 0 {
		return models.Entry{}, false
	}
	return c.entries[c.current], true
}

// Delete removes the entry with id on the server, then locally. A failed
// request is logged and leaves the carousel unchanged.
func (c *Carousel) Delete(ctx context.Context, id int64) error {
	if err := c.SendDelete(ctx, c.mode, id); err != nil {
		return err
	}
	c.Remove(id)
	return nil
}

// SendDelete issues the delete request for mode without touching carousel
// state. Failures are logged.
func (c *Carousel) SendDelete(ctx context.Context, mode Mode, id int64) error {
	var err error
	if mode == ModeOutfits {
		err = c.client.DeleteOutfit(ctx, id)
	} else {
		err = c.client.DeleteItem(ctx, id)
	}
	if err != nil {
		c.logger.Error(ctx, "carousel delete failed", "mode", mode.String(), "id", id, "error", err)
	}
	return err
}

// Remove drops entries with id from local state. Unknown ids are ignored.
func (c *Carousel) Remove(id int64) {
	kept := make([]models.Entry, 0, len(c.entries))
	for _, e := range c.entries {
		if e.ID() != id {
			kept = append(kept, e)
		}
	}
	c.entries = kept
	c.current = c.normalize(c.current)
}

// Open shows the detail overlay for the outfit with id.
func (c *Carousel) Open(id int64) error {
	for _, e := range c.entries {
		if e.ID() != id {
			continue
		}
		o, ok := e.Outfit()
		if !ok {
			return ErrNotOutfit
		}
		c.selected = &o
		return nil
	}
	return ErrUnknownEntry
}

// CloseDetail hides the detail overlay.
func (c *Carousel) CloseDetail() {
	c.selected = nil
}

// Selected returns the outfit shown in the detail overlay, if any.
func (c *Carousel) Selected() (models.Outfit, bool) {
	if c.selected == nil {
		return models.Outfit{}, false
	}
	return *c.selected, true
}
