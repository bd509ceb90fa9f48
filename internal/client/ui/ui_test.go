package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/closet/internal/client/models"
	"github.com/dmitrijs2005/closet/internal/client/views"
	"github.com/dmitrijs2005/closet/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	items   []models.ClosetItem
	outfits []models.Outfit
	options []string
}

func (s *stubClient) ListItems(context.Context) ([]models.ClosetItem, error) { return s.items, nil }
func (s *stubClient) ListOutfits(context.Context) ([]models.Outfit, error) { return s.outfits, nil }
func (s *stubClient) AddItem(context.Context, models.NewItem, models.Image) (string, error) {
	return "", nil
}
func (s *stubClient) DeleteItem(context.Context, int64) error { return nil }
func (s *stubClient) DeleteOutfit(context.Context, int64) error { return nil }
func (s *stubClient) CategoryOptions(context.Context, models.Category) ([]string, error) {
	return s.options, nil
}
func (s *stubClient) Search(context.Context, string, models.Category) ([]models.ClosetItem, error) {
	return s.items, nil
}
func (s *stubClient) SaveOutfit(context.Context, models.SaveOutfitRequest) error { return nil }

func strp(s string) *string { return &s }

func items(n int) []models.ClosetItem {
	out := make([]models.ClosetItem, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, models.ClosetItem{ID: int64(i), Type: "shirt", Color: "blue", Style: "casual", Occasion: "work"})
	}
	return out
}

func TestOutfitCard(t *testing.T) {
	s := DefaultStyles()
	out := s.OutfitCard(models.ClosetItem{ID: 4, Type: "jeans", Color: "black", Style: "street", Occasion: "party", ImageURL: strp("/i/4.png")})

	for _, want := range []string{"#4", "jeans", "Color: black", "Style: street", "Occasion: party", "/i/4.png"} {
		assert.Contains(t, out, want)
	}
}

func TestItemCard_PlaceholderAndUppercase(t *testing.T) {
	s := DefaultStyles()
	out := s.ItemCard(models.ClosetItem{Type: "shirt", Color: "blue"})

	assert.Contains(t, out, "SHIRT")
	assert.Contains(t, out, "/placeholder.png")
	assert.Contains(t, out, "Color: blue")
}

func TestEntryCard_HiddenRendersNothing(t *testing.T) {
	s := DefaultStyles()
	e := models.ItemEntry(models.ClosetItem{ID: 1, Type: "hat"})

	assert.Empty(t, s.EntryCard(e, views.PositionHidden))
	assert.Contains(t, s.EntryCard(e, views.PositionFront), "HAT")
	assert.Contains(t, s.EntryCard(e, views.PositionSide), "HAT")
}

func TestEntryCard_Outfit(t *testing.T) {
	s := DefaultStyles()
	o := models.Outfit{ID: 9, Name: "Gym", Description: "legs", Items: []models.ClosetItem{{ID: 1, ImageURL: strp("/a.png")}, {ID: 2}}}

	out := s.EntryCard(models.OutfitEntry(o), views.PositionFront)

	for _, want := range []string{"#9", "Gym", "legs", "/a.png", "/placeholder.png"} {
		assert.Contains(t, out, want)
	}
}

func TestTrack(t *testing.T) {
	s := DefaultStyles()
	c := views.NewCarousel(&stubClient{items: items(5)}, logging.Nop())
	require.NoError(t, c.Load(context.Background()))
	c.MoveRight()
	c.MoveRight()
	c.MoveRight()

	assert.Equal(t, "· · ○ ● ○", s.Track(c.Slots()))
}

func TestCarousel_States(t *testing.T) {
	s := DefaultStyles()

	t.Run("loading", func(t *testing.T) {
		c := views.NewCarousel(&stubClient{}, logging.Nop())
		c.BeginLoad()
		assert.Contains(t, s.Carousel(c, 0), "Loading...")
	})

	t.Run("empty", func(t *testing.T) {
		c := views.NewCarousel(&stubClient{}, logging.Nop())
		require.NoError(t, c.Load(context.Background()))
		out := s.Carousel(c, 0)
		assert.Contains(t, out, "Closet Items")
		assert.Contains(t, out, "Nothing here yet.")
	})

	t.Run("single entry has no navigation", func(t *testing.T) {
		c := views.NewCarousel(&stubClient{items: items(1)}, logging.Nop())
		require.NoError(t, c.Load(context.Background()))
		out := s.Carousel(c, 0)
		assert.NotContains(t, out, " < ")
		assert.Contains(t, out, "1/1")
	})

	t.Run("many entries show three cards", func(t *testing.T) {
		list := items(5)
		list[0].Type, list[1].Type, list[4].Type = "coat", "boots", "scarf"
		c := views.NewCarousel(&stubClient{items: list}, logging.Nop())
		require.NoError(t, c.Load(context.Background()))

		out := s.Carousel(c, 0)

		assert.Contains(t, out, " < ")
		assert.Contains(t, out, "COAT")
		assert.Contains(t, out, "BOOTS")
		assert.Contains(t, out, "SCARF")
		assert.Contains(t, out, "1/5")
	})

	t.Run("narrow terminal stacks cards", func(t *testing.T) {
		c := views.NewCarousel(&stubClient{items: items(3)}, logging.Nop())
		require.NoError(t, c.Load(context.Background()))

		out := s.Carousel(c, 40)
		for _, line := range strings.Split(out, "\n") {
			assert.LessOrEqual(t, lipgloss.Width(line), 40)
		}
	})
}

func TestCarousel_DetailOverlay(t *testing.T) {
	s := DefaultStyles()
	o := models.Outfit{ID: 3, Name: "Date", Description: "dinner", Items: []models.ClosetItem{{ID: 1, ImageURL: strp("/d.png")}}}
	c := views.NewCarousel(&stubClient{outfits: []models.Outfit{o}}, logging.Nop())
	c.SetMode(views.ModeOutfits)
	require.NoError(t, c.Load(context.Background()))
	require.NoError(t, c.Open(3))

	out := s.Carousel(c, 0)

	assert.Contains(t, out, "Outfits")
	assert.Contains(t, out, "dinner")
	assert.Contains(t, out, "(close)")
}

func TestNav(t *testing.T) {
	out := DefaultStyles().Nav(views.ViewOutfits)
	for _, want := range []string{"Closet", "Outfits", "Add"} {
		assert.Contains(t, out, want)
	}
}

func TestForm(t *testing.T) {
	s := DefaultStyles()
	f := views.NewItemForm(&stubClient{}, logging.Nop(), time.Hour)
	f.Set(views.FieldType, "shirt")

	out := s.Form(f)
	assert.Contains(t, out, "type:")
	assert.Contains(t, out, "shirt")
	assert.Contains(t, out, "(empty)")

	require.Error(t, f.Submit(context.Background()))
	assert.Contains(t, s.Form(f), "Please fill in all fields and upload an image.")
}

func TestFilterModalView(t *testing.T) {
	s := DefaultStyles()
	m := views.NewFilterModal(&stubClient{options: []string{"red", "blue"}}, logging.Nop())

	assert.NotContains(t, s.FilterModal(m), "Value:")

	m.SelectCategory(context.Background(), models.CategoryColor)
	out := s.FilterModal(m)
	assert.Contains(t, out, "[color]")
	assert.Contains(t, out, "Select color")
	assert.Contains(t, out, "red, blue")
}

func TestBuilderView(t *testing.T) {
	s := DefaultStyles()
	b := views.NewOutfitBuilder(&stubClient{items: items(2)}, logging.Nop(), time.Hour)

	out := s.Builder(b, 0)
	assert.Contains(t, out, "Use filter to search your closet.")
	assert.Contains(t, out, "No items yet.")
	assert.Contains(t, out, "Outfit Name")

	b.ApplyFilters(context.Background(), "", models.CategoryNone)
	_, err := b.AddByID(2)
	require.NoError(t, err)
	b.SetName("Office")

	out = s.Builder(b, 0)
	assert.Contains(t, out, "Office")
	assert.Contains(t, out, "#2")
	assert.NotContains(t, out, "No items yet.")
}
