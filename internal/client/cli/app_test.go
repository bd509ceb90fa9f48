package cli

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/closet/internal/client/config"
	"github.com/dmitrijs2005/closet/internal/client/models"
	"github.com/dmitrijs2005/closet/internal/client/views"
	"github.com/dmitrijs2005/closet/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	items   []models.ClosetItem
	outfits []models.Outfit
	options []string
	addMsg  string
	saveErr error

	deletedItems []int64
	added        []models.NewItem
	searches     []models.Filter
	saved        []models.SaveOutfitRequest
}

func (f *fakeClient) ListItems(context.Context) ([]models.ClosetItem, error) { return f.items, nil }
func (f *fakeClient) ListOutfits(context.Context) ([]models.Outfit, error) { return f.outfits, nil }
func (f *fakeClient) AddItem(_ context.Context, it models.NewItem, _ models.Image) (string, error) {
	f.added = append(f.added, it)
	return f.addMsg, nil
}
func (f *fakeClient) DeleteItem(_ context.Context, id int64) error {
	f.deletedItems = append(f.deletedItems, id)
	return nil
}
func (f *fakeClient) DeleteOutfit(context.Context, int64) error { return nil }
func (f *fakeClient) CategoryOptions(context.Context, models.Category) ([]string, error) {
	return f.options, nil
}
func (f *fakeClient) Search(_ context.Context, search string, c models.Category) ([]models.ClosetItem, error) {
	f.searches = append(f.searches, models.Filter{Search: search, Category: c})
	return f.items, nil
}
func (f *fakeClient) SaveOutfit(_ context.Context, req models.SaveOutfitRequest) error {
	f.saved = append(f.saved, req)
	return f.saveErr
}

func testItems() []models.ClosetItem {
	return []models.ClosetItem{
		{ID: 1, Type: "coat", Color: "red", Style: "formal", Occasion: "work"},
		{ID: 2, Type: "boots", Color: "blue", Style: "casual", Occasion: "hike"},
		{ID: 3, Type: "scarf", Color: "blue", Style: "casual", Occasion: "any"},
	}
}

func newTestApp(fc *fakeClient, input string) (*App, *bytes.Buffer) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.NoticeDuration = time.Hour

	var out bytes.Buffer
	app := NewApp(cfg, fc, logging.Nop(), strings.NewReader(input), &out)
	return app, &out
}

func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestApp_StartsOnCloset(t *testing.T) {
	app, out := newTestApp(&fakeClient{items: testItems()}, script("exit"))

	app.Run(context.Background())

	got := out.String()
	assert.Contains(t, got, "Closet")
	assert.Contains(t, got, "Closet Items")
	assert.Contains(t, got, "COAT")
	assert.Contains(t, got, "closet (closet/items)> ")
}

func TestApp_ClosetNavigationAndDelete(t *testing.T) {
	fc := &fakeClient{items: testItems()}
	app, out := newTestApp(fc, script("right", "delete", "left", "exit"))

	app.Run(context.Background())

	assert.Equal(t, []int64{2}, fc.deletedItems)
	assert.Contains(t, out.String(), "1/2")
}

func TestApp_OpenItemIsRejected(t *testing.T) {
	app, out := newTestApp(&fakeClient{items: testItems()}, script("open", "open 99", "exit"))

	app.Run(context.Background())

	assert.Contains(t, out.String(), "Only outfits can be opened.")
	assert.Contains(t, out.String(), "No entry #99.")
}

func TestApp_ToggleAndOpenOutfit(t *testing.T) {
	fc := &fakeClient{
		items:   testItems(),
		outfits: []models.Outfit{{ID: 8, Name: "Weekend", Description: "hiking trip", Items: testItems()[1:]}},
	}
	app, out := newTestApp(fc, script("toggle", "open", "close", "exit"))

	app.Run(context.Background())

	got := out.String()
	assert.Contains(t, got, "closet (closet/outfits)> ")
	assert.Contains(t, got, "hiking trip")
	assert.Contains(t, got, "(close)")
}

func TestApp_Browse(t *testing.T) {
	app, _ := newTestApp(&fakeClient{items: testItems()}, script("browse", "exit"))
	var got *views.Carousel
	app.browse = func(ctx context.Context, c *views.Carousel, in io.Reader, out io.Writer) error {
		got = c
		c.MoveRight()
		return nil
	}

	app.Run(context.Background())

	require.NotNil(t, got)
	assert.Equal(t, 1, got.Index())
}

func TestApp_BrowseErrorIsLogged(t *testing.T) {
	app, _ := newTestApp(&fakeClient{}, "")
	app.browse = func(context.Context, *views.Carousel, io.Reader, io.Writer) error { return errors.New("no tty") }
	require.NoError(t, app.Select(context.Background(), views.ViewCloset))

	assert.Error(t, app.Exec(context.Background(), "browse", nil))
}

func writePNG(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coat.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, 1, 1))))
	require.NoError(t, f.Close())
	return path
}

func TestApp_AddItem(t *testing.T) {
	fc := &fakeClient{addMsg: views.AddedMessage}
	img := writePNG(t)
	app, out := newTestApp(fc, script(
		"add",
		"submit",
		"set type shirt",
		"fill",
		"",
		"blue",
		"casual",
		"work",
		img,
		"submit",
		"exit",
	))

	app.Run(context.Background())

	got := out.String()
	assert.Contains(t, got, "Please fill in all fields and upload an image.")
	require.Len(t, fc.added, 1)
	assert.Equal(t, models.NewItem{Type: "shirt", Color: "blue", Style: "casual", Occasion: "work"}, fc.added[0])
	assert.Contains(t, got, views.AddedMessage)
}

func TestApp_SetUnknownField(t *testing.T) {
	app, out := newTestApp(&fakeClient{}, script("add", "set size XL", "set type", "exit"))

	app.Run(context.Background())

	assert.Contains(t, out.String(), `unknown field "size"`)
	assert.Contains(t, out.String(), "Usage: set <field> <value>")
}

func TestApp_BuildOutfit(t *testing.T) {
	fc := &fakeClient{items: testItems(), options: []string{"red", "blue"}}
	app, out := newTestApp(fc, script(
		"outfits",
		"filter",
		"color",
		"blue",
		"",
		"pick 2",
		"pick 2",
		"pick 3",
		"drop 3",
		"pick 42",
		"name Weekend fit",
		"describe",
		"comfy",
		"",
		"save",
		"exit",
	))

	app.Run(context.Background())

	assert.Equal(t, []models.Filter{{Search: "blue", Category: models.CategoryColor}}, fc.searches)
	require.Len(t, fc.saved, 1)
	assert.Equal(t, models.SaveOutfitRequest{Name: "Weekend fit", Description: "comfy", Items: []int64{2}}, fc.saved[0])

	got := out.String()
	assert.Contains(t, got, "Select color")
	assert.Contains(t, got, "Item #2 is already in the outfit.")
	assert.Contains(t, got, "Item #42 is not in the results.")
	assert.Contains(t, got, views.SavedMessage)
}

func TestApp_FilterClosedWithoutApplying(t *testing.T) {
	fc := &fakeClient{items: testItems(), options: []string{"red"}}
	app, _ := newTestApp(fc, script("outfits", "filter", "color", "red", "n", "exit"))

	app.Run(context.Background())

	assert.Empty(t, fc.searches)
}

func TestApp_SaveFailureAlerts(t *testing.T) {
	fc := &fakeClient{items: testItems(), saveErr: errors.New("500")}
	app, out := newTestApp(fc, script("outfits", "name Try", "save", "show", "exit"))

	app.Run(context.Background())

	assert.Contains(t, out.String(), "Failed to save the outfit.")
	assert.Equal(t, "Try", fc.saved[0].Name)
	assert.Contains(t, out.String(), "Name: Try", "draft kept for retry")
}

func TestApp_Help(t *testing.T) {
	app, _ := newTestApp(&fakeClient{}, "")
	ctx := context.Background()

	require.NoError(t, app.Select(ctx, views.ViewCloset))
	assert.Contains(t, app.Help(), "browse")

	require.NoError(t, app.Select(ctx, views.ViewAdd))
	assert.Contains(t, app.Help(), "submit")

	require.NoError(t, app.Select(ctx, views.ViewOutfits))
	assert.Contains(t, app.Help(), "describe")
}

func TestApp_UnknownViewCommand(t *testing.T) {
	app, _ := newTestApp(&fakeClient{}, "")
	require.NoError(t, app.Select(context.Background(), views.ViewAdd))

	assert.ErrorIs(t, app.Exec(context.Background(), "toggle", nil), errUnknownCommand)
}
