package views

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/closet/internal/client/models"
	"github.com/dmitrijs2005/closet/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutfitBuilder_AddIsIdempotentByID(t *testing.T) {
	b := NewOutfitBuilder(&fakeClient{}, logging.Nop(), time.Hour)
	item := models.ClosetItem{ID: 3, Type: "shirt"}
	copyOfItem := models.ClosetItem{ID: 3, Type: "renamed"}

	assert.True(t, b.Add(item))
	assert.False(t, b.Add(copyOfItem))

	assert.Equal(t, []int64{3}, b.Draft().IDs())
	assert.Equal(t, "shirt", b.Draft().Items()[0].Type)
}

func TestOutfitBuilder_RemoveByID(t *testing.T) {
	b := NewOutfitBuilder(&fakeClient{}, logging.Nop(), time.Hour)
	for _, it := range makeItems(3) {
		b.Add(it)
	}

	assert.True(t, b.Remove(2))
	assert.False(t, b.Remove(2))
	assert.Equal(t, []int64{1, 3}, b.Draft().IDs())
}

func TestOutfitBuilder_ApplyFilters(t *testing.T) {
	fc := &fakeClient{searchResult: makeItems(2)}
	b := NewOutfitBuilder(fc, logging.Nop(), time.Hour)

	b.ApplyFilters(context.Background(), "blue", models.CategoryColor)

	assert.Equal(t, []models.Filter{{Search: "blue", Category: models.CategoryColor}}, fc.searches)
	assert.Len(t, b.Results(), 2)
	assert.Equal(t, models.Filter{Search: "blue", Category: models.CategoryColor}, b.Filter())

	fc.searchErr = errors.New("down")
	fc.searchResult = nil
	b.ApplyFilters(context.Background(), "red", models.CategoryColor)
	assert.Len(t, b.Results(), 2, "failed search keeps previous results")
}

func TestOutfitBuilder_AddByID(t *testing.T) {
	b := NewOutfitBuilder(&fakeClient{searchResult: makeItems(2)}, logging.Nop(), time.Hour)
	b.ApplyFilters(context.Background(), "", models.CategoryNone)

	added, err := b.AddByID(2)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = b.AddByID(2)
	require.NoError(t, err)
	assert.False(t, added)

	_, err = b.AddByID(9)
	assert.ErrorIs(t, err, ErrNotInResults)
}

func TestOutfitBuilder_FilterModalFeedsSearch(t *testing.T) {
	fc := &fakeClient{
		options:      map[models.Category][]string{models.CategoryColor: {"red", "blue"}},
		searchResult: makeItems(1),
	}
	b := NewOutfitBuilder(fc, logging.Nop(), time.Hour)

	b.OpenFilters()
	m := b.Filters()
	m.SelectCategory(context.Background(), models.CategoryColor)
	require.NoError(t, m.SelectValue("blue"))
	m.Apply(context.Background())

	assert.Equal(t, []models.Filter{{Search: "blue", Category: models.CategoryColor}}, fc.searches)
	assert.Len(t, b.Results(), 1)
	assert.False(t, m.IsOpen())
}

func TestOutfitBuilder_SaveSuccessResetsDraftKeepsResults(t *testing.T) {
	fc := &fakeClient{searchResult: makeItems(3)}
	b := NewOutfitBuilder(fc, logging.Nop(), 40*time.Millisecond)
	b.ApplyFilters(context.Background(), "", models.CategoryNone)
	_, _ = b.AddByID(3)
	_, _ = b.AddByID(1)
	b.SetName("Monday")
	b.SetDescription("office")

	require.NoError(t, b.Save(context.Background()))

	require.Len(t, fc.saved, 1)
	assert.Equal(t, models.SaveOutfitRequest{Name: "Monday", Description: "office", Items: []int64{3, 1}}, fc.saved[0])
	assert.Zero(t, b.Draft().Len())
	assert.Empty(t, b.Draft().Name)
	assert.Empty(t, b.Draft().Description)
	assert.Len(t, b.Results(), 3)
	assert.Equal(t, SavedMessage, b.Notice().Text())

	assert.Eventually(t, func() bool { return !b.Notice().Visible() }, time.Second, 5*time.Millisecond)
}

func TestOutfitBuilder_SaveFailureKeepsDraft(t *testing.T) {
	fc := &fakeClient{saveErr: errors.New("error saving outfit: 500 Internal Server Error")}
	b := NewOutfitBuilder(fc, logging.Nop(), time.Hour)
	b.Add(models.ClosetItem{ID: 1})
	b.SetName("Retry")

	err := b.Save(context.Background())

	require.ErrorIs(t, err, ErrSaveFailed)
	assert.Equal(t, []int64{1}, b.Draft().IDs())
	assert.Equal(t, "Retry", b.Draft().Name)
	assert.False(t, b.Notice().Visible())

	fc.saveErr = nil
	require.NoError(t, b.Save(context.Background()))
	assert.Len(t, fc.saved, 2)
	b.DismissNotice()
}

func TestOutfitBuilder_SaveEmptyDraftSendsEmptyItems(t *testing.T) {
	fc := &fakeClient{}
	b := NewOutfitBuilder(fc, logging.Nop(), time.Hour)

	require.NoError(t, b.Save(context.Background()))

	require.Len(t, fc.saved, 1)
	assert.NotNil(t, fc.saved[0].Items)
	assert.Empty(t, fc.saved[0].Items)
	b.DismissNotice()
}
