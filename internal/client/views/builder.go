package views

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/closet/internal/client/client"
	"github.com/dmitrijs2005/closet/internal/client/models"
	"github.com/dmitrijs2005/closet/internal/common"
	"github.com/dmitrijs2005/closet/internal/logging"
)

// SavedMessage is the notice shown after an outfit is saved.
const SavedMessage = "Outfit saved successfully!"

// ErrSaveFailed is the blocking alert for a failed save.
var ErrSaveFailed = errors.New("Failed to save the outfit.")

// ErrNotInResults is returned by AddByID for ids missing from the results.
var ErrNotInResults = fmt.Errorf("search result %w", common.ErrorNotFound)

// OutfitBuilder combines search results with an outfit draft.
// The draft is independent of the results: saving resets the draft and
// leaves the results alone.
type OutfitBuilder struct {
	client   client.Client
	logger   logging.Logger
	duration time.Duration

	filter  models.Filter
	results []models.ClosetItem
	draft   models.OutfitDraft
	modal   *FilterModal
	notice  Notice
}

// NewOutfitBuilder returns a builder with empty results and draft.
// A non-positive noticeDuration falls back to DefaultNoticeDuration.
func NewOutfitBuilder(c client.Client, logger logging.Logger, noticeDuration time.Duration) *OutfitBuilder {
	if noticeDuration <= 0 {
		noticeDuration = DefaultNoticeDuration
	}
	return &OutfitBuilder{
		client:   c,
		logger:   logger,
		duration: noticeDuration,
		modal:    NewFilterModal(c, logger),
	}
}

// Filters is the modal feeding ApplyFilters.
func (b *OutfitBuilder) Filters() *FilterModal { return b.modal }

// OpenFilters opens the modal wired to ApplyFilters.
func (b *OutfitBuilder) OpenFilters() {
	b.modal.Open(func(ctx context.Context, search string, category models.Category) {
		b.ApplyFilters(ctx, search, category)
	})
}

// ApplyFilters replaces the results with a search. A failed search is
// logged and leaves the results unchanged.
func (b *OutfitBuilder) ApplyFilters(ctx context.Context, search string, category models.Category) {
	items, err := b.client.Search(ctx, search, category)
	if err != nil {
		b.logger.Error(ctx, "error fetching clothes", "search", search, "category", string(category), "error", err)
		return
	}
	b.filter = models.Filter{Search: search, Category: category}
	b.results = items
}

// Filter is the last applied filter.
func (b *OutfitBuilder) Filter() models.Filter { return b.filter }

// Results returns a copy of the search results.
func (b *OutfitBuilder) Results() []models.ClosetItem {
	out := make([]models.ClosetItem, len(b.results))
	copy(out, b.results)
	return out
}

// Draft exposes the outfit being composed.
func (b *OutfitBuilder) Draft() *models.OutfitDraft { return &b.draft }

// Add puts item into the draft; adding an id twice is a no-op.
func (b *OutfitBuilder) Add(item models.ClosetItem) bool {
	return b.draft.Add(item)
}

// AddByID adds the search result with id.
func (b *OutfitBuilder) AddByID(id int64) (bool, error) {
	for _, it := range b.results {
		if it.ID == id {
			return b.draft.Add(it), nil
		}
	}
	return false, ErrNotInResults
}

func (b *OutfitBuilder) Remove(id int64) bool { return b.draft.Remove(id) }

func (b *OutfitBuilder) SetName(name string) { b.draft.Name = name }

func (b *OutfitBuilder) SetDescription(desc string) { b.draft.Description = desc }

// Notice is the success notice.
func (b *OutfitBuilder) Notice() *Notice { return &b.notice }

// DismissNotice hides the success notice early.
func (b *OutfitBuilder) DismissNotice() { b.notice.Dismiss() }

// Save sends the draft. On success the draft is reset and a notice shown;
// on failure the draft is kept and ErrSaveFailed returned.
func (b *OutfitBuilder) Save(ctx context.Context) error {
	req := b.draft.Request()
	if err := b.client.SaveOutfit(ctx, req); err != nil {
		b.logger.Error(ctx, "error saving outfit", "name", req.Name, "items", len(req.Items), "error", err)
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	b.logger.Info(ctx, "outfit saved", "name", req.Name, "items", len(req.Items))
	b.draft.Reset()
	b.notice.Show(SavedMessage, b.duration)
	return nil
}
