package client

import (
	"context"

	"github.com/dmitrijs2005/closet/internal/client/models"
)

// Client is the closet API contract used by the views.
type Client interface {
	ListItems(ctx context.Context) ([]models.ClosetItem, error)
	ListOutfits(ctx context.Context) ([]models.Outfit, error)
	AddItem(ctx context.Context, item models.NewItem, image models.Image) (string, error)
	DeleteItem(ctx context.Context, id int64) error
	DeleteOutfit(ctx context.Context, id int64) error
	CategoryOptions(ctx context.Context, category models.Category) ([]string, error)
	Search(ctx context.Context, search string, category models.Category) ([]models.ClosetItem, error)
	SaveOutfit(ctx context.Context, req models.SaveOutfitRequest) error
}
