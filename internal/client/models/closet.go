package models

import "time"

// ClosetItem is a single catalogued clothing entry. It is created server-side
// on upload and immutable from the client except for deletion.
type ClosetItem struct {
	ID       int64   `json:"id"`
	Type     string  `json:"type"`
	Color    string  `json:"color"`
	Style    string  `json:"style"`
	Occasion string  `json:"occasion"`
	ImageURL *string `json:"imageUrl"`
}

// Image returns the item's image URL or fallback when the item has none.
func (c ClosetItem) Image(fallback string) string {
	if c.ImageURL == nil || *c.ImageURL == "" {
		return fallback
	}
	return *c.ImageURL
}

// Outfit is a named collection of existing closet items. Deleting an outfit
// does not delete its items.
type Outfit struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Items       []ClosetItem `json:"items"`
}

// NewItem holds the text fields of an item upload.
type NewItem struct {
	Type     string
	Color    string
	Style    string
	Occasion string
}

// Image is an image file ready to be sent as a multipart part.
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}

// AddItemResponse is the acknowledgement returned by the add endpoint.
type AddItemResponse struct {
	Message string `json:"message"`
}

// SaveOutfitRequest is the JSON body of the save-outfit endpoint.
type SaveOutfitRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Items       []int64 `json:"items"`
}
