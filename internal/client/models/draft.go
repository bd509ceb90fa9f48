package models

// OutfitDraft is the outfit being composed in the builder. Items are unique
// by id and kept in insertion order.
type OutfitDraft struct {
	Name        string
	Description string
	items       []ClosetItem
}

// Add appends item unless an item with the same id is already present.
// It reports whether the draft changed.
func (d *OutfitDraft) Add(item ClosetItem) bool {
	if d.Contains(item.ID) {
		return false
	}
	d.items = append(d.items, item)
	return true
}

// Remove drops the item with the given id. It reports whether the draft changed.
func (d *OutfitDraft) Remove(id int64) bool {
	kept := d.items[:0]
	removed := false
	for _, it := range d.items {
		if it.ID == id {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	d.items = kept
	return removed
}

func (d *OutfitDraft) Contains(id int64) bool {
	for _, it := range d.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// Items returns a copy of the member items in order.
func (d *OutfitDraft) Items() []ClosetItem {
	out := make([]ClosetItem, len(d.items))
	copy(out, d.items)
	return out
}

// IDs returns the member ids in order.
func (d *OutfitDraft) IDs() []int64 {
	ids := make([]int64, 0, len(d.items))
	for _, it := range d.items {
		ids = append(ids, it.ID)
	}
	return ids
}

func (d *OutfitDraft) Len() int { return len(d.items) }

// Reset clears name, description and items.
func (d *OutfitDraft) Reset() {
	*d = OutfitDraft{}
}

// Request builds the save-outfit body.
func (d *OutfitDraft) Request() SaveOutfitRequest {
	return SaveOutfitRequest{Name: d.Name, Description: d.Description, Items: d.IDs()}
}
