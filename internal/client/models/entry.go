package models

// EntryKind discriminates the Entry union.
type EntryKind int

const (
	EntryKindItem EntryKind = iota
	EntryKindOutfit
)

func (k EntryKind) String() string {
	switch k {
	case EntryKindItem:
		return "item"
	case EntryKindOutfit:
		return "outfit"
	default:
		return "unknown"
	}
}

// Entry is one carousel element: either a ClosetItem or an Outfit.
// Construct it with ItemEntry or OutfitEntry; the zero value is an item
// entry with id 0.
type Entry struct {
	kind   EntryKind
	item   ClosetItem
	outfit Outfit
}

func ItemEntry(item ClosetItem) Entry {
	return Entry{kind: EntryKindItem, item: item}
}

func OutfitEntry(outfit Outfit) Entry {
	return Entry{kind: EntryKindOutfit, outfit: outfit}
}

// ItemEntries wraps items in order.
func ItemEntries(items []ClosetItem) []Entry {
	out := make([]Entry, 0, len(items))
	for _, it := range items {
		out = append(out, ItemEntry(it))
	}
	return out
}

// OutfitEntries wraps outfits in order.
func OutfitEntries(outfits []Outfit) []Entry {
	out := make([]Entry, 0, len(outfits))
	for _, o := range outfits {
		out = append(out, OutfitEntry(o))
	}
	return out
}

func (e Entry) Kind() EntryKind { return e.kind }

// ID returns the id of the wrapped value.
func (e Entry) ID() int64 {
	if e.kind == EntryKindOutfit {
		return e.outfit.ID
	}
	return e.item.ID
}

// Item returns the wrapped item; ok is false for outfit entries.
func (e Entry) Item() (ClosetItem, bool) {
	return e.item, e.kind == EntryKindItem
}

// Outfit returns the wrapped outfit; ok is false for item entries.
func (e Entry) Outfit() (Outfit, bool) {
	return e.outfit, e.kind == EntryKindOutfit
}
