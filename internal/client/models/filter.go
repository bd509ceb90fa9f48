package models

import (
	"fmt"
	"strings"
)

// Category names the item attribute a search is restricted to.
type Category string

const (
	CategoryNone     Category = ""
	CategoryType     Category = "type"
	CategoryColor    Category = "color"
	CategoryStyle    Category = "style"
	CategoryOccasion Category = "occasion"
)

var categories = []Category{CategoryType, CategoryColor, CategoryStyle, CategoryOccasion}

// Categories returns the fixed category list in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory accepts a category name in any case; "" yields CategoryNone.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return CategoryNone, nil
	}
	for _, c := range categories {
		if string(c) == s {
			return c, nil
		}
	}
	return CategoryNone, fmt.Errorf("unknown category %q", s)
}

// Label is the capitalised display name, e.g. "Color".
func (c Category) Label() string {
	if c == CategoryNone {
		return "Select Category"
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// Filter is a search value restricted to a category.
type Filter struct {
	Search   string
	Category Category
}
