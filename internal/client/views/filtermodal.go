package views

import (
	"context"
	"errors"
	"slices"

	"github.com/dmitrijs2005/closet/internal/client/client"
	"github.com/dmitrijs2005/closet/internal/client/models"
	"github.com/dmitrijs2005/closet/internal/logging"
)

// ErrNoCategory is returned by SelectValue before a category is chosen.
var ErrNoCategory = errors.New("select a category first")

// ErrUnknownOption is returned by SelectValue for values not offered.
var ErrUnknownOption = errors.New("value is not an option for this category")

// ApplyFunc receives the chosen (search, category) pair.
type ApplyFunc func(ctx context.Context, search string, category models.Category)

// FilterModal picks a category and one of its distinct values.
type FilterModal struct {
	client client.Client
	logger logging.Logger

	open     bool
	onApply  ApplyFunc
	category models.Category
	options  []string
	value    string
}

func NewFilterModal(c client.Client, logger logging.Logger) *FilterModal {
	return &FilterModal{client: c, logger: logger}
}

// Open shows the modal; onApply runs when the user applies it.
// Previous selections are kept.
func (m *FilterModal) Open(onApply ApplyFunc) {
	m.open = true
	m.onApply = onApply
}

func (m *FilterModal) IsOpen() bool { return m.open }

// Categories lists the selectable categories.
func (m *FilterModal) Categories() []models.Category { return models.Categories() }

func (m *FilterModal) Category() models.Category { return m.category }
func (m *FilterModal) Value() string { return m.value }

// Options returns the values offered for the current category.
func (m *FilterModal) Options() []string {
	return slices.Clone(m.options)
}

// Placeholder is the prompt of the value dropdown.
func (m *FilterModal) Placeholder() string {
	return "Select " + string(m.category)
}

// SelectCategory clears options and value, then fetches the options for c.
// CategoryNone only clears. A failed fetch is logged and leaves options empty.
func (m *FilterModal) SelectCategory(ctx context.Context, c models.Category) {
	m.category = c
	m.options = nil
	m.value = ""

	if c == models.CategoryNone {
		return
	}

	opts, err := m.client.CategoryOptions(ctx, c)
	if err != nil {
		m.logger.Error(ctx, "error fetching options", "category", string(c), "error", err)
		return
	}
	m.options = opts
}

// SelectValue picks one of the offered values.
func (m *FilterModal) SelectValue(v string) error {
	if m.category == models.CategoryNone {
		return ErrNoCategory
	}
	if v != "" && !slices.Contains(m.options, v) {
		return ErrUnknownOption
	}
	m.value = v
	return nil
}

// Apply hands (value, category) to the caller and closes the modal.
func (m *FilterModal) Apply(ctx context.Context) {
	fn := m.onApply
	m.Close()
	if fn != nil {
		fn(ctx, m.value, m.category)
	}
}

// Close hides the modal without applying.
func (m *FilterModal) Close() {
	m.open = false
	m.onApply = nil
}
