package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/closet/internal/client/views"
	"github.com/dmitrijs2005/closet/internal/common"
)

var tabs = []struct {
	view  views.View
	label string
}{
	{views.ViewCloset, "Closet"},
	{views.ViewOutfits, "Outfits"},
	{views.ViewAdd, "Add"},
}

// Nav renders the title bar and view tabs.
func (s Styles) Nav(active views.View) string {
	labels := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.view == active {
			labels = append(labels, s.ActiveTab.Render(t.label))
			continue
		}
		labels = append(labels, s.Tab.Render(t.label))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(common.AppTitle),
		lipgloss.JoinHorizontal(lipgloss.Top, labels...),
	)
}

// BannerLine renders a persistent error.
func (s Styles) BannerLine(msg string) string { return s.Banner.Render(msg) }

// NoticeLine renders a transient success message.
func (s Styles) NoticeLine(msg string) string { return s.Notice.Render(msg + "  (dismiss)") }

// AlertBox renders a blocking failure.
func (s Styles) AlertBox(msg string) string { return s.Alert.Render(msg) }

// Form renders the add-item form with its banner and notice.
func (s Styles) Form(f *views.ItemForm) string {
	var b strings.Builder
	b.WriteString(s.Heading.Render("Add Item"))
	b.WriteString("\n")
	for _, field := range views.Fields() {
		v := f.Get(field)
		if v == "" {
			v = s.Muted.Render("(empty)")
		}
		fmt.Fprintf(&b, "%-9s %s\n", string(field)+":", v)
	}
	if msg := f.Banner(); msg != "" {
		b.WriteString(s.BannerLine(msg))
		b.WriteString("\n")
	}
	if msg := f.Notice().Text(); msg != "" {
		b.WriteString(s.NoticeLine(msg))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FilterModal renders the category picker and its dependent values.
func (s Styles) FilterModal(m *views.FilterModal) string {
	var b strings.Builder
	b.WriteString(s.Heading.Render("Filters"))
	b.WriteString("\n")

	cats := make([]string, 0, 4)
	for _, c := range m.Categories() {
		label := string(c)
		if c == m.Category() {
			label = "[" + label + "]"
		}
		cats = append(cats, label)
	}
	fmt.Fprintf(&b, "Category: %s\n", strings.Join(cats, " "))

	if m.Category() != "" {
		value := m.Value()
		if value == "" {
			value = s.Muted.Render(m.Placeholder())
		}
		fmt.Fprintf(&b, "Value: %s\n", value)
		if opts := m.Options(); len(opts) > 0 {
			fmt.Fprintf(&b, "Options: %s", strings.Join(opts, ", "))
		} else {
			b.WriteString(s.Muted.Render("No options"))
		}
	}
	return s.Modal.Render(strings.TrimRight(b.String(), "\n"))
}

// Builder renders the search results next to the outfit draft.
func (s Styles) Builder(bld *views.OutfitBuilder, width int) string {
	results := bld.Results()
	cards := make([]string, 0, len(results))
	for _, it := range results {
		cards = append(cards, s.OutfitCard(it))
	}
	left := s.Heading.Render("Results")
	if len(cards) == 0 {
		left += "\n" + s.Muted.Render("Use filter to search your closet.")
	} else {
		left += "\n" + lipgloss.JoinVertical(lipgloss.Left, cards...)
	}

	draft := bld.Draft()
	var r strings.Builder
	r.WriteString(s.Heading.Render("Outfit Builder"))
	r.WriteString("\n")
	for _, it := range draft.Items() {
		fmt.Fprintf(&r, "%s %s %s  %s\n",
			s.Muted.Render(fmt.Sprintf("#%d", it.ID)),
			s.Label.Render(it.Type),
			s.Muted.Render(it.Style),
			s.Banner.Render("x"),
		)
	}
	if draft.Len() == 0 {
		r.WriteString(s.Muted.Render("No items yet."))
		r.WriteString("\n")
	}
	name := draft.Name
	if name == "" {
		name = s.Muted.Render("Outfit Name")
	}
	desc := draft.Description
	if desc == "" {
		desc = s.Muted.Render("Description")
	}
	fmt.Fprintf(&r, "Name: %s\nDescription: %s", name, desc)
	right := s.Card.Render(r.String())

	row := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	if width > 0 && lipgloss.Width(row) > width {
		row = lipgloss.JoinVertical(lipgloss.Left, left, right)
	}
	if msg := bld.Notice().Text(); msg != "" {
		row += "\n" + s.NoticeLine(msg)
	}
	return row
}
