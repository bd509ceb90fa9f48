package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/closet/internal/client/models"
	"github.com/dmitrijs2005/closet/internal/client/views"
	"github.com/dmitrijs2005/closet/internal/common"
)

func imageOf(item models.ClosetItem) string {
	return item.Image(common.PlaceholderImage)
}

// OutfitCard renders one item in a selection list.
func (s Styles) OutfitCard(item models.ClosetItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", s.Muted.Render(fmt.Sprintf("#%d", item.ID)), s.Label.Render(item.Type))
	fmt.Fprintf(&b, "Color: %s\n", item.Color)
	fmt.Fprintf(&b, "Style: %s\n", item.Style)
	fmt.Fprintf(&b, "Occasion: %s\n", item.Occasion)
	b.WriteString(s.Muted.Render(imageOf(item)))
	return s.Card.Render(b.String())
}

// ItemCard renders a carousel item.
func (s Styles) ItemCard(item models.ClosetItem) string {
	var b strings.Builder
	b.WriteString(s.Muted.Render(imageOf(item)))
	b.WriteString("\n")
	b.WriteString(s.Label.Render(strings.ToUpper(item.Type)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Color: %s\n", item.Color)
	fmt.Fprintf(&b, "Style: %s\n", item.Style)
	fmt.Fprintf(&b, "Occasion: %s", item.Occasion)
	return b.String()
}

// OutfitSummary renders a carousel outfit: name, description and member images.
func (s Styles) OutfitSummary(o models.Outfit) string {
	var b strings.Builder
	b.WriteString(s.Label.Render(o.Name))
	if o.Description != "" {
		b.WriteString("\n")
		b.WriteString(o.Description)
	}
	for _, it := range o.Items {
		b.WriteString("\n")
		b.WriteString(s.Muted.Render("- " + imageOf(it)))
	}
	return b.String()
}

// EntryCard renders e framed for its carousel position. Hidden entries
// render as "".
func (s Styles) EntryCard(e models.Entry, pos views.Position) string {
	if pos == views.PositionHidden {
		return ""
	}

	var body string
	if o, ok := e.Outfit(); ok {
		body = s.OutfitSummary(o)
	} else {
		item, _ := e.Item()
		body = s.ItemCard(item)
	}
	body = s.Muted.Render(fmt.Sprintf("#%d", e.ID())) + "\n" + body

	if pos == views.PositionFront {
		return s.Front.Render(body)
	}
	return s.Side.Render(body)
}

// Track marks every slot of the carousel: front, side or hidden.
func (s Styles) Track(slots []views.Slot) string {
	marks := make([]string, 0, len(slots))
	for _, sl := range slots {
		switch sl.Position {
		case views.PositionFront:
			marks = append(marks, "●")
		case views.PositionSide:
			marks = append(marks, "○")
		default:
			marks = append(marks, "·")
		}
	}
	return strings.Join(marks, " ")
}

// Carousel renders the closet browser. width limits the horizontal strip;
// narrower terminals get the cards stacked.
func (s Styles) Carousel(c *views.Carousel, width int) string {
	var b strings.Builder
	b.WriteString(s.Heading.Render(c.Title()))
	b.WriteString("\n")

	if c.Loading() {
		b.WriteString(s.Muted.Render("Loading..."))
		return b.String()
	}

	n := c.Len()
	if n == 0 {
		b.WriteString(s.Muted.Render("Nothing here yet."))
		return b.String()
	}

	slots := c.Slots()
	cur := c.Index()
	cards := make([]string, 0, 3)
	if n > 2 {
		left := slots[(cur-1+n)%n]
		cards = append(cards, s.EntryCard(left.Entry, left.Position))
	}
	front := slots[cur]
	cards = append(cards, s.EntryCard(front.Entry, front.Position))
	if n > 1 {
		right := slots[(cur+1)%n]
		cards = append(cards, s.EntryCard(right.Entry, right.Position))
	}

	strip := lipgloss.JoinHorizontal(lipgloss.Center, cards...)
	if c.ShowNavigation() {
		strip = lipgloss.JoinHorizontal(lipgloss.Center, " < ", strip, " > ")
	}
	if width > 0 && lipgloss.Width(strip) > width {
		strip = lipgloss.JoinVertical(lipgloss.Left, cards...)
	}

	b.WriteString(strip)
	b.WriteString("\n")
	b.WriteString(s.Muted.Render(fmt.Sprintf("%s  %d/%d", s.Track(slots), cur+1, n)))

	if o, ok := c.Selected(); ok {
		b.WriteString("\n")
		b.WriteString(s.Detail(o))
	}
	return b.String()
}

// Detail renders the fullscreen outfit overlay.
func (s Styles) Detail(o models.Outfit) string {
	var b strings.Builder
	b.WriteString(s.Label.Render(o.Name))
	b.WriteString("\n")
	b.WriteString(o.Description)
	for _, it := range o.Items {
		b.WriteString("\n")
		b.WriteString(imageOf(it))
	}
	b.WriteString("\n\n")
	b.WriteString(s.Help.Render("(close)"))
	return s.Modal.Render(b.String())
}
