// Package ui renders closet client state as terminal text with lipgloss.
// Renderers are pure: they read view state and return strings.
package ui

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	Primary     = lipgloss.Color("#2563eb")
	Accent      = lipgloss.Color("#fde047")
	Destructive = lipgloss.Color("#ef4444")
	Success     = lipgloss.Color("#22c55e")
	Muted       = lipgloss.Color("#6b7280")
	Border      = lipgloss.Color("#d1d5db")
)

const (
	cardWidth     = 28
	sideCardWidth = 22
)

// Styles groups every style the renderers use.
type Styles struct {
	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Heading   lipgloss.Style
	Front     lipgloss.Style
	Side      lipgloss.Style
	Card      lipgloss.Style
	Modal     lipgloss.Style
	Label     lipgloss.Style
	Muted     lipgloss.Style
	Banner    lipgloss.Style
	Notice    lipgloss.Style
	Alert     lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyles returns the closet theme.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Background(Accent).
			Padding(0, 2),
		Tab:       lipgloss.NewStyle().Foreground(Primary).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Foreground(Primary).Bold(true).Underline(true).Padding(0, 1),
		Heading:   lipgloss.NewStyle().Bold(true),
		Front: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(Primary).
			Padding(0, 1).
			Width(cardWidth),
		Side: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(Border).
			Foreground(Muted).
			Padding(0, 1).
			Width(sideCardWidth),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1).
			Width(cardWidth),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Primary).
			Padding(1, 2),
		Label:  lipgloss.NewStyle().Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(Muted),
		Banner: lipgloss.NewStyle().Foreground(Destructive).Bold(true),
		Notice: lipgloss.NewStyle().Foreground(Success).Bold(true),
		Alert: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(Destructive).
			Foreground(Destructive).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Foreground(Muted).Italic(true),
	}
}
