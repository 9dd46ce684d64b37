package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mlejeune/soiree-tui/internal/deck"
)

type styles struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	menu     lipgloss.Style
	key      lipgloss.Style
	pill     lipgloss.Style
	word     lipgloss.Style
	bonus    lipgloss.Style
	status   lipgloss.Style
	faint    lipgloss.Style
	card     lipgloss.Style
	banner   lipgloss.Style
	footer   lipgloss.Style
}

func newStyles() styles {
	accent := lipgloss.Color(deck.AccentFallback)
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8")),
		menu:     lipgloss.NewStyle().PaddingLeft(2),
		key:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FBBF24")),
		pill: lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color("#1E293B")).
			Foreground(lipgloss.Color("#E2E8F0")),
		word:  lipgloss.NewStyle().Bold(true).Padding(0, 2),
		bonus: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#F472B6")),
		status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171")),
		faint: lipgloss.NewStyle().Faint(true),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 3).
			Align(lipgloss.Center),
		banner: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(lipgloss.Color("#DC143C")).
			Foreground(lipgloss.Color("#EDEDED")),
		footer: lipgloss.NewStyle().Faint(true).MarginTop(1),
	}
}

// themeStyle renders a theme name on its accent color with readable text.
func themeStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().
		Padding(0, 1).
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(deck.TextColorFor(hex)))
}

// cardStyle colors a visual card with the deck palette, falling back to the
// shared accent when the token is unknown.
func cardStyle(base lipgloss.Style, token string) lipgloss.Style {
	hex := deck.ResolveColor(token)
	return base.
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(deck.TextColorFor(hex))).
		BorderForeground(lipgloss.Color(hex))
}
