package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/mlejeune/soiree-tui/internal/deck"
	"github.com/mlejeune/soiree-tui/internal/engine"
)

func (m model) renderMainMenu() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("SOIRÉE") + "  " + m.styles.subtitle.Render("party deck — "+m.version))
	b.WriteString("\n\n")
	entries := []struct{ key, label string }{
		{"1", "Oh les mains · mime, hum or sound the word"},
		{"2", "Pictionary · draw the card"},
		{"3", "Esquissé ? · sketch chain deck"},
		{"4", "Black Stories · lateral riddles"},
		{"5", "Help"},
		{"q", "Quit"},
	}
	for _, e := range entries {
		b.WriteString(m.styles.menu.Render(m.styles.key.Render(e.key)+"  "+e.label) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.styles.status.Render(m.status) + "\n")
	}
	b.WriteString(m.styles.footer.Render("locale: " + string(m.locale)))
	return b.String()
}

func (m model) renderConfig() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Oh les mains — setup") + "\n\n")
	if !m.themeChosen {
		b.WriteString("Pick a theme:\n\n")
		for i, th := range deck.Themes {
			b.WriteString(m.styles.menu.Render(
				m.styles.key.Render(fmt.Sprintf("%d", i+1))+"  "+themeStyle(th.Color).Render(th.Name)) + "\n")
		}
	} else {
		th := deck.ThemeMeta(m.themeID)
		b.WriteString("Theme: " + themeStyle(th.Color).Render(th.Name) + "\n\nPick a difficulty:\n\n")
		for tier := 1; tier <= 3; tier++ {
			line := m.styles.key.Render(fmt.Sprintf("%d", tier)) + "  " + th.TierLabels[tier]
			if tier == m.tier {
				line += "  " + m.styles.bonus.Render("◀")
			}
			b.WriteString(m.styles.menu.Render(line) + "\n")
		}
	}
	b.WriteString("\n")
	if m.themeChosen && m.tier > 0 {
		b.WriteString(m.styles.pill.Render("enter to start") + "\n")
	}
	b.WriteString(m.styles.footer.Render("r restart choice · esc back"))
	return b.String()
}

func (m model) renderPlay() string {
	s := m.session
	th := deck.ThemeMeta(m.themeID)
	var b strings.Builder

	header := themeStyle(th.Color).Render(th.Name) + " " + m.styles.pill.Render(th.TierLabels[m.tier])
	score := m.styles.pill.Render(fmt.Sprintf("tries %d", s.Tries)) + " " +
		m.styles.pill.Render(fmt.Sprintf("found %d", s.Found)) + " " +
		m.styles.pill.Render(fmt.Sprintf("points %d", s.Points))
	b.WriteString(padLine(header, score, m.width) + "\n\n")

	word := s.WordLabel()
	wordStyle := m.styles.word.Foreground(lipgloss.Color(th.Color))
	if s.Hidden() {
		wordStyle = m.styles.word.Foreground(lipgloss.Color("#475569"))
	}
	b.WriteString(wordStyle.Render(word) + "\n\n")

	if bonus := s.BonusLabel(); bonus != "" {
		b.WriteString(m.styles.bonus.Render("Gage · "+bonus) + "\n\n")
	}

	b.WriteString(m.styles.faint.Render(fmt.Sprintf("%d left in the bag", s.Stock())) + "\n")
	b.WriteString(m.styles.footer.Render(
		"f found · s skip · h hide · l locale (" + string(s.Locale()) + ") · b back · R hard reset · q quit"))
	return b.String()
}

func (m model) renderCards() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render(m.cardGame.Title) + "\n\n")
	if len(m.cards) == 0 {
		b.WriteString(m.styles.status.Render("No cards loaded.") + "\n")
		b.WriteString(m.styles.footer.Render("esc back"))
		return b.String()
	}

	card := m.cards[m.order[m.pos]]
	word := card.Label(m.locale, deck.DefaultFallback)
	if m.cardHidden {
		word = engine.HiddenMask
	}

	face := cardStyle(m.styles.card, card.CardColor)
	lines := []string{"№ " + card.Number(), "", word}
	if card.Hint != "" && !m.cardHidden {
		lines = append(lines, "", m.styles.faint.Render(card.Hint))
	}
	b.WriteString(face.Render(strings.Join(lines, "\n")) + "\n\n")

	if m.challenge {
		b.WriteString(m.styles.banner.Render("CHALLENGE! everyone plays this one") + "\n\n")
	}
	if m.showLegend {
		for _, e := range deck.CategoryLegend {
			sw := lipgloss.NewStyle().Foreground(lipgloss.Color(deck.ResolveColor(e.Token)))
			b.WriteString("  " + sw.Render(e.Shape) + " " + e.Label + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.faint.Render(fmt.Sprintf("card %d/%d", m.pos+1, len(m.order))) + "\n")
	b.WriteString(m.styles.footer.Render(
		"n/p flip · h hide · i legend · l locale (" + string(m.locale) + ") · esc back"))
	return b.String()
}

func (m model) renderStories() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Black Stories") + "\n\n")
	story, ok := m.browser.Current()
	if !ok {
		b.WriteString(m.styles.status.Render("No riddles available for locale "+string(m.locale)+".") + "\n")
		b.WriteString(m.styles.footer.Render("l locale · esc back"))
		return b.String()
	}
	b.WriteString(m.styles.word.Render(story.Title) + "\n\n")
	b.WriteString(story.Short + "\n\n")
	if m.browser.Revealed() {
		b.WriteString(m.styles.bonus.Render("Solution") + "\n" + story.Full + "\n\n")
	} else {
		b.WriteString(m.styles.faint.Render("(solution hidden — space to reveal)") + "\n\n")
	}
	nav := "n next"
	if m.browser.CanPrev() {
		nav = "p prev · " + nav
	}
	b.WriteString(m.styles.faint.Render(fmt.Sprintf("%d riddles loaded", m.browser.Len())) + "\n")
	b.WriteString(m.styles.footer.Render(nav + " · space reveal · l locale (" + string(m.locale) + ") · esc back"))
	return b.String()
}

const helpMarkdown = `# Soirée

A terminal deck for party games. Everything is driven by a run seed, so the
same seed replays the same draws.

## Oh les mains

Pick a theme and a difficulty, then make your team guess the word without
speaking it. Words never repeat until the whole bag has been seen. A *gage*
(dare) is rolled for the pairing and sticks around for the run.

- **f** word found (scores the tier's points)
- **s** skip without scoring
- **h** hide the word from spectators

## Pictionary / Esquissé?

Flip through shuffled drawing cards. Card colors follow the printed deck;
press **i** for the legend. Some cards trigger a challenge round where every
team plays at once.

## Black Stories

Lateral-thinking riddles. Read the teaser aloud, let the table ask yes/no
questions, reveal with **space** when they give up.

## Everywhere

- **l** cycles fr → en → es
- **esc** backs out, **q** quits
`

func (m model) renderHelp() string {
	if m.helpRendered == "" {
		width := m.width
		if width <= 0 || width > 100 {
			width = 100
		}
		out, err := glamour.Render(helpMarkdown, "dark")
		if err != nil {
			out = helpMarkdown
		}
		m.helpRendered = out
	}
	return m.helpRendered + m.styles.footer.Render("esc back")
}
