package deck

import (
	"fmt"
	"strings"
)

// Card is one visual deck entry (Pictionary-style word card).
type Card struct {
	ID        string
	CardColor string // category color token
	WordColor string // word box color token
	Hint      string
	Labels    map[Locale]string
}

// Label resolves the card's word for the wanted locale, with fallback.
func (c Card) Label(want Locale, order []Locale) string {
	return ResolveLabel(c.Labels, want, order)
}

// Number returns the card's display number: the first run of digits in its
// ID, or the bare ID when it has none.
func (c Card) Number() string {
	start := -1
	for i := 0; i < len(c.ID); i++ {
		d := c.ID[i] >= '0' && c.ID[i] <= '9'
		if d && start < 0 {
			start = i
		}
		if !d && start >= 0 {
			return c.ID[start:i]
		}
	}
	if start >= 0 {
		return c.ID[start:]
	}
	if c.ID == "" {
		return "—"
	}
	return c.ID
}

// Cards reads a visual card table. The header must carry card_id and a label
// column for the first listed locale; missing color or hint columns fall
// through to defaults at render time.
func Cards(t Table, locales []Locale) ([]Card, error) {
	if len(locales) == 0 {
		locales = AllLocales
	}
	primary := "label_" + string(locales[0])
	if !t.HasColumns("card_id", primary) {
		return nil, fmt.Errorf("%w: header %v lacks card_id or %s", ErrSchemaMismatch, t.Header, primary)
	}
	cards := make([]Card, 0, len(t.Rows))
	for _, row := range t.Rows {
		labels := make(map[Locale]string, len(locales))
		for _, l := range locales {
			labels[l] = strings.TrimSpace(row["label_"+string(l)])
		}
		cards = append(cards, Card{
			ID:        strings.TrimSpace(row["card_id"]),
			CardColor: row["card_color"],
			WordColor: row["word_color"],
			Hint:      strings.TrimSpace(row["hint"]),
			Labels:    labels,
		})
	}
	return cards, nil
}
