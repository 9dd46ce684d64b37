package deck

import (
	"errors"
	"testing"
)

func TestCardsRequiresIDAndPrimaryLabel(t *testing.T) {
	tab := NewTable(ParseTable("card_id,label_en\nP1,cat\n"), "card_id")
	if _, err := Cards(tab, []Locale{LocaleFR}); !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch without label_fr, got %v", err)
	}
}

func TestCardsParsing(t *testing.T) {
	tab := NewTable(ParseTable("card_id,card_color,word_color,hint,label_fr,label_en\nP007,blue,black,astuce,plage,beach\n"), "card_id")
	cards, err := Cards(tab, AllLocales)
	if err != nil {
		t.Fatalf("cards: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(cards))
	}
	c := cards[0]
	if c.ID != "P007" || c.CardColor != "blue" || c.Hint != "astuce" {
		t.Fatalf("unexpected card %+v", c)
	}
	if got := c.Label(LocaleES, DefaultFallback); got != "plage" {
		t.Fatalf("missing es label should fall back to fr, got %q", got)
	}
}

func TestCardNumber(t *testing.T) {
	cases := map[string]string{
		"P007":  "007",
		"12bis": "12",
		"card":  "card",
		"":      "—",
	}
	for id, want := range cases {
		if got := (Card{ID: id}).Number(); got != want {
			t.Fatalf("Number(%q) = %q, want %q", id, got, want)
		}
	}
}

func TestResolveColorFallback(t *testing.T) {
	if got := ResolveColor(" Blue "); got != "#60A5FA" {
		t.Fatalf("known token mis-resolved: %q", got)
	}
	if got := ResolveColor("chartreuse"); got != AccentFallback {
		t.Fatalf("unknown token should fall back, got %q", got)
	}
	if got := ResolveColor(""); got != AccentFallback {
		t.Fatalf("blank token should fall back, got %q", got)
	}
}

func TestTextColorForLuminance(t *testing.T) {
	// bright backgrounds take dark text, dark backgrounds take light text
	if got := TextColorFor("#FBBF24"); got != darkText {
		t.Fatalf("yellow should take dark text, got %q", got)
	}
	if got := TextColorFor("#DC143C"); got != lightText {
		t.Fatalf("red should take light text, got %q", got)
	}
	if got := TextColorFor("not-a-color"); got != lightText {
		t.Fatalf("malformed hex should default to light text, got %q", got)
	}
}
