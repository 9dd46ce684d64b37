package engine

import (
	"fmt"

	"github.com/mlejeune/soiree-tui/internal/deck"
)

// State is the session lifecycle: no data yet, data loaded, draw in progress.
type State int

const (
	StateIdle State = iota
	StateReady
	StatePlaying
)

// HiddenMask replaces the word label while visibility is off. Fixed length,
// independent of the underlying label.
const HiddenMask = "**********"

// Session owns one game's live state: the loaded buckets, the shuffle bag
// and dare memo for the selected key, counters and locale. One instance per
// active game, passed explicitly to whatever drives it; there are no
// package-level globals.
type Session struct {
	seed     RunSeed
	state    State
	buckets  *deck.Buckets
	key      deck.DrawKey
	locale   deck.Locale
	fallback []deck.Locale

	bag   *ShuffleBag
	bonus *Memoizer
	runs  int // Start invocations, salts the bag stream per restart

	current      deck.Record
	currentBonus deck.Record
	hidden       bool

	Tries  int
	Found  int
	Points int
}

// NewSession builds an Idle session. stickyBonus selects the dare policy.
func NewSession(seed RunSeed, locale deck.Locale, stickyBonus bool) *Session {
	return &Session{
		seed:     seed,
		locale:   locale,
		fallback: deck.DefaultFallback,
		bonus:    NewMemoizer(seed.Stream("bonus"), stickyBonus),
	}
}

// LoadData parses and classifies a deck file. Idle -> Ready on success; on
// failure the session stays Idle and the error is surfaced to the caller.
func (s *Session) LoadData(raw []byte, sc deck.Schema) error {
	t := deck.NewTable(deck.ParseTable(string(raw)), sc.ThemeField)
	b, err := deck.Classify(t, sc)
	if err != nil {
		return err
	}
	s.buckets = b
	if s.state == StateIdle {
		s.state = StateReady
	}
	return nil
}

// Start begins (or restarts) play for key: counters to zero, a fresh bag, the
// dare resolved per policy, and the first word drawn. No-op while Idle.
func (s *Session) Start(key deck.DrawKey) {
	if s.state == StateIdle {
		return
	}
	s.key = key
	s.runs++
	s.Tries, s.Found, s.Points = 0, 0, 0
	s.bag = NewShuffleBag(s.seed.Stream(keyRunLabel(key, s.runs)))
	s.bonus.ResolveSticky(key, s.buckets.Bonus[key.Theme])
	s.currentBonus = s.bonus.Select(key, s.buckets.Bonus[key.Theme])
	s.state = StatePlaying
	s.drawNext()
}

// FoundWord counts a success: the guessers got the word. Scores the key's
// tier and draws the next word.
func (s *Session) FoundWord() {
	if s.state != StatePlaying {
		return
	}
	s.Tries++
	s.Found++
	s.Points += s.key.Tier
	s.drawNext()
}

// Skip counts an attempt without points and draws the next word.
func (s *Session) Skip() {
	if s.state != StatePlaying {
		return
	}
	s.Tries++
	s.drawNext()
}

// SetLocale switches the rendering language. Never draws, never touches
// counters or the draw position.
func (s *Session) SetLocale(l deck.Locale) {
	s.locale = deck.NormalizeLocale(string(l))
}

// ToggleVisibility flips the word between shown and masked.
func (s *Session) ToggleVisibility() {
	if s.state != StatePlaying {
		return
	}
	s.hidden = !s.hidden
}

// Reset returns to Ready and clears counters. A hard reset also wipes the
// dare memos; a soft one keeps them (the sticky policy depends on that).
func (s *Session) Reset(hard bool) {
	if s.state == StateIdle {
		return
	}
	s.state = StateReady
	s.Tries, s.Found, s.Points = 0, 0, 0
	s.current = deck.Record{}
	s.currentBonus = deck.Record{}
	s.hidden = false
	if hard {
		s.bonus.Reset()
	}
}

// keyRunLabel salts the bag stream per restart so every Start reshuffles.
func keyRunLabel(key deck.DrawKey, run int) string {
	return fmt.Sprintf("bag:%s#%d", key, run)
}

func (s *Session) drawNext() {
	s.current = s.bag.Draw(s.buckets.Draw[s.key])
	s.hidden = false
}

// State reports the lifecycle state.
func (s *Session) State() State { return s.state }

// Key reports the active (theme, tier) selection.
func (s *Session) Key() deck.DrawKey { return s.key }

// Locale reports the rendering language.
func (s *Session) Locale() deck.Locale { return s.locale }

// Hidden reports whether the word is masked.
func (s *Session) Hidden() bool { return s.hidden }

// Current returns the drawn record as-is, ignoring visibility.
func (s *Session) Current() deck.Record { return s.current }

// WordLabel renders the current word for the active locale, or the mask.
func (s *Session) WordLabel() string {
	if s.hidden {
		return HiddenMask
	}
	return s.current.Label(s.locale, s.fallback)
}

// BonusLabel renders the current dare for the active locale.
func (s *Session) BonusLabel() string {
	return s.currentBonus.Label(s.locale, s.fallback)
}

// Stock reports how many words the active key's bucket holds in total.
func (s *Session) Stock() int {
	if s.buckets == nil {
		return 0
	}
	return len(s.buckets.Draw[s.key])
}
