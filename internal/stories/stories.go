// Package stories implements the riddle browser: per-locale story sets
// navigated with a random-next-avoiding-repeat policy and browser-style
// history.
package stories

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mlejeune/soiree-tui/internal/deck"
	"github.com/mlejeune/soiree-tui/internal/engine"
)

// Story is one riddle: the teaser everyone hears and the solution the host
// keeps hidden.
type Story struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Short string `json:"short_story"`
	Full  string `json:"full_story"`
}

// rawStory tolerates the alternate field names seen in older data files.
type rawStory struct {
	ID      string `json:"id"`
	StoryID string `json:"story_id"`
	Title   string `json:"title"`
	Short   string `json:"short_story"`
	Short2  string `json:"short"`
	Full    string `json:"full_story"`
	Full2   string `json:"full"`
}

// Load parses a story file for lang. Both shapes are accepted: a bare array
// of stories, or an object wrapping it under "stories". Stories with no
// content at all are dropped; missing IDs are generated as "<lang>-<n>".
func Load(raw []byte, lang string) ([]Story, error) {
	var entries []rawStory
	if err := json.Unmarshal(raw, &entries); err != nil {
		var wrapped struct {
			Stories []rawStory `json:"stories"`
		}
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return nil, fmt.Errorf("%w: story file for %s: %v", deck.ErrDataUnavailable, lang, err)
		}
		entries = wrapped.Stories
	}
	out := make([]Story, 0, len(entries))
	for i, e := range entries {
		s := Story{
			ID:    firstNonBlank(e.ID, e.StoryID),
			Title: strings.TrimSpace(e.Title),
			Short: firstNonBlank(e.Short, e.Short2),
			Full:  firstNonBlank(e.Full, e.Full2),
		}
		if s.Title == "" && s.Short == "" && s.Full == "" {
			continue
		}
		if s.ID == "" {
			s.ID = fmt.Sprintf("%s-%d", lang, i+1)
		}
		out = append(out, s)
	}
	return out, nil
}

func firstNonBlank(vals ...string) string {
	for _, v := range vals {
		if t := strings.TrimSpace(v); t != "" {
			return t
		}
	}
	return ""
}

const nextAttempts = 20

// Browser walks a story set: random next avoiding the story on screen, real
// back navigation, and forward-history truncation on branch.
type Browser struct {
	rng      *engine.Stream
	stories  []Story
	history  []int
	pos      int
	revealed bool
}

// NewBrowser starts on a random story. An empty set yields a browser whose
// Current reports no story; navigation stays safe.
func NewBrowser(rng *engine.Stream, stories []Story) *Browser {
	b := &Browser{rng: rng, stories: stories, pos: -1}
	if len(stories) > 0 {
		b.history = []int{rng.Intn(len(stories))}
		b.pos = 0
	}
	return b
}

// Current returns the story on screen, or ok=false for an empty set.
func (b *Browser) Current() (Story, bool) {
	if b.pos < 0 || b.pos >= len(b.history) {
		return Story{}, false
	}
	return b.stories[b.history[b.pos]], true
}

// Next jumps to a random story, avoiding the current one for a bounded
// number of attempts and stepping to its neighbor when they all collide.
// Any forward history is truncated first. The solution re-hides.
func (b *Browser) Next() {
	n := len(b.stories)
	if n == 0 {
		return
	}
	if b.pos < len(b.history)-1 {
		b.history = b.history[:b.pos+1]
	}
	cur := -1
	if b.pos >= 0 {
		cur = b.history[b.pos]
	}
	next := 0
	if n > 1 {
		sig := func(i int) string { return fmt.Sprint(i) }
		idx, ok := engine.PickAvoiding(b.rng, n, nextAttempts, fmt.Sprint(cur), sig)
		next = idx
		if !ok && cur >= 0 {
			next = (cur + 1) % n
		}
	}
	b.history = append(b.history, next)
	b.pos = len(b.history) - 1
	b.revealed = false
}

// Prev steps back through the history. The solution re-hides.
func (b *Browser) Prev() {
	if b.pos <= 0 {
		return
	}
	b.pos--
	b.revealed = false
}

// CanPrev reports whether back navigation is possible.
func (b *Browser) CanPrev() bool { return b.pos > 0 }

// ToggleReveal shows or hides the full story.
func (b *Browser) ToggleReveal() { b.revealed = !b.revealed }

// Revealed reports whether the full story is visible.
func (b *Browser) Revealed() bool { return b.revealed }

// Len reports the set size.
func (b *Browser) Len() int { return len(b.stories) }
