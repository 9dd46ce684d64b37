package stories

import (
	"testing"

	"github.com/mlejeune/soiree-tui/internal/engine"
)

const wrappedJSON = `{"stories":[
  {"id":"fr-1","title":"Un","short_story":"teaser 1","full_story":"solution 1"},
  {"id":"fr-2","title":"Deux","short_story":"teaser 2","full_story":"solution 2"},
  {"title":"Trois","short":"teaser 3","full":"solution 3"},
  {"title":"","short_story":"","full_story":""}
]}`

const bareJSON = `[
  {"id":"en-1","title":"One","short_story":"t1","full_story":"s1"},
  {"story_id":"en-2","title":"Two","short":"t2","full":"s2"}
]`

func testStream(t *testing.T, label string) *engine.Stream {
	t.Helper()
	seed, err := engine.NewRunSeed("stories-test")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return seed.Stream(label)
}

func TestLoadWrappedShape(t *testing.T) {
	set, err := Load([]byte(wrappedJSON), "fr")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(set) != 3 {
		t.Fatalf("empty story should be dropped; got %d stories", len(set))
	}
	if set[2].ID != "fr-3" {
		t.Fatalf("missing ID should be generated, got %q", set[2].ID)
	}
	if set[2].Short != "teaser 3" || set[2].Full != "solution 3" {
		t.Fatalf("alternate field names not read: %+v", set[2])
	}
}

func TestLoadBareArray(t *testing.T) {
	set, err := Load([]byte(bareJSON), "en")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(set) != 2 || set[1].ID != "en-2" {
		t.Fatalf("bare array or story_id mishandled: %+v", set)
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	if _, err := Load([]byte("not json"), "fr"); err == nil {
		t.Fatalf("garbage input should fail")
	}
}

func loadSet(t *testing.T) []Story {
	t.Helper()
	set, err := Load([]byte(wrappedJSON), "fr")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return set
}

func TestBrowserNextAvoidsCurrent(t *testing.T) {
	b := NewBrowser(testStream(t, "stories"), loadSet(t))
	cur, ok := b.Current()
	if !ok {
		t.Fatalf("browser should start on a story")
	}
	for i := 0; i < 20; i++ {
		b.Next()
		next, _ := b.Current()
		if next.ID == cur.ID {
			t.Fatalf("Next repeated story %q", cur.ID)
		}
		cur = next
	}
}

func TestBrowserHistory(t *testing.T) {
	b := NewBrowser(testStream(t, "stories"), loadSet(t))
	first, _ := b.Current()
	if b.CanPrev() {
		t.Fatalf("no history to walk back yet")
	}
	b.Next()
	if !b.CanPrev() {
		t.Fatalf("CanPrev should hold after a Next")
	}
	b.Prev()
	if got, _ := b.Current(); got.ID != first.ID {
		t.Fatalf("Prev should return to %q, got %q", first.ID, got.ID)
	}
	// branching from the middle truncates the forward history
	b.Next()
	b.Prev()
	b.Next()
	if got, ok := b.Current(); !ok || got.ID == first.ID {
		t.Fatalf("branch should land on a different story than %q", first.ID)
	}
	if !b.CanPrev() {
		t.Fatalf("history root lost after branching")
	}
}

func TestBrowserRevealResets(t *testing.T) {
	b := NewBrowser(testStream(t, "stories"), loadSet(t))
	b.ToggleReveal()
	if !b.Revealed() {
		t.Fatalf("toggle should reveal")
	}
	b.Next()
	if b.Revealed() {
		t.Fatalf("navigation should re-hide the solution")
	}
	b.ToggleReveal()
	b.Prev()
	if b.Revealed() {
		t.Fatalf("Prev should re-hide the solution")
	}
}

func TestBrowserEmptySet(t *testing.T) {
	b := NewBrowser(testStream(t, "stories"), nil)
	if _, ok := b.Current(); ok {
		t.Fatalf("empty set should report no story")
	}
	b.Next()
	b.Prev()
	b.ToggleReveal()
	if _, ok := b.Current(); ok {
		t.Fatalf("navigation on an empty set should stay safe")
	}
}

func TestBrowserSingleStory(t *testing.T) {
	set, _ := Load([]byte(`[{"id":"only","title":"T","short_story":"s","full_story":"f"}]`), "fr")
	b := NewBrowser(testStream(t, "stories"), set)
	b.Next()
	if got, ok := b.Current(); !ok || got.ID != "only" {
		t.Fatalf("single-story set should keep showing it")
	}
}
