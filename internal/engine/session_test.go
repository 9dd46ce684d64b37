package engine

import (
	"testing"

	"github.com/mlejeune/soiree-tui/internal/deck"
)

const sessionCSV = `theme,tier,label_fr,label_en,label_es
olemots,1,chat,cat,gato
olemots,1,chien,dog,perro
olemots,2,parapluie,umbrella,paraguas
olemots,2,grenouille,frog,rana
olemots,2,aspirateur,vacuum cleaner,aspiradora
olemots,0,Chante ton indice,Sing your clue,Canta tu pista
olemots,0,Une seule main,One hand only,Solo una mano
olemimes,1,dormir,to sleep,dormir
`

func newTestSession(t *testing.T, sticky bool) *Session {
	t.Helper()
	s := NewSession(mustSeed(t), deck.LocaleFR, sticky)
	if err := s.LoadData([]byte(sessionCSV), deck.WordSchema(deck.LocaleFR, deck.LocaleEN, deck.LocaleES)); err != nil {
		t.Fatalf("load: %v", err)
	}
	return s
}

func TestSessionLifecycle(t *testing.T) {
	s := NewSession(mustSeed(t), deck.LocaleFR, true)
	if s.State() != StateIdle {
		t.Fatalf("fresh session should be Idle")
	}
	s.Start(deck.DrawKey{Theme: "olemots", Tier: 1}) // no data yet
	if s.State() != StateIdle {
		t.Fatalf("Start before any data must stay Idle")
	}
	if err := s.LoadData([]byte(sessionCSV), deck.WordSchema(deck.LocaleFR, deck.LocaleEN, deck.LocaleES)); err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.State() != StateReady {
		t.Fatalf("loaded session should be Ready")
	}
	s.Start(deck.DrawKey{Theme: "olemots", Tier: 1})
	if s.State() != StatePlaying {
		t.Fatalf("started session should be Playing")
	}
}

// Two words found in the two-word tier 1 bucket: two tries, two finds, one
// point apiece.
func TestSessionScoring(t *testing.T) {
	s := newTestSession(t, true)
	s.Start(deck.DrawKey{Theme: "olemots", Tier: 1})
	s.FoundWord()
	s.FoundWord()
	if s.Tries != 2 || s.Found != 2 || s.Points != 2 {
		t.Fatalf("tries=%d found=%d points=%d, want 2/2/2", s.Tries, s.Found, s.Points)
	}

	s.Start(deck.DrawKey{Theme: "olemots", Tier: 2})
	s.FoundWord()
	s.Skip()
	s.FoundWord()
	if s.Tries != 3 || s.Found != 2 || s.Points != 4 {
		t.Fatalf("tier 2 run: tries=%d found=%d points=%d, want 3/2/4", s.Tries, s.Found, s.Points)
	}
}

func TestSessionNoRepeatWithinCycle(t *testing.T) {
	s := newTestSession(t, true)
	s.Start(deck.DrawKey{Theme: "olemots", Tier: 2})
	seen := map[string]bool{s.WordLabel(): true}
	for i := 0; i < 2; i++ {
		s.Skip()
		w := s.WordLabel()
		if seen[w] {
			t.Fatalf("word %q repeated before the bag emptied", w)
		}
		seen[w] = true
	}
}

func TestSessionEmptyBucket(t *testing.T) {
	s := newTestSession(t, true)
	s.Start(deck.DrawKey{Theme: "olemimes", Tier: 3})
	if got := s.WordLabel(); got != "Aucun mot" {
		t.Fatalf("empty bucket should show the no-word record, got %q", got)
	}
	s.SetLocale(deck.LocaleES)
	if got := s.WordLabel(); got != "No hay palabra disponible" {
		t.Fatalf("no-word record should localize, got %q", got)
	}
	if s.Stock() != 0 {
		t.Fatalf("stock of an empty bucket should be 0")
	}
}

func TestSessionLocaleSwitchDoesNotDraw(t *testing.T) {
	s := newTestSession(t, true)
	s.Start(deck.DrawKey{Theme: "olemots", Tier: 2})
	fr := s.WordLabel()
	s.SetLocale(deck.LocaleEN)
	en := s.WordLabel()
	s.SetLocale(deck.LocaleFR)
	if got := s.WordLabel(); got != fr {
		t.Fatalf("locale round trip changed the word: %q vs %q", got, fr)
	}
	if en == fr {
		t.Fatalf("en label should differ from fr for this deck")
	}
	if s.Tries != 0 {
		t.Fatalf("locale switches must not count as tries")
	}
}

func TestSessionVisibilityToggle(t *testing.T) {
	s := newTestSession(t, true)
	s.Start(deck.DrawKey{Theme: "olemots", Tier: 1})
	word := s.WordLabel()
	s.ToggleVisibility()
	if got := s.WordLabel(); got != HiddenMask {
		t.Fatalf("hidden word should render the mask, got %q", got)
	}
	if s.Current().Labels[deck.LocaleFR] == "" {
		t.Fatalf("hiding must not clear the underlying record")
	}
	s.ToggleVisibility()
	if got := s.WordLabel(); got != word {
		t.Fatalf("double toggle should restore %q, got %q", word, got)
	}
	s.Skip()
	if s.Hidden() {
		t.Fatalf("a fresh draw should always show")
	}
}

func TestSessionResetPolicies(t *testing.T) {
	s := newTestSession(t, true)
	key := deck.DrawKey{Theme: "olemots", Tier: 2}
	s.Start(key)
	dare := s.BonusLabel()
	s.FoundWord()

	s.Reset(false)
	if s.State() != StateReady || s.Tries != 0 || s.Points != 0 {
		t.Fatalf("soft reset should zero counters and return to Ready")
	}
	s.Start(key)
	if got := s.BonusLabel(); got != dare {
		t.Fatalf("soft reset with sticky dares changed the dare: %q vs %q", got, dare)
	}

	s.Reset(true)
	if len(s.bonus.Signatures()) != 0 {
		t.Fatalf("hard reset should wipe dare memos")
	}
}

func TestSessionRestartReshuffles(t *testing.T) {
	s := newTestSession(t, true)
	key := deck.DrawKey{Theme: "olemots", Tier: 2}
	s.Start(key)
	first := []string{s.WordLabel()}
	s.Skip()
	first = append(first, s.WordLabel())
	s.Skip()
	first = append(first, s.WordLabel())

	s.Start(key)
	second := []string{s.WordLabel()}
	s.Skip()
	second = append(second, s.WordLabel())
	s.Skip()
	second = append(second, s.WordLabel())

	// each run is a permutation of the full bucket
	for _, run := range [][]string{first, second} {
		seen := map[string]bool{}
		for _, w := range run {
			if seen[w] {
				t.Fatalf("run repeated %q", w)
			}
			seen[w] = true
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := newTestSession(t, true)
	key := deck.DrawKey{Theme: "olemots", Tier: 2}
	s.Start(key)
	s.FoundWord()
	s.ToggleVisibility()

	sn := s.Snapshot()
	if sn.Version != SnapshotVersion || sn.Theme != "olemots" || sn.Tier != 2 {
		t.Fatalf("unexpected snapshot header %+v", sn)
	}

	restored := newTestSession(t, true)
	restored.Restore(sn)
	if restored.State() != StatePlaying {
		t.Fatalf("restore should resume Playing")
	}
	if restored.Tries != 1 || restored.Found != 1 || restored.Points != 2 {
		t.Fatalf("counters lost: tries=%d found=%d points=%d", restored.Tries, restored.Found, restored.Points)
	}
	if !restored.Hidden() {
		t.Fatalf("visibility lost")
	}
	if restored.Current().Labels[deck.LocaleFR] != s.Current().Labels[deck.LocaleFR] {
		t.Fatalf("current word lost")
	}
	if restored.BonusLabel() != s.BonusLabel() {
		t.Fatalf("dare lost: %q vs %q", restored.BonusLabel(), s.BonusLabel())
	}
	// the restored bag resumes the same remaining order, not a fresh shuffle
	if got, want := restored.bag.Remaining(), s.bag.Remaining(); got != want {
		t.Fatalf("bag position lost: %d vs %d", got, want)
	}
}

func TestRestoreRejectsBadSnapshots(t *testing.T) {
	s := newTestSession(t, true)

	s.Restore(Snapshot{Version: 99, Theme: "olemots", Tier: 2})
	if s.State() != StateReady {
		t.Fatalf("version mismatch should leave the session Ready")
	}

	cur := deck.Record{Theme: "gone", Tier: 2, Labels: map[deck.Locale]string{deck.LocaleFR: "x"}}
	s.Restore(Snapshot{Version: SnapshotVersion, Theme: "gone", Tier: 2, Current: &cur})
	if s.State() != StateReady {
		t.Fatalf("snapshot for a vanished bucket should leave the session Ready")
	}

	s.Restore(Snapshot{Version: SnapshotVersion, Locale: "es"})
	if s.Locale() != deck.LocaleES {
		t.Fatalf("locale should restore even without a resumable game")
	}
}
