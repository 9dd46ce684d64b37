package engine

import "github.com/mlejeune/soiree-tui/internal/deck"

// NoBonus is returned when a theme has no dare at all. Placeholder, not an
// error: the game renders it like any other dare.
var NoBonus = deck.Record{Labels: map[deck.Locale]string{
	deck.LocaleFR: "Aucun gage pour ce thème.",
	deck.LocaleEN: "No dare for this theme.",
	deck.LocaleES: "No hay reto para este tema.",
}}

const bonusAttempts = 10

// Memoizer keeps one dare per (theme, tier) key stable across word draws,
// and remembers the previous pick's signature to bias re-rolls away from it.
//
// Two policies:
//   - sticky: once selected for a key, the same dare is reused until an
//     explicit hard reset, across restarts.
//   - reroll: every restart re-selects, using the last signature as the
//     anti-repeat hint.
type Memoizer struct {
	rng     *Stream
	sticky  bool
	chosen  map[deck.DrawKey]deck.Record
	lastSig map[deck.DrawKey]string
}

func NewMemoizer(rng *Stream, sticky bool) *Memoizer {
	return &Memoizer{
		rng:     rng,
		sticky:  sticky,
		chosen:  map[deck.DrawKey]deck.Record{},
		lastSig: map[deck.DrawKey]string{},
	}
}

// Select resolves the dare for key from bucket. The signature of a dare is
// its label resolved through the default fallback chain.
func (m *Memoizer) Select(key deck.DrawKey, bucket []deck.Record) deck.Record {
	if m.sticky {
		if rec, ok := m.chosen[key]; ok {
			return rec
		}
	}
	if len(bucket) == 0 {
		return NoBonus
	}
	if len(bucket) == 1 {
		m.remember(key, bucket[0])
		return bucket[0]
	}
	sig := func(i int) string { return signature(bucket[i]) }
	idx, _ := PickAvoiding(m.rng, len(bucket), bonusAttempts, m.lastSig[key], sig)
	m.remember(key, bucket[idx])
	return bucket[idx]
}

func (m *Memoizer) remember(key deck.DrawKey, rec deck.Record) {
	m.chosen[key] = rec
	m.lastSig[key] = signature(rec)
}

// Reset clears all memoized dares and anti-repeat signatures. Only the
// explicit hard reset calls this.
func (m *Memoizer) Reset() {
	m.chosen = map[deck.DrawKey]deck.Record{}
	m.lastSig = map[deck.DrawKey]string{}
}

// Signatures exposes the per-key signature map for persistence. For the
// sticky policy the memoized record is re-derived from the bucket on
// restore; signatures alone are enough to rebuild both policies.
func (m *Memoizer) Signatures() map[string]string {
	out := make(map[string]string, len(m.lastSig))
	for k, v := range m.lastSig {
		out[k.String()] = v
	}
	return out
}

// RestoreSignatures installs persisted signatures. Under the sticky policy
// the matching record is pinned again from bucket lookups at Select time via
// resolveSticky.
func (m *Memoizer) RestoreSignatures(sigs map[string]string) {
	for raw, sig := range sigs {
		key, ok := deck.ParseDrawKey(raw)
		if !ok {
			continue
		}
		m.lastSig[key] = sig
	}
}

// ResolveSticky re-pins a persisted sticky dare: if the stored signature for
// key matches a record in bucket, that record becomes the memoized choice
// again. Without a match the next Select rolls fresh.
func (m *Memoizer) ResolveSticky(key deck.DrawKey, bucket []deck.Record) {
	if !m.sticky {
		return
	}
	want, ok := m.lastSig[key]
	if !ok || want == "" {
		return
	}
	for _, rec := range bucket {
		if signature(rec) == want {
			m.chosen[key] = rec
			return
		}
	}
}

// signature fingerprints a record by its primary-locale label.
func signature(rec deck.Record) string {
	return deck.ResolveLabel(rec.Labels, deck.LocaleFR, deck.DefaultFallback)
}
