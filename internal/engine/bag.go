package engine

import "github.com/mlejeune/soiree-tui/internal/deck"

// NoItem is returned by Draw on an empty bucket. It is a normal,
// locale-carrying record so gameplay keeps running with a visible message.
var NoItem = deck.Record{Labels: map[deck.Locale]string{
	deck.LocaleFR: "Aucun mot",
	deck.LocaleEN: "No word available",
	deck.LocaleES: "No hay palabra disponible",
}}

// ShuffleBag yields every record of a bucket exactly once in random order,
// then reshuffles. A record can recur immediately across a refill boundary;
// that is accepted, not prevented.
type ShuffleBag struct {
	rng       *Stream
	remaining []int // indices into the bucket, consumed from the end
}

func NewShuffleBag(rng *Stream) *ShuffleBag {
	return &ShuffleBag{rng: rng}
}

// Draw pops the next record. An exhausted bag refills first; an empty bucket
// yields NoItem.
func (b *ShuffleBag) Draw(bucket []deck.Record) deck.Record {
	if len(b.remaining) == 0 {
		b.refill(len(bucket))
	}
	if len(b.remaining) == 0 {
		return NoItem
	}
	last := len(b.remaining) - 1
	idx := b.remaining[last]
	b.remaining = b.remaining[:last]
	if idx >= len(bucket) {
		// stale restored order for a bucket that shrank; start over
		b.refill(len(bucket))
		return b.Draw(bucket)
	}
	return bucket[idx]
}

// refill replaces the remaining order with a fresh Fisher-Yates permutation.
func (b *ShuffleBag) refill(n int) {
	b.remaining = b.remaining[:0]
	for i := 0; i < n; i++ {
		b.remaining = append(b.remaining, i)
	}
	for i := n - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		b.remaining[i], b.remaining[j] = b.remaining[j], b.remaining[i]
	}
}

// Remaining reports how many draws are left before the next refill.
func (b *ShuffleBag) Remaining() int { return len(b.remaining) }

// Order exposes the remaining draw order for persistence.
func (b *ShuffleBag) Order() []int {
	out := make([]int, len(b.remaining))
	copy(out, b.remaining)
	return out
}

// Restore replaces the remaining order with a previously persisted one.
func (b *ShuffleBag) Restore(order []int) {
	b.remaining = append(b.remaining[:0], order...)
}
