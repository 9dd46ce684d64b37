package engine

// PickAvoiding draws up to attempts uniform candidate indices in [0,n) and
// returns the first whose signature differs from prev. The second return is
// false when every attempt collided; the caller decides the fallback (keep
// the last candidate, step to a neighbor, ...). An empty prev accepts the
// first draw. For n <= 1 the answer is always index 0.
//
// This is the one shared avoid-immediate-repeat picker: the dare memoizer
// and the riddle browser both route through it.
func PickAvoiding(rng *Stream, n, attempts int, prev string, sig func(int) string) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	if n == 1 {
		return 0, sig(0) != prev
	}
	idx := 0
	for i := 0; i < attempts; i++ {
		idx = rng.Intn(n)
		if prev == "" || sig(idx) != prev {
			return idx, true
		}
	}
	return idx, false
}
