package engine

import "github.com/mlejeune/soiree-tui/internal/deck"

// SnapshotVersion tags the persisted session shape. A stored snapshot with a
// different version is discarded and the game starts fresh instead of
// failing on decode.
const SnapshotVersion = 1

// Snapshot is the typed, serializable projection of a Session. It replaces
// the source's ad hoc string-keyed storage blobs with one explicit contract.
type Snapshot struct {
	Version int    `json:"version"`
	Theme   string `json:"theme"`
	Tier    int    `json:"tier"`
	Locale  string `json:"locale"`
	Tries   int    `json:"tries"`
	Found   int    `json:"found"`
	Points  int    `json:"points"`
	Hidden  bool   `json:"hidden"`
	Runs    int    `json:"runs"`

	BagOrder  []int             `json:"bag_order"`
	BonusSigs map[string]string `json:"bonus_sigs"`

	Current      *deck.Record `json:"current,omitempty"`
	CurrentBonus *deck.Record `json:"current_bonus,omitempty"`
}

// Snapshot captures the session for persistence.
func (s *Session) Snapshot() Snapshot {
	sn := Snapshot{
		Version:   SnapshotVersion,
		Theme:     s.key.Theme,
		Tier:      s.key.Tier,
		Locale:    string(s.locale),
		Tries:     s.Tries,
		Found:     s.Found,
		Points:    s.Points,
		Hidden:    s.hidden,
		Runs:      s.runs,
		BonusSigs: s.bonus.Signatures(),
	}
	if s.bag != nil {
		sn.BagOrder = s.bag.Order()
	}
	if s.state == StatePlaying {
		cur, bon := s.current, s.currentBonus
		sn.Current = &cur
		sn.CurrentBonus = &bon
	}
	return sn
}

// Restore rehydrates a snapshot into a session that has already loaded its
// data. Version mismatches and unusable keys degrade to "start fresh": the
// session simply stays Ready. The restored bag keeps the persisted remaining
// order and the memoizer keeps its signatures.
func (s *Session) Restore(sn Snapshot) {
	if s.state == StateIdle || sn.Version != SnapshotVersion {
		return
	}
	if sn.Locale != "" {
		s.locale = deck.NormalizeLocale(sn.Locale)
	}
	s.bonus.RestoreSignatures(sn.BonusSigs)
	if sn.Current == nil || sn.Tier <= 0 || sn.Theme == "" {
		return
	}
	key := deck.DrawKey{Theme: sn.Theme, Tier: sn.Tier}
	if _, ok := s.buckets.Draw[key]; !ok {
		return
	}
	s.key = key
	s.runs = sn.Runs
	s.Tries, s.Found, s.Points = sn.Tries, sn.Found, sn.Points
	s.hidden = sn.Hidden
	s.bag = NewShuffleBag(s.seed.Stream(keyRunLabel(key, s.runs)))
	s.bag.Restore(sn.BagOrder)
	s.bonus.ResolveSticky(key, s.buckets.Bonus[key.Theme])
	s.current = *sn.Current
	if sn.CurrentBonus != nil {
		s.currentBonus = *sn.CurrentBonus
	}
	s.state = StatePlaying
}
