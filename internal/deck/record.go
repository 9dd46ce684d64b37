package deck

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one drawable word or bonus item from a deck file.
type Record struct {
	Theme  string
	Tier   int
	Labels map[Locale]string
}

// Label resolves the record's text for the wanted locale, with fallback.
func (r Record) Label(want Locale, order []Locale) string {
	return ResolveLabel(r.Labels, want, order)
}

// DrawKey partitions draw items by theme and tier. Tier 0 is reserved for
// bonus items and never appears in a DrawKey.
type DrawKey struct {
	Theme string
	Tier  int
}

func (k DrawKey) String() string { return fmt.Sprintf("%s|%d", k.Theme, k.Tier) }

// ParseDrawKey is the inverse of String. Used when rehydrating saved state.
func ParseDrawKey(s string) (DrawKey, bool) {
	i := strings.LastIndexByte(s, '|')
	if i < 0 {
		return DrawKey{}, false
	}
	tier, err := strconv.Atoi(s[i+1:])
	if err != nil || tier <= 0 || s[:i] == "" {
		return DrawKey{}, false
	}
	return DrawKey{Theme: s[:i], Tier: tier}, true
}

// Schema names the columns of a word deck file and its accepted draw tiers.
type Schema struct {
	ThemeField  string
	TierField   string
	LabelFields map[Locale]string
	Tiers       []int
}

// WordSchema builds the standard theme/tier deck schema for the given
// locales, accepting tiers 1-3.
func WordSchema(locales ...Locale) Schema {
	labels := make(map[Locale]string, len(locales))
	for _, l := range locales {
		labels[l] = "label_" + string(l)
	}
	return Schema{
		ThemeField:  "theme",
		TierField:   "tier",
		LabelFields: labels,
		Tiers:       []int{1, 2, 3},
	}
}

func (sc Schema) acceptsTier(tier int) bool {
	for _, t := range sc.Tiers {
		if t == tier {
			return true
		}
	}
	return false
}

// Buckets are the two lookup tables built once per data load: draw items
// keyed by (theme, tier) and bonus items keyed by theme alone.
type Buckets struct {
	Draw  map[DrawKey][]Record
	Bonus map[string][]Record
}

// Classify splits a table's rows into draw and bonus buckets. Rows with a
// non-numeric or unlisted tier are dropped silently; a header missing any
// schema column fails with ErrSchemaMismatch.
func Classify(t Table, sc Schema) (*Buckets, error) {
	cols := []string{sc.ThemeField, sc.TierField}
	for _, f := range sc.LabelFields {
		cols = append(cols, f)
	}
	if !t.HasColumns(cols...) {
		return nil, fmt.Errorf("%w: header %v lacks one of %v", ErrSchemaMismatch, t.Header, cols)
	}
	b := &Buckets{Draw: map[DrawKey][]Record{}, Bonus: map[string][]Record{}}
	for _, row := range t.Rows {
		theme := strings.TrimSpace(row[sc.ThemeField])
		tierRaw := strings.TrimSpace(row[sc.TierField])
		if theme == "" || tierRaw == "" {
			continue
		}
		tier, err := strconv.Atoi(tierRaw)
		if err != nil {
			continue
		}
		labels := make(map[Locale]string, len(sc.LabelFields))
		for loc, field := range sc.LabelFields {
			labels[loc] = strings.TrimSpace(row[field])
		}
		rec := Record{Theme: theme, Tier: tier, Labels: labels}
		if tier == 0 {
			b.Bonus[theme] = append(b.Bonus[theme], rec)
			continue
		}
		if !sc.acceptsTier(tier) {
			continue
		}
		key := DrawKey{Theme: theme, Tier: tier}
		b.Draw[key] = append(b.Draw[key], rec)
	}
	return b, nil
}
