package deck

// Game describes one playable deck of the collection.
type Game struct {
	Key          string
	Title        string
	File         string // data file name under the data directory
	Schema       Schema
	Visual       bool // card deck with colors and hints instead of theme/tier
	HasChallenge bool // rolls a challenge banner on each card
	HasBonus     bool // olemains-style dare per (theme, tier)
}

// Games is the built-in catalog. The riddle browser has its own data files
// and is registered directly in the UI.
var Games = []Game{
	{
		Key:      "olemains",
		Title:    "Oh les mains",
		File:     "olemains_words.csv",
		Schema:   WordSchema(LocaleFR, LocaleEN, LocaleES),
		HasBonus: true,
	},
	{
		Key:          "pictionary",
		Title:        "Pictionary",
		File:         "pictionary_words.csv",
		Visual:       true,
		HasChallenge: true,
	},
	{
		Key:    "esquisse",
		Title:  "Esquisse",
		File:   "esquisse_words.csv",
		Visual: true,
	},
}

// GameByKey looks a game up in the catalog, defaulting to the first entry.
func GameByKey(key string) Game {
	for _, g := range Games {
		if g.Key == key {
			return g
		}
	}
	return Games[0]
}

// Theme is display metadata for an olemains theme.
type Theme struct {
	ID         string
	Name       string
	Color      string
	TierLabels map[int]string
}

var Themes = []Theme{
	{
		ID: "olemots", Name: "Olémots", Color: "#2ecc71",
		TierLabels: map[int]string{1: "Douce France (1 pt)", 2: "Graines de Star (2 pts)", 3: "Marques (3 pts)"},
	},
	{
		ID: "olemimes", Name: "Olémimes", Color: "#ff7a00",
		TierLabels: map[int]string{1: "Action (1 pt)", 2: "Sport (2 pts)", 3: "Musique (3 pts)"},
	},
	{
		ID: "olesons", Name: "Olésons", Color: "#ff4fa3",
		TierLabels: map[int]string{1: "Chansons (1 pt)", 2: "Imitation (2 pts)", 3: "Finis les paroles (3 pts)"},
	},
}

// ThemeMeta resolves display metadata for a theme ID, with a neutral default
// for unknown IDs so rendering never breaks on stale saved state.
func ThemeMeta(id string) Theme {
	for _, t := range Themes {
		if t.ID == id {
			return t
		}
	}
	return Theme{ID: id, Name: "Thème", Color: "#60a5fa", TierLabels: map[int]string{}}
}
