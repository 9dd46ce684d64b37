package util

// Config holds runtime settings and flags.
type Config struct {
	SeedText    string
	DataDir     string
	DBPath      string
	Locale      string // fr|en|es
	StickyBonus bool
	Verbose     bool
}
