package deck

import (
	"strconv"
	"strings"
)

// tokenPalette maps deck color tokens to hex values. red stays DC143C to
// match the printed deck.
var tokenPalette = map[string]string{
	"yellow": "#FBBF24",
	"green":  "#22C55E",
	"blue":   "#60A5FA",
	"red":    "#DC143C",
	"purple": "#A78BFA",
	"orange": "#FB923C",
	"pink":   "#F472B6",
	"teal":   "#2DD4BF",
	"gray":   "#94A3B8",
	"black":  "#0F172A",
	"white":  "#E2E8F0",
}

// AccentFallback is used for unknown color tokens.
const AccentFallback = "#A78BFA"

const (
	darkText  = "#161616"
	lightText = "#EDEDED"
)

// ResolveColor maps a color token to its hex value, falling back to the
// default accent for unknown or blank tokens.
func ResolveColor(token string) string {
	if hex, ok := tokenPalette[strings.ToLower(strings.TrimSpace(token))]; ok {
		return hex
	}
	return AccentFallback
}

// TextColorFor picks a readable text color for text drawn over hex.
// Relative luminance above 0.68 gets dark text, anything else light.
func TextColorFor(hex string) string {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) != 6 {
		return lightText
	}
	r, err1 := strconv.ParseUint(h[0:2], 16, 16)
	g, err2 := strconv.ParseUint(h[2:4], 16, 16)
	b, err3 := strconv.ParseUint(h[4:6], 16, 16)
	if err1 != nil || err2 != nil || err3 != nil {
		return lightText
	}
	lum := (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 255
	if lum > 0.68 {
		return darkText
	}
	return lightText
}

// CategoryLegend describes what each card_color token means on the printed
// reference card.
type LegendEntry struct {
	Token string
	Label string
	Shape string
}

var CategoryLegend = []LegendEntry{
	{Token: "yellow", Label: "OBJET", Shape: "✦"},
	{Token: "blue", Label: "PERSONNE / LIEU / ANIMAL", Shape: "●"},
	{Token: "orange", Label: "ACTION", Shape: "◖"},
	{Token: "green", Label: "DIFFICILE", Shape: "▼"},
	{Token: "red", Label: "CULTURE GÉNÉRALE", Shape: "■"},
}
