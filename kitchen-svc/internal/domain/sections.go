package domain

import (
	"fmt"
	"unicode/utf16"
)

var sectionPalette = map[string]SectionColor{
	"Grill":        {BgStart: "#fef3e2", BgEnd: "#fed7aa", Border: "#fb923c"},
	"Fryer":        {BgStart: "#fef2f2", BgEnd: "#fecaca", Border: "#f87171"},
	"Salad":        {BgStart: "#f0fdf4", BgEnd: "#bbf7d0", Border: "#4ade80"},
	"Drinks":       {BgStart: "#eff6ff", BgEnd: "#bfdbfe", Border: "#60a5fa"},
	"Dessert":      {BgStart: "#fdf4ff", BgEnd: "#e9d5ff", Border: "#a855f7"},
	"Pizza":        {BgStart: "#fffbeb", BgEnd: "#fde68a", Border: "#f59e0b"},
	"Sushi":        {BgStart: "#ecfdf5", BgEnd: "#a7f3d0", Border: "#10b981"},
	"Cold Kitchen": {BgStart: "#f8fafc", BgEnd: "#e2e8f0", Border: "#64748b"},
}

// ColorForSection returns the fixed palette for a known station section and
// a hue derived from the name for anything else, so the board stays stable
// between reloads.
func ColorForSection(name string) SectionColor {
	if c, ok := sectionPalette[name]; ok {
		return c
	}

	var hash int32
	for _, unit := range utf16.Encode([]rune(name)) {
		hash = (hash << 5) - hash + int32(unit)
	}
	hue := ((hash % 360) + 360) % 360

	return SectionColor{
		BgStart: fmt.Sprintf("hsl(%d 45%% 96%%)", hue),
		BgEnd:   fmt.Sprintf("hsl(%d 45%% 88%%)", hue),
		Border:  fmt.Sprintf("hsl(%d 45%% 70%%)", hue),
	}
}
