package config

import (
	"image/color"

	"github.com/automoto/squishroom/shared/level"
)

// SkinMode selects how tiles are drawn.
type SkinMode string

const (
	SkinClassic SkinMode = "classic"
	SkinSkinned SkinMode = "skinned"
)

// PaletteMode selects the skinned palette.
type PaletteMode string

const (
	PaletteNormal       PaletteMode = "normal"
	PaletteHighContrast PaletteMode = "high-contrast"
)

// TileStyle describes how one glyph is drawn. Scales are fractions of the
// tile size. Zero stroke width means no outline and a zero edge height
// means no highlight band.
type TileStyle struct {
	Fill        uint32
	Stroke      uint32
	StrokeWidth float64
	Alpha       float64
	WidthScale  float64
	HeightScale float64
	Edge        uint32
	EdgeScale   float64
}

var classicTiles = map[level.Glyph]TileStyle{
	level.Wall:         {Fill: 0x3f5d3a, Alpha: 1, WidthScale: 1, HeightScale: 1},
	level.ThinPlatform: {Fill: 0x7aa17a, Alpha: 1, WidthScale: 1, HeightScale: 0.35},
	level.Hazard:       {Fill: 0xd24a43, Alpha: 1, WidthScale: 0.7, HeightScale: 0.4},
	level.Exit:         {Fill: 0xd4c24f, Alpha: 1, WidthScale: 0.8, HeightScale: 0.6},
}

var skinnedTiles = map[level.Glyph]TileStyle{
	level.Wall: {
		Fill: 0x4d7650, Stroke: 0x9dc29b, StrokeWidth: 2, Alpha: 0.98,
		WidthScale: 1, HeightScale: 1, Edge: 0xbad4b5, EdgeScale: 0.1,
	},
	level.ThinPlatform: {
		Fill: 0x6d9f7d, Stroke: 0xb6dfbf, StrokeWidth: 2, Alpha: 0.96,
		WidthScale: 1, HeightScale: 0.35, Edge: 0xd3ebd8, EdgeScale: 0.42,
	},
	level.Hazard: {
		Fill: 0xcf5b51, Stroke: 0xffb1a8, StrokeWidth: 2, Alpha: 0.98,
		WidthScale: 0.7, HeightScale: 0.4, Edge: 0xffd0ca, EdgeScale: 0.3,
	},
	level.Exit: {
		Fill: 0xd7c775, Stroke: 0xffe7a7, StrokeWidth: 2, Alpha: 0.98,
		WidthScale: 0.8, HeightScale: 0.6, Edge: 0xfff0c7, EdgeScale: 0.22,
	},
}

var highContrastTiles = map[level.Glyph]TileStyle{
	level.Wall: {
		Fill: 0x2f5332, Stroke: 0xe8f6e6, StrokeWidth: 2, Alpha: 1,
		WidthScale: 1, HeightScale: 1, Edge: 0xffffff, EdgeScale: 0.1,
	},
	level.ThinPlatform: {
		Fill: 0x4f8f60, Stroke: 0xf0fff1, StrokeWidth: 2, Alpha: 1,
		WidthScale: 1, HeightScale: 0.35, Edge: 0xffffff, EdgeScale: 0.42,
	},
	level.Hazard: {
		Fill: 0xc63d36, Stroke: 0xfff0ee, StrokeWidth: 2, Alpha: 1,
		WidthScale: 0.7, HeightScale: 0.4, Edge: 0xffffff, EdgeScale: 0.3,
	},
	level.Exit: {
		Fill: 0xc5ae40, Stroke: 0xfff5cc, StrokeWidth: 2, Alpha: 1,
		WidthScale: 0.8, HeightScale: 0.6, Edge: 0xffffff, EdgeScale: 0.22,
	},
}

// ResolveSkinMode accepts "classic" or "skinned"; anything else falls back.
func ResolveSkinMode(requested string, fallback SkinMode) SkinMode {
	switch SkinMode(requested) {
	case SkinClassic, SkinSkinned:
		return SkinMode(requested)
	}
	return fallback
}

// ResolvePaletteMode maps "high" to the high-contrast palette; anything else
// falls back.
func ResolvePaletteMode(requested string, fallback PaletteMode) PaletteMode {
	if requested == "high" {
		return PaletteHighContrast
	}
	return fallback
}

// TileStyleFor returns the style for a drawable glyph. The palette only
// applies to the skinned mode. ok is false for glyphs that are not drawn.
func TileStyleFor(g level.Glyph, mode SkinMode, palette PaletteMode) (TileStyle, bool) {
	table := skinnedTiles
	switch {
	case mode == SkinClassic:
		table = classicTiles
	case palette == PaletteHighContrast:
		table = highContrastTiles
	}
	s, ok := table[g]
	return s, ok
}

// Hex expands a 0xRRGGBB color with an alpha in [0,1].
func Hex(hex uint32, alpha float64) color.NRGBA {
	return color.NRGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: uint8(alpha*255 + 0.5)}
}
