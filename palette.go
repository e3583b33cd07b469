package juliafatou

import (
	"math/rand/v2"
	"strings"
)

// ColorStyle selects one of the built-in three-color palettes, or one of
// the two dynamic sources (a user-supplied color file, random colors).
type ColorStyle int

const (
	StyleBookworm ColorStyle = iota
	StyleJellyfish
	StyleTen
	StyleEleven
	StyleMint
	StyleGreyscale
	StyleChristmas
	StyleChameleon
	StylePlasma
	StylePlasma2
	// StyleConfig marks that control colors come from an external color
	// file; the palette table has no entry for it.
	StyleConfig
	// StyleRandom marks that control colors are drawn from a random source.
	StyleRandom
)

var styleNames = [...]string{
	StyleBookworm:  "bookworm",
	StyleJellyfish: "jellyfish",
	StyleTen:       "ten",
	StyleEleven:    "eleven",
	StyleMint:      "mint",
	StyleGreyscale: "greyscale",
	StyleChristmas: "christmas",
	StyleChameleon: "chameleon",
	StylePlasma:    "plasma",
	StylePlasma2:   "plasma2",
	StyleConfig:    "config",
	StyleRandom:    "random",
}

// String returns the lowercase palette name used on the command line.
func (s ColorStyle) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return "unknown"
	}
	return styleNames[s]
}

// ParseColorStyle resolves a palette name. Matching is case-insensitive.
func ParseColorStyle(name string) (ColorStyle, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range styleNames {
		if n == name {
			return ColorStyle(i), nil
		}
	}
	return 0, configErrorf("unknown color style %q", name)
}

// builtinPalettes holds the control colors of every named palette.
// Each palette has exactly three anchors, dark to light.
var builtinPalettes = map[ColorStyle][]RGB{
	StyleBookworm:  {{5, 71, 92}, {10, 120, 115}, {184, 216, 215}},
	StyleJellyfish: {{38, 0, 24}, {90, 25, 63}, {198, 70, 72}},
	StyleTen:       {{4, 62, 185}, {2, 123, 230}, {105, 254, 255}},
	StyleEleven:    {{2, 70, 217}, {1, 214, 244}, {209, 229, 254}},
	StyleMint:      {{21, 21, 21}, {137, 184, 70}, {214, 214, 214}},
	StyleGreyscale: {{255, 255, 255}, {127, 127, 127}, {0, 0, 0}},
	StyleChristmas: {{31, 56, 35}, {209, 27, 79}, {250, 219, 82}},
	StyleChameleon: {{11, 127, 109}, {35, 145, 108}, {21, 155, 110}},
	StylePlasma:    {{35, 37, 83}, {36, 102, 156}, {219, 135, 75}},
	StylePlasma2:   {{0, 87, 139}, {0, 147, 235}, {249, 249, 249}},
}

// PaletteColors returns the control colors of a named built-in palette.
// StyleConfig and StyleRandom have no fixed colors and yield a ConfigError;
// their colors come from a color file or from RandomColors.
func PaletteColors(style ColorStyle) ([]RGB, error) {
	colors, ok := builtinPalettes[style]
	if !ok {
		return nil, configErrorf("color style %q has no built-in palette", style)
	}
	out := make([]RGB, len(colors))
	copy(out, colors)
	return out, nil
}

// RandomColors draws three control colors from r. The source is injected so
// callers can seed it for reproducible palettes.
func RandomColors(r *rand.Rand) []RGB {
	colors := make([]RGB, 3)
	for i := range colors {
		v := r.Uint32()
		colors[i] = RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}
	}
	return colors
}
