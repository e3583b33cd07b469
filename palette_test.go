package juliafatou

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestParseColorStyleRoundTrip(t *testing.T) {
	styles := []ColorStyle{
		StyleBookworm, StyleJellyfish, StyleTen, StyleEleven, StyleMint,
		StyleGreyscale, StyleChristmas, StyleChameleon, StylePlasma,
		StylePlasma2, StyleConfig, StyleRandom,
	}
	for _, style := range styles {
		got, err := ParseColorStyle(style.String())
		if err != nil {
			t.Errorf("ParseColorStyle(%q): %v", style.String(), err)
			continue
		}
		if got != style {
			t.Errorf("ParseColorStyle(%q) = %v, want %v", style.String(), got, style)
		}
	}
}

func TestParseColorStyleUnknown(t *testing.T) {
	_, err := ParseColorStyle("neon")
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Errorf("err = %v, want ConfigError", err)
	}
}

func TestParseColorStyleCaseInsensitive(t *testing.T) {
	got, err := ParseColorStyle("  Greyscale ")
	if err != nil {
		t.Fatalf("ParseColorStyle: %v", err)
	}
	if got != StyleGreyscale {
		t.Errorf("got %v, want StyleGreyscale", got)
	}
}

func TestPaletteColors(t *testing.T) {
	for style := StyleBookworm; style <= StylePlasma2; style++ {
		colors, err := PaletteColors(style)
		if err != nil {
			t.Errorf("PaletteColors(%v): %v", style, err)
			continue
		}
		if len(colors) != 3 {
			t.Errorf("PaletteColors(%v) = %d colors, want 3", style, len(colors))
		}
	}
}

func TestPaletteColorsDynamicStyles(t *testing.T) {
	for _, style := range []ColorStyle{StyleConfig, StyleRandom} {
		_, err := PaletteColors(style)
		var cerr *ConfigError
		if !errors.As(err, &cerr) {
			t.Errorf("PaletteColors(%v) err = %v, want ConfigError", style, err)
		}
	}
}

func TestRandomColorsDeterministic(t *testing.T) {
	seed := [32]byte{1, 2, 3}
	a := RandomColors(rand.New(rand.NewChaCha8(seed)))
	b := RandomColors(rand.New(rand.NewChaCha8(seed)))

	if len(a) != 3 || len(b) != 3 {
		t.Fatalf("RandomColors returned %d and %d colors, want 3", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("color %d differs for identical seeds: %v vs %v", i, a[i], b[i])
		}
	}
}
