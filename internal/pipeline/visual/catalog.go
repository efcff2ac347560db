package visual

import (
	"crypto/sha256"
	"fmt"
	"math"
	"strings"
)

// PaletteOption is one curated entry in the palette exploration catalog.
type PaletteOption struct {
	Name        string   `json:"name"`
	Colors      []string `json:"colors"`
	Description string   `json:"description"`
	Basis       string   `json:"basis"`
}

// FontPairOption is one curated entry in the typography exploration catalog.
type FontPairOption struct {
	Name          string `json:"name"`
	PrimaryFont   string `json:"primary_font"`
	SecondaryFont string `json:"secondary_font"`
	Description   string `json:"description"`
}

type curatedPalette struct {
	key         string
	name        string
	colors      []string
	description string
}

var curatedPalettes = []curatedPalette{
	{"sustainable", "Forest Roots", []string{"#2D5A27", "#8FBC8F", "#F4F1DE", "#81B29A"}, "Grounded greens for nature-first brands"},
	{"premium", "Midnight Gold", []string{"#1A1A2E", "#C9B037", "#F5F5F5", "#4A4E69"}, "Dark neutrals with a metallic accent"},
	{"modern", "Urban Dusk", []string{"#0B132B", "#3A506B", "#5BC0BE", "#FFFFFF"}, "Cool blues with a clean highlight"},
	{"vibrant", "Street Pop", []string{"#FF6B6B", "#4ECDC4", "#FFE66D", "#292F36"}, "Saturated accents with a dark anchor"},
	{"earthy", "Terracotta", []string{"#5E503F", "#C6AC8F", "#EAE0D5", "#0A0908"}, "Warm clay tones"},
}

// GeneratePaletteOptions returns every curated palette triggered by the
// attributes plus one algorithmically harmonized palette. Empty attributes
// still yield a non-empty catalog.
func GeneratePaletteOptions(attributes []string) []PaletteOption {
	attrSet := make(map[string]struct{}, len(attributes))
	for _, a := range attributes {
		attrSet[strings.ToLower(strings.TrimSpace(a))] = struct{}{}
	}

	options := make([]PaletteOption, 0, len(curatedPalettes)+1)
	for _, p := range curatedPalettes {
		if _, ok := attrSet[p.key]; ok {
			options = append(options, PaletteOption{
				Name:        p.name,
				Colors:      p.colors,
				Description: p.description,
				Basis:       p.key,
			})
		}
	}
	if len(options) == 0 {
		for _, p := range curatedPalettes[:2] {
			options = append(options, PaletteOption{
				Name:        p.name,
				Colors:      p.colors,
				Description: p.description,
				Basis:       "default",
			})
		}
	}

	options = append(options, PaletteOption{
		Name:        "Harmonized",
		Colors:      harmonizedPalette(strings.Join(attributes, "|")),
		Description: "Four-color tetradic harmony derived from the brief",
		Basis:       "generated",
	})
	return options
}

// harmonizedPalette derives a tetradic 4-color palette from a seed string.
// Output colors are always valid #RRGGBB.
func harmonizedPalette(seed string) []string {
	sum := sha256.Sum256([]byte(seed))
	baseHue := float64(int(sum[0])<<8|int(sum[1])) / 65535.0 * 360.0

	colors := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		hue := math.Mod(baseHue+float64(i)*90.0, 360.0)
		r, g, b := hsvToRGB(hue, 0.55, 0.85)
		colors = append(colors, fmt.Sprintf("#%02X%02X%02X", r, g, b))
	}
	return colors
}

func hsvToRGB(h, s, v float64) (uint8, uint8, uint8) {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60.0, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

type curatedFontPair struct {
	key  string
	pair FontPairOption
}

var curatedFontPairs = []curatedFontPair{
	{"modern", FontPairOption{Name: "Geometric Clarity", PrimaryFont: "Montserrat", SecondaryFont: "Open Sans", Description: "Geometric headline with a neutral body"}},
	{"premium", FontPairOption{Name: "Editorial Contrast", PrimaryFont: "Playfair Display", SecondaryFont: "Lato", Description: "High-contrast serif over a quiet sans"}},
	{"playful", FontPairOption{Name: "Friendly Rounds", PrimaryFont: "Nunito", SecondaryFont: "Roboto", Description: "Rounded shapes that stay legible"}},
	{"traditional", FontPairOption{Name: "Classic Footing", PrimaryFont: "Merriweather", SecondaryFont: "Source Sans Pro", Description: "Bookish serif with a workhorse body"}},
	{"creative", FontPairOption{Name: "Display Statement", PrimaryFont: "Abril Fatface", SecondaryFont: "Inter", Description: "Expressive display over a plain canvas"}},
}

// GenerateFontPairs mirrors GeneratePaletteOptions for typography.
func GenerateFontPairs(attributes []string) []FontPairOption {
	attrSet := make(map[string]struct{}, len(attributes))
	for _, a := range attributes {
		attrSet[strings.ToLower(strings.TrimSpace(a))] = struct{}{}
	}

	pairs := make([]FontPairOption, 0, len(curatedFontPairs))
	for _, fp := range curatedFontPairs {
		if _, ok := attrSet[fp.key]; ok {
			pairs = append(pairs, fp.pair)
		}
	}
	if len(pairs) == 0 {
		pairs = append(pairs, curatedFontPairs[0].pair, curatedFontPairs[1].pair)
	}
	return pairs
}
