package visual

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/brandcopilot/brand-copilot/internal/clients/openai"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/strategy"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

type downAI struct{}

func (downAI) GenerateJSON(context.Context, string, string, string, map[string]any) (map[string]any, error) {
	return nil, errors.New("unavailable")
}

func (downAI) GenerateText(context.Context, string, string) (string, error) {
	return "", errors.New("unavailable")
}

func (downAI) GenerateImage(context.Context, string) (openai.ImageGeneration, error) {
	return openai.ImageGeneration{}, errors.New("unavailable")
}

func testAnalysis() strategy.Analysis {
	return strategy.Analysis{
		Purpose:           "Democratize specialty coffee",
		Values:            []string{"sustainability", "quality"},
		PersonalityTraits: []string{"warm", "conscious"},
		CreativeTensions: map[string]int{
			strategy.AxisTraditionalContemporary: 80,
			strategy.AxisCorporateCreative:       70,
			strategy.AxisMinimalDetailed:         40,
			strategy.AxisSeriousPlayful:          60,
		},
	}
}

func TestSelectBucket(t *testing.T) {
	cases := []struct {
		tc, cc int
		want   string
	}{
		{80, 50, BucketContemporary},
		{20, 50, BucketTraditional},
		{50, 70, BucketCreative},
		{50, 40, BucketContemporary},
	}
	for _, c := range cases {
		got := SelectBucket(map[string]int{
			strategy.AxisTraditionalContemporary: c.tc,
			strategy.AxisCorporateCreative:       c.cc,
		})
		if got != c.want {
			t.Errorf("tc=%d cc=%d: expected %s, got %s", c.tc, c.cc, c.want, got)
		}
	}
	if got := SelectBucket(nil); got != BucketContemporary {
		t.Errorf("missing sliders should default contemporary, got %s", got)
	}
}

func TestGenerateConceptsWithUnavailableImageAPI(t *testing.T) {
	g := NewGenerator(logger.Nop(), downAI{}, nil)

	concepts := g.GenerateConcepts(context.Background(), "Café Verde", testAnalysis(), nil, []string{"sustainable"}, map[string]int{
		strategy.AxisTraditionalContemporary: 80,
		strategy.AxisCorporateCreative:       70,
	})

	if len(concepts) != 3 {
		t.Fatalf("expected exactly 3 concepts, got %d", len(concepts))
	}
	for i, concept := range concepts {
		if concept.ID == "" {
			t.Errorf("concept %d missing id", i)
		}
		if len(concept.LogoVariations) != 4 {
			t.Errorf("concept %d: expected 4 logo variations, got %d", i, len(concept.LogoVariations))
		}
		for v, logo := range concept.LogoVariations {
			if !strings.HasPrefix(logo, "data:image/png;base64,") {
				t.Errorf("concept %d logo %d: expected placeholder data URI", i, v)
			}
		}
		if len(concept.ColorPalette) != 5 {
			t.Errorf("concept %d: expected 5 palette colors, got %d", i, len(concept.ColorPalette))
		}
		if concept.Typography.Primary == "" || concept.Typography.Secondary == "" {
			t.Errorf("concept %d: incomplete typography", i)
		}
		if concept.Rationale == "" || concept.StylePrompt == "" {
			t.Errorf("concept %d: missing rationale or style prompt", i)
		}
	}
}

func TestGenerateConceptsKeywordsReachStylePrompt(t *testing.T) {
	g := NewGenerator(logger.Nop(), nil, nil)

	concepts := g.GenerateConcepts(context.Background(), "Acme", testAnalysis(),
		[]string{"specialty coffee", "slow mornings", "roastery", "fourth keyword"},
		nil, nil)

	for i, concept := range concepts {
		for _, kw := range []string{"specialty coffee", "slow mornings", "roastery"} {
			if !strings.Contains(concept.StylePrompt, kw) {
				t.Errorf("concept %d: keyword %q missing from style prompt %q", i, kw, concept.StylePrompt)
			}
		}
		if strings.Contains(concept.StylePrompt, "fourth keyword") {
			t.Errorf("concept %d: style prompt should carry at most three keywords", i)
		}
	}
}

func TestGenerateConceptsTypographyRotates(t *testing.T) {
	g := NewGenerator(logger.Nop(), nil, nil)

	concepts := g.GenerateConcepts(context.Background(), "Acme", testAnalysis(), nil, nil, map[string]int{
		strategy.AxisTraditionalContemporary: 80,
	})

	seen := map[string]bool{}
	for _, c := range concepts {
		seen[c.Typography.Primary] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 distinct primary fonts, got %v", seen)
	}
}

func TestGenerateConceptsRationaleMentionsLean(t *testing.T) {
	g := NewGenerator(logger.Nop(), nil, nil)

	creative := g.GenerateConcepts(context.Background(), "Acme", testAnalysis(), nil, nil, map[string]int{
		strategy.AxisTraditionalContemporary: 50,
		strategy.AxisCorporateCreative:       70,
	})
	if !strings.Contains(creative[0].Rationale, "creative expression") {
		t.Errorf("expected creative lean in rationale: %q", creative[0].Rationale)
	}

	corporate := g.GenerateConcepts(context.Background(), "Acme", testAnalysis(), nil, nil, map[string]int{
		strategy.AxisTraditionalContemporary: 50,
		strategy.AxisCorporateCreative:       40,
	})
	if !strings.Contains(corporate[0].Rationale, "institutional credibility") {
		t.Errorf("expected institutional lean in rationale: %q", corporate[0].Rationale)
	}
}

func TestGenerateMetaphorsDemoMode(t *testing.T) {
	g := NewGenerator(logger.Nop(), nil, nil)

	metaphors, err := g.GenerateMetaphors(context.Background(), []string{"coffee", "community"}, []string{"sustainable"}, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(metaphors) == 0 || len(metaphors) > 6 {
		t.Fatalf("expected 1..6 metaphors, got %d", len(metaphors))
	}
	for _, m := range metaphors {
		if m.Title == "" || m.Description == "" || m.ImageURL == "" {
			t.Errorf("incomplete metaphor: %+v", m)
		}
		if !strings.HasPrefix(m.ImageURL, "https://") {
			t.Errorf("demo mode should serve URLs, got %q", m.ImageURL)
		}
	}
}

func TestGenerateMetaphorsEmptyInputStillProduces(t *testing.T) {
	g := NewGenerator(logger.Nop(), nil, nil)

	metaphors, err := g.GenerateMetaphors(context.Background(), nil, nil, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(metaphors) == 0 {
		t.Fatal("expected default metaphors for empty input")
	}
}

func TestComputeInitials(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Café Verde", "CV"},
		{"acme", "A"},
		{"one two three four", "OTT"},
		{"", "B"},
	}
	for _, c := range cases {
		if got := ComputeInitials(c.in); got != c.want {
			t.Errorf("%q: expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestGeneratePaletteOptions(t *testing.T) {
	hexRe := regexp.MustCompile(`^#[0-9A-F]{6}$`)

	options := GeneratePaletteOptions([]string{"sustainable", "premium"})
	if len(options) != 3 {
		t.Fatalf("expected 2 curated + 1 harmonized, got %d", len(options))
	}
	last := options[len(options)-1]
	if last.Basis != "generated" || len(last.Colors) != 4 {
		t.Fatalf("unexpected harmonized palette: %+v", last)
	}
	for _, c := range last.Colors {
		if !hexRe.MatchString(c) {
			t.Errorf("invalid harmonized hex %q", c)
		}
	}
}

func TestGeneratePaletteOptionsEmptyAttributes(t *testing.T) {
	options := GeneratePaletteOptions(nil)
	if len(options) < 2 {
		t.Fatalf("expected defaults for empty attributes, got %d", len(options))
	}
}

func TestGenerateFontPairs(t *testing.T) {
	pairs := GenerateFontPairs([]string{"premium"})
	if len(pairs) != 1 || pairs[0].PrimaryFont != "Playfair Display" {
		t.Fatalf("unexpected pairs: %+v", pairs)
	}

	if pairs := GenerateFontPairs(nil); len(pairs) != 2 {
		t.Fatalf("expected 2 default pairs, got %d", len(pairs))
	}
}

func TestHarmonizedPaletteDeterministic(t *testing.T) {
	a := harmonizedPalette("seed")
	b := harmonizedPalette("seed")
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("expected deterministic palette, got %v vs %v", a, b)
		}
	}
}
