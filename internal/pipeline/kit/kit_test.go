package kit

import (
	"context"
	"strings"
	"testing"

	"github.com/brandcopilot/brand-copilot/internal/pipeline/strategy"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/visual"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

func testConcept() visual.Concept {
	return visual.Concept{
		ID:             "concept-1",
		LogoVariations: []string{"l0", "l1", "l2", "l3"},
		ColorPalette:   []string{"#111111", "#222222", "#333333", "#444444", "#555555"},
		Typography:     visual.Typography{Primary: "Montserrat", Secondary: "Open Sans"},
	}
}

func testAnalysis() strategy.Analysis {
	return strategy.Analysis{
		Purpose: "Democratize specialty coffee",
		Values:  []string{"quality", "sustainability"},
	}
}

func TestAssembleCounts(t *testing.T) {
	a := New(logger.Nop(), nil)

	kit := a.Assemble(context.Background(), "Café Verde", testConcept(), testAnalysis())

	if kit.Metadata.LogoCount != 4 || len(kit.Logos) != 4 {
		t.Errorf("expected 4 logos, got %d", len(kit.Logos))
	}
	if kit.Metadata.ColorCount != 5 || len(kit.Colors) != 5 {
		t.Errorf("expected 5 colors, got %d", len(kit.Colors))
	}
	if kit.Metadata.FontCount != 2 || len(kit.Fonts) != 2 {
		t.Errorf("expected 2 fonts, got %d", len(kit.Fonts))
	}
	if kit.Metadata.MockupCount != len(kit.Mockups) || len(kit.Mockups) == 0 {
		t.Errorf("mockup count mismatch: %d vs %d", kit.Metadata.MockupCount, len(kit.Mockups))
	}
	if kit.Metadata.ConceptID != "concept-1" {
		t.Errorf("expected concept id recorded, got %q", kit.Metadata.ConceptID)
	}
	if kit.Metadata.KitID == "" || kit.Metadata.GeneratedAt.IsZero() {
		t.Error("metadata missing kit id or timestamp")
	}
}

func TestAssembleColorRolesPositional(t *testing.T) {
	a := New(logger.Nop(), nil)

	kit := a.Assemble(context.Background(), "Acme", testConcept(), testAnalysis())

	want := []struct{ role, hex string }{
		{"Primary", "#111111"},
		{"Secondary", "#222222"},
		{"Accent", "#333333"},
		{"Text", "#444444"},
		{"Background", "#555555"},
	}
	for i, w := range want {
		if kit.Colors[i].Role != w.role || kit.Colors[i].Hex != w.hex {
			t.Errorf("color %d: expected %s=%s, got %s=%s", i, w.role, w.hex, kit.Colors[i].Role, kit.Colors[i].Hex)
		}
	}
}

func TestAssembleShortPaletteLeavesBlankSlots(t *testing.T) {
	a := New(logger.Nop(), nil)

	concept := testConcept()
	concept.ColorPalette = []string{"#111111"}
	concept.LogoVariations = []string{"only"}

	kit := a.Assemble(context.Background(), "Acme", concept, testAnalysis())

	if len(kit.Colors) != 5 || kit.Colors[1].Hex != "" {
		t.Errorf("expected blank trailing color slots, got %+v", kit.Colors)
	}
	if len(kit.Logos) != 4 || kit.Logos[1].Ref != "" {
		t.Errorf("expected blank trailing logo slots, got %+v", kit.Logos)
	}
}

func TestTemplateGuidelinesMentionsAllSections(t *testing.T) {
	a := New(logger.Nop(), nil)

	kit := a.Assemble(context.Background(), "Café Verde", testConcept(), testAnalysis())

	for _, needle := range []string{
		"Café Verde Brand Guidelines",
		"Democratize specialty coffee",
		"#111111",
		"Montserrat",
		"Application rules",
	} {
		if !strings.Contains(kit.Guidelines, needle) {
			t.Errorf("guidelines missing %q", needle)
		}
	}
}

func TestFontWeightsFixed(t *testing.T) {
	a := New(logger.Nop(), nil)

	kit := a.Assemble(context.Background(), "Acme", testConcept(), testAnalysis())

	if len(kit.Fonts[0].Weights) != 3 || kit.Fonts[0].Weights[0] != 400 {
		t.Errorf("unexpected primary weights: %v", kit.Fonts[0].Weights)
	}
	if len(kit.Fonts[1].Weights) != 3 || kit.Fonts[1].Weights[0] != 300 {
		t.Errorf("unexpected secondary weights: %v", kit.Fonts[1].Weights)
	}
}
