package classifier

import (
	"fmt"
	"strings"
	"testing"

	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

func TestClassifyDropsShortParagraphs(t *testing.T) {
	c := New(logger.Nop())

	text := "too short\n\nOur company is a sustainable startup founded in 2020 that builds coffee products."
	sections := c.Classify(text)

	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].Category != "company_info" {
		t.Fatalf("expected company_info, got %s", sections[0].Category)
	}
}

func TestClassifyCategories(t *testing.T) {
	c := New(logger.Nop())

	cases := []struct {
		text     string
		category string
	}{
		{"Nossa empresa foi fundada em 2021 e somos uma startup de tecnologia brasileira.", "company_info"},
		{"Nosso público-alvo são jovens da geração Z, consumidores urbanos e conectados.", "target_audience"},
		{"Nossos objetivos incluem crescer no mercado nacional, e nossa missão é clara.", "objectives"},
		{"A personalidade da marca é moderna e criativa, com tom de voz descontraído e leve.", "brand_personality"},
		{"Nossos valores são sustentabilidade, qualidade e transparência em tudo que fazemos.", "values"},
	}

	for _, tc := range cases {
		sections := c.Classify(tc.text)
		if len(sections) != 1 {
			t.Fatalf("%q: expected 1 section, got %d", tc.text, len(sections))
		}
		if sections[0].Category != tc.category {
			t.Errorf("%q: expected %s, got %s", tc.text, tc.category, sections[0].Category)
		}
		if sections[0].Confidence <= 0 {
			t.Errorf("%q: expected positive confidence", tc.text)
		}
	}
}

func TestClassifyUnmatchedParagraph(t *testing.T) {
	c := New(logger.Nop())

	text := strings.Repeat("lorem ipsum dolor sit amet consectetur ", 3)
	sections := c.Classify(text)

	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	s := sections[0]
	if s.Category != "other" || s.Confidence != 0 || s.Title != "Additional Content" {
		t.Fatalf("unexpected fallback section: %+v", s)
	}
}

func TestClassifyKeepsTopEightByConfidence(t *testing.T) {
	c := New(logger.Nop())

	var b strings.Builder
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&b, "Nossos valores são sustentabilidade e qualidade, parágrafo número %d do briefing.\n", i)
	}
	b.WriteString(strings.Repeat("lorem ipsum dolor sit amet consectetur adipiscing ", 2))
	b.WriteString("\n")

	sections := c.Classify(b.String())
	if len(sections) != maxSections {
		t.Fatalf("expected %d sections, got %d", maxSections, len(sections))
	}
	for i := 1; i < len(sections); i++ {
		if sections[i].Confidence > sections[i-1].Confidence {
			t.Fatalf("sections not sorted by confidence at index %d", i)
		}
	}
	// The zero-confidence filler must be crowded out by scored paragraphs.
	for _, s := range sections {
		if s.Category == "other" {
			t.Fatalf("unscored paragraph survived the top-%d cut", maxSections)
		}
	}
}

func TestClassifyScoreClampedToOne(t *testing.T) {
	c := New(logger.Nop())

	text := "Nossos valores e princípios: sustentabilidade, ética, transparência, qualidade e responsabilidade acima de tudo."
	sections := c.Classify(text)

	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].Confidence > 1 {
		t.Fatalf("confidence exceeds 1: %f", sections[0].Confidence)
	}
}

func TestOverallConfidenceEmpty(t *testing.T) {
	if got := OverallConfidence(nil); got != 0.0 {
		t.Fatalf("expected 0.0, got %f", got)
	}
}

func TestOverallConfidenceWeighted(t *testing.T) {
	sections := []Section{
		{Category: "company_info", Confidence: 0.5},
		{Category: "target_audience", Confidence: 1.0},
	}
	// (0.5*0.20 + 1.0*0.25) / (0.20 + 0.25)
	want := (0.5*0.20 + 1.0*0.25) / 0.45
	got := OverallConfidence(sections)
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected %f, got %f", want, got)
	}
}

func TestOverallConfidenceUnknownCategoryWeight(t *testing.T) {
	sections := []Section{
		{Category: "other", Confidence: 0.8},
	}
	got := OverallConfidence(sections)
	if diff := got - 0.8; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("single unknown section should keep its own confidence, got %f", got)
	}
}
