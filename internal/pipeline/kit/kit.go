package kit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/brandcopilot/brand-copilot/internal/clients/openai"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/strategy"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/visual"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

// Positional color roles, mapped onto the concept's five palette entries.
var colorRoles = [5]string{"Primary", "Secondary", "Accent", "Text", "Background"}

var logoFormats = [4]string{"png", "png", "png", "png"}

var logoVariantNames = [4]string{"primary", "monochrome", "icon", "horizontal"}

var mockupKinds = []string{"business_card", "social_post", "storefront_sign"}

type Logo struct {
	Variant string `json:"variant"`
	Format  string `json:"format"`
	Ref     string `json:"ref"`
}

type NamedColor struct {
	Role string `json:"role"`
	Hex  string `json:"hex"`
}

type Font struct {
	Role    string `json:"role"`
	Family  string `json:"family"`
	Weights []int  `json:"weights"`
}

type Mockup struct {
	Kind string `json:"kind"`
	Ref  string `json:"ref"`
}

type Metadata struct {
	KitID       string    `json:"kit_id"`
	ConceptID   string    `json:"concept_id"`
	GeneratedAt time.Time `json:"generated_at"`
	LogoCount   int       `json:"logo_count"`
	ColorCount  int       `json:"color_count"`
	FontCount   int       `json:"font_count"`
	MockupCount int       `json:"mockup_count"`
}

// BrandKit is the final deliverable bundle for one brand.
type BrandKit struct {
	BrandName  string       `json:"brand_name"`
	Logos      []Logo       `json:"logos"`
	Colors     []NamedColor `json:"colors"`
	Fonts      []Font       `json:"fonts"`
	Mockups    []Mockup     `json:"mockups"`
	Guidelines string       `json:"guidelines"`
	Metadata   Metadata     `json:"metadata"`
}

// Assembler bundles a selected concept into a finished brand kit.
type Assembler struct {
	log *logger.Logger
	ai  openai.Client
}

// New accepts a nil client; guidelines then always use the template.
func New(log *logger.Logger, ai openai.Client) *Assembler {
	return &Assembler{log: log.With("component", "BrandKitAssembler"), ai: ai}
}

// Assemble performs no validation of the concept beyond direct field access.
func (a *Assembler) Assemble(ctx context.Context, brandName string, concept visual.Concept, analysis strategy.Analysis) BrandKit {
	logos := make([]Logo, 0, len(logoFormats))
	for i := range logoFormats {
		ref := ""
		if i < len(concept.LogoVariations) {
			ref = concept.LogoVariations[i]
		}
		logos = append(logos, Logo{Variant: logoVariantNames[i], Format: logoFormats[i], Ref: ref})
	}

	colors := make([]NamedColor, 0, len(colorRoles))
	for i, role := range colorRoles {
		hex := ""
		if i < len(concept.ColorPalette) {
			hex = concept.ColorPalette[i]
		}
		colors = append(colors, NamedColor{Role: role, Hex: hex})
	}

	fonts := []Font{
		{Role: "primary", Family: concept.Typography.Primary, Weights: []int{400, 600, 700}},
		{Role: "secondary", Family: concept.Typography.Secondary, Weights: []int{300, 400, 500}},
	}

	mockups := make([]Mockup, 0, len(mockupKinds))
	for _, kind := range mockupKinds {
		mockups = append(mockups, Mockup{
			Kind: kind,
			Ref:  fmt.Sprintf("mockups/%s/%s.png", kind, concept.ID),
		})
	}

	kit := BrandKit{
		BrandName:  brandName,
		Logos:      logos,
		Colors:     colors,
		Fonts:      fonts,
		Mockups:    mockups,
		Guidelines: a.guidelines(ctx, brandName, colors, fonts, analysis),
	}
	kit.Metadata = Metadata{
		KitID:       uuid.New().String(),
		ConceptID:   concept.ID,
		GeneratedAt: time.Now().UTC(),
		LogoCount:   len(kit.Logos),
		ColorCount:  len(kit.Colors),
		FontCount:   len(kit.Fonts),
		MockupCount: len(kit.Mockups),
	}
	return kit
}

func (a *Assembler) guidelines(ctx context.Context, brandName string, colors []NamedColor, fonts []Font, analysis strategy.Analysis) string {
	fallback := templateGuidelines(brandName, colors, fonts, analysis)
	if a.ai == nil {
		return fallback
	}

	var colorLines []string
	for _, c := range colors {
		colorLines = append(colorLines, fmt.Sprintf("%s %s", c.Role, c.Hex))
	}
	user := fmt.Sprintf(
		"Write brand guidelines for %q with sections: introduction, color usage, typography, application rules. Purpose: %s. Values: %s. Colors: %s. Fonts: %s and %s.",
		brandName,
		analysis.Purpose,
		strings.Join(analysis.Values, ", "),
		strings.Join(colorLines, ", "),
		fonts[0].Family, fonts[1].Family,
	)

	text, err := a.ai.GenerateText(ctx, "You are a brand designer writing concise, practical brand guidelines.", user)
	if err != nil {
		a.log.Warn("hosted guidelines failed, using template", "error", err)
		return fallback
	}
	return strings.TrimSpace(text)
}

func templateGuidelines(brandName string, colors []NamedColor, fonts []Font, analysis strategy.Analysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s Brand Guidelines\n\n", brandName)
	fmt.Fprintf(&b, "Introduction\n%s\n", analysis.Purpose)
	if len(analysis.Values) > 0 {
		fmt.Fprintf(&b, "Core values: %s.\n", strings.Join(analysis.Values, ", "))
	}

	b.WriteString("\nColors\n")
	for _, c := range colors {
		fmt.Fprintf(&b, "- %s: %s\n", c.Role, c.Hex)
	}

	b.WriteString("\nTypography\n")
	for _, f := range fonts {
		weights := make([]string, len(f.Weights))
		for i, w := range f.Weights {
			weights[i] = fmt.Sprintf("%d", w)
		}
		fmt.Fprintf(&b, "- %s: %s (weights %s)\n", f.Role, f.Family, strings.Join(weights, ", "))
	}

	b.WriteString("\nApplication rules\n")
	b.WriteString("- Use the primary logo on light backgrounds and the monochrome variant on photography.\n")
	b.WriteString("- Keep clear space around the logo equal to the height of the brand initials.\n")
	b.WriteString("- Body copy always uses the secondary font; headlines use the primary font.\n")

	return b.String()
}
