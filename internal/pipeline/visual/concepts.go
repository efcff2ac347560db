package visual

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/brandcopilot/brand-copilot/internal/cache"
	"github.com/brandcopilot/brand-copilot/internal/clients/openai"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/compositor"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/strategy"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

const (
	conceptCount  = 3
	logoVariants  = 4
	graphicsCount = 2
)

var variantDescriptors = [logoVariants]string{
	"primary mark",
	"monochrome variant",
	"icon only",
	"horizontal lockup",
}

type Typography struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// Concept is one complete visual direction for a brand.
type Concept struct {
	ID              string     `json:"id"`
	LogoVariations  []string   `json:"logo_variations"`
	ColorPalette    []string   `json:"color_palette"`
	Typography      Typography `json:"typography"`
	GraphicElements []string   `json:"graphic_elements"`
	Rationale       string     `json:"rationale"`
	StylePrompt     string     `json:"style_prompt"`
}

// Generator produces visual concepts, metaphors and the supporting catalogs.
type Generator struct {
	log      *logger.Logger
	ai       openai.Client
	cache    cache.Cache
	styles   StyleConfig
	renderer *LogoRenderer
}

// NewGenerator accepts a nil client (placeholder-only mode) and a nil cache.
func NewGenerator(log *logger.Logger, ai openai.Client, c cache.Cache) *Generator {
	genLog := log.With("component", "VisualConceptGenerator")
	return &Generator{
		log:      genLog,
		ai:       ai,
		cache:    c,
		styles:   LoadStyleConfig(genLog),
		renderer: NewLogoRenderer(log),
	}
}

// GenerateConcepts always returns exactly three concepts. Individual logo or
// rationale failures degrade to deterministic fallbacks without aborting the
// other concepts.
func (g *Generator) GenerateConcepts(ctx context.Context, brandName string, analysis strategy.Analysis, keywords, attributes []string, prefs map[string]int) []Concept {
	bucket := SelectBucket(prefs)
	paletteSet := g.styles.Palettes[paletteKey(attributes)]
	fontPairs := g.styles.FontPairs[bucket]
	creativeLean := prefs[strategy.AxisCorporateCreative] > 60

	concepts := make([]Concept, conceptCount)
	for i := 0; i < conceptCount; i++ {
		concepts[i] = g.buildConcept(ctx, i, brandName, analysis, keywords, bucket, creativeLean, paletteSet[i%len(paletteSet)], fontPairs[i%len(fontPairs)])
	}
	return concepts
}

func (g *Generator) buildConcept(ctx context.Context, i int, brandName string, analysis strategy.Analysis, keywords []string, bucket string, creativeLean bool, palette []string, fonts FontPair) (out Concept) {
	defer func() {
		if r := recover(); r != nil {
			g.log.Error("concept generation panicked, substituting fallback", "index", i, "panic", r)
			out = g.fallbackConcept(brandName, bucket, creativeLean, palette, fonts, analysis)
		}
	}()

	initials := ComputeInitials(brandName)
	stylePrompt := fmt.Sprintf("minimalist vector logo, initials %q, %s style, dominant colors %s and %s",
		initials, bucket, palette[0], palette[1])
	if top := keywords; len(top) > 0 {
		if len(top) > 3 {
			top = top[:3]
		}
		stylePrompt += ", evoking " + strings.Join(top, ", ")
	}

	out = Concept{
		ID:              uuid.New().String(),
		LogoVariations:  g.generateLogos(ctx, initials, stylePrompt, palette),
		ColorPalette:    palette,
		Typography:      Typography{Primary: fonts.Primary, Secondary: fonts.Secondary},
		GraphicElements: g.graphicElements(palette),
		Rationale:       g.rationale(ctx, bucket, creativeLean, analysis),
		StylePrompt:     stylePrompt,
	}
	return out
}

// generateLogos fills the four variant slots concurrently. Hosted failures
// fall back to the geometric placeholder per slot.
func (g *Generator) generateLogos(ctx context.Context, initials, stylePrompt string, palette []string) []string {
	logos := make([]string, logoVariants)

	grp, grpCtx := errgroup.WithContext(ctx)
	for v := 0; v < logoVariants; v++ {
		v := v
		grp.Go(func() error {
			prompt := fmt.Sprintf("%s, %s", stylePrompt, variantDescriptors[v])
			if uri, err := g.hostedImage(grpCtx, prompt); err == nil {
				logos[v] = uri
				return nil
			} else if g.ai != nil {
				g.log.Warn("hosted logo generation failed, using placeholder", "variant", v, "error", err)
			}
			logos[v] = g.placeholderLogo(initials, palette, v)
			return nil
		})
	}
	_ = grp.Wait()
	return logos
}

func (g *Generator) placeholderLogo(initials string, palette []string, variant int) string {
	bg, err := compositor.ParseHexColor(palette[variant%len(palette)])
	if err != nil {
		bg = color.NRGBA{R: 38, G: 70, B: 83, A: 255}
	}
	outline, err := compositor.ParseHexColor(palette[(variant+1)%len(palette)])
	if err != nil {
		outline = color.NRGBA{R: 233, G: 196, B: 106, A: 255}
	}

	uri, err := g.renderer.Render(initials, bg, outline)
	if err != nil {
		g.log.Error("placeholder logo render failed", "error", err)
		fallback, _ := compositor.EncodePNGDataURI(compositor.Placeholder())
		return fallback
	}
	return uri
}

func (g *Generator) hostedImage(ctx context.Context, prompt string) (string, error) {
	if g.ai == nil {
		return "", fmt.Errorf("image client unavailable")
	}

	key := cache.Key("image_generation", prompt)
	if g.cache != nil {
		if raw, ok := g.cache.Get(ctx, key); ok {
			return string(raw), nil
		}
	}

	gen, err := g.ai.GenerateImage(ctx, prompt)
	if err != nil {
		return "", err
	}
	uri := compositor.BytesDataURI(gen.Bytes)
	if g.cache != nil {
		g.cache.Set(ctx, key, []byte(uri))
	}
	return uri, nil
}

// graphicElements renders two small decorative marks from the palette.
func (g *Generator) graphicElements(palette []string) []string {
	elements := make([]string, 0, graphicsCount)
	for v := 0; v < graphicsCount; v++ {
		elements = append(elements, g.placeholderLogo("", palette, v+2))
	}
	return elements
}

func (g *Generator) rationale(ctx context.Context, bucket string, creativeLean bool, analysis strategy.Analysis) string {
	lean := "institutional credibility"
	if creativeLean {
		lean = "creative expression"
	}
	fallback := fmt.Sprintf(
		"A %s, expressing %s. The direction builds on the traits %s and reinforces the values %s.",
		bucketCharacter(bucket),
		lean,
		joinOrDefault(analysis.PersonalityTraits, "a balanced personality"),
		joinOrDefault(analysis.Values, "consistency"),
	)

	if g.ai == nil {
		return fallback
	}

	user := fmt.Sprintf(
		"Write one short paragraph motivating a brand visual concept. Style: %s. It must lean toward %s. Personality traits: %s. Values: %s. Purpose: %s.",
		bucketCharacter(bucket), lean,
		strings.Join(analysis.PersonalityTraits, ", "),
		strings.Join(analysis.Values, ", "),
		analysis.Purpose,
	)
	text, err := g.ai.GenerateText(ctx, "You are a brand designer explaining a concept to a client in 2-3 sentences.", user)
	if err != nil {
		g.log.Warn("hosted rationale failed, using template", "error", err)
		return fallback
	}
	return strings.TrimSpace(text)
}

func (g *Generator) fallbackConcept(brandName, bucket string, creativeLean bool, palette []string, fonts FontPair, analysis strategy.Analysis) Concept {
	initials := ComputeInitials(brandName)
	logos := make([]string, logoVariants)
	for v := range logos {
		logos[v] = g.placeholderLogo(initials, palette, v)
	}
	lean := "institutional credibility"
	if creativeLean {
		lean = "creative expression"
	}
	return Concept{
		ID:              uuid.New().String(),
		LogoVariations:  logos,
		ColorPalette:    palette,
		Typography:      Typography{Primary: fonts.Primary, Secondary: fonts.Secondary},
		GraphicElements: g.graphicElements(palette),
		Rationale:       fmt.Sprintf("A %s, expressing %s.", bucketCharacter(bucket), lean),
		StylePrompt:     fmt.Sprintf("minimalist vector logo, initials %q, %s style", initials, bucket),
	}
}

func joinOrDefault(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}
