package visual

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	"github.com/google/uuid"

	"github.com/brandcopilot/brand-copilot/internal/pkg/errors"
)

const maxMetaphors = 6

// Metaphor is one visual-exploration entry in the concept galaxy.
type Metaphor struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Prompt         string   `json:"prompt"`
	ImageURL       string   `json:"image_url"`
	KeywordsUsed   []string `json:"keywords_used"`
	AttributesUsed []string `json:"attributes_used"`
}

var defaultMetaphorKeywords = []string{"growth", "connection", "journey"}
var defaultMetaphorAttributes = []string{"modern", "authentic"}

// GenerateMetaphors builds up to six keyword-attribute image explorations.
// Demo mode serves deterministic placeholder URLs without touching the
// hosted image API. Empty inputs still produce a non-empty galaxy.
func (g *Generator) GenerateMetaphors(ctx context.Context, keywords, attributes []string, demoMode bool) ([]Metaphor, error) {
	if len(keywords) == 0 {
		keywords = defaultMetaphorKeywords
	}
	if len(attributes) == 0 {
		attributes = defaultMetaphorAttributes
	}

	metaphors := make([]Metaphor, 0, maxMetaphors)
	for _, kw := range keywords {
		for _, attr := range attributes {
			if len(metaphors) == maxMetaphors {
				return metaphors, nil
			}
			metaphors = append(metaphors, g.buildMetaphor(ctx, kw, attr, demoMode))
		}
	}
	if len(metaphors) == 0 {
		return nil, fmt.Errorf("%w: no metaphor combinations", errors.ErrInvalidArgument)
	}
	return metaphors, nil
}

func (g *Generator) buildMetaphor(ctx context.Context, keyword, attribute string, demoMode bool) Metaphor {
	id := uuid.New().String()
	prompt := fmt.Sprintf("abstract visual metaphor of %s, %s aesthetic, evocative photography, no text", keyword, attribute)

	m := Metaphor{
		ID:             id,
		Title:          fmt.Sprintf("%s %s", titleCase(attribute), titleCase(keyword)),
		Description:    fmt.Sprintf("An exploration of %q through a %s lens.", keyword, attribute),
		Prompt:         prompt,
		KeywordsUsed:   []string{keyword},
		AttributesUsed: []string{attribute},
	}

	if demoMode {
		m.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/512/512", id)
		return m
	}

	if uri, err := g.hostedImage(ctx, prompt); err == nil {
		m.ImageURL = uri
		return m
	} else if g.ai != nil {
		g.log.Warn("hosted metaphor image failed, using placeholder", "keyword", keyword, "error", err)
	}

	uri, err := g.renderer.Render(ComputeInitials(keyword), color.NRGBA{R: 61, G: 64, B: 91, A: 255}, color.NRGBA{R: 129, G: 178, B: 154, A: 255})
	if err == nil {
		m.ImageURL = uri
	}
	return m
}

func titleCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
