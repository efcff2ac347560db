package visual

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"strings"
	"unicode"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/brandcopilot/brand-copilot/internal/pipeline/compositor"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

const logoSize = 512

// LogoRenderer draws the deterministic geometric placeholder logo used when
// hosted image generation is unavailable or fails.
type LogoRenderer struct {
	log      *logger.Logger
	fontFace font.Face
}

// NewLogoRenderer loads the TTF at BRAND_FONT_PATH when set; otherwise the
// built-in face is used, which keeps the renderer usable in tests.
func NewLogoRenderer(log *logger.Logger) *LogoRenderer {
	r := &LogoRenderer{log: log.With("component", "LogoRenderer")}

	fontPath := strings.TrimSpace(os.Getenv("BRAND_FONT_PATH"))
	if fontPath == "" {
		return r
	}

	face, err := loadFontFace(fontPath, 180)
	if err != nil {
		r.log.Warn("could not load brand font, using built-in face", "path", fontPath, "error", err)
		return r
	}
	r.fontFace = face
	return r
}

func loadFontFace(fontPath string, size float64) (font.Face, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	parsedFont, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TTF: %w", err)
	}
	return truetype.NewFace(parsedFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	}), nil
}

// Render produces a PNG data URI: solid background, outlined circle, brand
// initials centered.
func (r *LogoRenderer) Render(initials string, background, outline color.NRGBA) (string, error) {
	dc := gg.NewContext(logoSize, logoSize)

	dc.SetColor(background)
	dc.DrawRectangle(0, 0, logoSize, logoSize)
	dc.Fill()

	cx, cy := float64(logoSize)/2, float64(logoSize)/2
	dc.SetColor(outline)
	dc.SetLineWidth(8)
	dc.DrawCircle(cx, cy, float64(logoSize)/2-24)
	dc.Stroke()

	if r.fontFace != nil {
		dc.SetFontFace(r.fontFace)
	}
	dc.SetColor(color.White)
	tw, th := dc.MeasureString(initials)
	dc.DrawString(initials, cx-(tw/2), cy+(th/2))

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return "", fmt.Errorf("failed to encode PNG: %w", err)
	}
	return compositor.BytesDataURI(buf.Bytes()), nil
}

// ComputeInitials keeps the first letter of up to three words, uppercased.
// Empty input yields "B".
func ComputeInitials(brandName string) string {
	var initials []rune
	for _, word := range strings.Fields(brandName) {
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsNumber(r) {
				initials = append(initials, unicode.ToUpper(r))
			}
			break
		}
		if len(initials) == 3 {
			break
		}
	}
	if len(initials) == 0 {
		return "B"
	}
	return string(initials)
}
