package compositor

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/disintegration/imaging"

	"github.com/brandcopilot/brand-copilot/internal/pkg/ctxutil"
	"github.com/brandcopilot/brand-copilot/internal/pkg/errors"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

const (
	canvasSize      = 512
	downloadTimeout = 10 * time.Second

	dataURIPrefix = "data:image/png;base64,"
)

// Per-mode alpha factors for iterative compositing. These are uniform alpha
// blends, not true multiply/screen math.
var blendFactors = map[string]float64{
	"overlay":  0.5,
	"multiply": 0.3,
	"screen":   0.7,
	"default":  0.5,
}

// Compositor performs in-memory raster operations on concept imagery.
type Compositor struct {
	log        *logger.Logger
	httpClient *http.Client
}

func New(log *logger.Logger) *Compositor {
	return &Compositor{
		log:        log.With("component", "ImageCompositor"),
		httpClient: &http.Client{Timeout: downloadTimeout},
	}
}

// Download fetches and decodes a remote image. Any transport failure or
// non-2xx status maps to ErrDownloadFailed; the caller decides whether to
// abort or substitute a placeholder.
func (c *Compositor) Download(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctxutil.Default(ctx), http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDownloadFailed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDownloadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d for %s", errors.ErrDownloadFailed, resp.StatusCode, url)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrDownloadFailed, err)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %v", errors.ErrDownloadFailed, err)
	}
	return img, nil
}

// Placeholder returns the solid-gray substitute used when a download fails
// and the caller chose not to abort.
func Placeholder() image.Image {
	return imaging.New(canvasSize, canvasSize, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
}

// Blend resizes every input to the 512x512 canvas and folds them together
// with the mode's alpha factor. A single image is returned resized but
// otherwise untouched; zero images is an argument error.
func (c *Compositor) Blend(images []image.Image, mode string) (image.Image, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("%w: blend requires at least one image", errors.ErrInvalidArgument)
	}

	factor, ok := blendFactors[mode]
	if !ok {
		factor = blendFactors["default"]
	}

	result := imaging.Resize(images[0], canvasSize, canvasSize, imaging.Lanczos)
	for _, img := range images[1:] {
		next := imaging.Resize(img, canvasSize, canvasSize, imaging.Lanczos)
		result = imaging.Overlay(result, next, image.Pt(0, 0), factor)
	}
	return result, nil
}

// ApplyPaletteOverlay composites a half-transparent layer of the palette's
// first color over the image.
func (c *Compositor) ApplyPaletteOverlay(img image.Image, hexColors []string) (image.Image, error) {
	if len(hexColors) == 0 {
		return nil, fmt.Errorf("%w: palette overlay requires at least one color", errors.ErrInvalidArgument)
	}
	tint, err := ParseHexColor(hexColors[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidArgument, err)
	}

	bounds := img.Bounds()
	layer := imaging.New(bounds.Dx(), bounds.Dy(), tint)
	return imaging.Overlay(img, layer, image.Pt(0, 0), 0.5), nil
}

// ApplyFilter applies one of the fixed filters. An unknown name returns the
// input unchanged.
func (c *Compositor) ApplyFilter(img image.Image, name string) image.Image {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "blur":
		return imaging.Blur(img, 2)
	case "sharpen":
		return imaging.Sharpen(img, 1)
	case "vintage":
		out := imaging.AdjustSaturation(img, -30)
		return imaging.AdjustContrast(out, 20)
	case "modern":
		out := imaging.AdjustSaturation(img, 30)
		return imaging.Sharpen(out, 0.1)
	default:
		return img
	}
}

// EncodePNGDataURI serializes the image as an inline PNG data URI.
func EncodePNGDataURI(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return BytesDataURI(buf.Bytes()), nil
}

// BytesDataURI wraps already-encoded PNG bytes as an inline data URI.
func BytesDataURI(pngBytes []byte) string {
	return dataURIPrefix + base64.StdEncoding.EncodeToString(pngBytes)
}

// DecodeDataURI decodes an inline base64 image produced by EncodePNGDataURI
// (any registered raster format is accepted).
func DecodeDataURI(uri string) (image.Image, error) {
	idx := strings.Index(uri, "base64,")
	if idx < 0 {
		return nil, fmt.Errorf("%w: not a base64 data URI", errors.ErrInvalidArgument)
	}
	raw, err := base64.StdEncoding.DecodeString(uri[idx+len("base64,"):])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidArgument, err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %v", errors.ErrInvalidArgument, err)
	}
	return img, nil
}

// ParseHexColor parses #RGB or #RRGGBB into an opaque color.
func ParseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	var r, g, b uint8
	switch len(s) {
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
		}
	case 3:
		if _, err := fmt.Sscanf(s, "%1x%1x%1x", &r, &g, &b); err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
		}
		r, g, b = r*17, g*17, b*17
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
