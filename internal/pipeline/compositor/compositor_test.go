package compositor

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/brandcopilot/brand-copilot/internal/pkg/errors"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

func solid(c color.NRGBA, w, h int) image.Image {
	return imaging.New(w, h, c)
}

func TestBlendNoImages(t *testing.T) {
	c := New(logger.Nop())

	_, err := c.Blend(nil, "overlay")
	if !errors.Is(err, errors.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestBlendSingleImageResized(t *testing.T) {
	c := New(logger.Nop())

	out, err := c.Blend([]image.Image{solid(color.NRGBA{R: 10, G: 20, B: 30, A: 255}, 100, 40)}, "overlay")
	if err != nil {
		t.Fatal(err)
	}
	b := out.Bounds()
	if b.Dx() != 512 || b.Dy() != 512 {
		t.Fatalf("expected 512x512, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestBlendTwoImagesOverlay(t *testing.T) {
	c := New(logger.Nop())

	black := solid(color.NRGBA{A: 255}, 64, 64)
	white := solid(color.NRGBA{R: 255, G: 255, B: 255, A: 255}, 64, 64)

	out, err := c.Blend([]image.Image{black, white}, "overlay")
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, _ := out.At(256, 256).RGBA()
	// 50% white over black lands mid-gray.
	for _, ch := range []uint32{r >> 8, g >> 8, b >> 8} {
		if ch < 120 || ch > 135 {
			t.Fatalf("expected mid-gray blend, got %d %d %d", r>>8, g>>8, b>>8)
		}
	}
}

func TestBlendUnknownModeUsesDefault(t *testing.T) {
	c := New(logger.Nop())

	imgs := []image.Image{
		solid(color.NRGBA{A: 255}, 32, 32),
		solid(color.NRGBA{R: 255, G: 255, B: 255, A: 255}, 32, 32),
	}
	out, err := c.Blend(imgs, "nonsense")
	if err != nil {
		t.Fatal(err)
	}
	if out.Bounds().Dx() != 512 {
		t.Fatalf("unexpected bounds %v", out.Bounds())
	}
}

func TestApplyPaletteOverlay(t *testing.T) {
	c := New(logger.Nop())

	src := solid(color.NRGBA{R: 255, G: 255, B: 255, A: 255}, 64, 64)
	out, err := c.ApplyPaletteOverlay(src, []string{"#000000", "#FFFFFF"})
	if err != nil {
		t.Fatal(err)
	}
	r, _, _, _ := out.At(10, 10).RGBA()
	if v := r >> 8; v < 120 || v > 135 {
		t.Fatalf("expected 50%% black tint over white, got red=%d", v)
	}
}

func TestApplyPaletteOverlayBadInput(t *testing.T) {
	c := New(logger.Nop())

	if _, err := c.ApplyPaletteOverlay(solid(color.NRGBA{A: 255}, 8, 8), nil); !errors.Is(err, errors.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for empty palette, got %v", err)
	}
	if _, err := c.ApplyPaletteOverlay(solid(color.NRGBA{A: 255}, 8, 8), []string{"notacolor"}); !errors.Is(err, errors.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for bad hex, got %v", err)
	}
}

func TestApplyFilterUnknownIsIdentity(t *testing.T) {
	c := New(logger.Nop())

	src := solid(color.NRGBA{R: 200, G: 100, B: 50, A: 255}, 16, 16)
	out := c.ApplyFilter(src, "does-not-exist")
	if out != src {
		t.Fatal("unknown filter must return the input unchanged")
	}
}

func TestApplyFilterCatalog(t *testing.T) {
	c := New(logger.Nop())

	src := solid(color.NRGBA{R: 200, G: 100, B: 50, A: 255}, 16, 16)
	for _, name := range []string{"blur", "sharpen", "vintage", "modern"} {
		out := c.ApplyFilter(src, name)
		if out == nil {
			t.Fatalf("filter %s returned nil", name)
		}
		if out.Bounds() != src.Bounds() {
			t.Fatalf("filter %s changed bounds: %v", name, out.Bounds())
		}
	}
}

func TestEncodeDecodeDataURIRoundTrip(t *testing.T) {
	src := solid(color.NRGBA{R: 1, G: 2, B: 3, A: 255}, 20, 30)

	uri, err := EncodePNGDataURI(src)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Fatalf("missing data URI prefix: %.40s", uri)
	}

	decoded, err := DecodeDataURI(uri)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds().Dx() != 20 || decoded.Bounds().Dy() != 30 {
		t.Fatalf("round trip changed dimensions: %v", decoded.Bounds())
	}
}

func TestDecodeDataURIRejectsGarbage(t *testing.T) {
	if _, err := DecodeDataURI("not a uri"); !errors.Is(err, errors.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestDownloadOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_ = png.Encode(w, solid(color.NRGBA{R: 9, A: 255}, 8, 8))
	}))
	defer srv.Close()

	c := New(logger.Nop())
	img, err := c.Download(context.Background(), srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 8 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
}

func TestDownloadNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(logger.Nop())
	if _, err := c.Download(context.Background(), srv.URL); !errors.Is(err, errors.ErrDownloadFailed) {
		t.Fatalf("expected ErrDownloadFailed, got %v", err)
	}
}

func TestDownloadBadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this is not an image"))
	}))
	defer srv.Close()

	c := New(logger.Nop())
	if _, err := c.Download(context.Background(), srv.URL); !errors.Is(err, errors.ErrDownloadFailed) {
		t.Fatalf("expected ErrDownloadFailed, got %v", err)
	}
}

func TestPlaceholderIsGrayCanvas(t *testing.T) {
	img := Placeholder()
	if img.Bounds().Dx() != 512 || img.Bounds().Dy() != 512 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	r, g, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 128 || g>>8 != 128 || b>>8 != 128 {
		t.Fatalf("expected gray, got %d %d %d", r>>8, g>>8, b>>8)
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#4ECDC4")
	if err != nil {
		t.Fatal(err)
	}
	if c.R != 0x4E || c.G != 0xCD || c.B != 0xC4 {
		t.Fatalf("unexpected color %+v", c)
	}
	if _, err := ParseHexColor("zzz"); err == nil {
		t.Fatal("expected error for invalid hex")
	}
}
