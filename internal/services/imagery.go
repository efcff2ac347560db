package services

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brandcopilot/brand-copilot/internal/data/repos"
	types "github.com/brandcopilot/brand-copilot/internal/domain"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/compositor"
	"github.com/brandcopilot/brand-copilot/internal/pkg/errors"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

// Style types accepted by ApplyStyle.
const (
	StyleTypePalette = "color_palette"
	StyleTypeFilter  = "filter"
)

// ImageResult carries a composited image and its best-effort asset id.
type ImageResult struct {
	AssetID  *uuid.UUID     `json:"asset_id,omitempty"`
	DataURI  string         `json:"data_uri"`
	Metadata map[string]any `json:"metadata"`
}

type ImageryService interface {
	BlendConcepts(ctx context.Context, imageURLs []string, blendMode string, projectID, briefID *uuid.UUID) (ImageResult, error)
	ApplyStyle(ctx context.Context, imageURL, styleType string, styleData map[string]any, projectID, briefID *uuid.UUID) (ImageResult, error)
}

type imageryService struct {
	db         *gorm.DB
	log        *logger.Logger
	assetRepo  repos.GeneratedAssetRepo
	compositor *compositor.Compositor
}

func NewImageryService(db *gorm.DB, log *logger.Logger, assetRepo repos.GeneratedAssetRepo, comp *compositor.Compositor) ImageryService {
	return &imageryService{
		db:         db,
		log:        log.With("service", "ImageryService"),
		assetRepo:  assetRepo,
		compositor: comp,
	}
}

// fetch resolves a reference that is either an inline data URI or a remote
// URL. Download failures substitute the gray placeholder so one dead link
// does not abort a whole blend.
func (s *imageryService) fetch(ctx context.Context, ref string) image.Image {
	if img, err := compositor.DecodeDataURI(ref); err == nil {
		return img
	}
	img, err := s.compositor.Download(ctx, ref)
	if err != nil {
		s.log.Warn("image fetch failed, substituting placeholder", "ref", truncateRef(ref), "error", err)
		return compositor.Placeholder()
	}
	return img
}

func (s *imageryService) BlendConcepts(ctx context.Context, imageURLs []string, blendMode string, projectID, briefID *uuid.UUID) (ImageResult, error) {
	if len(imageURLs) < 2 {
		return ImageResult{}, fmt.Errorf("%w: blending requires at least 2 images", errors.ErrInvalidArgument)
	}
	if blendMode == "" {
		blendMode = "default"
	}

	images := make([]image.Image, 0, len(imageURLs))
	for _, ref := range imageURLs {
		images = append(images, s.fetch(ctx, ref))
	}

	blended, err := s.compositor.Blend(images, blendMode)
	if err != nil {
		return ImageResult{}, err
	}
	uri, err := compositor.EncodePNGDataURI(blended)
	if err != nil {
		return ImageResult{}, err
	}

	result := ImageResult{
		DataURI: uri,
		Metadata: map[string]any{
			"blend_mode":   blendMode,
			"source_count": len(imageURLs),
			"processed_at": time.Now().UTC(),
		},
	}
	result.AssetID = s.persistImage(ctx, types.AssetTypeBlendedImage, uri, projectID, briefID, result.Metadata)
	return result, nil
}

func (s *imageryService) ApplyStyle(ctx context.Context, imageURL, styleType string, styleData map[string]any, projectID, briefID *uuid.UUID) (ImageResult, error) {
	img := s.fetch(ctx, imageURL)

	var styled image.Image
	switch styleType {
	case StyleTypePalette:
		colors := stringsFromAny(styleData["colors"])
		out, err := s.compositor.ApplyPaletteOverlay(img, colors)
		if err != nil {
			return ImageResult{}, err
		}
		styled = out
	case StyleTypeFilter:
		name, _ := styleData["filter"].(string)
		styled = s.compositor.ApplyFilter(img, name)
	default:
		return ImageResult{}, fmt.Errorf("%w: unknown style_type %q", errors.ErrInvalidArgument, styleType)
	}

	uri, err := compositor.EncodePNGDataURI(styled)
	if err != nil {
		return ImageResult{}, err
	}

	result := ImageResult{
		DataURI: uri,
		Metadata: map[string]any{
			"style_type":   styleType,
			"processed_at": time.Now().UTC(),
		},
	}
	result.AssetID = s.persistImage(ctx, types.AssetTypeStyledImage, uri, projectID, briefID, result.Metadata)
	return result, nil
}

func (s *imageryService) persistImage(ctx context.Context, assetType, uri string, projectID, briefID *uuid.UUID, metadata map[string]any) *uuid.UUID {
	data, _ := json.Marshal(map[string]any{"data_uri": uri})
	params, _ := json.Marshal(metadata)
	asset := &types.GeneratedAsset{
		ProjectID:        projectID,
		BriefID:          briefID,
		AssetType:        assetType,
		AssetData:        data,
		GenerationParams: params,
	}
	created, err := s.assetRepo.Create(ctx, nil, asset)
	if err != nil {
		s.log.Error("image asset insert failed, returning without id", "asset_type", assetType, "error", err)
		return nil
	}
	return &created.ID
}

func stringsFromAny(v any) []string {
	items, ok := v.([]any)
	if !ok {
		if typed, ok := v.([]string); ok {
			return typed
		}
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func truncateRef(ref string) string {
	if len(ref) > 64 {
		return ref[:64] + "..."
	}
	return ref
}
