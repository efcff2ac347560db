package domain

import (
	"github.com/brandcopilot/brand-copilot/internal/domain/brand"
)

type Project = brand.Project
type Brief = brand.Brief
type StrategicAnalysis = brand.StrategicAnalysis
type GeneratedAsset = brand.GeneratedAsset

var (
	StateRank    = brand.StateRank
	StateReached = brand.StateReached
	AdvanceState = brand.AdvanceState
)

const (
	StateCreated               = brand.StateCreated
	StateBriefAnalyzed         = brand.StateBriefAnalyzed
	StateStrategicallyAnalyzed = brand.StateStrategicallyAnalyzed
	StateConceptsGenerated     = brand.StateConceptsGenerated
	StateFinalized             = brand.StateFinalized

	AssetTypeVisualMetaphor = brand.AssetTypeVisualMetaphor
	AssetTypeColorPalette   = brand.AssetTypeColorPalette
	AssetTypeTypographyPair = brand.AssetTypeTypographyPair
	AssetTypeBlendedImage   = brand.AssetTypeBlendedImage
	AssetTypeStyledImage    = brand.AssetTypeStyledImage
	AssetTypeFinalBrandKit  = brand.AssetTypeFinalBrandKit
)
