package repos

import (
	"github.com/brandcopilot/brand-copilot/internal/data/repos/brand"
)

type ProjectRepo = brand.ProjectRepo
type BriefRepo = brand.BriefRepo
type StrategicAnalysisRepo = brand.StrategicAnalysisRepo
type GeneratedAssetRepo = brand.GeneratedAssetRepo

var NewProjectRepo = brand.NewProjectRepo
var NewBriefRepo = brand.NewBriefRepo
var NewStrategicAnalysisRepo = brand.NewStrategicAnalysisRepo
var NewGeneratedAssetRepo = brand.NewGeneratedAssetRepo
