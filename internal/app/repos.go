package app

import (
	"gorm.io/gorm"

	"github.com/brandcopilot/brand-copilot/internal/data/repos"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

type Repos struct {
	Project           repos.ProjectRepo
	Brief             repos.BriefRepo
	StrategicAnalysis repos.StrategicAnalysisRepo
	GeneratedAsset    repos.GeneratedAssetRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Project:           repos.NewProjectRepo(db, log),
		Brief:             repos.NewBriefRepo(db, log),
		StrategicAnalysis: repos.NewStrategicAnalysisRepo(db, log),
		GeneratedAsset:    repos.NewGeneratedAssetRepo(db, log),
	}
}
