package app

import (
	"gorm.io/gorm"

	"github.com/brandcopilot/brand-copilot/internal/pipeline/analyzer"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/classifier"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/compositor"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/extractor"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/kit"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/strategy"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/visual"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
	"github.com/brandcopilot/brand-copilot/internal/services"
)

type Services struct {
	Project   services.ProjectService
	Briefing  services.BriefingService
	Strategic services.StrategicService
	Visual    services.VisualService
	Imagery   services.ImageryService
	Kit       services.KitService
	Asset     services.AssetService
}

func wireServices(db *gorm.DB, log *logger.Logger, clients Clients, reposet Repos) Services {
	log.Info("Wiring services...")

	ext := extractor.New(log)
	cls := classifier.New(log)
	anl := analyzer.New(log)
	synthesizer := strategy.New(log, clients.AI, clients.Cache)
	generator := visual.NewGenerator(log, clients.AI, clients.Cache)
	comp := compositor.New(log)
	assembler := kit.New(log, clients.AI)

	return Services{
		Project:   services.NewProjectService(db, log, reposet.Project),
		Briefing:  services.NewBriefingService(db, log, reposet.Brief, reposet.Project, ext, cls, anl),
		Strategic: services.NewStrategicService(db, log, reposet.StrategicAnalysis, reposet.Project, synthesizer),
		Visual:    services.NewVisualService(db, log, reposet.GeneratedAsset, reposet.Project, generator),
		Imagery:   services.NewImageryService(db, log, reposet.GeneratedAsset, comp),
		Kit:       services.NewKitService(db, log, reposet.GeneratedAsset, reposet.Project, assembler, clients.Notifier),
		Asset:     services.NewAssetService(db, log, reposet.GeneratedAsset),
	}
}
