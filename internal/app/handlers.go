package app

import (
	"github.com/brandcopilot/brand-copilot/internal/db"
	"github.com/brandcopilot/brand-copilot/internal/http/handlers"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

type Handlers struct {
	Project   *handlers.ProjectHandler
	Brief     *handlers.BriefHandler
	Strategic *handlers.StrategicHandler
	Visual    *handlers.VisualHandler
	Imagery   *handlers.ImageryHandler
	Kit       *handlers.KitHandler
	Asset     *handlers.AssetHandler
	Health    *handlers.HealthHandler
}

func wireHandlers(log *logger.Logger, serviceset Services, dbService *db.Service, aiEnabled bool) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Project:   handlers.NewProjectHandler(log, serviceset.Project),
		Brief:     handlers.NewBriefHandler(log, serviceset.Briefing),
		Strategic: handlers.NewStrategicHandler(log, serviceset.Strategic),
		Visual:    handlers.NewVisualHandler(log, serviceset.Visual),
		Imagery:   handlers.NewImageryHandler(log, serviceset.Imagery),
		Kit:       handlers.NewKitHandler(log, serviceset.Kit),
		Asset:     handlers.NewAssetHandler(log, serviceset.Asset),
		Health:    handlers.NewHealthHandler(dbService, aiEnabled),
	}
}
