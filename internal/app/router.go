package app

import (
	httpserver "github.com/brandcopilot/brand-copilot/internal/http"
)

func wireRouter(handlerset Handlers, cfg Config) *httpserver.Server {
	return httpserver.NewServer(httpserver.RouterConfig{
		ProjectHandler:   handlerset.Project,
		BriefHandler:     handlerset.Brief,
		StrategicHandler: handlerset.Strategic,
		VisualHandler:    handlerset.Visual,
		ImageryHandler:   handlerset.Imagery,
		KitHandler:       handlerset.Kit,
		AssetHandler:     handlerset.Asset,
		HealthHandler:    handlerset.Health,
		ServiceName:      cfg.ServiceName,
	})
}
