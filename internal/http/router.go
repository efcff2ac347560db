package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/brandcopilot/brand-copilot/internal/http/handlers"
	httpMW "github.com/brandcopilot/brand-copilot/internal/http/middleware"
)

type RouterConfig struct {
	ProjectHandler   *httpH.ProjectHandler
	BriefHandler     *httpH.BriefHandler
	StrategicHandler *httpH.StrategicHandler
	VisualHandler    *httpH.VisualHandler
	ImageryHandler   *httpH.ImageryHandler
	KitHandler       *httpH.KitHandler
	AssetHandler     *httpH.AssetHandler

	HealthHandler *httpH.HealthHandler

	ServiceName string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	r.Use(httpMW.CORS())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}

	if cfg.HealthHandler != nil {
		r.GET("/", cfg.HealthHandler.Root)
		r.GET("/health", cfg.HealthHandler.Health)
	}

	if cfg.ProjectHandler != nil {
		r.POST("/projects", cfg.ProjectHandler.CreateProject)
		r.GET("/projects/:id", cfg.ProjectHandler.ListProjects)
	}

	if cfg.BriefHandler != nil {
		r.POST("/analyze-brief", cfg.BriefHandler.AnalyzeBrief)
		r.PUT("/update-brief", cfg.BriefHandler.UpdateBrief)
		r.GET("/projects/:id/briefs", cfg.BriefHandler.ListBriefs)
		r.POST("/parse-document", cfg.BriefHandler.ParseDocument)
	}

	if cfg.StrategicHandler != nil {
		r.POST("/strategic-analysis", cfg.StrategicHandler.Analyze)
	}

	if cfg.VisualHandler != nil {
		r.POST("/generate-visual-concepts", cfg.VisualHandler.GenerateConcepts)
		r.POST("/generate-galaxy", cfg.VisualHandler.GenerateGalaxy)
	}

	if cfg.ImageryHandler != nil {
		r.POST("/blend-concepts", cfg.ImageryHandler.BlendConcepts)
		r.POST("/apply-style", cfg.ImageryHandler.ApplyStyle)
	}

	if cfg.KitHandler != nil {
		r.POST("/generate-brand-kit", cfg.KitHandler.GenerateBrandKit)
		r.POST("/finalize-brand-kit", cfg.KitHandler.FinalizeBrandKit)
		r.GET("/brand-kit/:kit_id", cfg.KitHandler.GetBrandKit)
	}

	if cfg.AssetHandler != nil {
		r.GET("/projects/:id/assets", cfg.AssetHandler.ListAssets)
	}

	return r
}
