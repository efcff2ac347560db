package app

import (
	"time"

	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
	"github.com/brandcopilot/brand-copilot/internal/utils"
)

type Config struct {
	Port          string
	AppMode       string
	ServiceName   string
	CacheTTL      time.Duration
	CacheCapacity int
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8000", log)
	appMode := utils.GetEnv("APP_MODE", "production", log)
	serviceName := utils.GetEnv("OTEL_SERVICE_NAME", "brand-copilot", log)
	cacheTTLSeconds := utils.GetEnvAsInt("CACHE_TTL", 3600, log)
	cacheCapacity := utils.GetEnvAsInt("CACHE_CAPACITY", 256, log)
	return Config{
		Port:          port,
		AppMode:       appMode,
		ServiceName:   serviceName,
		CacheTTL:      time.Duration(cacheTTLSeconds) * time.Second,
		CacheCapacity: cacheCapacity,
	}
}
