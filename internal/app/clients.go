package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/brandcopilot/brand-copilot/internal/cache"
	"github.com/brandcopilot/brand-copilot/internal/clients/openai"
	"github.com/brandcopilot/brand-copilot/internal/clients/slack"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

type Clients struct {
	AI       openai.Client
	Cache    cache.Cache
	Notifier *slack.Notifier

	redisCache *cache.Redis
}

func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")
	clients := Clients{}

	// Hosted model. Test and demo modes run on local pipelines only, so a
	// missing key is fatal everywhere else.
	if cfg.AppMode == "test" || cfg.AppMode == "demo" {
		log.Info("Hosted model disabled", "app_mode", cfg.AppMode)
	} else {
		ai, err := openai.NewClient(log)
		if err != nil {
			return Clients{}, fmt.Errorf("init openai client: %w", err)
		}
		clients.AI = ai
	}

	// Generation cache. Redis when configured, in-process LRU otherwise.
	if strings.TrimSpace(os.Getenv("REDIS_ADDR")) != "" {
		r, err := cache.NewRedis(log, cfg.CacheTTL)
		if err != nil {
			return Clients{}, fmt.Errorf("init redis cache: %w", err)
		}
		clients.Cache = r
		clients.redisCache = r
	} else {
		clients.Cache = cache.NewLRU(cfg.CacheCapacity, cfg.CacheTTL)
	}

	// Slack is optional. Kit finalization notifications are skipped when
	// it is not configured.
	if strings.TrimSpace(os.Getenv("SLACK_BOT_TOKEN")) != "" {
		notifier, err := slack.NewNotifier(log)
		if err != nil {
			return Clients{}, fmt.Errorf("init slack notifier: %w", err)
		}
		clients.Notifier = notifier
	}

	return clients, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.redisCache != nil {
		_ = c.redisCache.Close()
	}
}
