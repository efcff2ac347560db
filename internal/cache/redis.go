package cache

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

// Redis backs the generation cache with a shared store so multiple backend
// instances reuse each other's generations. Optional; enabled by REDIS_ADDR.
type Redis struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

func NewRedis(log *logger.Logger, ttl time.Duration) (*Redis, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Redis{
		log: log.With("service", "RedisCache"),
		rdb: rdb,
		ttl: ttl,
	}, nil
}

func (c *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	raw, err := c.rdb.Get(ctx, "gen:"+key).Bytes()
	if err != nil {
		if err != goredis.Nil {
			c.log.Warn("redis get failed", "key", key, "error", err)
		}
		return nil, false
	}
	return raw, true
}

func (c *Redis) Set(ctx context.Context, key string, value []byte) {
	if err := c.rdb.Set(ctx, "gen:"+key, value, c.ttl).Err(); err != nil {
		c.log.Warn("redis set failed", "key", key, "error", err)
	}
}

func (c *Redis) Close() error {
	return c.rdb.Close()
}
