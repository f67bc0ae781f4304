// Package redis builds the shared Redis client used for rate-limiter
// storage.
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Alijeyrad/anqa_gateway/config"
)

const (
	defaultPoolSize     = 10
	defaultMinIdleConns = 2
	defaultDialTimeout  = 5 * time.Second
	defaultRWTimeout    = 3 * time.Second
)

// NewFromCentral creates a Redis client from central config and verifies
// connectivity with a ping.
func NewFromCentral(cfg config.RedisConfig) (*goredis.Client, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis addr is empty")
	}

	opts := &goredis.Options{
		Addr:         cfg.Addr,
		Username:     cfg.Username,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     intOr(cfg.PoolSize, defaultPoolSize),
		MinIdleConns: intOr(cfg.MinIdleConns, defaultMinIdleConns),
		DialTimeout:  secondsOr(cfg.DialTimeoutSeconds, defaultDialTimeout),
		ReadTimeout:  secondsOr(cfg.ReadTimeoutSeconds, defaultRWTimeout),
		WriteTimeout: secondsOr(cfg.WriteTimeoutSeconds, defaultRWTimeout),
	}

	rdb := goredis.NewClient(opts)

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return rdb, nil
}

func intOr(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}

func secondsOr(v int, fallback time.Duration) time.Duration {
	if v > 0 {
		return time.Duration(v) * time.Second
	}
	return fallback
}
