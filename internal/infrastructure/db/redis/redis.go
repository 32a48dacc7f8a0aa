package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	dialTimeout = 5 * time.Second
	ioTimeout   = 2 * time.Second
)

// Config points the session store at a Redis instance.
type Config struct {
	Addr     string
	Password string
	DB       int
	// DialTimeout bounds the initial ping.
	DialTimeout time.Duration
}

// Connect builds a client for session storage and pings it once.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	wait := cfg.DialTimeout
	if wait <= 0 {
		wait = dialTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  wait,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}
