package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/devportfolio/portfolio-backend/config"
	"github.com/devportfolio/portfolio-backend/internal/auth/session"
)

// NewSessionStore builds the session backend named by the config. The
// config has already validated the backend name.
func NewSessionStore(cfg *config.SessionConfig) (session.Store, error) {
	switch cfg.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
			DB:   cfg.RedisDB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		return session.NewRedisStore(client, cfg.CookieName, time.Duration(cfg.TTLSeconds)*time.Second), nil
	default:
		return session.NewCookieStore(cfg.Secret, cfg.CookieName, cfg.TTLSeconds), nil
	}
}
