// Package cache implementa la caché de reportes sobre Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/antiquehaven/antique-haven-api/internal/application/reports"
	"github.com/antiquehaven/antique-haven-api/pkg/config"
)

var _ reports.Cache = (*RedisCache)(nil)

// RedisCache caché clave/valor con TTL fijo por entrada.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache conecta a Redis y verifica con un ping. Si cfg.Addr está
// vacío, devuelve (nil, nil): la reportería funciona sin caché.
func NewRedisCache(ctx context.Context, cfg config.RedisConfig) (*RedisCache, error) {
	if cfg.Addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisCache{
		client: client,
		ttl:    time.Duration(cfg.TTLSeconds) * time.Second,
	}, nil
}

// Get devuelve el valor de la clave o (nil, nil) en cache miss.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return raw, nil
}

// Set guarda el valor con el TTL configurado.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte) error {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Close cierra la conexión.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
