package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/jhoicas/storefront-client/internal/domain"
	"github.com/jhoicas/storefront-client/internal/domain/repository"
)

var _ repository.KeyValueStore = (*Redis)(nil)

// Redis guarda cada clave como string bajo "<namespace>:<key>", sin expiración.
type Redis struct {
	client    *redis.Client
	namespace string
}

// OpenRedis conecta y verifica con PING.
func OpenRedis(ctx context.Context, redisURL, namespace string) (*Redis, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("storage: REDIS_URL inválida: %w", err)
	}
	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("storage: conectar a redis: %w", err)
	}
	return NewRedis(client, namespace), nil
}

// NewRedis envuelve un cliente ya construido.
func NewRedis(client *redis.Client, namespace string) *Redis {
	return &Redis{client: client, namespace: namespace}
}

func (r *Redis) key(k string) string {
	if r.namespace == "" {
		return k
	}
	return r.namespace + ":" + k
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("storage: redis GET %s: %w", key, err)
	}
	return v, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("storage: redis SET %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("storage: redis DEL %s: %w", key, err)
	}
	return nil
}

// Close cierra la conexión.
func (r *Redis) Close() error {
	return r.client.Close()
}
