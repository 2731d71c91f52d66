package kv

import (
	"context"
	"time"
)

type redisClient interface {
	Lookup(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	CollectionKey(name string) string
	Ping(ctx context.Context) error
}

// Redis persists payloads as plain redis strings under namespaced keys.
type Redis struct {
	client redisClient
}

func NewRedis(client redisClient) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	return r.client.Lookup(ctx, r.client.CollectionKey(key))
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, r.client.CollectionKey(key), value, 0)
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx)
}
