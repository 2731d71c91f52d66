// Package kv is the string key-value boundary the store persists through.
package kv

import "context"

// Backend reads and writes opaque string payloads by key.
type Backend interface {
	// Get returns found=false with a nil error when the key was never written.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// BatchSetter is implemented by backends that can write several keys atomically.
type BatchSetter interface {
	SetMany(ctx context.Context, entries map[string]string) error
}

// Pinger is implemented by backends with a reachable remote.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SetAll writes entries through SetMany when supported, one by one otherwise.
func SetAll(ctx context.Context, backend Backend, entries map[string]string) error {
	if batch, ok := backend.(BatchSetter); ok {
		return batch.SetMany(ctx, entries)
	}
	for key, value := range entries {
		if err := backend.Set(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}
