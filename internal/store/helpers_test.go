package store

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/angelmondragon/applestore-backend/pkg/kv"
	"github.com/angelmondragon/applestore-backend/pkg/seed"
	"github.com/angelmondragon/applestore-backend/pkg/types"
)

var fixedNow = time.Date(2025, 2, 1, 9, 30, 0, 0, time.UTC)

func sequentialIDs() func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%04d", n.Add(1))
	}
}

func newTestStore(t *testing.T, backend kv.Backend, opts ...Option) *Store {
	t.Helper()
	base := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(sequentialIDs()),
	}
	return New(context.Background(), backend, append(base, opts...)...)
}

func iphone() types.Product {
	return types.Product{
		ID:    "1",
		Name:  "iPhone 16 Pro",
		Price: 1199,
		Image: "https://images.unsplash.com/photo-1695048133142-1a20484d2569?w=600",
	}
}

func ptr[T any](v T) *T {
	return &v
}

func seedEmpty() seed.Dataset {
	return seed.Empty()
}
