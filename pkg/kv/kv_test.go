package kv

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/angelmondragon/applestore-backend/pkg/config"
	"github.com/angelmondragon/applestore-backend/pkg/db"
	"github.com/angelmondragon/applestore-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, found, err := m.Get(ctx, "users")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, m.Set(ctx, "users", "[]"))
	val, found, err := m.Get(ctx, "users")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", val)
}

func TestSetAllUsesBatchWhenAvailable(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, SetAll(ctx, m, map[string]string{"a": "1", "b": "2"}))
	assert.Equal(t, 2, m.Len())

	f := NewFaulty(NewMemory())
	require.NoError(t, SetAll(ctx, f, map[string]string{"a": "1", "b": "2"}))
	assert.Equal(t, 1, f.SetCalls("a"))
	assert.Equal(t, 1, f.SetCalls("b"))
}

func TestFaultyInjectsFailures(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	f := NewFaulty(NewMemoryWith(map[string]string{"users": "[]"}))

	f.FailGet("users", boom)
	_, _, err := f.Get(ctx, "users")
	assert.ErrorIs(t, err, boom)

	f.FailSetAfter("invoices", 1, boom)
	require.NoError(t, f.Set(ctx, "invoices", "[1]"))
	assert.ErrorIs(t, f.Set(ctx, "invoices", "[2]"), boom)
	assert.Equal(t, 2, f.SetCalls("invoices"))

	val, _, err := f.Inner.Get(ctx, "invoices")
	require.NoError(t, err)
	assert.Equal(t, "[1]", val, "failed set must not reach the inner backend")

	f.FailSet("", boom)
	assert.ErrorIs(t, f.Set(ctx, "anything", "x"), boom)

	f.Heal()
	require.NoError(t, f.Set(ctx, "invoices", "[3]"))
	val, found, err := f.Get(ctx, "users")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", val)
}

type fakeRedis struct {
	data map[string]string
}

func (f *fakeRedis) Lookup(_ context.Context, key string) (string, bool, error) {
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, _ time.Duration) error {
	f.data[key] = value.(string)
	return nil
}

func (f *fakeRedis) CollectionKey(name string) string { return "ns:kv:" + name }

func (f *fakeRedis) Ping(context.Context) error { return nil }

func TestRedisNamespacesKeys(t *testing.T) {
	ctx := context.Background()
	fake := &fakeRedis{data: map[string]string{}}
	r := NewRedis(fake)

	require.NoError(t, r.Set(ctx, "apple-store-users", "[]"))
	assert.Equal(t, "[]", fake.data["ns:kv:apple-store-users"])

	val, found, err := r.Get(ctx, "apple-store-users")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", val)
	require.NoError(t, r.Ping(ctx))
}

func newSQLBackend(t *testing.T) *SQL {
	t.Helper()
	client, err := db.New(context.Background(), config.StorageDriverSQLite, config.DBConfig{DSN: "file::memory:", MaxOpenConns: 1}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Exec(context.Background(), "CREATE TABLE kv_entries (key VARCHAR(255) PRIMARY KEY, value TEXT NOT NULL, updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP)").Error)
	return NewSQL(client)
}

func TestSQLUpsertRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newSQLBackend(t)

	_, found, err := s.Get(ctx, "apple-store-users")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "apple-store-users", "[]"))
	require.NoError(t, s.Set(ctx, "apple-store-users", `[{"id":"1"}]`))

	val, found, err := s.Get(ctx, "apple-store-users")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"1"}]`, val)

	require.NoError(t, s.SetMany(ctx, map[string]string{"a": "1", "apple-store-users": "[]"}))
	val, _, err = s.Get(ctx, "apple-store-users")
	require.NoError(t, err)
	assert.Equal(t, "[]", val)
	require.NoError(t, s.Ping(ctx))
}

func TestOpenByDriver(t *testing.T) {
	ctx := context.Background()
	log := logger.Nop()

	opened, err := Open(ctx, &config.Config{Storage: config.StorageConfig{Driver: config.StorageDriverNone}}, log)
	require.NoError(t, err)
	assert.Nil(t, opened.Backend)
	require.NoError(t, opened.Ping(ctx))
	require.NoError(t, opened.Close())

	opened, err = Open(ctx, &config.Config{Storage: config.StorageConfig{Driver: "Memory"}}, log)
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, opened.Backend)

	_, err = Open(ctx, &config.Config{Storage: config.StorageConfig{Driver: config.StorageDriverRedis}}, log)
	require.Error(t, err)

	_, err = Open(ctx, &config.Config{Storage: config.StorageConfig{Driver: "etcd"}}, log)
	require.Error(t, err)
}

func TestOpenSQLiteRunsMigrations(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		Storage: config.StorageConfig{Driver: config.StorageDriverSQLite},
		DB:      config.DBConfig{DSN: "file::memory:", MaxOpenConns: 1, AutoMigrate: true},
	}
	opened, err := Open(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = opened.Close() })

	require.NoError(t, opened.Backend.Set(ctx, "apple-store-invoices", "[]"))
	val, found, err := opened.Backend.Get(ctx, "apple-store-invoices")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", val)
	require.NoError(t, opened.Ping(ctx))
}
