package store

import (
	"time"

	"github.com/angelmondragon/applestore-backend/pkg/logger"
	"github.com/angelmondragon/applestore-backend/pkg/metrics"
	"github.com/angelmondragon/applestore-backend/pkg/seed"
	"github.com/google/uuid"
)

const (
	DefaultUsersKey    = "apple-store-users"
	DefaultInvoicesKey = "apple-store-invoices"
)

// Keys names the backend slots the collections are persisted under.
type Keys struct {
	Users    string
	Invoices string
}

// Option customizes a Store at construction.
type Option func(*Store)

func WithLogger(logg *logger.Logger) Option {
	return func(s *Store) {
		if logg != nil {
			s.log = logg
		}
	}
}

func WithMetrics(m *metrics.StoreMetrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// WithClock overrides the time source used to date new invoices.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides the suffix generator for new record ids.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithSeed replaces the fallback dataset used when nothing valid is persisted.
func WithSeed(ds seed.Dataset) Option {
	return func(s *Store) {
		s.seed = seed.Dataset{Users: cloneSlice(ds.Users), Invoices: cloneSlice(ds.Invoices)}
	}
}

// WithKeys overrides the backend keys. Blank entries keep the defaults.
func WithKeys(keys Keys) Option {
	return func(s *Store) {
		if keys.Users != "" {
			s.keys.Users = keys.Users
		}
		if keys.Invoices != "" {
			s.keys.Invoices = keys.Invoices
		}
	}
}

func defaultKeys() Keys {
	return Keys{Users: DefaultUsersKey, Invoices: DefaultInvoicesKey}
}

func defaultIDGenerator() string {
	return uuid.NewString()
}
