// Package store owns the users and invoices collections. Every mutation is
// validated, persisted through a kv.Backend and then published as an
// immutable Snapshot.
package store

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	pkgerrors "github.com/angelmondragon/applestore-backend/pkg/errors"
	"github.com/angelmondragon/applestore-backend/pkg/kv"
	"github.com/angelmondragon/applestore-backend/pkg/logger"
	"github.com/angelmondragon/applestore-backend/pkg/metrics"
	"github.com/angelmondragon/applestore-backend/pkg/seed"
	"github.com/angelmondragon/applestore-backend/pkg/types"
	"go.uber.org/multierr"
)

const (
	opLoad           = "load"
	opSetUsers       = "set_users"
	opUpdateUser     = "update_user"
	opCreateUser     = "create_user"
	opDeleteUser     = "delete_user"
	opAddInvoice     = "add_invoice"
	opSetInvoices    = "set_invoices"
	opRecordPurchase = "record_purchase"
	opClearError     = "clear_error"
)

type slot uint8

const (
	slotUsers slot = 1 << iota
	slotInvoices
)

// Store is safe for concurrent use. Mutations serialize on one mutex that
// covers both collections; reads go through the published snapshot and
// never block on a mutation.
type Store struct {
	mu          sync.Mutex
	users       []types.User
	invoices    []types.Invoice
	usersErr    *pkgerrors.Error
	invoicesErr *pkgerrors.Error
	version     uint64

	snap atomic.Pointer[Snapshot]

	subsMu    sync.Mutex
	subs      map[int]*subscriber
	nextSubID int

	backend kv.Backend
	keys    Keys
	seed    seed.Dataset
	log     *logger.Logger
	metrics *metrics.StoreMetrics
	now     func() time.Time
	newID   func() string

	// beforeUserInsert runs inside RecordPurchase after the invoice write,
	// just before a new user is checked for a duplicate email.
	beforeUserInsert func()
}

// New loads both collections from backend and returns a ready store. A nil
// backend keeps the store in memory only. Load problems never fail
// construction: the seed dataset is used and the problem is recorded in the
// collection's error slot.
func New(ctx context.Context, backend kv.Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		keys:    defaultKeys(),
		seed:    seed.Default(),
		log:     logger.Nop(),
		now:     time.Now,
		newID:   defaultIDGenerator,
		subs:    make(map[int]*subscriber),
	}
	for _, opt := range opts {
		opt(s)
	}

	ctx = s.log.WithOperation(ctx, opLoad)
	s.mu.Lock()
	s.users, s.usersErr = s.loadUsers(ctx)
	s.invoices, s.invoicesErr = s.loadInvoices(ctx)
	s.publishLocked()
	s.mu.Unlock()
	return s
}

// Keys reports the backend keys in use.
func (s *Store) Keys() Keys {
	return s.keys
}

// Persistent reports whether mutations are written to a backend.
func (s *Store) Persistent() bool {
	return s.backend != nil
}

// Snapshot returns the latest published state.
func (s *Store) Snapshot() Snapshot {
	return s.snap.Load().clone()
}

func (s *Store) Users() []types.User {
	return cloneSlice(s.snap.Load().Users)
}

func (s *Store) Invoices() []types.Invoice {
	return cloneSlice(s.snap.Load().Invoices)
}

// UsersError returns a copy of the users collection's last error, or nil.
func (s *Store) UsersError() *pkgerrors.Error {
	return s.snap.Load().UsersError.Clone()
}

// InvoicesError returns a copy of the invoices collection's last error, or nil.
func (s *Store) InvoicesError() *pkgerrors.Error {
	return s.snap.Load().InvoicesError.Clone()
}

// LastError combines both error slots; nil when both are clear. An error
// recorded in both slots by one operation is reported once.
func (s *Store) LastError() error {
	snap := s.snap.Load()
	if snap.InvoicesError == snap.UsersError {
		return asError(snap.UsersError.Clone())
	}
	return multierr.Combine(asError(snap.UsersError.Clone()), asError(snap.InvoicesError.Clone()))
}

// ClearError empties both error slots without touching data.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.usersErr == nil && s.invoicesErr == nil {
		return
	}
	s.usersErr = nil
	s.invoicesErr = nil
	s.publishLocked()
	s.log.Debug(s.log.WithOperation(context.Background(), opClearError), "store errors cleared")
}

// run executes fn under the store lock, records its outcome in the given
// error slots, publishes once and reports metrics.
func (s *Store) run(ctx context.Context, op string, slots slot, fn func(ctx context.Context) *pkgerrors.Error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = s.log.WithOperation(ctx, op)
	start := s.now()

	s.mu.Lock()
	err := fn(ctx)
	// The slots keep their own copy so callers can't edit published state
	// through the returned error.
	recorded := err.Clone()
	if slots&slotUsers != 0 {
		s.usersErr = recorded
	}
	if slots&slotInvoices != 0 {
		s.invoicesErr = recorded
	}
	s.publishLocked()
	s.mu.Unlock()

	s.metrics.ObserveDuration(op, s.now().Sub(start))
	if err != nil {
		s.metrics.IncFailure(op, string(err.Code()))
		logCtx := s.log.WithFields(ctx, pkgerrors.Dump(err).Fields())
		if err.Code() == pkgerrors.CodeStorage {
			s.log.Warn(logCtx, "store operation failed")
		} else {
			s.log.Info(logCtx, "store operation rejected")
		}
		return err
	}
	s.metrics.IncSuccess(op)
	return nil
}

func (s *Store) publishLocked() {
	s.version++
	snap := &Snapshot{
		Version:       s.version,
		Users:         cloneSlice(s.users),
		Invoices:      cloneSlice(s.invoices),
		UsersError:    s.usersErr,
		InvoicesError: s.invoicesErr,
	}
	s.snap.Store(snap)
	s.notify(snap)
}

func asError(err *pkgerrors.Error) error {
	if err == nil {
		return nil
	}
	return err
}
