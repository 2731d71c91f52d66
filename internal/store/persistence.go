package store

import (
	"context"
	"encoding/json"

	pkgerrors "github.com/angelmondragon/applestore-backend/pkg/errors"
	"github.com/angelmondragon/applestore-backend/pkg/types"
	"github.com/angelmondragon/applestore-backend/pkg/validation"
)

// persist writes value as a JSON array under key. A nil backend is a no-op.
func (s *Store) persist(ctx context.Context, key string, value any) *pkgerrors.Error {
	if s.backend == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStorage, err, "failed to encode "+key).
			WithDetails(map[string]any{"key": key})
	}
	if err := s.backend.Set(ctx, key, string(payload)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStorage, err, "failed to save "+key).
			WithDetails(map[string]any{"key": key})
	}
	return nil
}

func (s *Store) persistUsers(ctx context.Context, users []types.User) *pkgerrors.Error {
	return s.persist(ctx, s.keys.Users, users)
}

func (s *Store) persistInvoices(ctx context.Context, invoices []types.Invoice) *pkgerrors.Error {
	return s.persist(ctx, s.keys.Invoices, invoices)
}

func (s *Store) loadUsers(ctx context.Context) ([]types.User, *pkgerrors.Error) {
	raw, err := s.read(ctx, s.keys.Users)
	if err != nil || raw == nil {
		return cloneSlice(s.seed.Users), err
	}
	users, verdict := validation.DecodeUsers(*raw)
	if !verdict.Valid {
		return cloneSlice(s.seed.Users), s.invalidData(ctx, s.keys.Users, verdict)
	}
	return users, nil
}

func (s *Store) loadInvoices(ctx context.Context) ([]types.Invoice, *pkgerrors.Error) {
	raw, err := s.read(ctx, s.keys.Invoices)
	if err != nil || raw == nil {
		return cloneSlice(s.seed.Invoices), err
	}
	invoices, verdict := validation.DecodeInvoices(*raw)
	if !verdict.Valid {
		return cloneSlice(s.seed.Invoices), s.invalidData(ctx, s.keys.Invoices, verdict)
	}
	return invoices, nil
}

// read returns nil without error when the key is absent or there is no backend.
func (s *Store) read(ctx context.Context, key string) (*string, *pkgerrors.Error) {
	ctx = s.log.WithStorageKey(ctx, key)
	if s.backend == nil {
		s.log.Debug(ctx, "no backend configured, using seed data")
		return nil, nil
	}
	raw, found, err := s.backend.Get(ctx, key)
	if err != nil {
		typed := pkgerrors.Wrap(pkgerrors.CodeStorage, err, "failed to read "+key+", using default data").
			WithDetails(map[string]any{"key": key})
		s.log.Warn(s.log.WithFields(ctx, pkgerrors.Dump(typed).Fields()), "backend read failed, using seed data")
		return nil, typed
	}
	if !found {
		s.log.Info(ctx, "nothing persisted yet, using seed data")
		return nil, nil
	}
	return &raw, nil
}

func (s *Store) invalidData(ctx context.Context, key string, verdict validation.Verdict) *pkgerrors.Error {
	details := map[string]any{"key": key, "reason": verdict.Reason}
	if verdict.Index >= 0 {
		details["index"] = verdict.Index
	}
	err := pkgerrors.New(pkgerrors.CodeInvalidData, "stored "+key+" is invalid, using default data").
		WithDetails(details)
	s.log.Warn(s.log.WithFields(ctx, details), "persisted data failed validation, using seed data")
	return err
}
