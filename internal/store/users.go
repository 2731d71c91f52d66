package store

import (
	"context"
	"strings"

	pkgerrors "github.com/angelmondragon/applestore-backend/pkg/errors"
	"github.com/angelmondragon/applestore-backend/pkg/types"
	"github.com/angelmondragon/applestore-backend/pkg/validation"
)

const (
	userIDPrefix = "user-"

	msgUserIDRequired    = "User ID is required and must be a non-empty string"
	msgUserNameRequired  = "User name is required and must be a non-empty string"
	msgUserEmailRequired = "User email is required and must be a non-empty string"
	msgUserEmailInvalid  = "User email must be a valid email address"
	msgItemsPurchased    = "Items purchased must be a non-negative integer"
	msgUserNotFound      = "User not found"
	msgDuplicateEmail    = "A user with this email already exists"
)

// SetUsers replaces the whole users collection.
func (s *Store) SetUsers(ctx context.Context, users []types.User) ([]types.User, error) {
	var out []types.User
	err := s.run(ctx, opSetUsers, slotUsers, func(ctx context.Context) *pkgerrors.Error {
		if v := validation.ValidateUsers(users); !v.Valid {
			return v.Err()
		}
		next := cloneSlice(users)
		if err := s.persistUsers(ctx, next); err != nil {
			return err
		}
		s.users = next
		out = cloneSlice(next)
		s.log.Info(s.log.WithField(ctx, "count", len(next)), "users replaced")
		return nil
	})
	return out, err
}

// UpdateUser applies patch to the user with id. Either memory and backend
// both reflect the change or neither does.
func (s *Store) UpdateUser(ctx context.Context, id string, patch types.UserPatch) (types.User, error) {
	var out types.User
	err := s.run(ctx, opUpdateUser, slotUsers, func(ctx context.Context) *pkgerrors.Error {
		user, err := s.updateUserLocked(s.log.WithUserID(ctx, id), id, patch)
		out = user
		return err
	})
	return out, err
}

// CreateUser adds a user under a fresh id.
func (s *Store) CreateUser(ctx context.Context, in types.NewUser) (types.User, error) {
	var out types.User
	err := s.run(ctx, opCreateUser, slotUsers, func(ctx context.Context) *pkgerrors.Error {
		user, err := s.createUserLocked(ctx, in, nil)
		out = user
		return err
	})
	return out, err
}

// DeleteUser removes the user with id and returns it.
func (s *Store) DeleteUser(ctx context.Context, id string) (types.User, error) {
	var out types.User
	err := s.run(ctx, opDeleteUser, slotUsers, func(ctx context.Context) *pkgerrors.Error {
		if strings.TrimSpace(id) == "" {
			return fieldError(msgUserIDRequired, "id")
		}
		idx := s.userIndexByID(id)
		if idx < 0 {
			return notFound(id)
		}
		removed := s.users[idx]
		next := make([]types.User, 0, len(s.users)-1)
		next = append(next, s.users[:idx]...)
		next = append(next, s.users[idx+1:]...)
		if err := s.persistUsers(ctx, next); err != nil {
			return err
		}
		s.users = next
		out = removed
		s.log.Info(s.log.WithUserID(ctx, id), "user deleted")
		return nil
	})
	return out, err
}

// FindUserByEmail looks a user up in the published snapshot, ignoring case.
func (s *Store) FindUserByEmail(email string) (types.User, bool) {
	key := validation.EmailKey(email)
	for _, u := range s.snap.Load().Users {
		if validation.EmailKey(u.Email) == key {
			return u, true
		}
	}
	return types.User{}, false
}

// FindUserByID looks a user up in the published snapshot.
func (s *Store) FindUserByID(id string) (types.User, bool) {
	for _, u := range s.snap.Load().Users {
		if u.ID == id {
			return u, true
		}
	}
	return types.User{}, false
}

func (s *Store) updateUserLocked(ctx context.Context, id string, patch types.UserPatch) (types.User, *pkgerrors.Error) {
	if strings.TrimSpace(id) == "" {
		return types.User{}, fieldError(msgUserIDRequired, "id")
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return types.User{}, fieldError(msgUserNameRequired, "name")
	}
	if patch.ItemsPurchased != nil && *patch.ItemsPurchased < 0 {
		return types.User{}, fieldError(msgItemsPurchased, "itemsPurchased")
	}

	idx := s.userIndexByID(id)
	if idx < 0 {
		return types.User{}, notFound(id)
	}

	merged := s.users[idx]
	if patch.Name != nil {
		merged.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.ItemsPurchased != nil {
		merged.ItemsPurchased = *patch.ItemsPurchased
	}
	if v := validation.ValidateUser(merged); !v.Valid {
		return types.User{}, v.Err()
	}

	next := cloneSlice(s.users)
	next[idx] = merged
	if err := s.persistUsers(ctx, next); err != nil {
		return types.User{}, err
	}
	s.users = next
	s.log.Info(ctx, "user updated")
	return merged, nil
}

// createUserLocked validates and appends a new user. beforeInsert, when
// set, runs between the duplicate lookup and the final duplicate check.
func (s *Store) createUserLocked(ctx context.Context, in types.NewUser, beforeInsert func()) (types.User, *pkgerrors.Error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" {
		return types.User{}, fieldError(msgUserNameRequired, "name")
	}
	if email == "" {
		return types.User{}, fieldError(msgUserEmailRequired, "email")
	}
	if s.userIndexByEmail(email) >= 0 {
		return types.User{}, duplicateEmail(email)
	}

	id, err := s.freshID(userIDPrefix, func(candidate string) bool { return s.userIndexByID(candidate) >= 0 })
	if err != nil {
		return types.User{}, err
	}
	user := types.User{ID: id, Name: name, Email: email, ItemsPurchased: in.ItemsPurchased}
	if v := validation.ValidateUser(user); !v.Valid {
		return types.User{}, v.Err()
	}

	if beforeInsert != nil {
		beforeInsert()
	}
	if s.userIndexByEmail(email) >= 0 {
		return types.User{}, duplicateEmail(email)
	}

	next := make([]types.User, 0, len(s.users)+1)
	next = append(next, s.users...)
	next = append(next, user)
	if err := s.persistUsers(ctx, next); err != nil {
		return types.User{}, err
	}
	s.users = next
	s.log.Info(s.log.WithUserID(ctx, id), "user created")
	return user, nil
}

func (s *Store) userIndexByID(id string) int {
	for i, u := range s.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) userIndexByEmail(email string) int {
	key := validation.EmailKey(email)
	for i, u := range s.users {
		if validation.EmailKey(u.Email) == key {
			return i
		}
	}
	return -1
}

func fieldError(message, field string) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeValidation, message).WithDetails(map[string]any{"field": field})
}

func notFound(id string) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeNotFound, msgUserNotFound).WithDetails(map[string]any{"id": id})
}

func duplicateEmail(email string) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeDuplicateEmail, msgDuplicateEmail).WithDetails(map[string]any{"email": email})
}
