package store

import (
	pkgerrors "github.com/angelmondragon/applestore-backend/pkg/errors"
	"github.com/angelmondragon/applestore-backend/pkg/types"
)

// Snapshot is an immutable view of the store at one point in time.
type Snapshot struct {
	Version       uint64
	Users         []types.User
	Invoices      []types.Invoice
	UsersError    *pkgerrors.Error
	InvoicesError *pkgerrors.Error
}

func (s Snapshot) clone() Snapshot {
	s.Users = cloneSlice(s.Users)
	s.Invoices = cloneSlice(s.Invoices)
	shared := s.UsersError != nil && s.UsersError == s.InvoicesError
	s.UsersError = s.UsersError.Clone()
	if shared {
		s.InvoicesError = s.UsersError
	} else {
		s.InvoicesError = s.InvoicesError.Clone()
	}
	return s
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

type subscriber struct {
	ch chan Snapshot
}

// Subscribe returns a channel that receives a snapshot after every publish,
// starting with the current one. Slow readers only see the latest snapshot.
// The cancel func closes the channel.
func (s *Store) Subscribe(buffer int) (<-chan Snapshot, func()) {
	if buffer < 1 {
		buffer = 1
	}
	sub := &subscriber{ch: make(chan Snapshot, buffer)}

	s.subsMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = sub
	deliver(sub, s.snap.Load().clone())
	s.subsMu.Unlock()

	var cancelled bool
	cancel := func() {
		s.subsMu.Lock()
		defer s.subsMu.Unlock()
		if cancelled {
			return
		}
		cancelled = true
		delete(s.subs, id)
		close(sub.ch)
	}
	return sub.ch, cancel
}

func (s *Store) notify(snap *Snapshot) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for _, sub := range s.subs {
		deliver(sub, snap.clone())
	}
}

// deliver drops the oldest queued snapshot when the buffer is full.
func deliver(sub *subscriber, snap Snapshot) {
	for {
		select {
		case sub.ch <- snap:
			return
		default:
		}
		select {
		case <-sub.ch:
		default:
		}
	}
}
