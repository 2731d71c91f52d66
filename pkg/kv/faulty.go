package kv

import (
	"context"
	"sync"
)

// Faulty wraps a Backend and injects failures per key. The empty key
// matches every key. Used to exercise persistence failure paths.
type Faulty struct {
	Inner Backend

	mu       sync.Mutex
	getErrs  map[string]error
	setRules map[string]*setRule
	sets     map[string]int
}

type setRule struct {
	err   error
	after int
}

func NewFaulty(inner Backend) *Faulty {
	if inner == nil {
		inner = NewMemory()
	}
	return &Faulty{
		Inner:    inner,
		getErrs:  make(map[string]error),
		setRules: make(map[string]*setRule),
		sets:     make(map[string]int),
	}
}

// FailGet makes Get on key return err.
func (f *Faulty) FailGet(key string, err error) *Faulty {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getErrs[key] = err
	return f
}

// FailSet makes every Set on key return err.
func (f *Faulty) FailSet(key string, err error) *Faulty {
	return f.FailSetAfter(key, 0, err)
}

// FailSetAfter lets n more Sets on key succeed, then fails the rest with err.
func (f *Faulty) FailSetAfter(key string, n int, err error) *Faulty {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setRules[key] = &setRule{err: err, after: n}
	return f
}

// Heal removes every injected failure.
func (f *Faulty) Heal() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getErrs = make(map[string]error)
	f.setRules = make(map[string]*setRule)
}

// SetCalls reports how many Set calls were attempted for key.
func (f *Faulty) SetCalls(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sets[key]
}

func (f *Faulty) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	err := f.getErrs[key]
	if err == nil {
		err = f.getErrs[""]
	}
	f.mu.Unlock()
	if err != nil {
		return "", false, err
	}
	return f.Inner.Get(ctx, key)
}

func (f *Faulty) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	f.sets[key]++
	rule := f.setRules[key]
	if rule == nil {
		rule = f.setRules[""]
	}
	var err error
	if rule != nil {
		if rule.after > 0 {
			rule.after--
		} else {
			err = rule.err
		}
	}
	f.mu.Unlock()
	if err != nil {
		return err
	}
	return f.Inner.Set(ctx, key, value)
}
