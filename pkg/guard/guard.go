// Package guard keeps at most one run of a named batch job in flight.
package guard

import (
	"context"
	"errors"
	"sync"
)

var ErrBusy = errors.New("job already in progress")

type Release func()

type Guard interface {
	// Acquire returns ErrBusy when another holder owns key.
	Acquire(ctx context.Context, key string) (Release, error)
}

type Local struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewLocal() *Local {
	return &Local{held: make(map[string]struct{})}
}

func (l *Local) Acquire(_ context.Context, key string) (Release, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.held[key]; ok {
		return nil, ErrBusy
	}
	l.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.held, key)
			l.mu.Unlock()
		})
	}, nil
}
