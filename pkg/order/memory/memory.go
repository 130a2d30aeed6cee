// Package memory implements an in-memory session ledger repository.
package memory

import (
	"context"
	"sync"
	"time"

	"orderboard/pkg/order"
)

type entry struct {
	ledger  order.Ledger
	expires time.Time
}

// Repository provides an in-memory implementation of order.Repository.
// Sessions neither read nor written for longer than the TTL are treated as gone.
type Repository struct {
	mu       sync.Mutex
	sessions map[string]entry
	ttl      time.Duration
	now      func() time.Time
}

// New creates a new in-memory repository. A zero ttl keeps sessions forever.
func New(ttl time.Duration) *Repository {
	return &Repository{sessions: make(map[string]entry), ttl: ttl, now: time.Now}
}

// Get returns a copy of the session's ledger and refreshes its expiry.
func (r *Repository) Get(ctx context.Context, session string) (order.Ledger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[session]
	if !ok || r.expired(e) {
		return nil, order.ErrSessionNotFound
	}
	if r.ttl > 0 {
		e.expires = r.now().Add(r.ttl)
		r.sessions[session] = e
	}
	return e.ledger.Clone(), nil
}

// Put replaces the session's ledger and refreshes its expiry.
func (r *Repository) Put(ctx context.Context, session string, l order.Ledger) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := entry{ledger: l.Clone()}
	if r.ttl > 0 {
		e.expires = r.now().Add(r.ttl)
	}
	r.sessions[session] = e
	r.sweep()
	return nil
}

// Delete removes the session.
func (r *Repository) Delete(ctx context.Context, session string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[session]
	if !ok || r.expired(e) {
		return order.ErrSessionNotFound
	}
	delete(r.sessions, session)
	return nil
}

func (r *Repository) expired(e entry) bool {
	return !e.expires.IsZero() && r.now().After(e.expires)
}

// sweep drops expired sessions. Callers hold the write lock.
func (r *Repository) sweep() {
	for id, e := range r.sessions {
		if r.expired(e) {
			delete(r.sessions, id)
		}
	}
}
