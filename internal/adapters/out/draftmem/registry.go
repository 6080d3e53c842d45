// Package draftmem keeps the in-progress checkout drafts of active
// sessions in process memory. Drafts are working state, not records:
// losing them on restart only sends the customer back to step one.
package draftmem

import (
	"context"
	"sync"
	"time"

	"aboshop/internal/core/domain/model/checkout"
	"aboshop/internal/core/domain/model/kernel"
	"aboshop/internal/core/ports"
)

// entry pairs a draft with its session lock. The lock serializes all
// command handlers working on the same session.
type entry struct {
	mu    sync.Mutex
	draft *checkout.Draft
}

// InMemoryDraftRegistry implements DraftRegistry with a mutex-guarded map.
type InMemoryDraftRegistry struct {
	mu      sync.Mutex
	entries map[kernel.UUID]*entry
}

// NewInMemoryDraftRegistry creates an empty draft registry.
func NewInMemoryDraftRegistry() *InMemoryDraftRegistry {
	return &InMemoryDraftRegistry{
		entries: make(map[kernel.UUID]*entry),
	}
}

var _ ports.DraftRegistry = (*InMemoryDraftRegistry)(nil)

// Acquire returns the session's draft with the session lock held,
// creating a fresh draft on first use. The release function must be
// called exactly once when the caller is done.
func (r *InMemoryDraftRegistry) Acquire(ctx context.Context, sessionID kernel.UUID) (*checkout.Draft, func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	for {
		r.mu.Lock()
		e, ok := r.entries[sessionID]
		if !ok {
			draft, err := checkout.NewDraft(sessionID)
			if err != nil {
				r.mu.Unlock()
				return nil, nil, err
			}
			e = &entry{draft: draft}
			r.entries[sessionID] = e
		}
		r.mu.Unlock()

		e.mu.Lock()

		// Reacquire the registry lock to make sure the entry was not
		// pruned or removed while we waited for its session lock.
		r.mu.Lock()
		current, ok := r.entries[sessionID]
		r.mu.Unlock()
		if ok && current == e {
			return e.draft, e.mu.Unlock, nil
		}
		e.mu.Unlock()
	}
}

// Remove drops the session's draft from the registry.
func (r *InMemoryDraftRegistry) Remove(sessionID kernel.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, sessionID)
}

// PruneIdle removes drafts not touched since the deadline and returns
// how many were removed. Drafts currently held by a handler are skipped
// and picked up on the next sweep.
func (r *InMemoryDraftRegistry) PruneIdle(deadline time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	pruned := 0
	for sessionID, e := range r.entries {
		if !e.mu.TryLock() {
			continue
		}
		idle := e.draft.TouchedAt().Before(deadline)
		e.mu.Unlock()

		if idle {
			delete(r.entries, sessionID)
			pruned++
		}
	}
	return pruned
}
