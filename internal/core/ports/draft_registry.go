package ports

import (
	"context"
	"time"

	"aboshop/internal/core/domain/model/checkout"
	"aboshop/internal/core/domain/model/kernel"
)

// DraftRegistry holds the in-progress checkout draft of every active
// session. Drafts are single-writer: Acquire hands out the draft with
// the session's lock held so command handlers mutate it exclusively.
type DraftRegistry interface {
	// Acquire returns the draft for the session, creating a fresh one on
	// first use, with the session's lock held. The returned release
	// function must be called once the caller is done with the draft.
	Acquire(ctx context.Context, sessionID kernel.UUID) (*checkout.Draft, func(), error)

	// Remove drops the session's draft from the registry.
	Remove(sessionID kernel.UUID)

	// PruneIdle removes drafts not touched since the deadline and returns
	// how many were removed. Completed and abandoned checkouts age out
	// this way.
	PruneIdle(deadline time.Time) int
}
