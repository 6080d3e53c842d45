package commands

import (
	"context"

	"aboshop/internal/core/ports"
)

// ResetCheckoutCommandHandler restores a session's draft to its initial
// defaults, clearing the completed order flag along with everything
// else.
type ResetCheckoutCommandHandler struct {
	drafts ports.DraftRegistry
}

// NewResetCheckoutCommandHandler creates a handler for checkout resets.
func NewResetCheckoutCommandHandler(drafts ports.DraftRegistry) ResetCheckoutCommandHandler {
	return ResetCheckoutCommandHandler{
		drafts: drafts,
	}
}

// Handle processes the reset command.
func (h *ResetCheckoutCommandHandler) Handle(ctx context.Context, cmd ResetCheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	draft, release, err := h.drafts.Acquire(ctx, cmd.SessionID())
	if err != nil {
		return err
	}
	defer release()

	draft.Reset()
	return nil
}
