package commands

import (
	"context"

	"aboshop/internal/core/ports"
)

// NavigateCommandHandler moves a checkout session to another workflow
// step. Entry guards are evaluated against the accumulated draft state;
// a failing guard silently resolves to the fallback step instead of
// returning an error.
type NavigateCommandHandler struct {
	drafts ports.DraftRegistry
}

// NewNavigateCommandHandler creates a handler for step navigation.
func NewNavigateCommandHandler(drafts ports.DraftRegistry) NavigateCommandHandler {
	return NavigateCommandHandler{
		drafts: drafts,
	}
}

// Handle processes the navigation command. The draft ends up on the
// resolved step, which callers read back from the checkout state.
func (h *NavigateCommandHandler) Handle(ctx context.Context, cmd NavigateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	draft, release, err := h.drafts.Acquire(ctx, cmd.SessionID())
	if err != nil {
		return err
	}
	defer release()

	draft.EnterStep(cmd.Target())
	return nil
}
