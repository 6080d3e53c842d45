package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"aboshop/internal/core/domain/model/checkout"
	"aboshop/internal/core/domain/model/kernel"
	"aboshop/internal/core/ports"
)

// PlaceOrderCommandHandler handles the final order submission from the
// review step.
//
// Submission sequence:
//   - Merge the consent flags
//   - Check all preconditions and assemble the immutable order record
//   - Persist the record transactionally
//   - Mark the draft complete and advance to confirmation
//   - Send the confirmation email best effort (a failure is logged, the
//     order stands)
//
// A persistence failure surfaces the error verbatim as a banner and
// leaves the draft intact so the customer can retry.
type PlaceOrderCommandHandler struct {
	drafts     ports.DraftRegistry
	uowFactory UoWFactory
	sender     ports.ConfirmationSender
	logger     *slog.Logger
	now        func() time.Time
}

// NewPlaceOrderCommandHandler creates a handler for order submission.
func NewPlaceOrderCommandHandler(
	drafts ports.DraftRegistry,
	uowFactory UoWFactory,
	sender ports.ConfirmationSender,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		drafts:     drafts,
		uowFactory: uowFactory,
		sender:     sender,
		logger:     logger.With("component", "place_order"),
		now:        time.Now,
	}
}

// Handle processes the order submission command.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	draft, release, err := h.drafts.Acquire(ctx, cmd.SessionID())
	if err != nil {
		return err
	}
	defer release()

	draft.ClearLastError()
	draft.ApplyConsents(cmd.Consents())

	orderID := kernel.NewUUID()

	record, err := draft.AssembleRecord(orderID, h.now())
	if err != nil {
		var precondition *checkout.PreconditionError
		if errors.As(err, &precondition) {
			draft.SetFieldError(precondition.Field, precondition.Err.Error())
			return err
		}
		return err
	}

	draft.SetLoading(true)
	defer draft.SetLoading(false)

	if err = h.persist(ctx, record); err != nil {
		draft.SetLastError(err.Error())
		return err
	}

	if err = draft.MarkComplete(orderID); err != nil {
		return err
	}
	draft.EnterStep(checkout.StepConfirmation)

	if sendErr := h.sender.SendOrderConfirmation(ctx, record); sendErr != nil {
		h.logger.Warn("confirmation email failed",
			"order_id", orderID.String(),
			"email", record.CustomerEmail,
			"error", sendErr)
	}

	return nil
}

func (h *PlaceOrderCommandHandler) persist(ctx context.Context, record *checkout.Record) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SubscriptionRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
