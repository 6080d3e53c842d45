package commands

import (
	"context"
	"errors"

	"aboshop/internal/core/domain/model/checkout"
	"aboshop/internal/core/domain/model/customer"
	"aboshop/internal/core/domain/model/kernel"
	"aboshop/internal/core/ports"
	"aboshop/internal/pkg/errs"
)

// RegisterCommandHandler handles account registration in the
// identification step. Registration fails when the email is taken; on
// success the fresh identity is attached and the workflow advances to
// billing.
type RegisterCommandHandler struct {
	drafts     ports.DraftRegistry
	uowFactory CustomerUoWFactory
}

// NewRegisterCommandHandler creates a handler for registration.
func NewRegisterCommandHandler(drafts ports.DraftRegistry, uowFactory CustomerUoWFactory) RegisterCommandHandler {
	return RegisterCommandHandler{
		drafts:     drafts,
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. A duplicate email records
// an inline field error and returns ErrEmailAlreadyRegistered.
func (h *RegisterCommandHandler) Handle(ctx context.Context, cmd RegisterCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	draft, release, err := h.drafts.Acquire(ctx, cmd.SessionID())
	if err != nil {
		return err
	}
	defer release()

	draft.ClearLastError()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		draft.SetLastError(err.Error())
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()

	_, err = repo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		draft.SetFieldError("email", "an account with this email already exists")
		return ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		draft.SetLastError(err.Error())
		return err
	}

	account, err := customer.NewCustomer(
		kernel.NewUUID(),
		cmd.Salutation(),
		cmd.FirstName(),
		cmd.LastName(),
		cmd.Email(),
		cmd.Phone(),
	)
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, account); err != nil {
		draft.SetLastError(err.Error())
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		draft.SetLastError(err.Error())
		return err
	}

	if err = draft.SetCustomer(account); err != nil {
		return err
	}

	draft.EnterStep(checkout.StepBilling)
	return nil
}
