package commands

import (
	"context"
	"errors"
	"strings"

	"aboshop/internal/core/domain/model/checkout"
	"aboshop/internal/core/domain/model/customer"
	"aboshop/internal/core/domain/model/kernel"
	"aboshop/internal/core/ports"
	"aboshop/internal/pkg/errs"
)

// LoginCommandHandler handles the login path of the identification step.
// A known email attaches the stored identity; an unknown email gets a
// demo identity registered transparently with a name derived from the
// email address. Either way the workflow skips forward past Identify.
type LoginCommandHandler struct {
	drafts     ports.DraftRegistry
	uowFactory CustomerUoWFactory
}

// NewLoginCommandHandler creates a handler for login operations.
func NewLoginCommandHandler(drafts ports.DraftRegistry, uowFactory CustomerUoWFactory) LoginCommandHandler {
	return LoginCommandHandler{
		drafts:     drafts,
		uowFactory: uowFactory,
	}
}

// Handle processes the login command. On success the identity is
// attached to the draft and the workflow advances to billing.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) error {
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

	found, err := repo.GetByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		// Known account, attach as-is.

	case errors.Is(err, errs.ErrObjectNotFound):
		found, err = newDemoIdentity(cmd.Email())
		if err != nil {
			return err
		}
		if err = repo.Add(ctx, found); err != nil {
			draft.SetLastError(err.Error())
			return err
		}

	default:
		draft.SetLastError(err.Error())
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		draft.SetLastError(err.Error())
		return err
	}

	if err = draft.SetCustomer(found); err != nil {
		return err
	}

	draft.EnterStep(checkout.StepBilling)
	return nil
}

// newDemoIdentity builds the transparently registered identity for an
// unknown login email. The name is derived from the email's local part.
func newDemoIdentity(email string) (*customer.Customer, error) {
	firstName, lastName := nameFromEmail(email)
	return customer.NewCustomer(kernel.NewUUID(), "", firstName, lastName, email, "")
}

// nameFromEmail splits the local part on separators and title-cases the
// outer tokens. A single-token local part doubles as the last name.
func nameFromEmail(email string) (string, string) {
	local := email
	if at := strings.Index(email, "@"); at > 0 {
		local = email[:at]
	}

	tokens := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	if len(tokens) == 0 {
		return "Abo", "Kunde"
	}

	first := titleCase(tokens[0])
	last := first
	if len(tokens) > 1 {
		last = titleCase(tokens[len(tokens)-1])
	}
	return first, last
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
