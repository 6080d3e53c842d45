package commands_test

import (
	"testing"

	"aboshop/internal/core/application/usecases/commands"
	"aboshop/internal/core/domain/model/checkout"
	"aboshop/internal/core/domain/model/customer"
	"aboshop/internal/core/domain/model/kernel"
	"aboshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	sessionID := kernel.NewUUID()
	registry := newFakeDraftRegistry()

	repo := new(MockCustomerRepository)
	uow := new(MockCustomerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, "neu@example.com").
			Return(nil, errs.NewObjectNotFoundError("email", "neu@example.com")).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewRegisterCommand(sessionID, "Herr", "Max", "Mustermann", "neu@example.com", "", "secret")
	require.NoError(t, err)

	h := commands.NewRegisterCommandHandler(registry, factory)
	require.NoError(t, h.Handle(ctx, cmd))

	draft, release, err := registry.Acquire(ctx, sessionID)
	require.NoError(t, err)
	defer release()

	require.NotNil(t, draft.Customer())
	assert.Equal(t, "neu@example.com", draft.Customer().Email())
	assert.Equal(t, checkout.StepBilling, draft.CurrentStep())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	sessionID := kernel.NewUUID()
	registry := newFakeDraftRegistry()

	existing, err := customer.NewCustomer(kernel.NewUUID(), "", "Erika", "Mustermann", "erika@example.com", "")
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	uow := new(MockCustomerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, "erika@example.com").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewRegisterCommand(sessionID, "", "Erika", "Mustermann", "erika@example.com", "", "secret")
	require.NoError(t, err)

	h := commands.NewRegisterCommandHandler(registry, factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrEmailAlreadyRegistered)

	draft, release, acquireErr := registry.Acquire(ctx, sessionID)
	require.NoError(t, acquireErr)
	defer release()

	assert.Nil(t, draft.Customer())
	assert.Contains(t, draft.FieldErrors(), "email")
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestNewRegisterCommand_Validation(t *testing.T) {
	sessionID := kernel.NewUUID()

	_, err := commands.NewRegisterCommand(sessionID, "", "", "Mustermann", "max@example.com", "", "secret")
	require.Error(t, err)

	_, err = commands.NewRegisterCommand(sessionID, "", "Max", "Mustermann", "bad-email", "", "secret")
	require.Error(t, err)

	_, err = commands.NewRegisterCommand(kernel.UUID{}, "", "Max", "Mustermann", "max@example.com", "", "secret")
	require.Error(t, err)
}
