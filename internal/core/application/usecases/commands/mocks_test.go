package commands_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"aboshop/internal/core/application/usecases/commands"
	"aboshop/internal/core/domain/model/checkout"
	"aboshop/internal/core/domain/model/customer"
	"aboshop/internal/core/domain/model/kernel"
	"aboshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// fakeDraftRegistry is an in-memory stand-in for the draft registry.
type fakeDraftRegistry struct {
	mu     sync.Mutex
	drafts map[string]*checkout.Draft
}

func newFakeDraftRegistry() *fakeDraftRegistry {
	return &fakeDraftRegistry{drafts: make(map[string]*checkout.Draft)}
}

func (r *fakeDraftRegistry) Acquire(_ context.Context, sessionID kernel.UUID) (*checkout.Draft, func(), error) {
	r.mu.Lock()
	d, ok := r.drafts[sessionID.String()]
	if !ok {
		var err error
		d, err = checkout.NewDraft(sessionID)
		if err != nil {
			r.mu.Unlock()
			return nil, nil, err
		}
		r.drafts[sessionID.String()] = d
	}
	return d, r.mu.Unlock, nil
}

func (r *fakeDraftRegistry) Remove(sessionID kernel.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drafts, sessionID.String())
}

func (r *fakeDraftRegistry) PruneIdle(_ time.Time) int { return 0 }

var _ ports.DraftRegistry = (*fakeDraftRegistry)(nil)

type MockGeoDirectory struct{ mock.Mock }

func (m *MockGeoDirectory) ResolveDistance(ctx context.Context, code kernel.PostalCode) (float64, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockGeoDirectory) ResolveAvailableVariants(ctx context.Context, plz string) ([]checkout.Variant, error) {
	args := m.Called(ctx, plz)
	return args.Get(0).([]checkout.Variant), args.Error(1)
}

func (m *MockGeoDirectory) ResolvePostalCodeInfo(ctx context.Context, plz string) (string, error) {
	args := m.Called(ctx, plz)
	return args.String(0), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(_ context.Context, _ *customer.Customer) error { return nil }

func (m *MockCustomerRepository) Get(_ context.Context, _ kernel.UUID) (*customer.Customer, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockCustomerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockSubscriptionRepository struct{ mock.Mock }

func (m *MockSubscriptionRepository) Add(ctx context.Context, record *checkout.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Get(_ context.Context, _ kernel.UUID) (*checkout.Record, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockSubscriptionRepository) GetAllForCustomer(_ context.Context, _ kernel.UUID) ([]*checkout.Record, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCustomerUoW struct{ mock.Mock }

func (m *MockCustomerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCustomerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCustomerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCustomerUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) SubscriptionRepository() ports.SubscriptionRepository {
	args := m.Called()
	return args.Get(0).(ports.SubscriptionRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockConfirmationSender struct{ mock.Mock }

func (m *MockConfirmationSender) SendOrderConfirmation(ctx context.Context, record *checkout.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func ptr[T any](v T) *T {
	return &v
}
