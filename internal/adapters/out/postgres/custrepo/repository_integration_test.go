package custrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"aboshop/internal/adapters/out/postgres/custrepo"
	"aboshop/internal/core/domain/model/customer"
	"aboshop/internal/core/domain/model/kernel"
	"aboshop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// CustomerRepositoryIntegrationTestSuite provides integration tests for CustomerRepository
// using PostgreSQL containers to verify database persistence behavior.
type CustomerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *custrepo.GormCustomerRepository
	tracker    *MockAggregateTracker
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&custrepo.CustomerDTO{}))
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE customers").Error)

	// Create a fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = custrepo.NewGormCustomerRepository(suite.db, suite.tracker)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_ValidCustomer_Success() {
	ctx := context.Background()

	testCustomer := suite.createTestCustomer("erika@example.com")

	// Set expectations on mock
	suite.tracker.On("TrackAggregate", testCustomer.ID(), testCustomer).Once()

	err := suite.repository.Add(ctx, testCustomer)
	suite.Require().NoError(err)

	suite.assertCustomerCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_RejectedByUniqueIndex() {
	ctx := context.Background()

	first := suite.createTestCustomer("erika@example.com")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	// Second identity with the same login email must be rejected at the
	// storage level even when the application-level check was bypassed
	second := suite.createTestCustomer("erika@example.com")

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.Contains(strings.ToLower(err.Error()), "duplicate")

	suite.assertCustomerCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet_ExistingCustomer_ReturnsCustomer() {
	ctx := context.Background()

	original := suite.createTestCustomer("erika@example.com")
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.Salutation(), retrieved.Salutation())
	suite.Equal(original.FirstName(), retrieved.FirstName())
	suite.Equal(original.LastName(), retrieved.LastName())
	suite.Equal(original.Email(), retrieved.Email())
	suite.Equal(original.Phone(), retrieved.Phone())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet_NonExistentCustomer_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGetByEmail_ExistingCustomer_ReturnsCustomer() {
	ctx := context.Background()

	original := suite.createTestCustomer("max.mustermann@example.com")
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.GetByEmail(ctx, "max.mustermann@example.com")
	suite.Require().NoError(err)
	suite.Equal(original.ID(), retrieved.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGetByEmail_UnknownEmail_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByEmail(ctx, "nobody@example.com")

	suite.Nil(retrieved)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpdate_ExistingCustomer_PersistsChanges() {
	ctx := context.Background()

	original := suite.createTestCustomer("erika@example.com")
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	updated, err := customer.RestoreCustomer(
		original.ID(),
		original.Salutation(),
		original.FirstName(),
		original.LastName(),
		original.Email(),
		"+49 7121 555 123",
	)
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", updated.ID(), updated).Once()

	suite.Require().NoError(suite.repository.Update(ctx, updated))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal("+49 7121 555 123", retrieved.Phone())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpdate_NonExistentCustomer_ReturnsError() {
	ctx := context.Background()

	// Customer that was never added to the database
	missing := suite.createTestCustomer("ghost@example.com")

	err := suite.repository.Update(ctx, missing)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestCustomer creates a valid customer identity with the given login email.
func (suite *CustomerRepositoryIntegrationTestSuite) createTestCustomer(email string) *customer.Customer {
	c, err := customer.NewCustomer(kernel.NewUUID(), "Frau", "Erika", "Mustermann", email, "+49 7121 0000")
	suite.Require().NoError(err)
	return c
}

// assertCustomerCount verifies the number of customers in the database.
func (suite *CustomerRepositoryIntegrationTestSuite) assertCustomerCount(expected int) {
	var count int64
	err := suite.db.Model(&custrepo.CustomerDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestCustomerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerRepositoryIntegrationTestSuite))
}
