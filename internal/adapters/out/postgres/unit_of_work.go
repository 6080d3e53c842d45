// Package postgres implements the persistence ports on top of GORM.
//
// GormUnitOfWork spans the customer and subscription repositories with a
// single database transaction, so commands that touch both (order
// submission: new customer record plus its first subscription) either
// commit everything or nothing. It also collects the aggregates modified
// during the transaction, which gives post-commit code (confirmation
// sending, event publishing) a place to look up what changed.
//
// A typical command handler obtains a fresh instance from the factory,
// calls Begin, performs repository operations, and finishes with Commit
// or Rollback:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	if err := uow.CustomerRepository().Add(ctx, cust); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//	if err := uow.SubscriptionRepository().Add(ctx, record); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//	return uow.Commit(ctx)
//
// A unit of work is not safe for concurrent use; concurrent handlers each
// create their own instance. Repository accessors called without Begin
// operate directly on the shared connection in auto-commit mode.
package postgres

import (
	"context"

	"aboshop/internal/adapters/out/postgres/custrepo"
	"aboshop/internal/adapters/out/postgres/subsrepo"
	"aboshop/internal/core/domain/model/kernel"
	"aboshop/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate recorded as modified within the
// current unit of work, kept for post-commit processing.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{} // no common Aggregate interface yet
}

// GormUnitOfWorkFactory hands out fresh unit of work instances bound to a
// shared GORM connection.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a new UnitOfWork with its own transaction state and
// aggregate list. Instances must not be shared between goroutines.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork implements ports.UnitOfWork on a GORM connection. While a
// transaction is open the repository accessors route through it; otherwise
// they fall back to the base connection.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin opens a database transaction. Calling Begin again while a
// transaction is already open is a no-op, not a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit makes the transaction's changes permanent and closes it.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction's changes and closes it.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// CustomerRepository returns a customer repository bound to the open
// transaction, or to the base connection when none is open. Added and
// updated customers are tracked on this unit of work.
func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return custrepo.NewGormCustomerRepository(db, uow)
}

// SubscriptionRepository returns a subscription repository bound to the
// open transaction, or to the base connection when none is open.
func (uow *GormUnitOfWork) SubscriptionRepository() ports.SubscriptionRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return subsrepo.NewGormSubscriptionRepository(db, uow)
}

// TrackAggregate records an aggregate as modified within this unit of
// work. Called by the repositories on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
