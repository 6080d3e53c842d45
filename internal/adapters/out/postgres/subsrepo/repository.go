package subsrepo

import (
	"context"
	"errors"

	"aboshop/internal/core/domain/model/checkout"
	"aboshop/internal/core/domain/model/kernel"
	"aboshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSubscriptionRepository implements SubscriptionRepository using GORM.
type GormSubscriptionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSubscriptionRepository creates a new GORM subscription repository.
func NewGormSubscriptionRepository(db *gorm.DB, tracker aggregateTracker) *GormSubscriptionRepository {
	return &GormSubscriptionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly submitted subscription order to the database.
func (r *GormSubscriptionRepository) Add(ctx context.Context, record *checkout.Record) error {
	if err := record.OrderID.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.OrderID, record)
	return nil
}

// Get retrieves a subscription order by ID.
func (r *GormSubscriptionRepository) Get(ctx context.Context, orderID kernel.UUID) (*checkout.Record, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto SubscriptionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("subscription", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForCustomer retrieves every subscription order placed by the
// customer, newest first.
func (r *GormSubscriptionRepository) GetAllForCustomer(ctx context.Context, customerID kernel.UUID) ([]*checkout.Record, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []SubscriptionDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "customer_id = ?", customerID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	records := make([]*checkout.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		records = append(records, record)
	}

	return records, nil
}
