package orderrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker collects the orders written in a unit of work so their
// events can be published after commit.
type aggregateTracker interface {
	TrackAggregate(aggregate *order.Order)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order and its service line, then hands the generated
// identifier back to the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("insert order", err)
	}

	if err := aggregate.AssignID(order.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Update writes the order only if the stored version still equals the one
// the aggregate was loaded with.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"staff_id":     dto.StaffID,
			"picked_up_at": dto.PickedUpAt,
			"delivered_at": dto.DeliveredAt,
			"status":       dto.Status,
			"total_cents":  dto.TotalCents,
			"version":      gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return errs.NewPersistenceError("update order", result.Error)
	}
	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, aggregate)
	}

	if err := r.db.WithContext(ctx).Save(&dto.Service).Error; err != nil {
		return errs.NewPersistenceError("update order service", err)
	}

	aggregate.AdvanceVersion()
	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Get loads an order with its service line and payment.
func (r *GormOrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Transactions").
		First(&dto, "id = ?", int64(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.Code())
		}
		return nil, errs.NewPersistenceError("load order", err)
	}

	return toDomain(dto)
}

// Delete removes the order, its service line and its payments. The version
// check of Update applies.
func (r *GormOrderRepository) Delete(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := int64(aggregate.ID())
	current := r.db.Model(&OrderDTO{}).Select("id").Where("id = ? AND version = ?", id, aggregate.Version())

	db := r.db.WithContext(ctx)
	if err := db.Where("order_id IN (?)", current).Delete(&TransactionDTO{}).Error; err != nil {
		return errs.NewPersistenceError("delete transactions", err)
	}
	if err := db.Where("order_id IN (?)", current).Delete(&OrderServiceDTO{}).Error; err != nil {
		return errs.NewPersistenceError("delete order service", err)
	}

	result := db.Where("id = ? AND version = ?", id, aggregate.Version()).Delete(&OrderDTO{})
	if result.Error != nil {
		return errs.NewPersistenceError("delete order", result.Error)
	}
	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, aggregate)
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormOrderRepository) missingOrStale(ctx context.Context, aggregate *order.Order) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", int64(aggregate.ID())).Count(&count).Error; err != nil {
		return errs.NewPersistenceError("check order", err)
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.Code())
	}
	return errs.NewVersionIsInvalidError("order " + aggregate.Code())
}

// GormTransactionRepository implements ports.TransactionRepository.
type GormTransactionRepository struct {
	db *gorm.DB
}

func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// Add inserts a payment. A second payment for the same order is rejected by
// the unique index on order_id.
func (r *GormTransactionRepository) Add(ctx context.Context, tx *order.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	dto := transactionFromDomain(tx)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("insert transaction", err)
	}
	return nil
}
