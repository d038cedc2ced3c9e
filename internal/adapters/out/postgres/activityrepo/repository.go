// Package activityrepo appends entries to the staff activity log.
package activityrepo

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/activity"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityDTO is a row of activity_log. OrderID carries no foreign key so the
// history survives order deletion.
type ActivityDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	StaffID      int64     `gorm:"not null;index"`
	ActivityType string    `gorm:"type:varchar(32);not null"`
	OrderID      *int64
	CustomerID   *int64
	ActivityTime time.Time `gorm:"not null;index"`
}

func (ActivityDTO) TableName() string {
	return "activity_log"
}

func fromDomain(e *activity.Entry) ActivityDTO {
	dto := ActivityDTO{
		ID:           e.ID().Bytes(),
		StaffID:      int64(e.StaffID()),
		ActivityType: string(e.Type()),
		ActivityTime: e.At(),
	}
	if id := e.OrderID(); id != nil {
		raw := int64(*id)
		dto.OrderID = &raw
	}
	if id := e.CustomerID(); id != nil {
		raw := int64(*id)
		dto.CustomerID = &raw
	}
	return dto
}

// GormActivityRepository implements ports.ActivityRepository using GORM.
type GormActivityRepository struct {
	db *gorm.DB
}

func NewGormActivityRepository(db *gorm.DB) *GormActivityRepository {
	return &GormActivityRepository{db: db}
}

func (r *GormActivityRepository) Add(ctx context.Context, entry *activity.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("insert activity", err)
	}
	return nil
}
