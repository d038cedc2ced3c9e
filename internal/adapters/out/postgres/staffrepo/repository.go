// Package staffrepo reads staff members and persists their last-active time.
package staffrepo

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

type StaffDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	FirstName    string `gorm:"type:varchar(64);not null"`
	LastName     string `gorm:"type:varchar(64);not null"`
	Email        string `gorm:"type:varchar(128);uniqueIndex"`
	Role         string `gorm:"type:varchar(8);not null;default:staff"`
	LastActiveAt *time.Time
}

func (StaffDTO) TableName() string {
	return "staff"
}

func toDomain(dto StaffDTO) (*staff.Staff, error) {
	return staff.RestoreStaff(
		staff.ID(dto.ID),
		dto.FirstName,
		dto.LastName,
		dto.Email,
		staff.Role(dto.Role),
		dto.LastActiveAt,
	)
}

// GormStaffRepository implements ports.StaffRepository using GORM.
type GormStaffRepository struct {
	db *gorm.DB
}

func NewGormStaffRepository(db *gorm.DB) *GormStaffRepository {
	return &GormStaffRepository{db: db}
}

func (r *GormStaffRepository) Get(ctx context.Context, id staff.ID) (*staff.Staff, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StaffDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", int64(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("staff", int64(id))
		}
		return nil, errs.NewPersistenceError("load staff", err)
	}

	return toDomain(dto)
}

// Update only writes last_active_at. Names, email and role belong to the
// employee management screens.
func (r *GormStaffRepository) Update(ctx context.Context, member *staff.Staff) error {
	if err := member.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&StaffDTO{}).
		Where("id = ?", int64(member.ID())).
		Update("last_active_at", member.LastActiveAt())
	if result.Error != nil {
		return errs.NewPersistenceError("update staff", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("staff", int64(member.ID()))
	}
	return nil
}
