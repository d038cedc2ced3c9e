// Package customerrepo reads customers and their addresses. Customers are
// written by the customer management screens, so the repository only loads.
package customerrepo

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/customer"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

type CustomerDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	FirstName  string    `gorm:"type:varchar(64);not null"`
	MiddleName string    `gorm:"type:varchar(64)"`
	LastName   string    `gorm:"type:varchar(64);not null;index"`
	Email      string    `gorm:"type:varchar(128)"`
	Phone      string    `gorm:"type:varchar(32)"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index"`

	Addresses []AddressDTO `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

type AddressDTO struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	CustomerID int64  `gorm:"not null;index"`
	Street     string `gorm:"type:varchar(128);not null"`
	Unit       string `gorm:"type:varchar(32)"`
	City       string `gorm:"type:varchar(64);not null"`
	ZipCode    string `gorm:"type:varchar(16)"`
}

func (AddressDTO) TableName() string {
	return "addresses"
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	addresses := make([]customer.Address, 0, len(dto.Addresses))
	for _, a := range dto.Addresses {
		addresses = append(addresses, customer.Address{
			ID:      a.ID,
			Street:  a.Street,
			Unit:    a.Unit,
			City:    a.City,
			ZipCode: a.ZipCode,
		})
	}
	return customer.RestoreCustomer(
		customer.ID(dto.ID),
		dto.FirstName,
		dto.MiddleName,
		dto.LastName,
		dto.Email,
		dto.Phone,
		addresses,
	)
}

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) Get(ctx context.Context, id customer.ID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	err := r.db.WithContext(ctx).
		Preload("Addresses", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&dto, "id = ?", int64(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", int64(id))
		}
		return nil, errs.NewPersistenceError("load customer", err)
	}

	return toDomain(dto)
}
