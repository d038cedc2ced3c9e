// Package orderrepo maps the order aggregate, its service line and its payment
// transactions onto the orders, order_services and transactions tables.
package orderrepo

import (
	"time"

	"laundry/internal/adapters/out/postgres/customerrepo"
	"laundry/internal/adapters/out/postgres/staffrepo"
	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// OrderDTO is a row of the orders table. TotalCents duplicates the service
// line total so list and statistics queries need no join. Customer and Staff
// are never loaded; they only declare the foreign keys for AutoMigrate.
type OrderDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	CustomerID  int64     `gorm:"not null;index"`
	StaffID     int64     `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"not null;index"`
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	Status      string `gorm:"type:varchar(16);not null;index"`
	TotalCents  int64  `gorm:"not null"`
	Version     int    `gorm:"not null;default:0"`

	Customer *customerrepo.CustomerDTO `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Staff    *staffrepo.StaffDTO       `gorm:"foreignKey:StaffID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	Service      OrderServiceDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Transactions []TransactionDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderServiceDTO is the single service line of an order.
type OrderServiceDTO struct {
	OrderID          int64  `gorm:"primaryKey;autoIncrement:false"`
	ServiceName      string `gorm:"type:varchar(64);not null"`
	WeightHundredths int    `gorm:"not null"`
	Quantity         int    `gorm:"not null"`
	FastDry          bool   `gorm:"not null"`
	IronOnly         bool   `gorm:"not null"`
	Fold             bool   `gorm:"not null"`
	WashCents        int64  `gorm:"not null"`
	FastDryCents     int64  `gorm:"not null"`
	IronOnlyCents    int64  `gorm:"not null"`
	FoldCents        int64  `gorm:"not null"`
	TotalCents       int64  `gorm:"not null"`
}

func (OrderServiceDTO) TableName() string {
	return "order_services"
}

// TransactionDTO is a recorded payment.
type TransactionDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       int64     `gorm:"not null;uniqueIndex"`
	AmountCents   int64     `gorm:"not null"`
	PaymentMethod string    `gorm:"type:varchar(8);not null"`
	StaffID       int64     `gorm:"not null"`
	PaidAt        time.Time `gorm:"not null"`
}

func (TransactionDTO) TableName() string {
	return "transactions"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:          int64(o.ID()),
		CustomerID:  int64(o.CustomerID()),
		StaffID:     int64(o.StaffID()),
		CreatedAt:   o.CreatedAt(),
		PickedUpAt:  o.PickedUpAt(),
		DeliveredAt: o.DeliveredAt(),
		Status:      o.Status().String(),
		TotalCents:  o.Total().Cents(),
		Version:     o.Version(),
		Service:     serviceFromDomain(o.ID(), o.Service()),
	}
}

func serviceFromDomain(id order.ID, s *order.Service) OrderServiceDTO {
	b := s.Breakdown()
	return OrderServiceDTO{
		OrderID:          int64(id),
		ServiceName:      pricing.ServiceName,
		WeightHundredths: s.Weight().Hundredths(),
		Quantity:         s.Quantity(),
		FastDry:          s.AddOns().FastDry,
		IronOnly:         s.AddOns().IronOnly,
		Fold:             s.AddOns().Fold,
		WashCents:        b.Wash.Cents(),
		FastDryCents:     b.FastDry.Cents(),
		IronOnlyCents:    b.IronOnly.Cents(),
		FoldCents:        b.Fold.Cents(),
		TotalCents:       s.Total().Cents(),
	}
}

func transactionFromDomain(tx *order.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:            tx.ID().Bytes(),
		OrderID:       int64(tx.OrderID()),
		AmountCents:   tx.Amount().Cents(),
		PaymentMethod: tx.Method().String(),
		StaffID:       int64(tx.StaffID()),
		PaidAt:        tx.PaidAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	service, err := serviceToDomain(dto.Service)
	if err != nil {
		return nil, err
	}

	var tx *order.Transaction
	if len(dto.Transactions) > 0 {
		if tx, err = transactionToDomain(dto.Transactions[0]); err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(order.Snapshot{
		ID:          order.ID(dto.ID),
		CustomerID:  customer.ID(dto.CustomerID),
		StaffID:     staff.ID(dto.StaffID),
		CreatedAt:   dto.CreatedAt,
		PickedUpAt:  dto.PickedUpAt,
		DeliveredAt: dto.DeliveredAt,
		Status:      status,
		Service:     service,
		Transaction: tx,
		Version:     dto.Version,
	})
}

func serviceToDomain(dto OrderServiceDTO) (*order.Service, error) {
	weight, err := kernel.NewWeightFromHundredths(dto.WeightHundredths)
	if err != nil {
		return nil, err
	}

	amounts := make([]kernel.Money, 0, 4)
	for _, cents := range []int64{dto.WashCents, dto.FastDryCents, dto.IronOnlyCents, dto.FoldCents} {
		m, moneyErr := kernel.NewMoney(cents)
		if moneyErr != nil {
			return nil, moneyErr
		}
		amounts = append(amounts, m)
	}

	return order.RestoreService(
		weight,
		dto.Quantity,
		pricing.AddOns{FastDry: dto.FastDry, IronOnly: dto.IronOnly, Fold: dto.Fold},
		pricing.Breakdown{Wash: amounts[0], FastDry: amounts[1], IronOnly: amounts[2], Fold: amounts[3]},
	)
}

func transactionToDomain(dto TransactionDTO) (*order.Transaction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoney(dto.AmountCents)
	if err != nil {
		return nil, err
	}
	method, err := order.ParsePaymentMethod(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	return order.RestoreTransaction(id, order.ID(dto.OrderID), amount, method, staff.ID(dto.StaffID), dto.PaidAt)
}
