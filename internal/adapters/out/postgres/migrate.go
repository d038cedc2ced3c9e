package postgres

import (
	"laundry/internal/adapters/out/postgres/activityrepo"
	"laundry/internal/adapters/out/postgres/customerrepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/staffrepo"

	"gorm.io/gorm"
)

// Models lists every table of the laundry schema in dependency order.
func Models() []any {
	return []any{
		&customerrepo.CustomerDTO{},
		&customerrepo.AddressDTO{},
		&staffrepo.StaffDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderServiceDTO{},
		&orderrepo.TransactionDTO{},
		&activityrepo.ActivityDTO{},
	}
}

// AutoMigrate creates or updates the schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
