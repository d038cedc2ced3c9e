// Package customer holds the customer reference data an order points at.
// Customers are created and edited elsewhere; the order engine only checks
// that they exist and reads their names for listings.
package customer

import (
	"errors"
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via RestoreCustomer")

type ID int64

func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsRequiredErrorWithCause("customerId", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

// Address is one pickup/delivery address of a customer.
type Address struct {
	ID      int64
	Street  string
	Unit    string
	City    string
	ZipCode string
}

// String renders the address on one line.
func (a Address) String() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Street, a.Unit, a.City, a.ZipCode} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

type Customer struct {
	id         ID
	firstName  string
	middleName string
	lastName   string
	email      string
	phone      string
	addresses  []Address

	guard guard.ConstructorGuard
}

func RestoreCustomer(id ID, firstName, middleName, lastName, email, phone string, addresses []Address) (*Customer, error) {
	var nameErr error
	if strings.TrimSpace(firstName) == "" {
		nameErr = errs.NewValueIsRequiredError("firstName")
	}
	if err := errors.Join(id.Validate(), nameErr); err != nil {
		return nil, err
	}

	return &Customer{
		id:         id,
		firstName:  strings.TrimSpace(firstName),
		middleName: strings.TrimSpace(middleName),
		lastName:   strings.TrimSpace(lastName),
		email:      email,
		phone:      phone,
		addresses:  append([]Address(nil), addresses...),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() ID        { return c.id }
func (c *Customer) Email() string { return c.email }
func (c *Customer) Phone() string { return c.phone }

// Addresses returns a copy of the customer's addresses.
func (c *Customer) Addresses() []Address {
	return append([]Address(nil), c.addresses...)
}

// FullName joins first, middle and last name, skipping empty parts.
func (c *Customer) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.firstName, c.middleName, c.lastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
