// Package staff models the employees that act on orders. Staff and Admin are
// two privilege tiers of the same employee record; both can be attached to
// orders and activity entries.
package staff

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrStaffIsNotConstructed = errors.New("Staff must be created via RestoreStaff")

// ID identifies a staff member.
type ID int64

func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("staffId", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

// Role is the privilege tier of an employee.
type Role string

const (
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

func (r Role) Validate() error {
	if r != RoleStaff && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
	return nil
}

// Staff is reference data owned by the employee management screens. The
// order engine only reads it and refreshes LastActiveAt.
type Staff struct {
	id           ID
	firstName    string
	lastName     string
	email        string
	role         Role
	lastActiveAt *time.Time

	guard guard.ConstructorGuard
}

// RestoreStaff rebuilds a staff member from storage.
func RestoreStaff(id ID, firstName, lastName, email string, role Role, lastActiveAt *time.Time) (*Staff, error) {
	s := &Staff{
		id:           id,
		firstName:    strings.TrimSpace(firstName),
		lastName:     strings.TrimSpace(lastName),
		email:        email,
		role:         role,
		lastActiveAt: lastActiveAt,
		guard:        guard.NewConstructorGuard(),
	}

	var nameErr error
	if s.firstName == "" {
		nameErr = errs.NewValueIsRequiredError("firstName")
	}
	if err := errors.Join(id.Validate(), role.Validate(), nameErr); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Staff) Validate() error {
	if s == nil {
		return ErrStaffIsNotConstructed
	}
	return s.guard.Validate(ErrStaffIsNotConstructed)
}

func (s *Staff) ID() ID                   { return s.id }
func (s *Staff) FirstName() string        { return s.firstName }
func (s *Staff) LastName() string         { return s.lastName }
func (s *Staff) Email() string            { return s.email }
func (s *Staff) Role() Role               { return s.role }
func (s *Staff) LastActiveAt() *time.Time { return s.lastActiveAt }

// FullName joins first and last name.
func (s *Staff) FullName() string {
	return strings.TrimSpace(s.firstName + " " + s.lastName)
}

// Touch records activity at the given time.
func (s *Staff) Touch(at time.Time) {
	s.lastActiveAt = &at
}
