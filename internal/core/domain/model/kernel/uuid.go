package kernel

import (
	"fmt"

	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies payments, activity log lines and order events. The nil UUID
// is never a valid identifier.
type UUID struct {
	value uuid.UUID
}

// NewUUID generates a random (version 4) UUID.
func NewUUID() UUID {
	return UUID{value: uuid.New()}
}

// UUIDFromString parses any format accepted by uuid.Parse.
func UUIDFromString(s string) (UUID, error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", fmt.Errorf("invalid UUID format: %w", err))
	}
	return restoreUUID(parsed)
}

// UUIDFromBytes rebuilds a UUID stored in its 16-byte form.
func UUIDFromBytes(b []byte) (UUID, error) {
	parsed, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", fmt.Errorf("invalid UUID format: %w", err))
	}
	return restoreUUID(parsed)
}

func restoreUUID(value uuid.UUID) (UUID, error) {
	u := UUID{value: value}
	if err := u.Validate(); err != nil {
		return UUID{}, err
	}
	return u, nil
}

// Bytes hands the raw value to persistence adapters, which store it in uuid columns.
func (u UUID) Bytes() uuid.UUID { return u.value }

func (u UUID) String() string { return u.value.String() }

func (u UUID) IsEqual(other UUID) bool { return u.value == other.value }

func (u UUID) Validate() error {
	if u.value == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
