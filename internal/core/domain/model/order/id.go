package order

import (
	"fmt"
	"strconv"
	"strings"

	"laundry/internal/pkg/errs"
)

// CodePrefix starts every external order code.
const CodePrefix = "WSHY#"

// ID is the positive integer assigned by storage when an order is first saved.
type ID int64

// NewID validates a raw identifier.
func NewID(raw int64) (ID, error) {
	id := ID(raw)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("%d is not greater than 0", int64(id)))
	}
	return nil
}

// Code renders the ID zero-padded to at least three digits: 7 -> "WSHY#007",
// 1000 -> "WSHY#1000".
func (id ID) Code() string {
	return FormatID(int64(id))
}

func (id ID) String() string {
	return id.Code()
}

// FormatID renders a raw order number as a WSHY# code.
func FormatID(raw int64) string {
	return fmt.Sprintf("%s%03d", CodePrefix, raw)
}

// ParseCode accepts either a WSHY# code or a bare number.
func ParseCode(code string) (ID, error) {
	trimmed := strings.TrimSpace(code)
	trimmed = strings.TrimPrefix(strings.ToUpper(trimmed), CodePrefix)
	raw, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("%q is not an order code", code))
	}
	return NewID(raw)
}
