package order

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

// PaymentMethod is how a customer settled an order.
type PaymentMethod string

const (
	Cash PaymentMethod = "Cash"
	Card PaymentMethod = "Card"
)

// ParsePaymentMethod accepts "cash" or "card" in any case. An empty value
// defaults to Cash, like the finalize dialog.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "cash":
		return Cash, nil
	case "card":
		return Card, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%q is not Cash or Card", raw))
	}
}

func (m PaymentMethod) Validate() error {
	if m != Cash && m != Card {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%q is not Cash or Card", string(m)))
	}
	return nil
}

func (m PaymentMethod) String() string {
	return string(m)
}
