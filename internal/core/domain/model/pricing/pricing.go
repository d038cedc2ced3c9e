// Package pricing computes laundry charges from the fixed service catalog.
//
// Washing is always charged; fast dry, iron only and fold are optional add-ons.
// Every service is priced per kilogram per load:
//
//	wash      = 100.00 * weight * quantity
//	fast dry  = 140.00 * weight * quantity   (if selected)
//	iron only =  50.00 * weight * quantity   (if selected)
//	fold      =  30.00 * weight * quantity   (if selected)
//
// Quote is a pure function: the same inputs always give the same Breakdown.
package pricing

import (
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// Per-kilogram rates in cents.
var (
	WashRate     = kernel.MustMoney(10000)
	FastDryRate  = kernel.MustMoney(14000)
	IronOnlyRate = kernel.MustMoney(5000)
	FoldRate     = kernel.MustMoney(3000)
)

// ServiceName is the catalog name stored on every order service line.
const ServiceName = "Laundry Service"

// MaxQuantity is the most loads a single order may carry. At 7.00 kg with
// every add-on the total stays well inside int64 cents.
const MaxQuantity = 100

// AddOns are the optional services selected on top of washing.
type AddOns struct {
	FastDry  bool
	IronOnly bool
	Fold     bool
}

// Breakdown is the charge for each service of one order.
type Breakdown struct {
	Wash     kernel.Money
	FastDry  kernel.Money
	IronOnly kernel.Money
	Fold     kernel.Money
}

// Total is the sum of the four service charges.
func (b Breakdown) Total() kernel.Money {
	return b.Wash.Add(b.FastDry).Add(b.IronOnly).Add(b.Fold)
}

// ValidateQuantity rejects quantities below one load or above MaxQuantity.
func ValidateQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity)
	}
	return nil
}

// Quote prices quantity loads of weight w with the selected add-ons.
func Quote(w kernel.Weight, quantity int, addOns AddOns) (Breakdown, error) {
	if err := w.Validate(); err != nil {
		return Breakdown{}, err
	}
	if err := ValidateQuantity(quantity); err != nil {
		return Breakdown{}, err
	}

	b := Breakdown{
		Wash:     WashRate.PerWeight(w, quantity),
		FastDry:  kernel.Zero,
		IronOnly: kernel.Zero,
		Fold:     kernel.Zero,
	}
	if addOns.FastDry {
		b.FastDry = FastDryRate.PerWeight(w, quantity)
	}
	if addOns.IronOnly {
		b.IronOnly = IronOnlyRate.PerWeight(w, quantity)
	}
	if addOns.Fold {
		b.Fold = FoldRate.PerWeight(w, quantity)
	}
	return b, nil
}
