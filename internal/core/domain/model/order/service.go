package order

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrServiceIsNotConstructed = errors.New("Service must be created via NewService or RestoreService")

// Service is the priced line of an order: weight, number of loads, selected
// add-ons and the charge for each service.
type Service struct {
	weight    kernel.Weight
	quantity  int
	addOns    pricing.AddOns
	breakdown pricing.Breakdown

	guard guard.ConstructorGuard
}

// NewService validates the inputs and prices them from the catalog.
func NewService(weight kernel.Weight, quantity int, addOns pricing.AddOns) (*Service, error) {
	breakdown, err := pricing.Quote(weight, quantity, addOns)
	if err != nil {
		return nil, err
	}
	return &Service{
		weight:    weight,
		quantity:  quantity,
		addOns:    addOns,
		breakdown: breakdown,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreService rebuilds a stored line with the amounts that were charged.
// An unselected add-on must carry a zero amount.
func RestoreService(weight kernel.Weight, quantity int, addOns pricing.AddOns, breakdown pricing.Breakdown) (*Service, error) {
	var addOnErrs []error
	if !addOns.FastDry && !breakdown.FastDry.IsZero() {
		addOnErrs = append(addOnErrs, errs.NewValueIsInvalidError("fastDryAmount"))
	}
	if !addOns.IronOnly && !breakdown.IronOnly.IsZero() {
		addOnErrs = append(addOnErrs, errs.NewValueIsInvalidError("ironOnlyAmount"))
	}
	if !addOns.Fold && !breakdown.Fold.IsZero() {
		addOnErrs = append(addOnErrs, errs.NewValueIsInvalidError("foldAmount"))
	}
	if err := errors.Join(append(addOnErrs, weight.Validate(), pricing.ValidateQuantity(quantity))...); err != nil {
		return nil, err
	}

	return &Service{
		weight:    weight,
		quantity:  quantity,
		addOns:    addOns,
		breakdown: breakdown,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (s *Service) Validate() error {
	if s == nil {
		return ErrServiceIsNotConstructed
	}
	return s.guard.Validate(ErrServiceIsNotConstructed)
}

func (s *Service) Weight() kernel.Weight        { return s.weight }
func (s *Service) Quantity() int                { return s.quantity }
func (s *Service) AddOns() pricing.AddOns       { return s.addOns }
func (s *Service) Breakdown() pricing.Breakdown { return s.breakdown }
func (s *Service) Total() kernel.Money          { return s.breakdown.Total() }
