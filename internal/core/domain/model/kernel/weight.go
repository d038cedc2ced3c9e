package kernel

import (
	"fmt"
	"math"

	"laundry/internal/pkg/errs"
)

const (
	// MaxWeightHundredths is the 7.00 kg machine load limit.
	MaxWeightHundredths = 700
	minWeightHundredths = 1
)

// Weight is a laundry load weight in hundredths of a kilogram, 0.01 to 7.00 kg.
type Weight struct {
	hundredths int
}

// NewWeight validates a weight given in kilograms. At most two decimals are accepted.
func NewWeight(kg float64) (Weight, error) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not a number", kg))
	}
	scaled := kg * 100
	rounded := math.Round(scaled)
	if math.Abs(scaled-rounded) > 1e-6 {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v has more than two decimals", kg))
	}
	return NewWeightFromHundredths(int(rounded))
}

// NewWeightFromHundredths is used when restoring from storage.
func NewWeightFromHundredths(hundredths int) (Weight, error) {
	if hundredths < minWeightHundredths || hundredths > MaxWeightHundredths {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", formatHundredths(hundredths), "0.01", "7.00")
	}
	return Weight{hundredths: hundredths}, nil
}

func (w Weight) Hundredths() int {
	return w.hundredths
}

func (w Weight) Kilograms() float64 {
	return float64(w.hundredths) / 100
}

func (w Weight) Validate() error {
	if w.hundredths < minWeightHundredths || w.hundredths > MaxWeightHundredths {
		return errs.NewValueIsRequiredError("weight")
	}
	return nil
}

func (w Weight) String() string {
	return formatHundredths(w.hundredths)
}

func formatHundredths(h int) string {
	sign := ""
	if h < 0 {
		sign = "-"
		h = -h
	}
	return fmt.Sprintf("%s%d.%02d", sign, h/100, h%100)
}
