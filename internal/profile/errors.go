package profile

import (
	"errors"
	"fmt"
	"math"
)

var (
	errUnknownFunction = errors.New("unknown function")
	errNoSweeps        = errors.New("config has no sweeps")
)

func validateSamples(samples int) error {
	if samples < 2 {
		return fmt.Errorf("sweep needs at least 2 samples: %d", samples)
	}
	return nil
}

func validateRange(min, max float64) error {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return fmt.Errorf("sweep range must be finite: [%g, %g]", min, max)
	}
	if min >= max {
		return fmt.Errorf("sweep range must have min < max: [%g, %g]", min, max)
	}
	return nil
}
