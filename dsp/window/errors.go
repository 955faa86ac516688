package window

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidSize reports a kernel length that is not a positive odd number.
	ErrInvalidSize = errors.New("window: invalid kernel size")
	// ErrInvalidSigma reports a non-finite Gaussian sigma.
	ErrInvalidSigma = errors.New("window: invalid sigma")

	errZeroSum          = errors.New("window: coefficients sum to zero")
	errMismatchedLength = errors.New("window: samples and coefficients must have same length")
)

func validateKernelSize(size int) error {
	if size <= 0 || size%2 == 0 {
		return fmt.Errorf("%w: %d (must be odd and > 0)", ErrInvalidSize, size)
	}
	return nil
}

func validateSigma(sigma float64) error {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSigma, sigma)
	}
	return nil
}
