// SPDX-License-Identifier: MIT
// Package: fraunhofer/diffraction
//
// errors.go - the single validation sentinel of the diffraction models.
//
// Error policy:
//   - Every model validates its parameters before deriving any constant.
//   - Failures return ErrInvalidParameter wrapped with the model name and
//     the offending values; callers branch with errors.Is.
//   - A failed call returns a nil *Result. Nothing is retried.

package diffraction

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates a physically meaningless model input:
// N not an integer ≥ 2, a ≤ 0, d ≤ 0, or a ≥ d.
var ErrInvalidParameter = errors.New("diffraction: invalid parameter")

// invalidf wraps ErrInvalidParameter with the model name and a formatted
// reason: "<model>: <reason>: diffraction: invalid parameter".
func invalidf(model, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", model, fmt.Sprintf(format, args...), ErrInvalidParameter)
}
