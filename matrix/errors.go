// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every sentinel wraps one of the ratree error kinds, so callers may test
// either errors.Is(err, ErrNegativeExponent) or
// errors.Is(err, ratree.ErrInvalidArgument).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/ratree"
)

var (
	// ErrNegativeExponent is returned by Pow for n < 0.
	ErrNegativeExponent = fmt.Errorf("matrix: negative exponent: %w", ratree.ErrInvalidArgument)

	// ErrOverflow indicates an entry that does not fit int64.
	ErrOverflow = fmt.Errorf("matrix: %w", ratree.ErrOverflow)
)

// Operation names used as error context.
const (
	opMul     = "Mul"
	opPow     = "Pow"
	opCompose = "Compose"
	opForMove = "ForMove"
	opMulCol  = "MulCol"
	opMulRow  = "MulRow"
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
