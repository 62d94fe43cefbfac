// SPDX-License-Identifier: MIT

package approx

import (
	"fmt"

	"github.com/katalvlaran/ratree"
)

var (
	// ErrNonPositive indicates x that is NaN, infinite or <= 0.
	ErrNonPositive = fmt.Errorf("approx: x must be a finite positive number: %w", ratree.ErrInvalidArgument)

	// ErrBadLength indicates a negative length or a malformed Range.
	ErrBadLength = fmt.Errorf("approx: invalid length or range: %w", ratree.ErrInvalidArgument)

	// ErrExactNode indicates that x reached a tree node exactly before the
	// requested number of moves was produced; the descent has no next move.
	ErrExactNode = fmt.Errorf("approx: x is exactly a node of the tree: %w", ratree.ErrInvalidArgument)
)
