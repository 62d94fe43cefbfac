// SPDX-License-Identifier: MIT

package rational

import (
	"fmt"

	"github.com/katalvlaran/ratree"
)

var (
	// ErrNonPositive indicates a numerator or denominator <= 0.
	ErrNonPositive = fmt.Errorf("rational: numerator and denominator must be positive: %w", ratree.ErrInvalidArgument)

	// ErrNotCoprime indicates a pair sharing a common factor > 1.
	ErrNotCoprime = fmt.Errorf("rational: %w", ratree.ErrNotCoprime)

	// ErrSyntax indicates text that does not parse as a fraction.
	ErrSyntax = fmt.Errorf("rational: malformed fraction text: %w", ratree.ErrInvalidArgument)

	// ErrNilInput indicates a nil Input.
	ErrNilInput = fmt.Errorf("rational: nil input: %w", ratree.ErrInvalidArgument)

	// ErrOverflow indicates a result that does not fit int64.
	ErrOverflow = fmt.Errorf("rational: %w", ratree.ErrOverflow)
)
