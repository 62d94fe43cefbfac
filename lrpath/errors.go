// SPDX-License-Identifier: MIT

package lrpath

import (
	"fmt"

	"github.com/katalvlaran/ratree"
)

// Sentinel errors of the lrpath package. Every one of them wraps
// ratree.ErrInvalidArgument, so callers may match the kind or the cause.
var (
	// ErrUnknownMove indicates a path symbol other than 'L' or 'R'.
	ErrUnknownMove = fmt.Errorf("lrpath: unknown move symbol: %w", ratree.ErrInvalidArgument)

	// ErrNegativeLevel indicates a level < 0.
	ErrNegativeLevel = fmt.Errorf("lrpath: negative level: %w", ratree.ErrInvalidArgument)

	// ErrLevelTooDeep indicates a level whose indices do not fit in an int.
	ErrLevelTooDeep = fmt.Errorf("lrpath: level exceeds MaxIndexLevel: %w", ratree.ErrInvalidArgument)

	// ErrIndexOutOfRange indicates an index outside [0, 2^level).
	ErrIndexOutOfRange = fmt.Errorf("lrpath: index out of range for level: %w", ratree.ErrInvalidArgument)

	// ErrEmptyPath indicates an operation that needs at least one move
	// (Parent, Last) was applied to the root path.
	ErrEmptyPath = fmt.Errorf("lrpath: empty path: %w", ratree.ErrInvalidArgument)

	// ErrPrefixLength indicates a prefix length outside [0, Len()].
	ErrPrefixLength = fmt.Errorf("lrpath: prefix length out of range: %w", ratree.ErrInvalidArgument)
)
