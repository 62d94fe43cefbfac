// SPDX-License-Identifier: MIT

package ratree

import "errors"

// Error kinds shared by every ratree package.
//
// Packages declare their own, more specific sentinels and wrap one of these
// kinds with %w, so a caller can branch either on the precise cause
// (errors.Is(err, lrpath.ErrUnknownMove)) or on the kind
// (errors.Is(err, ratree.ErrInvalidArgument)).
var (
	// ErrInvalidArgument marks a malformed or out-of-domain input: unknown
	// move symbol, index outside its level, negative exponent, unparsable
	// fraction text, non-positive real number.
	ErrInvalidArgument = errors.New("ratree: invalid argument")

	// ErrNotCoprime marks a numerator/denominator pair sharing a factor > 1.
	// Such a pair is not a node of either tree.
	ErrNotCoprime = errors.New("ratree: numerator and denominator are not coprime")

	// ErrNoFather is returned when the father of the root 1/1 is requested.
	ErrNoFather = errors.New("ratree: the root has no father")

	// ErrOverflow marks an exact int64 computation whose result does not fit.
	ErrOverflow = errors.New("ratree: int64 overflow")
)
