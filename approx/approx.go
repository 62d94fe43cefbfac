// SPDX-License-Identifier: MIT

package approx

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ratree/lrpath"
	"github.com/katalvlaran/ratree/matrix"
	"github.com/katalvlaran/ratree/rational"
)

// Path returns the first n moves of the Stern-Brocot descent towards x.
//
// Errors:
//   - ErrNonPositive: x is NaN, ±Inf or <= 0.
//   - ErrBadLength: n < 0.
//   - ErrExactNode: x equals the current node (x == 1 at the start of a
//     step) before n moves were produced.
//
// Complexity: O(n).
func Path(x float64, n int) (lrpath.Path, error) {
	if err := checkX(x); err != nil {
		return lrpath.Root, fmt.Errorf("Path(%v,%d): %w", x, n, err)
	}
	if n < 0 {
		return lrpath.Root, fmt.Errorf("Path(%v,%d): %w", x, n, ErrBadLength)
	}

	return descend(x, n)
}

// Fractions returns the Stern-Brocot values of the prefixes of Path(x, n)
// of length 1..n, in order. n == 0 yields an empty slice.
//
// Errors: as Path, plus matrix.ErrOverflow when a prefix value does not
// fit int64.
// Complexity: O(n).
func Fractions(x float64, n int) ([]rational.Fraction, error) {
	if n < 0 {
		return nil, fmt.Errorf("Fractions(%v,%d): %w", x, n, ErrBadLength)
	}
	out, err := FractionsIn(x, Range{Start: 1, Stop: n + 1, Step: 1})
	if err != nil {
		return nil, fmt.Errorf("Fractions(%v,%d): %w", x, n, err)
	}

	return out, nil
}

// descend runs the descent rule for n moves; x is already validated.
func descend(x float64, n int) (lrpath.Path, error) {
	buf := make([]byte, 0, n)
	for len(buf) < n {
		switch {
		case x == 1:
			return lrpath.Root, fmt.Errorf("after %q: %w", string(buf), ErrExactNode)
		case x < 1:
			buf = append(buf, byte(lrpath.Left))
			x /= 1 - x
		default:
			buf = append(buf, byte(lrpath.Right))
			x--
		}
	}

	return lrpath.Path(buf), nil
}

// prefixValues evaluates the prefixes of p whose lengths r selects, keeping
// one running product.
func prefixValues(p lrpath.Path, r Range) ([]rational.Fraction, error) {
	out := make([]rational.Fraction, 0, r.Len())
	acc := matrix.Identity
	next := r.Start
	for k := 0; k <= p.Len() && next < r.Stop; k++ {
		if k > 0 {
			var err error
			if acc, err = matrix.Step(acc, p.At(k-1)); err != nil {
				return nil, err
			}
		}
		if k != next {
			continue
		}
		v, err := acc.MulCol(matrix.Ones)
		if err != nil {
			return nil, err
		}
		out = append(out, rational.Fraction{Num: v[1], Den: v[0]})
		next += r.Step
	}

	return out, nil
}

// checkX rejects NaN, infinities and non-positive values.
func checkX(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) || x <= 0 {
		return ErrNonPositive
	}

	return nil
}
