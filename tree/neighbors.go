package tree

import (
	"fmt"

	"github.com/katalvlaran/ratree/lrpath"
	"github.com/katalvlaran/ratree/rational"
)

// Father returns the father of a Stern-Brocot node: the value at its path
// with the last move dropped.
//
// Errors:
//   - ErrNoFather for the root 1/1.
//   - normalization errors of in (see rational.Normalize).
//
// Complexity: O(num+den).
func Father(in rational.Input) (rational.Fraction, error) {
	f, err := rational.Normalize(in)
	if err != nil {
		return rational.Fraction{}, fmt.Errorf("Father: %w", err)
	}
	if f == rational.One {
		return rational.Fraction{}, fmt.Errorf("Father(%v): %w", f, ErrNoFather)
	}

	p, err := SternBrocotPath(f)
	if err != nil {
		return rational.Fraction{}, fmt.Errorf("Father(%v): %w", f, err)
	}
	parent, err := p.Parent()
	if err != nil {
		return rational.Fraction{}, fmt.Errorf("Father(%v): %w", f, err)
	}

	return SternBrocot(parent)
}

// Sons returns the left and right sons of a Stern-Brocot node: the values
// at its path extended by L and by R. left < f < right.
//
// Errors: normalization errors of in, matrix.ErrOverflow when a son does
// not fit int64.
// Complexity: O(num+den).
func Sons(in rational.Input) (left, right rational.Fraction, err error) {
	f, err := rational.Normalize(in)
	if err != nil {
		return left, right, fmt.Errorf("Sons: %w", err)
	}
	p, err := SternBrocotPath(f)
	if err != nil {
		return left, right, fmt.Errorf("Sons(%v): %w", f, err)
	}
	if left, err = SternBrocot(p.Append(lrpath.Left)); err != nil {
		return rational.Fraction{}, rational.Fraction{}, fmt.Errorf("Sons(%v): %w", f, err)
	}
	if right, err = SternBrocot(p.Append(lrpath.Right)); err != nil {
		return rational.Fraction{}, rational.Fraction{}, fmt.Errorf("Sons(%v): %w", f, err)
	}

	return left, right, nil
}
