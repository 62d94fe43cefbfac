// SPDX-License-Identifier: MIT

package rational

import (
	"fmt"
	"math/bits"
)

// Normalize converts any Input into its canonical Fraction.
//
// Errors:
//   - ErrNilInput: in == nil.
//   - ErrNonPositive: a component <= 0.
//   - ErrNotCoprime: a Pair or Fraction whose components share a factor.
//   - ErrSyntax: Text that does not parse.
func Normalize(in Input) (Fraction, error) {
	if in == nil {
		return Fraction{}, ErrNilInput
	}

	return in.normalize()
}

// New returns num/den, requiring num, den > 0 and gcd(num, den) = 1.
// Complexity: O(log min(num, den)).
func New(num, den int64) (Fraction, error) {
	if num <= 0 || den <= 0 {
		return Fraction{}, fmt.Errorf("New(%d,%d): %w", num, den, ErrNonPositive)
	}
	if g := GCD(num, den); g != 1 {
		return Fraction{}, fmt.Errorf("New(%d,%d): common factor %d: %w", num, den, g, ErrNotCoprime)
	}

	return Fraction{Num: num, Den: den}, nil
}

// MustNew is like New but panics on error. Intended for literals.
func MustNew(num, den int64) Fraction {
	f, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return f
}

// Reduce returns num/den in lowest terms; num, den must be > 0.
func Reduce(num, den int64) (Fraction, error) {
	if num <= 0 || den <= 0 {
		return Fraction{}, fmt.Errorf("Reduce(%d,%d): %w", num, den, ErrNonPositive)
	}
	g := GCD(num, den)

	return Fraction{Num: num / g, Den: den / g}, nil
}

// GCD returns the greatest common divisor of |a| and |b| (Euclid).
// GCD(0, 0) = 0.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Valid reports whether f is positive and in lowest terms.
func (f Fraction) Valid() bool {
	return f.Num > 0 && f.Den > 0 && GCD(f.Num, f.Den) == 1
}

// Cmp returns -1, 0 or +1 as f is less than, equal to or greater than g.
// Both must have non-negative components, which every constructor ensures.
// Complexity: O(1), exact (128-bit cross products).
func (f Fraction) Cmp(g Fraction) int {
	lh, ll := bits.Mul64(uint64(f.Num), uint64(g.Den))
	rh, rl := bits.Mul64(uint64(g.Num), uint64(f.Den))
	switch {
	case lh < rh || (lh == rh && ll < rl):
		return -1
	case lh > rh || (lh == rh && ll > rl):
		return 1
	default:
		return 0
	}
}

// Less reports whether f < g.
func (f Fraction) Less(g Fraction) bool {
	return f.Cmp(g) < 0
}

// Reciprocal returns den/num.
func (f Fraction) Reciprocal() Fraction {
	return Fraction{Num: f.Den, Den: f.Num}
}

// Mediant returns (f.Num+g.Num)/(f.Den+g.Den) reduced to lowest terms.
// Neighbours in the Stern-Brocot construction have an already reduced
// mediant. Returns ErrOverflow if a sum does not fit int64.
func Mediant(f, g Fraction) (Fraction, error) {
	num, ok1 := addPositive(f.Num, g.Num)
	den, ok2 := addPositive(f.Den, g.Den)
	if !ok1 || !ok2 {
		return Fraction{}, fmt.Errorf("Mediant(%v,%v): %w", f, g, ErrOverflow)
	}

	return Reduce(num, den)
}

// Float64 returns the nearest float64 to f.
func (f Fraction) Float64() float64 {
	return float64(f.Num) / float64(f.Den)
}

// String formats f as "num/den".
func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// addPositive adds two non-negative values, reporting overflow.
func addPositive(x, y int64) (int64, bool) {
	s := x + y
	if s < 0 {
		return 0, false
	}

	return s, true
}

// MarshalText implements encoding.TextMarshaler with the String form, so
// encoders print "3/8" instead of a struct.
func (f Fraction) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler through Parse.
func (f *Fraction) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = v

	return nil
}
