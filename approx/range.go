// SPDX-License-Identifier: MIT

package approx

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ratree/rational"
)

// Range selects prefix lengths Start, Start+Step, … below Stop, the way a
// slice expression with a stride would. Start may be 0 (the root 1/1).
type Range struct {
	Start int
	Stop  int
	Step  int
}

// Validate reports ErrBadLength unless 0 <= Start <= Stop and Step >= 1.
func (r Range) Validate() error {
	if r.Start < 0 || r.Stop < r.Start || r.Step < 1 {
		return fmt.Errorf("Range{%d,%d,%d}: %w", r.Start, r.Stop, r.Step, ErrBadLength)
	}

	return nil
}

// Len returns the number of lengths r selects; 0 for an invalid Range.
func (r Range) Len() int {
	if r.Validate() != nil || r.Stop == r.Start {
		return 0
	}

	return (r.Stop-r.Start-1)/r.Step + 1
}

// Last returns the largest length r selects, or -1 if it selects none.
func (r Range) Last() int {
	n := r.Len()
	if n == 0 {
		return -1
	}

	return r.Start + (n-1)*r.Step
}

// FractionsIn returns the Stern-Brocot values of the prefixes of the descent
// towards x whose lengths r selects. The path is computed only as far as
// r.Last().
//
// Errors: ErrNonPositive, ErrBadLength, ErrExactNode, matrix.ErrOverflow.
// Complexity: O(r.Last()).
func FractionsIn(x float64, r Range) ([]rational.Fraction, error) {
	if err := checkX(x); err != nil {
		return nil, fmt.Errorf("FractionsIn(%v): %w", x, err)
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("FractionsIn(%v): %w", x, err)
	}
	if r.Len() == 0 {
		return []rational.Fraction{}, nil
	}

	p, err := descend(x, r.Last())
	if err != nil {
		return nil, fmt.Errorf("FractionsIn(%v): %w", x, err)
	}
	out, err := prefixValues(p, r)
	if err != nil {
		return nil, fmt.Errorf("FractionsIn(%v): %w", x, err)
	}

	return out, nil
}

// Approximant is one prefix value of the descent towards X, with how far it
// lands from X.
type Approximant struct {
	Length int               `json:"length" yaml:"length"`
	Value  rational.Fraction `json:"value" yaml:"value"`
	Float  float64           `json:"float" yaml:"float"`
	Error  float64           `json:"error" yaml:"error"`
}

// Approximants is FractionsIn with each value annotated by its prefix
// length, its float64 value and its absolute error |value − x|.
func Approximants(x float64, r Range) ([]Approximant, error) {
	fs, err := FractionsIn(x, r)
	if err != nil {
		return nil, err
	}
	out := make([]Approximant, len(fs))
	for i, f := range fs {
		v := f.Float64()
		out[i] = Approximant{
			Length: r.Start + i*r.Step,
			Value:  f,
			Float:  v,
			Error:  math.Abs(v - x),
		}
	}

	return out, nil
}
