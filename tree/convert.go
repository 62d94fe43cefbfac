// SPDX-License-Identifier: MIT

package tree

import (
	"fmt"

	"github.com/katalvlaran/ratree/lrpath"
	"github.com/katalvlaran/ratree/matrix"
	"github.com/katalvlaran/ratree/rational"
)

// SternBrocot returns the Stern-Brocot node at path p:
// [den, num] = Compose(p)·[1,1]ᵀ.
//
// Errors:
//   - lrpath.ErrUnknownMove: p holds a symbol other than 'L'/'R'.
//   - matrix.ErrOverflow: the node does not fit int64.
//
// Complexity: O(len(p)).
func SternBrocot(p lrpath.Path) (rational.Fraction, error) {
	m, err := matrix.Compose(p)
	if err != nil {
		return rational.Fraction{}, fmt.Errorf("SternBrocot(%q): %w", p.String(), err)
	}
	v, err := m.MulCol(matrix.Ones)
	if err != nil {
		return rational.Fraction{}, fmt.Errorf("SternBrocot(%q): %w", p.String(), err)
	}

	return rational.Fraction{Num: v[1], Den: v[0]}, nil
}

// CalkinWilf returns the Calkin-Wilf node at path p:
// [num, den] = [1,1]·Compose(p).
//
// Errors: as SternBrocot.
// Complexity: O(len(p)).
func CalkinWilf(p lrpath.Path) (rational.Fraction, error) {
	m, err := matrix.Compose(p)
	if err != nil {
		return rational.Fraction{}, fmt.Errorf("CalkinWilf(%q): %w", p.String(), err)
	}
	v, err := m.MulRow(matrix.Ones)
	if err != nil {
		return rational.Fraction{}, fmt.Errorf("CalkinWilf(%q): %w", p.String(), err)
	}

	return rational.Fraction{Num: v[0], Den: v[1]}, nil
}

// CalkinWilfPath returns the Calkin-Wilf path of a fraction by the
// subtractive walk from the node up to the root.
//
// Errors:
//   - rational.ErrNonPositive, rational.ErrNotCoprime, rational.ErrSyntax
//     from normalizing in.
//   - ErrPathTooLong when WithMaxLength is exceeded.
//
// Complexity: O(num+den) time and memory.
func CalkinWilfPath(in rational.Input, opts ...Option) (lrpath.Path, error) {
	moves, err := climb(in, newWalkConfig(opts))
	if err != nil {
		return lrpath.Root, fmt.Errorf("CalkinWilfPath: %w", err)
	}

	return lrpath.Path(moves).Reverse(), nil
}

// SternBrocotPath returns the Stern-Brocot path of a fraction. It is the
// reversed Calkin-Wilf path, produced by the same walk with the moves
// appended rather than prepended.
//
// Errors and complexity: as CalkinWilfPath.
func SternBrocotPath(in rational.Input, opts ...Option) (lrpath.Path, error) {
	moves, err := climb(in, newWalkConfig(opts))
	if err != nil {
		return lrpath.Root, fmt.Errorf("SternBrocotPath: %w", err)
	}

	return lrpath.Path(moves), nil
}

// SternBrocotPathBySearch returns the Stern-Brocot path of a fraction by a
// binary search from the root: keep the bounds lo = 0/1 and hi = 1/0,
// compare the target with their mediant, go left (hi = mediant) when the
// target is smaller and right (lo = mediant) when it is larger, stop on
// equality. Bounds are updated in place, so each step costs O(1).
//
// Errors and complexity: as SternBrocotPath.
func SternBrocotPathBySearch(in rational.Input, opts ...Option) (lrpath.Path, error) {
	target, err := rational.Normalize(in)
	if err != nil {
		return lrpath.Root, fmt.Errorf("SternBrocotPathBySearch: %w", err)
	}
	cfg := newWalkConfig(opts)

	var (
		loNum, loDen int64 = 0, 1
		hiNum, hiDen int64 = 1, 0
		moves        []byte
	)
	for {
		// Every mediant on the way is at most target.Num/target.Den
		// componentwise, so these sums cannot overflow.
		med := rational.Fraction{Num: loNum + hiNum, Den: loDen + hiDen}
		c := target.Cmp(med)
		if c == 0 {
			return lrpath.Path(moves), nil
		}
		if cfg.maxLen > 0 && len(moves) == cfg.maxLen {
			return lrpath.Root, fmt.Errorf("SternBrocotPathBySearch(%v): %w", target, ErrPathTooLong)
		}
		move := lrpath.Right
		if c < 0 {
			move = lrpath.Left
			hiNum, hiDen = med.Num, med.Den
		} else {
			loNum, loDen = med.Num, med.Den
		}
		moves = append(moves, byte(move))
		if cfg.onStep != nil {
			cfg.onStep(Step{Node: med, Move: move})
		}
	}
}

// climb runs the subtractive walk from the node of in up to the root and
// returns the moves in the order they are discovered (leaf first), which is
// the Stern-Brocot path read root first.
func climb(in rational.Input, cfg walkConfig) ([]byte, error) {
	f, err := rational.Normalize(in)
	if err != nil {
		return nil, err
	}

	num, den := f.Num, f.Den
	var moves []byte
	for num != den {
		if cfg.maxLen > 0 && len(moves) == cfg.maxLen {
			return nil, fmt.Errorf("%v: %w", f, ErrPathTooLong)
		}
		node := rational.Fraction{Num: num, Den: den}
		move := lrpath.Left
		if num > den {
			move = lrpath.Right
			num -= den
		} else {
			den -= num
		}
		moves = append(moves, byte(move))
		if cfg.onStep != nil {
			cfg.onStep(Step{Node: node, Move: move})
		}
	}

	return moves, nil
}
