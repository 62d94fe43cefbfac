// SPDX-License-Identifier: MIT

package tree

import (
	"fmt"

	"github.com/katalvlaran/ratree/lrpath"
	"github.com/katalvlaran/ratree/rational"
	"github.com/katalvlaran/ratree/stern"
)

// SternBrocotLevels returns levels 0..m−1 of the Stern-Brocot tree, level k
// holding its 2^k fractions from left to right. Numerators come from the
// mediant builder seeded (0,1), denominators from the one seeded (1,0).
//
// Errors: stern.ErrNegativeDepth, stern.ErrDepthTooLarge.
// Complexity: O(2^m).
func SternBrocotLevels(m int) ([][]rational.Fraction, error) {
	nums, _, err := stern.Numerators(m)
	if err != nil {
		return nil, fmt.Errorf("SternBrocotLevels(%d): %w", m, err)
	}
	dens, _, err := stern.Denominators(m)
	if err != nil {
		return nil, fmt.Errorf("SternBrocotLevels(%d): %w", m, err)
	}

	levels := make([][]rational.Fraction, m)
	for k := range levels {
		levels[k] = zip(nums[k], dens[k])
	}

	return levels, nil
}

// CalkinWilfLevels returns levels 0..m−1 of the Calkin-Wilf tree. Read in
// level order, its numerators are the Stern diatomic sequence s(1), s(2), …
// and its denominators the same sequence shifted by one, s(2), s(3), …,
// closed by s(2^m) = 1.
//
// Errors: stern.ErrNegativeDepth, stern.ErrDepthTooLarge.
// Complexity: O(2^m).
func CalkinWilfLevels(m int) ([][]rational.Fraction, error) {
	_, nums, err := stern.Numerators(m)
	if err != nil {
		return nil, fmt.Errorf("CalkinWilfLevels(%d): %w", m, err)
	}
	if m == 0 {
		return [][]rational.Fraction{}, nil
	}
	dens := make([]int64, len(nums))
	copy(dens, nums[1:])
	dens[len(dens)-1] = 1

	return lrpath.Split(zip(nums, dens)), nil
}

// LevelByPaths evaluates every path of the given level with valueOf,
// typically SternBrocot or CalkinWilf, in canonical path order. It is the
// matrix counterpart of the builder-based level functions.
//
// Errors: lrpath.ErrNegativeLevel, lrpath.ErrLevelTooDeep, or the first
// error of valueOf.
// Complexity: O(level·2^level).
func LevelByPaths(level int, valueOf func(lrpath.Path) (rational.Fraction, error)) ([]rational.Fraction, error) {
	paths, err := lrpath.AtLevel(level)
	if err != nil {
		return nil, fmt.Errorf("LevelByPaths(%d): %w", level, err)
	}
	out := make([]rational.Fraction, len(paths))
	for i, p := range paths {
		if out[i], err = valueOf(p); err != nil {
			return nil, fmt.Errorf("LevelByPaths(%d): %w", level, err)
		}
	}

	return out, nil
}

// zip pairs numerators with denominators; both slices have equal length.
func zip(nums, dens []int64) []rational.Fraction {
	out := make([]rational.Fraction, len(nums))
	for i := range nums {
		out[i] = rational.Fraction{Num: nums[i], Den: dens[i]}
	}

	return out
}
