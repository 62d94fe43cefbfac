// SPDX-License-Identifier: MIT

package stern

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/ratree"
)

// MaxDepth bounds the number of levels Levels builds (2^MaxDepth − 1 values).
const MaxDepth = 24

// Levels builds m levels of the mediant tree seeded with (a, b).
//
// Algorithm:
//  1. seq = [a, b].
//  2. For k = 1..m: for every adjacent pair (seq[i], seq[i+1]) compute the
//     sum, record it in level k and splice it between the pair. The new
//     sequence has length 2·len(seq) − 1.
//  3. flat = seq without its two seeds: every inserted value, in position
//     order.
//
// Level k (1-based) holds 2^(k−1) values; flat holds 2^m − 1 values.
// With seeds (0,1) flat is s(1..2^m−1) of the Stern diatomic sequence.
// m = 0 returns empty levels and an empty flat sequence.
//
// Errors: ErrNegativeDepth for m < 0, ErrDepthTooLarge for m > MaxDepth,
// ratree.ErrOverflow when seeds are large enough for a sum to overflow.
// Complexity: O(2^m) time and memory.
func Levels(m int, a, b int64) (levels [][]int64, flat []int64, err error) {
	if err = checkDepth(m); err != nil {
		return nil, nil, fmt.Errorf("Levels(%d,%d,%d): %w", m, a, b, err)
	}

	levels = make([][]int64, 0, m)
	seq := []int64{a, b}
	for k := 1; k <= m; k++ {
		next := make([]int64, 0, 2*len(seq)-1)
		level := make([]int64, 0, len(seq)-1)
		next = append(next, seq[0])
		for i := 0; i+1 < len(seq); i++ {
			s, ok := add(seq[i], seq[i+1])
			if !ok {
				return nil, nil, fmt.Errorf("Levels(%d,%d,%d) at level %d: %w", m, a, b, k, ratree.ErrOverflow)
			}
			level = append(level, s)
			next = append(next, s, seq[i+1])
		}
		levels = append(levels, level)
		seq = next
	}

	// Drop the seeds at both ends.
	flat = seq[1 : len(seq)-1 : len(seq)-1]

	return levels, flat, nil
}

// Numerators builds m levels of the Stern-Brocot numerator tree (seeds 0,1).
func Numerators(m int) (levels [][]int64, flat []int64, err error) {
	return Levels(m, 0, 1)
}

// Denominators builds m levels of the Stern-Brocot denominator tree
// (seeds 1,0).
func Denominators(m int) (levels [][]int64, flat []int64, err error) {
	return Levels(m, 1, 0)
}

// ReverseLevels returns a copy of levels with every level reversed.
// Applied to numerator levels it yields the denominator levels.
// Complexity: O(total values).
func ReverseLevels(levels [][]int64) [][]int64 {
	out := make([][]int64, len(levels))
	for k, level := range levels {
		out[k] = slices.Clone(level)
		slices.Reverse(out[k])
	}

	return out
}

// Diatomic returns the first n terms s(0), …, s(n−1) of the Stern diatomic
// sequence computed from its recurrence.
// Errors: ErrNegativeDepth for n < 0.
// Complexity: O(n).
func Diatomic(n int) ([]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("Diatomic(%d): %w", n, ErrNegativeDepth)
	}
	s := make([]int64, n)
	for i := 1; i < n; i++ {
		if i == 1 {
			s[i] = 1
			continue
		}
		h := i / 2
		if i%2 == 0 {
			s[i] = s[h]
		} else {
			s[i] = s[h] + s[h+1]
		}
	}

	return s, nil
}

// add returns x+y and false when the sum overflows int64.
func add(x, y int64) (int64, bool) {
	s := x + y
	if (x > 0 && y > 0 && s < 0) || (x < 0 && y < 0 && s >= 0) {
		return 0, false
	}

	return s, true
}

// checkDepth validates a level count.
func checkDepth(m int) error {
	if m < 0 {
		return ErrNegativeDepth
	}
	if m > MaxDepth {
		return ErrDepthTooLarge
	}

	return nil
}
