// SPDX-License-Identifier: MIT

package lrpath

import (
	"fmt"
	"iter"
)

// Index returns the (level, index) coordinates of the node p names:
// level = Len(), index = p read as a base-2 numeral with L=0, R=1, most
// significant move first.
//
// Errors:
//   - ErrUnknownMove: p holds a symbol other than 'L'/'R'.
//   - ErrLevelTooDeep: Len() > MaxIndexLevel, the index would overflow.
//
// Complexity: O(Len).
func (p Path) Index() (level, index int, err error) {
	if err = p.Validate(); err != nil {
		return 0, 0, err
	}
	if len(p) > MaxIndexLevel {
		return 0, 0, fmt.Errorf("Path.Index: length %d: %w", len(p), ErrLevelTooDeep)
	}
	for i := 0; i < len(p); i++ {
		index = index<<1 | Move(p[i]).Bit()
	}

	return len(p), index, nil
}

// FromIndex returns the path of the node at the given level and index.
// It is the inverse of Path.Index.
//
// Errors:
//   - ErrNegativeLevel: level < 0.
//   - ErrLevelTooDeep: level > MaxIndexLevel.
//   - ErrIndexOutOfRange: index < 0 or index >= 2^level.
//
// Complexity: O(level).
func FromIndex(level, index int) (Path, error) {
	if err := checkLevel(level); err != nil {
		return Root, fmt.Errorf("FromIndex(%d,%d): %w", level, index, err)
	}
	if index < 0 || index >= 1<<level {
		return Root, fmt.Errorf("FromIndex(%d,%d): %w", level, index, ErrIndexOutOfRange)
	}

	return fromIndex(level, index), nil
}

// Level yields the 2^k paths of level k in canonical order: Left sorts
// before Right and earlier moves are more significant, so the n-th yielded
// path has index n. The sequence is lazy and may be ranged over any number
// of times. An invalid k (negative or above MaxIndexLevel) yields nothing;
// use AtLevel to get the error.
func Level(k int) iter.Seq[Path] {
	return func(yield func(Path) bool) {
		if checkLevel(k) != nil {
			return
		}
		for i := 0; i < 1<<k; i++ {
			if !yield(fromIndex(k, i)) {
				return
			}
		}
	}
}

// AtLevel materializes Level(k).
// Returns ErrNegativeLevel or ErrLevelTooDeep for an invalid k.
// Complexity: O(k·2^k) time and memory.
func AtLevel(k int) ([]Path, error) {
	if err := checkLevel(k); err != nil {
		return nil, fmt.Errorf("AtLevel(%d): %w", k, err)
	}
	out := make([]Path, 0, 1<<k)
	for p := range Level(k) {
		out = append(out, p)
	}

	return out, nil
}

// checkLevel validates a level against the int index range.
func checkLevel(level int) error {
	if level < 0 {
		return ErrNegativeLevel
	}
	if level > MaxIndexLevel {
		return ErrLevelTooDeep
	}

	return nil
}

// fromIndex writes index as a level-bit numeral over {L,R}. Inputs are
// already validated.
func fromIndex(level, index int) Path {
	buf := make([]byte, level)
	for j := level - 1; j >= 0; j-- {
		if index&1 == 1 {
			buf[j] = byte(Right)
		} else {
			buf[j] = byte(Left)
		}
		index >>= 1
	}

	return Path(buf)
}
