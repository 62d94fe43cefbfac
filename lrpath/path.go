package lrpath

import (
	"fmt"
	"iter"
)

// Parse validates s and returns it as a Path.
// Returns ErrUnknownMove (wrapped with the offending position) on any symbol
// other than 'L' or 'R'.
// Complexity: O(len(s)).
func Parse(s string) (Path, error) {
	p := Path(s)
	if err := p.Validate(); err != nil {
		return Root, err
	}

	return p, nil
}

// MustParse is like Parse but panics on error. Intended for literals in
// tests and examples.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return p
}

// Validate returns ErrUnknownMove if p holds a symbol other than 'L' or 'R'.
// Complexity: O(Len).
func (p Path) Validate() error {
	for i := 0; i < len(p); i++ {
		if !Move(p[i]).Valid() {
			return fmt.Errorf("Path.Validate(%q): symbol %q at %d: %w", string(p), p[i], i, ErrUnknownMove)
		}
	}

	return nil
}

// Len returns the number of moves, which is also the level of the node.
func (p Path) Len() int {
	return len(p)
}

// IsRoot reports whether p is the empty path.
func (p Path) IsRoot() bool {
	return len(p) == 0
}

// At returns the i-th move (0-based). It panics if i is out of range, like
// indexing a slice.
func (p Path) At(i int) Move {
	return Move(p[i])
}

// Moves yields the moves of p with their positions, root first.
func (p Path) Moves() iter.Seq2[int, Move] {
	return func(yield func(int, Move) bool) {
		for i := 0; i < len(p); i++ {
			if !yield(i, Move(p[i])) {
				return
			}
		}
	}
}

// Append returns p followed by m.
func (p Path) Append(m Move) Path {
	return p + Path(rune(m))
}

// Prefix returns the first k moves of p.
// Returns ErrPrefixLength when k < 0 or k > Len().
func (p Path) Prefix(k int) (Path, error) {
	if k < 0 || k > len(p) {
		return Root, fmt.Errorf("Path.Prefix(%d) of length %d: %w", k, len(p), ErrPrefixLength)
	}

	return p[:k], nil
}

// Parent drops the last move. Returns ErrEmptyPath for the root.
func (p Path) Parent() (Path, error) {
	if len(p) == 0 {
		return Root, fmt.Errorf("Path.Parent: %w", ErrEmptyPath)
	}

	return p[:len(p)-1], nil
}

// Reverse returns the moves of p in reverse order.
// Reversal maps a Stern-Brocot path onto the Calkin-Wilf path of the same
// fraction and back.
// Complexity: O(Len).
func (p Path) Reverse() Path {
	buf := []byte(p)
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}

	return Path(buf)
}

// Mirror swaps every Left with Right. In both trees the mirrored path leads
// to the reciprocal fraction.
// Complexity: O(Len).
func (p Path) Mirror() Path {
	buf := []byte(p)
	for i, c := range buf {
		switch Move(c) {
		case Left:
			buf[i] = byte(Right)
		case Right:
			buf[i] = byte(Left)
		}
	}

	return Path(buf)
}

// String implements fmt.Stringer. The root prints as "".
func (p Path) String() string {
	return string(p)
}
