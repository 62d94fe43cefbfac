package lrpath

import "math/bits"

// Move is one step from a node to one of its sons.
type Move byte

const (
	// Left moves to the left son; it is the binary digit 0.
	Left Move = 'L'

	// Right moves to the right son; it is the binary digit 1.
	Right Move = 'R'
)

// MaxIndexLevel is the deepest level whose indices fit in an int.
// Paths may be longer; only Index/FromIndex/Level are bounded by it.
const MaxIndexLevel = bits.UintSize - 2

// Valid reports whether m is Left or Right.
func (m Move) Valid() bool {
	return m == Left || m == Right
}

// Bit returns 0 for Left and 1 for Right. The result is meaningless for an
// invalid move.
func (m Move) Bit() int {
	if m == Right {
		return 1
	}

	return 0
}

// Opposite swaps Left and Right.
func (m Move) Opposite() Move {
	if m == Left {
		return Right
	}

	return Left
}

// String implements fmt.Stringer.
func (m Move) String() string {
	return string(rune(m))
}

// Path is an immutable sequence of moves from the root. The zero value "" is
// the root. Use Parse to build a Path from untrusted text; a Path obtained
// by plain conversion is checked by every consumer through Validate.
type Path string

// Root is the empty path.
const Root Path = ""
