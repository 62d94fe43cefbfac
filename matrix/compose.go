package matrix

import (
	"fmt"

	"github.com/katalvlaran/ratree/lrpath"
)

// moveTable maps each move symbol to its matrix.
var moveTable = map[lrpath.Move]Matrix{
	lrpath.Left:  Left,
	lrpath.Right: Right,
}

// ForMove returns the matrix of a single move.
// Returns lrpath.ErrUnknownMove for any symbol other than 'L' or 'R'.
func ForMove(m lrpath.Move) (Matrix, error) {
	mat, ok := moveTable[m]
	if !ok {
		return Matrix{}, matrixErrorf(opForMove, fmt.Errorf("symbol %q: %w", byte(m), lrpath.ErrUnknownMove))
	}

	return mat, nil
}

// Compose returns the ordered product of the move matrices of p, first move
// leftmost: Compose("LR") = Left·Right. The empty path yields Identity.
//
// Errors:
//   - lrpath.ErrUnknownMove: p holds a symbol other than 'L'/'R'.
//   - ErrOverflow: the product does not fit int64.
//
// Complexity: O(len(p)) time, O(1) memory.
func Compose(p lrpath.Path) (Matrix, error) {
	acc := Identity
	for i, m := range p.Moves() {
		next, err := Step(acc, m)
		if err != nil {
			return Matrix{}, matrixErrorf(opCompose, fmt.Errorf("move %d of %q: %w", i, p.String(), err))
		}
		acc = next
	}

	return acc, nil
}

// Step returns acc·ForMove(m), extending a composed path by one move.
// Callers walking a path move by move use it to keep one running product.
func Step(acc Matrix, m lrpath.Move) (Matrix, error) {
	mat, err := ForMove(m)
	if err != nil {
		return Matrix{}, err
	}

	return Mul(acc, mat)
}
