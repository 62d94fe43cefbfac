// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Matrix is an exact 2×2 integer matrix, indexed [row][col].
// It is a value type: assignment copies, == compares entries.
type Matrix [2][2]int64

// Vec is a 2-vector, used as a column (MulCol) or as a row (MulRow).
type Vec [2]int64

var (
	// Identity is the matrix of the empty path (the root).
	Identity = Matrix{{1, 0}, {0, 1}}

	// Left is the matrix of a left move.
	Left = Matrix{{1, 1}, {0, 1}}

	// Right is the matrix of a right move; Right = Leftᵀ.
	Right = Matrix{{1, 0}, {1, 1}}
)

// Ones is the basis vector [1,1] both trees act on.
var Ones = Vec{1, 1}

// String prints the matrix row by row, e.g. "[1, 1]\n[0, 1]\n".
func (m Matrix) String() string {
	var s string
	for i := 0; i < 2; i++ {
		s += fmt.Sprintf("[%d, %d]\n", m[i][0], m[i][1])
	}

	return s
}
