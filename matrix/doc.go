// Package matrix represents the moves of the Stern-Brocot and Calkin-Wilf
// trees as exact 2×2 integer matrices.
//
// What & Why:
//
//	Every move is a fixed matrix:
//
//	  Identity = ⎡1 0⎤   Left = ⎡1 1⎤   Right = ⎡1 0⎤
//	             ⎣0 1⎦          ⎣0 1⎦           ⎣1 1⎦
//
//	The product of the matrices along a path, taken in path order, encodes
//	the node that path reaches. Acting on [1,1] from the right as a column
//	vector gives [den, num] of the Stern-Brocot node; acting from the left as
//	a row vector gives [num, den] of the Calkin-Wilf node. Since
//	Leftᵀ = Right, transposing a product reverses the path, which is why
//	SB(S) = CW(reverse(S)).
//
// Exactness:
//
//	Entries are int64. Every product, power and vector action checks for
//	overflow and returns ErrOverflow instead of wrapping around.
//
// Complexity:
//
//	Mul, MulCol, MulRow, Transpose, Det run in O(1).
//	Compose(p) runs in O(len(p)) with an accumulator loop, no recursion.
//	Pow(m, n) runs in O(log n) by binary exponentiation.
//
// Dense exports a matrix to gonum for floating-point linear algebra.
package matrix
