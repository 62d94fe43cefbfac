// SPDX-License-Identifier: MIT

package matrix

import "math"

// Mul returns the product a·b.
// Returns ErrOverflow if an entry does not fit int64.
// Complexity: O(1).
func Mul(a, b Matrix) (Matrix, error) {
	var out Matrix
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, ok := dot(a[i][0], b[0][j], a[i][1], b[1][j])
			if !ok {
				return Matrix{}, matrixErrorf(opMul, ErrOverflow)
			}
			out[i][j] = v
		}
	}

	return out, nil
}

// Pow returns m raised to the n-th power by binary exponentiation.
// Pow(m, 0) is Identity.
//
// Errors:
//   - ErrNegativeExponent: n < 0.
//   - ErrOverflow: an intermediate entry does not fit int64.
//
// Complexity: O(log n) products.
func Pow(m Matrix, n int) (Matrix, error) {
	if n < 0 {
		return Matrix{}, matrixErrorf(opPow, ErrNegativeExponent)
	}

	result, base := Identity, m
	var err error
	for n > 0 {
		if n&1 == 1 {
			if result, err = Mul(result, base); err != nil {
				return Matrix{}, matrixErrorf(opPow, err)
			}
		}
		n >>= 1
		if n > 0 {
			// Square only while bits remain, so an unused power cannot overflow.
			if base, err = Mul(base, base); err != nil {
				return Matrix{}, matrixErrorf(opPow, err)
			}
		}
	}

	return result, nil
}

// Transpose returns mᵀ.
func (m Matrix) Transpose() Matrix {
	return Matrix{{m[0][0], m[1][0]}, {m[0][1], m[1][1]}}
}

// Det returns the determinant. Every product of move matrices has
// determinant 1, the matrix form of the Bezout relation between neighbours.
// The result is only meaningful when it fits int64.
func (m Matrix) Det() int64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// MulCol returns m·v with v as a column vector.
// Returns ErrOverflow if a component does not fit int64.
func (m Matrix) MulCol(v Vec) (Vec, error) {
	x, ok1 := dot(m[0][0], v[0], m[0][1], v[1])
	y, ok2 := dot(m[1][0], v[0], m[1][1], v[1])
	if !ok1 || !ok2 {
		return Vec{}, matrixErrorf(opMulCol, ErrOverflow)
	}

	return Vec{x, y}, nil
}

// MulRow returns v·m with v as a row vector.
// Returns ErrOverflow if a component does not fit int64.
func (m Matrix) MulRow(v Vec) (Vec, error) {
	x, ok1 := dot(v[0], m[0][0], v[1], m[1][0])
	y, ok2 := dot(v[0], m[0][1], v[1], m[1][1])
	if !ok1 || !ok2 {
		return Vec{}, matrixErrorf(opMulRow, ErrOverflow)
	}

	return Vec{x, y}, nil
}

// dot returns a·b + c·d and false on int64 overflow.
func dot(a, b, c, d int64) (int64, bool) {
	p, ok := mulInt(a, b)
	if !ok {
		return 0, false
	}
	q, ok := mulInt(c, d)
	if !ok {
		return 0, false
	}

	return addInt(p, q)
}

// mulInt returns x·y and false on int64 overflow.
func mulInt(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return 0, false
	}
	p := x * y
	if p/y != x {
		return 0, false
	}

	return p, true
}

// addInt returns x+y and false on int64 overflow.
func addInt(x, y int64) (int64, bool) {
	s := x + y
	if (x > 0 && y > 0 && s < 0) || (x < 0 && y < 0 && s >= 0) {
		return 0, false
	}

	return s, true
}
