package matrix

import "gonum.org/v1/gonum/mat"

// Dense converts m to a gonum *mat.Dense for floating-point linear algebra
// (eigenvalues, plotting transforms). Entries above 2^53 lose precision.
// Complexity: O(1).
func (m Matrix) Dense() *mat.Dense {
	return mat.NewDense(2, 2, []float64{
		float64(m[0][0]), float64(m[0][1]),
		float64(m[1][0]), float64(m[1][1]),
	})
}
