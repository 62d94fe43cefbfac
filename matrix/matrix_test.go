package matrix_test

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ratree"
	"github.com/katalvlaran/ratree/lrpath"
	"github.com/katalvlaran/ratree/matrix"
)

func TestTranspose_LeftRightDuality(t *testing.T) {
	assert.Equal(t, matrix.Right, matrix.Left.Transpose())
	assert.Equal(t, matrix.Left, matrix.Right.Transpose())
	assert.Equal(t, matrix.Identity, matrix.Identity.Transpose())
}

func TestForMove(t *testing.T) {
	m, err := matrix.ForMove(lrpath.Left)
	require.NoError(t, err)
	assert.Equal(t, matrix.Left, m)

	m, err = matrix.ForMove(lrpath.Right)
	require.NoError(t, err)
	assert.Equal(t, matrix.Right, m)

	_, err = matrix.ForMove(lrpath.Move('I'))
	assert.ErrorIs(t, err, lrpath.ErrUnknownMove)
	assert.ErrorIs(t, err, ratree.ErrInvalidArgument)
}

func TestCompose_LRLL(t *testing.T) {
	m, err := matrix.Compose(lrpath.MustParse("LRLL"))
	require.NoError(t, err)
	assert.Equal(t, matrix.Matrix{{2, 5}, {1, 3}}, m)

	col, err := m.MulCol(matrix.Ones)
	require.NoError(t, err)
	assert.Equal(t, matrix.Vec{7, 4}, col, "Stern-Brocot: [den, num] of 4/7")

	row, err := m.MulRow(matrix.Ones)
	require.NoError(t, err)
	assert.Equal(t, matrix.Vec{3, 8}, row, "Calkin-Wilf: [num, den] of 3/8")
}

func TestCompose_EmptyIsIdentity(t *testing.T) {
	m, err := matrix.Compose(lrpath.Root)
	require.NoError(t, err)
	assert.Equal(t, matrix.Identity, m)
}

func TestCompose_UnknownMove(t *testing.T) {
	_, err := matrix.Compose(lrpath.Path("LRX"))
	assert.ErrorIs(t, err, lrpath.ErrUnknownMove)
}

// TestCompose_TransposeReversesAndMirrors checks (M₁⋯Mₖ)ᵀ = Mₖᵀ⋯M₁ᵀ on
// every path up to level 8, together with det = 1.
func TestCompose_TransposeReversesAndMirrors(t *testing.T) {
	for level := 0; level <= 8; level++ {
		for p := range lrpath.Level(level) {
			m, err := matrix.Compose(p)
			require.NoError(t, err)
			mt, err := matrix.Compose(p.Reverse().Mirror())
			require.NoError(t, err)
			assert.Equal(t, m.Transpose(), mt, "path %q", p)
			assert.Equal(t, int64(1), m.Det(), "path %q", p)
		}
	}
}

func TestCompose_LongPathIsIterative(t *testing.T) {
	const n = 5000
	m, err := matrix.Compose(lrpath.Path(strings.Repeat("L", n)))
	require.NoError(t, err)
	assert.Equal(t, matrix.Matrix{{1, n}, {0, 1}}, m)

	pow, err := matrix.Pow(matrix.Left, n)
	require.NoError(t, err)
	assert.Equal(t, m, pow)
}

func TestCompose_Overflow(t *testing.T) {
	// Alternating moves grow like Fibonacci numbers: 200 moves exceed int64.
	_, err := matrix.Compose(lrpath.Path(strings.Repeat("LR", 100)))
	assert.ErrorIs(t, err, matrix.ErrOverflow)
	assert.ErrorIs(t, err, ratree.ErrOverflow)
}

func TestPow(t *testing.T) {
	for n := 0; n <= 40; n++ {
		l, err := matrix.Pow(matrix.Left, n)
		require.NoError(t, err)
		assert.Equal(t, matrix.Matrix{{1, int64(n)}, {0, 1}}, l)

		r, err := matrix.Pow(matrix.Right, n)
		require.NoError(t, err)
		assert.Equal(t, matrix.Matrix{{1, 0}, {int64(n), 1}}, r)
	}

	id, err := matrix.Pow(matrix.Matrix{{7, 3}, {2, 9}}, 0)
	require.NoError(t, err)
	assert.Equal(t, matrix.Identity, id)

	_, err = matrix.Pow(matrix.Left, -1)
	assert.ErrorIs(t, err, matrix.ErrNegativeExponent)
	assert.ErrorIs(t, err, ratree.ErrInvalidArgument)
}

func TestPow_MatchesRepeatedMul(t *testing.T) {
	m := matrix.Matrix{{1, 1}, {1, 0}} // Fibonacci matrix
	acc := matrix.Identity
	for n := 0; n <= 60; n++ {
		got, err := matrix.Pow(m, n)
		require.NoError(t, err)
		assert.Equal(t, acc, got, "n=%d", n)

		acc, err = matrix.Mul(acc, m)
		require.NoError(t, err)
	}
}

func TestPow_Overflow(t *testing.T) {
	two := matrix.Matrix{{2, 0}, {0, 2}}

	m, err := matrix.Pow(two, 62)
	require.NoError(t, err)
	assert.Equal(t, int64(1)<<62, m[0][0])

	_, err = matrix.Pow(two, 63)
	assert.ErrorIs(t, err, matrix.ErrOverflow)
}

func TestMul_OverflowEdges(t *testing.T) {
	_, err := matrix.Mul(matrix.Matrix{{-1, 0}, {0, 0}}, matrix.Matrix{{math.MinInt64, 0}, {0, 0}})
	assert.ErrorIs(t, err, matrix.ErrOverflow)

	_, err = matrix.Mul(matrix.Matrix{{math.MaxInt64, 1}, {0, 0}}, matrix.Matrix{{1, 0}, {1, 0}})
	assert.ErrorIs(t, err, matrix.ErrOverflow)

	_, err = matrix.Matrix{{math.MaxInt64, 1}, {0, 1}}.MulCol(matrix.Ones)
	assert.ErrorIs(t, err, matrix.ErrOverflow)

	_, err = matrix.Matrix{{math.MaxInt64, 0}, {1, 1}}.MulRow(matrix.Ones)
	assert.ErrorIs(t, err, matrix.ErrOverflow)
}

// TestDense_AgreesWithGonum multiplies random short paths with gonum in
// float64 and compares against the exact integer product.
func TestDense_AgreesWithGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(30)
		buf := make([]byte, n)
		prod := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
		for i := range buf {
			mv := lrpath.Left
			if rng.Intn(2) == 1 {
				mv = lrpath.Right
			}
			buf[i] = byte(mv)
			step, err := matrix.ForMove(mv)
			require.NoError(t, err)

			var next mat.Dense
			next.Mul(prod, step.Dense())
			prod = &next
		}

		exact, err := matrix.Compose(lrpath.Path(buf))
		require.NoError(t, err)
		assert.True(t, mat.Equal(exact.Dense(), prod), "path %q", string(buf))
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1, 1]\n[0, 1]\n", matrix.Left.String())
}
