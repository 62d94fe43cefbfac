package stern_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ratree"
	"github.com/katalvlaran/ratree/stern"
)

// diatomic31 is s(1..31) of OEIS A002487.
var diatomic31 = []int64{1, 1, 2, 1, 3, 2, 3, 1, 4, 3, 5, 2, 5, 3, 4, 1, 5, 4, 7, 3, 8, 5, 7, 2, 7, 5, 8, 3, 7, 4, 5}

func TestNumerators_DiatomicFixture(t *testing.T) {
	levels, flat, err := stern.Numerators(5)
	require.NoError(t, err)
	assert.Equal(t, diatomic31, flat)

	require.Len(t, levels, 5)
	assert.Equal(t, []int64{1}, levels[0])
	assert.Equal(t, []int64{1, 2}, levels[1])
	assert.Equal(t, []int64{1, 2, 3, 3}, levels[2])
	assert.Equal(t, []int64{1, 2, 3, 3, 4, 5, 5, 4}, levels[3])
	for k, level := range levels {
		assert.Len(t, level, 1<<k, "level %d", k+1)
	}
}

func TestDenominators_AreReversedNumerators(t *testing.T) {
	for m := 0; m <= 10; m++ {
		nums, _, err := stern.Numerators(m)
		require.NoError(t, err)
		dens, _, err := stern.Denominators(m)
		require.NoError(t, err)
		assert.Equal(t, dens, stern.ReverseLevels(nums), "m=%d", m)
	}
}

func TestReverseLevels_DoesNotMutate(t *testing.T) {
	in := [][]int64{{1}, {1, 2}}
	out := stern.ReverseLevels(in)
	assert.Equal(t, [][]int64{{1}, {2, 1}}, out)
	assert.Equal(t, [][]int64{{1}, {1, 2}}, in)
}

func TestLevels_ZeroDepth(t *testing.T) {
	levels, flat, err := stern.Levels(0, 0, 1)
	require.NoError(t, err)
	assert.Empty(t, levels)
	assert.Empty(t, flat)
}

func TestLevels_Errors(t *testing.T) {
	_, _, err := stern.Levels(-1, 0, 1)
	assert.ErrorIs(t, err, stern.ErrNegativeDepth)
	assert.ErrorIs(t, err, ratree.ErrInvalidArgument)

	_, _, err = stern.Levels(stern.MaxDepth+1, 0, 1)
	assert.ErrorIs(t, err, stern.ErrDepthTooLarge)

	_, _, err = stern.Levels(3, math.MaxInt64, 1)
	assert.ErrorIs(t, err, ratree.ErrOverflow)
}

func TestLevels_FlatLengthAndMatchesDiatomic(t *testing.T) {
	const m = 12
	_, flat, err := stern.Numerators(m)
	require.NoError(t, err)
	require.Len(t, flat, 1<<m-1)

	s, err := stern.Diatomic(1 << m)
	require.NoError(t, err)
	assert.Equal(t, s[1:], flat)
}

// TestLevels_AdjacentDeterminant checks the Bezout relation m'n − mn' = 1
// between adjacent fractions of the running sequence, rebuilt from the flat
// numerator and denominator sequences plus the seeds 0/1 and 1/0.
func TestLevels_AdjacentDeterminant(t *testing.T) {
	_, nums, err := stern.Numerators(9)
	require.NoError(t, err)
	_, dens, err := stern.Denominators(9)
	require.NoError(t, err)

	n := append(append([]int64{0}, nums...), 1)
	d := append(append([]int64{1}, dens...), 0)
	for i := 0; i+1 < len(n); i++ {
		assert.Equal(t, int64(1), n[i+1]*d[i]-n[i]*d[i+1], "pair %d", i)
	}
}

func TestDiatomic(t *testing.T) {
	s, err := stern.Diatomic(32)
	require.NoError(t, err)
	assert.Equal(t, int64(0), s[0])
	assert.Equal(t, diatomic31, s[1:])

	empty, err := stern.Diatomic(0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	one, err := stern.Diatomic(1)
	require.NoError(t, err)
	assert.Equal(t, []int64{0}, one)

	_, err = stern.Diatomic(-3)
	assert.ErrorIs(t, err, stern.ErrNegativeDepth)
}
