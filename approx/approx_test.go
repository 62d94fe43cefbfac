package approx_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ratree"
	"github.com/katalvlaran/ratree/approx"
	"github.com/katalvlaran/ratree/lrpath"
	"github.com/katalvlaran/ratree/rational"
	"github.com/katalvlaran/ratree/tree"
)

func TestPath_E(t *testing.T) {
	p, err := approx.Path(math.E, 20)
	require.NoError(t, err)
	assert.Equal(t, lrpath.Path("RRLRRLRLLLLRLRRRRRRL"), p)

	f, err := tree.SternBrocot(p)
	require.NoError(t, err)
	assert.Equal(t, rational.MustNew(2721, 1001), f)
	assert.InDelta(t, math.E, f.Float64(), 1e-6)
}

func TestPath_Fixtures(t *testing.T) {
	cases := []struct {
		name string
		x    float64
		n    int
		want lrpath.Path
	}{
		{"pi", math.Pi, 10, "RRRLLLLLLL"},
		{"sqrt2", math.Sqrt2, 10, "RLLRRLLRRL"},
		{"zero moves", math.Pi, 0, ""},
		{"half, one move", 0.5, 1, "L"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := approx.Path(tc.x, tc.n)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPath_Errors(t *testing.T) {
	cases := []struct {
		name string
		x    float64
		n    int
		want error
	}{
		{"zero", 0, 5, approx.ErrNonPositive},
		{"negative", -1.5, 5, approx.ErrNonPositive},
		{"nan", math.NaN(), 5, approx.ErrNonPositive},
		{"inf", math.Inf(1), 5, approx.ErrNonPositive},
		{"negative length", math.E, -1, approx.ErrBadLength},
		{"root", 1, 1, approx.ErrExactNode},
		{"two", 2, 2, approx.ErrExactNode},
		{"half", 0.5, 3, approx.ErrExactNode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := approx.Path(tc.x, tc.n)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, ratree.ErrInvalidArgument)
		})
	}
}

// TestFractions_MatchPrefixes checks the incremental products against a
// fresh evaluation of every prefix.
func TestFractions_MatchPrefixes(t *testing.T) {
	const n = 40
	p, err := approx.Path(math.Pi, n)
	require.NoError(t, err)
	fs, err := approx.Fractions(math.Pi, n)
	require.NoError(t, err)
	require.Len(t, fs, n)

	for k := 1; k <= n; k++ {
		prefix, err := p.Prefix(k)
		require.NoError(t, err)
		want, err := tree.SternBrocot(prefix)
		require.NoError(t, err)
		assert.Equal(t, want, fs[k-1], "prefix %d", k)
	}
	assert.Equal(t, rational.MustNew(2108, 671), fs[29])
}

// TestFractions_Bracket checks that each approximant lies on the side of x
// the next move points away from: the next move is L exactly when x is
// smaller than the current node.
func TestFractions_Bracket(t *testing.T) {
	for _, x := range []float64{math.E, math.Pi, math.Sqrt2, 0.1234} {
		const n = 25
		p, err := approx.Path(x, n+1)
		require.NoError(t, err)
		fs, err := approx.Fractions(x, n)
		require.NoError(t, err)
		for k, f := range fs {
			if p.At(k+1) == lrpath.Left {
				assert.Less(t, x, f.Float64(), "x=%v prefix %d", x, k+1)
			} else {
				assert.Greater(t, x, f.Float64(), "x=%v prefix %d", x, k+1)
			}
		}
	}
}

func TestFractions_Sqrt2(t *testing.T) {
	fs, err := approx.Fractions(math.Sqrt2, 10)
	require.NoError(t, err)
	assert.Equal(t, []rational.Fraction{
		rational.MustNew(2, 1), rational.MustNew(3, 2), rational.MustNew(4, 3),
		rational.MustNew(7, 5), rational.MustNew(10, 7), rational.MustNew(17, 12),
		rational.MustNew(24, 17), rational.MustNew(41, 29), rational.MustNew(58, 41),
		rational.MustNew(99, 70),
	}, fs)
}

// TestFractions_LongPi runs the descent far enough that the path only
// describes the float, and checks that the int64 products still hold.
func TestFractions_LongPi(t *testing.T) {
	fs, err := approx.Fractions(math.Pi, 400)
	require.NoError(t, err)
	require.Len(t, fs, 400)
	assert.InDelta(t, math.Pi, fs[len(fs)-1].Float64(), 1e-15)
}

func TestFractions_Empty(t *testing.T) {
	fs, err := approx.Fractions(math.E, 0)
	require.NoError(t, err)
	assert.Empty(t, fs)

	_, err = approx.Fractions(math.E, -3)
	assert.ErrorIs(t, err, approx.ErrBadLength)
}

func TestRange(t *testing.T) {
	cases := []struct {
		r          approx.Range
		len, last  int
		validation error
	}{
		{approx.Range{Start: 1, Stop: 21, Step: 1}, 20, 20, nil},
		{approx.Range{Start: 0, Stop: 10, Step: 3}, 4, 9, nil},
		{approx.Range{Start: 5, Stop: 5, Step: 1}, 0, -1, nil},
		{approx.Range{Start: 2, Stop: 11, Step: 4}, 3, 10, nil},
		{approx.Range{Start: -1, Stop: 5, Step: 1}, 0, -1, approx.ErrBadLength},
		{approx.Range{Start: 3, Stop: 1, Step: 1}, 0, -1, approx.ErrBadLength},
		{approx.Range{Start: 0, Stop: 5, Step: 0}, 0, -1, approx.ErrBadLength},
	}
	for _, tc := range cases {
		if tc.validation != nil {
			assert.ErrorIs(t, tc.r.Validate(), tc.validation, "%+v", tc.r)
		} else {
			assert.NoError(t, tc.r.Validate(), "%+v", tc.r)
		}
		assert.Equal(t, tc.len, tc.r.Len(), "%+v", tc.r)
		assert.Equal(t, tc.last, tc.r.Last(), "%+v", tc.r)
	}
}

func TestFractionsIn_Strided(t *testing.T) {
	all, err := approx.Fractions(math.E, 20)
	require.NoError(t, err)

	got, err := approx.FractionsIn(math.E, approx.Range{Start: 0, Stop: 21, Step: 5})
	require.NoError(t, err)
	assert.Equal(t, []rational.Fraction{rational.One, all[4], all[9], all[14], all[19]}, got)

	// The path is only computed up to the last selected prefix, so an exact
	// node beyond it is not an error.
	got, err = approx.FractionsIn(2, approx.Range{Start: 1, Stop: 2, Step: 1})
	require.NoError(t, err)
	assert.Equal(t, []rational.Fraction{rational.MustNew(2, 1)}, got)

	_, err = approx.FractionsIn(math.E, approx.Range{Start: 4, Stop: 1, Step: 1})
	assert.ErrorIs(t, err, approx.ErrBadLength)
	_, err = approx.FractionsIn(-math.E, approx.Range{Start: 1, Stop: 2, Step: 1})
	assert.ErrorIs(t, err, approx.ErrNonPositive)
}

func TestApproximants(t *testing.T) {
	as, err := approx.Approximants(math.E, approx.Range{Start: 18, Stop: 21, Step: 2})
	require.NoError(t, err)
	require.Len(t, as, 2)

	assert.Equal(t, 18, as[0].Length)
	assert.Equal(t, 20, as[1].Length)
	assert.Equal(t, rational.MustNew(2721, 1001), as[1].Value)
	assert.InDelta(t, 2721.0/1001.0, as[1].Float, 1e-12)
	assert.InDelta(t, math.Abs(2721.0/1001.0-math.E), as[1].Error, 1e-15)
	assert.Less(t, as[1].Error, 1e-6)

	_, err = approx.Approximants(math.E, approx.Range{Step: -1})
	assert.ErrorIs(t, err, approx.ErrBadLength)
}
