package vatticlip

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalePathDRoundsTiesAwayFromZero(t *testing.T) {
	in := []PointD{{X: 1.5, Y: -1.5}, {X: 2.4, Y: -2.6}}
	out, err := ScalePathD(in, 1)
	require.NoError(t, err)
	require.Equal(t, Path64{{X: 2, Y: -2}, {X: 2, Y: -3}}, out)
}

func TestScalePathDAppliesScaleFactor(t *testing.T) {
	in := []PointD{{X: 1.2345, Y: -6.789}}
	out, err := ScalePathD(in, 1000)
	require.NoError(t, err)
	require.Equal(t, Path64{{X: 1235, Y: -6789}}, out)
}

func TestScaleUnscaleRoundTrips(t *testing.T) {
	in := []PointD{{X: 12.5, Y: -3.25}, {X: 0, Y: 100.75}}
	scaled, err := ScalePathD(in, 100)
	require.NoError(t, err)

	back, err := UnscalePath64(scaled, 100)
	require.NoError(t, err)
	require.Len(t, back, len(in))
	for i := range in {
		require.InDelta(t, in[i].X, back[i].X, 1e-9)
		require.InDelta(t, in[i].Y, back[i].Y, 1e-9)
	}
}

func TestScalePathDRejectsNonPositiveScale(t *testing.T) {
	_, err := ScalePathD([]PointD{{X: 1, Y: 1}}, 0)
	require.Error(t, err)
	var cfgErr *ErrConfig
	require.ErrorAs(t, err, &cfgErr)

	_, err = ScalePathD([]PointD{{X: 1, Y: 1}}, -2)
	require.ErrorAs(t, err, &cfgErr)
}

func TestScalePathDRejectsNonFiniteScale(t *testing.T) {
	_, err := ScalePathD([]PointD{{X: 1, Y: 1}}, math.NaN())
	require.Error(t, err)

	_, err = ScalePathD([]PointD{{X: 1, Y: 1}}, math.Inf(1))
	require.Error(t, err)
}

func TestScalePathDRejectsOverflow(t *testing.T) {
	_, err := ScalePathD([]PointD{{X: math.MaxFloat64, Y: 0}}, 1)
	require.Error(t, err)
	var cfgErr *ErrConfig
	require.ErrorAs(t, err, &cfgErr)
}

func TestUnscalePath64RejectsNonPositiveScale(t *testing.T) {
	_, err := UnscalePath64(Path64{{X: 1, Y: 1}}, 0)
	require.Error(t, err)
}

func TestScalePathsDStopsAtFirstInvalidPath(t *testing.T) {
	good := []PointD{{X: 1, Y: 1}}
	bad := []PointD{{X: math.MaxFloat64, Y: 0}}
	_, err := ScalePathsD([][]PointD{good, bad}, 1)
	require.Error(t, err)
}
