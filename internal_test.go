package vatticlip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPointBetweenComparesAgainstBothCorners pins the corrected
// pointBetween reading: a point's coordinate is checked against the
// min and max of both corners, not just the first one, so the
// function still works when corner1 is not already the lesser corner.
func TestPointBetweenComparesAgainstBothCorners(t *testing.T) {
	corner1 := Point64{X: 10, Y: 0}
	corner2 := Point64{X: 0, Y: 0}

	require.True(t, pointBetween(Point64{X: 5, Y: 0}, corner1, corner2))
	require.True(t, pointBetween(corner1, corner1, corner2))
	require.True(t, pointBetween(corner2, corner1, corner2))
	require.False(t, pointBetween(Point64{X: 15, Y: 0}, corner1, corner2))
	require.False(t, pointBetween(Point64{X: -5, Y: 0}, corner1, corner2))
}

// TestBuildPathFindsLocalMinAndMaxOfSquare pins buildPath/addLocMin
// directly against the exact square used throughout vatticlip_test.go,
// independent of any downstream sweep or area-sum check: a closed
// square ring must produce exactly one LocalMinimum (the flat bottom,
// registered once at its second vertex) and exactly one vfLocalMax
// vertex (the flat top).
func TestBuildPathFindsLocalMinAndMaxOfSquare(t *testing.T) {
	cb := &ClipperBase{}
	square := Path64{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

	head := cb.buildPath(square, false, PtSubject)
	require.NotNil(t, head)
	require.Len(t, cb.minimaList, 1)
	require.Equal(t, Point64{X: 10, Y: 0}, cb.minimaList[0].Vertex.Pt)

	var maxima []Point64
	v := head
	for {
		if v.Flags.has(vfLocalMax) {
			maxima = append(maxima, v.Pt)
		}
		v = v.Next
		if v == head {
			break
		}
	}
	require.Equal(t, []Point64{{X: 0, Y: 10}}, maxima)
}

// TestBuildPathFindsLocalMinOfTriangle exercises a ring whose first
// vertex is itself the sole local minimum, the case that most directly
// depends on goingUp's initial sign matching nowGoingUp's.
func TestBuildPathFindsLocalMinOfTriangle(t *testing.T) {
	cb := &ClipperBase{}
	triangle := Path64{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: -10, Y: 10}}

	head := cb.buildPath(triangle, false, PtSubject)
	require.NotNil(t, head)
	require.Len(t, cb.minimaList, 1)
	require.Equal(t, Point64{X: 0, Y: 0}, cb.minimaList[0].Vertex.Pt)
}

// TestValidAelOrderKeepsOrderForTwoOldEdges pins the resolution of
// this module's coincident-bottom tie-break: when the resident edge
// was not just created at the newcomer's Y (it is an "old" edge
// already progressed past its own local minimum), isValidAelOrder
// falls back to the newcomer's IsLeftBound flag on an
// otherwise-collinear tie.
func TestValidAelOrderKeepsOrderForTwoOldEdges(t *testing.T) {
	sharedVertexTop := &Vertex{}

	resident := &Active{
		Curr:      Point64{X: 5, Y: 5},
		Bot:       Point64{X: 0, Y: 2},
		Top:       Point64{X: 5, Y: 3},
		VertexTop: sharedVertexTop,
	}
	newcomer := &Active{
		Curr:        Point64{X: 5, Y: 5},
		Bot:         Point64{X: 5, Y: 5},
		Top:         Point64{X: 5, Y: 3},
		VertexTop:   sharedVertexTop,
		IsLeftBound: false,
	}

	require.Equal(t, newcomer.IsLeftBound, isValidAelOrder(resident, newcomer))

	newcomer.IsLeftBound = true
	require.Equal(t, newcomer.IsLeftBound, isValidAelOrder(resident, newcomer))
}
