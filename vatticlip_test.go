package vatticlip

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func square(x0, y0, side int64) Path64 {
	return Path64{
		{X: x0, Y: y0},
		{X: x0 + side, Y: y0},
		{X: x0 + side, Y: y0 + side},
		{X: x0, Y: y0 + side},
	}
}

func sumAbsArea(paths Paths64) float64 {
	var total float64
	for _, p := range paths {
		total += math.Abs(Area(p))
	}
	return total
}

func clipTwoSquares(t *testing.T, op ClipType) Paths64 {
	t.Helper()
	c := NewClipper64()
	c.AddPath(square(0, 0, 10), PtSubject, false)
	c.AddPath(square(5, 5, 10), PtClip, false)
	closed, open, ok := c.Execute(op, FrNonZero)
	require.True(t, ok)
	require.Empty(t, open)
	return closed
}

func TestOverlappingSquares(t *testing.T) {
	require.InDelta(t, 25.0, sumAbsArea(clipTwoSquares(t, CtIntersection)), 1e-6)
	require.InDelta(t, 175.0, sumAbsArea(clipTwoSquares(t, CtUnion)), 1e-6)
	require.InDelta(t, 75.0, sumAbsArea(clipTwoSquares(t, CtDifference)), 1e-6)
	require.InDelta(t, 150.0, sumAbsArea(clipTwoSquares(t, CtXor)), 1e-6)
}

func TestDisjointSquaresIntersectionIsEmpty(t *testing.T) {
	c := NewClipper64()
	c.AddPath(square(0, 0, 5), PtSubject, false)
	c.AddPath(square(100, 100, 5), PtClip, false)
	closed, open, ok := c.Execute(CtIntersection, FrNonZero)
	require.True(t, ok)
	require.Empty(t, closed)
	require.Empty(t, open)
}

func TestIdenticalSquaresUnionEqualsEither(t *testing.T) {
	c := NewClipper64()
	c.AddPath(square(0, 0, 10), PtSubject, false)
	c.AddPath(square(0, 0, 10), PtClip, false)
	closed, _, ok := c.Execute(CtUnion, FrNonZero)
	require.True(t, ok)
	require.InDelta(t, 100.0, sumAbsArea(closed), 1e-6)
}

func TestPolygonWithHoleReportedAsHole(t *testing.T) {
	outer := square(0, 0, 20)
	hole := Path64{{X: 5, Y: 5}, {X: 5, Y: 15}, {X: 15, Y: 15}, {X: 15, Y: 5}}

	c := NewClipper64()
	c.AddPath(outer, PtSubject, false)
	c.AddPath(hole, PtSubject, false)

	tree, _, ok := c.ExecuteTree(CtUnion, FrEvenOdd)
	require.True(t, ok)
	require.NotNil(t, tree)

	var holes, outers int
	var walk func(n *PolyPath64)
	walk = func(n *PolyPath64) {
		for _, child := range n.Children {
			if child.IsHole() {
				holes++
			} else {
				outers++
			}
			walk(child)
		}
	}
	walk(&tree.PolyPath64)

	require.Equal(t, 1, outers)
	require.Equal(t, 1, holes)
}

func TestOpenPathClippedToSquare(t *testing.T) {
	c := NewClipper64()
	c.AddPath(square(0, 0, 10), PtClip, false)
	// A rising diagonal that enters the square at x=0 and leaves at
	// x=10, well clear of any corner.
	c.AddPath(Path64{{X: -5, Y: 3}, {X: 15, Y: 7}}, PtSubject, true)

	closed, open, ok := c.Execute(CtIntersection, FrNonZero)
	require.True(t, ok)
	require.Empty(t, closed)
	require.Len(t, open, 1)

	xs := []int64{open[0][0].X, open[0][len(open[0])-1].X}
	require.ElementsMatch(t, []int64{0, 10}, xs)
}

func TestAddPathsRejectsOpenClip(t *testing.T) {
	c := NewClipper64()
	c.AddPath(Path64{{X: 0, Y: 0}, {X: 1, Y: 1}}, PtClip, true)
	require.Empty(t, c.vertexLists)
}

func TestAddPathSkipsDegenerateInput(t *testing.T) {
	c := NewClipper64()
	c.AddPath(Path64{{X: 0, Y: 0}}, PtSubject, false)
	require.Empty(t, c.vertexLists)
}
