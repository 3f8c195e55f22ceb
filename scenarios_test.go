package vatticlip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// canonicalRing rotates a ring so its lexicographically-least point
// (by Y then X) comes first, and reverses it if needed so its signed
// area is non-negative, before comparison. Vertex order is preserved
// otherwise, so this only strips away the ring's arbitrary starting
// vertex and traversal direction, both of which are implementation
// details of the sweep rather than something spec.md §8's scenarios
// pin down.
func canonicalRing(p Path64) Path64 {
	if len(p) == 0 {
		return nil
	}
	cp := append(Path64(nil), p...)
	if Area(cp) < 0 {
		for i, j := 0, len(cp)-1; i < j; i, j = i+1, j-1 {
			cp[i], cp[j] = cp[j], cp[i]
		}
	}
	minIdx := 0
	for i := 1; i < len(cp); i++ {
		if cp[i].Y < cp[minIdx].Y || (cp[i].Y == cp[minIdx].Y && cp[i].X < cp[minIdx].X) {
			minIdx = i
		}
	}
	rotated := make(Path64, len(cp))
	for i := range cp {
		rotated[i] = cp[(minIdx+i)%len(cp)]
	}
	return rotated
}

// scenarioSubjectClip returns spec.md §8's S and C squares:
// S = [(0,0),(10,0),(10,10),(0,10)], C = [(5,5),(15,5),(15,15),(5,15)].
func scenarioSubjectClip() (Path64, Path64) {
	return square(0, 0, 10), square(5, 5, 10)
}

// TestScenarioE1IntersectionLiteralRing pins spec.md §8's E1: a single
// ring [(5,5),(10,5),(10,10),(5,10)].
func TestScenarioE1IntersectionLiteralRing(t *testing.T) {
	s, cPath := scenarioSubjectClip()
	c := NewClipper64()
	c.AddPath(s, PtSubject, false)
	c.AddPath(cPath, PtClip, false)
	closed, open, ok := c.Execute(CtIntersection, FrNonZero)
	require.True(t, ok)
	require.Empty(t, open)
	require.Len(t, closed, 1)

	want := Path64{{X: 5, Y: 5}, {X: 10, Y: 5}, {X: 10, Y: 10}, {X: 5, Y: 10}}
	require.Equal(t, canonicalRing(want), canonicalRing(closed[0]))
}

// TestScenarioE2UnionLiteralRing pins spec.md §8's E2: a single
// eight-point ring tracing both squares' outer boundary.
func TestScenarioE2UnionLiteralRing(t *testing.T) {
	s, cPath := scenarioSubjectClip()
	c := NewClipper64()
	c.AddPath(s, PtSubject, false)
	c.AddPath(cPath, PtClip, false)
	closed, open, ok := c.Execute(CtUnion, FrNonZero)
	require.True(t, ok)
	require.Empty(t, open)
	require.Len(t, closed, 1)

	want := Path64{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}, {X: 15, Y: 5},
		{X: 15, Y: 15}, {X: 5, Y: 15}, {X: 5, Y: 10}, {X: 0, Y: 10},
	}
	require.Equal(t, canonicalRing(want), canonicalRing(closed[0]))
}

// TestScenarioE3DifferenceLiteralRing pins spec.md §8's E3: the L-shape
// left of S once C's overlap is removed.
func TestScenarioE3DifferenceLiteralRing(t *testing.T) {
	s, cPath := scenarioSubjectClip()
	c := NewClipper64()
	c.AddPath(s, PtSubject, false)
	c.AddPath(cPath, PtClip, false)
	closed, open, ok := c.Execute(CtDifference, FrNonZero)
	require.True(t, ok)
	require.Empty(t, open)
	require.Len(t, closed, 1)

	want := Path64{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5},
		{X: 5, Y: 5}, {X: 5, Y: 10}, {X: 0, Y: 10},
	}
	require.Equal(t, canonicalRing(want), canonicalRing(closed[0]))
}

// TestScenarioE4XorLiteralRings pins spec.md §8's E4: two L-shaped
// rings, E3's own L-shape (S\C) and its mirror (C\S).
func TestScenarioE4XorLiteralRings(t *testing.T) {
	s, cPath := scenarioSubjectClip()
	c := NewClipper64()
	c.AddPath(s, PtSubject, false)
	c.AddPath(cPath, PtClip, false)
	closed, open, ok := c.Execute(CtXor, FrNonZero)
	require.True(t, ok)
	require.Empty(t, open)
	require.Len(t, closed, 2)

	wantSMinusC := Path64{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5},
		{X: 5, Y: 5}, {X: 5, Y: 10}, {X: 0, Y: 10},
	}
	wantCMinusS := Path64{
		{X: 10, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15},
		{X: 5, Y: 15}, {X: 5, Y: 10}, {X: 10, Y: 10},
	}

	got := []Path64{canonicalRing(closed[0]), canonicalRing(closed[1])}
	want := []Path64{canonicalRing(wantSMinusC), canonicalRing(wantCMinusS)}
	require.ElementsMatch(t, want, got)
}

// TestScenarioE5HoleReportedAsChildOfOuter pins spec.md §8's E5: S with
// an inner hole H, added as two subject paths, unioned under EvenOdd
// and emitted as a tree with H as a hole child of S's outer ring.
func TestScenarioE5HoleReportedAsChildOfOuter(t *testing.T) {
	s, _ := scenarioSubjectClip()
	hole := Path64{{X: 3, Y: 3}, {X: 7, Y: 3}, {X: 7, Y: 7}, {X: 3, Y: 7}}

	c := NewClipper64()
	c.AddPath(s, PtSubject, false)
	c.AddPath(hole, PtSubject, false)
	tree, open, ok := c.ExecuteTree(CtUnion, FrEvenOdd)
	require.True(t, ok)
	require.Empty(t, open)
	require.Len(t, tree.Children, 1)

	outer := tree.Children[0]
	require.False(t, outer.IsHole())
	require.Equal(t, canonicalRing(s), canonicalRing(outer.Polygon))

	require.Len(t, outer.Children, 1)
	child := outer.Children[0]
	require.True(t, child.IsHole())
	require.Equal(t, canonicalRing(hole), canonicalRing(child.Polygon))
}

// TestScenarioE6OpenPathClippedToLiteralSegment pins spec.md §8's E6:
// a horizontal open subject polyline clipped against S under
// Intersection emits exactly the segment inside S, (0,5)-(10,5).
func TestScenarioE6OpenPathClippedToLiteralSegment(t *testing.T) {
	s, _ := scenarioSubjectClip()
	c := NewClipper64()
	c.AddPath(s, PtClip, false)
	c.AddPath(Path64{{X: -5, Y: 5}, {X: 15, Y: 5}}, PtSubject, true)

	closed, open, ok := c.Execute(CtIntersection, FrNonZero)
	require.True(t, ok)
	require.Empty(t, closed)
	require.Len(t, open, 1)

	got := open[0]
	if got[0].X > got[len(got)-1].X {
		for i, j := 0, len(got)-1; i < j; i, j = i+1, j-1 {
			got[i], got[j] = got[j], got[i]
		}
	}
	require.Equal(t, Path64{{X: 0, Y: 5}, {X: 10, Y: 5}}, got)
}
