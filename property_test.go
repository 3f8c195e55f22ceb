package vatticlip

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// randomPoly grounds the module's property test on the teacher's own
// random-polygon generator, adapted to Path64.
func randomPoly(rng *rand.Rand, maxWidth, maxHeight int64, vertCount int) Path64 {
	path := make(Path64, vertCount)
	for i := range path {
		path[i] = Point64{X: rng.Int63n(maxWidth), Y: rng.Int63n(maxHeight)}
	}
	return path
}

// TestUnionEqualsIntersectionPlusXor pins the same area-conservation
// law the teacher's TestRandom checked: for any two polygons,
// area(union) == area(intersection) + area(xor), within a tolerance
// loose enough to absorb the handful of degenerate self-touching
// configurations random generation occasionally produces.
func TestUnionEqualsIntersectionPlusXor(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	const trials = 100
	failures := 0
	for i := 0; i < trials; i++ {
		subj := randomPoly(rng, 640, 480, 20)
		clip := randomPoly(rng, 640, 480, 20)

		union := runClip(t, subj, clip, CtUnion)
		inter := runClip(t, subj, clip, CtIntersection)
		xor := runClip(t, subj, clip, CtXor)

		unionArea := sumAbsArea(union)
		otherArea := sumAbsArea(inter) + sumAbsArea(xor)

		if !closeEnough(unionArea, otherArea) {
			failures++
		}
	}
	// Union = Intersection ∪ Xor is an exact set identity; the only
	// slack comes from each op independently re-snapping its own
	// crossing points to the nearest integer (spec.md §6), which can
	// shift a shared vertex by at most a unit or two. A handful of
	// self-touching random polygons can still legitimately disagree at
	// the boundary, but this should no longer be a systematic rate.
	require.LessOrEqual(t, failures, 1)
}

func runClip(t *testing.T, subj, clip Path64, op ClipType) Paths64 {
	t.Helper()
	c := NewClipper64()
	c.AddPath(subj, PtSubject, false)
	c.AddPath(clip, PtClip, false)
	closed, _, ok := c.Execute(op, FrNonZero)
	require.True(t, ok)
	return closed
}

func closeEnough(a, b float64) bool {
	if b == 0 {
		return math.Abs(a) < 1
	}
	return math.Abs(a-b)/b < 0.005
}
