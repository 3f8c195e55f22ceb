// Package vatticlip implements a Vatti-style sweep-line polygon
// clipping engine: Boolean set operations (intersection, union,
// difference, symmetric difference) over closed polygons and open
// polylines, with support for holes, self-intersections and four
// fill rules.
//
// The sweep is exact: all coordinates are signed 64-bit integers and
// every geometric predicate is computed with 128-bit-wide
// intermediate products, so there is no floating-point tolerance
// anywhere in the algorithm. The one place a rational quotient is
// produced (an edge/edge crossing) is rounded to the nearest integer,
// ties away from zero.
package vatticlip

import "fmt"

// Point64 is a signed 64-bit integer coordinate. Z is carried through
// unchanged except at newly created intersection points, where a
// caller-supplied ZCallback64 may stamp it.
type Point64 struct {
	X, Y, Z int64
}

func (p Point64) String() string {
	if p.Z != 0 {
		return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
	}
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Equals reports whether p and q have the same X and Y (Z is ignored,
// matching spec.md's point-equality definition used throughout the
// sweep).
func (p Point64) Equals(q Point64) bool {
	return p.X == q.X && p.Y == q.Y
}

// PointD is a floating-point coordinate, used only outside the CORE
// sweep by the scaling adaptor in scale.go.
type PointD struct {
	X, Y float64
}

// Path64 is an ordered sequence of vertices describing one closed
// polygon (implicit closing edge from the last point back to the
// first) or one open polyline.
type Path64 []Point64

// Paths64 is a collection of independent paths, e.g. all subject
// paths or all clip paths passed to a single AddPaths call, or the
// closed-path half of a solution.
type Paths64 []Path64

// Rect64 is an axis-aligned bounding rectangle.
type Rect64 struct {
	Left, Top, Right, Bottom int64
}

// IsEmpty reports whether r contains no area (an uninitialized or
// degenerate rectangle).
func (r Rect64) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// ClipType selects the Boolean set operation Execute performs between
// the subject and clip path sets.
type ClipType int

const (
	CtNone ClipType = iota
	CtIntersection
	CtUnion
	CtDifference
	CtXor
)

func (ct ClipType) String() string {
	switch ct {
	case CtNone:
		return "None"
	case CtIntersection:
		return "Intersection"
	case CtUnion:
		return "Union"
	case CtDifference:
		return "Difference"
	case CtXor:
		return "Xor"
	default:
		return "ClipType(?)"
	}
}

// FillRule selects the predicate mapping a winding count to "inside".
type FillRule int

const (
	FrEvenOdd FillRule = iota
	FrNonZero
	FrPositive
	FrNegative
)

func (fr FillRule) String() string {
	switch fr {
	case FrEvenOdd:
		return "EvenOdd"
	case FrNonZero:
		return "NonZero"
	case FrPositive:
		return "Positive"
	case FrNegative:
		return "Negative"
	default:
		return "FillRule(?)"
	}
}

// PolyType tags an input path as belonging to the subject or the clip
// set. Open paths may only be Subject; AddPaths rejects an open Clip
// path (spec.md §6).
type PolyType int

const (
	PtSubject PolyType = iota
	PtClip
)

// ZCallback64 is invoked whenever the sweep manufactures a new
// intersection point that did not exist in either input path,
// allowing a caller to stamp a Z value onto it. e1Bot..e2Top are the
// four endpoints of the two crossing edges; pt is the new point,
// passed by pointer so the callback may rewrite pt.Z.
type ZCallback64 func(e1Bot, e1Top, e2Bot, e2Top Point64, pt *Point64)
