package vatticlip

import "math/big"

// crossProductSign returns the sign of the cross product used
// throughout the sweep for orientation and collinearity tests:
//
//	(pt2-pt1) x (pt3-pt2)
//
// Coordinates are the full signed 64-bit range, so intermediate
// products can exceed 64 bits; big.Int is used rather than a
// hand-rolled 128-bit multiply so every call site gets an exact
// answer with no risk of silent overflow, at a cost that is
// negligible next to the rest of the sweep's pointer-chasing work.
func crossProductSign(pt1, pt2, pt3 Point64) int {
	dx1 := new(big.Int).Sub(big.NewInt(pt2.X), big.NewInt(pt1.X))
	dy2 := new(big.Int).Sub(big.NewInt(pt3.Y), big.NewInt(pt2.Y))
	term1 := new(big.Int).Mul(dx1, dy2)

	dy1 := new(big.Int).Sub(big.NewInt(pt2.Y), big.NewInt(pt1.Y))
	dx2 := new(big.Int).Sub(big.NewInt(pt3.X), big.NewInt(pt2.X))
	term2 := new(big.Int).Mul(dy1, dx2)

	return term1.Sub(term1, term2).Sign()
}

func isCollinear(pt1, pt2, pt3 Point64) bool {
	return crossProductSign(pt1, pt2, pt3) == 0
}

// slopesEqual reports whether segment (pt1,pt2) and segment (pt3,pt4)
// have the same slope, using exact integer arithmetic.
func slopesEqual(pt1, pt2, pt3, pt4 Point64) bool {
	dy1 := new(big.Int).Sub(big.NewInt(pt2.Y), big.NewInt(pt1.Y))
	dx2 := new(big.Int).Sub(big.NewInt(pt4.X), big.NewInt(pt3.X))
	lhs := new(big.Int).Mul(dy1, dx2)

	dx1 := new(big.Int).Sub(big.NewInt(pt2.X), big.NewInt(pt1.X))
	dy2 := new(big.Int).Sub(big.NewInt(pt4.Y), big.NewInt(pt3.Y))
	rhs := new(big.Int).Mul(dx1, dy2)

	return lhs.Cmp(rhs) == 0
}

// Area returns the signed area of a closed path using the shoelace
// formula (positive for a clockwise ring under this module's default
// orientation convention, per spec.md §6).
func Area(path Path64) float64 {
	if len(path) < 3 {
		return 0
	}
	sum := new(big.Int)
	n := len(path)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a := new(big.Int).Mul(big.NewInt(path[i].X+path[j].X), big.NewInt(path[j].Y-path[i].Y))
		sum.Add(sum, a)
	}
	f := new(big.Float).SetInt(sum)
	f.Quo(f, big.NewFloat(2))
	result, _ := f.Float64()
	return result
}

// areaOfOutPts sums the signed area of an OutPt ring the same way
// Area does for a finished Path64, without allocating an intermediate
// slice.
func areaOfOutPts(op *OutPt) float64 {
	if op == nil {
		return 0
	}
	sum := new(big.Int)
	p := op
	for {
		prev := p.Prev
		a := new(big.Int).Mul(big.NewInt(prev.Pt.X+p.Pt.X), big.NewInt(p.Pt.Y-prev.Pt.Y))
		sum.Add(sum, a)
		p = p.Next
		if p == op {
			break
		}
	}
	f := new(big.Float).SetInt(sum)
	f.Quo(f, big.NewFloat(2))
	result, _ := f.Float64()
	return result
}

// GetBounds returns the axis-aligned bounding rectangle of path, or
// the zero Rect64 if path is empty.
func GetBounds(path Path64) Rect64 {
	if len(path) == 0 {
		return Rect64{}
	}
	r := Rect64{Left: path[0].X, Right: path[0].X, Top: path[0].Y, Bottom: path[0].Y}
	for _, p := range path[1:] {
		if p.X < r.Left {
			r.Left = p.X
		}
		if p.X > r.Right {
			r.Right = p.X
		}
		if p.Y < r.Top {
			r.Top = p.Y
		}
		if p.Y > r.Bottom {
			r.Bottom = p.Y
		}
	}
	return r
}

// pointBetween reports whether pt lies within the axis-aligned box
// spanned by corner1 and corner2. The check compares pt's coordinate
// against *both* corners' min and max — comparing against only one
// corner (an easy mistake to make when a segment is copied end-to-end
// rather than min/max'd first) silently accepts points beyond the far
// end of a segment whenever corner1 isn't the lesser of the two.
func pointBetween(pt, corner1, corner2 Point64) bool {
	minX, maxX := corner1.X, corner2.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := corner1.Y, corner2.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return pt.X >= minX && pt.X <= maxX && pt.Y >= minY && pt.Y <= maxY
}

// PointOnLineSegment reports whether pt lies on the closed segment
// linePt1-linePt2.
func PointOnLineSegment(pt, linePt1, linePt2 Point64) bool {
	if pt.Equals(linePt1) || pt.Equals(linePt2) {
		return true
	}
	return pointBetween(pt, linePt1, linePt2) && isCollinear(linePt1, pt, linePt2)
}

// PointOnPolygon reports whether pt lies exactly on the boundary of
// the closed path.
func PointOnPolygon(pt Point64, path Path64) bool {
	n := len(path)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if PointOnLineSegment(pt, path[i], path[j]) {
			return true
		}
	}
	return false
}

// PointInPolygon reports whether pt is strictly inside the closed
// path, using an even-odd ray cast. Points on the boundary return
// false; callers that need boundary-inclusive containment should
// check PointOnPolygon first.
func PointInPolygon(pt Point64, path Path64) bool {
	n := len(path)
	if n < 3 || PointOnPolygon(pt, path) {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		pi, pj := path[i], path[j]
		if (pi.Y <= pt.Y && pt.Y < pj.Y) || (pj.Y <= pt.Y && pt.Y < pi.Y) {
			if pt.X < (pj.X-pi.X)*(pt.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// poly2ContainsPoly1 reports whether ring1 lies inside ring2 (used to
// decide owner/hole relationships after a split or merge). The answer
// is decided by the first vertex of ring1 that is not on ring2's
// boundary; later vertices are not checked. If every vertex of ring1
// is on the boundary, it reports true.
func poly2ContainsPoly1(op1, op2 *OutPt) bool {
	p := op1
	for {
		path2 := outPtsToPath(op2)
		if !PointOnPolygon(p.Pt, path2) {
			return PointInPolygon(p.Pt, path2)
		}
		p = p.Next
		if p == op1 {
			return true
		}
	}
}

func outPtsToPath(op *OutPt) Path64 {
	if op == nil {
		return nil
	}
	var path Path64
	p := op
	for {
		path = append(path, p.Pt)
		p = p.Next
		if p == op {
			break
		}
	}
	return path
}
