package vatticlip

import (
	"math/big"
	"sort"
)

// IntersectNode records one crossing discovered by buildIntersectList,
// deferred until processIntersectList applies it to the real AEL
// (spec.md §4.3.2-§4.3.3).
type IntersectNode struct {
	Edge1, Edge2 *Active
	Pt           Point64
}

// intersectPoint computes the exact crossing point of the infinite
// lines through e1 and e2, rounding the rational result to the
// nearest integer, ties away from zero (spec.md §6). Coordinates are
// carried in big.Int throughout so no precision is lost regardless of
// how large the inputs are.
func intersectPoint(e1, e2 *Active) Point64 {
	x1, y1 := big.NewInt(e1.Bot.X), big.NewInt(e1.Bot.Y)
	x2, y2 := big.NewInt(e1.Top.X), big.NewInt(e1.Top.Y)
	x3, y3 := big.NewInt(e2.Bot.X), big.NewInt(e2.Bot.Y)
	x4, y4 := big.NewInt(e2.Top.X), big.NewInt(e2.Top.Y)

	a := new(big.Int).Sub(new(big.Int).Mul(x1, y2), new(big.Int).Mul(y1, x2))
	b := new(big.Int).Sub(new(big.Int).Mul(x3, y4), new(big.Int).Mul(y3, x4))

	x1x2 := new(big.Int).Sub(x1, x2)
	y1y2 := new(big.Int).Sub(y1, y2)
	x3x4 := new(big.Int).Sub(x3, x4)
	y3y4 := new(big.Int).Sub(y3, y4)

	denom := new(big.Int).Sub(new(big.Int).Mul(x1x2, y3y4), new(big.Int).Mul(y1y2, x3x4))
	if denom.Sign() == 0 {
		return e1.Top
	}

	numX := new(big.Int).Sub(new(big.Int).Mul(a, x3x4), new(big.Int).Mul(x1x2, b))
	numY := new(big.Int).Sub(new(big.Int).Mul(a, y3y4), new(big.Int).Mul(y1y2, b))

	return Point64{X: roundRatToInt64(numX, denom), Y: roundRatToInt64(numY, denom)}
}

// roundRatToInt64 rounds num/denom to the nearest int64, ties away
// from zero.
func roundRatToInt64(num, denom *big.Int) int64 {
	if denom.Sign() < 0 {
		num = new(big.Int).Neg(num)
		denom = new(big.Int).Neg(denom)
	}
	q, r := new(big.Int).QuoRem(num, denom, new(big.Int))
	twiceR := new(big.Int).Abs(new(big.Int).Mul(r, big.NewInt(2)))
	if twiceR.Cmp(denom) >= 0 {
		if num.Sign() >= 0 {
			q.Add(q, big.NewInt(1))
		} else {
			q.Sub(q, big.NewInt(1))
		}
	}
	return q.Int64()
}

// swapPositionsInSEL mirrors swapPositionsInAEL but for the SEL
// working copy built by buildIntersectList.
func (cl *Clipper64) swapPositionsInSEL(e1, e2 *Active) {
	if e1 == e2 {
		return
	}
	if e1.NextInSEL == e2 {
		next, prev := e2.NextInSEL, e1.PrevInSEL
		if next != nil {
			next.PrevInSEL = e1
		}
		if prev != nil {
			prev.NextInSEL = e2
		}
		e2.PrevInSEL, e2.NextInSEL = prev, e1
		e1.PrevInSEL, e1.NextInSEL = e2, next
	} else if e2.NextInSEL == e1 {
		next, prev := e1.NextInSEL, e2.PrevInSEL
		if next != nil {
			next.PrevInSEL = e2
		}
		if prev != nil {
			prev.NextInSEL = e1
		}
		e1.PrevInSEL, e1.NextInSEL = prev, e2
		e2.PrevInSEL, e2.NextInSEL = e1, next
	} else {
		return // buildIntersectList only ever swaps adjacent SEL pairs
	}
	if e1.PrevInSEL == nil {
		cl.sel = e1
	} else if e2.PrevInSEL == nil {
		cl.sel = e2
	}
}

// buildIntersectList mirrors the AEL into the SEL ordered by each
// edge's projected X at topY, using an adjacent-swap (bubble) pass to
// both discover crossings and leave the SEL in its topY-correct order
// (spec.md §4.3.2).
func (cl *Clipper64) buildIntersectList(topY int64) {
	cl.sel = cl.actives
	for e := cl.actives; e != nil; e = e.NextInAEL {
		e.PrevInSEL = e.PrevInAEL
		e.NextInSEL = e.NextInAEL
		e.Jump = nil
	}

	swapped := true
	for swapped {
		swapped = false
		for e := cl.sel; e != nil && e.NextInSEL != nil; {
			e2 := e.NextInSEL
			if topX(e, topY) > topX(e2, topY) {
				pt := intersectPoint(e, e2)
				if cl.ZCallback != nil {
					cl.ZCallback(e.Bot, e.Top, e2.Bot, e2.Top, &pt)
				}
				cl.intersectList = append(cl.intersectList, &IntersectNode{Edge1: e, Edge2: e2, Pt: pt})
				cl.swapPositionsInSEL(e, e2)
				swapped = true
			} else {
				e = e.NextInSEL
			}
		}
	}
}

// doIntersections resolves every crossing between the current
// scanline and topY: it builds the intersect list against the AEL's
// projected positions at topY, then applies each one bottom-to-top.
func (cl *Clipper64) doIntersections(topY int64) {
	cl.buildIntersectList(topY)
	if len(cl.intersectList) == 0 {
		return
	}
	cl.processIntersectList()
	cl.intersectList = cl.intersectList[:0]
}

func (cl *Clipper64) edgesAreAdjacent(node *IntersectNode) bool {
	return node.Edge1.NextInAEL == node.Edge2 || node.Edge2.NextInAEL == node.Edge1
}

// fixupIntersectionOrder looks ahead from i for the next node whose
// edges are still AEL-adjacent, and brings it forward to slot i, per
// spec.md §4.3.3's requirement that a node only be applied while it
// describes an actual adjacent pair. Returns -1 if no such node
// remains, meaning slot i's edges were already separated by an
// earlier swap and its crossing is now moot.
func (cl *Clipper64) fixupIntersectionOrder(i int) int {
	for j := i + 1; j < len(cl.intersectList); j++ {
		if cl.edgesAreAdjacent(cl.intersectList[j]) {
			cl.intersectList[i], cl.intersectList[j] = cl.intersectList[j], cl.intersectList[i]
			return i
		}
	}
	return -1
}

// processIntersectList applies every discovered crossing to the real
// AEL in bottom-to-top order (spec.md §4.3.3).
func (cl *Clipper64) processIntersectList() {
	sort.SliceStable(cl.intersectList, func(i, j int) bool {
		return cl.intersectList[i].Pt.Y < cl.intersectList[j].Pt.Y
	})
	for i := 0; i < len(cl.intersectList); i++ {
		node := cl.intersectList[i]
		if !cl.edgesAreAdjacent(node) {
			if cl.fixupIntersectionOrder(i) < 0 {
				continue
			}
			node = cl.intersectList[i]
		}
		cl.intersectEdges(node.Edge1, node.Edge2, node.Pt)
		cl.swapPositionsInAEL(node.Edge1, node.Edge2)
		node.Edge1.Curr, node.Edge2.Curr = node.Pt, node.Pt
	}
}

// intersectEdges implements spec.md §4.4.4: update both edges'
// winding counts across the crossing, then reconcile the OutPt rings
// against whichever edges were already hot.
func (cl *Clipper64) intersectEdges(e1, e2 *Active, pt Point64) {
	if cl.hasOpenPaths && (e1.IsOpen || e2.IsOpen) {
		cl.intersectOpenEdge(e1, e2, pt)
		return
	}

	samePolytype := e1.LocalMin.Polytype == e2.LocalMin.Polytype
	if samePolytype {
		if cl.fillRule == FrEvenOdd {
			e1.WindCount, e2.WindCount = e2.WindCount, e1.WindCount
		} else {
			if e1.WindCount+e2.WindDx == 0 {
				e1.WindCount = -e1.WindCount
			} else {
				e1.WindCount += e2.WindDx
			}
			if e2.WindCount-e1.WindDx == 0 {
				e2.WindCount = -e2.WindCount
			} else {
				e2.WindCount -= e1.WindDx
			}
		}
	} else if cl.fillRule == FrEvenOdd {
		if e1.WindCount2 == 0 {
			e1.WindCount2 = 1
		} else {
			e1.WindCount2 = 0
		}
		if e2.WindCount2 == 0 {
			e2.WindCount2 = 1
		} else {
			e2.WindCount2 = 0
		}
	} else {
		e1.WindCount2 += e2.WindDx
		e2.WindCount2 += e1.WindDx
	}

	old1 := normalizedWindCount(cl.fillRule, e1.WindCount)
	old2 := normalizedWindCount(cl.fillRule, e2.WindCount)

	e1WasHot := e1.OutRec != nil
	e2WasHot := e2.OutRec != nil

	if !e1WasHot && old1 != 0 && old1 != 1 {
		return
	}
	if !e2WasHot && old2 != 0 && old2 != 1 {
		return
	}

	switch {
	case e1WasHot && e2WasHot:
		bothNearBoundary := (old1 == 0 || old1 == 1) && (old2 == 0 || old2 == 1)
		switch {
		case bothNearBoundary && (!samePolytype || cl.clipType == CtXor):
			// A genuine local maximum: the two rings meet and this
			// closes (or, if they're different rings, merges and
			// closes) the boundary here.
			cl.addLocalMaxPoly(e1, e2, pt)
		case e1.OutRec == e2.OutRec || isFront(e1):
			// The rings touch and immediately re-separate: close off
			// the old boundary and open a fresh one at the same point.
			op1 := cl.addLocalMaxPoly(e1, e2, pt)
			op2 := cl.addLocalMinPoly(e1, e2, pt)
			if op1 != nil && op2 != nil && op1.Pt.Equals(op2.Pt) &&
				slopesEqual(e1.Bot, pt, e2.Bot, pt) {
				cl.addJoinOutPts(op1, op2)
			}
		default:
			// An ordinary crossing between two already-hot edges: each
			// keeps building its own ring, they just swap which edge
			// carries which.
			addOutPt(e1, pt)
			addOutPt(e2, pt)
			swapOutrecs(e1, e2)
		}
	case e1WasHot:
		addOutPt(e1, pt)
		swapOutrecs(e1, e2)
	case e2WasHot:
		addOutPt(e2, pt)
		swapOutrecs(e1, e2)
	default:
		if cl.isContributingClosed(e1) && cl.isContributingClosed(e2) {
			cl.addLocalMinPoly(e1, e2, pt)
		}
	}
}

// intersectOpenEdge handles a crossing between an open (polyline) edge
// and a closed one: the open edge starts or continues an open OutRec
// only where it lies inside the closed edge's region, per the
// isContributingOpen rule (spec.md §4.4.2's open-path wind counts).
func (cl *Clipper64) intersectOpenEdge(e1, e2 *Active, pt Point64) {
	if e1.IsOpen && e2.IsOpen {
		return
	}
	edgeO, edgeC := e1, e2
	if e2.IsOpen {
		edgeO, edgeC = e2, e1
	}
	if edgeC.OutRec == nil {
		return
	}

	var inside bool
	switch cl.fillRule {
	case FrPositive:
		inside = edgeC.WindCount2 > 0
	case FrNegative:
		inside = edgeC.WindCount2 < 0
	default:
		inside = edgeC.WindCount2 != 0
	}
	if !inside {
		if edgeO.OutRec != nil {
			addOutPt(edgeO, pt)
		}
		return
	}
	if edgeO.OutRec == nil {
		outrec := cl.newOutRec()
		outrec.State = orOpen
		edgeO.OutRec = outrec
		newOutPtRing(pt, outrec)
	} else {
		addOutPt(edgeO, pt)
	}
}
