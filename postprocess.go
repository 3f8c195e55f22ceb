package vatticlip

import "math"

// processJoinList implements spec.md §4.9: apply every deferred
// Joiner (splitting a ring that closed on itself, or merging two
// still-separate rings), then simplify and tidy every surviving
// OutRec.
func (cl *Clipper64) processJoinList() {
	for _, j := range cl.joinerList {
		if j.IsDummy {
			continue
		}
		cl.completeJoin(j)
	}
	cl.joinerList = nil

	for _, outrec := range cl.outrecs {
		if outrec.Pts == nil {
			continue
		}
		if !cl.PreserveCollinear {
			cl.cleanCollinear(outrec)
		}
		cl.fixSelfIntersects(outrec)
		cl.tidyOutRec(outrec)
	}
}

// detachJoiner unlinks j from the joiner chain rooted at op (spec.md
// §4.9), so a completed join is no longer visible to anything that
// checks OutPt.Joiner != nil to see whether a point still has an
// unresolved join pending on it.
func detachJoiner(op *OutPt, j *Joiner) {
	next := func(n *Joiner) *Joiner {
		if n.OutPt1 == op {
			return n.Next1
		}
		return n.Next2
	}
	if op.Joiner == j {
		op.Joiner = next(j)
		return
	}
	for n := op.Joiner; n != nil; n = next(n) {
		if next(n) == j {
			if n.OutPt1 == op {
				n.Next1 = next(j)
			} else {
				n.Next2 = next(j)
			}
			return
		}
	}
}

// dedupAdjacent collapses a run of points immediately after op that
// exactly repeat its coordinate, so completing a join never splices
// through a zero-length edge (spec.md §8 invariant 5).
func dedupAdjacent(op *OutPt) *OutPt {
	for op.Next != op && op.Pt.Equals(op.Next.Pt) {
		dead := op.Next
		op.Next = dead.Next
		dead.Next.Prev = op
		if dead.OutRec != nil && dead.OutRec.Pts == dead {
			dead.OutRec.Pts = op
		}
	}
	return op
}

// completeJoin resolves one Joiner against the current state of its
// two OutPts' rings: a join whose points now sit on the same ring
// splits it in two; one whose points sit on two different rings
// merges them into one (spec.md §4.9's Merge/Split). Detaching the
// joiner and clearing out any duplicate points right at the splice
// point happens regardless of outcome, since both matter even when the
// join turns out to be stale and gets skipped below.
func (cl *Clipper64) completeJoin(j *Joiner) {
	op1, op2 := j.OutPt1, j.OutPt2
	detachJoiner(op1, j)
	detachJoiner(op2, j)

	if op1.OutRec == nil || op2.OutRec == nil {
		return
	}
	outrec1 := getRealOutRec(op1.OutRec)
	outrec2 := getRealOutRec(op2.OutRec)
	if outrec1 == nil || outrec2 == nil || outrec1.Pts == nil || outrec2.Pts == nil {
		return
	}

	op1 = dedupAdjacent(op1)
	op2 = dedupAdjacent(op2)

	// The join's signature: op1 and op2 were recorded coincident, so at
	// least one of these three ways of relating them must still hold.
	// If none do, an earlier joiner in this same batch already spliced
	// through one of these two points, and completing this one now
	// would cut through boundary it no longer describes.
	signatureHolds := op1.Pt.Equals(op2.Pt) ||
		op1.Prev.Pt.Equals(op2.Next.Pt) || op2.Prev.Pt.Equals(op1.Next.Pt)
	if !signatureHolds {
		return
	}

	if outrec1 == outrec2 {
		cl.splitOutRec(outrec1, op1, op2)
	} else {
		cl.mergeOutRecs(outrec1, outrec2, op1, op2)
	}
}

// reachableFrom reports whether walking forward from start ever
// reaches target before looping back to start.
func reachableFrom(start, target *OutPt) bool {
	if start == nil {
		return false
	}
	for p := start; ; p = p.Next {
		if p == target {
			return true
		}
		if p.Next == start {
			return false
		}
	}
}

// relabelOutRec stamps every OutPt in op's ring with outrec.
func relabelOutRec(op *OutPt, outrec *OutRec) {
	if op == nil {
		return
	}
	p := op
	for {
		p.OutRec = outrec
		p = p.Next
		if p == op {
			break
		}
	}
}

// splitOutRec cuts outrec's ring into two independent rings at op1
// and op2, matching CompleteSplit's shape (spec.md §4.9): the run from
// op1 to op2 becomes one ring, the run from op2 to op1 the other. A
// half that collapses to a sliver (|area|<1) is discarded outright
// rather than emitted; otherwise the smaller-by-area half is tested
// for containment in the larger one: if it nests inside, the split
// separated an outer boundary from a hole it had swallowed, so the
// smaller half becomes the larger's child, flipping Outer<->Inner; if
// it doesn't nest, the two halves just sit side by side (a
// self-intersecting figure-eight coming apart into two peers), so both
// keep outrec's former owner and state.
func (cl *Clipper64) splitOutRec(outrec *OutRec, op1, op2 *OutPt) {
	if op1 == op2 || op1.Next == op2 || op2.Next == op1 {
		return
	}

	newOp1 := &OutPt{Pt: op1.Pt}
	newOp2 := &OutPt{Pt: op2.Pt}

	p1, p2 := op1.Prev, op2.Prev
	p2.Next = newOp2
	newOp2.Prev = p2
	newOp2.Next = op1
	op1.Prev = newOp2

	p1.Next = newOp1
	newOp1.Prev = p1
	newOp1.Next = op2
	op2.Prev = newOp1

	ringA, ringB := op1, op2

	areaA := areaOfOutPts(ringA)
	areaB := areaOfOutPts(ringB)

	if math.Abs(areaA) < 1 {
		outrec.Pts = ringB
		relabelOutRec(ringA, nil)
		return
	}
	if math.Abs(areaB) < 1 {
		outrec.Pts = ringA
		relabelOutRec(ringB, nil)
		return
	}

	large, small := ringA, ringB
	if math.Abs(areaA) < math.Abs(areaB) {
		large, small = ringB, ringA
	}

	newOutrec := cl.newOutRec()
	outrec.Pts = large
	relabelOutRec(large, outrec)
	newOutrec.Pts = small
	relabelOutRec(small, newOutrec)

	if !poly2ContainsPoly1(small, large) {
		newOutrec.Owner = outrec.Owner
		newOutrec.State = outrec.State
		return
	}

	newOutrec.Owner = outrec
	if outrec.State == orOuter {
		newOutrec.State = orInner
	} else {
		newOutrec.State = orOuter
	}
}

// mergeOutRecs splices op1's ring and op2's ring together at those two
// points into a single ring owned by outrec1; outrec2 is absorbed the
// same way joinOutrecPaths absorbs a ring during the sweep.
func (cl *Clipper64) mergeOutRecs(outrec1, outrec2 *OutRec, op1, op2 *OutPt) {
	newOp1 := &OutPt{Pt: op1.Pt}
	newOp2 := &OutPt{Pt: op2.Pt}

	newOp1.Prev = op1.Prev
	op1.Prev.Next = newOp1
	newOp1.Next = newOp2
	newOp2.Prev = newOp1
	newOp2.Next = op2.Next
	op2.Next.Prev = newOp2

	op1.Prev = op2
	op2.Next = op1

	relabelOutRec(outrec1.Pts, outrec1)
	relabelOutRec(newOp1, outrec1)
	outrec2.Pts = nil
	outrec2.Owner = outrec1
}

// cleanCollinear drops OutPts that add no shape (spec.md §4.9,
// gated by PreserveCollinear=false). A point still carrying a pending
// Joiner is left alone even if collinear: that Joiner holds a pointer
// to this exact OutPt, and completeJoin hasn't run against it yet in
// this pass, so deleting it here would leave the Joiner dangling.
func (cl *Clipper64) cleanCollinear(outrec *OutRec) {
	op := outrec.Pts
	if op == nil {
		return
	}
	start := op
	for {
		if op.Next == op || op.Next.Next == op {
			return
		}
		next := op.Next
		if op.Joiner == nil && crossProductSign(op.Prev.Pt, op.Pt, next.Pt) == 0 {
			op.Prev.Next = next
			next.Prev = op.Prev
			if op == outrec.Pts {
				outrec.Pts = next
			}
			if op == start {
				start = next
			}
			op = next
			continue
		}
		op = next
		if op == start {
			return
		}
	}
}

// segmentsIntersectProper reports whether segment a1-a2 crosses
// segment b1-b2 at an interior point of both (touching endpoints
// don't count, since a ring's own consecutive edges always share an
// endpoint).
func segmentsIntersectProper(a1, a2, b1, b2 Point64) bool {
	d1 := crossProductSign(b1, b2, a1)
	d2 := crossProductSign(b1, b2, a2)
	d3 := crossProductSign(a1, a2, b1)
	d4 := crossProductSign(a1, a2, b2)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// fixSelfIntersects finds one residual self-crossing left over from
// merges and splits it out (spec.md §4.9's FixSelfIntersects). It
// handles at most one crossing per call, and processJoinList calls it
// once per ring, so any further crossing in the same ring is left in
// place.
func (cl *Clipper64) fixSelfIntersects(outrec *OutRec) {
	op := outrec.Pts
	if op == nil {
		return
	}
	start := op
	for {
		op2 := op.Next.Next
		for op2 != nil && op2 != start.Prev && op2.Next != op {
			if segmentsIntersectProper(op.Pt, op.Next.Pt, op2.Pt, op2.Next.Pt) {
				cl.splitOutRec(outrec, op, op2)
				return
			}
			op2 = op2.Next
			if op2 == op {
				break
			}
		}
		op = op.Next
		if op == start {
			return
		}
	}
}

// tidyOutRec discards a ring collapsed to fewer than three points by
// the splits/merges above.
func (cl *Clipper64) tidyOutRec(outrec *OutRec) {
	op := outrec.Pts
	if op == nil {
		return
	}
	if op.Next == op || op.Next.Next == op {
		outrec.Pts = nil
	}
}
