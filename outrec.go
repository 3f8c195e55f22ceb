package vatticlip

// outRecState classifies a provisional output polygon: Open rings
// come from open (polyline) input and have no owner; Outer/Inner
// alternate with nesting depth (spec.md §4.5.1).
type outRecState int

const (
	orOpen outRecState = iota
	orOuter
	orInner
)

// OutRec is a provisional output polygon (spec.md §3). Idx is stable
// for the lifetime of a single Execute call and is used, per spec.md
// §9, to decide which of two merging rings survives (the lower id is
// absorbed into the higher one).
type OutRec struct {
	Idx                 int
	Owner               *OutRec
	FrontEdge, BackEdge *Active
	Pts                 *OutPt
	State               outRecState
	PolyPath            *PolyPath64
}

// OutPt is one vertex of an OutRec's provisional ring (spec.md §3).
type OutPt struct {
	Pt     Point64
	Next   *OutPt
	Prev   *OutPt
	OutRec *OutRec
	Joiner *Joiner
}

// Joiner is a deferred instruction to merge or split two OutPt rings
// at two points (spec.md §3, §4.9). A Joiner with IsDummy set is the
// sentinel attached to an OutPt that sits on the trial-horizontal
// list (horizontal.go), marking it so cleanup code will not silently
// delete it before convertHorzTrialsToJoins has had a chance to look
// at it.
type Joiner struct {
	OutPt1, OutPt2 *OutPt
	Next1, Next2   *Joiner
	IsDummy        bool
}

func (cl *Clipper64) newOutRec() *OutRec {
	outrec := &OutRec{Idx: len(cl.outrecs)}
	cl.outrecs = append(cl.outrecs, outrec)
	return outrec
}

// isFront reports whether e is currently the front edge of its
// OutRec: true for the front edge of a closed ring, or (for an open
// ring, which has no fixed front/back pairing) when the edge is
// heading in the positive winding direction (spec.md §4.5).
func isFront(e *Active) bool {
	if e.OutRec == nil {
		return false
	}
	if e.OutRec.State == orOpen {
		return e.WindDx > 0
	}
	return e == e.OutRec.FrontEdge
}

func newOutPtRing(pt Point64, outrec *OutRec) *OutPt {
	op := &OutPt{Pt: pt, OutRec: outrec}
	op.Next, op.Prev = op, op
	outrec.Pts = op
	return op
}

// addOutPt appends pt to e's ring, on the front or back depending on
// isFront(e), and returns the (possibly pre-existing, if pt
// duplicates the current endpoint) OutPt (spec.md §4.5).
func addOutPt(e *Active, pt Point64) *OutPt {
	outrec := e.OutRec
	toFront := isFront(e)
	opFront := outrec.Pts
	if opFront == nil {
		return newOutPtRing(pt, outrec)
	}
	opBack := opFront.Next
	if toFront && pt.Equals(opFront.Pt) {
		return opFront
	}
	if !toFront && pt.Equals(opBack.Pt) {
		return opBack
	}
	newOp := &OutPt{Pt: pt, OutRec: outrec}
	opBack.Prev = newOp
	newOp.Prev = opFront
	newOp.Next = opBack
	opFront.Next = newOp
	if toFront {
		outrec.Pts = newOp
	}
	return newOp
}

// currentOutPt returns the OutPt that e is currently appending to
// (the front point if e is the front edge, else the back point).
func currentOutPt(e *Active) *OutPt {
	if e.OutRec == nil || e.OutRec.Pts == nil {
		return nil
	}
	if isFront(e) {
		return e.OutRec.Pts
	}
	return e.OutRec.Pts.Next
}

// setOwnerAndState implements spec.md §4.5.1: walk left along the AEL
// from leftEdge to the nearest hot, closed neighbour. If there is
// none, the new ring is Outer with no owner. If that neighbour is
// itself Outer, the new ring nests one level deeper (Inner, owned by
// the neighbour). If the neighbour is Inner, the new ring is a
// sibling Outer at the same nesting level, owned by the neighbour's
// own owner.
func (cl *Clipper64) setOwnerAndState(outrec *OutRec, leftEdge *Active) {
	e2 := leftEdge.PrevInAEL
	for e2 != nil && (e2.OutRec == nil || e2.OutRec.State == orOpen) {
		e2 = e2.PrevInAEL
	}
	if e2 == nil {
		outrec.Owner = nil
		outrec.State = orOuter
		return
	}
	if e2.OutRec.State == orOuter {
		outrec.Owner = e2.OutRec
		outrec.State = orInner
	} else {
		outrec.Owner = e2.OutRec.Owner
		outrec.State = orOuter
	}
}

// addLocalMinPoly starts a new output ring at the point where two
// bounds first meet (spec.md §4.5, AddLocalMinPoly). The edge with
// the larger dx (or the horizontal one) becomes the front edge, so
// that outer rings emerge clockwise under the default orientation.
func (cl *Clipper64) addLocalMinPoly(e1, e2 *Active, pt Point64) *OutPt {
	outrec := cl.newOutRec()
	e1.OutRec = outrec
	e2.OutRec = outrec

	var front, back *Active
	if isHorizontal(e2) || e1.Dx > e2.Dx {
		front, back = e1, e2
	} else {
		front, back = e2, e1
	}
	outrec.FrontEdge = front
	outrec.BackEdge = back

	if e1.IsOpen {
		outrec.State = orOpen
		outrec.Owner = nil
	} else {
		cl.setOwnerAndState(outrec, front)
	}

	op := newOutPtRing(pt, outrec)

	var prevE *Active
	if front.PrevInAEL == back {
		prevE = back.PrevInAEL
	} else {
		prevE = front.PrevInAEL
	}
	if prevE != nil && prevE.OutRec != nil && prevE.OutRec.State != orOpen &&
		topX(prevE, pt.Y) == topX(front, pt.Y) &&
		slopesEqual(prevE.Bot, prevE.Top, front.Bot, front.Top) {
		cl.addJoin(front, prevE)
	}
	return op
}

// reverseOutPtRing swaps next/prev throughout a ring (spec.md §4.9's
// reversal step, mirroring the teacher's reversePolyPtLinks).
func reverseOutPtRing(op *OutPt) {
	if op == nil {
		return
	}
	p := op
	for {
		next := p.Next
		p.Next, p.Prev = p.Prev, next
		p = next
		if p == op {
			break
		}
	}
}

// joinOutrecPaths splices e2's ring into e1's ring (spec.md §4.5,
// JoinOutrecPaths). e1's OutRec survives; e2's is absorbed: its Pts
// is nulled and its Owner points at the survivor so later lookups can
// chase the chain (spec.md §9).
func (cl *Clipper64) joinOutrecPaths(e1, e2 *Active) {
	outrec1 := e1.OutRec
	outrec2 := e2.OutRec

	p1Front := outrec1.Pts
	p2Front := outrec2.Pts
	p1Back := p1Front.Next
	p2Back := p2Front.Next

	switch {
	case isFront(e1) && isFront(e2):
		reverseOutPtRing(p2Front)
		p2Back.Next = p1Front
		p1Front.Prev = p2Back
		p1Back.Prev = p2Front
		p2Front.Next = p1Back
		outrec1.Pts = p2Back
	case isFront(e1):
		p2Back.Next = p1Front
		p1Front.Prev = p2Back
		p2Front.Prev = p1Back
		p1Back.Next = p2Front
		outrec1.Pts = p2Back
	case isFront(e2):
		p1Back.Next = p2Back
		p2Back.Prev = p1Back
		p2Front.Next = p1Front
		p1Front.Prev = p2Front
	default:
		reverseOutPtRing(p2Front)
		p1Back.Next = p2Front
		p2Front.Prev = p1Back
		p2Back.Prev = p1Front
		p1Front.Next = p2Back
	}

	outrec1.FrontEdge, outrec1.BackEdge = nil, nil
	outrec2.Pts = nil
	outrec2.Owner = outrec1

	e1.OutRec = nil
	e2.OutRec = nil

	for e := cl.actives; e != nil; e = e.NextInAEL {
		if e.OutRec == outrec2 {
			e.OutRec = outrec1
		}
	}
}

// addLocalMaxPoly closes off a pair of bounds meeting at a maximum
// (spec.md §4.5, AddLocalMaxPoly): if they already share a ring, the
// ring is complete; otherwise the two rings are merged, the
// lower-idx ring absorbed into the higher-idx one (spec.md §9's
// stable-id rule) so ring ids only ever increase in liveness.
func (cl *Clipper64) addLocalMaxPoly(e1, e2 *Active, pt Point64) *OutPt {
	op := addOutPt(e1, pt)
	if e1.OutRec == e2.OutRec {
		outrec := e1.OutRec
		outrec.FrontEdge, outrec.BackEdge = nil, nil
		e1.OutRec, e2.OutRec = nil, nil
		return op
	}
	addOutPt(e2, pt)
	if e1.OutRec.Idx < e2.OutRec.Idx {
		cl.joinOutrecPaths(e2, e1)
	} else {
		cl.joinOutrecPaths(e1, e2)
	}
	return op
}

// swapOutrecs exchanges which OutRec e1 and e2 point at, along with
// each ring's FrontEdge/BackEdge back-reference, so the two edges
// carry on appending to the ring the *other* edge was building before
// this crossing (spec.md §4.4.4's SwapOutrecs) — no ring is merged or
// closed, they just change hands.
func swapOutrecs(e1, e2 *Active) {
	or1, or2 := e1.OutRec, e2.OutRec
	if or1 == or2 {
		return
	}
	if or1 != nil {
		if or1.FrontEdge == e1 {
			or1.FrontEdge = e2
		} else {
			or1.BackEdge = e2
		}
	}
	if or2 != nil {
		if or2.FrontEdge == e2 {
			or2.FrontEdge = e1
		} else {
			or2.BackEdge = e1
		}
	}
	e1.OutRec, e2.OutRec = or2, or1
}

// getRealOutRec chases an absorbed OutRec's Owner chain until it
// finds one with a live Pts ring (spec.md §9: "owner chains that
// become stale ... never cache").
func getRealOutRec(outrec *OutRec) *OutRec {
	for outrec != nil && outrec.Pts == nil {
		outrec = outrec.Owner
	}
	return outrec
}

// addJoinOutPts records a Joiner between two OutPts and links it into
// both points' joiner chains.
func (cl *Clipper64) addJoinOutPts(op1, op2 *OutPt) *Joiner {
	j := &Joiner{OutPt1: op1, OutPt2: op2}
	j.Next1 = op1.Joiner
	op1.Joiner = j
	j.Next2 = op2.Joiner
	op2.Joiner = j
	cl.joinerList = append(cl.joinerList, j)
	return j
}

// addJoin records a Joiner between the OutPts that e1 and e2 are
// currently appending to, if both are hot (spec.md §4.2/§4.5's "test
// for a join with the AEL neighbour").
func (cl *Clipper64) addJoin(e1, e2 *Active) {
	if e1.OutRec == nil || e2.OutRec == nil {
		return
	}
	op1 := currentOutPt(e1)
	op2 := currentOutPt(e2)
	if op1 == nil || op2 == nil {
		return
	}
	cl.addJoinOutPts(op1, op2)
}
