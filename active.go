package vatticlip

import "math"

// Active is a currently-live edge on the sweep line (spec.md §3,
// "Active edge"). Bot/Top are the edge's fixed endpoints for its
// current segment; Curr tracks its X position at whatever Y the
// sweep is currently examining.
type Active struct {
	Bot, Top, Curr Point64
	Dx             float64 // signed-infinity encodes horizontal heading; see computeDx.
	WindDx         int     // winding-direction delta, +1 or -1
	WindCount      int
	WindCount2     int // winding count of the opposite polytype
	PolyTyp        PolyType
	IsOpen         bool
	LocalMin       *LocalMinimum
	VertexTop      *Vertex // top endpoint of the current segment
	IsLeftBound    bool

	PrevInAEL, NextInAEL *Active
	PrevInSEL, NextInSEL *Active
	Jump                 *Active // merge-sort scratch pointer, see intersect.go

	OutRec *OutRec // nil unless this edge is "hot" (contributing)
}

// computeDx implements spec.md §3's Active-edge slope convention:
// dx = (top.X-bot.X)/(top.Y-bot.Y) for non-horizontal edges; a
// horizontal edge (top.Y == bot.Y) gets a signed infinity instead,
// positive for a left-heading horizontal (top.X < bot.X) and
// negative for a right-heading one, so the AEL ordering comparisons
// in isValidAelOrder can treat horizontals uniformly with sloped
// edges.
func computeDx(bot, top Point64) float64 {
	if top.Y == bot.Y {
		if top.X < bot.X {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}
	return float64(top.X-bot.X) / float64(top.Y-bot.Y)
}

func isHorizontal(e *Active) bool { return e.Bot.Y == e.Top.Y }

// topX returns e's X coordinate at the given Y, extrapolating along
// its current segment's slope.
func topX(e *Active, y int64) int64 {
	if y == e.Top.Y || e.Top.X == e.Bot.X {
		return e.Top.X
	}
	if y == e.Bot.Y {
		return e.Bot.X
	}
	return e.Bot.X + int64(math.Round(e.Dx*float64(y-e.Bot.Y)))
}

// nextVertex returns the vertex the edge is heading towards next
// (used by isValidAelOrder's tie-break and by UpdateEdgeIntoAEL).
func nextVertex(e *Active) *Vertex {
	if e.WindDx > 0 {
		return e.VertexTop.Next
	}
	return e.VertexTop.Prev
}

func prevPrevVertex(e *Active) *Vertex {
	if e.WindDx > 0 {
		return e.VertexTop.Prev.Prev
	}
	return e.VertexTop.Next.Next
}

func isMaximaActive(e *Active) bool {
	return e.VertexTop.Flags.has(vfLocalMax)
}

// isValidAelOrder decides whether resident may legally remain
// immediately to the left of newcomer in the AEL (spec.md §4.3.1). It
// is used both when inserting a brand-new edge and, symmetrically,
// wherever the sweep needs to know which of two edges belongs on the
// left.
func isValidAelOrder(resident, newcomer *Active) bool {
	if newcomer.Curr.X != resident.Curr.X {
		return newcomer.Curr.X > resident.Curr.X
	}

	d := crossProductSign(resident.Top, newcomer.Bot, newcomer.Top)
	if d != 0 {
		return d < 0
	}

	// Collinear at this point: fall back to whichever edge is not yet
	// at its maximum and see which way it's about to turn.
	if !isMaximaActive(resident) && resident.Top.Y > newcomer.Top.Y {
		return crossProductSign(newcomer.Bot, resident.Top, nextVertex(resident).Pt) <= 0
	}
	if !isMaximaActive(newcomer) && newcomer.Top.Y > resident.Top.Y {
		return crossProductSign(newcomer.Bot, newcomer.Top, nextVertex(newcomer).Pt) >= 0
	}

	y := newcomer.Bot.Y
	if resident.Bot.Y != y || resident.LocalMin.Vertex.Pt.Y != y {
		// resident was not just inserted at this same minimum: the
		// newcomer's IsLeftBound flag decides. A left-bound newcomer
		// goes to the resident's right, any other newcomer to its left.
		return newcomer.IsLeftBound
	}
	if resident.IsLeftBound != newcomer.IsLeftBound {
		return newcomer.IsLeftBound
	}
	if crossProductSign(prevPrevVertex(resident).Pt, resident.Bot, resident.Top) == 0 {
		return true
	}
	return (crossProductSign(prevPrevVertex(resident).Pt, newcomer.Bot, prevPrevVertex(newcomer).Pt) > 0) == newcomer.IsLeftBound
}

// insertEdgeIntoAEL inserts e into the active edge list, using
// isValidAelOrder to find its correct left-to-right position.
func (cl *Clipper64) insertEdgeIntoAEL(e *Active) {
	if cl.actives == nil {
		e.PrevInAEL, e.NextInAEL = nil, nil
		cl.actives = e
		return
	}
	if !isValidAelOrder(cl.actives, e) {
		e.PrevInAEL = nil
		e.NextInAEL = cl.actives
		cl.actives.PrevInAEL = e
		cl.actives = e
		return
	}
	cur := cl.actives
	for cur.NextInAEL != nil && isValidAelOrder(cur.NextInAEL, e) {
		cur = cur.NextInAEL
	}
	e.NextInAEL = cur.NextInAEL
	if cur.NextInAEL != nil {
		cur.NextInAEL.PrevInAEL = e
	}
	e.PrevInAEL = cur
	cur.NextInAEL = e
}

func (cl *Clipper64) deleteFromAEL(e *Active) {
	prev, next := e.PrevInAEL, e.NextInAEL
	if prev == nil && next == nil && e != cl.actives {
		return
	}
	if prev != nil {
		prev.NextInAEL = next
	} else {
		cl.actives = next
	}
	if next != nil {
		next.PrevInAEL = prev
	}
	e.NextInAEL, e.PrevInAEL = nil, nil
}

func (cl *Clipper64) swapPositionsInAEL(e1, e2 *Active) {
	if e1 == e2 {
		return
	}
	var next, prev *Active
	if e1.NextInAEL == e2 {
		next = e2.NextInAEL
		if next != nil {
			next.PrevInAEL = e1
		}
		prev = e1.PrevInAEL
		if prev != nil {
			prev.NextInAEL = e2
		}
		e2.PrevInAEL, e2.NextInAEL = prev, e1
		e1.PrevInAEL, e1.NextInAEL = e2, next
	} else if e2.NextInAEL == e1 {
		next = e1.NextInAEL
		if next != nil {
			next.PrevInAEL = e2
		}
		prev = e2.PrevInAEL
		if prev != nil {
			prev.NextInAEL = e1
		}
		e1.PrevInAEL, e1.NextInAEL = prev, e2
		e2.PrevInAEL, e2.NextInAEL = e1, next
	} else {
		next, prev = e1.NextInAEL, e1.PrevInAEL
		e1.NextInAEL = e2.NextInAEL
		if e1.NextInAEL != nil {
			e1.NextInAEL.PrevInAEL = e1
		}
		e1.PrevInAEL = e2.PrevInAEL
		if e1.PrevInAEL != nil {
			e1.PrevInAEL.NextInAEL = e1
		}
		e2.NextInAEL = next
		if e2.NextInAEL != nil {
			e2.NextInAEL.PrevInAEL = e2
		}
		e2.PrevInAEL = prev
		if e2.PrevInAEL != nil {
			e2.PrevInAEL.NextInAEL = e2
		}
	}
	if e1.PrevInAEL == nil {
		cl.actives = e1
	} else if e2.PrevInAEL == nil {
		cl.actives = e2
	}
}
