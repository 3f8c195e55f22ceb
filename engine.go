package vatticlip

import (
	"sort"
)

// ClipperBase holds everything AddPath/AddPaths populate: the raw
// input topology, independent of any particular Execute call's
// clip type or fill rule (spec.md §4.1).
type ClipperBase struct {
	minimaList   []*LocalMinimum
	minimaSorted bool
	hasOpenPaths bool
	vertexLists  []*Vertex
}

// Clipper64 is the sweep engine (spec.md §3 "Clipper" / §6's public
// surface). Zero value is not usable; construct with NewClipper64 so
// PreserveCollinear gets its documented default.
type Clipper64 struct {
	ClipperBase

	// PreserveCollinear, when true (the default), keeps collinear
	// vertices in the output instead of simplifying them away during
	// post-processing.
	PreserveCollinear bool
	// ReverseSolution reverses the orientation of every output ring,
	// for callers whose downstream consumer expects the opposite
	// winding convention from this module's default.
	ReverseSolution bool
	// ZCallback, if set, is invoked for every intersection point the
	// sweep manufactures (spec.md §3).
	ZCallback ZCallback64

	fillRule FillRule
	clipType ClipType

	actives *Active
	sel     *Active

	outrecs    []*OutRec
	joinerList []*Joiner

	scanlineList  []int64
	currentLocMin int

	intersectList []*IntersectNode

	horzList   []*Active   // LIFO queue of horizontal edges awaiting processHorizontal
	horzTrials []horzTrial // candidates for convertHorzTrialsToJoins, see horizontal.go

	succeeded bool
}

// NewClipper64 constructs a ready-to-use Clipper64.
func NewClipper64() *Clipper64 {
	return &Clipper64{PreserveCollinear: true}
}

// Clear discards all added paths and any state left over from a
// previous Execute call, so the same Clipper64 can be reused.
func (cl *Clipper64) Clear() {
	*cl = Clipper64{PreserveCollinear: cl.PreserveCollinear, ReverseSolution: cl.ReverseSolution, ZCallback: cl.ZCallback}
}

// insertScanline records y as a future sweep stop, if it isn't
// already queued (spec.md §4.1's "seed the scanline queue").
func (cl *Clipper64) insertScanline(y int64) {
	i := sort.Search(len(cl.scanlineList), func(i int) bool { return cl.scanlineList[i] >= y })
	if i < len(cl.scanlineList) && cl.scanlineList[i] == y {
		return
	}
	cl.scanlineList = append(cl.scanlineList, 0)
	copy(cl.scanlineList[i+1:], cl.scanlineList[i:])
	cl.scanlineList[i] = y
}

// popScanline returns the smallest queued scanline and removes it.
func (cl *Clipper64) popScanline() (int64, bool) {
	if len(cl.scanlineList) == 0 {
		return 0, false
	}
	y := cl.scanlineList[0]
	cl.scanlineList = cl.scanlineList[1:]
	return y, true
}

func (cl *Clipper64) pushHorz(e *Active) {
	cl.horzList = append(cl.horzList, e)
}

func (cl *Clipper64) popHorz() (*Active, bool) {
	n := len(cl.horzList)
	if n == 0 {
		return nil, false
	}
	e := cl.horzList[n-1]
	cl.horzList = cl.horzList[:n-1]
	return e, true
}

// reset prepares a freshly-populated ClipperBase for a sweep: sorts
// the local minima by Y (spec.md §4.1's ordering requirement) and
// seeds the scanline queue with every minimum's Y.
func (cl *Clipper64) reset() {
	if !cl.minimaSorted {
		sort.SliceStable(cl.minimaList, func(i, j int) bool {
			return cl.minimaList[i].Vertex.Pt.Y < cl.minimaList[j].Vertex.Pt.Y
		})
		cl.minimaSorted = true
	}
	cl.currentLocMin = 0
	cl.scanlineList = cl.scanlineList[:0]
	for _, lm := range cl.minimaList {
		cl.insertScanline(lm.Vertex.Pt.Y)
	}
	cl.actives = nil
	cl.sel = nil
	cl.outrecs = nil
	cl.joinerList = nil
	cl.horzList = nil
	cl.horzTrials = nil
}

// swapBounds exchanges the local left/right bound roles, used when
// insertLocalMinimaAtY discovers the bound it built first is actually
// the right-hand one.
func swapBounds(left, right **Active) {
	*left, *right = *right, *left
}

// insertLocalMinimaAtY implements spec.md §4.2 step 3: every local
// minimum whose Vertex sits at y gets one or two Active edges built
// from it and threaded into the AEL, with a closed pair's contributed
// ring started immediately if it's inside the other operand.
func (cl *Clipper64) insertLocalMinimaAtY(y int64) {
	for cl.currentLocMin < len(cl.minimaList) && cl.minimaList[cl.currentLocMin].Vertex.Pt.Y == y {
		lm := cl.minimaList[cl.currentLocMin]
		cl.currentLocMin++

		v := lm.Vertex
		var left, right *Active

		if !v.Flags.has(vfOpenStart) {
			left = &Active{
				Bot: v.Pt, Curr: v.Pt,
				VertexTop: v.Prev, Top: v.Prev.Pt,
				WindDx: -1, LocalMin: lm, PolyTyp: lm.Polytype, IsOpen: lm.IsOpen,
			}
			left.Dx = computeDx(left.Bot, left.Top)
		}
		if !v.Flags.has(vfOpenEnd) {
			right = &Active{
				Bot: v.Pt, Curr: v.Pt,
				VertexTop: v.Next, Top: v.Next.Pt,
				WindDx: 1, LocalMin: lm, PolyTyp: lm.Polytype, IsOpen: lm.IsOpen,
			}
			right.Dx = computeDx(right.Bot, right.Top)
		}

		if left != nil && right != nil {
			switch {
			case isHorizontal(left):
				if left.Top.X > left.Bot.X {
					swapBounds(&left, &right)
				}
			case isHorizontal(right):
				if right.Top.X < right.Bot.X {
					swapBounds(&left, &right)
				}
			case left.Dx < right.Dx:
				swapBounds(&left, &right)
			}
		} else if left == nil {
			left, right = right, nil
		}

		left.IsLeftBound = true
		cl.insertEdgeIntoAEL(left)

		var contributing bool
		if left.IsOpen {
			cl.setWindingCountOpen(left)
			contributing = cl.isContributingOpen(left)
		} else {
			cl.setWindingCountClosed(left)
			contributing = cl.isContributingClosed(left)
		}

		if right != nil {
			right.WindCount = left.WindCount
			right.WindCount2 = left.WindCount2
			right.PrevInAEL = left
			right.NextInAEL = left.NextInAEL
			if left.NextInAEL != nil {
				left.NextInAEL.PrevInAEL = right
			}
			left.NextInAEL = right

			if contributing {
				cl.addLocalMinPoly(left, right, left.Bot)
			}

			// spec.md §4.2 step 3: right was dropped in immediately next
			// to left, but a local minimum introduced mid-sweep can
			// belong further right than that — bubble it rightward,
			// resolving each crossing it turns out to make along the way.
			for right.NextInAEL != nil && !isValidAelOrder(right, right.NextInAEL) {
				next := right.NextInAEL
				cl.intersectEdges(right, next, right.Bot)
				cl.swapPositionsInAEL(right, next)
			}

			if isHorizontal(right) {
				cl.pushHorz(right)
			} else {
				cl.insertScanline(right.Top.Y)
			}
		} else if contributing {
			addOutPt(left, left.Bot)
			left.OutRec = currentOutPt(left).OutRec
		}

		if isHorizontal(left) {
			cl.pushHorz(left)
		} else {
			cl.insertScanline(left.Top.Y)
		}
	}
}

// updateEdgeIntoAEL advances e onto its next segment: its previous
// top becomes the new bottom, and if e is hot, the new bottom is
// appended to its OutRec's ring so the boundary stays continuous
// across the segment join (spec.md §4.2 step 8).
func (cl *Clipper64) updateEdgeIntoAEL(e *Active) {
	e.Bot = e.Top
	e.VertexTop = nextVertex(e)
	e.Top = e.VertexTop.Pt
	e.Curr = e.Bot
	e.Dx = computeDx(e.Bot, e.Top)
	if e.OutRec != nil {
		addOutPt(e, e.Bot)
	}
	if isHorizontal(e) {
		cl.pushHorz(e)
	} else {
		cl.insertScanline(e.Top.Y)
	}
}

// doMaxima closes off e's ring at a local maximum, pairing it with
// its partner bound (spec.md §4.8). Any edges strictly between the two
// maxima bounds in the AEL are intersected with e at its top and
// swapped past it on the way, the same way the teacher's doMaxima
// sweeps rightward from e.
func (cl *Clipper64) doMaxima(e *Active) {
	maximaPair := findMaximaPair(e)
	if maximaPair == nil {
		if e.OutRec != nil {
			addOutPt(e, e.Top)
		}
		cl.deleteFromAEL(e)
		return
	}

	for e.NextInAEL != maximaPair {
		next := e.NextInAEL
		if next == nil {
			panicInvariant("doMaxima", "maxima pair not found for edge at %v", e.Top)
		}
		cl.intersectEdges(e, next, e.Top)
		cl.swapPositionsInAEL(e, next)
	}

	if e.OutRec != nil && maximaPair.OutRec != nil {
		cl.addLocalMaxPoly(e, maximaPair, e.Top)
	} else if e.OutRec != nil {
		addOutPt(e, e.Top)
	} else if maximaPair.OutRec != nil {
		addOutPt(maximaPair, e.Top)
	}
	cl.deleteFromAEL(e)
	cl.deleteFromAEL(maximaPair)
}

// findMaximaPair scans right from e for the other bound sharing e's
// maximum vertex.
func findMaximaPair(e *Active) *Active {
	top := e.Top
	for e2 := e.NextInAEL; e2 != nil; e2 = e2.NextInAEL {
		if e2.Top.Equals(top) && isMaximaActive(e2) {
			return e2
		}
		if e2.Curr.X > e.Curr.X && !isHorizontal(e2) {
			break
		}
	}
	return nil
}

// findMaximaPairInDirection mirrors findMaximaPair but scans whichever
// way leftToRight names. processHorizontal needs this: a horizontal
// walking right-to-left can have its maxima partner sitting to its
// left in the AEL, where findMaximaPair's forward-only scan would
// never reach it.
func findMaximaPairInDirection(e *Active, leftToRight bool) *Active {
	top := e.Top
	next := func(a *Active) *Active {
		if leftToRight {
			return a.NextInAEL
		}
		return a.PrevInAEL
	}
	for e2 := next(e); e2 != nil; e2 = next(e2) {
		if e2.Top.Equals(top) && isMaximaActive(e2) {
			return e2
		}
		if !isHorizontal(e2) {
			if leftToRight && e2.Curr.X > e.Curr.X {
				break
			}
			if !leftToRight && e2.Curr.X < e.Curr.X {
				break
			}
		}
	}
	return nil
}

// processEdgesAtTopOfScanbeam implements spec.md §4.2 step 8: every
// AEL member whose current segment ends exactly at topY either
// resolves a maximum or advances into its next segment; every other
// member simply has its Curr updated to the sweep's new position.
func (cl *Clipper64) processEdgesAtTopOfScanbeam(topY int64) {
	e := cl.actives
	for e != nil {
		if e.Top.Y == topY {
			if isMaximaActive(e) {
				// doMaxima removes e and its pair from the AEL; carry on
				// from whatever now follows e's left neighbour.
				prev := e.PrevInAEL
				cl.doMaxima(e)
				if prev != nil {
					e = prev.NextInAEL
				} else {
					e = cl.actives
				}
				continue
			}
			cl.updateEdgeIntoAEL(e)
		} else {
			e.Curr = Point64{X: topX(e, topY), Y: topY}
		}
		e = e.NextInAEL
	}
}

// execute runs the sweep to completion and leaves the result in
// cl.outrecs, or reports failure via the returned bool.
func (cl *Clipper64) execute(clipType ClipType, fillRule FillRule) (ok bool) {
	ok = true
	defer recoverInvariant(&ok)

	if clipType == CtNone {
		return true
	}
	cl.clipType = clipType
	cl.fillRule = fillRule
	cl.reset()

	y, has := cl.popScanline()
	if !has {
		return true
	}
	for {
		cl.insertLocalMinimaAtY(y)
		for {
			e, has := cl.popHorz()
			if !has {
				break
			}
			cl.processHorizontal(e)
		}
		next, has := cl.popScanline()
		if !has {
			break
		}
		cl.doIntersections(next)
		cl.processEdgesAtTopOfScanbeam(next)
		y = next
	}

	cl.convertHorzTrialsToJoins()
	cl.processJoinList()
	return true
}

// Execute runs one Boolean set operation and returns the closed and
// open portions of the solution as flat path lists (spec.md §6, first
// overload). ok is false if an internal invariant was violated, in
// which case both path lists are empty.
func (cl *Clipper64) Execute(clipType ClipType, fillRule FillRule) (closed, open Paths64, ok bool) {
	if !cl.execute(clipType, fillRule) {
		return nil, nil, false
	}
	closed, open = cl.buildResultPaths()
	return closed, open, true
}

// ExecuteTree runs one Boolean set operation and returns the closed
// solution as a nesting tree plus the open solution as a flat path
// list (spec.md §6, second overload).
func (cl *Clipper64) ExecuteTree(clipType ClipType, fillRule FillRule) (tree *PolyTree64, open Paths64, ok bool) {
	if !cl.execute(clipType, fillRule) {
		return nil, nil, false
	}
	tree = cl.buildResultTree()
	_, open = cl.buildResultPaths()
	return tree, open, true
}

// buildResultPaths converts every live OutRec into a Path64, closed
// rings and open polylines kept separate.
func (cl *Clipper64) buildResultPaths() (closed, open Paths64) {
	for _, outrec := range cl.outrecs {
		if outrec.Pts == nil {
			continue
		}
		path := outPtsToPath(outrec.Pts)
		if len(path) < 2 {
			continue
		}
		if outrec.State == orOpen {
			open = append(open, path)
			continue
		}
		if len(path) < 3 {
			continue
		}
		if cl.ReverseSolution {
			reversePath(path)
		}
		closed = append(closed, path)
	}
	return closed, open
}

func reversePath(path Path64) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}
