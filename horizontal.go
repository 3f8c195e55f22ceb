package vatticlip

// horzTrial is a candidate join between two OutPts left behind by two
// overlapping horizontal edges, to be confirmed or dropped once the
// sweep has finished and it's clear both rings survived intact
// (spec.md §4.7).
type horzTrial struct {
	OutPt1, OutPt2 *OutPt
}

// horzOverlaps reports whether horizontal edges e and e2 share any X
// range at their common Y.
func horzOverlaps(e, e2 *Active) bool {
	loE, hiE := e.Bot.X, e.Top.X
	if loE > hiE {
		loE, hiE = hiE, loE
	}
	loE2, hiE2 := e2.Bot.X, e2.Top.X
	if loE2 > hiE2 {
		loE2, hiE2 = hiE2, loE2
	}
	return loE < hiE2 && loE2 < hiE
}

// recordHorzTrial defers judgement on whether two overlapping
// horizontal edges' current OutPts should be joined: a dummy Joiner
// is attached to each so postprocess.go's cleanup passes leave them
// alone until convertHorzTrialsToJoins runs at the end of the sweep.
func (cl *Clipper64) recordHorzTrial(e, e2 *Active) {
	op1 := currentOutPt(e)
	op2 := currentOutPt(e2)
	if op1 == nil || op2 == nil {
		return
	}
	dummy := &Joiner{OutPt1: op1, OutPt2: op2, IsDummy: true}
	op1.Joiner = dummy
	op2.Joiner = dummy
	cl.horzTrials = append(cl.horzTrials, horzTrial{OutPt1: op1, OutPt2: op2})
}

// convertHorzTrialsToJoins runs once, after the scanbeam loop ends
// (spec.md §4.7): every recorded trial whose OutRecs are both still
// live becomes a real Joiner; the rest are simply forgotten.
func (cl *Clipper64) convertHorzTrialsToJoins() {
	for _, t := range cl.horzTrials {
		if t.OutPt1.OutRec == nil || t.OutPt2.OutRec == nil {
			continue
		}
		if t.OutPt1.Joiner != nil && t.OutPt1.Joiner.IsDummy {
			t.OutPt1.Joiner = nil
		}
		if t.OutPt2.Joiner != nil && t.OutPt2.Joiner.IsDummy {
			t.OutPt2.Joiner = nil
		}
		cl.addJoinOutPts(t.OutPt1, t.OutPt2)
	}
	cl.horzTrials = nil
}

// processHorizontal implements spec.md §4.6: a horizontal edge sweeps
// across the AEL at its own Y, resolving a crossing with every
// non-horizontal edge it passes and deferring a trial join with every
// horizontal edge it overlaps, before either closing at a maximum or
// continuing onto its next segment.
func (cl *Clipper64) processHorizontal(e *Active) {
	leftToRight := e.Top.X > e.Bot.X
	target := e.Top.X
	maximaAtEnd := isMaximaActive(e)

	// spec.md §4.6 step 2: identify the maxima pair, if any, before
	// sweeping, using a scan in the horizontal's own direction of
	// travel — the in-loop swaps below can walk e past where a
	// forward-only findMaximaPair would ever look for it.
	var maximaPair *Active
	if maximaAtEnd {
		maximaPair = findMaximaPairInDirection(e, leftToRight)
	}

	var e2 *Active
	if leftToRight {
		e2 = e.NextInAEL
	} else {
		e2 = e.PrevInAEL
	}

	for e2 != nil {
		if e2 == maximaPair {
			// spec.md §4.6 step 3: the horizontal meets its own maxima
			// partner — close the pair directly and stop, rather than
			// routing it through the generic intersectEdges/swap pair
			// below and leaving cleanup to a post-hoc doMaxima call.
			e.Curr = Point64{X: target, Y: e.Bot.Y}
			if e.OutRec != nil && maximaPair.OutRec != nil {
				cl.addLocalMaxPoly(e, maximaPair, e.Top)
			} else if e.OutRec != nil {
				addOutPt(e, e.Top)
			} else if maximaPair.OutRec != nil {
				addOutPt(maximaPair, e.Top)
			}
			cl.deleteFromAEL(maximaPair)
			cl.deleteFromAEL(e)
			return
		}

		x := e2.Curr.X
		if leftToRight && x > target {
			break
		}
		if !leftToRight && x < target {
			break
		}

		var next *Active
		if leftToRight {
			next = e2.NextInAEL
		} else {
			next = e2.PrevInAEL
		}

		if isHorizontal(e2) && horzOverlaps(e, e2) {
			cl.recordHorzTrial(e, e2)
			e2 = next
			continue
		}

		pt := Point64{X: x, Y: e.Bot.Y}
		cl.intersectEdges(e, e2, pt)
		cl.swapPositionsInAEL(e, e2)
		e2 = next
	}

	e.Curr = Point64{X: target, Y: e.Bot.Y}

	if maximaAtEnd {
		cl.doMaxima(e)
	} else {
		cl.updateEdgeIntoAEL(e)
	}
}
