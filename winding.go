package vatticlip

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// setWindingCountClosed implements spec.md §4.4.1. It walks left
// along the AEL to the nearest closed edge of the same polytype to
// derive e's own winding count, then sweeps right from that anchor to
// e to accumulate windCount2 (the opposite polytype's count).
func (cl *Clipper64) setWindingCountClosed(e *Active) {
	e2 := e.PrevInAEL
	for e2 != nil && (e2.IsOpen || e2.PolyTyp != e.PolyTyp) {
		e2 = e2.PrevInAEL
	}

	if e2 == nil {
		e.WindCount = e.WindDx
		e2 = cl.actives
	} else if cl.fillRule == FrEvenOdd {
		e.WindCount = e.WindDx
		e.WindCount2 = e2.WindCount2
		e2 = e2.NextInAEL
	} else {
		switch {
		case e2.WindCount*e2.WindDx < 0:
			if absInt(e2.WindCount) > 1 {
				if e2.WindDx*e.WindDx < 0 {
					e.WindCount = e2.WindCount
				} else {
					e.WindCount = e2.WindCount + e.WindDx
				}
			} else {
				e.WindCount = e2.WindCount + e2.WindDx + e.WindDx
			}
		case absInt(e2.WindCount) > 1 && e2.WindDx*e.WindDx < 0:
			e.WindCount = e2.WindCount
		case e2.WindCount+e.WindDx == 0:
			e.WindCount = e2.WindCount
		default:
			e.WindCount = e2.WindCount + e.WindDx
		}
		e.WindCount2 = e2.WindCount2
		e2 = e2.NextInAEL
	}

	if cl.fillRule == FrEvenOdd {
		for e2 != e {
			if e2.PolyTyp != e.PolyTyp && !e2.IsOpen {
				if e.WindCount2 == 0 {
					e.WindCount2 = 1
				} else {
					e.WindCount2 = 0
				}
			}
			e2 = e2.NextInAEL
		}
	} else {
		for e2 != e {
			if e2.PolyTyp != e.PolyTyp && !e2.IsOpen {
				e.WindCount2 += e2.WindDx
			}
			e2 = e2.NextInAEL
		}
	}
}

// setWindingCountOpen implements spec.md §4.4.2: an open edge scans
// the whole AEL to its left, since there is no "nearest same
// polytype" anchor to lean on (open paths never pair up with one
// another).
func (cl *Clipper64) setWindingCountOpen(e *Active) {
	var cntSubj, cntClip int
	for e2 := cl.actives; e2 != nil && e2 != e; e2 = e2.NextInAEL {
		if e2.IsOpen {
			continue
		}
		if cl.fillRule == FrEvenOdd {
			if e2.PolyTyp == PtSubject {
				cntSubj = 1 - cntSubj
			} else {
				cntClip = 1 - cntClip
			}
		} else if e2.PolyTyp == PtSubject {
			cntSubj += e2.WindDx
		} else {
			cntClip += e2.WindDx
		}
	}
	e.WindCount = cntSubj
	e.WindCount2 = cntClip
}

// normalizedWindCount reduces a raw WindCount to the value the
// contribution tests actually compare against, per fillRule: absolute
// value under EvenOdd/NonZero, the count itself under Positive, and
// its negation under Negative.
func normalizedWindCount(fillRule FillRule, windCount int) int {
	switch fillRule {
	case FrPositive:
		return windCount
	case FrNegative:
		return -windCount
	default:
		return absInt(windCount)
	}
}

// isContributingClosed implements spec.md §4.4.3 for closed edges.
func (cl *Clipper64) isContributingClosed(e *Active) bool {
	switch cl.fillRule {
	case FrEvenOdd, FrNonZero:
		if absInt(e.WindCount) != 1 {
			return false
		}
	case FrPositive:
		if e.WindCount != 1 {
			return false
		}
	case FrNegative:
		if e.WindCount != -1 {
			return false
		}
	}

	switch cl.clipType {
	case CtIntersection:
		switch cl.fillRule {
		case FrPositive:
			return e.WindCount2 > 0
		case FrNegative:
			return e.WindCount2 < 0
		default:
			return e.WindCount2 != 0
		}
	case CtUnion:
		switch cl.fillRule {
		case FrPositive:
			return e.WindCount2 <= 0
		case FrNegative:
			return e.WindCount2 >= 0
		default:
			return e.WindCount2 == 0
		}
	case CtDifference:
		if e.PolyTyp == PtSubject {
			switch cl.fillRule {
			case FrPositive:
				return e.WindCount2 <= 0
			case FrNegative:
				return e.WindCount2 >= 0
			default:
				return e.WindCount2 == 0
			}
		}
		switch cl.fillRule {
		case FrPositive:
			return e.WindCount2 > 0
		case FrNegative:
			return e.WindCount2 < 0
		default:
			return e.WindCount2 != 0
		}
	default: // CtXor
		return true
	}
}

// isContributingOpen implements spec.md §4.4.3 for open edges: an
// open path contributes under Intersection only where it lies inside
// the clip set, under Difference only where it does not, and
// everywhere under Union/Xor (there is no symmetric "open clip" to
// subtract, since open Clip paths are rejected at AddPaths).
func (cl *Clipper64) isContributingOpen(e *Active) bool {
	var insideOther bool
	switch cl.fillRule {
	case FrPositive:
		insideOther = e.WindCount2 > 0
	case FrNegative:
		insideOther = e.WindCount2 < 0
	default:
		insideOther = e.WindCount2 != 0
	}
	switch cl.clipType {
	case CtIntersection:
		return insideOther
	case CtDifference:
		return !insideOther
	default:
		return true
	}
}
