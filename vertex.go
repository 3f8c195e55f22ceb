package vatticlip

import "log/slog"

// vertexFlags tags a Vertex's role in its ring. A vertex can be both
// a LocalMin/LocalMax and OpenStart/OpenEnd (an open path with only
// two points is simultaneously its own start, end, minimum and
// maximum).
type vertexFlags uint8

const (
	vfNone      vertexFlags = 0
	vfOpenStart vertexFlags = 1 << iota
	vfOpenEnd
	vfLocalMax
	vfLocalMin
)

func (f vertexFlags) has(bit vertexFlags) bool { return f&bit != 0 }

// Vertex is a node in a circular doubly-linked ring, one ring per
// input path. Rings are built once in buildPath and never mutated
// afterwards except for the consecutive-duplicate collapse performed
// while building.
type Vertex struct {
	Pt    Point64
	Flags vertexFlags
	Next  *Vertex
	Prev  *Vertex
}

// LocalMinimum anchors one descending/ascending pair of bounds that
// the sweep will insert into the AEL once the scanline reaches
// Vertex.Pt.Y.
type LocalMinimum struct {
	Vertex   *Vertex
	Polytype PolyType
	IsOpen   bool
}

// addLocMin is idempotent per vertex: a flat bottom spanning several
// vertices must produce exactly one LocalMinimum, so the caller in
// buildPath always passes the single vertex chosen to represent the
// flat span, and this still guards against being asked twice for the
// same vertex (which happens naturally when both the descending walk
// and the ascending walk that meet at a flat span both propose it).
func (cb *ClipperBase) addLocMin(vert *Vertex, pt PolyType, isOpen bool) {
	if vert.Flags.has(vfLocalMin) {
		return
	}
	vert.Flags |= vfLocalMin
	cb.minimaList = append(cb.minimaList, &LocalMinimum{Vertex: vert, Polytype: pt, IsOpen: isOpen})
	cb.minimaSorted = false
}

// dedupPath collapses consecutive identical points (including the
// wraparound edge for a closed path) and, for a closed path, drops a
// trailing point that merely repeats the first (spec.md §4.1 and
// invariant 12).
func dedupPath(path Path64, isClosed bool) Path64 {
	if len(path) == 0 {
		return nil
	}
	out := make(Path64, 0, len(path))
	out = append(out, path[0])
	for _, pt := range path[1:] {
		if !pt.Equals(out[len(out)-1]) {
			out = append(out, pt)
		}
	}
	if isClosed && len(out) > 1 && out[len(out)-1].Equals(out[0]) {
		out = out[:len(out)-1]
	}
	if isClosed && len(out) > 1 && out[0].Equals(out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}

// buildPath converts one already-deduplicated path into a circular
// Vertex ring, walks it once to tag LocalMin/LocalMax vertices
// (resolving flat spans by scanning past equal-Y runs), tags open
// path endpoints, and registers every local minimum it discovers.
// Returns the ring's first vertex, or nil if the path is too
// degenerate to build (fewer than two distinct points, or a closed
// path whose points all share one Y).
func (cb *ClipperBase) buildPath(rawPath Path64, isOpen bool, pt PolyType) *Vertex {
	closed := !isOpen
	path := dedupPath(rawPath, closed)
	if len(path) < 2 {
		slog.Debug("vatticlip: skipping degenerate path", "points", len(rawPath), "isOpen", isOpen, "err", ErrDegeneratePath)
		return nil
	}

	verts := make([]*Vertex, len(path))
	for i, p := range path {
		verts[i] = &Vertex{Pt: p}
	}
	n := len(verts)
	for i, v := range verts {
		v.Next = verts[(i+1)%n]
		v.Prev = verts[(i-1+n)%n]
	}

	if isOpen {
		verts[0].Flags |= vfOpenStart
		verts[n-1].Flags |= vfOpenEnd
		cb.tagOpenPathMinMax(verts, pt)
		return verts[0]
	}

	// Find a vertex whose Y differs from its predecessor's, to use as
	// a safe starting point for direction tracking (a closed ring may
	// begin on a flat span).
	start := verts[0]
	found := false
	for i := 0; i < n; i++ {
		if verts[i].Pt.Y != verts[(i-1+n)%n].Pt.Y {
			start = verts[i]
			found = true
			break
		}
	}
	if !found {
		// Perfectly horizontal ring: no local minima are possible.
		slog.Debug("vatticlip: skipping horizontal-only closed path")
		return nil
	}

	goingUp := start.Pt.Y > start.Prev.Pt.Y // same "B.Y > A.Y" sense as nowGoingUp below
	first := start
	v := start
	for {
		next := v.Next
		if next.Pt.Y == v.Pt.Y {
			// Flat span: skip ahead without changing goingUp until Y
			// changes, so the whole span is treated as one step.
			v = next
			if v == first {
				break
			}
			continue
		}
		nowGoingUp := next.Pt.Y > v.Pt.Y
		if nowGoingUp != goingUp {
			if goingUp {
				v.Flags |= vfLocalMax
			} else {
				cb.addLocMin(v, pt, false)
			}
			goingUp = nowGoingUp
		}
		v = next
		if v == first {
			break
		}
	}
	return start
}

// tagOpenPathMinMax classifies an open path's vertices in a single
// linear pass from start to end (never wrapping around, since an open
// path's two endpoints are not connected). Each endpoint is
// classified against its one real neighbour: an endpoint the path
// ascends away from (or descends into) is a minimum; one it descends
// away from (or ascends into) is a maximum.
func (cb *ClipperBase) tagOpenPathMinMax(verts []*Vertex, pt PolyType) {
	n := len(verts)
	start := -1
	for i := 0; i < n-1; i++ {
		if verts[i+1].Pt.Y != verts[i].Pt.Y {
			start = i
			break
		}
	}
	if start < 0 {
		// Every segment is horizontal: there's no up/down transition to
		// anchor on, but the path still needs one bound built off its
		// start, so register it as an (arbitrary-direction) minimum and
		// its end as the matching maximum.
		cb.addLocMin(verts[0], pt, true)
		verts[n-1].Flags |= vfLocalMax
		return
	}

	goingUp := verts[start+1].Pt.Y > verts[start].Pt.Y
	if goingUp {
		cb.addLocMin(verts[0], pt, true)
	} else {
		verts[0].Flags |= vfLocalMax
	}

	for i := start + 1; i < n-1; i++ {
		if verts[i+1].Pt.Y == verts[i].Pt.Y {
			continue
		}
		nowGoingUp := verts[i+1].Pt.Y > verts[i].Pt.Y
		if nowGoingUp != goingUp {
			if goingUp {
				verts[i].Flags |= vfLocalMax
			} else {
				cb.addLocMin(verts[i], pt, true)
			}
			goingUp = nowGoingUp
		}
	}

	last := verts[n-1]
	if goingUp {
		last.Flags |= vfLocalMax
	} else {
		cb.addLocMin(last, pt, true)
	}
}

// AddPath registers one input path for the next Execute call. Open
// paths are rejected when pt is Clip (spec.md §6); malformed paths
// are skipped (logged at Debug), never returned as an error, per the
// "invalid input: silently skipped" rule in spec.md §7.
func (cb *ClipperBase) AddPath(path Path64, pt PolyType, isOpen bool) {
	cb.AddPaths(Paths64{path}, pt, isOpen)
}

// AddPaths registers a batch of input paths. See AddPath.
func (cb *ClipperBase) AddPaths(paths Paths64, pt PolyType, isOpen bool) {
	if isOpen && pt == PtClip {
		slog.Debug("vatticlip: rejecting open clip paths", "count", len(paths))
		return
	}
	cb.hasOpenPaths = cb.hasOpenPaths || isOpen
	for _, path := range paths {
		head := cb.buildPath(path, isOpen, pt)
		if head == nil {
			continue
		}
		cb.vertexLists = append(cb.vertexLists, head)
	}
}
