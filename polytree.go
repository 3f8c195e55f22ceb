package vatticlip

// PolyPath64 is one node of a PolyTree64: a single ring together with
// the holes (and, nested inside those holes, further outer rings)
// found directly inside it (spec.md §3, §6).
type PolyPath64 struct {
	Polygon  Path64
	Parent   *PolyPath64
	Children []*PolyPath64
}

// IsHole reports whether this node's ring is a hole rather than an
// outer boundary: true at every even, non-zero depth below the tree
// root (spec.md §6's parity rule).
func (p *PolyPath64) IsHole() bool {
	depth := 0
	for n := p.Parent; n != nil; n = n.Parent {
		depth++
	}
	return depth > 0 && depth%2 == 0
}

func (p *PolyPath64) addChild(path Path64) *PolyPath64 {
	child := &PolyPath64{Polygon: path, Parent: p}
	p.Children = append(p.Children, child)
	return child
}

// PolyTree64 is the root of a nesting tree; its own Polygon is always
// empty and its Parent always nil.
type PolyTree64 struct {
	PolyPath64
}

// buildResultTree assembles the closed portion of the solution into a
// PolyTree64, walking each OutRec's owner chain to place it under its
// resolved parent (spec.md §6's second Execute overload). Owners are
// resolved before children since resolve recurses up the chain first,
// satisfying spec.md §9's "parents precede children" requirement.
func (cl *Clipper64) buildResultTree() *PolyTree64 {
	tree := &PolyTree64{}
	nodeFor := make(map[*OutRec]*PolyPath64, len(cl.outrecs))

	var resolve func(outrec *OutRec) *PolyPath64
	resolve = func(outrec *OutRec) *PolyPath64 {
		if node, ok := nodeFor[outrec]; ok {
			return node
		}
		var parent *PolyPath64
		if owner := getRealOutRec(outrec.Owner); owner != nil {
			parent = resolve(owner)
		} else {
			parent = &tree.PolyPath64
		}
		path := outPtsToPath(outrec.Pts)
		if cl.ReverseSolution {
			reversePath(path)
		}
		node := parent.addChild(path)
		nodeFor[outrec] = node
		return node
	}

	for _, outrec := range cl.outrecs {
		if outrec.Pts == nil || outrec.State == orOpen {
			continue
		}
		if len(outPtsToPath(outrec.Pts)) < 3 {
			continue
		}
		resolve(outrec)
	}
	return tree
}
