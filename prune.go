// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package obdd

// RemoveIrrelevantLeafNodes removes every leaf whose value equals marker
// and collapses the ancestors left with only one live branch, propagating
// the collapse up to the root (spec.md §4.9). If every leaf in the diagram
// is the marker, the diagram has no defined value: per the reference
// behaviour chosen for this corner case (spec.md §4.9, §9), the diagram is
// left empty and subsequent Resolve calls fail with ErrEmptyDiagram.
func (d *Diagram) RemoveIrrelevantLeafNodes(marker string) error {
	if d.rootNode == nil {
		return nil
	}
	dead := make(map[string]bool)
	aliveLeaf := false
	for _, leaf := range d.GetLeafNodes() {
		if leaf.value == marker {
			dead[leaf.id] = true
		} else {
			aliveLeaf = true
		}
	}
	if !aliveLeaf {
		d.clear()
		return nil
	}
	if len(dead) == 0 {
		return nil
	}

	// Propagate deadness upward, level by level, from the leaves' parents
	// to the root. By the time we look at level l, every node at level l+1
	// has already been finalized: its branches (if it survived by
	// collapsing into a sibling) already point at their final target.
	for l := d.n - 1; l >= 0; l-- {
		for _, x := range d.GetNodesOfLevel(l) {
			zero, _ := x.branch.GetBranch("0")
			one, _ := x.branch.GetBranch("1")
			zeroDead, oneDead := dead[zero.id], dead[one.id]
			switch {
			case zeroDead && oneDead:
				if x.IsRoot() {
					// Unreachable: aliveLeaf guarantees some path from the
					// root stays live all the way to a leaf, so root cannot
					// lose both branches.
					d.clear()
					return nil
				}
				dead[x.id] = true
			case zeroDead:
				if x.IsRoot() {
					_ = x.branch.SetBranch("0", one)
				} else {
					d.collapseInto(x, one, "1")
					dead[x.id] = true
				}
			case oneDead:
				if x.IsRoot() {
					_ = x.branch.SetBranch("1", zero)
				} else {
					d.collapseInto(x, zero, "0")
					dead[x.id] = true
				}
			}
		}
	}

	if dead[d.rootNode.id] {
		// Every node on every path to a leaf was pruned away: this can only
		// happen if aliveLeaf was wrongly computed, since every leaf is
		// reachable from the root by construction. Defensive, not reachable
		// in practice.
		d.clear()
		return nil
	}

	for id := range dead {
		if n, ok := d.nodesByID[id]; ok {
			d.unregister(n)
		}
	}
	d.logStep("prune", d.rootNode, nil)
	// Collapsing may have left internal nodes with equal branches, or
	// created fresh opportunities for sibling merges; hand off to the
	// regular fixed-point minimizer to mop those up (spec.md §4.9: "If both
	// branches of an internal node reference the same (post-pruning) child,
	// apply elimination").
	return d.Minimize(true)
}

// collapseInto rewires every parent edge pointing at x to point at survivor
// instead, and drops x's own (now stale) contribution to survivor's
// ParentSet on keepLabel. x itself is left for the caller to mark dead and
// remove from the registry.
func (d *Diagram) collapseInto(x *Node, survivor *Node, keepLabel string) {
	for _, e := range x.parents.edges() {
		_ = e.parent.branch.SetBranch(e.label, survivor)
	}
	if survivor.parents != nil {
		survivor.parents.remove(x, keepLabel)
	}
}

// clear empties the diagram entirely, used when don't-care pruning leaves
// no defined value anywhere.
func (d *Diagram) clear() {
	d.rootNode = nil
	d.nodesByID = make(map[string]*Node)
	for l := 0; l <= d.n; l++ {
		d.levels[l].Clear()
	}
}
