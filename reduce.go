// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package obdd

import "github.com/sirupsen/logrus"

// similar implements spec.md §4.5: X is similar to Y iff they are at the
// same level and either both are Leaves with equal value, or both are
// Internals whose "0" children are the same node by identity and whose "1"
// children are the same node by identity. A node is never similar to
// itself, and the Root is never similar to anything (it cannot merge: it
// is the diagram's unique entry point).
func similar(a, b *Node) bool {
	if a == b {
		return false
	}
	if a.level != b.level {
		return false
	}
	if a.kind == KindRoot || b.kind == KindRoot {
		return false
	}
	if a.kind != b.kind {
		return false
	}
	if a.IsLeaf() {
		return a.value == b.value
	}
	az, _ := a.branch.GetBranch("0")
	bz, _ := b.branch.GetBranch("0")
	if az != bz {
		return false
	}
	ao, _ := a.branch.GetBranch("1")
	bo, _ := b.branch.GetBranch("1")
	return ao == bo
}

// findSimilarNode returns the first candidate similar to node, excluding
// node itself, or nil if none is found (spec.md §4.5, scenarios S3/S4).
func findSimilarNode(node *Node, candidates []*Node) *Node {
	for _, c := range candidates {
		if similar(node, c) {
			return c
		}
	}
	return nil
}

// applyReductionRule merges x into a structurally identical sibling at the
// same level, if one exists: every edge (P, b) pointing at x is rewired to
// point at the sibling instead, and x is dropped from the diagram. It
// reports whether a merge happened.
func (d *Diagram) applyReductionRule(x *Node) bool {
	if x.IsRoot() {
		return false
	}
	y := findSimilarNode(x, d.GetNodesOfLevel(x.level))
	if y == nil {
		return false
	}
	for _, e := range x.parents.edges() {
		_ = e.parent.branch.SetBranch(e.label, y)
	}
	// x's own edges into its children are going away with x; y keeps its
	// own edges into the same children.
	if !x.IsLeaf() {
		for _, label := range []string{"0", "1"} {
			c, _ := x.branch.GetBranch(label)
			if c != nil && c.parents != nil {
				c.parents.remove(x, label)
			}
		}
	}
	d.unregister(x)
	d.logStep("reduce", x, logrus.Fields{"mergedInto": y.ID()})
	return true
}

// applyEliminationRule drops x, an Internal node whose two branches are the
// same child C, rewiring every edge that pointed at x to point at C
// instead. It reports whether an elimination happened.
func (d *Diagram) applyEliminationRule(x *Node) bool {
	if !x.IsInternal() || !x.branch.HasEqualBranches() {
		return false
	}
	c, _ := x.branch.GetBranch("0")
	for _, e := range x.parents.edges() {
		_ = e.parent.branch.SetBranch(e.label, c)
	}
	// x's own two edges into c are not touched by the SetBranch calls above
	// (x's branch container is not being mutated, x itself is going away), so
	// we have to drop x's contribution to c.parents by hand.
	if c.parents != nil {
		c.parents.remove(x, "0")
		c.parents.remove(x, "1")
	}
	d.unregister(x)
	d.logStep("eliminate", x, logrus.Fields{"collapsedTo": c.ID()})
	return true
}

// Minimize is the fixed-point driver of spec.md §4.7. With untilDone true,
// it repeats leaves-first passes over every level until a full
// pass makes no structural change. With untilDone false, it runs exactly
// one pass, which is useful in tests that want to observe an intermediate
// state.
func (d *Diagram) Minimize(untilDone bool) error {
	for {
		changed := false
		for l := d.n; l >= 1; l-- {
			for _, x := range d.GetNodesOfLevel(l) {
				if _, ok := d.nodesByID[x.id]; !ok {
					continue // removed earlier in this same pass
				}
				if d.applyReductionRule(x) {
					changed = true
				}
			}
			for _, x := range d.GetNodesOfLevel(l) {
				if _, ok := d.nodesByID[x.id]; !ok {
					continue
				}
				if d.applyEliminationRule(x) {
					changed = true
				}
			}
		}
		if !changed || !untilDone {
			break
		}
	}
	d.maybeValidate()
	return nil
}
