// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package obdd

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// EnsureCorrectBdd audits every invariant of spec.md §3 and returns the
// first violation it finds as an *InvariantError. A Diagram that fails this
// check is, per spec.md §7, in an undefined state and must not be used
// further. An empty diagram (the result of pruning every leaf) trivially
// satisfies every invariant.
func EnsureCorrectBdd(d *Diagram) error {
	if d.rootNode == nil {
		return nil
	}
	if d.rootNode.parents != nil && d.rootNode.parents.Size() != 0 {
		return invariantError(d.rootNode.id, "root must have an empty parent set")
	}

	// Reachability walk, adapted from the teacher's markrec/unmarkall
	// (gc.go) to build a mapset.Set of reachable ids instead of flipping a
	// mark bit in an arena slot, since nodes here live in a map registry.
	reachable := mapset.NewThreadUnsafeSet[string]()
	var walk func(n *Node) error
	walk = func(n *Node) error {
		if reachable.Contains(n.id) {
			return nil
		}
		reachable.Add(n.id)
		if n.IsLeaf() {
			if n.level != d.n {
				return invariantError(n.id, fmt.Sprintf("leaf at level %d, want leaf level %d", n.level, d.n))
			}
			return nil
		}
		if n.branch == nil {
			return invariantError(n.id, "non-leaf node has no branch container")
		}
		zero, _ := n.branch.GetBranch("0")
		one, _ := n.branch.GetBranch("1")
		if zero == nil || one == nil {
			return invariantError(n.id, "internal or root node has a nil branch")
		}
		for _, child := range []*Node{zero, one} {
			// Strictly descending, not necessarily adjacent: the elimination
			// rule (reduce.go) rewires a parent directly to a former
			// grandchild when the node between them had equal branches, so a
			// reduced diagram can legitimately skip levels (spec.md §4.5).
			if child.level <= n.level {
				return invariantError(child.id, fmt.Sprintf("node at level %d referenced as a child of level %d", child.level, n.level))
			}
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(d.rootNode); err != nil {
		return err
	}

	for _, id := range reachable.ToSlice() {
		n, ok := d.nodesByID[id]
		if !ok {
			return invariantError(id, "reachable node is missing from nodesByID")
		}
		if !n.IsRoot() {
			if n.parents == nil || n.parents.Size() < 1 {
				return invariantError(id, "non-root node has no recorded parent edge")
			}
		}
		if n.parents != nil {
			for _, e := range n.parents.edges() {
				child, err := e.parent.branch.GetBranch(e.label)
				if err != nil || child != n {
					return invariantError(id, fmt.Sprintf("recorded parent %s on label %q does not point back here", e.parent.id, e.label))
				}
			}
		}
	}

	if len(d.nodesByID) != reachable.Cardinality() {
		return invariantError(d.rootNode.id, "nodesByID does not match the reachable set from rootNode")
	}
	for lvl, set := range d.levels {
		for _, id := range set.ToSlice() {
			if !reachable.Contains(id) {
				return invariantError(id, fmt.Sprintf("levels[%d] contains an unreachable node", lvl))
			}
			n, ok := d.nodesByID[id]
			if !ok || n.level != lvl {
				return invariantError(id, fmt.Sprintf("levels[%d] membership disagrees with the node's own level", lvl))
			}
		}
	}
	for _, id := range d.levels[d.n].ToSlice() {
		n, ok := d.nodesByID[id]
		if !ok || !n.IsLeaf() {
			return invariantError(id, "leaf level contains a non-leaf node")
		}
	}
	return nil
}
