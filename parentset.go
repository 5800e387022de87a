// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package obdd

// ParentSet is a multiset of (parent, label) up-references (spec.md §4.3).
// Multiplicity matters: a parent that points at this node on both branches
// contributes two entries, one per label, and removing one must not affect
// the other. We keep it as a plain slice of edges rather than a map keyed
// by parent id, because the set is small (at most two entries per distinct
// parent) and a linear scan is simpler and just as fast as a map lookup at
// this size — the same trade-off the teacher makes by keeping huddnode's
// hash-collision chain as a linked list instead of a secondary index.
type ParentSet struct {
	entries []parentEdge
}

type parentEdge struct {
	parent *Node
	label  string
}

func newParentSet() *ParentSet {
	return &ParentSet{}
}

// add records one more (parent, label) edge.
func (ps *ParentSet) add(parent *Node, label string) {
	ps.entries = append(ps.entries, parentEdge{parent, label})
}

// remove deletes exactly one (parent, label) edge, if present. It does not
// touch any other edge, including another (parent, otherLabel) edge from
// the same parent.
func (ps *ParentSet) remove(parent *Node, label string) {
	for i, e := range ps.entries {
		if e.parent == parent && e.label == label {
			ps.entries = append(ps.entries[:i], ps.entries[i+1:]...)
			return
		}
	}
}

// getAll returns each distinct parent once, in first-seen order.
func (ps *ParentSet) getAll() []*Node {
	seen := make(map[string]bool, len(ps.entries))
	out := make([]*Node, 0, len(ps.entries))
	for _, e := range ps.entries {
		if seen[e.parent.id] {
			continue
		}
		seen[e.parent.id] = true
		out = append(out, e.parent)
	}
	return out
}

// GetAll is the exported form of getAll, used by the validator and by
// callers navigating the graph from a node upward.
func (ps *ParentSet) GetAll() []*Node { return ps.getAll() }

// size returns the total multiplicity of the set.
func (ps *ParentSet) size() int { return len(ps.entries) }

// Size is the exported form of size.
func (ps *ParentSet) Size() int { return ps.size() }

// has reports whether parent appears at least once, on any label.
func (ps *ParentSet) has(parent *Node) bool {
	for _, e := range ps.entries {
		if e.parent == parent {
			return true
		}
	}
	return false
}

// Has is the exported form of has.
func (ps *ParentSet) Has(parent *Node) bool { return ps.has(parent) }

// edges returns a copy of the raw (parent, label) pairs, used by the
// reduction and elimination rules to rewire every recorded edge.
func (ps *ParentSet) edges() []parentEdge {
	out := make([]parentEdge, len(ps.entries))
	copy(out, ps.entries)
	return out
}
