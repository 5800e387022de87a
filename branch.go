// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package obdd

// Branch is the two-slot child holder used by Root and Internal nodes
// (spec.md §4.2). It belongs to exactly one owner, which it needs in order
// to keep the children's ParentSets in sync on every SetBranch call.
type Branch struct {
	owner *Node
	zero  *Node
	one   *Node
}

func newBranch(owner *Node) *Branch {
	return &Branch{owner: owner}
}

// GetBranch returns the child reachable on label, which must be "0" or "1".
func (br *Branch) GetBranch(label string) (*Node, error) {
	switch label {
	case "0":
		return br.zero, nil
	case "1":
		return br.one, nil
	default:
		return nil, ErrUnknownBranchLabel
	}
}

// SetBranch replaces the child reachable on label, updating both the new
// child's and the prior child's ParentSet atomically — even when the node
// being set is already the other branch's child, in which case the prior
// child's ParentSet still loses exactly one (owner, label) entry and the
// new child's ParentSet gains exactly one.
func (br *Branch) SetBranch(label string, child *Node) error {
	var prior *Node
	switch label {
	case "0":
		prior = br.zero
	case "1":
		prior = br.one
	default:
		return ErrUnknownBranchLabel
	}
	if prior == child {
		return nil
	}
	if prior != nil && prior.parents != nil {
		prior.parents.remove(br.owner, label)
	}
	switch label {
	case "0":
		br.zero = child
	case "1":
		br.one = child
	}
	if child != nil && child.parents != nil {
		child.parents.add(br.owner, label)
	}
	return nil
}

// HasEqualBranches reports whether the "0" and "1" children are the same
// node by identity, the precondition for the elimination rule (spec.md
// §4.5).
func (br *Branch) HasEqualBranches() bool {
	return br.zero != nil && br.zero == br.one
}
