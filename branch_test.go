// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package obdd

import "testing"

func TestSetBranch_MultiplicityWhenSameChildOnBothLabels(t *testing.T) {
	d := newDiagram(1)
	root := d.newRoot()
	leaf := d.newLeaf("a")

	if err := root.branch.SetBranch("0", leaf); err != nil {
		t.Fatalf("SetBranch(0): %v", err)
	}
	if err := root.branch.SetBranch("1", leaf); err != nil {
		t.Fatalf("SetBranch(1): %v", err)
	}
	if got, want := leaf.parents.Size(), 2; got != want {
		t.Fatalf("leaf.parents.Size() = %d, want %d", got, want)
	}
	if got, want := len(leaf.parents.GetAll()), 1; got != want {
		t.Fatalf("len(leaf.parents.GetAll()) = %d, want %d (deduped)", got, want)
	}

	// Removing the "0" edge must not also remove the "1" edge from the same parent.
	leaf.parents.remove(root, "0")
	if got, want := leaf.parents.Size(), 1; got != want {
		t.Fatalf("after removing one edge, Size() = %d, want %d", got, want)
	}
	if !leaf.parents.Has(root) {
		t.Fatalf("the other (root, \"1\") edge should still be present")
	}
}

func TestHasEqualBranches(t *testing.T) {
	d := newDiagram(1)
	root := d.newRoot()
	a := d.newLeaf("a")
	b := d.newLeaf("b")

	_ = root.branch.SetBranch("0", a)
	_ = root.branch.SetBranch("1", b)
	if root.branch.HasEqualBranches() {
		t.Fatalf("distinct children should not be reported equal")
	}

	_ = root.branch.SetBranch("1", a)
	if !root.branch.HasEqualBranches() {
		t.Fatalf("identical children should be reported equal")
	}
}

func TestGetBranch_UnknownLabel(t *testing.T) {
	d := newDiagram(1)
	root := d.newRoot()
	if _, err := root.branch.GetBranch("2"); err != ErrUnknownBranchLabel {
		t.Fatalf("GetBranch(\"2\") err = %v, want ErrUnknownBranchLabel", err)
	}
}
