// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package obdd

import "testing"

// S1: an all-equal table at depth 2 minimizes to a root whose both branches
// point at a single shared leaf.
func TestMinimize_AllEqual(t *testing.T) {
	table := TruthTable{"00": "a", "01": "a", "10": "a", "11": "a"}
	d, err := CreateBddFromTruthTable(table)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if err := d.Minimize(true); err != nil {
		t.Fatalf("minimize: %v", err)
	}
	if got, want := d.CountNodes(), 2; got != want {
		t.Fatalf("CountNodes() = %d, want %d", got, want)
	}
	zero, _ := d.RootNode().Branches().GetBranch("0")
	one, _ := d.RootNode().Branches().GetBranch("1")
	if zero != one {
		t.Fatalf("root branches are not the same node after minimize")
	}
	if !zero.IsLeaf() || zero.Value() != "a" {
		t.Fatalf("root's shared child is not leaf %q", "a")
	}
	if err := EnsureCorrectBdd(d); err != nil {
		t.Fatalf("EnsureCorrectBdd: %v", err)
	}
}

// S2: depth-3 table with a genuine reduction opportunity; minimize must
// strictly shrink the node count below the unreduced build's 15 nodes.
func TestMinimize_PartialRedundancy(t *testing.T) {
	table := TruthTable{
		"000": "a", "001": "a", "010": "a", "011": "b",
		"100": "b", "101": "b", "110": "b", "111": "b",
	}
	d, err := CreateBddFromTruthTable(table)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got, want := d.CountNodes(), 15; got != want {
		t.Fatalf("unreduced CountNodes() = %d, want %d", got, want)
	}
	if err := d.Minimize(true); err != nil {
		t.Fatalf("minimize: %v", err)
	}
	if d.CountNodes() >= 15 {
		t.Fatalf("CountNodes() = %d, want strictly less than 15", d.CountNodes())
	}
	if err := EnsureCorrectBdd(d); err != nil {
		t.Fatalf("EnsureCorrectBdd: %v", err)
	}
}

// S3: findSimilarNode never returns the node itself.
func TestFindSimilarNode_ExcludesSelf(t *testing.T) {
	table := TruthTable{"0": "a", "1": "b"}
	d, err := CreateBddFromTruthTable(table)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	leaf := d.GetLeafNodes()[0]
	if got := findSimilarNode(leaf, []*Node{leaf}); got != nil {
		t.Fatalf("findSimilarNode(X, [X]) = %v, want nil", got)
	}
}

// S4: the root is never a candidate for findSimilarNode.
func TestFindSimilarNode_ExcludesRoot(t *testing.T) {
	tableA := TruthTable{"0": "a", "1": "a"}
	tableB := TruthTable{"0": "a", "1": "a"}
	dA, _ := CreateBddFromTruthTable(tableA)
	dB, _ := CreateBddFromTruthTable(tableB)
	if got := findSimilarNode(dA.RootNode(), []*Node{dB.RootNode()}); got != nil {
		t.Fatalf("findSimilarNode(root, [otherRoot]) = %v, want nil", got)
	}
}

// S5: on an all-equal depth-4 table whose leaves have been shared and whose
// level-3 nodes have been eliminated, every level-2 node branches to the
// single leaf on both labels; applying the reduction rule once to the first
// level-2 node merges it into a sibling, and the diagram stays valid.
func TestApplyReductionRule_SingleStep(t *testing.T) {
	table := allKeysTable(4, func(string) string { return "a" })
	d, err := CreateBddFromTruthTable(table)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, leaf := range d.GetLeafNodes() {
		d.applyReductionRule(leaf)
	}
	for _, x := range d.GetNodesOfLevel(3) {
		d.applyEliminationRule(x)
	}
	level2 := d.GetNodesOfLevel(2)
	if len(level2) == 0 {
		t.Fatalf("no nodes at level 2")
	}
	x := level2[0]
	if !d.applyReductionRule(x) {
		t.Fatalf("applyReductionRule did not merge an all-equal sibling")
	}
	if err := EnsureCorrectBdd(d); err != nil {
		t.Fatalf("EnsureCorrectBdd: %v", err)
	}
}

// Property 3: after minimize, no two distinct nodes at any level are
// similar, and no internal node has equal branches.
func TestMinimize_NoFurtherReductionPossible(t *testing.T) {
	table := allKeysTable(4, func(k string) string {
		if k[0] == '0' {
			return "a"
		}
		return "b"
	})
	d, err := CreateBddFromTruthTable(table)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if err := d.Minimize(true); err != nil {
		t.Fatalf("minimize: %v", err)
	}
	for l := 1; l <= d.n; l++ {
		nodes := d.GetNodesOfLevel(l)
		for i, x := range nodes {
			for _, y := range nodes[i+1:] {
				if similar(x, y) {
					t.Fatalf("nodes %s and %s at level %d are still similar after minimize", x.ID(), y.ID(), l)
				}
			}
			if x.IsInternal() && x.branch.HasEqualBranches() {
				t.Fatalf("internal node %s still has equal branches after minimize", x.ID())
			}
		}
	}
}
