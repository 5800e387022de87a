// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package obdd

import "fmt"

// TruthTable is a total mapping from every N-bit binary key to a non-empty
// string value (spec.md §4.1). N is fixed by the length of the keys, which
// must all agree.
type TruthTable map[string]string

// validate checks the TruthTable precondition: non-empty, every key has the
// same length N >= 1, every one of the 2^N binary strings of that length is
// present, and every value is non-empty.
func (t TruthTable) validate() (int, error) {
	if len(t) == 0 {
		return 0, fmt.Errorf("%w: empty table", ErrMalformedTable)
	}
	n := -1
	for k := range t {
		if n == -1 {
			n = len(k)
		}
		if len(k) != n {
			return 0, fmt.Errorf("%w: inconsistent key lengths (%d and %d)", ErrMalformedTable, n, len(k))
		}
		for _, c := range k {
			if c != '0' && c != '1' {
				return 0, fmt.Errorf("%w: key %q is not a binary string", ErrMalformedTable, k)
			}
		}
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: N must be >= 1", ErrMalformedTable)
	}
	want := 1 << n
	if len(t) != want {
		return 0, fmt.Errorf("%w: expected %d entries for N=%d, got %d", ErrMalformedTable, want, n, len(t))
	}
	for i := 0; i < want; i++ {
		k := binaryKey(i, n)
		v, ok := t[k]
		if !ok {
			return 0, fmt.Errorf("%w: missing key %q", ErrMalformedTable, k)
		}
		if v == "" {
			return 0, fmt.Errorf("%w: value for key %q is empty", ErrMalformedTable, k)
		}
	}
	return n, nil
}

func binaryKey(i, n int) string {
	b := make([]byte, n)
	for pos := n - 1; pos >= 0; pos-- {
		if i&1 == 1 {
			b[pos] = '1'
		} else {
			b[pos] = '0'
		}
		i >>= 1
	}
	return string(b)
}

// CreateBddFromTruthTable builds a canonical, complete, non-reduced BDD of
// depth N from table (spec.md §4.4). It builds top-down: one Root at level
// 0, 2^L fresh Internal nodes at every level L in [1, N-1], and one Leaf
// per truth-table row at level N. Leaves are not shared at this stage —
// sharing only happens once Minimize runs the reduction rule.
func CreateBddFromTruthTable(table TruthTable, opts ...Option) (*Diagram, error) {
	n, err := table.validate()
	if err != nil {
		return nil, err
	}
	d := newDiagram(n, opts...)
	root := d.newRoot()
	d.buildSubtree(root, "", table)
	d.maybeValidate()
	return d, nil
}

// buildSubtree recursively expands node, which represents the path prefix
// from the root, into its "0" and "1" children.
func (d *Diagram) buildSubtree(node *Node, prefix string, table TruthTable) {
	level := len(prefix)
	for _, bit := range []string{"0", "1"} {
		childPrefix := prefix + bit
		var child *Node
		if level+1 == d.n {
			child = d.newLeaf(table[childPrefix])
		} else {
			child = d.newInternal(level + 1)
		}
		_ = node.branch.SetBranch(bit, child)
		if level+1 < d.n {
			d.buildSubtree(child, childPrefix, table)
		}
	}
}
