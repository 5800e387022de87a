// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package obdd

import "fmt"

// Resolver decides, for some external state, which branch to take at one
// BDD variable. It may fail — e.g. the state does not carry the property
// the variable tests for — in which case Resolve surfaces the error
// wrapped in a *ResolverError naming the variable and node (spec.md §7).
type Resolver func(state string) (bool, error)

// ResolverSet maps a variable index i in [0, N-1] to its Resolver
// (spec.md §4.8).
type ResolverSet map[int]Resolver

// Resolve evaluates the diagram against resolvers for state, descending
// from the root: a node (Root or Internal) at level L determines the bit at
// key position L, so it calls resolver L with state, takes the "1" branch
// if it returns true and the "0" branch otherwise, and returns the value
// carried by the leaf it eventually reaches.
func (d *Diagram) Resolve(resolvers ResolverSet, state string) (string, error) {
	if d.rootNode == nil {
		return "", ErrEmptyDiagram
	}
	node := d.rootNode
	for !node.IsLeaf() {
		varIndex := node.level
		r, ok := resolvers[varIndex]
		if !ok {
			return "", fmt.Errorf("%w: no resolver registered for variable %d", ErrResolverFailure, varIndex)
		}
		take, err := r(state)
		if err != nil {
			return "", &ResolverError{VarIndex: varIndex, NodeID: node.id, Err: err}
		}
		label := "0"
		if take {
			label = "1"
		}
		child, err := node.branch.GetBranch(label)
		if err != nil {
			return "", err
		}
		node = child
	}
	return node.value, nil
}
