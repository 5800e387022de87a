// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package obdd

// JSONNode is the stable plain representation produced by ToJSON: a nested
// object with "0"/"1" children at Root/Internal nodes and a value at
// Leaves (spec.md §4.10). It is the only persisted format this engine
// offers, and it is lossy with respect to sharing unless IncludeIDs is set
// and the caller post-processes the tree to re-link on matching ids
// (spec.md §6).
type JSONNode struct {
	ID    string    `json:"id,omitempty"`
	Value string    `json:"value,omitempty"`
	Zero  *JSONNode `json:"0,omitempty"`
	One   *JSONNode `json:"1,omitempty"`
}

// ToJSON renders the diagram into its plain representation, used for
// equality comparisons in tests and for the "no marker string anywhere"
// assertion after RemoveIrrelevantLeafNodes (spec.md §4.10, §8 property 4).
func (d *Diagram) ToJSON(includeIDs bool) (*JSONNode, error) {
	if d.rootNode == nil {
		return nil, ErrEmptyDiagram
	}
	return d.toJSONNode(d.rootNode, includeIDs), nil
}

func (d *Diagram) toJSONNode(n *Node, includeIDs bool) *JSONNode {
	j := &JSONNode{}
	if includeIDs {
		j.ID = n.id
	}
	if n.IsLeaf() {
		j.Value = n.value
		return j
	}
	zero, _ := n.branch.GetBranch("0")
	one, _ := n.branch.GetBranch("1")
	j.Zero = d.toJSONNode(zero, includeIDs)
	j.One = d.toJSONNode(one, includeIDs)
	return j
}
