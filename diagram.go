// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package obdd

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// idSet is an insertion-ordered set of node ids. GetNodesOfLevel promises
// callers insertion order (spec.md §4.10), which rules out a hash-backed
// set like mapset.Set for this particular index — mapset is still used
// where order genuinely doesn't matter (validate.go's reachability walk).
type idSet struct {
	order   []string
	present map[string]bool
}

func newIDSet() *idSet {
	return &idSet{present: make(map[string]bool)}
}

func (s *idSet) Add(id string) {
	if s.present[id] {
		return
	}
	s.present[id] = true
	s.order = append(s.order, id)
}

func (s *idSet) Remove(id string) {
	if !s.present[id] {
		return
	}
	delete(s.present, id)
	for i, x := range s.order {
		if x == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *idSet) ToSlice() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *idSet) Cardinality() int { return len(s.order) }

func (s *idSet) Clear() {
	s.order = nil
	s.present = make(map[string]bool)
}

// Diagram is the top-level owner of a BDD: a shared DAG of Root, Internal
// and Leaf nodes, indexed two ways for fast access (spec.md §3). levels and
// nodesByID are derived views over the set of nodes reachable from
// rootNode; every mutation keeps them in lock-step, deleting an orphaned
// node from both indexes as part of the same operation that orphans it
// rather than lazily (spec.md §5).
type Diagram struct {
	n         int // number of variables (the truth table's key length)
	rootNode  *Node
	levels    map[int]*idSet // level -> node ids at that level, insertion order
	nodesByID map[string]*Node
	seq       int

	logger       logrus.FieldLogger
	autoValidate bool
}

func newDiagram(n int, opts ...Option) *Diagram {
	s := defaultSettings()
	for _, opt := range opts {
		opt(s)
	}
	d := &Diagram{
		n:            n,
		levels:       make(map[int]*idSet),
		nodesByID:    make(map[string]*Node),
		logger:       s.logger,
		autoValidate: s.autoValidate,
	}
	for l := 0; l <= n; l++ {
		d.levels[l] = newIDSet()
	}
	return d
}

// Varnum returns the number of variables the diagram is defined over.
func (d *Diagram) Varnum() int { return d.n }

// RootNode returns the diagram's unique Root.
func (d *Diagram) RootNode() *Node { return d.rootNode }

// Branches exposes the Root's Branch container for navigation, per the
// library surface in spec.md §6.
func (d *Diagram) Branches() *Branch {
	if d.rootNode == nil {
		return nil
	}
	return d.rootNode.branch
}

func (d *Diagram) nextID() string {
	d.seq++
	return fmt.Sprintf("n%d", d.seq)
}

// register adds a freshly created node to both indexes.
func (d *Diagram) register(n *Node) {
	d.nodesByID[n.id] = n
	d.levels[n.level].Add(n.id)
}

// unregister removes a node that is no longer reachable from both indexes.
func (d *Diagram) unregister(n *Node) {
	delete(d.nodesByID, n.id)
	if s, ok := d.levels[n.level]; ok {
		s.Remove(n.id)
	}
}

func (d *Diagram) newRoot() *Node {
	n := newRoot(d.nextID())
	d.register(n)
	d.rootNode = n
	return n
}

func (d *Diagram) newInternal(level int) *Node {
	n := newInternal(d.nextID(), level)
	d.register(n)
	return n
}

func (d *Diagram) newLeaf(value string) *Node {
	n := newLeaf(d.nextID(), d.n, value)
	d.register(n)
	return n
}

// maybeValidate runs EnsureCorrectBdd when the diagram was built with
// WithAutoValidate(true). It panics on violation rather than returning an
// error, because the caller of maybeValidate is always deep inside a
// mutation that has no error return of its own to surface it through; the
// panic is meant to be caught by tests exercising intermediate states, not
// by production code (WithAutoValidate is documented as a debugging aid).
func (d *Diagram) maybeValidate() {
	if !d.autoValidate {
		return
	}
	if err := EnsureCorrectBdd(d); err != nil {
		panic(err)
	}
}

// CountNodes returns the total number of nodes reachable from the root,
// leaves included.
func (d *Diagram) CountNodes() int {
	return len(d.nodesByID)
}

// GetNodesOfLevel returns the nodes at level l, in insertion order.
func (d *Diagram) GetNodesOfLevel(l int) []*Node {
	s, ok := d.levels[l]
	if !ok {
		return nil
	}
	ids := s.ToSlice()
	out := make([]*Node, 0, len(ids))
	for _, id := range ids {
		if n, ok := d.nodesByID[id]; ok {
			out = append(out, n)
		}
	}
	return out
}

// GetLeafNodes is shorthand for GetNodesOfLevel(Varnum()).
func (d *Diagram) GetLeafNodes() []*Node {
	return d.GetNodesOfLevel(d.n)
}

// Stats returns a short textual summary of the diagram's shape: the node
// count at every level and the total, in the teacher's (*hudd).stats idiom
// (hudd.go). This is not a persistence format — it is meant for humans
// debugging a minimize pass, not for round-tripping a Diagram.
func (d *Diagram) Stats() string {
	res := fmt.Sprintf("variables: %d\n", d.n)
	for l := 0; l <= d.n; l++ {
		res += fmt.Sprintf("level %-3d nodes: %d\n", l, d.levels[l].Cardinality())
	}
	res += fmt.Sprintf("total nodes: %d\n", d.CountNodes())
	return res
}
