// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package obdd implements a reduced, ordered Binary Decision Diagram (BDD) that
compiles a Boolean truth table over a fixed number of variables into a shared
DAG whose leaves carry arbitrary string-valued outputs.

Basics

A Diagram has a fixed number of variables, bound when it is built from a
TruthTable with CreateBddFromTruthTable. Unlike an arena-based BDD kernel that
indexes nodes by integer position, this engine represents nodes as first
class values (Root, Internal, Leaf) connected by a shared DAG with explicit
up-references: every non-root node keeps a ParentSet recording every edge
that points at it, so that structural repairs after a local edit (a
reduction, an elimination, a don't-care prune) only need to walk the affected
node's own parents rather than rescan the whole graph.

Minimization

Minimize applies the two classical BDD rules to a fixed point: the reduction
rule merges structurally identical siblings at the same level, and the
elimination rule drops an internal node whose two branches already point at
the same child. Both rules are applied leaves-first, because merging leaves
first is what creates the sharing that lets their parents become candidates
for further merging on the pass above.

Don't-care pruning

RemoveIrrelevantLeafNodes removes every leaf carrying a caller-supplied
"don't care" marker value and collapses the ancestors left with only one
live branch, propagating the collapse up to the root.

Resolution

Resolve walks the diagram from the root given a set of resolver functions,
one per variable, each deciding which branch to take for some external
state; it returns the value carried by the leaf reached.
*/
package obdd
