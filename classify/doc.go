// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package classify computes the variable vector that a change-event state
table (an obdd.TruthTable) is built from.

Given a single document mutation (a ChangeEvent), a compiled query
specification (QueryParams: a MongoDB-style selector plus sort/limit/skip),
and the ids currently in the query's result set, Classify evaluates a fixed,
ordered list of predicates — see Predicates — and packs the results into a
Vector, an ordered bit vector whose Key method renders it to the binary
string that indexes an obdd.TruthTable.

This package is the consumer side of the engine in package obdd: its output
is exactly the kind of key obdd.CreateBddFromTruthTable expects, and exactly
the kind of state obdd.Resolver functions are meant to test bits of.
*/
package classify
