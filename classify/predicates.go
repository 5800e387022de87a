// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package classify

// Predicate names one boolean classifying function and the bit position
// it occupies in a Vector. The set is closed (spec.md §4.11): these are
// exactly the predicates the state table needs, in a fixed order that both
// the BDD builder and the classifier must agree on.
type Predicate struct {
	Name string
	Fn   func(ctx Context) bool
}

// Predicates is the ordered, closed list of classifying predicates. Their
// index in this slice is their bit position in a Vector.
var Predicates = []Predicate{
	{"wasInResult", wasInResult},
	{"wasSortedAfterLast", wasSortedAfterLast},
	{"wasSortedBeforeFirst", wasSortedBeforeFirst},
	{"sortParamsChanged", sortParamsChanged},
	{"matchedSelectorBefore", matchedSelectorBefore},
	{"matchedSelectorAfter", matchedSelectorAfter},
	{"limitReached", limitReached},
	{"operationIsInsert", operationIsInsert},
	{"operationIsDelete", operationIsDelete},
}

// PredicateNames returns the ordered predicate names, so a caller holding
// a Vector can render it back to a human-readable explanation of why a
// document was classified the way it was.
func PredicateNames() []string {
	names := make([]string, len(Predicates))
	for i, p := range Predicates {
		names[i] = p.Name
	}
	return names
}

// wasInResult reports whether the mutated document's id was present in
// the query's result set before the mutation.
func wasInResult(ctx Context) bool {
	for _, id := range ctx.PreviousResults {
		if id == ctx.Event.ID {
			return true
		}
	}
	return false
}

// wasSortedAfterLast reports whether, under the current sort, the
// document's previous state sorts strictly after the last element of the
// previous result set. Undefined when there was no previous state (an
// INSERT) or no previous results: the documented default is false.
func wasSortedAfterLast(ctx Context) bool {
	if ctx.Event.Previous == nil || len(ctx.PreviousResults) == 0 {
		return false
	}
	lastID := ctx.PreviousResults[len(ctx.PreviousResults)-1]
	last, ok := ctx.KeyDocumentMap[lastID]
	if !ok {
		return false
	}
	return compareDocs(ctx.Event.Previous, last, ctx.Params.Sort) > 0
}

// wasSortedBeforeFirst is the symmetric predicate for the first element.
func wasSortedBeforeFirst(ctx Context) bool {
	if ctx.Event.Previous == nil || len(ctx.PreviousResults) == 0 {
		return false
	}
	firstID := ctx.PreviousResults[0]
	first, ok := ctx.KeyDocumentMap[firstID]
	if !ok {
		return false
	}
	return compareDocs(ctx.Event.Previous, first, ctx.Params.Sort) < 0
}

// sortParamsChanged is true iff any sort field's value differs between
// Doc and Previous — the rigorous definition spec.md §9's Open Question
// asks for. A field present on one side and absent on the other counts as
// a change; two absent-on-both-sides fields do not.
func sortParamsChanged(ctx Context) bool {
	for _, sf := range ctx.Params.Sort {
		dv, dok := docField(ctx.Event.Doc, sf.Field)
		pv, pok := docField(ctx.Event.Previous, sf.Field)
		if dok != pok {
			return true
		}
		if dok && pok && !valuesEqual(dv, pv) {
			return true
		}
	}
	return false
}

// matchedSelectorBefore reports whether the document's previous state
// satisfied the query's selector.
func matchedSelectorBefore(ctx Context) bool {
	return ctx.Params.Selector.Matches(ctx.Event.Previous)
}

// matchedSelectorAfter reports whether the document's current state
// satisfies the query's selector.
func matchedSelectorAfter(ctx Context) bool {
	return ctx.Params.Selector.Matches(ctx.Event.Doc)
}

// limitReached reports whether the previous result set had already
// reached the query's limit. A limit of 0 means "no limit", so it is
// never reached.
func limitReached(ctx Context) bool {
	return ctx.Params.Limit > 0 && len(ctx.PreviousResults) >= ctx.Params.Limit
}

func operationIsInsert(ctx Context) bool { return ctx.Event.Operation == OpInsert }

func operationIsDelete(ctx Context) bool { return ctx.Event.Operation == OpDelete }
