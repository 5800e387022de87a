// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package classify

import "testing"

func TestClassify_OrderedVectorMatchesPredicates(t *testing.T) {
	params := QueryParams{
		Sort:  []SortField{{Field: "score", Ascending: true}},
		Limit: 2,
	}
	kdm := KeyDocumentMap{
		"first": {"score": float64(1)},
		"last":  {"score": float64(10)},
	}
	ctx := Context{
		Event: ChangeEvent{
			Operation: OpUpdate,
			ID:        "mid",
			Doc:       Doc{"score": float64(20)},
			Previous:  Doc{"score": float64(5)},
		},
		Params:          params,
		PreviousResults: []string{"first", "last"},
		KeyDocumentMap:  kdm,
	}
	v := Classify(ctx)
	if v.Len() != len(Predicates) {
		t.Fatalf("vector length = %d, want %d", v.Len(), len(Predicates))
	}
	// wasInResult: "mid" is not in PreviousResults
	if v.Get(0) {
		t.Fatalf("wasInResult = true, want false")
	}
	// wasSortedAfterLast: previous score 5 is not after last (10)
	if v.Get(1) {
		t.Fatalf("wasSortedAfterLast = true, want false")
	}
	// wasSortedBeforeFirst: previous score 5 is after first (1), so false
	if v.Get(2) {
		t.Fatalf("wasSortedBeforeFirst = true, want false")
	}
	// sortParamsChanged: score differs between doc (20) and previous (5)
	if !v.Get(3) {
		t.Fatalf("sortParamsChanged = false, want true")
	}
	// operationIsInsert / operationIsDelete both false for an update
	if v.Get(7) || v.Get(8) {
		t.Fatalf("operation bits set for an UPDATE event")
	}
}

func TestClassify_InsertWithNoPreviousHasRigorousDefaults(t *testing.T) {
	ctx := Context{
		Event: ChangeEvent{Operation: OpInsert, ID: "new", Doc: Doc{"score": float64(1)}},
		Params: QueryParams{
			Sort: []SortField{{Field: "score", Ascending: true}},
		},
	}
	v := Classify(ctx)
	if v.Get(1) || v.Get(2) {
		t.Fatalf("wasSortedAfterLast/BeforeFirst should default to false with no previous state")
	}
	if !v.Get(3) {
		t.Fatalf("sortParamsChanged should be true when the field only exists on Doc, not Previous")
	}
	if !v.Get(7) {
		t.Fatalf("operationIsInsert should be true")
	}
}

func TestClassify_DeleteOperationBit(t *testing.T) {
	ctx := Context{
		Event: ChangeEvent{Operation: OpDelete, ID: "gone", Previous: Doc{"score": float64(1)}},
	}
	v := Classify(ctx)
	if !v.Get(8) {
		t.Fatalf("operationIsDelete should be true")
	}
	if v.Get(7) {
		t.Fatalf("operationIsInsert should be false")
	}
}

func TestClassify_LimitReached(t *testing.T) {
	ctx := Context{
		Params:          QueryParams{Limit: 2},
		PreviousResults: []string{"a", "b"},
	}
	v := Classify(ctx)
	if !v.Get(6) {
		t.Fatalf("limitReached should be true when PreviousResults already has Limit entries")
	}

	ctx.Params.Limit = 0
	v = Classify(ctx)
	if v.Get(6) {
		t.Fatalf("limitReached should be false when Limit is 0 (no limit)")
	}
}

func TestVector_Key(t *testing.T) {
	v := NewVector(4)
	v.Set(0, true)
	v.Set(2, true)
	if got, want := v.Key(), "1010"; got != want {
		t.Fatalf("Key() = %q, want %q", got, want)
	}
}
