// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package obdd

import (
	"errors"
	"testing"
)

func TestResolve_MissingResolver(t *testing.T) {
	table := TruthTable{"0": "a", "1": "b"}
	d, err := CreateBddFromTruthTable(table)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if _, err := d.Resolve(ResolverSet{}, "0"); !errors.Is(err, ErrResolverFailure) {
		t.Fatalf("err = %v, want ErrResolverFailure", err)
	}
}

func TestResolve_ResolverError(t *testing.T) {
	table := TruthTable{"0": "a", "1": "b"}
	d, err := CreateBddFromTruthTable(table)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	boom := errors.New("boom")
	resolvers := ResolverSet{0: func(string) (bool, error) { return false, boom }}
	_, err = d.Resolve(resolvers, "anything")
	var rerr *ResolverError
	if !errors.As(err, &rerr) {
		t.Fatalf("err = %v, want *ResolverError", err)
	}
	if rerr.VarIndex != 0 {
		t.Fatalf("rerr.VarIndex = %d, want 0", rerr.VarIndex)
	}
	if !errors.Is(err, ErrResolverFailure) {
		t.Fatalf("errors.Is(err, ErrResolverFailure) = false")
	}
}
