// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package classify

import "fmt"

// ErrMalformedQuery is returned by CompileQuery when the selector/sort/
// limit/skip specification cannot possibly produce meaningful classifier
// output: a query shim that silently accepted a negative limit would make
// limitReached (see Predicates) meaningless for every document.
var ErrMalformedQuery = fmt.Errorf("classify: malformed query")

// Doc is a document: a flat map from field name to value. Values are
// compared with Go's built-in ordering for the types Mongo-style sort
// specs typically carry (numbers, strings, bools); see compareValues.
type Doc map[string]interface{}

// SortField is one field of a compound sort specification, in the order
// it should be applied (earlier fields take priority, as in MongoDB).
type SortField struct {
	Field     string
	Ascending bool
}

// Selector is a minimal MongoDB-style equality/comparison selector: each
// key names a document field, and the value is either a literal to compare
// for equality, or an Op to apply a comparison operator. This is
// deliberately not a general query language — spec.md explicitly puts the
// "MongoDB-style query shim" out of scope as a component in its own right;
// this is just enough matching to drive the classifier's selector
// predicates (matchedSelectorBefore/After).
type Selector map[string]interface{}

// Op names a comparison operator for a Selector value, e.g.
// Selector{"age": Op{GT, 18}}.
type Op struct {
	Kind  OpKind
	Value interface{}
}

// OpKind enumerates the comparison operators a Selector value may carry.
type OpKind int

const (
	OpEq OpKind = iota
	OpGT
	OpLT
	OpGTE
	OpLTE
)

// Matches reports whether doc satisfies every field constraint in the
// selector. A nil doc never matches a non-empty selector.
func (s Selector) Matches(doc Doc) bool {
	if doc == nil {
		return len(s) == 0
	}
	for field, want := range s {
		got, ok := doc[field]
		if op, isOp := want.(Op); isOp {
			if !ok {
				return false
			}
			c, comparable := compareValues(got, op.Value)
			if !comparable {
				return false
			}
			switch op.Kind {
			case OpEq:
				if c != 0 {
					return false
				}
			case OpGT:
				if c <= 0 {
					return false
				}
			case OpLT:
				if c >= 0 {
					return false
				}
			case OpGTE:
				if c < 0 {
					return false
				}
			case OpLTE:
				if c > 0 {
					return false
				}
			}
			continue
		}
		if !ok || !valuesEqual(got, want) {
			return false
		}
	}
	return true
}

// QueryParams is the compiled form of a MongoDB-style selector/sort/
// limit/skip specification (spec.md §4.11).
type QueryParams struct {
	Selector Selector
	Sort     []SortField
	Limit    int // 0 means "no limit"
	Skip     int
}

// CompileQuery validates and returns params unchanged. Limit and Skip must
// be non-negative, and every sort field must name a non-empty field.
func CompileQuery(params QueryParams) (QueryParams, error) {
	if params.Limit < 0 {
		return QueryParams{}, fmt.Errorf("%w: limit must be >= 0, got %d", ErrMalformedQuery, params.Limit)
	}
	if params.Skip < 0 {
		return QueryParams{}, fmt.Errorf("%w: skip must be >= 0, got %d", ErrMalformedQuery, params.Skip)
	}
	for _, sf := range params.Sort {
		if sf.Field == "" {
			return QueryParams{}, fmt.Errorf("%w: sort field name must not be empty", ErrMalformedQuery)
		}
	}
	return params, nil
}

// compareValues compares two field values the way a Mongo-style sort
// would: numeric types compare numerically, strings lexicographically,
// bools with false < true. It reports ok=false for a pair it cannot order
// (e.g. mismatched, non-comparable types), in which case the caller should
// treat the comparison as indeterminate rather than guess.
func compareValues(a, b interface{}) (cmp int, ok bool) {
	af, aIsNum := toFloat(a)
	bf, bIsNum := toFloat(b)
	if aIsNum && bIsNum {
		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		default:
			return 0, true
		}
	}
	as, aIsStr := a.(string)
	bs, bIsStr := b.(string)
	if aIsStr && bIsStr {
		switch {
		case as < bs:
			return -1, true
		case as > bs:
			return 1, true
		default:
			return 0, true
		}
	}
	ab, aIsBool := a.(bool)
	bb, bIsBool := b.(bool)
	if aIsBool && bIsBool {
		switch {
		case ab == bb:
			return 0, true
		case !ab && bb:
			return -1, true
		default:
			return 1, true
		}
	}
	return 0, false
}

func valuesEqual(a, b interface{}) bool {
	if c, ok := compareValues(a, b); ok {
		return c == 0
	}
	return a == b
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// compareDocs applies a compound sort specification to two documents,
// field by field, the way MongoDB's sort does: the first field that
// differs decides the order. It returns 0 if every field is equal or
// incomparable.
func compareDocs(a, b Doc, sort []SortField) int {
	for _, sf := range sort {
		av, aok := a[sf.Field]
		bv, bok := b[sf.Field]
		if !aok || !bok {
			continue
		}
		c, comparable := compareValues(av, bv)
		if !comparable || c == 0 {
			continue
		}
		if !sf.Ascending {
			c = -c
		}
		return c
	}
	return 0
}
