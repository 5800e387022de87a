// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package classify

// Operation is the kind of document mutation a ChangeEvent carries.
type Operation int

const (
	OpInsert Operation = iota
	OpUpdate
	OpDelete
)

func (o Operation) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// ChangeEvent is a single document mutation (spec.md §4.11). Doc is the
// document's state after the mutation (nil for a DELETE); Previous is its
// state before (nil for an INSERT).
type ChangeEvent struct {
	Operation Operation
	Doc       Doc
	Previous  Doc
	ID        string
}

// KeyDocumentMap maps a document id to its current document, used to look
// up the documents that were in the previous result set by id.
type KeyDocumentMap map[string]Doc

// Context bundles everything a predicate needs: the mutation, the compiled
// query it is being classified against, the ids in the query's result set
// before the mutation, and a lookup from id to current document.
type Context struct {
	Event           ChangeEvent
	Params          QueryParams
	PreviousResults []string
	KeyDocumentMap  KeyDocumentMap
}

// Classify evaluates every predicate in Predicates, in order, and packs
// the results into a Vector whose Key is the obdd.TruthTable key this
// mutation/query pair binds to.
func Classify(ctx Context) *Vector {
	v := NewVector(len(Predicates))
	for i, p := range Predicates {
		v.Set(i, p.Fn(ctx))
	}
	return v
}

func docField(doc Doc, field string) (interface{}, bool) {
	if doc == nil {
		return nil, false
	}
	val, ok := doc[field]
	return val, ok
}
