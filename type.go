// Package native implements the type system of the native protocol.  A Type
// identifies a column's wire representation by its canonical name, e.g.,
// "UInt64", "Array(Nullable(String))" or "Tuple(Int32, DateTime)".
package native

import "strings"

type Kind int

const (
	PrimitiveKind Kind = iota
	ArrayKind
	NullableKind
	TupleKind
)

func (k Kind) String() string {
	switch k {
	case PrimitiveKind:
		return "primitive"
	case ArrayKind:
		return "array"
	case NullableKind:
		return "nullable"
	case TupleKind:
		return "tuple"
	}
	return "unknown"
}

// Type is a wire type.  Name returns the canonical type name, which parses
// back to an equivalent Type.
type Type interface {
	Name() string
	Kind() Kind
}

type TypeArray struct {
	Type Type
	name string
}

func NewTypeArray(inner Type) *TypeArray {
	return &TypeArray{
		Type: inner,
		name: "Array(" + inner.Name() + ")",
	}
}

func (t *TypeArray) Name() string { return t.name }
func (t *TypeArray) Kind() Kind   { return ArrayKind }

// TypeNullable wraps a primitive type with a null map.  The server does not
// allow composite types inside Nullable.
type TypeNullable struct {
	Type Type
	name string
}

func NewTypeNullable(inner Type) *TypeNullable {
	return &TypeNullable{
		Type: inner,
		name: "Nullable(" + inner.Name() + ")",
	}
}

func (t *TypeNullable) Name() string { return t.name }
func (t *TypeNullable) Kind() Kind   { return NullableKind }

type TypeTuple struct {
	Types []Type
	name  string
}

func NewTypeTuple(types []Type) *TypeTuple {
	names := make([]string, 0, len(types))
	for _, typ := range types {
		names = append(names, typ.Name())
	}
	return &TypeTuple{
		Types: types,
		name:  "Tuple(" + strings.Join(names, ", ") + ")",
	}
}

func (t *TypeTuple) Name() string { return t.name }
func (t *TypeTuple) Kind() Kind   { return TupleKind }

// InnerTypes returns the nested types of typ in positional order, or nil
// for a primitive type.
func InnerTypes(typ Type) []Type {
	switch typ := typ.(type) {
	case *TypeArray:
		return []Type{typ.Type}
	case *TypeNullable:
		return []Type{typ.Type}
	case *TypeTuple:
		return typ.Types
	}
	return nil
}
