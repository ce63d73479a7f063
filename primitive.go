package native

import "strconv"

const (
	IDInt8 = iota
	IDInt16
	IDInt32
	IDInt64
	IDUInt8
	IDUInt16
	IDUInt32
	IDUInt64
	IDFloat32
	IDFloat64
	IDString
	IDBool
	IDDate
	IDDateTime
	IDFixedString
)

// TypePrimitive is a scalar type.  Width is the number of bytes each value
// occupies on the wire, or zero for variable-length String.
type TypePrimitive struct {
	id    int
	name  string
	width int
}

func (t *TypePrimitive) ID() int      { return t.id }
func (t *TypePrimitive) Name() string { return t.name }
func (t *TypePrimitive) Kind() Kind   { return PrimitiveKind }
func (t *TypePrimitive) Width() int   { return t.width }

var (
	TypeInt8     = &TypePrimitive{IDInt8, "Int8", 1}
	TypeInt16    = &TypePrimitive{IDInt16, "Int16", 2}
	TypeInt32    = &TypePrimitive{IDInt32, "Int32", 4}
	TypeInt64    = &TypePrimitive{IDInt64, "Int64", 8}
	TypeUInt8    = &TypePrimitive{IDUInt8, "UInt8", 1}
	TypeUInt16   = &TypePrimitive{IDUInt16, "UInt16", 2}
	TypeUInt32   = &TypePrimitive{IDUInt32, "UInt32", 4}
	TypeUInt64   = &TypePrimitive{IDUInt64, "UInt64", 8}
	TypeFloat32  = &TypePrimitive{IDFloat32, "Float32", 4}
	TypeFloat64  = &TypePrimitive{IDFloat64, "Float64", 8}
	TypeString   = &TypePrimitive{IDString, "String", 0}
	TypeBool     = &TypePrimitive{IDBool, "Bool", 1}
	TypeDate     = &TypePrimitive{IDDate, "Date", 2}
	TypeDateTime = &TypePrimitive{IDDateTime, "DateTime", 4}
)

var primitives = map[string]*TypePrimitive{}

func init() {
	for _, typ := range []*TypePrimitive{
		TypeInt8, TypeInt16, TypeInt32, TypeInt64,
		TypeUInt8, TypeUInt16, TypeUInt32, TypeUInt64,
		TypeFloat32, TypeFloat64,
		TypeString, TypeBool, TypeDate, TypeDateTime,
	} {
		primitives[typ.name] = typ
	}
}

// LookupPrimitive returns the unparameterized primitive type with the given
// name or nil if there is no such type.
func LookupPrimitive(name string) *TypePrimitive {
	return primitives[name]
}

func IsSigned(id int) bool {
	return id >= IDInt8 && id <= IDInt64
}

func IsUnsigned(id int) bool {
	return id >= IDUInt8 && id <= IDUInt64
}

func IsFloat(id int) bool {
	return id == IDFloat32 || id == IDFloat64
}

// TypeFixedString is a string padded with zero bytes to exactly Size bytes.
type TypeFixedString struct {
	Size int
}

func (t *TypeFixedString) ID() int      { return IDFixedString }
func (t *TypeFixedString) Name() string { return "FixedString(" + strconv.Itoa(t.Size) + ")" }
func (t *TypeFixedString) Kind() Kind   { return PrimitiveKind }
func (t *TypeFixedString) Width() int   { return t.Size }
