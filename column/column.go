// Package column implements the per-column write buffers of a block.  A
// Column accumulates one value per row in its own wire.Buffer and emits its
// header and data when flushed.  Composite columns (Array, Nullable, Tuple)
// own one nested Column per nested type, each with an independent buffer.
package column

import (
	"fmt"

	"github.com/brimdata/native"
	"github.com/brimdata/native/wire"
)

type Column interface {
	// Name is empty for the anonymous columns nested inside a composite.
	Name() string
	Type() native.Type
	// Rows returns the number of rows written since the buffer was last
	// drained or replaced.
	Rows() int
	// Validate checks that value can be written without modifying the column.
	Validate(value any) error
	// Write appends one row.  Nothing is appended if an error is returned.
	Write(value any) error
	// Flush writes the (name, type) header if it has not yet been exported
	// on exp's connection and, if now is true, the buffered data, after
	// which the buffer is drained.
	Flush(s *wire.Serializer, exp *Exports, now bool) error
	// Clear discards buffered rows so the buffer can be reused.
	Clear()
	// SetBuffer installs a new write buffer.
	SetBuffer(*wire.Buffer)
}

// New creates a column for typ and writes values into it.  Nested columns
// of a composite are always created empty and anonymous.
func New(name string, typ native.Type, values []any) (Column, error) {
	col, err := newColumn(name, typ)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		if err := col.Write(v); err != nil {
			return nil, err
		}
	}
	return col, nil
}

func newColumn(name string, typ native.Type) (Column, error) {
	switch typ := typ.(type) {
	case *native.TypePrimitive:
		return newPrimitive(name, typ)
	case *native.TypeFixedString:
		return NewFixedString(name, typ), nil
	case *native.TypeArray:
		return NewArray(name, typ)
	case *native.TypeNullable:
		return NewNullable(name, typ)
	case *native.TypeTuple:
		return NewTuple(name, typ)
	}
	return nil, &native.UnknownTypeError{Name: typ.Name()}
}

func newPrimitive(name string, typ *native.TypePrimitive) (Column, error) {
	switch typ.ID() {
	case native.IDInt8:
		return NewNumeric[int8](name, typ), nil
	case native.IDInt16:
		return NewNumeric[int16](name, typ), nil
	case native.IDInt32:
		return NewNumeric[int32](name, typ), nil
	case native.IDInt64:
		return NewNumeric[int64](name, typ), nil
	case native.IDUInt8:
		return NewNumeric[uint8](name, typ), nil
	case native.IDUInt16:
		return NewNumeric[uint16](name, typ), nil
	case native.IDUInt32:
		return NewNumeric[uint32](name, typ), nil
	case native.IDUInt64:
		return NewNumeric[uint64](name, typ), nil
	case native.IDFloat32:
		return NewNumeric[float32](name, typ), nil
	case native.IDFloat64:
		return NewNumeric[float64](name, typ), nil
	case native.IDString:
		return NewString(name), nil
	case native.IDBool:
		return NewBool(name), nil
	case native.IDDate:
		return NewDate(name), nil
	case native.IDDateTime:
		return NewDateTime(name), nil
	}
	return nil, &native.UnknownTypeError{Name: typ.Name()}
}

// base holds the state shared by every column variant.
type base struct {
	name string
	typ  native.Type
	buf  *wire.Buffer
	rows int
}

func newBase(name string, typ native.Type) base {
	return base{
		name: name,
		typ:  typ,
		buf:  wire.NewBuffer(),
	}
}

func (b *base) Name() string      { return b.name }
func (b *base) Type() native.Type { return b.typ }
func (b *base) Rows() int         { return b.rows }

func (b *base) Clear() {
	b.buf.Reset()
	b.rows = 0
}

func (b *base) SetBuffer(buf *wire.Buffer) {
	b.buf = buf
	b.rows = 0
}

func (b *base) Flush(s *wire.Serializer, exp *Exports, now bool) error {
	if err := b.flushHeader(s, exp); err != nil {
		return err
	}
	if now {
		return b.emit(s)
	}
	return nil
}

func (b *base) flushHeader(s *wire.Serializer, exp *Exports) error {
	if b.name == "" || exp.Exported(b.name, b.typ.Name()) {
		return nil
	}
	if err := s.WriteString(b.name); err != nil {
		return err
	}
	if err := s.WriteString(b.typ.Name()); err != nil {
		return err
	}
	exp.mark(b.name, b.typ.Name())
	return nil
}

func (b *base) emit(s *wire.Serializer) error {
	if err := b.buf.Emit(s); err != nil {
		return err
	}
	b.rows = 0
	return nil
}

// zeroWriter is implemented by the primitive columns, which can write the
// placeholder value stored under a null entry of a Nullable column.
type zeroWriter interface {
	writeZero() error
}

type ArityMismatchError struct {
	Type string
	Want int
	Got  int
}

func (a *ArityMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %d values but got %d", a.Type, a.Want, a.Got)
}

type ValueTypeError struct {
	Type  string
	Value any
}

func (v *ValueTypeError) Error() string {
	return fmt.Sprintf("cannot write Go value of type %T to column of type %s", v.Value, v.Type)
}

type ValueRangeError struct {
	Type  string
	Value any
}

func (v *ValueRangeError) Error() string {
	return fmt.Sprintf("value %v is out of range for column of type %s", v.Value, v.Type)
}
