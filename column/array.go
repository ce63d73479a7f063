package column

import (
	"fmt"
	"reflect"

	"github.com/brimdata/native"
	"github.com/brimdata/native/wire"
)

// Array writes the cumulative UInt64 end offset of each row into its own
// buffer and the elements of every row into a nested column.  On the wire
// the offsets precede the elements.
type Array struct {
	base
	values Column
	offset uint64
}

var _ Column = (*Array)(nil)

func NewArray(name string, typ *native.TypeArray) (*Array, error) {
	values, err := newColumn("", typ.Type)
	if err != nil {
		return nil, err
	}
	return &Array{
		base:   newBase(name, typ),
		values: values,
	}, nil
}

// Values returns the nested column holding the array elements.
func (a *Array) Values() Column {
	return a.values
}

func (a *Array) Validate(value any) error {
	_, err := a.elements(value)
	return err
}

func (a *Array) elements(value any) ([]any, error) {
	elems, ok := toSlice(value)
	if !ok {
		return nil, &ValueTypeError{Type: a.typ.Name(), Value: value}
	}
	for k, elem := range elems {
		if err := a.values.Validate(elem); err != nil {
			return nil, fmt.Errorf("%s element %d: %w", a.typ.Name(), k, err)
		}
	}
	return elems, nil
}

func (a *Array) Write(value any) error {
	elems, err := a.elements(value)
	if err != nil {
		return err
	}
	for _, elem := range elems {
		if err := a.values.Write(elem); err != nil {
			return err
		}
	}
	a.offset += uint64(len(elems))
	if err := a.buf.WriteUint64(a.offset); err != nil {
		return err
	}
	a.rows++
	return nil
}

func (a *Array) Flush(s *wire.Serializer, exp *Exports, now bool) error {
	if err := a.flushHeader(s, exp); err != nil {
		return err
	}
	if !now {
		// The elements cannot be sent ahead of their offsets.
		return nil
	}
	if err := a.emit(s); err != nil {
		return err
	}
	a.offset = 0
	return a.values.Flush(s, exp, true)
}

func (a *Array) Clear() {
	a.base.Clear()
	a.offset = 0
	a.values.SetBuffer(wire.NewBuffer())
}

func (a *Array) SetBuffer(buf *wire.Buffer) {
	a.base.SetBuffer(buf)
	a.offset = 0
	a.values.SetBuffer(wire.NewBuffer())
}

func toSlice(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case Struct:
		return v, true
	case nil, string:
		return nil, false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for k := range out {
		out[k] = rv.Index(k).Interface()
	}
	return out, true
}
