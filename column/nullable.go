package column

import (
	"reflect"

	"github.com/brimdata/native"
	"github.com/brimdata/native/wire"
)

// Nullable writes a UInt8 null map (1 for null) into its own buffer and the
// values into a nested column.  A null row stores the zero value of the
// nested type so that the nested column stays aligned with the null map.
type Nullable struct {
	base
	values Column
	zero   zeroWriter
}

var _ Column = (*Nullable)(nil)

func NewNullable(name string, typ *native.TypeNullable) (*Nullable, error) {
	values, err := newColumn("", typ.Type)
	if err != nil {
		return nil, err
	}
	zero, ok := values.(zeroWriter)
	if !ok {
		return nil, &native.TypeSyntaxError{Input: typ.Name(), Reason: "nested type " + typ.Type.Name() + " cannot be inside Nullable"}
	}
	return &Nullable{
		base:   newBase(name, typ),
		values: values,
		zero:   zero,
	}, nil
}

// Values returns the nested column holding the non-null values.
func (n *Nullable) Values() Column {
	return n.values
}

func (n *Nullable) Validate(value any) error {
	if value, ok := deref(value); ok {
		return n.values.Validate(value)
	}
	return nil
}

func (n *Nullable) Write(value any) error {
	var null uint8
	if value, ok := deref(value); ok {
		if err := n.values.Write(value); err != nil {
			return err
		}
	} else {
		if err := n.zero.writeZero(); err != nil {
			return err
		}
		null = 1
	}
	if err := n.buf.WriteUint8(null); err != nil {
		return err
	}
	n.rows++
	return nil
}

func (n *Nullable) Flush(s *wire.Serializer, exp *Exports, now bool) error {
	if err := n.flushHeader(s, exp); err != nil {
		return err
	}
	if !now {
		// The values cannot be sent ahead of the null map.
		return nil
	}
	if err := n.emit(s); err != nil {
		return err
	}
	return n.values.Flush(s, exp, true)
}

func (n *Nullable) Clear() {
	n.base.Clear()
	n.values.Clear()
}

func (n *Nullable) SetBuffer(buf *wire.Buffer) {
	n.base.SetBuffer(buf)
	n.values.SetBuffer(wire.NewBuffer())
}

// deref returns the value held by value and true, or false if value is nil
// or a nil pointer.  Non-nil pointers are dereferenced.
func deref(value any) (any, bool) {
	if value == nil {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Pointer {
		return value, true
	}
	if rv.IsNil() {
		return nil, false
	}
	return rv.Elem().Interface(), true
}
