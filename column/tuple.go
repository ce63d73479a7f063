package column

import (
	"fmt"
	"reflect"

	"github.com/brimdata/native"
	"github.com/brimdata/native/wire"
)

// Struct is a structured value written to a Tuple column.  Its components
// correspond by position to the tuple's nested types.
type Struct []any

// Tuple owns one anonymous nested column per element type.  A row is
// written to every nested column or to none of them.
type Tuple struct {
	base
	values []Column
}

var _ Column = (*Tuple)(nil)

func NewTuple(name string, typ *native.TypeTuple) (*Tuple, error) {
	values := make([]Column, 0, len(typ.Types))
	for _, t := range typ.Types {
		col, err := newColumn("", t)
		if err != nil {
			return nil, err
		}
		values = append(values, col)
	}
	return &Tuple{
		base:   newBase(name, typ),
		values: values,
	}, nil
}

// Values returns the nested columns in positional order.
func (t *Tuple) Values() []Column {
	return t.values
}

func (t *Tuple) Validate(value any) error {
	_, err := t.components(value)
	return err
}

// components returns the components of value once every one of them has
// been validated against its nested column.
func (t *Tuple) components(value any) ([]any, error) {
	comps, ok := toComponents(value)
	if !ok {
		return nil, &ValueTypeError{Type: t.typ.Name(), Value: value}
	}
	if len(comps) != len(t.values) {
		return nil, &ArityMismatchError{Type: t.typ.Name(), Want: len(t.values), Got: len(comps)}
	}
	for k, col := range t.values {
		if err := col.Validate(comps[k]); err != nil {
			return nil, fmt.Errorf("%s element %d: %w", t.typ.Name(), k+1, err)
		}
	}
	return comps, nil
}

func (t *Tuple) Write(value any) error {
	comps, err := t.components(value)
	if err != nil {
		return err
	}
	for k, col := range t.values {
		if err := col.Write(comps[k]); err != nil {
			return err
		}
	}
	t.rows++
	return nil
}

// Flush drains every nested column regardless of now since each holds its
// data in a separate buffer that must reach the stream before the tuple's.
func (t *Tuple) Flush(s *wire.Serializer, exp *Exports, now bool) error {
	if err := t.flushHeader(s, exp); err != nil {
		return err
	}
	for _, col := range t.values {
		if err := col.Flush(s, exp, true); err != nil {
			return err
		}
	}
	if now {
		return t.emit(s)
	}
	return nil
}

// Clear is a no-op.  The tuple holds no row data of its own and the nested
// buffers are drained by Flush or replaced by SetBuffer.
func (t *Tuple) Clear() {}

func (t *Tuple) SetBuffer(buf *wire.Buffer) {
	t.base.SetBuffer(buf)
	for _, col := range t.values {
		col.SetBuffer(wire.NewBuffer())
	}
}

func toComponents(value any) ([]any, bool) {
	switch v := value.(type) {
	case Struct:
		return v, true
	case []any:
		return v, true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	typ := rv.Type()
	comps := make([]any, 0, rv.NumField())
	for k := range rv.NumField() {
		if !typ.Field(k).IsExported() {
			return nil, false
		}
		comps = append(comps, rv.Field(k).Interface())
	}
	return comps, true
}
