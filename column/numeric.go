package column

import (
	"math"

	"github.com/brimdata/native"
	"github.com/brimdata/native/wire"
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Numeric is a column of fixed-width integers or floats, written in
// little-endian order with the width of T.
type Numeric[T Number] struct {
	base
}

var _ Column = (*Numeric[int32])(nil)

func NewNumeric[T Number](name string, typ native.Type) *Numeric[T] {
	return &Numeric[T]{base: newBase(name, typ)}
}

func (n *Numeric[T]) Validate(value any) error {
	_, err := convertNumber[T](n.typ, value)
	return err
}

func (n *Numeric[T]) Write(value any) error {
	v, err := convertNumber[T](n.typ, value)
	if err != nil {
		return err
	}
	return n.append(v)
}

func (n *Numeric[T]) writeZero() error {
	return n.append(0)
}

func (n *Numeric[T]) append(v T) error {
	if err := writeNumber(n.buf, v); err != nil {
		return err
	}
	n.rows++
	return nil
}

func writeNumber[T Number](b *wire.Buffer, v T) error {
	switch v := any(v).(type) {
	case int8:
		return b.WriteInt8(v)
	case int16:
		return b.WriteInt16(v)
	case int32:
		return b.WriteInt32(v)
	case int64:
		return b.WriteInt64(v)
	case int:
		return b.WriteInt64(int64(v))
	case uint8:
		return b.WriteUint8(v)
	case uint16:
		return b.WriteUint16(v)
	case uint32:
		return b.WriteUint32(v)
	case uint64:
		return b.WriteUint64(v)
	case uint:
		return b.WriteUint64(uint64(v))
	case uintptr:
		return b.WriteUint64(uint64(v))
	case float32:
		return b.WriteFloat32(v)
	case float64:
		return b.WriteFloat64(v)
	}
	panic("unreachable number type")
}

func isFloat[T Number]() bool {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return true
	}
	return false
}

func isFloat32[T Number]() bool {
	var zero T
	_, ok := any(zero).(float32)
	return ok
}

// convertNumber converts a Go numeric value to T, failing if value is not
// numeric or is not representable as T.  Floats convert to integer columns
// only when they have no fractional part.
func convertNumber[T Number](typ native.Type, value any) (T, error) {
	switch v := value.(type) {
	case int:
		return fromSigned[T](typ, int64(v))
	case int8:
		return fromSigned[T](typ, int64(v))
	case int16:
		return fromSigned[T](typ, int64(v))
	case int32:
		return fromSigned[T](typ, int64(v))
	case int64:
		return fromSigned[T](typ, v)
	case uint:
		return fromUnsigned[T](typ, uint64(v))
	case uint8:
		return fromUnsigned[T](typ, uint64(v))
	case uint16:
		return fromUnsigned[T](typ, uint64(v))
	case uint32:
		return fromUnsigned[T](typ, uint64(v))
	case uint64:
		return fromUnsigned[T](typ, v)
	case float32:
		return fromFloat[T](typ, float64(v))
	case float64:
		return fromFloat[T](typ, v)
	}
	return 0, &ValueTypeError{Type: typ.Name(), Value: value}
}

func fromSigned[T Number](typ native.Type, i int64) (T, error) {
	t := T(i)
	if isFloat[T]() {
		return t, nil
	}
	if int64(t) != i || (t < 0) != (i < 0) {
		return 0, &ValueRangeError{Type: typ.Name(), Value: i}
	}
	return t, nil
}

func fromUnsigned[T Number](typ native.Type, u uint64) (T, error) {
	t := T(u)
	if isFloat[T]() {
		return t, nil
	}
	if uint64(t) != u || t < 0 {
		return 0, &ValueRangeError{Type: typ.Name(), Value: u}
	}
	return t, nil
}

func fromFloat[T Number](typ native.Type, f float64) (T, error) {
	if isFloat[T]() {
		if isFloat32[T]() && math.Abs(f) > math.MaxFloat32 && !math.IsInf(f, 0) {
			return 0, &ValueRangeError{Type: typ.Name(), Value: f}
		}
		return T(f), nil
	}
	if f != math.Trunc(f) {
		return 0, &ValueRangeError{Type: typ.Name(), Value: f}
	}
	switch {
	case f >= -(1<<63) && f < 1<<63:
		return fromSigned[T](typ, int64(f))
	case f >= 1<<63 && f < 1<<64:
		return fromUnsigned[T](typ, uint64(f))
	}
	return 0, &ValueRangeError{Type: typ.Name(), Value: f}
}
