package column

import (
	"github.com/brimdata/native"
)

// String is a column of length-prefixed byte strings.
type String struct {
	base
}

var _ Column = (*String)(nil)

func NewString(name string) *String {
	return &String{base: newBase(name, native.TypeString)}
}

func (s *String) Validate(value any) error {
	_, err := toBytes(s.typ, value)
	return err
}

func (s *String) Write(value any) error {
	b, err := toBytes(s.typ, value)
	if err != nil {
		return err
	}
	return s.append(b)
}

func (s *String) writeZero() error {
	return s.append(nil)
}

func (s *String) append(b []byte) error {
	if err := s.buf.WriteVarUint(uint64(len(b))); err != nil {
		return err
	}
	if err := s.buf.WriteBytes(b); err != nil {
		return err
	}
	s.rows++
	return nil
}

// FixedString is a column of strings padded with zero bytes to the width of
// the type.  Longer values are rejected.
type FixedString struct {
	base
	size int
}

var _ Column = (*FixedString)(nil)

func NewFixedString(name string, typ *native.TypeFixedString) *FixedString {
	return &FixedString{
		base: newBase(name, typ),
		size: typ.Size,
	}
}

func (f *FixedString) Validate(value any) error {
	_, err := f.convert(value)
	return err
}

func (f *FixedString) convert(value any) ([]byte, error) {
	b, err := toBytes(f.typ, value)
	if err != nil {
		return nil, err
	}
	if len(b) > f.size {
		return nil, &ValueRangeError{Type: f.typ.Name(), Value: value}
	}
	return b, nil
}

func (f *FixedString) Write(value any) error {
	b, err := f.convert(value)
	if err != nil {
		return err
	}
	return f.append(b)
}

func (f *FixedString) writeZero() error {
	return f.append(nil)
}

func (f *FixedString) append(b []byte) error {
	padded := make([]byte, f.size)
	copy(padded, b)
	if err := f.buf.WriteBytes(padded); err != nil {
		return err
	}
	f.rows++
	return nil
}

func toBytes(typ native.Type, value any) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	}
	return nil, &ValueTypeError{Type: typ.Name(), Value: value}
}
