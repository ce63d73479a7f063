package column

import "github.com/brimdata/native"

// Bool is a column of booleans, stored as UInt8 0 or 1.
type Bool struct {
	base
}

var _ Column = (*Bool)(nil)

func NewBool(name string) *Bool {
	return &Bool{base: newBase(name, native.TypeBool)}
}

func (b *Bool) Validate(value any) error {
	if _, ok := value.(bool); !ok {
		return &ValueTypeError{Type: b.typ.Name(), Value: value}
	}
	return nil
}

func (b *Bool) Write(value any) error {
	v, ok := value.(bool)
	if !ok {
		return &ValueTypeError{Type: b.typ.Name(), Value: value}
	}
	return b.append(v)
}

func (b *Bool) writeZero() error {
	return b.append(false)
}

func (b *Bool) append(v bool) error {
	if err := b.buf.WriteBool(v); err != nil {
		return err
	}
	b.rows++
	return nil
}
