package column

import (
	"math"
	"time"

	"github.com/brimdata/native"
)

const secondsPerDay = 24 * 60 * 60

// Date is a column of calendar days since 1970-01-01, stored as UInt16.
type Date struct {
	base
}

var _ Column = (*Date)(nil)

func NewDate(name string) *Date {
	return &Date{base: newBase(name, native.TypeDate)}
}

func (d *Date) convert(value any) (uint16, error) {
	t, ok := value.(time.Time)
	if !ok {
		return 0, &ValueTypeError{Type: d.typ.Name(), Value: value}
	}
	// Floor division so times before midnight of day N map to day N.
	sec := t.Unix()
	days := sec / secondsPerDay
	if sec%secondsPerDay < 0 {
		days--
	}
	if days < 0 || days > math.MaxUint16 {
		return 0, &ValueRangeError{Type: d.typ.Name(), Value: value}
	}
	return uint16(days), nil
}

func (d *Date) Validate(value any) error {
	_, err := d.convert(value)
	return err
}

func (d *Date) Write(value any) error {
	days, err := d.convert(value)
	if err != nil {
		return err
	}
	return d.append(days)
}

func (d *Date) writeZero() error {
	return d.append(0)
}

func (d *Date) append(days uint16) error {
	if err := d.buf.WriteUint16(days); err != nil {
		return err
	}
	d.rows++
	return nil
}

// DateTime is a column of seconds since the Unix epoch, stored as UInt32.
type DateTime struct {
	base
}

var _ Column = (*DateTime)(nil)

func NewDateTime(name string) *DateTime {
	return &DateTime{base: newBase(name, native.TypeDateTime)}
}

func (d *DateTime) convert(value any) (uint32, error) {
	t, ok := value.(time.Time)
	if !ok {
		return 0, &ValueTypeError{Type: d.typ.Name(), Value: value}
	}
	sec := t.Unix()
	if sec < 0 || sec > math.MaxUint32 {
		return 0, &ValueRangeError{Type: d.typ.Name(), Value: value}
	}
	return uint32(sec), nil
}

func (d *DateTime) Validate(value any) error {
	_, err := d.convert(value)
	return err
}

func (d *DateTime) Write(value any) error {
	sec, err := d.convert(value)
	if err != nil {
		return err
	}
	return d.append(sec)
}

func (d *DateTime) writeZero() error {
	return d.append(0)
}

func (d *DateTime) append(sec uint32) error {
	if err := d.buf.WriteUint32(sec); err != nil {
		return err
	}
	d.rows++
	return nil
}
