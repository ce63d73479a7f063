// Package arrowblock writes Apache Arrow records into blocks.
package arrowblock

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/brimdata/native"
	"github.com/brimdata/native/block"
	"github.com/brimdata/native/column"
)

// Type returns the native type for an Arrow data type.  Nullable wraps
// primitive types in Nullable.  Composite types cannot be nullable, so a
// null list or struct fails when it is written.
func Type(dt arrow.DataType, nullable bool) (native.Type, error) {
	typ, err := newType(dt)
	if err != nil {
		return nil, err
	}
	if nullable && typ.Kind() == native.PrimitiveKind {
		return native.NewTypeNullable(typ), nil
	}
	return typ, nil
}

func newType(dt arrow.DataType) (native.Type, error) {
	switch dt.ID() {
	case arrow.BOOL:
		return native.TypeBool, nil
	case arrow.UINT8:
		return native.TypeUInt8, nil
	case arrow.INT8:
		return native.TypeInt8, nil
	case arrow.UINT16:
		return native.TypeUInt16, nil
	case arrow.INT16:
		return native.TypeInt16, nil
	case arrow.UINT32:
		return native.TypeUInt32, nil
	case arrow.INT32:
		return native.TypeInt32, nil
	case arrow.UINT64:
		return native.TypeUInt64, nil
	case arrow.INT64:
		return native.TypeInt64, nil
	case arrow.FLOAT32:
		return native.TypeFloat32, nil
	case arrow.FLOAT64:
		return native.TypeFloat64, nil
	case arrow.STRING, arrow.LARGE_STRING, arrow.BINARY, arrow.LARGE_BINARY:
		return native.TypeString, nil
	case arrow.FIXED_SIZE_BINARY:
		return &native.TypeFixedString{Size: dt.(*arrow.FixedSizeBinaryType).ByteWidth}, nil
	case arrow.DATE32:
		return native.TypeDate, nil
	case arrow.TIMESTAMP:
		return native.TypeDateTime, nil
	case arrow.LIST, arrow.LARGE_LIST, arrow.FIXED_SIZE_LIST:
		elem := dt.(arrow.ListLikeType).ElemField()
		typ, err := Type(elem.Type, elem.Nullable)
		if err != nil {
			return nil, err
		}
		return native.NewTypeArray(typ), nil
	case arrow.STRUCT:
		var types []native.Type
		for _, f := range dt.(*arrow.StructType).Fields() {
			typ, err := Type(f.Type, f.Nullable)
			if err != nil {
				return nil, err
			}
			types = append(types, typ)
		}
		return native.NewTypeTuple(types), nil
	}
	return nil, fmt.Errorf("unsupported Arrow type: %s", dt.Name())
}

// Append writes every row of rec to b.  If b has no columns, one is created
// for each field of rec.  Otherwise the fields of rec must match the columns
// of b by name and type.
func Append(b *block.Block, rec arrow.Record) error {
	fields := rec.Schema().Fields()
	types := make([]native.Type, len(fields))
	for k, f := range fields {
		typ, err := Type(f.Type, f.Nullable)
		if err != nil {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}
		types[k] = typ
	}
	if b.Len() == 0 {
		for k, f := range fields {
			col, err := column.New(f.Name, types[k], nil)
			if err != nil {
				return fmt.Errorf("field %q: %w", f.Name, err)
			}
			if err := b.AddColumn(f.Name, col); err != nil {
				return err
			}
		}
	} else if err := match(b, fields, types); err != nil {
		return err
	}
	arrays := rec.Columns()
	row := make([]any, len(arrays))
	for i := range int(rec.NumRows()) {
		for k, a := range arrays {
			v, err := value(a, i)
			if err != nil {
				return fmt.Errorf("field %q: %w", fields[k].Name, err)
			}
			row[k] = v
		}
		if err := b.WriteRow(row...); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return nil
}

func match(b *block.Block, fields []arrow.Field, types []native.Type) error {
	cols := b.Columns()
	if len(cols) != len(fields) {
		return fmt.Errorf("record has %d fields but block has %d columns", len(fields), len(cols))
	}
	for k, col := range cols {
		if col.Name() != fields[k].Name || col.Type().Name() != types[k].Name() {
			return fmt.Errorf("record field %q of type %s does not match block column %q of type %s",
				fields[k].Name, types[k].Name(), col.Name(), col.Type().Name())
		}
	}
	return nil
}

// value returns element i of a as a Go value accepted by the column for
// its type.
func value(a arrow.Array, i int) (any, error) {
	if a.IsNull(i) {
		return nil, nil
	}
	switch a := a.(type) {
	case *array.Boolean:
		return a.Value(i), nil
	case *array.Uint8:
		return a.Value(i), nil
	case *array.Int8:
		return a.Value(i), nil
	case *array.Uint16:
		return a.Value(i), nil
	case *array.Int16:
		return a.Value(i), nil
	case *array.Uint32:
		return a.Value(i), nil
	case *array.Int32:
		return a.Value(i), nil
	case *array.Uint64:
		return a.Value(i), nil
	case *array.Int64:
		return a.Value(i), nil
	case *array.Float32:
		return a.Value(i), nil
	case *array.Float64:
		return a.Value(i), nil
	case *array.String:
		return a.Value(i), nil
	case *array.LargeString:
		return a.Value(i), nil
	case *array.Binary:
		return a.Value(i), nil
	case *array.LargeBinary:
		return a.Value(i), nil
	case *array.FixedSizeBinary:
		return a.Value(i), nil
	case *array.Date32:
		return a.Value(i).ToTime(), nil
	case *array.Timestamp:
		unit := a.DataType().(*arrow.TimestampType).Unit
		return a.Value(i).ToTime(unit), nil
	case array.ListLike:
		start, end := a.ValueOffsets(i)
		elems := a.ListValues()
		vals := make([]any, 0, end-start)
		for j := start; j < end; j++ {
			v, err := value(elems, int(j))
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
		}
		return vals, nil
	case *array.Struct:
		vals := make(column.Struct, a.NumField())
		for j := range a.NumField() {
			v, err := value(a.Field(j), i)
			if err != nil {
				return nil, err
			}
			vals[j] = v
		}
		return vals, nil
	}
	return nil, fmt.Errorf("unsupported Arrow array: %s", a.DataType().Name())
}
