package arrowblock_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/brimdata/native"
	"github.com/brimdata/native/arrowblock"
	"github.com/brimdata/native/block"
	"github.com/brimdata/native/column"
	"github.com/brimdata/native/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestType(t *testing.T) {
	cases := []struct {
		dt       arrow.DataType
		nullable bool
		want     string
	}{
		{arrow.PrimitiveTypes.Int64, false, "Int64"},
		{arrow.PrimitiveTypes.Uint16, true, "Nullable(UInt16)"},
		{arrow.FixedWidthTypes.Boolean, false, "Bool"},
		{arrow.BinaryTypes.String, true, "Nullable(String)"},
		{arrow.BinaryTypes.LargeBinary, false, "String"},
		{&arrow.FixedSizeBinaryType{ByteWidth: 16}, false, "FixedString(16)"},
		{arrow.FixedWidthTypes.Date32, false, "Date"},
		{arrow.FixedWidthTypes.Timestamp_s, false, "DateTime"},
		{arrow.ListOf(arrow.PrimitiveTypes.Float64), true, "Array(Nullable(Float64))"},
		{arrow.ListOfNonNullable(arrow.PrimitiveTypes.Float64), false, "Array(Float64)"},
		{arrow.StructOf(
			arrow.Field{Name: "a", Type: arrow.PrimitiveTypes.Int8},
			arrow.Field{Name: "b", Type: arrow.BinaryTypes.String, Nullable: true},
		), true, "Tuple(Int8, Nullable(String))"},
	}
	for _, c := range cases {
		typ, err := arrowblock.Type(c.dt, c.nullable)
		require.NoError(t, err, c.want)
		assert.Equal(t, c.want, typ.Name())
	}
	_, err := arrowblock.Type(arrow.FixedWidthTypes.Float16, false)
	assert.ErrorContains(t, err, "unsupported Arrow type")
}

func TestAppend(t *testing.T) {
	mem := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64},
		{Name: "name", Type: arrow.BinaryTypes.String, Nullable: true},
	}, nil)
	rb := array.NewRecordBuilder(mem, schema)
	defer rb.Release()
	rb.Field(0).(*array.Int64Builder).AppendValues([]int64{1, 2}, nil)
	rb.Field(1).(*array.StringBuilder).AppendValues([]string{"a", ""}, []bool{true, false})
	rec := rb.NewRecord()
	defer rec.Release()

	b := block.New(column.NewExports())
	require.NoError(t, arrowblock.Append(b, rec))
	assert.Equal(t, 2, b.Rows())

	var buf bytes.Buffer
	s := wire.NewSerializer(&buf)
	require.NoError(t, b.Flush(s))
	require.NoError(t, s.Flush())
	want := []byte{2, 'i', 'd', 5}
	want = append(want, "Int64"...)
	want = append(want, 1, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0)
	want = append(want, 4)
	want = append(want, "name"...)
	want = append(want, 16)
	want = append(want, "Nullable(String)"...)
	want = append(want, 0, 1, 1, 'a', 0)
	assert.Equal(t, want, buf.Bytes())

	// A second record with the same schema appends to the same columns.
	require.NoError(t, arrowblock.Append(b, rec))
	assert.Equal(t, 2, b.Rows())
}

func TestAppendNested(t *testing.T) {
	mem := memory.NewGoAllocator()
	point := arrow.StructOf(
		arrow.Field{Name: "x", Type: arrow.PrimitiveTypes.Int32},
		arrow.Field{Name: "y", Type: arrow.PrimitiveTypes.Float64},
	)
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "tags", Type: arrow.ListOfNonNullable(arrow.BinaryTypes.String)},
		{Name: "point", Type: point},
		{Name: "day", Type: arrow.FixedWidthTypes.Date32},
	}, nil)
	rb := array.NewRecordBuilder(mem, schema)
	defer rb.Release()

	lb := rb.Field(0).(*array.ListBuilder)
	vb := lb.ValueBuilder().(*array.StringBuilder)
	lb.Append(true)
	vb.AppendValues([]string{"x", "y"}, nil)
	lb.Append(true)

	sb := rb.Field(1).(*array.StructBuilder)
	sb.Append(true)
	sb.FieldBuilder(0).(*array.Int32Builder).Append(3)
	sb.FieldBuilder(1).(*array.Float64Builder).Append(0.5)
	sb.Append(true)
	sb.FieldBuilder(0).(*array.Int32Builder).Append(4)
	sb.FieldBuilder(1).(*array.Float64Builder).Append(1.5)

	day := arrow.Date32FromTime(time.Date(1970, 1, 11, 0, 0, 0, 0, time.UTC))
	rb.Field(2).(*array.Date32Builder).AppendValues([]arrow.Date32{day, day + 1}, nil)

	rec := rb.NewRecord()
	defer rec.Release()

	b := block.New(nil)
	require.NoError(t, arrowblock.Append(b, rec))
	require.Equal(t, 3, b.Len())
	assert.Equal(t, 2, b.Rows())
	var names []string
	for _, col := range b.Columns() {
		names = append(names, col.Type().Name())
	}
	assert.Equal(t, []string{"Array(String)", "Tuple(Int32, Float64)", "Date"}, names)

	tags, ok := b.Column("tags")
	require.True(t, ok)
	assert.Equal(t, 2, tags.(*column.Array).Values().Rows())
}

func TestAppendSchemaMismatch(t *testing.T) {
	mem := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{{Name: "id", Type: arrow.PrimitiveTypes.Int32}}, nil)
	rb := array.NewRecordBuilder(mem, schema)
	defer rb.Release()
	rb.Field(0).(*array.Int32Builder).Append(1)
	rec := rb.NewRecord()
	defer rec.Release()

	b := block.New(nil)
	col, err := column.New("id", native.TypeInt64, nil)
	require.NoError(t, err)
	require.NoError(t, b.AddColumn("id", col))
	assert.ErrorContains(t, arrowblock.Append(b, rec), "does not match")
}

func TestWriteInsert(t *testing.T) {
	mem := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{{Name: "x", Type: arrow.PrimitiveTypes.Int64}}, nil)
	var stream bytes.Buffer
	w := ipc.NewWriter(&stream, ipc.WithSchema(schema), ipc.WithAllocator(mem))
	for _, values := range [][]int64{{1, 2}, {3}} {
		rb := array.NewRecordBuilder(mem, schema)
		rb.Field(0).(*array.Int64Builder).AppendValues(values, nil)
		rec := rb.NewRecord()
		require.NoError(t, w.Write(rec))
		rec.Release()
		rb.Release()
	}
	require.NoError(t, w.Close())

	rr, err := ipc.NewReader(&stream, ipc.WithAllocator(mem))
	require.NoError(t, err)
	defer rr.Release()
	var buf bytes.Buffer
	s := wire.NewSerializer(&buf)
	rows, err := arrowblock.WriteInsert(s, rr, "t", column.NewExports())
	require.NoError(t, err)
	require.NoError(t, s.Flush())
	assert.Equal(t, 3, rows)

	info := []byte{1, 0, 2, 0xff, 0xff, 0xff, 0xff, 0}
	packet := func(cols, rows byte) []byte {
		p := append([]byte{2, 1, 't'}, info...)
		return append(p, cols, rows)
	}
	var want []byte
	want = append(want, packet(1, 2)...)
	want = append(want, 1, 'x', 5)
	want = append(want, "Int64"...)
	want = append(want, 1, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0)
	// The header of x was exported by the first packet.
	want = append(want, packet(1, 1)...)
	want = append(want, 3, 0, 0, 0, 0, 0, 0, 0)
	want = append(want, packet(0, 0)...)
	assert.Equal(t, want, buf.Bytes())
}

func TestWriteInsertEmpty(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{{Name: "x", Type: arrow.PrimitiveTypes.Int64}}, nil)
	var stream bytes.Buffer
	w := ipc.NewWriter(&stream, ipc.WithSchema(schema))
	require.NoError(t, w.Close())
	rr, err := ipc.NewReader(&stream)
	require.NoError(t, err)
	defer rr.Release()

	var buf bytes.Buffer
	s := wire.NewSerializer(&buf)
	rows, err := arrowblock.WriteInsert(s, rr, "", nil)
	require.NoError(t, err)
	require.NoError(t, s.Flush())
	assert.Zero(t, rows)
	assert.Equal(t, []byte{2, 0, 1, 0, 2, 0xff, 0xff, 0xff, 0xff, 0, 0, 0}, buf.Bytes())
}
