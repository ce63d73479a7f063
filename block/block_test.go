package block_test

import (
	"bytes"
	"testing"

	"github.com/brimdata/native"
	"github.com/brimdata/native/block"
	"github.com/brimdata/native/column"
	"github.com/brimdata/native/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func flush(t *testing.T, b *block.Block) []byte {
	t.Helper()
	var buf bytes.Buffer
	s := wire.NewSerializer(&buf)
	require.NoError(t, b.Flush(s))
	require.NoError(t, s.Flush())
	return buf.Bytes()
}

func str(s string) []byte {
	return append([]byte{byte(len(s))}, s...)
}

func newBlock(t *testing.T, exports *column.Exports, opts ...block.Option) *block.Block {
	t.Helper()
	b, err := block.NewFromSchema(native.NewRegistry(), exports,
		[]string{"id", "name"},
		[]string{"UInt8", "String"},
		opts...)
	require.NoError(t, err)
	return b
}

func TestBlockFlushOrderAndHeaders(t *testing.T) {
	exports := column.NewExports()
	b := newBlock(t, exports)
	require.NoError(t, b.WriteRow(1, "a"))
	require.NoError(t, b.WriteRow(2, "b"))
	assert.Equal(t, 2, b.Rows())
	first := flush(t, b)
	assert.Equal(t, bytes.Join([][]byte{
		str("id"), str("UInt8"), {1, 2},
		str("name"), str("String"), str("a"), str("b"),
	}, nil), first)
	assert.Equal(t, 0, b.Rows())

	// A second block on the same connection omits the headers.
	next := newBlock(t, exports)
	require.NoError(t, next.WriteRow(3, "c"))
	assert.Equal(t, bytes.Join([][]byte{{3}, str("c")}, nil), flush(t, next))
}

func TestBlockDuplicateColumn(t *testing.T) {
	b := block.New(column.NewExports())
	col, err := column.New("x", native.TypeInt8, nil)
	require.NoError(t, err)
	require.NoError(t, b.AddColumn("x", col))
	dup, err := column.New("x", native.TypeString, nil)
	require.NoError(t, err)
	err = b.AddColumn("x", dup)
	var dupErr *block.DuplicateColumnError
	require.ErrorAs(t, err, &dupErr)
	assert.EqualError(t, err, `duplicate column: "x"`)
	assert.Equal(t, 1, b.Len())

	got, ok := b.Column("x")
	require.True(t, ok)
	assert.Same(t, col, got)
	_, ok = b.Column("y")
	assert.False(t, ok)
}

func TestBlockAddColumnNameMismatch(t *testing.T) {
	b := block.New(nil)
	col, err := column.New("x", native.TypeInt8, nil)
	require.NoError(t, err)
	assert.Error(t, b.AddColumn("y", col))
	anon, err := column.New("", native.TypeInt8, nil)
	require.NoError(t, err)
	assert.Error(t, b.AddColumn("", anon))
}

func TestBlockWriteRowIsAtomic(t *testing.T) {
	b := newBlock(t, nil)
	err := b.WriteRow(1, 2)
	var typeErr *column.ValueTypeError
	require.ErrorAs(t, err, &typeErr)
	for _, col := range b.Columns() {
		assert.Equal(t, 0, col.Rows())
	}
	var arity *column.ArityMismatchError
	assert.ErrorAs(t, b.WriteRow(1), &arity)
}

func TestBlockSchemaErrors(t *testing.T) {
	reg := native.NewRegistry()
	_, err := block.NewFromSchema(reg, nil, []string{"a"}, []string{"Foo(Bar)"})
	var unknown *native.UnknownTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Foo", unknown.Name)

	_, err = block.NewFromSchema(reg, nil, []string{"a", "a"}, []string{"Int8", "Int8"})
	var dupErr *block.DuplicateColumnError
	assert.ErrorAs(t, err, &dupErr)

	_, err = block.NewFromSchema(reg, nil, []string{"a"}, nil)
	assert.Error(t, err)
}

func TestBlockReset(t *testing.T) {
	b := newBlock(t, nil)
	require.NoError(t, b.WriteRow(1, "a"))
	b.Reset()
	assert.Equal(t, 0, b.Rows())
	require.NoError(t, b.WriteRow(2, "b"))
	assert.Equal(t, bytes.Join([][]byte{
		str("id"), str("UInt8"), {2},
		str("name"), str("String"), str("b"),
	}, nil), flush(t, b))
}

func TestBlockMetricsAndLogging(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := block.NewMetrics(reg)
	core, logs := observer.New(zap.DebugLevel)
	exports := column.NewExports()
	opts := []block.Option{block.WithMetrics(metrics), block.WithLogger(zap.New(core))}

	b := newBlock(t, exports, opts...)
	require.NoError(t, b.WriteRow(1, "a"))
	require.NoError(t, b.WriteRow(2, "b"))
	flush(t, b)
	b = newBlock(t, exports, opts...)
	require.NoError(t, b.WriteRow(3, "c"))
	flush(t, b)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Flushes))
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.Rows))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.HeadersExported))
	assert.Equal(t, 2, logs.FilterMessage("column header exported").Len())
}
