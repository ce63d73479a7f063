// Package block implements a block: an ordered set of named columns holding
// one batch of rows, flushed to a connection column by column.
package block

import (
	"fmt"

	"github.com/brimdata/native"
	"github.com/brimdata/native/column"
	"github.com/brimdata/native/wire"
	"go.uber.org/zap"
)

type DuplicateColumnError struct {
	Name string
}

func (d *DuplicateColumnError) Error() string {
	return fmt.Sprintf("duplicate column: %q", d.Name)
}

type Block struct {
	exports *column.Exports
	columns []column.Column
	index   map[string]int
	logger  *zap.Logger
	metrics *Metrics
}

type Option func(*Block)

func WithLogger(logger *zap.Logger) Option {
	return func(b *Block) {
		if logger != nil {
			b.logger = logger
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(b *Block) {
		b.metrics = m
	}
}

// New returns an empty block whose column headers are tracked in exports,
// which belongs to the connection the block will be flushed to.
func New(exports *column.Exports, opts ...Option) *Block {
	b := &Block{
		exports: exports,
		index:   make(map[string]int),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewFromSchema returns a block with one empty column for each name and
// type name pair.
func NewFromSchema(reg *native.Registry, exports *column.Exports, names, types []string, opts ...Option) (*Block, error) {
	if len(names) != len(types) {
		return nil, fmt.Errorf("schema has %d column names but %d types", len(names), len(types))
	}
	b := New(exports, opts...)
	for k, name := range names {
		typ, err := reg.Parse(types[k])
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		col, err := column.New(name, typ, nil)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		if err := b.AddColumn(name, col); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Block) AddColumn(name string, col column.Column) error {
	if name == "" {
		return fmt.Errorf("block column of type %s has no name", col.Type().Name())
	}
	if col.Name() != name {
		return fmt.Errorf("column named %q added as %q", col.Name(), name)
	}
	if _, ok := b.index[name]; ok {
		return &DuplicateColumnError{name}
	}
	b.index[name] = len(b.columns)
	b.columns = append(b.columns, col)
	return nil
}

func (b *Block) Column(name string) (column.Column, bool) {
	k, ok := b.index[name]
	if !ok {
		return nil, false
	}
	return b.columns[k], true
}

// Columns returns the columns in wire order.
func (b *Block) Columns() []column.Column {
	return b.columns
}

func (b *Block) Len() int {
	return len(b.columns)
}

// Rows returns the number of buffered rows.
func (b *Block) Rows() int {
	if len(b.columns) == 0 {
		return 0
	}
	return b.columns[0].Rows()
}

// WriteRow appends one value to each column in column order.  Every value is
// validated before any column is written so that a failed row leaves the
// columns aligned.
func (b *Block) WriteRow(values ...any) error {
	if len(values) != len(b.columns) {
		return &column.ArityMismatchError{Type: "block row", Want: len(b.columns), Got: len(values)}
	}
	for k, col := range b.columns {
		if err := col.Validate(values[k]); err != nil {
			return fmt.Errorf("column %q: %w", col.Name(), err)
		}
	}
	for k, col := range b.columns {
		if err := col.Write(values[k]); err != nil {
			return fmt.Errorf("column %q: %w", col.Name(), err)
		}
	}
	return nil
}

// Flush writes every column to s in insertion order, sending each column's
// header only if it has not yet been sent on this connection.
func (b *Block) Flush(s *wire.Serializer) error {
	rows := b.Rows()
	var headers int
	for _, col := range b.columns {
		exported := b.exports.Exported(col.Name(), col.Type().Name())
		if err := col.Flush(s, b.exports, true); err != nil {
			return fmt.Errorf("flushing column %q: %w", col.Name(), err)
		}
		if !exported {
			headers++
			b.logger.Debug("column header exported",
				zap.String("column", col.Name()),
				zap.String("type", col.Type().Name()))
		}
	}
	b.metrics.flushed(rows, headers)
	return nil
}

// Reset installs a fresh buffer on every column for the next batch.
func (b *Block) Reset() {
	for _, col := range b.columns {
		col.SetBuffer(wire.NewBuffer())
	}
}
