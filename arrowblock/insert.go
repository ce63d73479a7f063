package arrowblock

import (
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/brimdata/native/block"
	"github.com/brimdata/native/column"
	"github.com/brimdata/native/protocol"
	"github.com/brimdata/native/wire"
)

// WriteInsert writes one Data packet for table per record read from rr and
// then the empty Data packet that ends the insert.  Every record must have
// the schema of the first.  Column headers are tracked in exports, so a
// header appears only in the first packet carrying its column.  It returns
// the number of rows written.
func WriteInsert(s *wire.Serializer, rr array.RecordReader, table string, exports *column.Exports, opts ...block.Option) (int, error) {
	b := block.New(exports, opts...)
	var rows int
	for rr.Next() {
		if err := Append(b, rr.Record()); err != nil {
			return rows, err
		}
		rows += b.Rows()
		if err := (&protocol.DataRequest{Table: table, Block: b}).Write(s); err != nil {
			return rows, err
		}
	}
	if err := rr.Err(); err != nil {
		return rows, err
	}
	return rows, (&protocol.DataRequest{Table: table}).Write(s)
}
