package wire

import "bytes"

// Buffer is the private write buffer of one column.  Each column owns its
// Buffer so that its bytes stay contiguous until the column is flushed.
type Buffer struct {
	*Serializer
	bytes bytes.Buffer
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.Serializer = NewSerializer(&b.bytes)
	return b
}

// Len returns the number of bytes held by the buffer.
func (b *Buffer) Len() int {
	return b.bytes.Len() + b.Serializer.Buffered()
}

// Bytes returns the buffered bytes.  The slice is valid until the next
// write, Reset or Emit.
func (b *Buffer) Bytes() []byte {
	// Writes into a bytes.Buffer cannot fail.
	b.Serializer.Flush()
	return b.bytes.Bytes()
}

func (b *Buffer) Reset() {
	b.Serializer.Flush()
	b.bytes.Reset()
}

// Emit appends the buffered bytes to s and drains the buffer.
func (b *Buffer) Emit(s *Serializer) error {
	if err := s.WriteBytes(b.Bytes()); err != nil {
		return err
	}
	b.bytes.Reset()
	return nil
}
