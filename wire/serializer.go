// Package wire implements the primitive encodings of the native protocol:
// little-endian fixed-width integers and floats, single-byte booleans,
// LEB128 variable-length unsigned integers and length-prefixed strings.
package wire

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
)

// Serializer writes primitive values to a stream.  Output is buffered;
// Flush must be called to push it to the underlying writer.
type Serializer struct {
	writer  *bufio.Writer
	scratch [binary.MaxVarintLen64]byte
}

func NewSerializer(w io.Writer) *Serializer {
	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriter(w)
	}
	return &Serializer{writer: bw}
}

func (s *Serializer) write(op string, b []byte) error {
	if _, err := s.writer.Write(b); err != nil {
		return &IOError{Op: op, Err: err}
	}
	return nil
}

func (s *Serializer) WriteBytes(b []byte) error {
	return s.write("write bytes", b)
}

func (s *Serializer) WriteUint8(v uint8) error {
	if err := s.writer.WriteByte(v); err != nil {
		return &IOError{Op: "write uint8", Err: err}
	}
	return nil
}

func (s *Serializer) WriteInt8(v int8) error {
	return s.WriteUint8(uint8(v))
}

func (s *Serializer) WriteBool(v bool) error {
	if v {
		return s.WriteUint8(1)
	}
	return s.WriteUint8(0)
}

func (s *Serializer) WriteUint16(v uint16) error {
	binary.LittleEndian.PutUint16(s.scratch[:2], v)
	return s.write("write uint16", s.scratch[:2])
}

func (s *Serializer) WriteInt16(v int16) error {
	return s.WriteUint16(uint16(v))
}

func (s *Serializer) WriteUint32(v uint32) error {
	binary.LittleEndian.PutUint32(s.scratch[:4], v)
	return s.write("write uint32", s.scratch[:4])
}

func (s *Serializer) WriteInt32(v int32) error {
	return s.WriteUint32(uint32(v))
}

func (s *Serializer) WriteUint64(v uint64) error {
	binary.LittleEndian.PutUint64(s.scratch[:8], v)
	return s.write("write uint64", s.scratch[:8])
}

func (s *Serializer) WriteInt64(v int64) error {
	return s.WriteUint64(uint64(v))
}

func (s *Serializer) WriteFloat32(v float32) error {
	return s.WriteUint32(math.Float32bits(v))
}

func (s *Serializer) WriteFloat64(v float64) error {
	return s.WriteUint64(math.Float64bits(v))
}

func (s *Serializer) WriteVarUint(v uint64) error {
	n := binary.PutUvarint(s.scratch[:], v)
	return s.write("write varuint", s.scratch[:n])
}

// WriteVarInt writes the two's-complement bit pattern of v as a varuint.
// This is how the server expects signed integer settings.
func (s *Serializer) WriteVarInt(v int64) error {
	return s.WriteVarUint(uint64(v))
}

func (s *Serializer) WriteString(v string) error {
	if err := s.WriteVarUint(uint64(len(v))); err != nil {
		return err
	}
	if _, err := s.writer.WriteString(v); err != nil {
		return &IOError{Op: "write string", Err: err}
	}
	return nil
}

// Buffered returns the number of bytes written but not yet flushed.
func (s *Serializer) Buffered() int {
	return s.writer.Buffered()
}

func (s *Serializer) Flush() error {
	if err := s.writer.Flush(); err != nil {
		return &IOError{Op: "flush", Err: err}
	}
	return nil
}
