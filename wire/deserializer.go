package wire

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
)

// MaxStringSize bounds the length prefix of strings read from the wire so a
// corrupt prefix cannot force an arbitrarily large allocation.
const MaxStringSize = 1 << 30

const readChunk = 64 << 10

var errVarUintOverflow = errors.New("varuint overflows a 64-bit integer")

// Deserializer reads primitive values from a stream.
type Deserializer struct {
	reader  *bufio.Reader
	scratch [8]byte
}

func NewDeserializer(r io.Reader) *Deserializer {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Deserializer{reader: br}
}

func (d *Deserializer) read(op string, n int) ([]byte, error) {
	b := d.scratch[:n]
	if _, err := io.ReadFull(d.reader, b); err != nil {
		return nil, readError(op, err)
	}
	return b, nil
}

func (d *Deserializer) ReadUint8() (uint8, error) {
	b, err := d.reader.ReadByte()
	if err != nil {
		return 0, readError("read uint8", err)
	}
	return b, nil
}

func (d *Deserializer) ReadInt8() (int8, error) {
	v, err := d.ReadUint8()
	return int8(v), err
}

func (d *Deserializer) ReadBool() (bool, error) {
	v, err := d.ReadUint8()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, violation("boolean byte is %d", v)
}

func (d *Deserializer) ReadUint16() (uint16, error) {
	b, err := d.read("read uint16", 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (d *Deserializer) ReadInt16() (int16, error) {
	v, err := d.ReadUint16()
	return int16(v), err
}

func (d *Deserializer) ReadUint32() (uint32, error) {
	b, err := d.read("read uint32", 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (d *Deserializer) ReadInt32() (int32, error) {
	v, err := d.ReadUint32()
	return int32(v), err
}

func (d *Deserializer) ReadUint64() (uint64, error) {
	b, err := d.read("read uint64", 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (d *Deserializer) ReadInt64() (int64, error) {
	v, err := d.ReadUint64()
	return int64(v), err
}

func (d *Deserializer) ReadFloat32() (float32, error) {
	v, err := d.ReadUint32()
	return math.Float32frombits(v), err
}

func (d *Deserializer) ReadFloat64() (float64, error) {
	v, err := d.ReadUint64()
	return math.Float64frombits(v), err
}

func (d *Deserializer) ReadVarUint() (uint64, error) {
	v, err := binary.ReadUvarint(d.reader)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, readError("read varuint", err)
		}
		return 0, &ProtocolViolationError{Reason: errVarUintOverflow.Error()}
	}
	return v, nil
}

func (d *Deserializer) ReadVarInt() (int64, error) {
	v, err := d.ReadVarUint()
	return int64(v), err
}

// ReadBytes reads n bytes.  The result grows as bytes arrive, so a length
// read from a corrupt stream does not allocate n bytes up front.
func (d *Deserializer) ReadBytes(n int) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(min(n, readChunk))
	if _, err := io.CopyN(&buf, d.reader, int64(n)); err != nil {
		return nil, readError("read bytes", err)
	}
	return buf.Bytes(), nil
}

func (d *Deserializer) ReadString() (string, error) {
	n, err := d.ReadVarUint()
	if err != nil {
		return "", err
	}
	if n > MaxStringSize {
		return "", violation("string length %d exceeds maximum %d", n, MaxStringSize)
	}
	b, err := d.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Buffered returns the number of bytes read from the stream but not yet
// consumed.
func (d *Deserializer) Buffered() int {
	return d.reader.Buffered()
}
