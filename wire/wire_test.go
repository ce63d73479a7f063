package wire_test

import (
	"bytes"
	"errors"
	"io"
	"math"
	"runtime"
	"testing"

	"github.com/brimdata/native/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitiveRoundtrip(t *testing.T) {
	var buf bytes.Buffer
	s := wire.NewSerializer(&buf)
	require.NoError(t, s.WriteInt8(-5))
	require.NoError(t, s.WriteInt16(-300))
	require.NoError(t, s.WriteInt32(-70000))
	require.NoError(t, s.WriteInt64(math.MinInt64))
	require.NoError(t, s.WriteUint64(math.MaxUint64))
	require.NoError(t, s.WriteFloat32(1.5))
	require.NoError(t, s.WriteFloat64(-2.25))
	require.NoError(t, s.WriteBool(true))
	require.NoError(t, s.WriteVarUint(300))
	require.NoError(t, s.WriteString("héllo"))
	require.NoError(t, s.Flush())

	d := wire.NewDeserializer(&buf)
	i8, err := d.ReadInt8()
	require.NoError(t, err)
	assert.Equal(t, int8(-5), i8)
	i16, err := d.ReadInt16()
	require.NoError(t, err)
	assert.Equal(t, int16(-300), i16)
	i32, err := d.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(-70000), i32)
	i64, err := d.ReadInt64()
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), i64)
	u64, err := d.ReadUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), u64)
	f32, err := d.ReadFloat32()
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), f32)
	f64, err := d.ReadFloat64()
	require.NoError(t, err)
	assert.Equal(t, -2.25, f64)
	b, err := d.ReadBool()
	require.NoError(t, err)
	assert.True(t, b)
	n, err := d.ReadVarUint()
	require.NoError(t, err)
	assert.Equal(t, uint64(300), n)
	str, err := d.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "héllo", str)
	assert.Equal(t, 0, buf.Len()+d.Buffered())
}

func TestLittleEndianLayout(t *testing.T) {
	var buf bytes.Buffer
	s := wire.NewSerializer(&buf)
	require.NoError(t, s.WriteInt32(0x01020304))
	require.NoError(t, s.WriteVarUint(300))
	require.NoError(t, s.WriteString("ab"))
	require.NoError(t, s.Flush())
	assert.Equal(t, []byte{4, 3, 2, 1, 0xac, 0x02, 2, 'a', 'b'}, buf.Bytes())
}

func TestVarIntNegative(t *testing.T) {
	var buf bytes.Buffer
	s := wire.NewSerializer(&buf)
	require.NoError(t, s.WriteVarInt(-1))
	require.NoError(t, s.Flush())
	assert.Len(t, buf.Bytes(), 10)
	v, err := wire.NewDeserializer(&buf).ReadVarInt()
	require.NoError(t, err)
	assert.Equal(t, int64(-1), v)
}

func TestShortRead(t *testing.T) {
	d := wire.NewDeserializer(bytes.NewReader([]byte{5, 'a', 'b'}))
	_, err := d.ReadString()
	require.Error(t, err)
	assert.True(t, wire.IsShortRead(err))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	d = wire.NewDeserializer(bytes.NewReader([]byte{1, 2}))
	_, err = d.ReadInt32()
	assert.True(t, wire.IsShortRead(err))

	d = wire.NewDeserializer(bytes.NewReader(nil))
	_, err = d.ReadUint8()
	assert.True(t, wire.IsShortRead(err))
}

func TestCorruptLengthAllocation(t *testing.T) {
	// A length prefix of 512 MiB followed by three bytes.
	in := []byte{0x80, 0x80, 0x80, 0x80, 0x02, 'a', 'b', 'c'}
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	_, err := wire.NewDeserializer(bytes.NewReader(in)).ReadString()
	runtime.ReadMemStats(&after)
	assert.True(t, wire.IsShortRead(err))
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(16<<20))
}

func TestProtocolViolations(t *testing.T) {
	var pv *wire.ProtocolViolationError

	d := wire.NewDeserializer(bytes.NewReader([]byte{2}))
	_, err := d.ReadBool()
	assert.ErrorAs(t, err, &pv)

	overflow := bytes.Repeat([]byte{0xff}, 11)
	d = wire.NewDeserializer(bytes.NewReader(overflow))
	_, err = d.ReadVarUint()
	assert.ErrorAs(t, err, &pv)
	assert.False(t, wire.IsShortRead(err))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestWriteFailure(t *testing.T) {
	s := wire.NewSerializer(failingWriter{})
	require.NoError(t, s.WriteString("buffered"))
	err := s.Flush()
	var ioErr *wire.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.EqualError(t, err, "flush: connection reset")
}

func TestBufferEmit(t *testing.T) {
	b := wire.NewBuffer()
	require.NoError(t, b.WriteUint16(7))
	require.NoError(t, b.WriteString("x"))
	assert.Equal(t, 4, b.Len())

	var out bytes.Buffer
	s := wire.NewSerializer(&out)
	require.NoError(t, b.Emit(s))
	require.NoError(t, s.Flush())
	assert.Equal(t, []byte{7, 0, 1, 'x'}, out.Bytes())
	assert.Equal(t, 0, b.Len())

	require.NoError(t, b.WriteUint8(9))
	b.Reset()
	assert.Equal(t, 0, b.Len())
}
