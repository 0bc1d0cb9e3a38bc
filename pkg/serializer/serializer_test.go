package serializer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoderAllocAppendsZeroedRegions(t *testing.T) {
	enc := NewEncoder(8)

	first := enc.Alloc(3)
	require.Len(t, first, 3)
	assert.Equal(t, []byte{0, 0, 0}, first)
	copy(first, []byte{1, 2, 3})

	second := enc.Alloc(2)
	copy(second, []byte{4, 5})

	assert.Equal(t, 5, enc.Size())
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, enc.Bytes())
}

func TestEncoderSizeDelta(t *testing.T) {
	enc := NewEncoder(0)
	before := enc.Size()
	Uint32(7).Pack(enc)
	Uint16(9).Pack(enc)
	assert.Equal(t, 6, enc.Size()-before)
}

func TestDecoderAdvancesCursor(t *testing.T) {
	data := []byte{0x2a, 0x00, 0x01, 0x00, 0x00, 0x00}
	dec := NewDecoder(data)

	var a Uint16
	n, err := dec.Unpack(&a)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, Uint16(42), a)

	var b Uint32
	_, err = dec.Unpack(&b)
	require.NoError(t, err)
	assert.Equal(t, Uint32(1), b)
	assert.Equal(t, 6, dec.Pos())
}

func TestDecoderStopsAtEnd(t *testing.T) {
	dec := NewDecoder([]byte{1, 2})
	var v Uint32
	_, err := dec.Unpack(&v)
	require.Error(t, err)
	assert.Equal(t, ErrBufferOverflow, ErrorCode(err))
	assert.Equal(t, 0, dec.Pos())
}

func TestPrimitivesRoundTrip(t *testing.T) {
	enc := NewEncoder(0)
	Bool(true).Pack(enc)
	Uint8(0xfe).Pack(enc)
	Int8(-2).Pack(enc)
	Uint16(0xbeef).Pack(enc)
	Int16(-3).Pack(enc)
	Uint32(0xdeadbeef).Pack(enc)
	Int32(-4).Pack(enc)
	Uint64(0x0102030405060708).Pack(enc)
	Int64(-5).Pack(enc)

	dec := NewDecoder(enc.Bytes())
	var (
		vb   Bool
		vu8  Uint8
		vi8  Int8
		vu16 Uint16
		vi16 Int16
		vu32 Uint32
		vi32 Int32
		vu64 Uint64
		vi64 Int64
	)
	for _, p := range []Packer{&vb, &vu8, &vi8, &vu16, &vi16, &vu32, &vi32, &vu64, &vi64} {
		_, err := dec.Unpack(p)
		require.NoError(t, err)
	}
	assert.Equal(t, Bool(true), vb)
	assert.Equal(t, Uint8(0xfe), vu8)
	assert.Equal(t, Int8(-2), vi8)
	assert.Equal(t, Uint16(0xbeef), vu16)
	assert.Equal(t, Int16(-3), vi16)
	assert.Equal(t, Uint32(0xdeadbeef), vu32)
	assert.Equal(t, Int32(-4), vi32)
	assert.Equal(t, Uint64(0x0102030405060708), vu64)
	assert.Equal(t, Int64(-5), vi64)
	assert.Equal(t, enc.Size(), dec.Pos())
}

func TestIntegersAreLittleEndian(t *testing.T) {
	assert.Equal(t, []byte{0xef, 0xbe, 0xad, 0xde}, packOne(t, Uint32(0xdeadbeef)))
	assert.Equal(t, []byte{0x34, 0x12}, packOne(t, Uint16(0x1234)))
}

func TestStringRoundTrip(t *testing.T) {
	s := String("hello")
	assert.Equal(t, 6, s.Size())
	data := packOne(t, s)
	assert.Equal(t, []byte{5, 'h', 'e', 'l', 'l', 'o'}, data)

	var out String
	n, err := out.Unpack(data)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, s, out)
}

func TestStringTruncatedPayload(t *testing.T) {
	var out String
	_, err := out.Unpack([]byte{5, 'h', 'i'})
	require.Error(t, err)
	assert.Equal(t, ErrBufferOverflow, ErrorCode(err))
}

func TestBytesRoundTrip(t *testing.T) {
	b := Bytes{1, 2, 3}
	data := packOne(t, b)
	assert.Equal(t, []byte{3, 1, 2, 3}, data)

	var out Bytes
	n, err := out.Unpack(data)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, b, out)
}

func TestEmptyBytesAndString(t *testing.T) {
	assert.Equal(t, []byte{0}, packOne(t, String("")))
	assert.Equal(t, []byte{0}, packOne(t, Bytes(nil)))
}

// packOne packs a single value through a fresh encoder and checks the
// size/pack law along the way.
func packOne(t *testing.T, p interface {
	Size() int
	Pack(*Encoder) int
}) []byte {
	t.Helper()
	enc := NewEncoder(p.Size())
	n := p.Pack(enc)
	require.Equal(t, p.Size(), n, "Pack must write exactly Size() bytes")
	require.Equal(t, p.Size(), enc.Size())
	return enc.Bytes()
}
