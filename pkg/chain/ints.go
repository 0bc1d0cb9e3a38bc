package chain

import (
	"github.com/suffix-labs/antelope-codec/pkg/serializer"
)

// Float128 is a 128-bit float carried as 16 opaque bytes. The codec never
// interprets the payload numerically; it only moves it across the wire.
type Float128 struct {
	Data [16]byte
}

// NewFloat128 wraps raw quadruple-precision bytes.
func NewFloat128(data [16]byte) Float128 {
	return Float128{Data: data}
}

func (f Float128) Size() int {
	return 16
}

func (f Float128) Pack(enc *serializer.Encoder) int {
	copy(enc.Alloc(f.Size()), f.Data[:])
	return f.Size()
}

func (f *Float128) Unpack(data []byte) (int, error) {
	size := f.Size()
	if len(data) < size {
		return 0, &serializer.CodecError{Code: serializer.ErrBufferOverflow, Message: "Float128.unpack: buffer overflow"}
	}
	copy(f.Data[:], data[:size])
	return size, nil
}

// Uint128 is a 128-bit unsigned integer stored as two 64-bit limbs, low limb
// first. Storage and codec only; no arithmetic is defined here.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// NewUint128 builds a Uint128 from its low and high limbs.
func NewUint128(lo, hi uint64) Uint128 {
	return Uint128{Lo: lo, Hi: hi}
}

func (u Uint128) Size() int {
	return 16
}

func (u Uint128) Pack(enc *serializer.Encoder) int {
	pos := enc.Size()
	serializer.Uint64(u.Lo).Pack(enc)
	serializer.Uint64(u.Hi).Pack(enc)
	return enc.Size() - pos
}

func (u *Uint128) Unpack(data []byte) (int, error) {
	if len(data) < u.Size() {
		return 0, &serializer.CodecError{Code: serializer.ErrBufferOverflow, Message: "Uint128.unpack: buffer overflow"}
	}
	dec := serializer.NewDecoder(data)
	if _, err := dec.Unpack((*serializer.Uint64)(&u.Lo)); err != nil {
		return 0, err
	}
	if _, err := dec.Unpack((*serializer.Uint64)(&u.Hi)); err != nil {
		return 0, err
	}
	return dec.Pos(), nil
}

// Int128 is a 128-bit signed integer stored as two 64-bit limbs, low limb
// first. Same wire layout as Uint128.
type Int128 struct {
	Lo uint64
	Hi uint64
}

// NewInt128 builds an Int128 from its low and high limbs.
func NewInt128(lo, hi uint64) Int128 {
	return Int128{Lo: lo, Hi: hi}
}

func (i Int128) Size() int {
	return 16
}

func (i Int128) Pack(enc *serializer.Encoder) int {
	pos := enc.Size()
	serializer.Uint64(i.Lo).Pack(enc)
	serializer.Uint64(i.Hi).Pack(enc)
	return enc.Size() - pos
}

func (i *Int128) Unpack(data []byte) (int, error) {
	if len(data) < i.Size() {
		return 0, &serializer.CodecError{Code: serializer.ErrBufferOverflow, Message: "Int128.unpack: buffer overflow"}
	}
	dec := serializer.NewDecoder(data)
	if _, err := dec.Unpack((*serializer.Uint64)(&i.Lo)); err != nil {
		return 0, err
	}
	if _, err := dec.Unpack((*serializer.Uint64)(&i.Hi)); err != nil {
		return 0, err
	}
	return dec.Pos(), nil
}

// Uint256 is a 256-bit unsigned integer stored as two 128-bit limbs, low
// limb first.
type Uint256 struct {
	Lo Uint128
	Hi Uint128
}

// NewUint256 builds a Uint256 from its low and high 128-bit limbs.
func NewUint256(lo, hi Uint128) Uint256 {
	return Uint256{Lo: lo, Hi: hi}
}

// Swap returns the value with its limb order exchanged. The limbs themselves
// are not re-encoded.
func (u Uint256) Swap() Uint256 {
	return Uint256{Lo: u.Hi, Hi: u.Lo}
}

func (u Uint256) Size() int {
	return 32
}

func (u Uint256) Pack(enc *serializer.Encoder) int {
	pos := enc.Size()
	u.Lo.Pack(enc)
	u.Hi.Pack(enc)
	return enc.Size() - pos
}

func (u *Uint256) Unpack(data []byte) (int, error) {
	dec := serializer.NewDecoder(data)
	if _, err := dec.Unpack(&u.Lo); err != nil {
		return 0, err
	}
	if _, err := dec.Unpack(&u.Hi); err != nil {
		return 0, err
	}
	return dec.Pos(), nil
}
