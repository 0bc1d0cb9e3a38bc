// Base-case Packer implementations for fixed-width integers, booleans,
// length-prefixed strings and byte slices.
//
// Go's built-in scalar types cannot carry methods, so each primitive gets a
// named alias; call sites convert in place, e.g.
//
//	serializer.Uint32(v.Threshold).Pack(enc)
//	(*serializer.Uint32)(&v.Threshold).Unpack(data)
package serializer

import "encoding/binary"

// Bool packs as a single byte: 1 for true, 0 for false.
type Bool bool

func (v Bool) Size() int {
	return 1
}

func (v Bool) Pack(enc *Encoder) int {
	data := enc.Alloc(1)
	if v {
		data[0] = 1
	}
	return 1
}

func (v *Bool) Unpack(data []byte) (int, error) {
	if len(data) < 1 {
		return 0, overflowError("Bool.unpack")
	}
	*v = data[0] != 0
	return 1, nil
}

// Uint8 packs as one raw byte.
type Uint8 uint8

func (v Uint8) Size() int {
	return 1
}

func (v Uint8) Pack(enc *Encoder) int {
	enc.Alloc(1)[0] = byte(v)
	return 1
}

func (v *Uint8) Unpack(data []byte) (int, error) {
	if len(data) < 1 {
		return 0, overflowError("Uint8.unpack")
	}
	*v = Uint8(data[0])
	return 1, nil
}

// Int8 packs as one raw byte.
type Int8 int8

func (v Int8) Size() int {
	return 1
}

func (v Int8) Pack(enc *Encoder) int {
	enc.Alloc(1)[0] = byte(v)
	return 1
}

func (v *Int8) Unpack(data []byte) (int, error) {
	if len(data) < 1 {
		return 0, overflowError("Int8.unpack")
	}
	*v = Int8(data[0])
	return 1, nil
}

// Uint16 packs as 2 little-endian bytes.
type Uint16 uint16

func (v Uint16) Size() int {
	return 2
}

func (v Uint16) Pack(enc *Encoder) int {
	binary.LittleEndian.PutUint16(enc.Alloc(2), uint16(v))
	return 2
}

func (v *Uint16) Unpack(data []byte) (int, error) {
	if len(data) < 2 {
		return 0, overflowError("Uint16.unpack")
	}
	*v = Uint16(binary.LittleEndian.Uint16(data))
	return 2, nil
}

// Int16 packs as 2 little-endian bytes.
type Int16 int16

func (v Int16) Size() int {
	return 2
}

func (v Int16) Pack(enc *Encoder) int {
	binary.LittleEndian.PutUint16(enc.Alloc(2), uint16(v))
	return 2
}

func (v *Int16) Unpack(data []byte) (int, error) {
	if len(data) < 2 {
		return 0, overflowError("Int16.unpack")
	}
	*v = Int16(binary.LittleEndian.Uint16(data))
	return 2, nil
}

// Uint32 packs as 4 little-endian bytes.
type Uint32 uint32

func (v Uint32) Size() int {
	return 4
}

func (v Uint32) Pack(enc *Encoder) int {
	binary.LittleEndian.PutUint32(enc.Alloc(4), uint32(v))
	return 4
}

func (v *Uint32) Unpack(data []byte) (int, error) {
	if len(data) < 4 {
		return 0, overflowError("Uint32.unpack")
	}
	*v = Uint32(binary.LittleEndian.Uint32(data))
	return 4, nil
}

// Int32 packs as 4 little-endian bytes.
type Int32 int32

func (v Int32) Size() int {
	return 4
}

func (v Int32) Pack(enc *Encoder) int {
	binary.LittleEndian.PutUint32(enc.Alloc(4), uint32(v))
	return 4
}

func (v *Int32) Unpack(data []byte) (int, error) {
	if len(data) < 4 {
		return 0, overflowError("Int32.unpack")
	}
	*v = Int32(binary.LittleEndian.Uint32(data))
	return 4, nil
}

// Uint64 packs as 8 little-endian bytes.
type Uint64 uint64

func (v Uint64) Size() int {
	return 8
}

func (v Uint64) Pack(enc *Encoder) int {
	binary.LittleEndian.PutUint64(enc.Alloc(8), uint64(v))
	return 8
}

func (v *Uint64) Unpack(data []byte) (int, error) {
	if len(data) < 8 {
		return 0, overflowError("Uint64.unpack")
	}
	*v = Uint64(binary.LittleEndian.Uint64(data))
	return 8, nil
}

// Int64 packs as 8 little-endian bytes.
type Int64 int64

func (v Int64) Size() int {
	return 8
}

func (v Int64) Pack(enc *Encoder) int {
	binary.LittleEndian.PutUint64(enc.Alloc(8), uint64(v))
	return 8
}

func (v *Int64) Unpack(data []byte) (int, error) {
	if len(data) < 8 {
		return 0, overflowError("Int64.unpack")
	}
	*v = Int64(binary.LittleEndian.Uint64(data))
	return 8, nil
}

// String packs as a VarUint32 byte count followed by the raw UTF-8 bytes.
type String string

func (v String) Size() int {
	return VarUint32(len(v)).Size() + len(v)
}

func (v String) Pack(enc *Encoder) int {
	pos := enc.Size()
	VarUint32(len(v)).Pack(enc)
	copy(enc.Alloc(len(v)), v)
	return enc.Size() - pos
}

func (v *String) Unpack(data []byte) (int, error) {
	var length VarUint32
	n, err := length.Unpack(data)
	if err != nil {
		return 0, err
	}
	end := n + int(length)
	if len(data) < end {
		return 0, overflowError("String.unpack")
	}
	*v = String(data[n:end])
	return end, nil
}

// Bytes packs as a VarUint32 byte count followed by the raw bytes.
type Bytes []byte

func (v Bytes) Size() int {
	return VarUint32(len(v)).Size() + len(v)
}

func (v Bytes) Pack(enc *Encoder) int {
	pos := enc.Size()
	VarUint32(len(v)).Pack(enc)
	copy(enc.Alloc(len(v)), v)
	return enc.Size() - pos
}

func (v *Bytes) Unpack(data []byte) (int, error) {
	var length VarUint32
	n, err := length.Unpack(data)
	if err != nil {
		return 0, err
	}
	end := n + int(length)
	if len(data) < end {
		return 0, overflowError("Bytes.unpack")
	}
	*v = append((*v)[:0], data[n:end]...)
	return end, nil
}
