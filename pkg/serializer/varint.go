package serializer

// VarUint32 is the variable-length unsigned integer used as the count prefix
// for collections, strings and byte blobs: LEB128, 7 value bits per byte,
// high bit set on every byte except the last. Values fit in at most 5 bytes.
type VarUint32 uint32

func (v VarUint32) Size() int {
	size := 1
	x := uint32(v)
	for x >= 0x80 {
		x >>= 7
		size++
	}
	return size
}

func (v VarUint32) Pack(enc *Encoder) int {
	x := uint32(v)
	n := 0
	for {
		b := byte(x & 0x7f)
		x >>= 7
		if x != 0 {
			b |= 0x80
		}
		enc.Alloc(1)[0] = b
		n++
		if x == 0 {
			return n
		}
	}
}

func (v *VarUint32) Unpack(data []byte) (int, error) {
	var x uint32
	var shift uint
	for i, b := range data {
		if shift == 28 && b > 0x0f {
			return 0, &CodecError{Code: ErrValueOverflow, Message: "VarUint32.unpack: value overflow"}
		}
		x |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			*v = VarUint32(x)
			return i + 1, nil
		}
		shift += 7
		if shift > 28 {
			return 0, &CodecError{Code: ErrValueOverflow, Message: "VarUint32.unpack: value overflow"}
		}
	}
	return 0, overflowError("VarUint32.unpack")
}
