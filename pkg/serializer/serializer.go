// Package serializer implements the canonical Antelope binary codec core.
//
// Every serializable chain type implements the Packer contract: it reports
// the exact wire size of its current value, appends its canonical bytes to an
// Encoder, and reads itself back from the front of a byte slice. The wire
// layout is fixed by the protocol: integers are little-endian and unpadded,
// fixed byte arrays are copied verbatim, tagged unions carry one leading
// discriminant byte, and collections carry a VarUint32 count prefix.
//
// This corresponds to the Rust implementation in:
//   - rscdk crates/chain/src/serializer.rs (Packer, Encoder, Decoder)
//
// Encoding the same logical value always produces the same byte sequence;
// there is exactly one valid encoding per value. The bytes produced here are
// hashed and signed, so the codec offers no flexibility in layout.
package serializer

// Packer is the operation triad every serializable type implements.
//
// Size must equal the number of bytes Pack writes and the number of bytes
// Unpack consumes for the same value. For fixed-size types it is a constant;
// variable-size types recompute it from their current field values.
type Packer interface {
	// Size returns the exact wire length the current value packs to.
	Size() int

	// Pack appends the value's canonical bytes to enc and returns the
	// number of bytes written.
	Pack(enc *Encoder) int

	// Unpack reads a value out of the front of data, mutating the
	// receiver in place, and returns the number of bytes consumed.
	Unpack(data []byte) (int, error)
}

// Encoder is an append-only growable byte buffer. Types write their
// serialized bytes into it top-down; there is no decoding and no
// random-access overwrite.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an Encoder with capacity for sizeHint bytes. Passing
// the value's Size() avoids reallocation during the pack.
func NewEncoder(sizeHint int) *Encoder {
	return &Encoder{buf: make([]byte, 0, sizeHint)}
}

// Alloc reserves a zero-initialized region of exactly n bytes at the current
// end of the buffer and returns it for the caller to fill immediately,
// before packing any nested value: a subsequent Alloc may grow the buffer
// and leave earlier regions aliasing stale memory.
func (e *Encoder) Alloc(n int) []byte {
	off := len(e.buf)
	e.buf = append(e.buf, make([]byte, n)...)
	return e.buf[off : off+n]
}

// Size returns the total number of bytes written so far. Composite types
// take the delta between two calls to report their own pack length.
func (e *Encoder) Size() int {
	return len(e.buf)
}

// Bytes returns the accumulated buffer.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Pack appends p's canonical encoding and returns the bytes written.
func (e *Encoder) Pack(p Packer) int {
	return p.Pack(e)
}

// Pack serializes p into a fresh buffer.
func Pack(p Packer) []byte {
	enc := NewEncoder(p.Size())
	p.Pack(enc)
	return enc.Bytes()
}

// Decoder is a sequential cursor over a fixed in-memory byte region. It
// never reads past the end of the wrapped region; each type's own bounds
// check rejects undersized input before any memory is touched.
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder wraps a read-only byte region. The cursor starts at 0.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{buf: data}
}

// Unpack invokes p's own Unpack against the remaining unread bytes, then
// advances the cursor by the number of bytes that call consumed. Composite
// types call this repeatedly in field declaration order.
func (d *Decoder) Unpack(p Packer) (int, error) {
	n, err := p.Unpack(d.buf[d.pos:])
	if err != nil {
		return 0, err
	}
	d.pos += n
	return n, nil
}

// Pos returns the current cursor offset. Composite types return this as
// their own total consumed length.
func (d *Decoder) Pos() int {
	return d.pos
}

// Unpack deserializes data into p and returns the bytes consumed.
func Unpack(data []byte, p Packer) (int, error) {
	return p.Unpack(data)
}
